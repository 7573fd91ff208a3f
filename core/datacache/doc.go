// Package datacache turns container bytes into typed values lazily.
//
// A Cache binds one container.Container to a Codec: a pure Create function
// from member bytes to a value and a pure Write function back. The value is
// created on the first Get and the same value is returned afterwards, so edits
// made through Get are what Save serializes. Save on a cache that was never
// read does nothing.
//
// # Usage
//
//	moves := datacache.New("move_stats", pack, datacache.PerEntry(structures.ReadMove, structures.WriteMove))
//	list, err := moves.Get()
//	list[33].Power = 50
//	err = moves.Save() // serializes into the pack; pack.Save persists it
//
// A Cache is single-owner and not safe for concurrent use.
package datacache
