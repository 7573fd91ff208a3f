// Package structures contains the record types stored in game data files and
// their codecs.
//
// Every type has a Read function (bytes to value) and a Write function (value
// to bytes). Both are pure and are plugged into datacache codecs by the game
// package. Records keep the bytes they were read from so that fields this
// package does not model survive a write.
package structures
