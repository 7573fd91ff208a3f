// Package storage provides the byte stores that game installs are read from and saved to.
//
// A Store reads and writes whole files relative to a root. Two backends exist:
//
//   - LocalStore: a directory on disk. Writes go through a temp file + rename.
//   - ObjectStore: a key prefix inside an S3/MinIO bucket, through the Client interface.
//
// # Client Interface
//
// The Client interface wraps the MinIO Go client, making it easy to mock storage
// interactions for unit testing (see core/storage/mocks).
//
// # Usage
//
//	open, err := storage.NewOpener(cfg.Storage)
//	romfs, err := open("/games/gg/romfs")
//	data, err := romfs.ReadFile(ctx, "bin/pokelib/waza/waza_data.bin")
package storage
