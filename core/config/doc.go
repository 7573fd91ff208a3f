// Package config provides configuration management for the game data manager.
//
// It loads an optional .env file with godotenv, then reads environment
// variables through Viper. Defaults come from the `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Game: install roots, version tag and language index (GAME_*)
//   - Storage: local directory or S3/MinIO bucket settings (STORAGE_*)
//   - Log: logging level and format (LOG_*)
//   - Database: save journal connection (DATABASE_*)
//   - Server: HTTP port, API key and read-only switch (SERVER_*)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Game.Version)
package config
