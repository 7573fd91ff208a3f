// Package journal keeps a database log of every game file persisted by a
// session.
//
// The journal implements game.SaveRecorder: each container written by
// Manager.SaveAll becomes one row of the save_records table, tagged with the
// session id, the file identifier and the failure (if any). The table is
// created with GORM AutoMigrate and can be verified against the model with
// CheckSchema.
//
// # Usage
//
//	db, _ := database.Connect(cfg.Database)
//	j, _ := journal.New(db, logger)
//	_ = j.Migrate()
//	mgr, _ := game.New(ctx, loc, open, lang, game.WithRecorder(j))
package journal
