// Package database handles database connections and schema inspection.
//
// It wraps GORM and opens either a MySQL or a SQLite connection based on the
// application's configuration.
//
// # Connect
//
// Connect picks the dialector from Config.Driver, applies pool settings and
// pings the database before returning it.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table for both dialects. The save
// journal uses it to verify its table before writing.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "save_records")
package database
