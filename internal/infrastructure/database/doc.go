// Package database provides SQLite connectivity for the status event journal.
//
// This package manages:
//   - Database connection with optional WAL mode
//   - Schema migrations embedded from the migrations package
//   - Connection lifecycle and health checks
//
// Usage:
//
//	db, err := database.Open(ctx, database.Config{Path: cfg.Journal.Path, WALMode: true})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    return err
//	}
//
// Migration files are named YYYYMMDD_HHMMSS_description.{up,down}.sql and
// are applied oldest first, one transaction each.
package database
