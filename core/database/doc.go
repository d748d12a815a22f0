// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL connections based on
// the application's configuration. The reconcile engine relies on the
// database's transaction isolation and row locking to serialize concurrent
// batches touching the same records; the engine itself never locks.
//
// # Schema Inspection
//
// The package can inspect table schemas (MySQL SHOW COLUMNS, SQLite PRAGMA)
// and verify that each synced table carries the invariant sync columns
// (id, owner_id, created_at, updated_at, deleted_at). The migrate command
// runs this verification after AutoMigrate.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.VerifySyncTable(db, "tasks")
package database
