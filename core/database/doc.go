// Package database handles database connections and schema inspection.
//
// It wraps GORM so the rest of the application can run against either a local SQLite
// file (the default, matching a single-node deployment) or a MySQL server.
//
// # Connect
//
// Connect selects the dialector from Config.Driver, applies pool settings appropriate to
// the engine and pings the database before returning. SQLite is limited to a single open
// connection.
//
// # Schema Inspection
//
// GetTableColumns lists the live columns of a table. The integrity feature compares them
// with the GORM models of the state store.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    return err
//	}
//	columns, err := database.GetTableColumns(db, "monument_state")
package database
