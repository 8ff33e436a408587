// Package database opens the optional relational store used for search
// history and inspects its schema for the integrity checks.
//
// Connect wraps GORM and selects the dialect from Config.Driver: MySQL (the
// default), Postgres through the pgx-based driver, or SQLite, which the
// tests use in memory.
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Search history disabled", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "search_history", []string{"latitude", "longitude"})
package database
