package sqlc

import (
	"database/sql"
	"time"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

// DbManager owns the database handle and the
// managers built on top of its queries.
type DbManager struct {
	db        *sql.DB
	Analytics *AnalyticsManager
}

func NewDbManager(db *sql.DB) DbManager {
	return DbManager{
		db:        db,
		Analytics: NewAnalyticsManager(New(db)),
	}
}

func (d DbManager) Close() error {
	return d.db.Close()
}
