package job

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// DBMaintenanceJob keeps the file-backed sqlite store compact: it truncates
// the WAL and lets sqlite refresh its query planner statistics.
type DBMaintenanceJob struct {
	db *sqlx.DB
}

func NewDBMaintenanceJob(db *sqlx.DB) *DBMaintenanceJob {
	return &DBMaintenanceJob{db: db}
}

func (j *DBMaintenanceJob) Name() string {
	return "db_maintenance"
}

func (j *DBMaintenanceJob) Run(ctx context.Context) error {
	if j.db == nil {
		return nil
	}
	if _, err := j.db.ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		return err
	}
	_, err := j.db.ExecContext(ctx, "PRAGMA optimize")
	return err
}
