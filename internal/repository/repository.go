package repository

//go:generate mockgen -source=repository.go -destination=mock/repository_mock.go

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	*ProgressR
	*StatsR
	*ProfileR
}

// NewRepository builds the repositories for the given sql driver name.
// Queries are written with '?' placeholders and rebound per driver.
func NewRepository(db QueryI, driver string) Repository {
	bind := sqlx.BindType(driver)
	return Repository{
		ProgressR: NewProgressRepository(db, bind),
		StatsR:    NewStatsRepository(db, bind),
		ProfileR:  NewProfileRepository(db, bind),
	}
}
