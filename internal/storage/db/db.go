package db

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/codehero.git/internal/config"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"github.com/jmoiron/sqlx"
)

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	dsn, err := dataSource(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	maxOpen := cfg.Cfg.MaxOpenConns
	if cfg.Driver == config.DriverSQLite {
		// sqlite serializes writers; one connection avoids "database is locked".
		maxOpen = 1
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if err := Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func dataSource(cfg config.DBConfig) (string, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
			cfg.Conn.Host, cfg.Conn.Port, cfg.Conn.Name, cfg.Conn.User, cfg.Conn.Password, cfg.Conn.SSL), nil
	case config.DriverSQLite:
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", cfg.SQLite.Path), nil
	default:
		return "", fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}
