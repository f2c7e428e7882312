package postgres

import (
	"context"
	"database/sql"

	"github.com/Kusalthilina2/Food-City-Supermarket-System/internal/config"
	_ "github.com/lib/pq"
)

// Connection wraps the database handle used by the postgres record store.
type Connection struct {
	*sql.DB
}

func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}
