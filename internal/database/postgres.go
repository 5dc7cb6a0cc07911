package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"PAKET_WISATA_BACK-END/internal/config"
)

// Schema creates the catalog table when it does not exist yet
const Schema = `CREATE TABLE IF NOT EXISTS paket_wisata (
    id            BIGSERIAL PRIMARY KEY,
    nama          VARCHAR(255) NOT NULL,
    tujuan        VARCHAR(255) NOT NULL,
    harga         NUMERIC(15,2) NOT NULL,
    deskripsi     TEXT,
    itinerary     TEXT,
    gambar_url    VARCHAR(255),
    galeri_gambar TEXT NOT NULL DEFAULT '[]',
    created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS paket_wisata_created_at_idx ON paket_wisata (created_at DESC, id DESC);`

// Execer is the subset of a pool needed to run DDL
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// NewPool builds a pgx pool from configuration and pings it once
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	// simple protocol keeps us compatible with PgBouncer in transaction mode
	poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "paket-wisata-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = fmt.Sprint(cfg.Database.QueryTimeout.Milliseconds())
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime
	poolCfg.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	log.Printf("Connected to database %s on %s:%s", cfg.Database.Name, cfg.Database.Host, cfg.Database.Port)
	return pool, nil
}

// EnsureSchema runs the table bootstrap
func EnsureSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
