package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

func New(url string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", url)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return conn, nil
}

func NewPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres (pgxpool): %w", err)
	}
	return pool, nil
}

// schema cria as tabelas usadas pelos repositórios. Idempotente.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS produto_bruto (
		id UUID PRIMARY KEY,
		produto_id TEXT NOT NULL UNIQUE,
		titulo TEXT NOT NULL,
		preco_antigo NUMERIC(12,2) NOT NULL DEFAULT 0,
		preco_pix NUMERIC(12,2) NOT NULL DEFAULT 0,
		preco_atual NUMERIC(12,2) NOT NULL DEFAULT 0,
		parcelamento_original TEXT NOT NULL DEFAULT 'N/A',
		contexto JSONB NOT NULL,
		sync_status CHAR(1) NOT NULL DEFAULT 'S',
		coletado_em TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_produto_bruto_sync ON produto_bruto (sync_status)`,
	`CREATE TABLE IF NOT EXISTS produto_estruturado (
		id UUID PRIMARY KEY,
		id_site TEXT NOT NULL,
		categoria TEXT NOT NULL,
		is_bundle BOOLEAN NOT NULL DEFAULT false,
		registro JSONB NOT NULL,
		criado_em TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_produto_estruturado_id_site ON produto_estruturado (id_site)`,
}

func EnsureSchema(conn *sql.DB) error {
	for _, stmt := range schema {
		if _, err := conn.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
