// Package archive 把已结束的对局写进 Postgres。
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"xiangqi/internal/session"
)

const schema = `CREATE TABLE IF NOT EXISTS xiangqi_games (
	game_id     TEXT PRIMARY KEY,
	winner      TEXT NOT NULL,
	final_fen   TEXT NOT NULL,
	moves       JSONB NOT NULL,
	plies       INTEGER NOT NULL,
	started_at  TIMESTAMPTZ NOT NULL,
	ended_at    TIMESTAMPTZ NOT NULL,
	duration_ms BIGINT NOT NULL
)`

const upsertResult = `INSERT INTO xiangqi_games (
	game_id, winner, final_fen, moves, plies, started_at, ended_at, duration_ms
) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (game_id) DO UPDATE SET
	winner=EXCLUDED.winner,
	final_fen=EXCLUDED.final_fen,
	moves=EXCLUDED.moves,
	plies=EXCLUDED.plies,
	started_at=EXCLUDED.started_at,
	ended_at=EXCLUDED.ended_at,
	duration_ms=EXCLUDED.duration_ms`

type Repository struct {
	db *sql.DB
}

func NewRepository(ctx context.Context, databaseURL string) (*Repository, error) {
	if strings.TrimSpace(databaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(8)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) EnsureSchema(ctx context.Context) error {
	if r == nil || r.db == nil {
		return nil
	}
	_, err := r.db.ExecContext(ctx, schema)
	return err
}

// SaveResult 写入（或覆盖）一局的终局结果；未结束的对局忽略。
func (r *Repository) SaveResult(ctx context.Context, rec *session.Record) error {
	if r == nil || r.db == nil || rec == nil || !rec.Over {
		return nil
	}
	args, err := resultArgs(rec)
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, upsertResult, args...); err != nil {
		return fmt.Errorf("save result %s: %w", rec.ID, err)
	}
	return nil
}

func resultArgs(rec *session.Record) ([]any, error) {
	moves := rec.History
	if moves == nil {
		moves = []string{}
	}
	raw, err := json.Marshal(moves)
	if err != nil {
		return nil, err
	}
	duration := rec.UpdatedAt.Sub(rec.CreatedAt).Milliseconds()
	if duration < 0 {
		duration = 0
	}
	return []any{
		rec.ID,
		rec.Winner,
		rec.FEN,
		string(raw),
		len(moves),
		rec.CreatedAt,
		rec.UpdatedAt,
		duration,
	}, nil
}
