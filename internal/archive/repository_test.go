package archive

import (
	"context"
	"testing"
	"time"

	"xiangqi/internal/session"
)

func TestNewRepositoryRequiresURL(t *testing.T) {
	if _, err := NewRepository(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty DATABASE_URL")
	}
}

func TestNilRepositoryIsNoop(t *testing.T) {
	var r *Repository
	if err := r.SaveResult(context.Background(), &session.Record{ID: "g", Over: true}); err != nil {
		t.Fatalf("SaveResult on nil repository: %v", err)
	}
	if err := r.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("EnsureSchema on nil repository: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close on nil repository: %v", err)
	}
}

func TestResultArgs(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rec := &session.Record{
		ID:        "g1",
		FEN:       "4R4/9/9/9/9/9/9/9/9/3K5 w",
		History:   []string{"e1e9"},
		Over:      true,
		Winner:    "red",
		CreatedAt: start,
		UpdatedAt: start.Add(1500 * time.Millisecond),
	}
	args, err := resultArgs(rec)
	if err != nil {
		t.Fatalf("resultArgs: %v", err)
	}
	if len(args) != 8 {
		t.Fatalf("expected 8 args, got %d", len(args))
	}
	if args[1] != "red" || args[3] != `["e1e9"]` || args[4] != 1 || args[7] != int64(1500) {
		t.Fatalf("unexpected args: %v", args)
	}

	rec.History = nil
	rec.UpdatedAt = start.Add(-time.Second)
	args, err = resultArgs(rec)
	if err != nil {
		t.Fatalf("resultArgs: %v", err)
	}
	if args[3] != "[]" || args[7] != int64(0) {
		t.Fatalf("unexpected args for empty history: %v", args)
	}
}
