package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"xiangqi/internal/obslog"
	"xiangqi/internal/xiangqi"
)

// Archiver 接收已结束的对局。
type Archiver interface {
	SaveResult(ctx context.Context, rec *Record) error
}

// Manager 是引擎的调用方：选子、合法性、终局后拒绝走子都在这里把关。
type Manager struct {
	store   Store
	strict  bool
	archive Archiver
	now     func() time.Time

	mu   sync.Mutex
	subs map[string]map[*Subscription]struct{}
}

type Option func(*Manager)

// WithStrictEngine 让还原出的引擎局面带上严格模式。
func WithStrictEngine(strict bool) Option {
	return func(m *Manager) { m.strict = strict }
}

func WithArchive(a Archiver) Option {
	return func(m *Manager) { m.archive = a }
}

func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		now:   time.Now,
		subs:  make(map[string]map[*Subscription]struct{}),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// Snapshot 是记录和还原出的局面。
type Snapshot struct {
	Record *Record
	State  *xiangqi.State
}

type PlayResult struct {
	Snapshot
	Move     xiangqi.Move
	Captured xiangqi.Piece
	Winner   xiangqi.Side
}

func (m *Manager) snapshot(rec *Record) (*Snapshot, error) {
	st, err := rec.State()
	if err != nil {
		return nil, fmt.Errorf("restore game %s: %w", rec.ID, err)
	}
	return &Snapshot{Record: rec, State: st}, nil
}

func (m *Manager) Create(ctx context.Context) (*Snapshot, error) {
	rec := newRecord(uuid.NewString(), m.strict, m.now())
	if err := m.store.Create(ctx, rec); err != nil {
		obslog.L().Error("store_error", zap.String("op", "create"), zap.Error(err))
		return nil, err
	}
	obslog.L().Info("game_new", zap.String("game_id", rec.ID))
	return m.snapshot(rec)
}

func (m *Manager) Get(ctx context.Context, id string) (*Snapshot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}
	rec, err := m.store.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	return m.snapshot(rec)
}

// LegalMoves 返回 sq 上棋子的落点；不是走子方的棋子或已终局时为空。
func (m *Manager) LegalMoves(ctx context.Context, id string, sq xiangqi.Square) ([]xiangqi.Square, error) {
	snap, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if snap.State.Over() {
		if !sq.Valid() {
			return nil, xiangqi.ErrInvalidSquare
		}
		return nil, nil
	}
	return snap.State.LegalMoves(sq)
}

// Play 校验并执行一步棋。
func (m *Manager) Play(ctx context.Context, id string, mv xiangqi.Move) (*PlayResult, error) {
	var res PlayResult
	rec, err := m.store.Update(ctx, strings.TrimSpace(id), func(rec *Record) error {
		st, err := rec.State()
		if err != nil {
			return fmt.Errorf("restore game %s: %w", rec.ID, err)
		}
		if err := checkMove(st, mv); err != nil {
			return err
		}
		out, err := st.Apply(mv)
		if err != nil {
			return err
		}
		rec.applyOutcome(out, m.now())
		res.Move = out.Move
		res.Captured = out.Captured
		res.Winner = out.Winner
		return nil
	})
	if err != nil {
		if !isRuleError(err) {
			obslog.L().Error("store_error", zap.String("op", "play"), zap.String("game_id", id), zap.Error(err))
		}
		return nil, err
	}

	snap, err := m.snapshot(rec)
	if err != nil {
		return nil, err
	}
	res.Snapshot = *snap

	obslog.L().Info("game_move",
		zap.String("game_id", rec.ID),
		zap.String("move", res.Move.String()),
		zap.String("captured", res.Captured.String()),
		zap.Int("ply", len(rec.History)),
	)
	if res.Winner != xiangqi.NoSide {
		obslog.L().Info("game_over", zap.String("game_id", rec.ID), zap.String("winner", res.Winner.String()))
		m.archiveResult(ctx, rec)
	}
	m.publish(Event{Kind: EventMove, Snapshot: res.Snapshot, Move: res.Move, Captured: res.Captured})
	return &res, nil
}

// Reset 把对局恢复到开局，ID 不变。
func (m *Manager) Reset(ctx context.Context, id string) (*Snapshot, error) {
	rec, err := m.store.Update(ctx, strings.TrimSpace(id), func(rec *Record) error {
		rec.reset(m.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	snap, err := m.snapshot(rec)
	if err != nil {
		return nil, err
	}
	obslog.L().Info("game_reset", zap.String("game_id", rec.ID))
	m.publish(Event{Kind: EventReset, Snapshot: *snap})
	return snap, nil
}

func (m *Manager) Delete(ctx context.Context, id string) error {
	return m.store.Delete(ctx, strings.TrimSpace(id))
}

// 界面层的把关：只允许走子方在未终局时走生成器给出的落点
func checkMove(st *xiangqi.State, mv xiangqi.Move) error {
	if st.Over() {
		return xiangqi.ErrGameOver
	}
	pc, err := st.PieceAt(mv.From)
	if err != nil {
		return err
	}
	if _, err := st.PieceAt(mv.To); err != nil {
		return err
	}
	if pc.IsEmpty() {
		return fmt.Errorf("%w: %s", xiangqi.ErrNoPieceAtOrigin, mv.From)
	}
	if pc.Side() != st.Turn() {
		return fmt.Errorf("%w: %s", xiangqi.ErrNotYourTurn, mv.From)
	}
	legal, err := st.LegalMoves(mv.From)
	if err != nil {
		return err
	}
	for _, to := range legal {
		if to == mv.To {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", xiangqi.ErrIllegalMove, mv)
}

func isRuleError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, xiangqi.ErrGameOver) ||
		errors.Is(err, xiangqi.ErrNotYourTurn) ||
		errors.Is(err, xiangqi.ErrIllegalMove) ||
		errors.Is(err, xiangqi.ErrNoPieceAtOrigin) ||
		errors.Is(err, xiangqi.ErrInvalidSquare)
}

func (m *Manager) archiveResult(ctx context.Context, rec *Record) {
	if m.archive == nil {
		return
	}
	if err := m.archive.SaveResult(ctx, rec); err != nil {
		obslog.L().Warn("archive_error", zap.String("game_id", rec.ID), zap.Error(err))
	}
}
