package xiangqi

import (
	"errors"
	"fmt"
)

var (
	ErrNoPieceAtOrigin = errors.New("no piece at origin")

	// 以下只在严格模式下返回
	ErrGameOver    = errors.New("game is over")
	ErrNotYourTurn = errors.New("piece does not belong to side to move")
	ErrIllegalMove = errors.New("illegal move")
)

// State = 棋盘 + 轮到谁走 + 是否终局
type State struct {
	board  Board
	turn   Side
	over   bool
	winner Side
	strict bool
}

type Option func(*State)

// WithStrict 打开严格模式：终局后、走错颜色、不在生成结果里的走法都会被拒绝。
// 默认宽松，只检查坐标和起点有子。
func WithStrict(strict bool) Option {
	return func(s *State) { s.strict = strict }
}

// NewGame 返回开局局面，红先。
func NewGame(opts ...Option) *State {
	s := &State{
		board:  InitialBoard(),
		turn:   Red,
		winner: NoSide,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *State) Board() Board   { return s.board }
func (s *State) Turn() Side     { return s.turn }
func (s *State) Over() bool     { return s.over }
func (s *State) Winner() Side   { return s.winner }
func (s *State) Strict() bool   { return s.strict }
func (s *State) String() string { return s.board.String() }

func (s *State) PieceAt(sq Square) (Piece, error) {
	return s.board.PieceAt(sq)
}

// Outcome 是一次走子的结果。State 是走子后的新局面，原局面不变。
type Outcome struct {
	State    *State
	Move     Move
	Moved    Piece
	Captured Piece
	Winner   Side
}

func (o *Outcome) GameOver() bool { return o.Winner != NoSide }

// ApplyMove 执行 from -> to：吃掉落点上的子，吃将则终局，否则换边。
// 宽松模式下不校验落点是否在 LegalMoves 里，由调用方保证。
func (s *State) ApplyMove(from, to Square) (*Outcome, error) {
	if !from.Valid() || !to.Valid() {
		return nil, ErrInvalidSquare
	}
	pc := s.board.at(from.Row, from.Col)
	if pc == NoPiece {
		return nil, fmt.Errorf("%w: %s", ErrNoPieceAtOrigin, from)
	}
	if s.strict {
		if err := s.checkStrict(pc, from, to); err != nil {
			return nil, err
		}
	}

	captured := s.board.at(to.Row, to.Col)

	next := *s
	next.board.set(to, pc)
	next.board.set(from, NoPiece)

	out := &Outcome{
		State:    &next,
		Move:     Move{From: from, To: to},
		Moved:    pc,
		Captured: captured,
		Winner:   NoSide,
	}
	if captured != NoPiece && captured.Type() == PieceGeneral {
		next.over = true
		next.winner = pc.Side()
		out.Winner = next.winner
		return out, nil
	}
	next.turn = s.turn.Opponent()
	return out, nil
}

// Apply 是 ApplyMove 的 Move 版本。
func (s *State) Apply(m Move) (*Outcome, error) {
	return s.ApplyMove(m.From, m.To)
}

func (s *State) checkStrict(pc Piece, from, to Square) error {
	if s.over {
		return ErrGameOver
	}
	if pc.Side() != s.turn {
		return fmt.Errorf("%w: %s at %s", ErrNotYourTurn, pc, from)
	}
	for _, sq := range s.board.destinations(from) {
		if sq == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s%s", ErrIllegalMove, from, to)
}
