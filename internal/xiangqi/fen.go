package xiangqi

import (
	"errors"
	"strings"
)

// 标准象棋 FEN：10 行用“/”隔开，空位用数字压缩；空格后 w/b 表示轮到红/黑
func (s *State) Encode() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := s.board.at(r, c)
			if pc == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(pieceToChar(pc))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if s.turn == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

// DecodeState 解析 FEN。每方至多一个将；只缺一方将时视为终局，胜者为还有将的一方。
func DecodeState(fen string, opts ...Option) (*State, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, ErrInvalidFEN
	}
	var b Board
	for r := 0; r < Rows; r++ {
		c := 0
		for _, ch := range rows[r] {
			if c >= Cols {
				return nil, ErrInvalidFEN
			}
			if ch >= '1' && ch <= '9' {
				c += int(ch - '0')
				continue
			}
			pc, ok := charToPiece(ch)
			if !ok {
				return nil, ErrInvalidFEN
			}
			b.Squares[indexOf(r, c)] = pc
			c++
		}
		if c != Cols {
			return nil, ErrInvalidFEN
		}
	}

	turn := Red
	if len(parts) > 1 {
		switch parts[1] {
		case "w", "r":
			turn = Red
		case "b":
			turn = Black
		default:
			return nil, ErrInvalidFEN
		}
	}

	s := &State{board: b, turn: turn, winner: NoSide}
	redGenerals, blackGenerals := 0, 0
	for _, pc := range b.Squares {
		if pc.Type() != PieceGeneral {
			continue
		}
		if pc.Side() == Red {
			redGenerals++
		} else {
			blackGenerals++
		}
	}
	switch {
	case redGenerals > 1 || blackGenerals > 1:
		return nil, ErrInvalidFEN
	case redGenerals == 0 && blackGenerals == 0:
		return nil, ErrInvalidFEN
	case redGenerals == 0:
		s.over, s.winner = true, Black
	case blackGenerals == 0:
		s.over, s.winner = true, Red
	}
	for _, o := range opts {
		o(s)
	}
	return s, nil
}
