package xiangqi

import (
	"errors"
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// 河界在第 4、5 行之间：0..4 为黑方半场，5..9 为红方半场
	RiverRow = 5
)

var ErrInvalidSquare = errors.New("invalid square")

func indexOf(row, col int) int { return row*Cols + col }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// 兵的前进方向：红向上(-1)，黑向下(+1)
func soldierDir(side Side) int {
	if side == Red {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 是否已经过河
func crossedRiver(side Side, row int) bool {
	if side == Red {
		return row < RiverRow
	}
	if side == Black {
		return row >= RiverRow
	}
	return false
}

// 相不能过河：落点必须在本方半场
func onOwnHalf(side Side, row int) bool {
	if side == Red {
		return row >= RiverRow
	}
	if side == Black {
		return row < RiverRow
	}
	return false
}

// 是否在九宫
func inPalace(side Side, row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	if side == Black {
		return row >= 0 && row <= 2
	}
	if side == Red {
		return row >= 7 && row <= 9
	}
	return false
}

func (b *Board) at(row, col int) Piece { return b.Squares[indexOf(row, col)] }

// PieceAt 返回 sq 上的棋子，空位返回 NoPiece。
func (b *Board) PieceAt(sq Square) (Piece, error) {
	if !sq.Valid() {
		return NoPiece, ErrInvalidSquare
	}
	return b.at(sq.Row, sq.Col), nil
}

func (b *Board) set(sq Square, pc Piece) { b.Squares[sq.index()] = pc }

var letterToPieceType = map[rune]PieceType{
	'r': PieceChariot,  // 车
	'n': PieceHorse,    // 马
	'b': PieceElephant, // 相 / 象
	'a': PieceAdvisor,  // 仕 / 士
	'k': PieceGeneral,  // 帅 / 将
	'c': PieceCannon,   // 炮
	'p': PieceSoldier,  // 兵 / 卒
}

var pieceTypeToLetter = map[PieceType]rune{
	PieceChariot:  'r',
	PieceHorse:    'n',
	PieceElephant: 'b',
	PieceAdvisor:  'a',
	PieceGeneral:  'k',
	PieceCannon:   'c',
	PieceSoldier:  'p',
}

func pieceToChar(p Piece) rune {
	if p == NoPiece {
		return '.'
	}
	base, ok := pieceTypeToLetter[p.Type()]
	if !ok {
		return '.'
	}
	if p.Side() == Red {
		return unicode.ToUpper(base)
	}
	return base
}

func charToPiece(ch rune) (Piece, bool) {
	pt, ok := letterToPieceType[unicode.ToLower(ch)]
	if !ok {
		return NoPiece, false
	}
	side := Black
	if unicode.IsUpper(ch) {
		side = Red
	}
	return MakePiece(side, pt), true
}

// 开局盘面，黑方在上（第 0 行），红方在下（第 9 行）
const initialBoardString = `rnbakabnr
.........
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
.........
RNBAKABNR`

func parseBoardString(s string) Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("board string must have 10 rows")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("board string must have 9 columns")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			pc, ok := charToPiece(ch)
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			b.Squares[indexOf(r, c)] = pc
		}
	}
	return b
}

// InitialBoard 返回标准开局盘面。
func InitialBoard() Board {
	return parseBoardString(initialBoardString)
}

// String 按行输出盘面，便于调试。
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Cols; c++ {
			sb.WriteRune(pieceToChar(b.at(r, c)))
		}
	}
	return sb.String()
}
