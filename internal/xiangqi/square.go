package xiangqi

import "fmt"

// Square 是棋盘交叉点：Row 0 为黑方底线，Row 9 为红方底线。
type Square struct {
	Row int
	Col int
}

func Sq(row, col int) Square { return Square{Row: row, Col: col} }

func (s Square) Valid() bool { return onBoard(s.Row, s.Col) }

func (s Square) index() int { return indexOf(s.Row, s.Col) }

func squareOf(idx int) Square { return Square{Row: idx / Cols, Col: idx % Cols} }

// String 使用 ICCS 记法：列 a..i，行号从红方底线 0 数到黑方底线 9。
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string(rune('a'+s.Col)) + string(rune('0'+(Rows-1-s.Row)))
}

// ParseSquare 解析 "e0" 这样的 ICCS 坐标。
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	col := int(s[0] - 'a')
	rank := int(s[1] - '0')
	sq := Square{Row: Rows - 1 - rank, Col: col}
	if rank < 0 || rank >= Rows || !sq.Valid() {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return sq, nil
}

func (s Square) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, ErrInvalidSquare
	}
	return []byte(s.String()), nil
}

func (s *Square) UnmarshalText(b []byte) error {
	sq, err := ParseSquare(string(b))
	if err != nil {
		return err
	}
	*s = sq
	return nil
}

// ParseMove 解析 "h2e2" 这样的四字符走法。
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, fmt.Errorf("%w: move %q", ErrInvalidSquare, s)
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}
