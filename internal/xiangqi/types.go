package xiangqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Opponent 返回对方；NoSide 的对方仍是 NoSide
func (s Side) Opponent() Side {
	switch s {
	case Red:
		return Black
	case Black:
		return Red
	default:
		return NoSide
	}
}

type PieceType int8

const (
	PieceNone     PieceType = iota
	PieceChariot            // 车
	PieceHorse              // 马
	PieceElephant           // 相 / 象
	PieceAdvisor            // 仕 / 士
	PieceGeneral            // 帅 / 将
	PieceCannon             // 炮
	PieceSoldier            // 兵 / 卒
)

func (pt PieceType) String() string {
	switch pt {
	case PieceChariot:
		return "chariot"
	case PieceHorse:
		return "horse"
	case PieceElephant:
		return "elephant"
	case PieceAdvisor:
		return "advisor"
	case PieceGeneral:
		return "general"
	case PieceCannon:
		return "cannon"
	case PieceSoldier:
		return "soldier"
	default:
		return "none"
	}
}

type Piece int8 // 0=空；>0 红；<0 黑；abs=PieceType

const NoPiece Piece = 0

func MakePiece(side Side, pt PieceType) Piece {
	if pt == PieceNone || side == NoSide {
		return NoPiece
	}
	if side == Red {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

func (p Piece) IsEmpty() bool { return p == NoPiece }

func (p Piece) String() string {
	if p == NoPiece {
		return "empty"
	}
	return p.Side().String() + " " + p.Type().String()
}

type Board struct {
	Squares [NumSquares]Piece
}

type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) String() string { return m.From.String() + m.To.String() }
