package xiangqi

// 按棋子类型生成伪合法落点（不考虑自己的将是否被将军）
func (b *Board) destinations(from Square) []Square {
	pc := b.at(from.Row, from.Col)
	if pc == NoPiece {
		return nil
	}
	side := pc.Side()
	var moves []Square
	switch pc.Type() {
	case PieceChariot:
		genChariotMoves(b, from, side, &moves)
	case PieceHorse:
		genHorseMoves(b, from, side, &moves)
	case PieceElephant:
		genElephantMoves(b, from, side, &moves)
	case PieceAdvisor:
		genAdvisorMoves(b, from, side, &moves)
	case PieceGeneral:
		genGeneralMoves(b, from, side, &moves)
	case PieceCannon:
		genCannonMoves(b, from, side, &moves)
	case PieceSoldier:
		genSoldierMoves(b, from, side, &moves)
	}
	return moves
}

// LegalMoves 返回 sq 上棋子的可走落点；空位或不是当前走子方的棋子返回空。
// 不做送将过滤。
func (s *State) LegalMoves(sq Square) ([]Square, error) {
	if !sq.Valid() {
		return nil, ErrInvalidSquare
	}
	pc := s.board.at(sq.Row, sq.Col)
	if pc == NoPiece || pc.Side() != s.turn {
		return nil, nil
	}
	return s.board.destinations(sq), nil
}

// MovesFrom 不看轮到谁，直接按 sq 上棋子的颜色生成落点。
func (s *State) MovesFrom(sq Square) ([]Square, error) {
	if !sq.Valid() {
		return nil, ErrInvalidSquare
	}
	return s.board.destinations(sq), nil
}

// MovesForSide 生成指定一方的全部伪合法走法，按格子顺序（行优先）排列。
func (s *State) MovesForSide(side Side) []Move {
	var moves []Move
	for idx := 0; idx < NumSquares; idx++ {
		pc := s.board.Squares[idx]
		if pc == NoPiece || pc.Side() != side {
			continue
		}
		from := squareOf(idx)
		for _, to := range s.board.destinations(from) {
			moves = append(moves, Move{From: from, To: to})
		}
	}
	return moves
}

// Moves 是当前走子方的全部伪合法走法。
func (s *State) Moves() []Move {
	return s.MovesForSide(s.turn)
}
