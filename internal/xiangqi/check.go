package xiangqi

// GeneralSquare 返回 side 方将（帅）的位置。
func (s *State) GeneralSquare(side Side) (Square, bool) {
	want := MakePiece(side, PieceGeneral)
	for idx, pc := range s.board.Squares {
		if pc == want && pc != NoPiece {
			return squareOf(idx), true
		}
	}
	return Square{}, false
}

func (s *State) GeneralExists(side Side) bool {
	_, ok := s.GeneralSquare(side)
	return ok
}

// IsAttacked 判断 sq 是否被 bySide 攻击：对方任一棋子能“走到”这里即算。
func (s *State) IsAttacked(sq Square, bySide Side) bool {
	if !sq.Valid() {
		return false
	}
	for idx, pc := range s.board.Squares {
		if pc == NoPiece || pc.Side() != bySide {
			continue
		}
		// 相不过河：对方半场的格子不可能被相攻击
		if pc.Type() == PieceElephant && !onOwnHalf(bySide, sq.Row) {
			continue
		}
		for _, to := range s.board.destinations(squareOf(idx)) {
			if to == sq {
				return true
			}
		}
	}
	return false
}

// InCheck 判断 side 方的将是否被将军。只用于提示，不参与走法过滤。
func (s *State) InCheck(side Side) bool {
	gen, ok := s.GeneralSquare(side)
	if !ok {
		return false
	}
	return s.IsAttacked(gen, side.Opponent())
}
