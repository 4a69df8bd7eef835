package xiangqi

func genSoldierMoves(b *Board, from Square, side Side, moves *[]Square) {
	dir := soldierDir(side)
	if dir == 0 {
		return
	}

	// 前一格（可以吃子）
	b.tryAdd(side, from.Row+dir, from.Col, moves)

	// 过河后才能左右
	if crossedRiver(side, from.Row) {
		b.tryAdd(side, from.Row, from.Col-1, moves)
		b.tryAdd(side, from.Row, from.Col+1, moves)
	}
}
