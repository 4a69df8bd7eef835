package xiangqi

// 8 种“日”字：终点 + 马腿
var horseLegMoves = [8]struct {
	Dr, Dc int // 终点
	Br, Bc int // 马腿
}{
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
	{-1, -2, 0, -1},
	{+1, -2, 0, -1},
	{-1, +2, 0, +1},
	{+1, +2, 0, +1},
}

func genHorseMoves(b *Board, from Square, side Side, moves *[]Square) {
	for _, m := range horseLegMoves {
		r := from.Row + m.Dr
		c := from.Col + m.Dc
		if !onBoard(r, c) {
			continue
		}
		if b.at(from.Row+m.Br, from.Col+m.Bc) != NoPiece {
			continue // 憋马腿，不分敌我
		}
		b.tryAdd(side, r, c, moves)
	}
}
