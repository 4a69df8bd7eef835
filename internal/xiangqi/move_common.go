package xiangqi

// 车、炮、将的方向顺序：右、左、下、上
var orthoDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// 相、士的方向顺序
var diagDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

// 落点在盘内且不是己方棋子
func (b *Board) canLand(side Side, r, c int) bool {
	if !onBoard(r, c) {
		return false
	}
	dst := b.at(r, c)
	return dst == NoPiece || dst.Side() != side
}

func (b *Board) tryAdd(side Side, r, c int, moves *[]Square) {
	if b.canLand(side, r, c) {
		*moves = append(*moves, Sq(r, c))
	}
}

// 车：横竖随便走，遇子即停，敌子可吃
func genChariotMoves(b *Board, from Square, side Side, moves *[]Square) {
	for _, d := range orthoDirs {
		r, c := from.Row+d[0], from.Col+d[1]
		for onBoard(r, c) {
			pc := b.at(r, c)
			if pc == NoPiece {
				*moves = append(*moves, Sq(r, c))
			} else {
				if pc.Side() != side {
					*moves = append(*moves, Sq(r, c))
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 炮：车走法 + 隔一子吃；翻山后遇到第二个子无论敌我都停
func genCannonMoves(b *Board, from Square, side Side, moves *[]Square) {
	for _, d := range orthoDirs {
		r, c := from.Row+d[0], from.Col+d[1]

		// 走子阶段：直到第一个棋子（炮架）
		for onBoard(r, c) {
			if b.at(r, c) == NoPiece {
				*moves = append(*moves, Sq(r, c))
				r += d[0]
				c += d[1]
				continue
			}
			r += d[0]
			c += d[1]
			break
		}

		// 吃子阶段：越过炮架，遇到第一子可吃
		for onBoard(r, c) {
			pc := b.at(r, c)
			if pc != NoPiece {
				if pc.Side() != side {
					*moves = append(*moves, Sq(r, c))
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 相：田字，塞象眼不能走，不能过河
func genElephantMoves(b *Board, from Square, side Side, moves *[]Square) {
	for _, d := range diagDirs {
		r := from.Row + 2*d[0]
		c := from.Col + 2*d[1]
		if !onBoard(r, c) {
			continue
		}
		if !onOwnHalf(side, r) {
			continue
		}
		if b.at(from.Row+d[0], from.Col+d[1]) != NoPiece {
			continue
		}
		b.tryAdd(side, r, c, moves)
	}
}

// 士：九宫内斜走一格
func genAdvisorMoves(b *Board, from Square, side Side, moves *[]Square) {
	for _, d := range diagDirs {
		r := from.Row + d[0]
		c := from.Col + d[1]
		if !inPalace(side, r, c) {
			continue
		}
		b.tryAdd(side, r, c, moves)
	}
}

// 将：九宫内上下左右一格（不处理“对脸”规则）
func genGeneralMoves(b *Board, from Square, side Side, moves *[]Square) {
	for _, d := range orthoDirs {
		r := from.Row + d[0]
		c := from.Col + d[1]
		if !inPalace(side, r, c) {
			continue
		}
		b.tryAdd(side, r, c, moves)
	}
}
