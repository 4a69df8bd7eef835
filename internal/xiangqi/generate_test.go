package xiangqi

import (
	"reflect"
	"testing"
)

func sqs(pairs ...[2]int) []Square {
	out := make([]Square, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, Sq(p[0], p[1]))
	}
	return out
}

func contains(list []Square, sq Square) bool {
	for _, s := range list {
		if s == sq {
			return true
		}
	}
	return false
}

func mustMoves(t *testing.T, s *State, sq Square) []Square {
	t.Helper()
	moves, err := s.MovesFrom(sq)
	if err != nil {
		t.Fatalf("MovesFrom(%v): %v", sq, err)
	}
	return moves
}

func TestChariotSlideOnEmptyBoard(t *testing.T) {
	s := emptyState(Red)
	place(s, Sq(4, 4), MakePiece(Red, PieceChariot))

	got := mustMoves(t, s, Sq(4, 4))
	want := sqs(
		[2]int{4, 5}, [2]int{4, 6}, [2]int{4, 7}, [2]int{4, 8},
		[2]int{4, 3}, [2]int{4, 2}, [2]int{4, 1}, [2]int{4, 0},
		[2]int{5, 4}, [2]int{6, 4}, [2]int{7, 4}, [2]int{8, 4}, [2]int{9, 4},
		[2]int{3, 4}, [2]int{2, 4}, [2]int{1, 4}, [2]int{0, 4},
	)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("chariot moves:\n got  %v\n want %v", got, want)
	}
	// 8 squares in the row plus 9 in the column
	if len(got) != 17 {
		t.Fatalf("expected 17 destinations, got %d", len(got))
	}
}

func TestChariotStopsAtFirstPiece(t *testing.T) {
	s := emptyState(Red)
	place(s, Sq(4, 4), MakePiece(Red, PieceChariot))
	place(s, Sq(4, 6), MakePiece(Red, PieceSoldier))
	place(s, Sq(2, 4), MakePiece(Black, PieceHorse))

	got := mustMoves(t, s, Sq(4, 4))
	if contains(got, Sq(4, 6)) || contains(got, Sq(4, 7)) {
		t.Fatalf("chariot passed or captured a friendly piece: %v", got)
	}
	if !contains(got, Sq(4, 5)) {
		t.Fatalf("expected (4,5) in %v", got)
	}
	if !contains(got, Sq(2, 4)) {
		t.Fatalf("expected capture at (2,4) in %v", got)
	}
	if contains(got, Sq(1, 4)) {
		t.Fatalf("chariot jumped over enemy piece: %v", got)
	}
}

func TestHorseLegBlock(t *testing.T) {
	s := emptyState(Black)
	place(s, Sq(0, 0), MakePiece(Black, PieceHorse))

	if got, want := mustMoves(t, s, Sq(0, 0)), sqs([2]int{2, 1}, [2]int{1, 2}); !reflect.DeepEqual(got, want) {
		t.Fatalf("free horse: got %v want %v", got, want)
	}

	// 横向马腿，敌我都算
	place(s, Sq(0, 1), MakePiece(Red, PieceSoldier))
	got := mustMoves(t, s, Sq(0, 0))
	if contains(got, Sq(1, 2)) {
		t.Fatalf("leg at (0,1) should block (1,2): %v", got)
	}
	if !contains(got, Sq(2, 1)) {
		t.Fatalf("leg at (0,1) should not block (2,1): %v", got)
	}

	place(s, Sq(1, 0), MakePiece(Black, PieceSoldier))
	if got := mustMoves(t, s, Sq(0, 0)); len(got) != 0 {
		t.Fatalf("both legs blocked, expected no moves, got %v", got)
	}
}

func TestHorseFromCenter(t *testing.T) {
	s := emptyState(Red)
	place(s, Sq(5, 4), MakePiece(Red, PieceHorse))
	place(s, Sq(3, 3), MakePiece(Red, PieceSoldier)) // 己方子占落点
	place(s, Sq(7, 5), MakePiece(Black, PieceSoldier))

	got := mustMoves(t, s, Sq(5, 4))
	want := sqs(
		[2]int{3, 5},
		[2]int{7, 3}, [2]int{7, 5},
		[2]int{4, 2}, [2]int{6, 2},
		[2]int{4, 6}, [2]int{6, 6},
	)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("horse moves:\n got  %v\n want %v", got, want)
	}
}

func TestElephantRiverAndEye(t *testing.T) {
	s := emptyState(Black)
	place(s, Sq(4, 2), MakePiece(Black, PieceElephant))
	if got, want := mustMoves(t, s, Sq(4, 2)), sqs([2]int{2, 0}, [2]int{2, 4}); !reflect.DeepEqual(got, want) {
		t.Fatalf("black elephant at river: got %v want %v", got, want)
	}

	place(s, Sq(3, 3), MakePiece(Red, PieceSoldier)) // 塞象眼
	if got, want := mustMoves(t, s, Sq(4, 2)), sqs([2]int{2, 0}); !reflect.DeepEqual(got, want) {
		t.Fatalf("blocked eye: got %v want %v", got, want)
	}

	r := emptyState(Red)
	place(r, Sq(5, 6), MakePiece(Red, PieceElephant))
	if got, want := mustMoves(t, r, Sq(5, 6)), sqs([2]int{7, 4}, [2]int{7, 8}); !reflect.DeepEqual(got, want) {
		t.Fatalf("red elephant at river: got %v want %v", got, want)
	}
}

func TestElephantNeverCrossesRiver(t *testing.T) {
	for _, side := range []Side{Red, Black} {
		for r := 0; r < Rows; r++ {
			for c := 0; c < Cols; c++ {
				s := emptyState(side)
				place(s, Sq(r, c), MakePiece(side, PieceElephant))
				for _, to := range mustMoves(t, s, Sq(r, c)) {
					if side == Black && to.Row > 4 {
						t.Fatalf("black elephant from (%d,%d) reached row %d", r, c, to.Row)
					}
					if side == Red && to.Row < 5 {
						t.Fatalf("red elephant from (%d,%d) reached row %d", r, c, to.Row)
					}
				}
			}
		}
	}
}

func TestAdvisorAndGeneralStayInPalace(t *testing.T) {
	s := emptyState(Red)
	place(s, Sq(9, 3), MakePiece(Red, PieceAdvisor))
	if got, want := mustMoves(t, s, Sq(9, 3)), sqs([2]int{8, 4}); !reflect.DeepEqual(got, want) {
		t.Fatalf("corner advisor: got %v want %v", got, want)
	}

	s = emptyState(Black)
	place(s, Sq(1, 4), MakePiece(Black, PieceAdvisor))
	want := sqs([2]int{0, 3}, [2]int{0, 5}, [2]int{2, 3}, [2]int{2, 5})
	if got := mustMoves(t, s, Sq(1, 4)); !reflect.DeepEqual(got, want) {
		t.Fatalf("center advisor: got %v want %v", got, want)
	}

	s = emptyState(Red)
	place(s, Sq(9, 4), MakePiece(Red, PieceGeneral))
	want = sqs([2]int{9, 5}, [2]int{9, 3}, [2]int{8, 4})
	if got := mustMoves(t, s, Sq(9, 4)); !reflect.DeepEqual(got, want) {
		t.Fatalf("red general: got %v want %v", got, want)
	}

	s = emptyState(Black)
	place(s, Sq(2, 5), MakePiece(Black, PieceGeneral))
	place(s, Sq(1, 5), MakePiece(Black, PieceAdvisor))
	want = sqs([2]int{2, 4})
	if got := mustMoves(t, s, Sq(2, 5)); !reflect.DeepEqual(got, want) {
		t.Fatalf("black general at palace edge: got %v want %v", got, want)
	}
}

func TestCannonNeedsExactlyOneMount(t *testing.T) {
	enemy := Sq(5, 0)

	// 没有炮架：不能吃，也不能走到有子的格子
	s := emptyState(Red)
	place(s, Sq(9, 0), MakePiece(Red, PieceCannon))
	place(s, enemy, MakePiece(Black, PieceChariot))
	got := mustMoves(t, s, Sq(9, 0))
	if contains(got, enemy) {
		t.Fatalf("cannon captured without mount: %v", got)
	}
	if want := sqs([2]int{9, 1}, [2]int{9, 2}, [2]int{9, 3}, [2]int{9, 4}, [2]int{9, 5}, [2]int{9, 6}, [2]int{9, 7}, [2]int{9, 8},
		[2]int{8, 0}, [2]int{7, 0}, [2]int{6, 0}); !reflect.DeepEqual(got, want) {
		t.Fatalf("cannon without mount:\n got  %v\n want %v", got, want)
	}

	// 一个炮架：可以吃
	s = emptyState(Red)
	place(s, Sq(9, 0), MakePiece(Red, PieceCannon))
	place(s, Sq(7, 0), MakePiece(Red, PieceSoldier))
	place(s, enemy, MakePiece(Black, PieceChariot))
	got = mustMoves(t, s, Sq(9, 0))
	if !contains(got, enemy) {
		t.Fatalf("cannon with one mount should capture: %v", got)
	}
	if contains(got, Sq(6, 0)) || contains(got, Sq(7, 0)) {
		t.Fatalf("cannon may not land on or beyond the mount without capturing: %v", got)
	}

	// 两个子：被第二个子挡住
	place(s, Sq(6, 0), MakePiece(Black, PieceSoldier))
	got = mustMoves(t, s, Sq(9, 0))
	if contains(got, enemy) {
		t.Fatalf("cannon jumped two pieces: %v", got)
	}
	if !contains(got, Sq(6, 0)) {
		t.Fatalf("piece right after the mount is the capture target: %v", got)
	}

	// 翻山后第一个子是己方：该方向终止
	s = emptyState(Red)
	place(s, Sq(9, 0), MakePiece(Red, PieceCannon))
	place(s, Sq(7, 0), MakePiece(Black, PieceSoldier))
	place(s, Sq(6, 0), MakePiece(Red, PieceSoldier))
	place(s, enemy, MakePiece(Black, PieceChariot))
	if got := mustMoves(t, s, Sq(9, 0)); contains(got, enemy) || contains(got, Sq(6, 0)) {
		t.Fatalf("cannon should stop at the friendly piece after the mount: %v", got)
	}
}

func TestSoldierRiverCrossing(t *testing.T) {
	tests := []struct {
		name string
		side Side
		at   Square
		want []Square
	}{
		{"red before river", Red, Sq(6, 4), sqs([2]int{5, 4})},
		{"red on own bank", Red, Sq(5, 4), sqs([2]int{4, 4})},
		{"red crossed", Red, Sq(4, 4), sqs([2]int{3, 4}, [2]int{4, 3}, [2]int{4, 5})},
		{"red at far edge", Red, Sq(0, 0), sqs([2]int{0, 1})},
		{"black before river", Black, Sq(3, 4), sqs([2]int{4, 4})},
		{"black crossed", Black, Sq(5, 4), sqs([2]int{6, 4}, [2]int{5, 3}, [2]int{5, 5})},
		{"black at far edge", Black, Sq(9, 8), sqs([2]int{9, 7})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := emptyState(tt.side)
			place(s, tt.at, MakePiece(tt.side, PieceSoldier))
			got := mustMoves(t, s, tt.at)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v want %v", got, tt.want)
			}
		})
	}
}

func TestSoldierFriendlyPruning(t *testing.T) {
	s := emptyState(Red)
	place(s, Sq(3, 4), MakePiece(Red, PieceSoldier))
	place(s, Sq(2, 4), MakePiece(Red, PieceChariot))
	place(s, Sq(3, 3), MakePiece(Black, PieceHorse))
	got := mustMoves(t, s, Sq(3, 4))
	if want := sqs([2]int{3, 3}, [2]int{3, 5}); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestLegalMovesRespectsTurn(t *testing.T) {
	s := NewGame()
	moves, err := s.LegalMoves(Sq(0, 0))
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	if len(moves) != 0 {
		t.Fatalf("black piece offered moves on red's turn: %v", moves)
	}
	moves, err = s.LegalMoves(Sq(4, 4))
	if err != nil || len(moves) != 0 {
		t.Fatalf("empty square: moves=%v err=%v", moves, err)
	}
	moves, err = s.LegalMoves(Sq(7, 1))
	if err != nil {
		t.Fatalf("LegalMoves: %v", err)
	}
	if len(moves) == 0 {
		t.Fatalf("red cannon should have moves")
	}
	if _, err := s.LegalMoves(Sq(10, 0)); err != ErrInvalidSquare {
		t.Fatalf("expected ErrInvalidSquare, got %v", err)
	}
}

func TestOpeningMoveCount(t *testing.T) {
	s := NewGame()
	if got := len(s.Moves()); got != 44 {
		t.Fatalf("red opening moves = %d, want 44", got)
	}
	if got := len(s.MovesForSide(Black)); got != 44 {
		t.Fatalf("black opening moves = %d, want 44", got)
	}
}
