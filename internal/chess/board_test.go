package chess

import (
	"errors"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

func TestPlaceInitialSetup(t *testing.T) {
	b := NewBoardInitial()

	backRank := [Size]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			got := b.PieceAt(Position{X: x, Y: y})
			var want *Piece
			switch y {
			case 0:
				want = &Piece{Type: backRank[x], Color: Black}
			case 1:
				want = &Piece{Type: Pawn, Color: Black}
			case Size - 2:
				want = &Piece{Type: Pawn, Color: White}
			case Size - 1:
				want = &Piece{Type: backRank[x], Color: White}
			}

			if want == nil {
				if got != nil {
					t.Errorf("(%d,%d): got %s, want empty", x, y, got.DisplayName())
				}
				continue
			}
			if got == nil {
				t.Errorf("(%d,%d): got empty, want %s", x, y, want.DisplayName())
				continue
			}
			if got.Type != want.Type || got.Color != want.Color {
				t.Errorf("(%d,%d): got %s, want %s", x, y, got.DisplayName(), want.DisplayName())
			}
			if got.HasMoved {
				t.Errorf("(%d,%d): %s starts with HasMoved set", x, y, got.DisplayName())
			}
		}
	}
}

func TestPlaceInitialSetupResetsBoard(t *testing.T) {
	b := NewBoard()
	b.SetPieceAt(Position{X: 4, Y: 4}, &Piece{Type: Queen, Color: White})
	b.PlaceInitialSetup()

	if got := b.PieceAt(Position{X: 4, Y: 4}); got != nil {
		t.Fatalf("(4,4) after setup: got %s, want empty", got.DisplayName())
	}
}

func TestMovePieceIllegalTargetLeavesBoardUnchanged(t *testing.T) {
	b := NewBoardInitial()
	before := spew.Sdump(b)

	// a pawn cannot jump three squares
	err := b.MovePiece(Position{X: 0, Y: 6}, Position{X: 0, Y: 3})
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("got err=%v, want ErrIllegalMove", err)
	}
	if after := spew.Sdump(b); after != before {
		t.Fatalf("board changed on illegal move:\nbefore: %s\nafter: %s", before, after)
	}
}

func TestMovePieceEmptyOrigin(t *testing.T) {
	b := NewBoardInitial()
	if err := b.MovePiece(Position{X: 4, Y: 4}, Position{X: 4, Y: 3}); !errors.Is(err, ErrNoPiece) {
		t.Fatalf("got err=%v, want ErrNoPiece", err)
	}
	if err := b.MovePiece(Position{X: -1, Y: 0}, Position{X: 0, Y: 0}); !errors.Is(err, ErrNoPiece) {
		t.Fatalf("off-board origin: got err=%v, want ErrNoPiece", err)
	}
}

func TestMovePieceRelocates(t *testing.T) {
	b := NewBoardInitial()
	from := Position{X: 4, Y: 6}
	to := Position{X: 4, Y: 4}

	pawn := b.PieceAt(from)
	if err := b.MovePiece(from, to); err != nil {
		t.Fatalf("MovePiece: %v", err)
	}
	if got := b.PieceAt(from); got != nil {
		t.Fatalf("origin still occupied by %s", got.DisplayName())
	}
	if got := b.PieceAt(to); got != pawn {
		t.Fatalf("target does not hold the moved pawn")
	}
	if !pawn.HasMoved {
		t.Fatal("HasMoved not set after a successful move")
	}
}

func TestMovePieceCaptureDiscardsOccupant(t *testing.T) {
	b := NewBoard()
	b.SetPieceAt(Position{X: 3, Y: 3}, &Piece{Type: Rook, Color: White})
	victim := &Piece{Type: Bishop, Color: Black}
	b.SetPieceAt(Position{X: 3, Y: 0}, victim)

	if err := b.MovePiece(Position{X: 3, Y: 3}, Position{X: 3, Y: 0}); err != nil {
		t.Fatalf("MovePiece: %v", err)
	}
	got := b.PieceAt(Position{X: 3, Y: 0})
	if got == victim {
		t.Fatal("captured bishop still on the board")
	}
	if got == nil || got.Type != Rook {
		t.Fatalf("target cell: got %v, want the rook", got)
	}
}

func TestMovePieceDisablesPawnDoubleStep(t *testing.T) {
	b := NewBoard()
	b.SetPieceAt(Position{X: 4, Y: 6}, &Piece{Type: Pawn, Color: White})

	if err := b.MovePiece(Position{X: 4, Y: 6}, Position{X: 4, Y: 5}); err != nil {
		t.Fatalf("MovePiece: %v", err)
	}
	want := []Position{{X: 4, Y: 4}}
	if got := b.PotentialMoves(Position{X: 4, Y: 5}); !reflect.DeepEqual(got, want) {
		t.Fatalf("moves after first step: got %v, want %v", got, want)
	}
}

func TestPieceAtOffBoard(t *testing.T) {
	b := NewBoardInitial()
	for _, pos := range []Position{
		{X: -1, Y: 0}, {X: 0, Y: -1}, {X: Size, Y: 0}, {X: 0, Y: Size}, {X: 100, Y: 100},
	} {
		if got := b.PieceAt(pos); got != nil {
			t.Fatalf("PieceAt(%v): got %s, want nil", pos, got.DisplayName())
		}
	}
}

func TestSetPieceAtOffBoardPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on off-board placement")
		}
	}()
	NewBoard().SetPieceAt(Position{X: 8, Y: 0}, &Piece{Type: Pawn, Color: White})
}
