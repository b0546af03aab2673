package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"xiangqi/board"
)

func TestIsInCheck_RookAlongOpenFile(t *testing.T) {
	b := board.Empty()
	b.Set(board.Position{Row: 9, Col: 4}, board.Square{Color: board.Red, Kind: board.King})
	b.Set(board.Position{Row: 0, Col: 4}, board.Square{Color: board.Black, Kind: board.Rook})
	assert.True(t, IsInCheck(&b, board.Red))
}

func TestIsInCheck_CannonRequiresExactlyOneScreen(t *testing.T) {
	b := board.Empty()
	b.Set(board.Position{Row: 9, Col: 4}, board.Square{Color: board.Red, Kind: board.King})
	b.Set(board.Position{Row: 0, Col: 4}, board.Square{Color: board.Black, Kind: board.Cannon})
	assert.False(t, IsInCheck(&b, board.Red), "no screen between cannon and king means no check")

	b.Set(board.Position{Row: 5, Col: 4}, board.Square{Color: board.Red, Kind: board.Pawn})
	assert.True(t, IsInCheck(&b, board.Red))
}

func TestIsInCheck_FlyingGeneral(t *testing.T) {
	b := board.Empty()
	b.Set(board.Position{Row: 9, Col: 4}, board.Square{Color: board.Red, Kind: board.King})
	b.Set(board.Position{Row: 0, Col: 4}, board.Square{Color: board.Black, Kind: board.King})
	assert.True(t, IsInCheck(&b, board.Red))
	assert.True(t, IsInCheck(&b, board.Black))
}

func TestIsInCheck_KnightDualLegBlock(t *testing.T) {
	b := board.Empty()
	b.Set(board.Position{Row: 5, Col: 4}, board.Square{Color: board.Red, Kind: board.King})
	b.Set(board.Position{Row: 3, Col: 3}, board.Square{Color: board.Black, Kind: board.Knight})
	assert.True(t, IsInCheck(&b, board.Red))

	b.Set(board.Position{Row: 4, Col: 3}, board.Square{Color: board.Red, Kind: board.Pawn})
	assert.False(t, IsInCheck(&b, board.Red), "leg blocked by the pawn on (4,3) must stop the knight check")
}

func TestIsInCheck_PawnAttackOnlySidewaysAfterRiver(t *testing.T) {
	b := board.Empty()
	b.Set(board.Position{Row: 5, Col: 4}, board.Square{Color: board.Red, Kind: board.King})
	b.Set(board.Position{Row: 5, Col: 3}, board.Square{Color: board.Black, Kind: board.Pawn})
	assert.True(t, IsInCheck(&b, board.Red), "black pawn past the river attacks sideways")
}

func TestSearch_KingOnlyEndgameReturnsBoundedScore(t *testing.T) {
	b, err := board.FromFEN("4k4/9/9/9/9/9/9/4p4/9/5K3 b - - 0 1")
	assert.NoError(t, err)

	s := NewSearcher(&b)
	score, _ := s.Search(3)
	assert.Greater(t, score, Min)
	assert.LessOrEqual(t, score, Max)
}

func TestSearch_ApplyUndoLeavesBoardUnchanged(t *testing.T) {
	b := board.Init()
	before := b
	s := NewSearcher(&b)
	s.Search(2)
	assert.Equal(t, before, b)
}

func TestSearch_MateDistanceMonotonicity(t *testing.T) {
	b, err := board.FromFEN("4k4/9/9/9/9/9/9/9/4p4/5K3 w - - 0 1")
	assert.NoError(t, err)

	s := NewSearcher(&b)
	shallow, _ := s.Search(1)
	deeper, _ := s.Search(3)
	if shallow <= Mate && deeper <= Mate {
		assert.LessOrEqual(t, deeper, shallow, "a deeper-found mate must not score higher than a shallower one")
	}
}
