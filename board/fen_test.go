package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromFEN_StartingPositionRoundTrips(t *testing.T) {
	b := Init()
	fen := b.FEN()

	reparsed, err := FromFEN(fen)
	assert.NoError(t, err)
	assert.Equal(t, b.Cells, reparsed.Cells)
	assert.Equal(t, b.Side, reparsed.Side)
	assert.Equal(t, b.Zkey, reparsed.Zkey)
	assert.Equal(t, b.Zlock, reparsed.Zlock)
}

func TestFromFEN_PieceCounts(t *testing.T) {
	b := Init()
	fen := b.FEN()
	reparsed, err := FromFEN(fen)
	assert.NoError(t, err)

	counts := map[PieceKind]int{}
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			if sq := reparsed.Cells[r][c]; !sq.Empty() {
				counts[sq.Kind]++
			}
		}
	}
	assert.Equal(t, 2, counts[King])
	assert.Equal(t, 4, counts[Advisor])
	assert.Equal(t, 4, counts[Bishop])
	assert.Equal(t, 4, counts[Knight])
	assert.Equal(t, 4, counts[Rook])
	assert.Equal(t, 4, counts[Cannon])
	assert.Equal(t, 10, counts[Pawn])
}

func TestFromFEN_RejectsUnknownPieceLetter(t *testing.T) {
	_, err := FromFEN("9/9/9/9/9/9/9/9/9/4X4 w - - 0 1")
	assert.Error(t, err)
}

func TestFromFEN_RejectsRowNotSummingToWidth(t *testing.T) {
	_, err := FromFEN("9/9/9/9/9/9/9/9/9/4K3 w - - 0 1")
	assert.Error(t, err)
}

func TestFromFEN_RejectsWrongRowCount(t *testing.T) {
	_, err := FromFEN("9/9/9/9/9/9/9/9/4K4 w - - 0 1")
	assert.Error(t, err)
}

func TestFromFEN_SideField(t *testing.T) {
	b, err := FromFEN("9/9/9/9/9/9/9/9/9/4K4 b - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, Black, b.Side)
}
