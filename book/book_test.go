package book

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"xiangqi/board"
)

func startFEN() string {
	b := board.Init()
	return b.FEN()
}

func TestLoad_ParsesValidLines(t *testing.T) {
	fen := startFEN()
	data := "h2e2 10 " + fen + "\n" + "b2e2 5 " + fen + "\n"
	bk, errs := Load(strings.NewReader(data))
	assert.Empty(t, errs)
	assert.Equal(t, 2, bk.Len())
}

func TestLoad_SkipsMalformedLinesButKeepsGoodOnes(t *testing.T) {
	fen := startFEN()
	data := "h2e2 10 " + fen + "\n" + "garbage line\n" + "b2e2 5 " + fen + "\n"
	bk, errs := Load(strings.NewReader(data))
	assert.Len(t, errs, 1)
	assert.Equal(t, 2, bk.Len())
}

func TestLoad_SkipsBlankAndCommentLines(t *testing.T) {
	fen := startFEN()
	data := "# a comment\n\n" + "h2e2 10 " + fen + "\n"
	bk, errs := Load(strings.NewReader(data))
	assert.Empty(t, errs)
	assert.Equal(t, 1, bk.Len())
}

func TestProbe_MatchesOnZkeyAndZlock(t *testing.T) {
	fen := startFEN()
	bk, errs := Load(strings.NewReader("h2e2 10 " + fen + "\n"))
	assert.Empty(t, errs)

	b := board.Init()
	move, ok := bk.Probe(b.Zkey, b.Zlock)
	assert.True(t, ok)
	assert.Equal(t, "h2e2", move)
}

func TestProbe_NoMatchReturnsFalse(t *testing.T) {
	bk, _ := Load(strings.NewReader(""))
	_, ok := bk.Probe(123, 456)
	assert.False(t, ok)
}

func TestProbe_UniformChoiceAmongDuplicateZkeyZlock(t *testing.T) {
	fen := startFEN()
	data := "h2e2 10 " + fen + "\n" + "b2e2 5 " + fen + "\n"
	bk, errs := Load(strings.NewReader(data))
	assert.Empty(t, errs)

	b := board.Init()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		move, ok := bk.Probe(b.Zkey, b.Zlock)
		assert.True(t, ok)
		seen[move] = true
	}
	assert.Len(t, seen, 2, "both book moves for this position should surface across many probes")
}
