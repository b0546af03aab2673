package board

import (
	"crypto/rand"
	"encoding/binary"
)

// zkeyTable and zlockTable are two independent Zobrist tables indexed
// by [color-1][row*Width+col][kind-1]. They are process-wide,
// read-only after package init. Keeping zkey and zlock independent
// means a zkey collision between two different positions essentially
// never also collides under zlock.
var (
	zkeyTable  [2][Height * Width][7]uint64
	zlockTable [2][Height * Width][7]uint64
)

func init() {
	fillRandom(&zkeyTable)
	fillRandom(&zlockTable)
}

func fillRandom(table *[2][Height * Width][7]uint64) {
	var buf [8]byte
	for c := range table {
		for sq := range table[c] {
			for k := range table[c][sq] {
				if _, err := rand.Read(buf[:]); err != nil {
					panic("board: failed to seed zobrist table: " + err.Error())
				}
				table[c][sq][k] = binary.LittleEndian.Uint64(buf[:])
			}
		}
	}
}

// squareIndex maps a Position to its [0, Height*Width) zobrist index.
func squareIndex(p Position) int {
	return p.Row*Width + p.Col
}

// zobristTerm returns the (zkey, zlock) contribution of placing sq at
// p. Calling it with an empty square is a caller bug.
func zobristTerm(sq Square, p Position) (uint64, uint64) {
	ci := int(sq.Color) - 1
	ki := int(sq.Kind) - 1
	idx := squareIndex(p)
	return zkeyTable[ci][idx][ki], zlockTable[ci][idx][ki]
}

// HashFromScratch recomputes (zkey, zlock) from the board's current
// cells, independent of any incrementally maintained value. Used to
// initialize a freshly decoded board and, in tests, to check that the
// incrementally maintained hash hasn't drifted.
func (b *Board) HashFromScratch() (zkey, zlock uint64) {
	for r := 0; r < Height; r++ {
		for c := 0; c < Width; c++ {
			sq := b.Cells[r][c]
			if sq.Empty() {
				continue
			}
			k, l := zobristTerm(sq, Position{Row: r, Col: c})
			zkey ^= k
			zlock ^= l
		}
	}
	return zkey, zlock
}
