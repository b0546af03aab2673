package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZobrist_TablesAreNotAllZero(t *testing.T) {
	nonZero := false
	for _, table := range [][2][Height * Width][7]uint64{zkeyTable, zlockTable} {
		for _, bySquare := range table {
			for _, byKind := range bySquare {
				if byKind != 0 {
					nonZero = true
				}
			}
		}
	}
	assert.True(t, nonZero, "crypto/rand-seeded tables should not come out all-zero")
}

func TestZobrist_KeyAndLockTablesAreIndependent(t *testing.T) {
	identical := true
	for c := range zkeyTable {
		for sq := range zkeyTable[c] {
			for k := range zkeyTable[c][sq] {
				if zkeyTable[c][sq][k] != zlockTable[c][sq][k] {
					identical = false
				}
			}
		}
	}
	assert.False(t, identical, "zkey and zlock tables must be drawn independently")
}

func TestHashFromScratch_EmptyBoardIsZero(t *testing.T) {
	b := Empty()
	zkey, zlock := b.HashFromScratch()
	assert.Equal(t, uint64(0), zkey)
	assert.Equal(t, uint64(0), zlock)
}

func TestHashFromScratch_SideToMoveDoesNotAffectHash(t *testing.T) {
	b := Init()
	zkey, zlock := b.HashFromScratch()
	b.Side = Black
	zkey2, zlock2 := b.HashFromScratch()
	assert.Equal(t, zkey, zkey2)
	assert.Equal(t, zlock, zlock2)
}
