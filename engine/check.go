package engine

import "xiangqi/board"

// knightAttackOffsets are the 8 (dRow, dCol) vectors from a knight's
// square to its jump targets, paired with the (legDr, legDc) step from
// that same square toward the leg that must be empty for the jump in
// this direction to be legal. To find whether a knight attacks a
// given square K, we invert the vector to get the knight's candidate
// square N = K - offset, then check N's leg square directly — the
// same leg-blocking rule movegen applies, without going through it.
var knightAttackOffsets = [8]struct {
	dr, dc       int
	legDr, legDc int
}{
	{-2, -1, -1, 0}, {-2, 1, -1, 0}, {2, -1, 1, 0}, {2, 1, 1, 0},
	{-1, -2, 0, -1}, {1, -2, 0, -1}, {-1, 2, 0, 1}, {1, 2, 0, 1},
}

// rayDirs are the 4 orthogonal directions a Rook or Cannon slides
// along.
var rayDirs = [4]struct{ dr, dc int }{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// IsInCheck reports whether color's king is currently attacked. It
// walks the board directly from the king's square for each attacker
// kind instead of generating and discarding move lists, so a call
// makes no allocations.
func IsInCheck(b *board.Board, color board.Color) bool {
	king, ok := b.KingPosition(color)
	if !ok {
		return false
	}
	attacker := color.Other()

	if b.KingsFaceOff() {
		return true
	}

	for _, d := range rayDirs {
		screened := false
		for step := 1; ; step++ {
			p := board.Position{Row: king.Row + d.dr*step, Col: king.Col + d.dc*step}
			if !board.InBoard(p) {
				break
			}
			sq := b.At(p)
			if sq.Empty() {
				continue
			}
			if !screened {
				if sq.Color == attacker && sq.Kind == board.Rook {
					return true
				}
				screened = true
				continue
			}
			if sq.Color == attacker && sq.Kind == board.Cannon {
				return true
			}
			break
		}
	}

	for _, off := range knightAttackOffsets {
		n := board.Position{Row: king.Row - off.dr, Col: king.Col - off.dc}
		sq := b.At(n)
		if sq.Color != attacker || sq.Kind != board.Knight {
			continue
		}
		leg := board.Position{Row: n.Row + off.legDr, Col: n.Col + off.legDc}
		if b.At(leg).Empty() {
			return true
		}
	}

	forward := -1
	if attacker == board.Black {
		forward = 1
	}
	if sq := b.At(board.Position{Row: king.Row - forward, Col: king.Col}); sq.Color == attacker && sq.Kind == board.Pawn {
		return true
	}
	if !board.InOwnHalf(king.Row, attacker) {
		left := b.At(board.Position{Row: king.Row, Col: king.Col - 1})
		if left.Color == attacker && left.Kind == board.Pawn {
			return true
		}
		right := b.At(board.Position{Row: king.Row, Col: king.Col + 1})
		if right.Color == attacker && right.Kind == board.Pawn {
			return true
		}
	}

	return false
}
