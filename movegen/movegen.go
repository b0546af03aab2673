// Package movegen produces pseudo-legal Xiangqi moves: it enumerates
// per-piece-kind candidate targets and turns them into a move list
// for the side to move.
package movegen

import (
	"sort"

	"xiangqi/board"
)

// PieceTargets returns every square that kind, sitting at from and
// belonging to mover, could move to by its own movement pattern,
// before the board-edge / palace / river / friendly-occupancy filters
// that GenerateMoves applies. Only Pawn targets depend on mover.
func PieceTargets(b *board.Board, from board.Position, kind board.PieceKind, mover board.Color) []board.Position {
	switch kind {
	case board.King:
		return []board.Position{
			{Row: from.Row - 1, Col: from.Col},
			{Row: from.Row + 1, Col: from.Col},
			{Row: from.Row, Col: from.Col - 1},
			{Row: from.Row, Col: from.Col + 1},
		}
	case board.Advisor:
		return []board.Position{
			{Row: from.Row - 1, Col: from.Col - 1},
			{Row: from.Row - 1, Col: from.Col + 1},
			{Row: from.Row + 1, Col: from.Col - 1},
			{Row: from.Row + 1, Col: from.Col + 1},
		}
	case board.Bishop:
		return bishopTargets(b, from)
	case board.Knight:
		return knightTargets(b, from)
	case board.Rook:
		return rookTargets(b, from)
	case board.Cannon:
		return cannonTargets(b, from)
	case board.Pawn:
		return pawnTargets(from, mover)
	default:
		return nil
	}
}

func bishopTargets(b *board.Board, from board.Position) []board.Position {
	var targets []board.Position
	type diag struct{ dr, dc int }
	for _, d := range []diag{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}} {
		eye := board.Position{Row: from.Row + d.dr, Col: from.Col + d.dc}
		if b.At(eye).Empty() {
			targets = append(targets, board.Position{Row: from.Row + 2*d.dr, Col: from.Col + 2*d.dc})
		}
	}
	return targets
}

func knightTargets(b *board.Board, from board.Position) []board.Position {
	var targets []board.Position
	type leg struct {
		legDr, legDc     int
		jump1Dr, jump1Dc int
		jump2Dr, jump2Dc int
	}
	legs := []leg{
		{-1, 0, -2, -1, -2, 1},
		{1, 0, 2, -1, 2, 1},
		{0, -1, -1, -2, 1, -2},
		{0, 1, -1, 2, 1, 2},
	}
	for _, l := range legs {
		legSq := board.Position{Row: from.Row + l.legDr, Col: from.Col + l.legDc}
		if b.At(legSq).Empty() {
			targets = append(targets,
				board.Position{Row: from.Row + l.jump1Dr, Col: from.Col + l.jump1Dc},
				board.Position{Row: from.Row + l.jump2Dr, Col: from.Col + l.jump2Dc},
			)
		}
	}
	return targets
}

type dir struct{ dr, dc int }

var orthogonalDirs = []dir{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func rookTargets(b *board.Board, from board.Position) []board.Position {
	var targets []board.Position
	for _, d := range orthogonalDirs {
		for step := 1; ; step++ {
			p := board.Position{Row: from.Row + d.dr*step, Col: from.Col + d.dc*step}
			if !board.InBoard(p) {
				break
			}
			targets = append(targets, p)
			if !b.At(p).Empty() {
				break
			}
		}
	}
	return targets
}

func cannonTargets(b *board.Board, from board.Position) []board.Position {
	var targets []board.Position
	for _, d := range orthogonalDirs {
		screened := false
		for step := 1; ; step++ {
			p := board.Position{Row: from.Row + d.dr*step, Col: from.Col + d.dc*step}
			if !board.InBoard(p) {
				break
			}
			occupied := !b.At(p).Empty()
			if !screened {
				if occupied {
					screened = true
				} else {
					targets = append(targets, p)
				}
			} else if occupied {
				targets = append(targets, p)
				break
			}
		}
	}
	return targets
}

// pawnTargets returns a pawn's candidate targets: one step toward the
// opposing side always, plus a sideways step once the pawn has
// crossed the river. Red advances toward row 0, Black toward row
// Height-1.
func pawnTargets(from board.Position, mover board.Color) []board.Position {
	forward := 1
	if mover == board.Red {
		forward = -1
	}
	targets := []board.Position{{Row: from.Row + forward, Col: from.Col}}
	if !board.InOwnHalf(from.Row, mover) {
		targets = append(targets,
			board.Position{Row: from.Row, Col: from.Col - 1},
			board.Position{Row: from.Row, Col: from.Col + 1},
		)
	}
	return targets
}

// legalShape reports whether a piece of kind belonging to mover may
// land on to, given target, the square currently at to. It applies
// the board-edge, palace and
// own-half constraints that PieceTargets' raw geometry doesn't
// encode, plus the friendly-fire filter shared by every piece kind.
func legalShape(kind board.PieceKind, to board.Position, mover board.Color, target board.Square) bool {
	if !board.InBoard(to) {
		return false
	}
	if target.BelongsTo(mover) {
		return false
	}
	switch kind {
	case board.King, board.Advisor:
		return board.InPalace(to, mover)
	case board.Bishop:
		return board.InOwnHalf(to.Row, mover)
	default:
		return true
	}
}

// GenerateMoves appends every pseudo-legal move for b.Side to *buf and
// returns the resulting slice. buf may be nil or reused across calls
// (its backing array is reset, not reallocated, when it has spare
// capacity), so a recursive search can pass the same buffer in at
// every call and avoid per-node allocation. Moves are ordered by
// descending MVV-LVA score (captured piece value first,
// attacker value breaking ties toward the cheaper attacker) to help
// the search cut off earlier; this is a move-ordering heuristic only,
// not a legality filter — the caller is still responsible for
// rejecting moves that leave the mover's own king in check.
func GenerateMoves(b *board.Board, buf *[]board.Move) []board.Move {
	moves := (*buf)[:0]
	mover := b.Side

	for r := 0; r < board.Height; r++ {
		for c := 0; c < board.Width; c++ {
			from := board.Position{Row: r, Col: c}
			sq := b.Cells[r][c]
			if !sq.BelongsTo(mover) {
				continue
			}
			for _, to := range PieceTargets(b, from, sq.Kind, mover) {
				target := b.At(to)
				if !legalShape(sq.Kind, to, mover, target) {
					continue
				}
				moves = append(moves, board.Move{
					Player:   mover,
					From:     from,
					To:       to,
					Piece:    sq,
					Captured: target,
				})
			}
		}
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return moveOrderScore(moves[i]) > moveOrderScore(moves[j])
	})

	*buf = moves
	return moves
}

// moveOrderScore implements MVV-LVA (most valuable victim, least
// valuable attacker): captures sort before quiet moves, ranked by the
// captured piece's value, with the attacker's value as a tiebreak
// toward cheaper attackers.
func moveOrderScore(m board.Move) int {
	if m.Captured.Empty() {
		return 0
	}
	return 8*m.Captured.Kind.Value() - m.Piece.Kind.Value()
}
