package board

import (
	"fmt"
	"strconv"
	"strings"
)

var fenPieces = map[rune]Square{
	'k': {Color: Black, Kind: King},
	'a': {Color: Black, Kind: Advisor},
	'b': {Color: Black, Kind: Bishop},
	'n': {Color: Black, Kind: Knight},
	'r': {Color: Black, Kind: Rook},
	'c': {Color: Black, Kind: Cannon},
	'p': {Color: Black, Kind: Pawn},
	'K': {Color: Red, Kind: King},
	'A': {Color: Red, Kind: Advisor},
	'B': {Color: Red, Kind: Bishop},
	'N': {Color: Red, Kind: Knight},
	'R': {Color: Red, Kind: Rook},
	'C': {Color: Red, Kind: Cannon},
	'P': {Color: Red, Kind: Pawn},
}

var squareToFEN = map[PieceKind][2]rune{
	King:    {'k', 'K'},
	Advisor: {'a', 'A'},
	Bishop:  {'b', 'B'},
	Knight:  {'n', 'N'},
	Rook:    {'r', 'R'},
	Cannon:  {'c', 'C'},
	Pawn:    {'p', 'P'},
}

// FromFEN parses a space-separated FEN string (placement, side,
// castling, ep, halfmove, fullmove) into a Board. Only placement and
// side are read; any later fields are ignored. Returns an
// error for a placement row that doesn't sum to Width columns or for
// an unrecognized piece letter — a malformed FEN is a caller error,
// not a panic.
func FromFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return Board{}, fmt.Errorf("board: malformed FEN %q: need at least placement and side", fen)
	}

	b := Empty()
	rows := strings.Split(fields[0], "/")
	if len(rows) != Height {
		return Board{}, fmt.Errorf("board: malformed FEN %q: expected %d rows, got %d", fen, Height, len(rows))
	}
	for r, rowStr := range rows {
		col := 0
		for _, ch := range rowStr {
			if ch >= '1' && ch <= '9' {
				col += int(ch - '0')
				continue
			}
			sq, ok := fenPieces[ch]
			if !ok {
				return Board{}, fmt.Errorf("board: malformed FEN %q: unknown piece letter %q", fen, ch)
			}
			if col >= Width {
				return Board{}, fmt.Errorf("board: malformed FEN %q: row %d overflows board width", fen, r)
			}
			b.Set(Position{Row: r, Col: col}, sq)
			col++
		}
		if col != Width {
			return Board{}, fmt.Errorf("board: malformed FEN %q: row %d has %d columns, want %d", fen, r, col, Width)
		}
	}

	switch fields[1] {
	case "w", "r":
		b.Side = Red
	case "b":
		b.Side = Black
	default:
		return Board{}, fmt.Errorf("board: malformed FEN %q: unknown side %q", fen, fields[1])
	}

	b.Zkey, b.Zlock = b.HashFromScratch()
	return b, nil
}

// FEN encodes the board back into FEN placement+side, with the
// castling/ep/halfmove/fullmove fields fixed to the unused "- - 0 1"
// trailer.
func (b *Board) FEN() string {
	var sb strings.Builder
	for r := 0; r < Height; r++ {
		run := 0
		for c := 0; c < Width; c++ {
			sq := b.Cells[r][c]
			if sq.Empty() {
				run++
				continue
			}
			if run > 0 {
				sb.WriteString(strconv.Itoa(run))
				run = 0
			}
			letters := squareToFEN[sq.Kind]
			if sq.Color == Black {
				sb.WriteRune(letters[0])
			} else {
				sb.WriteRune(letters[1])
			}
		}
		if run > 0 {
			sb.WriteString(strconv.Itoa(run))
		}
		if r != Height-1 {
			sb.WriteByte('/')
		}
	}
	side := "w"
	if b.Side == Black {
		side = "b"
	}
	sb.WriteByte(' ')
	sb.WriteString(side)
	sb.WriteString(" - - 0 1")
	return sb.String()
}
