// Package book implements the opening book: a sorted array of
// (zkey, zlock, move, weight) entries probed by Zobrist hash via
// binary search, so entries sharing one zkey can still be
// disambiguated by zlock.
package book

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"

	"xiangqi/board"
)

// Entry is one opening-book line: the position's Zobrist keys, the
// UCCI move string to play from that position, and a reserved weight
// (selection is currently uniform; Weight is never read).
type Entry struct {
	Zkey   uint64
	Zlock  uint64
	Move   string
	Weight int32
}

// Book is an immutable, Zkey-sorted array of Entry, safe to Probe
// concurrently once Load returns.
type Book struct {
	entries []Entry
}

// Load reads a book file from r: one entry per line, formatted as
// "<uccimove> <weight> <fen>" where the FEN's first two fields
// (placement, side) are parsed into the entry's (Zkey, Zlock) via
// board.FromFEN. Blank lines and lines beginning with "#" are
// skipped. A line that fails to parse is itself skipped (logged by
// the caller, not returned as a fatal error) so one malformed line
// doesn't make the whole book file unusable.
func Load(r io.Reader) (Book, []error) {
	var entries []Entry
	var errs []error

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 8 {
			errs = append(errs, fmt.Errorf("book: line %d: expected move, weight and 6-field FEN, got %q", lineNo, line))
			continue
		}

		move := fields[0]
		weight, err := strconv.Atoi(fields[1])
		if err != nil {
			errs = append(errs, fmt.Errorf("book: line %d: malformed weight: %w", lineNo, err))
			continue
		}

		fen := strings.Join(fields[2:8], " ")
		b, err := board.FromFEN(fen)
		if err != nil {
			errs = append(errs, fmt.Errorf("book: line %d: %w", lineNo, err))
			continue
		}

		entries = append(entries, Entry{
			Zkey:   b.Zkey,
			Zlock:  b.Zlock,
			Move:   move,
			Weight: int32(weight),
		})
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("book: scanning input: %w", err))
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Zkey < entries[j].Zkey })
	return Book{entries: entries}, errs
}

// Probe looks up zkey via binary search, collects every entry whose
// Zkey and Zlock both match, and returns one of their move strings
// chosen uniformly at random. Returns ("", false) if no entry
// matches.
func (bk Book) Probe(zkey, zlock uint64) (string, bool) {
	lo := sort.Search(len(bk.entries), func(i int) bool { return bk.entries[i].Zkey >= zkey })

	var matches []Entry
	for i := lo; i < len(bk.entries) && bk.entries[i].Zkey == zkey; i++ {
		if bk.entries[i].Zlock == zlock {
			matches = append(matches, bk.entries[i])
		}
	}
	if len(matches) == 0 {
		return "", false
	}
	return matches[rand.IntN(len(matches))].Move, true
}

// Len reports the number of entries in the book.
func (bk Book) Len() int {
	return len(bk.entries)
}
