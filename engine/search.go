package engine

import (
	"xiangqi/board"
	"xiangqi/movegen"
)

const (
	// Min and Max bound every score the search can return. Mate is
	// the top of the reserved mate-score band just above Min; a
	// shallower mate scores closer to Min than a deeper one.
	Min  = -99999
	Max  = 99999
	Mate = Min + 100

	// MaxDepth bounds the iterative-deepening ceiling.
	MaxDepth = 64
)

// Searcher holds the board under search plus the counters a caller
// can read back for UCCI's "info" reporting. It owns no transposition
// table and no killer-move/history heuristics, only the move-ordering
// MVV-LVA baked into movegen.GenerateMoves.
type Searcher struct {
	Board *board.Board

	// Counter is the number of leaf evaluations; GenCounter is the
	// number of move-generation calls. Both reset at the start of
	// each iterative-deepening depth.
	Counter    uint64
	GenCounter uint64

	buffers [MaxDepth + 1][]board.Move
}

// NewSearcher returns a Searcher over b. b is not copied; the search
// mutates it in place via Apply/Undo and leaves it unchanged once
// Search returns.
func NewSearcher(b *board.Board) *Searcher {
	return &Searcher{Board: b}
}

// Search runs iterative deepening from depth 1 through maxDepth
// inclusive, each iteration searching the full width from the
// original position, and returns the score and principal variation of
// the deepest completed iteration. The PV is ordered root-move-last.
func (s *Searcher) Search(maxDepth int) (score int, pv []board.Move) {
	if maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}
	for depth := 1; depth <= maxDepth; depth++ {
		s.Counter = 0
		s.GenCounter = 0
		score, pv = s.search(depth, Min, Max)
	}
	return score, pv
}

// search implements negamax with Principal Variation Search: the
// first move at each node is searched with the full (alpha, beta)
// window, every later move first with a zero-window probe and only
// re-searched with the full window if the probe fails high inside the
// window. A move that leaves the mover's own king in check is
// rejected after Apply.
func (s *Searcher) search(depth, alpha, beta int) (int, []board.Move) {
	if depth == 0 {
		s.Counter++
		return Evaluate(s.Board, s.Board.Side), nil
	}

	buf := s.buffers[depth]
	moves := movegen.GenerateMoves(s.Board, &buf)
	s.buffers[depth] = buf
	s.GenCounter++

	mover := s.Board.Side
	tried := 0
	var bestPV []board.Move

	for i := range moves {
		m := moves[i]
		s.Board.Apply(&m)
		if IsInCheck(s.Board, mover) {
			s.Board.Undo(&m)
			continue
		}
		tried++

		var v int
		var childPV []board.Move
		if tried == 1 {
			v, childPV = s.search(depth-1, -beta, -alpha)
			v = -v
		} else {
			v, childPV = s.search(depth-1, -(alpha+1), -alpha)
			v = -v
			if v > alpha && v < beta {
				v, childPV = s.search(depth-1, -beta, -alpha)
				v = -v
			}
		}
		s.Board.Undo(&m)

		if v >= beta {
			return v, nil
		}
		if v > alpha {
			alpha = v
			bestPV = append(append([]board.Move{}, childPV...), m)
		}
	}

	if tried == 0 {
		return Mate - depth, nil
	}
	return alpha, bestPV
}
