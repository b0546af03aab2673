// Package ucci implements the line-based UCCI command dispatcher: it
// reads commands from an io.Reader and writes replies to an
// io.Writer, owning the single Board the search mutates in place. A
// `go` command always runs to completion before the next line is
// read, so no second command can ever be dispatched while the Board
// is mid-search.
package ucci

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"xiangqi/board"
	"xiangqi/book"
	"xiangqi/config"
	"xiangqi/engine"
)

var log = logging.MustGetLogger("ucci")

// positionPattern matches the position-command grammar
// `^(?:fen <FEN6>|startpos)(?: moves <uccimove>( <uccimove>)*)?$`,
// applied to the command with the leading "position " already
// trimmed.
var positionPattern = regexp.MustCompile(`^(?:fen (?P<fen>[^ ]+ [^ ]+ [^ ]+ [^ ]+ [^ ]+ [^ ]+)|(?P<startpos>startpos))(?: moves (?P<moves>[a-i][0-9][a-i][0-9](?: [a-i][0-9][a-i][0-9])*))?$`)

// Dispatcher owns the board under play and the engine's external
// collaborators (opening book, identity/config strings) across a
// whole UCCI session.
type Dispatcher struct {
	cfg  config.Config
	book book.Book
	b    board.Board
	out  io.Writer
}

// New returns a Dispatcher starting from the standard opening
// position, Red to move.
func New(cfg config.Config, bk book.Book, out io.Writer) *Dispatcher {
	return &Dispatcher{cfg: cfg, book: bk, b: board.Init(), out: out}
}

// Run reads one command per line from r until "quit" or EOF, writing
// replies to the Dispatcher's configured output.
func (d *Dispatcher) Run(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if d.dispatch(line) {
			return
		}
	}
}

// dispatch handles one command line and reports whether the loop
// should stop (i.e. "quit" was received).
func (d *Dispatcher) dispatch(line string) (stop bool) {
	switch {
	case line == "ucci":
		d.handleUcci()
	case line == "isready":
		d.reply("readyok")
	case strings.HasPrefix(line, "position "):
		d.handlePosition(strings.TrimPrefix(line, "position "))
	case strings.HasPrefix(line, "go"):
		d.handleGo(line)
	case line == "quit":
		d.reply("bye")
		return true
	default:
		log.Warningf("unrecognized command: %q", line)
		d.reply(fmt.Sprintf("unsupported command: %s", line))
	}
	return false
}

func (d *Dispatcher) handleUcci() {
	d.reply(fmt.Sprintf("id name %s", d.cfg.Engine.Name))
	d.reply(fmt.Sprintf("id copyright %s", d.cfg.Engine.Copyright))
	d.reply(fmt.Sprintf("id author %s", d.cfg.Engine.Author))
	d.reply("ucciok")
}

func (d *Dispatcher) handlePosition(spec string) {
	match := positionPattern.FindStringSubmatch(spec)
	if match == nil {
		log.Errorf("malformed position command: %q", spec)
		return
	}
	names := positionPattern.SubexpNames()
	groups := map[string]string{}
	for i, name := range names {
		if name != "" && i < len(match) {
			groups[name] = match[i]
		}
	}

	var b board.Board
	var err error
	if groups["startpos"] != "" {
		b = board.Init()
	} else {
		b, err = board.FromFEN(groups["fen"])
		if err != nil {
			log.Errorf("malformed FEN in position command: %v", err)
			return
		}
	}

	if moves := groups["moves"]; moves != "" {
		for _, uccimove := range strings.Fields(moves) {
			m, err := decodeMove(&b, uccimove)
			if err != nil {
				log.Errorf("malformed move in position command: %v", err)
				return
			}
			b.Apply(&m)
		}
	}
	d.b = b
}

// decodeMove splits a 4-character UCCI move into its from/to squares
// and reads the moving piece and any captured piece off the board as
// it stands immediately before the move.
func decodeMove(b *board.Board, uccimove string) (board.Move, error) {
	if len(uccimove) != 4 {
		return board.Move{}, fmt.Errorf("ucci: malformed move %q: want 4 characters", uccimove)
	}
	from, err := board.CoordToPos(uccimove[:2])
	if err != nil {
		return board.Move{}, fmt.Errorf("ucci: malformed move %q: %w", uccimove, err)
	}
	to, err := board.CoordToPos(uccimove[2:])
	if err != nil {
		return board.Move{}, fmt.Errorf("ucci: malformed move %q: %w", uccimove, err)
	}
	piece := b.At(from)
	return board.Move{
		Player:   b.Side,
		From:     from,
		To:       to,
		Piece:    piece,
		Captured: b.At(to),
	}, nil
}

// handleGo runs a search to the depth given by the last
// whitespace-separated token on the line and replies with the book
// move, the best move found, or "nobestmove".
func (d *Dispatcher) handleGo(line string) {
	depth := d.cfg.Search.DefaultDepth
	fields := strings.Fields(line)
	if len(fields) > 1 {
		if n, err := strconv.Atoi(fields[len(fields)-1]); err == nil {
			depth = n
		}
	}

	if move, ok := d.book.Probe(d.b.Zkey, d.b.Zlock); ok {
		log.Infof("book hit: %s", move)
		d.reply(fmt.Sprintf("bestmove %s", move))
		return
	}

	s := engine.NewSearcher(&d.b)
	score, pv := s.Search(depth)
	log.Infof("depth %d score %d nodes %d", depth, score, s.Counter)

	if len(pv) == 0 {
		d.reply("nobestmove")
		return
	}
	best := pv[len(pv)-1]
	d.reply(fmt.Sprintf("bestmove %s value %d", best.String(), score))
}

func (d *Dispatcher) reply(line string) {
	fmt.Fprintln(d.out, line)
}
