package engine

import (
	"fmt"

	"dotsboxes/game"
	"dotsboxes/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Session is a human versus machine game. The machine answers every human
// move for as long as it keeps the turn.
type Session struct {
	board   *game.Board
	machine agent.Agent
}

func NewSession(width, height int, machine agent.Agent) (*Session, error) {
	board, err := game.NewBoard(width, height)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	s := &Session{
		board:   board,
		machine: machine,
	}
	s.reply()
	return s, nil
}

// Apply plays a human move. It returns false when the edge is taken, out of
// range or it is not the human's turn.
func (s *Session) Apply(edge game.EdgeID) bool {
	if s.board.Turn() == s.machine.Player() {
		return false
	}
	if !s.board.Apply(edge) {
		return false
	}
	s.reply()
	return true
}

// Restart clears the board and hands the first move to player.
func (s *Session) Restart(player game.Player) {
	s.board.Restart(player)
	s.reply()
}

func (s *Session) reply() {
	for s.board.Turn() == s.machine.Player() && !s.board.Terminal() {
		move, metric, ok := s.machine.FindMove(s.board)
		if !ok || !s.board.Apply(move) {
			log.Error().Msgf("machine failed to play %v", move)
			break
		}
		log.Debug().
			Str("move", move.String()).
			Int64("candidates", metric.Candidates).
			Int64("playouts", metric.Playouts).
			Dur("duration", metric.Duration).
			Msg("machine moved")
	}
}

func (s *Session) Width() int {
	return s.board.Width()
}

func (s *Session) Height() int {
	return s.board.Height()
}

func (s *Session) Turn() game.Player {
	return s.board.Turn()
}

func (s *Session) Machine() game.Player {
	return s.machine.Player()
}

func (s *Session) EdgeOwner(edge game.EdgeID) (game.Ownership, error) {
	return s.board.EdgeOwner(edge)
}

func (s *Session) CellOwner(col, row int) (game.Ownership, error) {
	return s.board.CellOwner(col, row)
}

func (s *Session) Terminal() bool {
	return s.board.Terminal()
}

// Winner returns "Red", "Blue", "Draw" or an empty string while the game runs.
func (s *Session) Winner() string {
	return winnerName(s.board)
}

// Board returns a copy of the current board.
func (s *Session) Board() *game.Board {
	return s.board.Clone()
}
