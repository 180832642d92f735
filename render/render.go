// Package render draws boards for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"dotsboxes/game"

	"github.com/muesli/termenv"
)

var colors = map[game.Player]string{
	game.Red:  "#E06C75",
	game.Blue: "#61AFEF",
}

// Board writes board to w, one line of dots and horizontal edges per dot row and
// one line of vertical edges and cells in between. Claimed edges and owned cells
// are colored by owner; the Ascii profile prints plain text.
func Board(w io.Writer, board *game.Board, profile termenv.Profile) error {
	builder := strings.Builder{}

	for row := range board.Height() {
		for col := range board.Width() {
			builder.WriteString("+")
			if col < board.Width()-1 {
				owner, _ := board.EdgeOwner(game.H(col, row))
				builder.WriteString(paint(profile, owner, "---", "   "))
			}
		}
		builder.WriteString("\n")

		if row == board.Height()-1 {
			break
		}
		for col := range board.Width() {
			owner, _ := board.EdgeOwner(game.V(col, row))
			builder.WriteString(paint(profile, owner, "|", " "))
			if col < board.Width()-1 {
				cell, _ := board.CellOwner(col, row)
				builder.WriteString(paint(profile, cell, " "+initial(cell)+" ", "   "))
			}
		}
		builder.WriteString("\n")
	}

	_, err := fmt.Fprint(w, builder.String())
	return err
}

// Status returns the score line shown under the board.
func Status(board *game.Board, profile termenv.Profile) string {
	red := paint(profile, game.OwnedBy(game.Red), fmt.Sprintf("Red %d", board.Score(game.Red)), "")
	blue := paint(profile, game.OwnedBy(game.Blue), fmt.Sprintf("Blue %d", board.Score(game.Blue)), "")
	if winner, ok := board.Winner(); ok {
		return fmt.Sprintf("%s - %s, %s wins", red, blue, winner)
	}
	if board.Terminal() {
		return fmt.Sprintf("%s - %s, draw", red, blue)
	}
	return fmt.Sprintf("%s - %s, %s to move", red, blue, board.Turn())
}

func paint(profile termenv.Profile, owner game.Ownership, claimed, free string) string {
	player, ok := owner.Owner()
	if !ok {
		return free
	}
	return profile.String(claimed).Foreground(profile.Color(colors[player])).String()
}

func initial(owner game.Ownership) string {
	player, ok := owner.Owner()
	if !ok {
		return " "
	}
	return player.String()[:1]
}
