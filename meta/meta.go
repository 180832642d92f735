// meta/meta.go
package meta

// ROLLOUTS defines the number of random playouts per candidate move.
const ROLLOUTS = 5

// SAMPLE_RETRIES defines how many random edge draws are tried before
// sampling from the list of free edges.
const SAMPLE_RETRIES = 3

// BOARD_WIDTH and BOARD_HEIGHT define the default board size in dots.
const BOARD_WIDTH = 4
const BOARD_HEIGHT = 3

// MAX_TURNS caps a local game; a finished board never needs more moves than it has edges.
const MAX_TURNS = 10000

// NUM_GAMES defines the number of games per experiment matchup.
const NUM_GAMES = 30
