package agent

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"goban/experiments/metrics"
	"goban/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type humanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewHumanAgent reads moves such as "D4", "pass" or "resign" from in and
// writes prompts to out. It resigns when in is exhausted.
func NewHumanAgent(in io.Reader, out io.Writer) Agent {
	return &humanAgent{in: bufio.NewScanner(in), out: out}
}

func (h *humanAgent) FindMove(state *game.GameState) (game.Move, metrics.SearchMetric) {
	for {
		fmt.Fprintf(h.out, "%s to play -- ", state.NextPlayer())
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				log.Error().Err(err).Msg("failed to read move")
			}
			return game.Resign(), metrics.SearchMetric{}
		}

		move, err := parseMove(h.in.Text())
		if err != nil {
			fmt.Fprintf(h.out, "%v\n", err)
			continue
		}
		if move.IsPlay() && !state.Board().IsOnGrid(move.Point) {
			fmt.Fprintf(h.out, "%v\n", errors.Wrapf(game.ErrOffGrid, "%s", move.Point))
			continue
		}
		if !state.IsValidMove(move) {
			fmt.Fprintf(h.out, "illegal move %s\n", move)
			continue
		}
		return move, metrics.SearchMetric{}
	}
}

func parseMove(text string) (game.Move, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "pass":
		return game.Pass(), nil
	case "resign":
		return game.Resign(), nil
	}
	point, err := game.ParsePoint(text)
	if err != nil {
		return game.Move{}, err
	}
	return game.Play(point), nil
}
