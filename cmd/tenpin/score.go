package main

import (
	"fmt"

	"github.com/lox/tenpin/bowling"
	"github.com/lox/tenpin/internal/scorecard"
)

// ScoreCmd prints the score of a game
type ScoreCmd struct {
	Pins  []int `arg:"" name:"pins" help:"Pins knocked down by each roll, in order"`
	Final bool  `help:"Fail unless the rolls make a complete game"`
}

func (c *ScoreCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	game, err := bowling.NewGameWithRolls(c.Pins...)
	if err != nil {
		return fmt.Errorf("invalid rolls: %w", err)
	}

	score := game.Score()
	if c.Final {
		if score, err = game.FinalScore(); err != nil {
			return fmt.Errorf("frame %d: %w", game.CurrentFrame(), err)
		}
	} else if !game.IsComplete() {
		logger.Warn().
			Int("frame", game.CurrentFrame()).
			Int("rolls", len(c.Pins)).
			Msg("Game is incomplete, printing partial score")
	}

	_, err = fmt.Fprintln(g.out, score)
	return err
}

// CardCmd prints the scorecard of a game
type CardCmd struct {
	Pins   []int  `arg:"" name:"pins" optional:"" help:"Pins knocked down by each roll, in order"`
	Player string `help:"Player name printed above the card (defaults to config player)"`
}

func (c *CardCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	game, err := bowling.NewGameWithRolls(c.Pins...)
	if err != nil {
		return fmt.Errorf("invalid rolls: %w", err)
	}

	player := c.Player
	if player == "" {
		player = cfg.Player
	}
	logger.Debug().Ints("rolls", c.Pins).Int("score", game.Score()).Msg("Rendering scorecard")

	_, err = fmt.Fprint(g.out, scorecard.Render(game.Frames(), scorecard.Options{
		Player: player,
		Color:  !cfg.NoColor,
	}))
	return err
}
