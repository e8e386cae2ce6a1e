package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lox/tenpin/bowling"
	"github.com/lox/tenpin/internal/gameid"
	"github.com/lox/tenpin/internal/record"
	"github.com/lox/tenpin/internal/scorecard"
)

// RecordCmd writes a game record to stdout
type RecordCmd struct {
	Pins   []int  `arg:"" name:"pins" help:"Pins knocked down by each roll, in order"`
	Player string `help:"Player name (defaults to config player)"`
	Lane   *int   `help:"Lane number (defaults to config lane)"`

	now func() time.Time
}

func (c *RecordCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	game, err := bowling.NewGameWithRolls(c.Pins...)
	if err != nil {
		return fmt.Errorf("invalid rolls: %w", err)
	}
	if !game.IsComplete() {
		logger.Warn().Int("frame", game.CurrentFrame()).Msg("Recording an incomplete game")
	}

	player := c.Player
	if player == "" {
		player = cfg.Player
	}
	now := time.Now
	if c.now != nil {
		now = c.now
	}

	rec := record.FromGame(game, gameid.Generate(), player, now())
	rec.Lane = cfg.Lane
	if c.Lane != nil {
		if *c.Lane < 0 {
			return fmt.Errorf("invalid lane: %d", *c.Lane)
		}
		rec.Lane = *c.Lane
	}

	logger.Debug().Str("game", rec.GameID).Int("score", rec.Score).Msg("Writing game record")
	return record.Encode(g.out, rec)
}

// ReplayCmd replays a record file and prints each game's scorecard
type ReplayCmd struct {
	File  string `arg:"" name:"file" help:"Path to a TOML game record or session file"`
	Limit int    `help:"Maximum number of games to replay (0 = all)"`
}

func (c *ReplayCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	f, err := os.Open(filepath.Clean(c.File))
	if err != nil {
		return err
	}
	defer f.Close()

	recs, err := record.DecodeSession(f)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.File, err)
	}

	limit := c.Limit
	if limit <= 0 || limit > len(recs) {
		limit = len(recs)
	}

	failed := 0
	printed := false
	for i := 0; i < limit; i++ {
		rec := recs[i]
		game, err := rec.Replay()
		if err != nil {
			failed++
			logger.Error().Err(err).Str("game", rec.GameID).Msg("Game failed verification")
			if !errors.Is(err, record.ErrScoreMismatch) && !errors.Is(err, record.ErrCompleteMismatch) {
				continue
			}
		}

		if printed {
			fmt.Fprintln(g.out)
		}
		printed = true
		fmt.Fprint(g.out, scorecard.Render(game.Frames(), scorecard.Options{
			Player: rec.Player,
			Color:  !cfg.NoColor,
		}))
		logger.Info().
			Str("game", rec.GameID).
			Str("player", rec.Player).
			Int("score", game.Score()).
			Bool("complete", game.IsComplete()).
			Msg("Replayed game")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d games failed verification", failed, limit)
	}
	return nil
}
