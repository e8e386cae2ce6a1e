package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/lox/tenpin/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Score   ScoreCmd         `cmd:"" help:"Print the score for a sequence of rolls"`
	Card    CardCmd          `cmd:"" help:"Print the scorecard for a sequence of rolls"`
	Record  RecordCmd        `cmd:"" help:"Write a TOML game record for a sequence of rolls"`
	Replay  ReplayCmd        `cmd:"" help:"Replay and verify a TOML game record file"`
}

func main() {
	cli := CLI{Globals: Globals{out: os.Stdout, errOut: os.Stderr}}
	ctx := kong.Parse(&cli,
		kong.Name("tenpin"),
		kong.Description("Ten-pin bowling score calculator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
