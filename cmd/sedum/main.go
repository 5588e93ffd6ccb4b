package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sedum/cmd/sedum/commands"
	"git.home.luguber.info/inful/sedum/internal/config"
	serrors "git.home.luguber.info/inful/sedum/internal/errors"
	"git.home.luguber.info/inful/sedum/internal/version"
)

func main() {
	if _, err := config.LoadEnvFiles(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load environment file: %v\n", err)
	}

	var cli commands.CLI
	parser := kong.Parse(&cli,
		kong.Name(version.Name),
		kong.Description("Convert a tree of markdown files into standalone HTML pages."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	err := parser.Run(&commands.Global{Logger: slog.Default()}, &cli)
	os.Exit(serrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).Report(err))
}
