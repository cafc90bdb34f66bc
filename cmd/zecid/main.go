package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zapp"
	"github.com/zarlcorp/zecid/internal/cli"
	"github.com/zarlcorp/zecid/internal/identity"
	"github.com/zarlcorp/zecid/internal/tui"
	"golang.org/x/term"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	app := zapp.New(zapp.WithName("zecid"))

	ctx, cancel := zapp.SignalContext(context.Background())
	defer cancel()

	if len(os.Args) > 1 {
		runCLI(ctx, os.Args[1])
		_ = app.Close()
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		cli.Usage(os.Stderr)
		_ = app.Close()
		os.Exit(1)
	}

	if err := runTUI(identity.New()); err != nil {
		slog.Error("tui", "err", err)
		_ = app.Close()
		os.Exit(1)
	}

	if err := app.Close(); err != nil {
		slog.Error("shutdown", "err", err)
		os.Exit(1)
	}
}

func runCLI(ctx context.Context, cmd string) {
	args := os.Args[2:]

	switch cmd {
	case "version":
		fmt.Printf("zecid %s\n", version)
	case "people":
		cli.CmdPeople(args)
	case "companies":
		cli.CmdCompanies(args)
	case "validate":
		cli.CmdValidate(args)
	case "provinces":
		cli.CmdProvinces(args)
	case "browse":
		b, err := cli.ParseBrowse(args, os.Stderr)
		if err != nil {
			if !errors.Is(err, flag.ErrHelp) {
				fmt.Fprintf(os.Stderr, "zecid: %v\n", err)
			}
			os.Exit(1)
		}
		if err := runTUI(b.Generator, tui.WithOptions(b.Options)); err != nil {
			slog.Error("tui", "err", err)
			os.Exit(1)
		}
	case "serve":
		cli.CmdServe(ctx, args, version)
	case "help", "-h", "--help":
		cli.Usage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "zecid: unknown command %q\n", cmd)
		cli.Usage(os.Stderr)
		os.Exit(1)
	}
}

func runTUI(gen *identity.Generator, opts ...tui.Option) error {
	p := tea.NewProgram(tui.New(version, gen, opts...), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
