package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"

	"aippt/common"
	"aippt/generate"
	"aippt/misc"
	"aippt/state"
)

const generateHelp = `%s
DESTINATION:
    deck store to add slides to, when it is a directory deck name is derived
    from configured name template or cover title
    if absent - current working directory

When destination deck consists of a single empty slide it is replaced by the
generated slides, otherwise generated slides are appended. Use --seed with a
value from the log to repeat random choices of a previous run.
`

const dumpConfigHelp = `%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Prints composition of default values and values from configuration file, with
--default prints configuration template embedded into the program.
`

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:         "generate",
		Usage:        "Generates slides from outline and adds them to the deck",
		OnUsageError: usageErrorHandler,
		Action:       generate.Run,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "templates", Aliases: []string{"t"}, Required: true, Usage: "template slides `FILE` (JSON)"},
			&cli.StringFlag{Name: "outline", Aliases: []string{"o"}, Required: true, Usage: "AI outline `FILE` (JSON array or slide stream)"},
			&cli.StringFlag{Name: "images", Aliases: []string{"i"}, Usage: "image pool `SOURCE`: directory, zip archive or JSON list"},
			&cli.Uint64Flag{Name: "seed", Usage: "seed of random choices (0 - derive from time)"},
			&cli.StringFlag{Name: "store", Usage: "deck store `KIND` (" + strings.Join(common.StoreKindNames(), ", ") + "), overrides configuration"},
			&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "start new deck even if destination exists"},
		},
		ArgsUsage:          "[DESTINATION]",
		CustomHelpTemplate: fmt.Sprintf(generateHelp, cli.CommandHelpTemplate),
	}
}

func dumpConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "dumpconfig",
		Usage: "Dumps either default or actual configuration (YAML)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
		},
		OnUsageError:       usageErrorHandler,
		Action:             outputConfiguration,
		ArgsUsage:          "DESTINATION",
		CustomHelpTemplate: fmt.Sprintf(dumpConfigHelp, cli.CommandHelpTemplate),
	}
}

func main() {
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "fills presentation templates with AI generated outline",
		Version:         fmt.Sprintf("%s (%s) : %s", misc.GetVersion(), runtime.Version(), misc.GetGitHash()),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "collect inputs, logs and deck dump into report archive"},
		},
		Commands: []*cli.Command{generateCommand(), dumpConfigCommand()},
	}

	err := app.Run(ctx, os.Args)
	stop()
	if err != nil {
		// log may be not set yet (argument parsing) or already closed
		if !errWasHandled {
			fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
		}
		os.Exit(1)
	}
}
