package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	getopt "github.com/pborman/getopt/v2"
	"github.com/spf13/cobra"

	"github.com/cmdf-dev/cmdf/core/arglist"
	"github.com/cmdf-dev/cmdf/core/config"
	"github.com/cmdf-dev/cmdf/core/logger"
	"github.com/cmdf-dev/cmdf/core/registry"
	"github.com/cmdf-dev/cmdf/core/shell"
	"github.com/cmdf-dev/cmdf/core/term"
)

const demoBanner = `demo - A small interactive shell built on the cmdf engine.
You can use this as a reference on how to use the library!`

const printArgsHelp = `This is a very long help string for a command. ` +
	`As you can see, this is wrapped properly to the width of your ` +
	`terminal. It's pretty good!`

var logPath string

// demoCmd runs an interactive shell with a nested submenu session.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive demo shell.",
	Args:  cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		profile, err := loadProfile()
		if err != nil {
			return err
		}

		var log *logger.SessionLogger
		if logPath != "" {
			logFd, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
			if err != nil {
				return err
			}
			defer logFd.Close()
			log = logger.NewJsonLinesLogRecorder(logFd).NewSession()
		}

		var sh *shell.Shell
		src, err := term.NewReadlineSource(os.Stdin, os.Stdout, os.Stderr, func() []string {
			return sh.ActiveCommandNames()
		})
		if err != nil {
			return err
		}
		defer src.Close()

		out := cmd.OutOrStdout()
		sh = shell.New(src, out, shell.Options{
			MaxCommandsPerSession: profile.MaxCommandsPerSession,
			MaxNestingDepth:       profile.MaxNestingDepth,
			Log:                   log,
			Wrap:                  term.WrapPrinter(func() int { return term.Width(80) }),
			Color:                 !color.NoColor,
		})

		top := sh.StartSession(shell.Config{
			Prompt:      profile.Prompt,
			Banner:      demoBanner,
			DocHeader:   profile.DocHeader,
			UndocHeader: profile.UndocHeader,
			Ruler:       profile.RulerRune(),
			EnableExit:  profile.EnableDefaultExit,
		})

		top.Register("hello", "", hello(out))
		top.Register("greet", "Greets you.", greet(out))
		top.Register("printargs", printArgsHelp, printArgs(out))
		top.Register("submenu", "Enter a nested session.", submenu(sh, out, profile))

		top.Run()
		return nil
	},
}

func hello(out io.Writer) registry.Handler {
	return func(args *arglist.ArgList) error {
		fmt.Fprintln(out, "\nHello, world!")
		return nil
	}
}

func greet(out io.Writer) registry.Handler {
	return func(args *arglist.ArgList) error {
		if args.Len() == 0 {
			fmt.Fprintln(out, "Hello there!")
			return nil
		}
		fmt.Fprintf(out, "Hello, %s!\n", args.Args[0])
		return nil
	}
}

func printArgs(out io.Writer) registry.Handler {
	return func(args *arglist.ArgList) error {
		opts := getopt.New()
		quote := opts.Bool('q', "single-quote each argument")

		argv := []string{"printargs"}
		if args != nil {
			argv = append(argv, args.Args...)
		}
		if err := opts.Getopt(argv, nil); err != nil {
			fmt.Fprintf(out, "printargs: %v\n", err)
			return shell.ErrArgument
		}

		if args == nil {
			fmt.Fprintln(out, "\nNo arguments provided!")
			return nil
		}

		rest := opts.Args()
		fmt.Fprintf(out, "\nTotal arguments = %d\n", len(rest))
		for i, arg := range rest {
			if *quote {
				arg = "'" + arg + "'"
			}
			fmt.Fprintf(out, "Argument %d: %s\n", i, arg)
		}
		return nil
	}
}

func submenu(sh *shell.Shell, out io.Writer, profile *config.Profile) registry.Handler {
	return func(args *arglist.ArgList) error {
		sub := sh.StartSession(shell.Config{
			Prompt:      "(cmdf/submenu) ",
			Banner:      "This is a submenu!",
			DocHeader:   profile.DocHeader,
			UndocHeader: profile.UndocHeader,
			Ruler:       profile.RulerRune(),
			EnableExit:  true,
		})
		if sub == nil {
			return shell.ErrOutOfStackSpace
		}

		sub.Register("ping", "Answers with pong.", func(args *arglist.ArgList) error {
			fmt.Fprintln(out, "pong")
			return nil
		})
		sub.Register("hello", "", hello(out))
		sub.Register("printargs", "", printArgs(out))

		sub.Run()
		return nil
	}
}

func init() {
	demoCmd.Flags().StringVar(&logPath, "log", "", "append JSON-lines engine events to this file")
	rootCmd.AddCommand(demoCmd)
}
