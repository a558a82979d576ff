// Package cmd provides the command-line interface for cheatsheet.
// It binds flags, builds the collaborators and is the only place that prints
// results and decides the exit code.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/toozej/cheatsheet/internal/cheatsheet"
	"github.com/toozej/cheatsheet/internal/opener"
	"github.com/toozej/cheatsheet/internal/render"
	"github.com/toozej/cheatsheet/internal/tui"
	"github.com/toozej/cheatsheet/pkg/config"
	"github.com/toozej/cheatsheet/pkg/man"
	"github.com/toozej/cheatsheet/pkg/version"
)

const (
	usage           = "Usage: cheatsheet <name>"
	maxSuggestions  = 3
	noMatchMessage  = "No matching files found"
	suggestionTitle = "Did you mean:"
)

var rootCmd = &cobra.Command{
	Use:              "cheatsheet <name>",
	Short:            "Open the cheatsheet whose name matches",
	Long:             `Find a cheatsheet next to the cheatsheet binary by name, render it if it is Markdown, and open it with the default application`,
	Args:             cobra.ArbitraryArgs,
	Version:          version.Get().String(),
	SilenceUsage:     true,
	PersistentPreRun: rootCmdPreRun,
	Run:              rootCmdRun,
}

// app bundles the collaborators used by run so tests can replace them.
type app struct {
	fs         afero.Fs
	dispatcher *cheatsheet.Dispatcher
	pick       func([]cheatsheet.CandidateFile, string) (cheatsheet.CandidateFile, bool, error)
	stdout     io.Writer
	stderr     io.Writer
}

func rootCmdRun(cmd *cobra.Command, args []string) {
	if viper.GetBool("man") {
		page, err := man.Render(cmd.Root())
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(page)
		return
	}

	conf, err := config.Load(viper.GetViper())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fs := afero.NewOsFs()
	a := app{
		fs: fs,
		dispatcher: &cheatsheet.Dispatcher{
			Fs:       fs,
			HTML:     render.NewHTML(),
			Terminal: render.Terminal{Width: conf.Width},
			Opener:   opener.System{},
		},
		pick:   tui.Pick,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	if code := a.run(conf, args); code != 0 {
		os.Exit(code)
	}
}

// run carries out one invocation and returns the exit code.
func (a app) run(conf config.Config, args []string) int {
	if conf.List {
		return a.list(conf.Dir)
	}

	if len(args) != 1 {
		fmt.Fprintln(a.stdout, usage)
		return 0
	}
	pattern := args[0]

	files, err := cheatsheet.Scan(a.fs, conf.Dir)
	if err != nil {
		return a.fail(err)
	}

	target, err := cheatsheet.Resolve(files, pattern)
	if errors.Is(err, cheatsheet.ErrNoMatch) {
		a.reportNoMatch(files, pattern)
		return 0
	}

	var ambiguous *cheatsheet.AmbiguousError
	if errors.As(err, &ambiguous) && conf.Interactive {
		chosen, ok, pickErr := a.pick(cheatsheet.Match(files, pattern), pattern)
		if pickErr != nil {
			return a.fail(pickErr)
		}
		if ok {
			target, err = cheatsheet.NewTarget(chosen), nil
		}
	}
	if err != nil {
		return a.fail(err)
	}

	if conf.Print {
		if err := a.dispatcher.Print(target, a.stdout); err != nil {
			return a.fail(err)
		}
		return 0
	}

	name, err := a.dispatcher.Dispatch(target)
	if err != nil {
		return a.fail(err)
	}
	fmt.Fprintf(a.stdout, "Opened %s\n", name)
	return 0
}

func (a app) list(dir string) int {
	files, err := cheatsheet.Scan(a.fs, dir)
	if err != nil {
		return a.fail(err)
	}

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintln(a.stdout, name)
	}
	return 0
}

func (a app) reportNoMatch(files []cheatsheet.CandidateFile, pattern string) {
	fmt.Fprintln(a.stdout, noMatchMessage)

	suggestions := cheatsheet.Suggest(files, pattern, maxSuggestions)
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintln(a.stdout, suggestionTitle)
	for _, s := range suggestions {
		fmt.Fprintf(a.stdout, "\t%s\n", s)
	}
}

func (a app) fail(err error) int {
	fmt.Fprintln(a.stderr, err)
	return 1
}

func rootCmdPreRun(cmd *cobra.Command, args []string) {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return
	}
	if viper.GetBool("debug") {
		log.SetLevel(log.DebugLevel)
	}
}

// Execute runs the root command and handles any execution errors.
// This is the main entry point for the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func init() {
	_, err := maxprocs.Set()
	if err != nil {
		log.Error("Error setting maxprocs: ", err)
	}

	// Create rootCmd-level flags
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug-level logging")
	rootCmd.Flags().String("dir", "", "Search this directory instead of the executable's directory")
	rootCmd.Flags().BoolP("print", "p", false, "Print the cheatsheet to the terminal instead of opening it")
	rootCmd.Flags().BoolP("interactive", "i", false, "Pick from the matches when the name is ambiguous")
	rootCmd.Flags().BoolP("list", "l", false, "List every cheatsheet in the search directory")
	rootCmd.Flags().IntP("width", "w", 0, "Word wrap column for --print")
	rootCmd.Flags().Bool("man", false, "Print the man page")
	_ = rootCmd.Flags().MarkHidden("man")
}
