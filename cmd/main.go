// Package cmd implements the adv command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/advisor"
	"github.com/etnz/advisor/config"
	"github.com/etnz/advisor/fx"
	"github.com/etnz/advisor/logger"
	"github.com/etnz/advisor/market"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for group, cmds := range Groups() {
		for _, cmd := range cmds {
			c.Register(cmd, group)
		}
	}
}

// Groups returns the commands of adv by group.
func Groups() map[string][]subcommands.Command {
	return map[string][]subcommands.Command{
		"profile":  {&profileCmd{}, &allocateCmd{}, &budgetCmd{}},
		"planning": {&projectCmd{}, &simulateCmd{}, &retireCmd{}, &reportCmd{}},
		"market":   {&quoteCmd{}, &watchCmd{}, &chartCmd{}, &fundsCmd{}, &convertCmd{}},
		"learn":    {&topicCmd{}, &quizCmd{}, &assistCmd{}},
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	configFile  = flag.String("config", config.DefaultPath, "Path to the configuration file")
	profileFile = flag.String("profile", "", "Path to the profile file. Overrides the profile setting.")
	Verbose     = flag.Bool("v", false, "Log debug messages to stderr")
)

// Config is the configuration of the running command, set by Setup.
var Config = config.Default()

// stdout receives the rendered documents. Tests replace it.
var stdout io.Writer = os.Stdout

// stdin provides the interactive answers.
var stdin io.Reader = os.Stdin

// newProvider returns the market data provider. Tests replace it.
var newProvider = func() market.Provider {
	return market.NewYahoo(log.Logger, market.YahooOptions{
		RequestsPerSecond: Config.Market.RequestsPerSecond,
		BreakerFailures:   Config.Market.BreakerFailures,
		BreakerTimeout:    Config.Market.BreakerTimeout,
	})
}

// newConverter returns the currency converter.
var newConverter = func() fx.Converter {
	return fx.NewFrankfurter(log.Logger, Config.FX.BaseURL, nil)
}

// Setup loads the configuration and installs the logger. It must be called
// once the global flags are parsed.
func Setup() error {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	if *profileFile != "" {
		cfg.Profile = *profileFile
	}
	if *Verbose {
		cfg.Log.Level = "debug"
	}
	logger.SetGlobalLogger(logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty}))
	Config = cfg
	log.Debug().Str("config", *configFile).Str("profile", cfg.Profile).Msg("configuration loaded")
	return nil
}

// loadProfile reads the profile file of the configuration, or returns the
// default profile when none is set. Amounts without a currency adopt the
// configured one.
func loadProfile() (advisor.Profile, error) {
	p := advisor.DefaultProfile()
	if Config.Profile != "" {
		f, err := os.Open(Config.Profile)
		if err != nil {
			return p, fmt.Errorf("could not open profile: %w", err)
		}
		defer f.Close()
		if p, err = advisor.DecodeProfile(f); err != nil {
			return p, fmt.Errorf("could not decode profile %q: %w", Config.Profile, err)
		}
	}
	if Config.Currency != "" {
		p = p.InCurrency(Config.Currency)
	}
	return p, nil
}

// status maps err to the exit status of a command, after printing it.
func status(what string, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", what, err)
	if errors.Is(err, advisor.ErrInvalidInput) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// output holds the flags shared by every command printing markdown.
type output struct {
	raw bool
}

func (o *output) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&o.raw, "raw", false, "print the markdown source instead of rendering it for the terminal")
}

func (o *output) print(md string) { printMarkdown(md, o.raw) }

// printMarkdown renders md for the terminal, or prints it as is when raw or
// when stdout is not a terminal.
func printMarkdown(md string, raw bool) {
	if raw || !isTerminal(stdout) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	log.Debug().Err(err).Msg("markdown rendering failed")
	fmt.Fprint(stdout, md)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

// invalid marks err, a parsing error, as an invalid input.
func invalid(err error) error {
	return fmt.Errorf("%w: %v", advisor.ErrInvalidInput, err)
}
