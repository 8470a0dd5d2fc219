package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/lucasgdosr/circdeque/internal/script"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {

	// Parse the command line arguments.
	var (
		flagCheck  bool
		flagLevel  string
		flagScript string
	)

	flags := pflag.NewFlagSet("deque-replay", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVarP(&flagCheck, "check", "c", false, "cross-check every operation against a reference deque")
	flags.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	flags.StringVarP(&flagScript, "script", "s", "", "path to the operation script (default: stdin)")

	err := flags.Parse(args)
	if err != nil {
		return failure
	}

	// Initialize the logger.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	// Read the script from the given file, or from standard input if none.
	input := stdin
	if flagScript != "" {
		file, err := os.Open(flagScript)
		if err != nil {
			log.Error().Str("script", flagScript).Err(err).Msg("could not open script")
			return failure
		}
		defer file.Close()
		input = file
	}

	ops, err := script.Parse(input)
	if err != nil {
		log.Error().Err(err).Msg("could not parse script")
		return failure
	}

	log.Debug().Int("operations", len(ops)).Bool("check", flagCheck).Msg("script parsed")

	runner := script.NewRunner(log,
		script.WithOutput(stdout),
		script.WithReference(flagCheck),
	)
	err = runner.Run(ops)
	if err != nil {
		log.Error().Err(err).Msg("could not run script")
		return failure
	}

	return success
}
