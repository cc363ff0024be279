package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"chronos/internal/cp"
	"chronos/internal/model"

	"github.com/rs/zerolog"
)

func main() {
	// Define arguments
	filePtr := flag.String("file", "", "Path to the input file")
	outPtr := flag.String("out", "", "Path to the file where the result will be written; if empty, it'll be written into the Standard Output")
	periodsPtr := flag.Uint64("periods", model.DefaultPeriodsPerDay, "Number of periods per day")
	timeoutPtr := flag.Duration("timeout", 30*time.Second, "Wall-clock budget for the search")
	dumpPtr := flag.Bool("dump", false, "Write the OPB instance instead of solving it")
	levelPtr := flag.String("log", "info", "Log level (trace, debug, info, warn, error)")
	prettyPtr := flag.Bool("pretty", false, "Human-readable log output instead of JSON")
	flag.Parse()

	log := setupLogger(*levelPtr, *prettyPtr)

	// Validate arguments
	if *filePtr == "" {
		log.Fatal().Msg("an input file must be specified")
	} else if *periodsPtr == 0 {
		log.Fatal().Msg("periods per day must be positive")
	}

	// Extract input
	input, err := model.InputFromJson(*filePtr)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse input file")
	}

	config := model.Config{
		PeriodsPerDay: *periodsPtr,
		Solver:        cp.Config{Timeout: *timeoutPtr},
	}

	if *dumpPtr {
		problem, err := model.BuildProblem(input, config)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot build instance")
		}
		if err := write(*outPtr, []byte(problem.ToOPB())); err != nil {
			log.Fatal().Err(err).Msg("cannot write instance")
		}
		return
	}

	// Build timetable
	timetabler := model.NewTimetabler(cp.NewSolver(config.Solver), config)

	result, err := timetabler.Build(input)
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		log.Fatal().Str("kind", string(validationErr.Kind)).Msg(validationErr.Detail)
	} else if err != nil {
		log.Fatal().Err(err).Msg("an error occurred during timetable construction")
	}

	if result.Status == model.StatusSuccess {
		log.Info().
			Int("objective", result.ObjectiveValue).
			Uint64("consecutive_repeats", result.ConsecutiveRepeats).
			Msg("timetable generated")
		for class, free := range result.FreePeriods {
			log.Debug().Str("class", class).Uint64("free_periods", free).Msg("free periods")
		}
	} else {
		log.Warn().Msg(result.Message)
	}

	resultJson, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("an error occurred while building the output json")
	}

	if err := write(*outPtr, resultJson); err != nil {
		log.Fatal().Err(err).Msg("an error occurred while writing the output")
	}
}

func write(outFile string, content []byte) error {
	if outFile == "" {
		fmt.Println(string(content))
		return nil
	}
	return os.WriteFile(outFile, content, 0666)
}

func setupLogger(level string, pretty bool) zerolog.Logger {
	var writer io.Writer = os.Stderr
	if pretty {
		writer = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}
