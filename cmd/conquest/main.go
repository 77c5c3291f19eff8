package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"github.com/mitchelldurbincs/ConquestRules/internal/config"
	"github.com/mitchelldurbincs/ConquestRules/internal/game"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/events"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/events/subscribers"
	"github.com/mitchelldurbincs/ConquestRules/internal/game/processor"
	"github.com/mitchelldurbincs/ConquestRules/internal/logging"
)

func main() {
	// Command line flags
	configPath := flag.String("config", "", "Path to config file")
	env := flag.String("env", "", "Environment overlay, loads config.<env>.yaml")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error) (empty to use config default)")
	seed := flag.Uint64("seed", 0, "Seed for the deal and the dice (0 to use config default)")
	demo := flag.Bool("demo", false, "Play random turns instead of reading commands")
	maxTurns := flag.Int("max-turns", 500, "Turn limit in demo mode")
	color := flag.Bool("color", true, "Draw the board with ANSI colors")
	flag.Parse()

	// Initialize configuration
	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if err := config.LoadEnvironmentConfig(*env); err != nil {
		log.Fatal().Err(err).Str("env", *env).Msg("Failed to load environment config")
	}
	if *logLevel != "" {
		config.Set("logging.level", *logLevel)
	}
	if *seed != 0 {
		config.Set("game.setup.seed", *seed)
	}
	cfg := config.Get()

	logger, closeLog := logging.Setup(cfg.Logging, os.Stderr)
	defer func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "close log file: %v\n", err)
		}
	}()
	log.Logger = logger

	if config.ConfigFilePath() != "" {
		config.WatchConfig(func(c *config.Config) {
			zerolog.SetGlobalLevel(logging.ParseLevel(c.Logging.Level))
			logger.Info().Str("level", c.Logging.Level).Msg("Config reloaded, rule changes apply to the next game")
		}, func(err error) {
			logger.Warn().Err(err).Msg("Ignoring invalid config reload")
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := events.NewEventBusWithLogger(logger)
	bus.Subscribe(subscribers.NewLoggerSubscriber("game-log", logger, zerolog.DebugLevel))

	gc := game.GameConfigFromConfig(cfg, logger)
	gc.EventBus = bus
	engine, err := game.NewEngine(ctx, gc)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create game")
	}

	if *demo {
		err = runDemo(ctx, engine, cfg.Game.Setup.Seed, *maxTurns, *color)
	} else {
		err = runInteractive(ctx, engine, os.Stdin, os.Stdout, processor.NewCommandProcessor(logger, *color))
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error().Err(err).Msg("Game stopped")
		os.Exit(1)
	}
}

// runDemo plays random turns until the game ends or the turn limit is hit.
func runDemo(ctx context.Context, engine *game.Engine, seed uint64, maxTurns int, color bool) error {
	rng := rand.New(rand.NewSource(seed))
	tp := game.NewTurnProcessor(engine)

	fmt.Printf("Initial board:\n%s\n", engine.Render(color))
	for turn := 0; turn < maxTurns && !engine.IsGameOver(); turn++ {
		summary, err := tp.PlayTurn(ctx, game.RandomTurnPlan(engine, rng))
		if err != nil {
			return fmt.Errorf("turn %d: %w", turn+1, err)
		}
		if summary.Conquests > 0 || len(summary.Eliminated) > 0 {
			fmt.Printf("Turn %d: %s conquered %d territories", summary.Turn, summary.Player, summary.Conquests)
			if len(summary.Eliminated) > 0 {
				fmt.Printf(", eliminating %v", summary.Eliminated)
			}
			fmt.Println()
		}
	}

	if engine.IsGameOver() {
		fmt.Printf("Game over! Winners: %v\n", engine.Winners())
	} else {
		fmt.Printf("Game reached maximum turns (%d)\n", maxTurns)
	}
	if out := engine.Eliminated(); len(out) > 0 {
		fmt.Printf("Eliminated, in order: %v\n", out)
	}
	fmt.Printf("\nFinal board:\n%s", engine.Render(color))
	for _, s := range engine.Stats() {
		status := "ALIVE"
		if s.Eliminated {
			status = "ELIMINATED by " + string(s.EliminatedBy)
		}
		fmt.Printf("%s: %d territories, %d troops, goal %s, %s\n", s.Name, s.Territories, s.Troops, s.Goal, status)
	}
	return nil
}

// runInteractive reads one command per line until quit, end of input or
// the end of the game.
func runInteractive(ctx context.Context, engine *game.Engine, in io.Reader, out io.Writer, cp *processor.CommandProcessor) error {
	parser := processor.NewParser(engine.Board())
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, processor.Usage)
	fmt.Fprint(out, engine.Render(false))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s (%s)> ", engine.CurrentPlayer(), engine.CurrentPhase())
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		res, err := cp.ExecuteLine(engine, parser, line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if res.Output != "" {
			fmt.Fprintln(out, res.Output)
		}
		if res.Quit {
			return nil
		}
	}
}
