package main

import (
	"errors"
	"flag"
	"fmt"
	"loa/config"
	"loa/engine"
	"loa/experiments"
	"loa/experiments/metrics"
	"loa/game"
	"loa/player"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file (default: XDG config dir)")
	selfPlay := flag.Bool("selfplay", false, "Run a batch of games between random players")
	black := flag.String("black", "", "Black player: human or random")
	white := flag.String("white", "", "White player: human or random")
	seed := flag.Uint64("seed", 0, "Seed for random players")
	limit := flag.Int("limit", 0, "Moves per side before a draw")
	save := flag.Bool("save-config", false, "Write the effective config to the XDG config dir")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if *black != "" {
		cfg.Black = config.PlayerKind(*black)
	}
	if *white != "" {
		cfg.White = config.PlayerKind(*white)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *limit != 0 {
		cfg.MoveLimit = *limit
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	if *save {
		path, err := cfg.Save()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to save config")
		}
		log.Info().Msgf("saved config to %s", path)
	}

	if *selfPlay {
		runSelfPlay(cfg)
		return
	}
	runGame(cfg)
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.InitConfig()
}

func runSelfPlay(cfg *config.Config) {
	summary, err := experiments.RunSelfPlay(experiments.SelfPlay{
		Games:       cfg.Games,
		MoveLimit:   cfg.MoveLimit,
		Seed:        cfg.Seed,
		MaxAttempts: cfg.MaxAttempts,
		MetricsDir:  cfg.MetricsDir,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("self-play failed")
	}
	fmt.Printf("black wins: %d, white wins: %d, draws: %d\n",
		summary.Outcomes[game.BlackWins], summary.Outcomes[game.WhiteWins], summary.Outcomes[game.Draw])
}

// runGame executes a single game between the configured players and prints the result
func runGame(cfg *config.Config) {
	board := game.NewBoard()
	if err := board.SetMoveLimit(cfg.MoveLimit); err != nil {
		log.Fatal().Err(err).Msg("failed to set move limit")
	}

	// Both sides share one reader so buffered input is not split between them
	human := player.NewText(os.Stdin, os.Stdout)
	e := engine.LocalEngine(board,
		newPlayer(cfg.Black, cfg.Seed, human),
		newPlayer(cfg.White, cfg.Seed+1, human),
		engine.WithMaxAttempts(cfg.MaxAttempts),
		engine.WithMetrics(),
	)

	outcome, err := e.Run()
	fmt.Println(e.Board)
	switch {
	case errors.Is(err, engine.ErrQuit):
		fmt.Println("Game abandoned.")
	case err != nil:
		log.Fatal().Err(err).Msg("game stopped")
	case outcome == game.Draw:
		fmt.Println("Tie game.")
	default:
		fmt.Printf("%v wins.\n", outcome.Side())
	}

	if cfg.MetricsDir != "" {
		writeRecords(cfg.MetricsDir, e)
	}
}

func newPlayer(kind config.PlayerKind, seed uint64, human engine.Player) engine.Player {
	if kind == config.Random {
		return player.NewRandom(seed)
	}
	return human
}

func writeRecords(dir string, e *engine.Engine) {
	writer, err := metrics.NewWriter(dir, "game")
	if err != nil {
		log.Error().Err(err).Msg("failed to create records writer")
		return
	}
	gameMetric, moveMetrics := e.Metrics()
	moveRecords := make([]metrics.MoveRecord, len(moveMetrics))
	for i, mm := range moveMetrics {
		moveRecords[i] = metrics.MoveRecord{Game: 1, MoveMetric: mm}
	}
	if err := writer.WriteGameRecords([]metrics.GameRecord{{ID: 1, GameMetric: gameMetric}}); err != nil {
		log.Error().Err(err).Msg("failed to write game records")
		return
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		log.Error().Err(err).Msg("failed to write move records")
		return
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
}
