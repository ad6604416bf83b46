package experiments

import (
	"errors"
	"fmt"
	"loa/engine"
	"loa/experiments/metrics"
	"loa/game"
	"loa/player"

	"github.com/rs/zerolog/log"
)

type SelfPlay struct {
	Games       int
	MoveLimit   int // Per side
	Seed        uint64
	MaxAttempts int
	MetricsDir  string       // Empty skips writing records
	Opening     *game.Layout // Nil starts from the standard opening
}

// Summary tallies the outcomes of a self-play run. Games stopped because the side to move
// had no legal move are counted under game.InProgress.
type Summary struct {
	Outcomes    map[game.Outcome]int
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
	Dir         string // Where records were written, if anywhere
}

// RunSelfPlay pits two random players against each other for s.Games games. Each game
// uses its own pair of seeds derived from s.Seed, so runs are reproducible.
func RunSelfPlay(s SelfPlay) (Summary, error) {
	summary := Summary{Outcomes: map[game.Outcome]int{}}
	configs := []metrics.PlayerConfig{}

	log.Info().Msgf("starting self-play of %d games...", s.Games)

	for i := 0; i < s.Games; i++ {
		black := metrics.PlayerConfig{ID: 2*i + 1, Kind: "random", Seed: s.Seed + uint64(2*i)}
		white := metrics.PlayerConfig{ID: 2*i + 2, Kind: "random", Seed: s.Seed + uint64(2*i+1)}
		configs = append(configs, black, white)

		board := game.NewBoard()
		if s.Opening != nil {
			board = game.NewBoardFrom(*s.Opening, game.Black)
		}
		if err := board.SetMoveLimit(s.MoveLimit); err != nil {
			return summary, fmt.Errorf("failed to configure game %d: %w", i+1, err)
		}
		e := engine.LocalEngine(board, player.NewRandom(black.Seed), player.NewRandom(white.Seed),
			engine.WithMaxAttempts(s.MaxAttempts), engine.WithMetrics())

		outcome, err := e.Run()
		if errors.Is(err, engine.ErrNoLegalMoves) {
			log.Warn().Err(err).Msgf("game %d left unfinished", i+1)
		} else if err != nil {
			return summary, fmt.Errorf("game %d stopped: %w", i+1, err)
		}
		summary.Outcomes[outcome]++

		gameMetric, moveMetrics := e.Metrics()
		summary.GameRecords = append(summary.GameRecords, metrics.GameRecord{
			ID:         i + 1,
			Black:      black.ID,
			White:      white.ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			summary.MoveRecords = append(summary.MoveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d after %d moves: %v", i+1, s.Games, gameMetric.TotalMoves, outcome)
	}

	log.Info().Msgf("completed self-play: %d black wins, %d white wins, %d draws",
		summary.Outcomes[game.BlackWins], summary.Outcomes[game.WhiteWins], summary.Outcomes[game.Draw])

	if s.MetricsDir == "" {
		return summary, nil
	}

	writer, err := metrics.NewWriter(s.MetricsDir, "selfplay")
	if err != nil {
		return summary, fmt.Errorf("failed to create records writer: %w", err)
	}
	summary.Dir = writer.Dir()

	if err := writer.WritePlayerConfigs(configs); err != nil {
		return summary, fmt.Errorf("failed to store player configs: %w", err)
	}
	log.Info().Msg("stored player configs")

	if err := writer.WriteGameRecords(summary.GameRecords); err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(summary.MoveRecords); err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return summary, nil
}
