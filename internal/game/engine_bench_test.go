package game

import (
	"context"
	"fmt"
	"testing"

	"github.com/mitchelldurbincs/ConquestRules/internal/game/core"
	"github.com/mitchelldurbincs/ConquestRules/internal/testutil"
)

func createBenchEngine(b *testing.B, numPlayers int, seed uint64) *Engine {
	b.Helper()
	players := make([]PlayerSetup, numPlayers)
	for i := range players {
		players[i] = PlayerSetup{Name: core.PlayerName(fmt.Sprintf("player%d", i))}
	}
	e, err := NewEngine(context.Background(), GameConfig{
		GameID:      "bench",
		Players:     players,
		ShuffleDeal: true,
		Seed:        seed,
		Logger:      testutil.NopLogger(),
	})
	if err != nil {
		b.Fatalf("create engine: %v", err)
	}
	return e
}

func BenchmarkPlayRandomTurn(b *testing.B) {
	for _, numPlayers := range []int{2, 4, 6} {
		b.Run(fmt.Sprintf("Classic_%d_Players", numPlayers), func(b *testing.B) {
			seed := uint64(1)
			e := createBenchEngine(b, numPlayers, seed)
			tp := NewTurnProcessor(e)
			rng := testutil.NewTestRNG(seed)

			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if e.IsGameOver() {
					b.StopTimer()
					seed++
					e = createBenchEngine(b, numPlayers, seed)
					tp = NewTurnProcessor(e)
					b.StartTimer()
				}
				if _, err := tp.PlayTurn(context.Background(), RandomTurnPlan(e, rng)); err != nil {
					b.Fatalf("turn %d: %v", i, err)
				}
			}
		})
	}
}

func BenchmarkReinforcementAllowance(b *testing.B) {
	e := createBenchEngine(b, 3, 1)
	player := e.CurrentPlayer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.ReinforcementAllowance(player)
	}
}

func BenchmarkLegalAttacks(b *testing.B) {
	e := createBenchEngine(b, 3, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.LegalAttacks()
	}
}

func BenchmarkStats(b *testing.B) {
	e := createBenchEngine(b, 6, 1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = e.Stats()
	}
}
