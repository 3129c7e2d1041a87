package system

import (
	"context"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/janisto/solar-playground/internal/platform/logging"
	"github.com/janisto/solar-playground/internal/platform/timeutil"
	"github.com/janisto/solar-playground/internal/solar"
)

// maxSeed keeps echoed seeds exact in JavaScript clients.
const maxSeed = 1<<53 - 1

var now = time.Now

// Register wires the simulation route into api below prefix.
func Register(api huma.API, prefix string) {
	huma.Register(api, huma.Operation{
		OperationID: "get-system",
		Method:      http.MethodGet,
		Path:        prefix + "/system",
		Summary:     "Simulate the scale solar system",
		Description: "Lays out the Sun and planets for a viewport and optionally advances the simulation. " +
			"The same parameters with a non-zero seed always produce the same bodies.",
		Tags: []string{"Simulation"},
	}, func(ctx context.Context, input *GetInput) (*GetOutput, error) {
		started := now()
		seed := input.Seed
		if seed == 0 {
			seed = clockSeed(started)
		}

		s := solar.NewSystem(float64(input.Width), float64(input.Height), input.ScaleSun, newRand(seed))
		if err := s.Advance(ctx, input.Steps); err != nil {
			applog.LogWarn(ctx, "simulation aborted", zap.Error(err), zap.Int("steps", input.Steps))
			return nil, huma.Error503ServiceUnavailable("simulation aborted", err)
		}

		applog.LogInfo(ctx, "system simulated",
			zap.Int64("seed", seed),
			zap.Int("steps", input.Steps),
			zap.Duration("elapsed", time.Since(started)),
		)
		return &GetOutput{Body: Snapshot{
			Seed:        seed,
			Steps:       input.Steps,
			Width:       input.Width,
			Height:      input.Height,
			Gravity:     solar.Gravity,
			GeneratedAt: timeutil.NewTime(now()),
			Bodies:      fromSystem(s),
		}}, nil
	})
}

func clockSeed(t time.Time) int64 {
	if seed := t.UnixNano() & maxSeed; seed != 0 {
		return seed
	}
	return 1
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
