package sim

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// shardSize is the number of plays sampled from one RNG stream. Fixing the
// shard size (instead of dividing by worker count) keeps output identical
// for a given seed no matter how many workers run.
const shardSize = 512

// Generator produces simulated plays from a parameter set.
type Generator struct {
	params Params
	seed   int64
}

// NewGenerator validates the parameter set and returns a generator.
func NewGenerator(params Params, seed int64) (*Generator, error) {
	if err := validate(params); err != nil {
		return nil, err
	}
	return &Generator{params: params, seed: seed}, nil
}

func validate(p Params) error {
	if len(p.DownWeights) != 4 {
		return fmt.Errorf("expected 4 down weights, got %d", len(p.DownWeights))
	}
	if len(p.AlignmentWeights) != len(Alignments) {
		return fmt.Errorf("expected %d alignment weights, got %d", len(Alignments), len(p.AlignmentWeights))
	}
	if len(p.RusherWeights) != 4 {
		return fmt.Errorf("expected 4 rusher weights, got %d", len(p.RusherWeights))
	}
	if p.PressureRate < 0 || p.PressureRate > 1 {
		return fmt.Errorf("pressure rate %.3f out of [0,1]", p.PressureRate)
	}
	if p.CompletionFloor > p.CompletionCeil {
		return fmt.Errorf("completion floor %.2f above ceiling %.2f", p.CompletionFloor, p.CompletionCeil)
	}
	if p.SackLossMin > p.SackLossMax {
		return fmt.Errorf("sack loss min %.1f above max %.1f", p.SackLossMin, p.SackLossMax)
	}
	return nil
}

// Generate samples n plays sequentially. Play IDs start at 1.
func (g *Generator) Generate(n int) []Play {
	plays := make([]Play, 0, n)
	for shard := 0; shard*shardSize < n; shard++ {
		start := shard * shardSize
		end := start + shardSize
		if end > n {
			end = n
		}
		plays = append(plays, g.generateShard(shard, start, end)...)
	}
	return plays
}

// GenerateParallel samples n plays across at most workers goroutines. The
// result is identical to Generate for the same seed: each shard owns a
// contiguous ID range and an RNG derived from the base seed and shard index.
func (g *Generator) GenerateParallel(ctx context.Context, n, workers int) ([]Play, error) {
	if workers < 1 {
		workers = 1
	}
	shards := (n + shardSize - 1) / shardSize
	out := make([][]Play, shards)

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for shard := 0; shard < shards; shard++ {
		shard := shard
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := shard * shardSize
			end := start + shardSize
			if end > n {
				end = n
			}
			out[shard] = g.generateShard(shard, start, end)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	plays := make([]Play, 0, n)
	for _, batch := range out {
		plays = append(plays, batch...)
	}
	return plays, nil
}

// generateShard samples plays [start, end) from a shard-local RNG.
func (g *Generator) generateShard(shard, start, end int) []Play {
	rng := rand.New(rand.NewSource(g.seed + int64(shard)*7919))
	plays := make([]Play, 0, end-start)
	for i := start; i < end; i++ {
		plays = append(plays, g.samplePlay(rng, i+1))
	}
	return plays
}

// samplePlay draws one play: situational fields first, then the chained
// outcome rules. Rule order matters; a sack retroactively wipes the
// completion and forces negative yardage.
func (g *Generator) samplePlay(rng *rand.Rand, id int) Play {
	p := g.params

	play := Play{
		PlayID:         id,
		TimeToThrow:    round2(gammaSample(rng, p.ThrowShape, p.ThrowScale)),
		Pressure:       bernoulli(rng, p.PressureRate),
		TimeToPressure: round2(gammaSample(rng, p.PressureShape, p.PressureScale)),
		Down:           1 + weightedIndex(rng, p.DownWeights),
		Distance:       round1(gammaSample(rng, p.DistanceShape, p.DistanceScale)),
		FieldPosition:  uniform(rng, p.FieldPosMin, p.FieldPosMax),
		ScoreDiff:      rng.NormFloat64() * p.ScoreDiffStd,
		Quarter:        1 + rng.Intn(4),
		Alignment:      Alignments[weightedIndex(rng, p.AlignmentWeights)],
		Rushers:        3 + weightedIndex(rng, p.RusherWeights),
	}

	// Completion probability shifts with pressure and release time.
	var compProb float64
	if play.Pressure {
		compProb = p.BaseCompletion - p.PressurePenalty
		if play.TimeToThrow < p.QuickThrow {
			compProb -= p.QuickPenalty
		}
	} else {
		compProb = p.BaseCompletion
		if play.TimeToThrow > p.ExtendedThrow {
			compProb += p.ExtendedBonus
		}
	}
	play.Complete = bernoulli(rng, clamp(compProb, p.CompletionFloor, p.CompletionCeil))

	if play.Complete {
		yards := gammaSample(rng, p.YardsShape, p.YardsScale)
		if play.TimeToThrow > p.ExtendedThrow {
			yards += gammaSample(rng, p.ExtraYardsShape, p.ExtraYardsScale)
		}
		if play.Pressure {
			yards -= uniform(rng, 0, p.PressureYardLoss)
		}
		play.YardsGained = round1(yards)
	}

	// Sacks: pressure beat the protection before the quick-pressure
	// threshold and the ball was still in the QB's hands.
	if play.Pressure && play.TimeToPressure < p.QuickPressure && play.TimeToThrow > play.TimeToPressure {
		play.Sack = bernoulli(rng, p.SackRate)
	}
	if play.Sack {
		play.Complete = false
		play.YardsGained = round1(-uniform(rng, p.SackLossMin, p.SackLossMax))
	}

	intProb := g.params.BaseIntRate
	if play.Pressure && !play.Complete && !play.Sack {
		intProb = g.params.PressureIntRate
	}
	play.Interception = bernoulli(rng, intProb)

	return play
}
