package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"tile-automata/internal/mapgen"
)

func TestRunCandidateCountsAcceptance(t *testing.T) {
	base := mapgen.DefaultConfig()
	base.Width, base.Height = 16, 12
	base.MinBuildableTiles = 0

	res := runCandidate(context.Background(), base, candidate{initChance: 45, iterations: 3}, 4)
	assert.Equal(t, 4, res.trials)
	assert.Equal(t, 4, res.accepted)
	assert.InDelta(t, 1.0, res.rate(), 1e-9)
	assert.LessOrEqual(t, res.minBuildable, res.maxBuildable)
}

func TestRunCandidateEmptyFillNeverAccepts(t *testing.T) {
	base := mapgen.DefaultConfig()
	base.Width, base.Height = 10, 10
	base.MinBuildableTiles = 1

	res := runCandidate(context.Background(), base, candidate{initChance: 0, iterations: 2}, 3)
	assert.Equal(t, 3, res.trials)
	assert.Zero(t, res.accepted)
	assert.Zero(t, res.maxBuildable)
	assert.Zero(t, res.meanBuildable)
}

func TestRankOrdersByRateThenBuildable(t *testing.T) {
	all := []sweepResult{
		{params: candidate{1, 1}, accepted: 1, trials: 2, meanBuildable: 50},
		{params: candidate{2, 2}, accepted: 2, trials: 2, meanBuildable: 10},
		{params: candidate{3, 3}, accepted: 1, trials: 2, meanBuildable: 70},
	}
	rank(all)
	assert.Equal(t, candidate{2, 2}, all[0].params)
	assert.Equal(t, candidate{3, 3}, all[1].params)
	assert.Equal(t, candidate{1, 1}, all[2].params)
}
