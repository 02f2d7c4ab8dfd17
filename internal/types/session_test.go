package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPhase_Next(t *testing.T) {
	next, ok := PhaseIntroduction.Next()
	assert.True(t, ok)
	assert.Equal(t, PhaseStoryDiscovery, next)

	next, ok = PhasePsychologicalSynthesis.Next()
	assert.True(t, ok)
	assert.Equal(t, PhaseCompletion, next)

	_, ok = PhaseCompletion.Next()
	assert.False(t, ok)

	_, ok = Phase("bogus").Next()
	assert.False(t, ok)
}

func TestPhase_Terminal(t *testing.T) {
	assert.True(t, PhaseCompletion.Terminal())
	for _, p := range Phases()[:len(Phases())-1] {
		assert.False(t, p.Terminal(), "phase %s", p)
	}
}

func TestPhase_ProgressPercentage(t *testing.T) {
	assert.Equal(t, 0, PhaseIntroduction.ProgressPercentage())
	assert.Equal(t, 20, PhaseStoryDiscovery.ProgressPercentage())
	assert.Equal(t, 40, PhaseAchievementMining.ProgressPercentage())
	assert.Equal(t, 60, PhaseQuantification.ProgressPercentage())
	assert.Equal(t, 80, PhasePsychologicalSynthesis.ProgressPercentage())
	assert.Equal(t, 100, PhaseCompletion.ProgressPercentage())
	assert.Equal(t, 0, Phase("bogus").ProgressPercentage())
}
