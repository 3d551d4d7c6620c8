package proctor

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

var trackerEpoch = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func TestTrackerZeroGraceActivatesImmediately(t *testing.T) {
	tr := newTracker(0)

	assert.True(t, tr.Observe(true, trackerEpoch))
	assert.False(t, tr.Observe(true, trackerEpoch.Add(time.Second)), "sustained signal must not re-activate")
	tr.Observe(false, trackerEpoch.Add(2*time.Second))
	assert.True(t, tr.Observe(true, trackerEpoch.Add(3*time.Second)), "new edge after reset must re-activate")
}

func TestTrackerHoldsThroughGracePeriod(t *testing.T) {
	tr := newTracker(5 * time.Second)

	assert.False(t, tr.Observe(true, trackerEpoch))
	assert.False(t, tr.Observe(true, trackerEpoch.Add(2*time.Second)))
	assert.False(t, tr.Observe(true, trackerEpoch.Add(4*time.Second)))
	assert.True(t, tr.Observe(true, trackerEpoch.Add(5*time.Second)))
	assert.True(t, tr.Active())
}

func TestTrackerFlickerNeverActivates(t *testing.T) {
	tr := newTracker(5 * time.Second)

	at := trackerEpoch
	for i := 0; i < 20; i++ {
		assert.False(t, tr.Observe(i%2 == 0, at), "alternating signal at tick %d", i)
		at = at.Add(time.Second)
	}
	assert.False(t, tr.Active())
}

// TestTrackerCountsFilteredEdges checks that for any boolean stream the
// tracker reports exactly as many activations as there are false-to-true
// edges in the grace-filtered signal.
func TestTrackerCountsFilteredEdges(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200

	properties := gopter.NewProperties(params)

	properties.Property("activations == filtered edges", prop.ForAll(
		func(raw []bool, graceSec int) bool {
			grace := time.Duration(graceSec) * time.Second
			tr := newTracker(grace)

			activations := 0
			for i, v := range raw {
				if tr.Observe(v, trackerEpoch.Add(time.Duration(i)*time.Second)) {
					activations++
				}
			}
			return activations == filteredEdges(raw, graceSec)
		},
		gen.SliceOf(gen.Bool()),
		gen.IntRange(0, 6),
	))

	properties.TestingRun(t)
}

// filteredEdges is an independent model of the grace filter: with samples
// one second apart, sample i is filtered-true when the run of consecutive
// true samples ending at i spans at least graceSec seconds.
func filteredEdges(raw []bool, graceSec int) int {
	edges := 0
	run := 0
	prev := false
	for _, v := range raw {
		if !v {
			run = 0
			prev = false
			continue
		}
		run++
		filtered := run-1 >= graceSec
		if filtered && !prev {
			edges++
		}
		if filtered {
			prev = true
		}
	}
	return edges
}
