package services

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// SlotStatus is a pure derivation from the counters; these properties pin
// the full mapping for any counter state.
func TestSlotStatusProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("cancellation dominates every counter state", prop.ForAll(
		func(current, max int) bool {
			return SlotStatus(current, max, true) == SlotCancelled
		},
		gen.IntRange(0, 100),
		gen.IntRange(1, 100),
	))

	properties.Property("FULL iff booked to capacity, AVAILABLE iff empty, PARTIAL otherwise", prop.ForAll(
		func(current, max int) bool {
			got := SlotStatus(current, max, false)
			switch {
			case current == 0:
				return got == SlotAvailable
			case current >= max:
				return got == SlotFull
			default:
				return got == SlotPartial
			}
		},
		gen.IntRange(0, 100),
		gen.IntRange(1, 100),
	))

	properties.TestingRun(t)
}
