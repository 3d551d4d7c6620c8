package proctor

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pcmConstant(sample int16, n int) []byte {
	out := make([]byte, n*2)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(sample))
	}
	return out
}

func TestRMSEnergy(t *testing.T) {
	assert.Zero(t, rmsEnergy(nil))
	assert.Zero(t, rmsEnergy([]byte{0x01}), "trailing odd byte alone carries no sample")
	assert.Zero(t, rmsEnergy(pcmConstant(0, 1600)))

	full := rmsEnergy(pcmConstant(32767, 1600))
	assert.InDelta(t, 1.0, full, 0.001)

	half := rmsEnergy(pcmConstant(16384, 1600))
	assert.InDelta(t, 0.5, half, 0.001)

	// Sign does not matter, energy does.
	neg := rmsEnergy(pcmConstant(-16384, 1600))
	assert.InDelta(t, 0.5, neg, 0.001)
}
