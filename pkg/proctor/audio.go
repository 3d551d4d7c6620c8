package proctor

import (
	"encoding/binary"
	"math"
)

// rmsEnergy computes the normalized root-mean-square energy of a 16-bit
// little-endian mono PCM buffer. The result is in [0, 1]; a trailing odd
// byte is ignored.
func rmsEnergy(pcm []byte) float64 {
	n := len(pcm) / 2
	if n == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		s := int16(binary.LittleEndian.Uint16(pcm[i*2:]))
		v := float64(s) / 32768.0
		sum += v * v
	}
	return math.Sqrt(sum / float64(n))
}
