package visionv1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestCodecRoundTrip(t *testing.T) {
	in := &AnalyzeFrameResponse{
		Faces: []*Face{
			{
				Box:              &BoundingBox{X: 12, Y: 40, Width: 320, Height: 240},
				EyeAspectRatio:   0.31,
				LandmarksVisible: true,
			},
			{LandmarksVisible: false},
		},
		PhoneDetected: true,
	}

	raw, err := codec{}.Marshal(in)
	require.NoError(t, err)

	out := new(AnalyzeFrameResponse)
	require.NoError(t, codec{}.Unmarshal(raw, out))

	require.Len(t, out.Faces, 2)
	require.NotNil(t, out.Faces[0].Box)
	assert.Equal(t, int32(320), out.Faces[0].Box.Width)
	assert.InDelta(t, 0.31, out.Faces[0].EyeAspectRatio, 1e-9)
	assert.True(t, out.Faces[0].LandmarksVisible)
	assert.Nil(t, out.Faces[1].Box)
	assert.True(t, out.PhoneDetected)
}

// Unknown fields from a newer sidecar schema are skipped, not rejected.
func TestCodecSkipsUnknownFields(t *testing.T) {
	raw, err := codec{}.Marshal(&AnalyzeAudioWindowResponse{SpeakerCount: 2})
	require.NoError(t, err)

	raw = protowire.AppendTag(raw, 99, protowire.VarintType)
	raw = protowire.AppendVarint(raw, 7)

	out := new(AnalyzeAudioWindowResponse)
	require.NoError(t, codec{}.Unmarshal(raw, out))
	assert.Equal(t, int32(2), out.SpeakerCount)
}

// Zero-valued proto3 fields are omitted from the wire form.
func TestCodecOmitsZeroFields(t *testing.T) {
	raw, err := codec{}.Marshal(&AnalyzeFrameRequest{})
	require.NoError(t, err)
	assert.Empty(t, raw)
}
