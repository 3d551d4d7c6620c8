// Package vision wraps the gRPC computer-vision sidecar used by the
// proctoring pipeline. The sidecar does per-frame and per-window
// perception only; all warning policy lives in pkg/proctor.
package vision

import (
	"context"
	"time"
)

// BoundingBox is a face bounding box in frame pixel coordinates.
type BoundingBox struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Area returns the box area in pixels.
func (b BoundingBox) Area() int {
	return b.Width * b.Height
}

// Face is one detected face in a frame.
type Face struct {
	Box BoundingBox

	// EyeAspectRatio is 0 when LandmarksVisible is false.
	EyeAspectRatio float64

	LandmarksVisible bool
}

// FrameAnalysis is the sidecar's verdict on a single frame.
type FrameAnalysis struct {
	Faces         []Face
	PhoneDetected bool
}

// Analyzer is the sidecar surface consumed by the proctor monitors and
// by ID verification.
type Analyzer interface {
	// AnalyzeFrame runs face and phone detection on one JPEG frame.
	AnalyzeFrame(ctx context.Context, sessionID string, frameJPEG []byte) (*FrameAnalysis, error)

	// AnalyzeAudioWindow reports the number of distinct speaker labels
	// heard in a one-second window of 16-bit little-endian mono PCM.
	AnalyzeAudioWindow(ctx context.Context, sessionID string, pcm []byte, sampleRate int) (int, error)

	// AnnotateEvidence burns the warning label and capture time into a
	// frame for evidence storage.
	AnnotateEvidence(ctx context.Context, frameJPEG []byte, label string, capturedAt time.Time) ([]byte, error)

	// Close releases the sidecar connection.
	Close() error
}
