package vision

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	visionv1 "github.com/hireloop/hireloop/proto"
)

// GRPCAnalyzer implements Analyzer by calling the Python vision sidecar
// via gRPC.
type GRPCAnalyzer struct {
	conn   *grpc.ClientConn
	client visionv1.VisionAnalyzerClient
}

var _ Analyzer = (*GRPCAnalyzer)(nil)

// NewGRPCAnalyzer creates a new gRPC vision client.
func NewGRPCAnalyzer(addr string) (*GRPCAnalyzer, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to vision sidecar at %s: %w", addr, err)
	}
	return &GRPCAnalyzer{
		conn:   conn,
		client: visionv1.NewVisionAnalyzerClient(conn),
	}, nil
}

// AnalyzeFrame runs face and phone detection on one JPEG frame.
func (a *GRPCAnalyzer) AnalyzeFrame(ctx context.Context, sessionID string, frameJPEG []byte) (*FrameAnalysis, error) {
	resp, err := a.client.AnalyzeFrame(ctx, &visionv1.AnalyzeFrameRequest{
		SessionId: sessionID,
		FrameJpeg: frameJPEG,
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC AnalyzeFrame call failed: %w", err)
	}
	return fromProtoFrameAnalysis(resp), nil
}

// AnalyzeAudioWindow reports the distinct speaker count in a one-second
// PCM window.
func (a *GRPCAnalyzer) AnalyzeAudioWindow(ctx context.Context, sessionID string, pcm []byte, sampleRate int) (int, error) {
	resp, err := a.client.AnalyzeAudioWindow(ctx, &visionv1.AnalyzeAudioWindowRequest{
		SessionId:  sessionID,
		Pcm:        pcm,
		SampleRate: int32(sampleRate),
	})
	if err != nil {
		return 0, fmt.Errorf("gRPC AnalyzeAudioWindow call failed: %w", err)
	}
	return int(resp.SpeakerCount), nil
}

// AnnotateEvidence returns the frame with the warning label and capture
// time rendered into it.
func (a *GRPCAnalyzer) AnnotateEvidence(ctx context.Context, frameJPEG []byte, label string, capturedAt time.Time) ([]byte, error) {
	resp, err := a.client.AnnotateEvidence(ctx, &visionv1.AnnotateEvidenceRequest{
		FrameJpeg:  frameJPEG,
		Label:      label,
		CapturedAt: capturedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC AnnotateEvidence call failed: %w", err)
	}
	return resp.AnnotatedJpeg, nil
}

// Ready reports whether the sidecar connection is usable. The underlying
// connection dials lazily, so Idle and Connecting both count as ready.
func (a *GRPCAnalyzer) Ready() error {
	switch st := a.conn.GetState(); st {
	case connectivity.Ready, connectivity.Idle, connectivity.Connecting:
		return nil
	default:
		return fmt.Errorf("vision sidecar connection is %s", st)
	}
}

// Close releases the gRPC connection.
func (a *GRPCAnalyzer) Close() error {
	return a.conn.Close()
}

// ────────────────────────────────────────────────────────────
// Proto conversion helpers
// ────────────────────────────────────────────────────────────

func fromProtoFrameAnalysis(resp *visionv1.AnalyzeFrameResponse) *FrameAnalysis {
	out := &FrameAnalysis{
		PhoneDetected: resp.PhoneDetected,
		Faces:         make([]Face, 0, len(resp.Faces)),
	}
	for _, f := range resp.Faces {
		face := Face{
			EyeAspectRatio:   f.EyeAspectRatio,
			LandmarksVisible: f.LandmarksVisible,
		}
		if f.Box != nil {
			face.Box = BoundingBox{
				X:      int(f.Box.X),
				Y:      int(f.Box.Y),
				Width:  int(f.Box.Width),
				Height: int(f.Box.Height),
			}
		}
		out.Faces = append(out.Faces, face)
	}
	return out
}
