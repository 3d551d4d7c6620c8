package proctor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hireloop/hireloop/pkg/storage"
)

// recordingFrameRate matches the candidate client's frame capture cadence.
const recordingFrameRate = 2

// recorder accumulates the raw frames and audio chunks of one session under
// the tmp prefix and merges them into a single mp4 on finalize. Recording is
// best effort: without ffmpeg the parts are discarded, never surfaced as a
// session error.
type recorder struct {
	store      *storage.Store
	sessionID  string
	ffmpeg     string
	frameCount int
	chunkCount int
	sampleRate int
}

func newRecorder(store *storage.Store, sessionID, ffmpeg string) *recorder {
	return &recorder{store: store, sessionID: sessionID, ffmpeg: ffmpeg}
}

func (r *recorder) partPrefix() string {
	return fmt.Sprintf("%s/rec-%s", storage.PrefixTmp, r.sessionID)
}

// addFrame appends one JPEG frame. Called only from the frame loop.
func (r *recorder) addFrame(jpeg []byte) {
	r.frameCount++
	key := fmt.Sprintf("%s/frame-%06d.jpg", r.partPrefix(), r.frameCount)
	if _, err := r.store.Save(key, jpeg); err != nil {
		slog.Warn("Failed to store recording frame", "session_id", r.sessionID, "error", err)
		r.frameCount--
	}
}

// addAudio appends one PCM chunk. Called only from the audio loop.
func (r *recorder) addAudio(pcm []byte, sampleRate int) {
	if r.sampleRate == 0 {
		r.sampleRate = sampleRate
	}
	r.chunkCount++
	key := fmt.Sprintf("%s/chunk-%06d.pcm", r.partPrefix(), r.chunkCount)
	if _, err := r.store.Save(key, pcm); err != nil {
		slog.Warn("Failed to store recording audio chunk", "session_id", r.sessionID, "error", err)
		r.chunkCount--
	}
}

// finalize merges the accumulated parts into recordings/<session>.mp4 and
// removes the parts. Returns the recording key, or "" when the recording
// was discarded (nothing captured, ffmpeg missing, or the merge failed).
func (r *recorder) finalize(ctx context.Context) string {
	defer func() {
		if err := r.store.RemoveAll(r.partPrefix()); err != nil {
			slog.Warn("Failed to remove recording parts", "session_id", r.sessionID, "error", err)
		}
	}()

	if r.frameCount == 0 {
		return ""
	}
	if r.ffmpeg == "" {
		slog.Info("Recording discarded, ffmpeg unavailable",
			"session_id", r.sessionID, "frames", r.frameCount)
		return ""
	}

	framePattern, err := r.store.Path(r.partPrefix() + "/frame-%06d.jpg")
	if err != nil {
		slog.Warn("Failed to resolve recording frame pattern", "session_id", r.sessionID, "error", err)
		return ""
	}

	outKey := fmt.Sprintf("%s/%s.mp4", storage.PrefixRecordings, r.sessionID)
	outPath, err := r.store.Path(outKey)
	if err != nil {
		slog.Warn("Failed to resolve recording output path", "session_id", r.sessionID, "error", err)
		return ""
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		slog.Warn("Failed to prepare recording output", "session_id", r.sessionID, "error", err)
		return ""
	}

	args := []string{
		"-y",
		"-framerate", fmt.Sprintf("%d", recordingFrameRate),
		"-start_number", "1",
		"-i", framePattern,
	}
	if r.chunkCount > 0 && r.sampleRate > 0 {
		audioPath, err := r.concatAudio()
		if err != nil {
			slog.Warn("Failed to assemble recording audio", "session_id", r.sessionID, "error", err)
		} else {
			args = append(args,
				"-f", "s16le",
				"-ar", fmt.Sprintf("%d", r.sampleRate),
				"-ac", "1",
				"-i", audioPath,
				"-shortest",
			)
		}
	}
	args = append(args, "-pix_fmt", "yuv420p", outPath)

	cmd := exec.CommandContext(ctx, r.ffmpeg, args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		slog.Warn("Recording merge failed",
			"session_id", r.sessionID, "error", err, "output", truncate(string(out), 512))
		_ = r.store.Remove(outKey)
		return ""
	}

	slog.Info("Recording finalized",
		"session_id", r.sessionID, "frames", r.frameCount, "audio_chunks", r.chunkCount)
	return outKey
}

// concatAudio joins the per-second PCM chunks into one raw file for ffmpeg.
func (r *recorder) concatAudio() (string, error) {
	outKey := r.partPrefix() + "/audio.raw"
	outPath, err := r.store.Path(outKey)
	if err != nil {
		return "", err
	}
	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("failed to create audio concat file: %w", err)
	}
	defer out.Close()

	for i := 1; i <= r.chunkCount; i++ {
		key := fmt.Sprintf("%s/chunk-%06d.pcm", r.partPrefix(), i)
		in, err := r.store.Open(key)
		if err != nil {
			return "", err
		}
		_, err = io.Copy(out, in)
		in.Close()
		if err != nil {
			return "", fmt.Errorf("failed to append audio chunk %d: %w", i, err)
		}
	}
	return outPath, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
