package ai

import "context"

// Provider is the raw capability surface beneath the gateway. Implementations
// carry no policy: no retries, no limiting, no fallbacks. The gateway owns
// all of that.
type Provider interface {
	// Chat runs one completion and returns the assistant text.
	Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// ChatVision runs one completion with an attached JPEG image.
	ChatVision(ctx context.Context, prompt string, imageJPEG []byte) (string, error)

	// Transcribe converts an audio payload to text.
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)

	// Synthesize renders text to speech audio.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
