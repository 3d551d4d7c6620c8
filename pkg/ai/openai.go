package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"github.com/openai/openai-go/shared"

	"github.com/hireloop/hireloop/pkg/config"
)

// OpenAIProvider implements Provider against the OpenAI API.
type OpenAIProvider struct {
	client          oai.Client
	chatModel       string
	transcribeModel string
	speechModel     string
	speechVoice     string
}

// NewOpenAIProvider constructs the live provider. The API key comes from the
// caller (typically OPENAI_API_KEY); the base URL override supports
// compatible gateways.
func NewOpenAIProvider(apiKey string, cfg *config.AIConfig) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if cfg.ChatModel == "" {
		return nil, fmt.Errorf("openai: chat model must not be empty")
	}

	reqOpts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if cfg.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.BaseURL))
	}

	client := oai.NewClient(reqOpts...)
	return &OpenAIProvider{
		client:          client,
		chatModel:       cfg.ChatModel,
		transcribeModel: cfg.TranscribeModel,
		speechModel:     cfg.SpeechModel,
		speechVoice:     cfg.SpeechVoice,
	}, nil
}

// Chat implements Provider.
func (p *OpenAIProvider) Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	var messages []oai.ChatCompletionMessageParamUnion
	if systemPrompt != "" {
		messages = append(messages, oai.SystemMessage(systemPrompt))
	}
	messages = append(messages, oai.UserMessage(userPrompt))

	params := oai.ChatCompletionNewParams{
		Model:       shared.ChatModel(p.chatModel),
		Messages:    messages,
		Temperature: param.NewOpt(0.4),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

// ChatVision implements Provider.
func (p *OpenAIProvider) ChatVision(ctx context.Context, prompt string, imageJPEG []byte) (string, error) {
	dataURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(imageJPEG)

	params := oai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.chatModel),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.UserMessage([]oai.ChatCompletionContentPartUnionParam{
				oai.TextContentPart(prompt),
				oai.ImageContentPart(oai.ChatCompletionContentPartImageImageURLParam{
					URL: dataURL,
				}),
			}),
		},
		Temperature: param.NewOpt(0.0),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai: vision completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty choices in response")
	}
	return resp.Choices[0].Message.Content, nil
}

// Transcribe implements Provider. The payload is staged through a scoped
// temp file (the SDK derives the multipart filename, and with it the format,
// from the file name) and removed on all paths.
func (p *OpenAIProvider) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	f, err := os.CreateTemp("", "hireloop-asr-*"+extensionForMime(mimeType))
	if err != nil {
		return "", fmt.Errorf("openai: create temp audio file: %w", err)
	}
	defer func() {
		f.Close()
		os.Remove(f.Name())
	}()

	if _, err := f.Write(audio); err != nil {
		return "", fmt.Errorf("openai: write temp audio file: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("openai: rewind temp audio file: %w", err)
	}

	transcription, err := p.client.Audio.Transcriptions.New(ctx, oai.AudioTranscriptionNewParams{
		Model: oai.AudioModel(p.transcribeModel),
		File:  f,
	})
	if err != nil {
		return "", fmt.Errorf("openai: transcription: %w", err)
	}
	return transcription.Text, nil
}

// Synthesize implements Provider.
func (p *OpenAIProvider) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := p.client.Audio.Speech.New(ctx, oai.AudioSpeechNewParams{
		Model:          oai.SpeechModel(p.speechModel),
		Input:          text,
		Voice:          oai.AudioSpeechNewParamsVoice(p.speechVoice),
		ResponseFormat: oai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: speech synthesis: %w", err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: read speech response: %w", err)
	}
	return audio, nil
}

// extensionForMime maps the ingest MIME type to a file extension the
// transcription endpoint recognizes.
func extensionForMime(mimeType string) string {
	switch mimeType {
	case "audio/wav", "audio/x-wav", "audio/wave":
		return ".wav"
	case "audio/mpeg", "audio/mp3":
		return ".mp3"
	case "audio/mp4", "audio/m4a", "audio/x-m4a":
		return ".m4a"
	case "audio/ogg", "application/ogg":
		return ".ogg"
	case "audio/flac", "audio/x-flac":
		return ".flac"
	default:
		return ".webm"
	}
}
