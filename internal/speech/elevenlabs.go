package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	elevenLabsBaseURL = "https://api.elevenlabs.io/v1/text-to-speech"
	elevenLabsModelID = "eleven_multilingual_v2"

	maxAttempts    = 3
	initialBackoff = 1 * time.Second
	backoffMult    = 2
)

type elevenLabsRequest struct {
	Text          string  `json:"text"`
	ModelID       string  `json:"model_id"`
	VoiceSettings Prosody `json:"voice_settings"`
}

// ElevenLabs synthesizes speech through the ElevenLabs HTTP API.
type ElevenLabs struct {
	apiKey     string
	httpClient *http.Client
}

// NewElevenLabs builds the backend. An empty or placeholder key leaves it
// unready rather than failing.
func NewElevenLabs(apiKey string) *ElevenLabs {
	e := &ElevenLabs{httpClient: &http.Client{Timeout: 60 * time.Second}}
	if apiKey != "" && apiKey != "your-elevenlabs-api-key-here" {
		e.apiKey = apiKey
	}
	return e
}

func (e *ElevenLabs) Name() string { return "elevenlabs" }
func (e *ElevenLabs) Ready() bool  { return e.apiKey != "" }

func (e *ElevenLabs) ConfigurationHelp() string {
	return `To enable TTS:
1. Get an ElevenLabs API key from https://elevenlabs.io/
2. Export it: ELEVENLABS_API_KEY=your-key-here`
}

// retryableError marks responses worth retrying (rate limits, 5xx).
type retryableError struct {
	statusCode int
	body       string
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("ElevenLabs API error (status %d): %s", e.statusCode, e.body)
}

func (e *ElevenLabs) Synthesize(ctx context.Context, text, voiceID string, p Prosody) ([]byte, error) {
	var data []byte
	var lastErr error
	backoff := initialBackoff

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		data, lastErr = e.synthesizeOnce(ctx, text, voiceID, p)
		if lastErr == nil {
			return data, nil
		}
		if _, retryable := lastErr.(*retryableError); !retryable {
			return nil, lastErr
		}
		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= time.Duration(backoffMult)
		}
	}
	return nil, lastErr
}

func (e *ElevenLabs) synthesizeOnce(ctx context.Context, text, voiceID string, p Prosody) ([]byte, error) {
	body, err := json.Marshal(elevenLabsRequest{
		Text:          text,
		ModelID:       elevenLabsModelID,
		VoiceSettings: p,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s", elevenLabsBaseURL, voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", e.apiKey)

	res, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= http.StatusInternalServerError {
		errBody, _ := io.ReadAll(res.Body)
		return nil, &retryableError{statusCode: res.StatusCode, body: string(errBody)}
	}
	if res.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("ElevenLabs API error: %d - %s", res.StatusCode, string(errBody))
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return data, nil
}
