package speech

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	texttospeechpb "cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
)

const googleDefaultVoice = "en-US-Chirp3-HD-Leda"

// GoogleTTS synthesizes speech through Google Cloud Text-to-Speech. It is
// the alternative backend for environments with GCP credentials instead of
// an ElevenLabs key.
type GoogleTTS struct {
	client *texttospeech.Client
}

// NewGoogleTTS connects using application default credentials. A client
// construction failure leaves the backend unready.
func NewGoogleTTS(ctx context.Context) *GoogleTTS {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return &GoogleTTS{}
	}
	return &GoogleTTS{client: client}
}

func (g *GoogleTTS) Name() string { return "google" }
func (g *GoogleTTS) Ready() bool  { return g.client != nil }

func (g *GoogleTTS) ConfigurationHelp() string {
	return `To enable Google Cloud TTS:
1. Create a service account with the Text-to-Speech API enabled
2. Export the key path: GOOGLE_APPLICATION_CREDENTIALS=/path/to/key.json`
}

// Synthesize renders the text as MP3. Prosody stability maps loosely onto
// speaking rate; the other ElevenLabs-specific knobs have no Google
// equivalent and are ignored.
func (g *GoogleTTS) Synthesize(ctx context.Context, text, voiceID string, p Prosody) ([]byte, error) {
	if g.client == nil {
		return nil, fmt.Errorf("google tts client not configured")
	}

	name := voiceID
	if _, catalogVoice := VoiceByID(voiceID); catalogVoice || name == "" {
		// ElevenLabs catalog ids do not exist on Google; use its default.
		name = googleDefaultVoice
	}

	resp, err := g.client.SynthesizeSpeech(ctx, &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: "en-US",
			Name:         name,
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("google tts synthesize: %w", err)
	}
	return resp.AudioContent, nil
}

// Close releases the underlying gRPC connection.
func (g *GoogleTTS) Close() error {
	if g.client == nil {
		return nil
	}
	return g.client.Close()
}
