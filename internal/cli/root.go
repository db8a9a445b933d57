package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/voxlab/hostbox/internal/game"
	"github.com/voxlab/hostbox/internal/generate"
	"github.com/voxlab/hostbox/internal/observability"
	"github.com/voxlab/hostbox/internal/personality"
	"github.com/voxlab/hostbox/internal/provider"
	"github.com/voxlab/hostbox/internal/sandbox"
	"github.com/voxlab/hostbox/internal/speech"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "hostbox",
	Short: "Sandbox for tuning and testing AI game show host personalities",
	RunE: func(cmd *cobra.Command, args []string) error {
		flagTUI = true
		return runGenerate(cmd, args)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("hostbox %s\n", Version)
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate [scenario text]",
	Short: "Generate a host response for a game scenario",
	RunE:  runGenerate,
}

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Configure and generate through the interactive sandbox",
	RunE: func(cmd *cobra.Command, args []string) error {
		flagTUI = true
		return runGenerate(cmd, args)
	},
}

var listVoicesCmd = &cobra.Command{
	Use:   "list-voices",
	Short: "List available TTS voices",
	RunE:  runListVoices,
}

var listModelsCmd = &cobra.Command{
	Use:   "list-models",
	Short: "List available LLM backends and models",
	RunE:  runListModels,
}

var listHostsCmd = &cobra.Command{
	Use:   "list-hosts",
	Short: "List available host personalities",
	RunE:  runListHosts,
}

var (
	flagScenario      string
	flagGame          string
	flagFlowStep      string
	flagLength        string
	flagMode          string
	flagHost          string
	flagPlayful       int
	flagExcitement    int
	flagEncouragement int
	flagPlayers       int
	flagScores        string
	flagCorrect       bool
	flagPerformance   int
	flagStreak        int
	flagSpin          int
	flagWager         int
	flagDifficulty    string
	flagBackend       string
	flagModel         string
	flagNoFallback    bool
	flagSpeak         bool
	flagVoice         string
	flagOutput        string
	flagJSON          bool
	flagSeed          int64
	flagVerbose       bool
	flagTUI           bool

	flagOpenAIAPIKey     string
	flagAnthropicAPIKey  string
	flagElevenLabsAPIKey string
)

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(interactiveCmd)
	rootCmd.AddCommand(listVoicesCmd)
	rootCmd.AddCommand(listModelsCmd)
	rootCmd.AddCommand(listHostsCmd)
	generateCmd.Flags().StringVarP(&flagScenario, "input", "i", "", "Game scenario text (alternative to positional arguments)")
	generateCmd.Flags().StringVarP(&flagGame, "game", "g", "songquiz", "Game product: songquiz, wheel, jeopardy")
	generateCmd.Flags().StringVarP(&flagFlowStep, "flow-step", "f", "", "Flow step ID (default: first step of the game)")
	generateCmd.Flags().StringVarP(&flagLength, "length", "l", "medium", "Response length: short, medium, long, banter")
	generateCmd.Flags().StringVarP(&flagMode, "mode", "m", "single", "Game mode: single, multiplayer")
	generateCmd.Flags().StringVarP(&flagHost, "host", "H", "riley", "Host personality ID")
	generateCmd.Flags().IntVar(&flagPlayful, "playful", 3, "Playful/snarky slider (1=playful, 5=snarky)")
	generateCmd.Flags().IntVar(&flagExcitement, "excitement", 3, "Excitement slider (1=easily excited, 5=composed)")
	generateCmd.Flags().IntVar(&flagEncouragement, "encouragement", 3, "Encouragement slider (1=gentle, 5=tough love)")
	generateCmd.Flags().IntVarP(&flagPlayers, "players", "p", 1, "Number of players (1-6)")
	generateCmd.Flags().StringVar(&flagScores, "scores", "", "Comma-separated player scores (e.g. 1200,800)")
	generateCmd.Flags().BoolVar(&flagCorrect, "correct", true, "Whether the answer was correct")
	generateCmd.Flags().IntVar(&flagPerformance, "performance", 3, "Round performance 1-5 (SongQuiz)")
	generateCmd.Flags().IntVar(&flagStreak, "streak", 3, "Current streak count (SongQuiz)")
	generateCmd.Flags().IntVar(&flagSpin, "spin", 1000, "Wheel spin value in dollars")
	generateCmd.Flags().IntVar(&flagWager, "wager", 1000, "Jeopardy wager amount in dollars")
	generateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "medium", "Difficulty: easy, medium, hard")
	generateCmd.Flags().StringVarP(&flagBackend, "backend", "b", "", "Preferred LLM backend: openai, anthropic, bedrock")
	generateCmd.Flags().StringVar(&flagModel, "model", "", "Model ID for the selected backend")
	generateCmd.Flags().BoolVar(&flagNoFallback, "no-fallback", false, "Fail instead of using canned templates when no backend is configured")
	generateCmd.Flags().BoolVarP(&flagSpeak, "speak", "s", false, "Synthesize the response to speech")
	generateCmd.Flags().StringVar(&flagVoice, "voice", "", "TTS voice ID (default Nayva)")
	generateCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Audio output path (MP3, implies --speak)")
	generateCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the full response record as JSON")
	generateCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Random seed for reproducible template output (0 = time-based)")
	generateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable detailed logging")
	generateCmd.Flags().BoolVarP(&flagTUI, "tui", "t", false, "Interactive setup for generation options")
	generateCmd.Flags().StringVar(&flagOpenAIAPIKey, "openai-api-key", "", "OpenAI API key (overrides OPENAI_API_KEY env var)")
	generateCmd.Flags().StringVar(&flagAnthropicAPIKey, "anthropic-api-key", "", "Anthropic API key (overrides ANTHROPIC_API_KEY env var)")
	generateCmd.Flags().StringVar(&flagElevenLabsAPIKey, "elevenlabs-api-key", "", "ElevenLabs API key (overrides ELEVENLABS_API_KEY env var)")
}

func Execute() error {
	return rootCmd.Execute()
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Run interactive setup if requested
	if flagTUI {
		if err := runInteractiveSetup(); err != nil {
			return err
		}
	}

	// Validate game product
	validGames := map[string]bool{"songquiz": true, "wheel": true, "jeopardy": true}
	if !validGames[flagGame] {
		return fmt.Errorf("invalid game %q: must be songquiz, wheel, or jeopardy", flagGame)
	}

	// Validate length
	validLengths := map[string]bool{"short": true, "medium": true, "long": true, "banter": true}
	if !validLengths[flagLength] {
		return fmt.Errorf("invalid length %q: must be short, medium, long, or banter", flagLength)
	}

	// Validate mode
	validModes := map[string]bool{"single": true, "multiplayer": true}
	if !validModes[flagMode] {
		return fmt.Errorf("invalid mode %q: must be single or multiplayer", flagMode)
	}

	// Validate difficulty
	validDifficulties := map[string]bool{"easy": true, "medium": true, "hard": true}
	if !validDifficulties[flagDifficulty] {
		return fmt.Errorf("invalid difficulty %q: must be easy, medium, or hard", flagDifficulty)
	}

	// Validate backend name when given
	if flagBackend != "" {
		validBackends := map[string]bool{"openai": true, "anthropic": true, "bedrock": true}
		if !validBackends[flagBackend] {
			return fmt.Errorf("invalid backend %q: must be openai, anthropic, or bedrock", flagBackend)
		}
	}

	// Validate players count
	if flagPlayers < sandbox.MinPlayers || flagPlayers > sandbox.MaxPlayers {
		return fmt.Errorf("invalid players count %d: must be between %d and %d", flagPlayers, sandbox.MinPlayers, sandbox.MaxPlayers)
	}

	// Validate voice when given
	if flagVoice != "" {
		if _, ok := speech.VoiceByID(flagVoice); !ok {
			return fmt.Errorf("unknown voice %q: see list-voices", flagVoice)
		}
	}

	state, err := buildState()
	if err != nil {
		return err
	}

	scenario := strings.TrimSpace(strings.Join(args, " "))
	if scenario == "" {
		scenario = flagScenario
	}
	state.InputText = scenario

	logger := observability.InitLogger(flagVerbose)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	tp, err := observability.InitTracer(ctx, "hostbox", Version)
	if err != nil {
		logger.Warn("Failed to init tracer, continuing without tracing", "error", err)
	} else {
		defer func() {
			if err := tp.Shutdown(context.Background()); err != nil {
				logger.Error("Tracer shutdown error", "error", err)
			}
		}()
	}

	cfg := provider.ConfigFromEnv()
	if flagBackend != "" {
		cfg.Preferred = provider.BackendID(flagBackend)
	}
	if flagOpenAIAPIKey != "" {
		cfg.OpenAIKey = flagOpenAIAPIKey
	}
	if flagAnthropicAPIKey != "" {
		cfg.AnthropicKey = flagAnthropicAPIKey
	}
	gw := provider.NewGateway(cfg)
	if flagModel != "" && !gw.SetModel(flagModel) {
		return fmt.Errorf("unknown model %q for the configured backends: see list-models", flagModel)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var opts []generate.Option
	if flagNoFallback {
		opts = append(opts, generate.WithoutFallback())
	}
	orch := generate.New(gw, rng, logger, opts...)

	resp, err := orch.Generate(ctx, scenario, generate.InputText, state)
	if err != nil {
		if errors.Is(err, generate.ErrNotConfigured) {
			fmt.Fprintln(os.Stderr, gw.ConfigurationHelp())
		}
		return err
	}

	if flagJSON {
		out, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	} else {
		printResponse(resp)
	}

	if flagSpeak || flagOutput != "" {
		return speak(ctx, logger, resp)
	}
	return nil
}

func printResponse(resp *generate.Response) {
	fmt.Printf("\n%s\n\n", resp.Text)
	source := string(resp.Source)
	if resp.Model != "" {
		source = fmt.Sprintf("%s (%s)", source, resp.Model)
	}
	if resp.Degraded {
		source += ", degraded"
	}
	fmt.Printf("  source:   %s\n", source)
	fmt.Printf("  words:    %d (~%ds spoken)\n", resp.Metadata.WordCount, resp.Metadata.EstimatedSpeechDuration)
	fmt.Printf("  latency:  %dms\n", resp.Metadata.ProcessingTimeMs)
	fmt.Printf("  style:    %s / %s / %s\n", resp.Analysis.Style, resp.Analysis.Energy, resp.Analysis.Support)
}

// buildState translates the flag set into a sandbox session, reusing the
// same setters the TUI drives so flow-step and roster invariants hold.
func buildState() (*sandbox.State, error) {
	state := sandbox.NewState()
	if err := state.SetProduct(game.ProductID(flagGame)); err != nil {
		return nil, err
	}
	if flagFlowStep != "" {
		if err := state.SetFlowStep(flagFlowStep); err != nil {
			return nil, err
		}
	}
	state.Length = game.Length(flagLength)
	state.SetGameMode(game.Mode(flagMode))
	for len(state.Players) < flagPlayers {
		if err := state.AddPlayer(""); err != nil {
			return nil, err
		}
	}
	if flagScores != "" {
		parts := strings.Split(flagScores, ",")
		if len(parts) > len(state.Players) {
			return nil, fmt.Errorf("got %d scores for %d players", len(parts), len(state.Players))
		}
		for i, part := range parts {
			score, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("invalid score %q: %w", part, err)
			}
			if err := state.SetScore(state.Players[i].ID, score); err != nil {
				return nil, err
			}
		}
	}
	state.SetPersonality(personality.Settings{
		PlayfulSnarky:      flagPlayful,
		ExcitementStyle:    flagExcitement,
		EncouragementStyle: flagEncouragement,
	})
	if err := state.SetHost(flagHost); err != nil {
		return nil, err
	}
	if flagVoice != "" {
		if err := state.SetVoice(flagVoice); err != nil {
			return nil, err
		}
	}
	state.StepSettings = game.StepSettings{
		IsCorrect:   flagCorrect,
		Performance: flagPerformance,
		StreakCount: flagStreak,
		SpinValue:   flagSpin,
		WagerAmount: flagWager,
		Difficulty:  game.Difficulty(flagDifficulty),
	}
	return state, nil
}

var speechGuard sandbox.Guard

// defaultAudioFilename keeps the .mp3 extension out of the time layout,
// where "3" would be parsed as the 12-hour clock token.
func defaultAudioFilename(now time.Time) string {
	return fmt.Sprintf("hostbox-%s.mp3", now.Format("20060102-1504"))
}

func speak(ctx context.Context, logger *slog.Logger, resp *generate.Response) error {
	apiKey := flagElevenLabsAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("ELEVENLABS_API_KEY")
	}
	gw := speech.NewGateway(speech.NewElevenLabs(apiKey), logger)
	if !gw.IsReady() {
		fmt.Fprintln(os.Stderr, gw.ConfigurationHelp())
		return fmt.Errorf("TTS API key not configured")
	}

	speechGuard.Begin(resp.ID)
	// Synthesis follows the generation trace but not its cancellation scope.
	ctx = observability.DetachTraceContext(ctx)
	result := gw.Synthesize(ctx, speech.Options{Text: resp.Text, VoiceID: flagVoice})
	if !result.Success {
		return fmt.Errorf("speech synthesis failed: %s", result.Error)
	}
	defer result.Audio.Release()

	// A newer generation may have superseded this one while audio was in
	// flight; drop the stale clip instead of saving it.
	if !speechGuard.Current(resp.ID) {
		return nil
	}

	out := flagOutput
	if out == "" {
		out = defaultAudioFilename(time.Now())
	}
	audio, err := os.ReadFile(result.Audio.Path())
	if err != nil {
		return fmt.Errorf("reading synthesized audio: %w", err)
	}
	if err := os.WriteFile(out, audio, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	fmt.Printf("  audio:    %s (%d bytes, ~%dms)\n", out, result.Audio.Size(), result.EstimatedDurationMs)
	return nil
}
