// Package prompt assembles the system prompt sent to the model provider.
// Building is deterministic: the Context snapshot is the only input, so
// equal snapshots always produce byte-equal prompts.
package prompt

import (
	"fmt"
	"strings"

	"github.com/voxlab/hostbox/internal/game"
	"github.com/voxlab/hostbox/internal/host"
	"github.com/voxlab/hostbox/internal/personality"
)

// Context is the immutable snapshot a prompt is built from.
type Context struct {
	Product      game.ProductID
	GameMode     game.Mode
	Players      []game.Player
	Length       game.Length
	FlowStep     string
	StepType     game.StepType
	StepSettings game.StepSettings
	Personality  personality.Settings
	Host         host.Selected
}

// Prompt is the build output: the full system prompt plus the output-token
// ceiling the provider call must carry.
type Prompt struct {
	System          string
	MaxOutputTokens int
}

// Build renders the system prompt for a generation request. An unresolvable
// host id is a configuration error and aborts the build; there is no
// fallback persona.
func Build(ctx Context) (Prompt, error) {
	persona, err := host.ByID(ctx.Host.ID)
	if err != nil {
		return Prompt{}, fmt.Errorf("build prompt: %w", err)
	}

	analysis := personality.Analyze(ctx.Personality)
	spec := game.LengthSpecFor(ctx.Length)

	var b strings.Builder
	writeIdentity(&b, persona, analysis, ctx.Personality)
	writeGameContext(&b, ctx, spec)
	writeProductLore(&b, ctx)
	writeStyleExamples(&b, persona, spec.ID)
	writeConstraints(&b, persona, ctx, spec)

	return Prompt{System: b.String(), MaxOutputTokens: spec.MaxOutputTokens}, nil
}

func writeIdentity(b *strings.Builder, p *host.Personality, a personality.Analysis, s personality.Settings) {
	fmt.Fprintf(b, "You are %s, %s, an AI game show host responding to a live game scenario.\n\n", p.Name, p.Age)
	fmt.Fprintf(b, "%s\n\n", p.CorePersonality)

	b.WriteString("PERSONALITY PILLARS:\n")
	for _, pillar := range p.Pillars {
		fmt.Fprintf(b, "- %s\n", pillar)
	}

	fmt.Fprintf(b, `
PERSONALITY PROFILE:
- Style: %s
- Energy Level: %s
- Support Style: %s
- Tone: %s
- Excitement: %s
- Encouragement: %s

%s

`, a.Style, a.Energy, a.Support, a.Tone, a.Excitement, a.Encouragement, personality.Instructions(s))
}

func writeGameContext(b *strings.Builder, ctx Context, spec game.LengthSpec) {
	productName := strings.ToUpper(string(ctx.Product))
	if p, ok := game.ProductByID(ctx.Product); ok {
		productName = p.Name
	}

	fmt.Fprintf(b, `GAME CONTEXT:
- Game: %s
- Mode: %s
- Players: %s
- Current Flow Step: %s
- Response Length: %s

`, productName, ctx.GameMode, formatRoster(ctx.Players, ctx.StepType),
		strings.ReplaceAll(ctx.FlowStep, "_", " "), spec.ID)
}

// formatRoster includes scores only for the flow steps where scores drive
// the host's reaction; elsewhere bare names keep the model from fixating
// on irrelevant numbers.
func formatRoster(players []game.Player, step game.StepType) string {
	parts := make([]string, len(players))
	for i, p := range players {
		if game.ScoresRelevant(step) {
			parts[i] = fmt.Sprintf("%s (%d points)", p.Name, p.Score)
		} else {
			parts[i] = p.Name
		}
	}
	return strings.Join(parts, ", ")
}

func writeProductLore(b *strings.Builder, ctx Context) {
	behavior, ok := game.BehaviorFor(ctx.Product)
	if !ok {
		b.WriteString("GAME LORE: Generic game show scenario\n\n")
		return
	}
	fmt.Fprintf(b, `%s CONTEXT:
- %s
- Flow Step: %s
- Current Settings: %s

`, strings.ToUpper(string(ctx.Product)), behavior.Lore, ctx.FlowStep,
		ctx.StepSettings.FilteredJSON(ctx.Product))
}

func writeStyleExamples(b *strings.Builder, p *host.Personality, length game.Length) {
	fmt.Fprintf(b, "STYLE EXAMPLES for %s responses (ADAPT, DON'T COPY):\n", length)
	for _, ex := range examplesFor(p, length) {
		fmt.Fprintf(b, "- \"%s\"\n", ex)
	}
	b.WriteString("\n")
}

func examplesFor(p *host.Personality, length game.Length) []string {
	var groups [][]string
	switch length {
	case game.LengthShort:
		groups = [][]string{p.Short.Celebratory, p.Short.Impressed, p.Short.Encouraging, p.Short.Snarky}
	case game.LengthLong:
		groups = [][]string{p.Long.Performance, p.Long.Comeback, p.Long.Banter}
	case game.LengthBanter:
		groups = [][]string{p.Banter.Musical, p.Banter.Cultural, p.Banter.Observational}
	default:
		groups = [][]string{p.Medium.Correct, p.Medium.Incorrect, p.Medium.Transition}
	}
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func writeConstraints(b *strings.Builder, p *host.Personality, ctx Context, spec game.LengthSpec) {
	fmt.Fprintf(b, `HARD CONSTRAINTS:
1. CRITICAL: Keep responses EXACTLY %s spoken words total. Pause markup does not count as words. Count each word.
2. Use player names and scores naturally where the scenario calls for them
3. Reference the specific details in the scenario (song titles, guesses, amounts)
4. Vary your phrasing - never repeat the same reaction twice in a row
5. Stay in character as %s. You are a game show host, not an AI assistant
6. Voice markup guidance: %s

Respond directly to the game scenario as %s would. WORD COUNT IS CRITICAL.`,
		spec.WordRange, p.Name, p.VoiceGuidelines, p.Name)
}
