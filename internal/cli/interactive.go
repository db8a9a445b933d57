package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voxlab/hostbox/internal/game"
	"github.com/voxlab/hostbox/internal/host"
	"github.com/voxlab/hostbox/internal/speech"
)

// menuItem represents a single configurable option in the TUI.
type menuItem struct {
	label   string
	value   string
	options []menuOption
	editing bool
	cursor  int // cursor within options when editing
}

type menuOption struct {
	label string
	value string
}

// menuState tracks which phase the TUI is in.
type menuState int

const (
	stateMenu menuState = iota
	stateEditing
)

// tuiModel is the Bubble Tea model for the interactive menu.
type tuiModel struct {
	items     []menuItem
	cursor    int
	state     menuState
	width     int
	err       error
	confirmed bool
	cancelled bool
}

// style constants
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginBottom(1)

	menuLabelStyle = lipgloss.NewStyle().
			Width(18).
			Align(lipgloss.Right).
			MarginRight(2)

	menuValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	menuValueDimStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#555555")).
				Italic(true)

	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	optionStyle = lipgloss.NewStyle().
			PaddingLeft(4)

	selectedOptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#04B575")).
				Bold(true).
				PaddingLeft(2)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 3)

	buttonDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555")).
			Padding(0, 3)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)

	headerBorder = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#7D56F4")).
			MarginBottom(1).
			PaddingBottom(0)
)

// menu item indices
const (
	idxGame = iota
	idxFlowStep
	idxLength
	idxMode
	idxHost
	idxPlayful
	idxExcitement
	idxEncouragement
	idxPlayers
	idxDifficulty
	idxCorrect
	idxScenario
	idxSpeak
	idxVoice
	idxGenerate // always last
)

func gameOptions() []menuOption {
	opts := make([]menuOption, 0, len(game.Products))
	for _, p := range game.Products {
		opts = append(opts, menuOption{label: p.Name, value: string(p.ID)})
	}
	return opts
}

func flowStepOptions(productID string) []menuOption {
	p, ok := game.ProductByID(game.ProductID(productID))
	if !ok {
		return nil
	}
	opts := make([]menuOption, 0, len(p.FlowSteps))
	for _, s := range p.FlowSteps {
		opts = append(opts, menuOption{label: s.Name, value: s.ID})
	}
	return opts
}

func lengthOptions() []menuOption {
	opts := make([]menuOption, 0, len(game.Lengths))
	for _, l := range game.Lengths {
		opts = append(opts, menuOption{
			label: fmt.Sprintf("%s (%s words)", l.Label, l.WordRange),
			value: string(l.ID),
		})
	}
	return opts
}

func hostOptions() []menuOption {
	opts := make([]menuOption, 0, len(host.Catalog))
	for i := range host.Catalog {
		h := &host.Catalog[i]
		opts = append(opts, menuOption{label: h.DisplayName, value: h.ID})
	}
	return opts
}

func voiceOptions() []menuOption {
	opts := make([]menuOption, 0, len(speech.Voices))
	for _, v := range speech.Voices {
		opts = append(opts, menuOption{
			label: fmt.Sprintf("%s (%s)", v.Name, v.Gender),
			value: v.ID,
		})
	}
	return opts
}

func sliderOptions(low, high string) []menuOption {
	return []menuOption{
		{label: "1 - " + low, value: "1"},
		{label: "2", value: "2"},
		{label: "3 - Balanced", value: "3"},
		{label: "4", value: "4"},
		{label: "5 - " + high, value: "5"},
	}
}

func countOptions(max int) []menuOption {
	opts := make([]menuOption, 0, max)
	for i := 1; i <= max; i++ {
		opts = append(opts, menuOption{label: fmt.Sprintf("%d", i), value: fmt.Sprintf("%d", i)})
	}
	return opts
}

func buildMenuItems() []menuItem {
	return []menuItem{
		{label: "Game", value: "songquiz", options: gameOptions()},
		{label: "Flow Step", value: "round_result", options: flowStepOptions("songquiz")},
		{label: "Length", value: "medium", options: lengthOptions()},
		{label: "Mode", value: "single", options: []menuOption{
			{label: "Single player", value: "single"},
			{label: "Multiplayer", value: "multiplayer"},
		}},
		{label: "Host", value: "riley", options: hostOptions()},
		{label: "Playful/Snarky", value: "3", options: sliderOptions("Playful", "Snarky")},
		{label: "Excitement", value: "3", options: sliderOptions("Easily excited", "Composed")},
		{label: "Encouragement", value: "3", options: sliderOptions("Gentle", "Tough love")},
		{label: "Players", value: "1", options: countOptions(6)},
		{label: "Difficulty", value: "medium", options: []menuOption{
			{label: "Easy", value: "easy"},
			{label: "Medium", value: "medium"},
			{label: "Hard", value: "hard"},
		}},
		{label: "Answer", value: "correct", options: []menuOption{
			{label: "Correct", value: "correct"},
			{label: "Incorrect", value: "incorrect"},
		}},
		{label: "Scenario", value: ""}, // free text
		{label: "Speak", value: "no", options: []menuOption{
			{label: "No", value: "no"},
			{label: "Yes, synthesize audio", value: "yes"},
		}},
		{label: "Voice", value: speech.DefaultVoice().ID, options: voiceOptions()},
		{label: "Generate"}, // button
	}
}

func initialTUIModel() tuiModel {
	items := buildMenuItems()
	// Preselect cursors to match values
	for i := range items {
		for j, opt := range items[i].options {
			if opt.value == items[i].value {
				items[i].cursor = j
				break
			}
		}
	}
	return tuiModel{items: items}
}

func (m tuiModel) generateIdx() int { return len(m.items) - 1 }

func (m tuiModel) isTextInput(i int) bool { return i == idxScenario }

func (m tuiModel) Init() tea.Cmd { return nil }

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateEditing:
			return m.updateEditing(msg)
		}
	}
	return m, nil
}

func (m tuiModel) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.cancelled = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case "enter", " ":
		if m.cursor == m.generateIdx() {
			m.confirmed = true
			return m, tea.Quit
		}
		item := &m.items[m.cursor]
		item.editing = true
		m.state = stateEditing
		// Position option cursor at current value
		for j, opt := range item.options {
			if opt.value == item.value {
				item.cursor = j
				break
			}
		}
		return m, nil
	}
	return m, nil
}

func (m tuiModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	idx := m.cursor
	item := &m.items[idx]

	// Free-text input for the scenario field
	if m.isTextInput(idx) {
		switch msg.String() {
		case "enter":
			item.editing = false
			m.state = stateMenu
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
			return m, nil
		case "esc":
			item.editing = false
			m.state = stateMenu
			return m, nil
		case "backspace":
			if len(item.value) > 0 {
				item.value = item.value[:len(item.value)-1]
			}
			return m, nil
		case "ctrl+u":
			item.value = ""
			return m, nil
		default:
			// Accept typed characters and pasted text
			if msg.Type == tea.KeyRunes {
				item.value += string(msg.Runes)
			}
			return m, nil
		}
	}

	// Option selector for other fields
	switch msg.String() {
	case "enter", " ":
		if item.cursor >= 0 && item.cursor < len(item.options) {
			item.value = item.options[item.cursor].value
		}
		item.editing = false
		m.state = stateMenu

		// Game change invalidates the flow step; rebuild its options and
		// reset to the game's first step
		if idx == idxGame {
			steps := flowStepOptions(item.value)
			m.items[idxFlowStep].options = steps
			if len(steps) > 0 {
				m.items[idxFlowStep].value = steps[0].value
			}
			m.items[idxFlowStep].cursor = 0
		}

		// Auto-advance
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil

	case "esc":
		item.editing = false
		m.state = stateMenu
		return m, nil

	case "up", "k":
		if item.cursor > 0 {
			item.cursor--
		}

	case "down", "j":
		if item.cursor < len(item.options)-1 {
			item.cursor++
		}
	}
	return m, nil
}

func (m tuiModel) View() string {
	var b strings.Builder

	// Title
	title := titleStyle.Render("Hostbox")
	header := headerBorder.Render(title)
	b.WriteString(header)
	b.WriteString("\n")

	genIdx := m.generateIdx()

	for i, item := range m.items {
		isActive := m.cursor == i

		// Generate button
		if i == genIdx {
			b.WriteString("\n")
			if isActive {
				b.WriteString("  " + buttonStyle.Render(" Generate "))
			} else {
				b.WriteString("  " + buttonDimStyle.Render(" Generate "))
			}
			b.WriteString("\n")
			continue
		}

		// Cursor indicator
		cursor := "  "
		if isActive {
			cursor = cursorStyle.Render("> ")
		}

		renderedLabel := menuLabelStyle.Render(item.label)

		// Value display
		var renderedValue string
		if item.editing && m.isTextInput(i) {
			// Show text input with blinking cursor
			renderedValue = menuValueStyle.Render(item.value + "_")
		} else if item.value == "" {
			placeholder := "(not set)"
			if i == idxScenario {
				placeholder = "(optional — describe the game moment)"
			}
			renderedValue = menuValueDimStyle.Render(placeholder)
		} else {
			displayVal := item.value
			// Show friendly label for option-based items
			for _, opt := range item.options {
				if opt.value == item.value {
					displayVal = opt.label
					break
				}
			}
			renderedValue = menuValueStyle.Render(displayVal)
		}

		b.WriteString(cursor + renderedLabel + " " + renderedValue + "\n")

		// Show expanded options when editing
		if item.editing && len(item.options) > 0 && !m.isTextInput(i) {
			for j, opt := range item.options {
				if j == item.cursor {
					b.WriteString(selectedOptionStyle.Render("> "+opt.label) + "\n")
				} else {
					b.WriteString(optionStyle.Render("  "+opt.label) + "\n")
				}
			}
		}
	}

	// Error message
	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render("  Error: "+m.err.Error()) + "\n")
	}

	// Help text
	switch m.state {
	case stateMenu:
		b.WriteString(helpStyle.Render("  j/k or arrows to navigate | enter to edit | q to quit"))
	case stateEditing:
		if m.isTextInput(m.cursor) {
			b.WriteString(helpStyle.Render("  type value | enter to confirm | esc to cancel | ctrl+u to clear"))
		} else {
			b.WriteString(helpStyle.Render("  j/k or arrows to pick | enter to select | esc to cancel"))
		}
	}
	b.WriteString("\n")

	return b.String()
}

func runInteractiveSetup() error {
	m := initialTUIModel()

	p := tea.NewProgram(m, tea.WithAltScreen())
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tuiModel)
	if final.cancelled {
		return fmt.Errorf("cancelled")
	}
	if !final.confirmed {
		return fmt.Errorf("generation cancelled")
	}

	// Apply selections to flags
	flagGame = final.items[idxGame].value
	flagFlowStep = final.items[idxFlowStep].value
	flagLength = final.items[idxLength].value
	flagMode = final.items[idxMode].value
	flagHost = final.items[idxHost].value
	flagPlayful = atoiDefault(final.items[idxPlayful].value, 3)
	flagExcitement = atoiDefault(final.items[idxExcitement].value, 3)
	flagEncouragement = atoiDefault(final.items[idxEncouragement].value, 3)
	flagPlayers = atoiDefault(final.items[idxPlayers].value, 1)
	flagDifficulty = final.items[idxDifficulty].value
	flagCorrect = final.items[idxCorrect].value == "correct"
	flagSpeak = final.items[idxSpeak].value == "yes"
	flagVoice = final.items[idxVoice].value
	if scenario := strings.TrimSpace(final.items[idxScenario].value); scenario != "" {
		flagScenario = scenario
	}

	return nil
}

func atoiDefault(s string, def int) int {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n == 0 {
		return def
	}
	return n
}
