// Package tui implements the Bubble Tea preview of a conversion.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sprite-ai/tghtml/internal/entity"
	"github.com/sprite-ai/tghtml/internal/markup"
)

type pane int

const (
	paneText pane = iota
	paneSpans
	paneMarkup
	paneCount
)

func (p pane) String() string {
	switch p {
	case paneText:
		return "Text"
	case paneSpans:
		return "Spans"
	case paneMarkup:
		return "Markup"
	default:
		return "?"
	}
}

// Model is the Bubble Tea model for the preview.
type Model struct {
	conv markup.Conversion

	// UI state
	width  int
	height int

	pane   pane
	scroll [paneCount]int
	lines  [paneCount][]string

	showHelp bool
}

// New converts text and prepares the preview panes.
func New(text string, entities []entity.Entity) Model {
	runes := []rune(text)
	conv := markup.Explain(text, entities)

	m := Model{conv: conv}
	m.lines[paneText] = styledTextLines(runes, conv.Spans, entities)
	m.lines[paneSpans] = spanLines(conv)
	m.lines[paneMarkup] = markupLines(conv.HTML)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		lines := m.lines[m.pane]
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Down):
			if m.scroll[m.pane] < len(lines)-1 {
				m.scroll[m.pane]++
			}

		case key.Matches(msg, keys.Up):
			if m.scroll[m.pane] > 0 {
				m.scroll[m.pane]--
			}

		case key.Matches(msg, keys.Top):
			m.scroll[m.pane] = 0

		case key.Matches(msg, keys.Bottom):
			m.scroll[m.pane] = max(len(lines)-1, 0)

		case key.Matches(msg, keys.NextPane):
			m.pane = (m.pane + 1) % paneCount

		case key.Matches(msg, keys.PrevPane):
			m.pane = (m.pane + paneCount - 1) % paneCount

		case key.Matches(msg, keys.Help):
			m.showHelp = !m.showHelp
		}
	}

	return m, nil
}

// HTML returns the converted markup.
func (m Model) HTML() string {
	return m.conv.HTML
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	tabs := m.renderTabs()
	body := m.renderPane(m.width, m.height-2)
	return lipgloss.JoinVertical(lipgloss.Left, tabs, body, m.renderStatusBar())
}

func (m Model) renderTabs() string {
	var parts []string
	for p := paneText; p < paneCount; p++ {
		style := tabStyle
		if p == m.pane {
			style = tabActiveStyle
		}
		parts = append(parts, style.Render(p.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderPane(width, height int) string {
	innerWidth := width - 4 // borders + padding
	innerHeight := height - 2
	visible := max(innerHeight-1, 1)

	lines := m.lines[m.pane]
	start := m.scroll[m.pane]
	end := min(start+visible, len(lines))

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(truncate(lines[i], innerWidth))
		if i < end-1 {
			b.WriteByte('\n')
		}
	}
	return paneStyle.Width(width - 2).Height(max(innerHeight, 1)).Render(b.String())
}

func (m Model) renderStatusBar() string {
	lines := m.lines[m.pane]
	left := fmt.Sprintf(" %s  Line %d/%d", m.pane, m.scroll[m.pane]+1, len(lines))
	right := fmt.Sprintf("%d span(s)  %d dropped  ? help ", len(m.conv.Spans), len(m.conv.Dropped))

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return statusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(paneHeaderStyle.Render("tghtml preview: Keyboard Shortcuts"))
	b.WriteString("\n\n")

	helpItems := []struct{ key, desc string }{
		{"↑/k", "Scroll up"},
		{"↓/j", "Scroll down"},
		{"g/G", "Top / bottom"},
		{"Tab/n", "Next pane"},
		{"S-Tab/N", "Previous pane"},
		{"?", "Toggle this help"},
		{"q", "Quit"},
	}

	for _, item := range helpItems {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			helpKeyStyle.Width(12).Render(item.key),
			item.desc,
		))
	}

	b.WriteString("\n")
	b.WriteString(helpBarStyle.Render("Press ? to close help"))

	return b.String()
}

// Run starts the preview.
func Run(text string, entities []entity.Entity) error {
	p := tea.NewProgram(New(text, entities), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
