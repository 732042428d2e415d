package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sprite-ai/tghtml/internal/entity"
)

const testText = "Hello world\nrun this:\nfmt.Println(1)\nsee @bob"

var testEntities = []entity.Entity{
	{Type: entity.KindBold, Offset: 0, Length: 5},
	{Type: entity.KindPre, Offset: 22, Length: 14, Language: "go"},
	{Type: entity.KindMention, Offset: 41, Length: 4},
	{Type: entity.KindTextLink, Offset: 6, Length: 5},
}

func setupModel(t *testing.T) Model {
	t.Helper()
	m := New(testText, testEntities)
	newM, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return newM.(Model)
}

func press(m Model, r rune) Model {
	newM, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return newM.(Model)
}

func TestModelInit(t *testing.T) {
	m := setupModel(t)

	if m.pane != paneText {
		t.Errorf("expected text pane, got %s", m.pane)
	}
	if got := len(m.lines[paneText]); got != 4 {
		t.Errorf("expected 4 text lines, got %d", got)
	}
	if !strings.Contains(m.HTML(), `<pre><code class="language-go">fmt.Println(1)</code></pre>`) {
		t.Errorf("unexpected html %q", m.HTML())
	}
	if len(m.conv.Dropped) != 1 {
		t.Errorf("expected the url-less text_link to be dropped, got %d", len(m.conv.Dropped))
	}
}

func TestStyledTextKeepsContent(t *testing.T) {
	m := setupModel(t)
	for i, want := range strings.Split(testText, "\n") {
		// Strip ANSI styling by measuring and comparing printable width.
		if got := lipgloss.Width(m.lines[paneText][i]); got != lipgloss.Width(want) {
			t.Errorf("line %d width = %d, want %d", i, got, lipgloss.Width(want))
		}
	}
}

func TestPaneNavigation(t *testing.T) {
	m := setupModel(t)

	m = press(m, 'n')
	if m.pane != paneSpans {
		t.Errorf("expected spans pane, got %s", m.pane)
	}
	m = press(m, 'n')
	m = press(m, 'n')
	if m.pane != paneText {
		t.Errorf("expected wrap to text pane, got %s", m.pane)
	}
	m = press(m, 'N')
	if m.pane != paneMarkup {
		t.Errorf("expected wrap back to markup pane, got %s", m.pane)
	}

	newM, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if newM.(Model).pane != paneText {
		t.Errorf("tab should advance the pane")
	}
}

func TestScrolling(t *testing.T) {
	m := setupModel(t)

	m = press(m, 'j')
	if m.scroll[paneText] != 1 {
		t.Errorf("expected scroll 1, got %d", m.scroll[paneText])
	}
	for i := 0; i < 10; i++ {
		m = press(m, 'j')
	}
	if m.scroll[paneText] != 3 {
		t.Errorf("expected scroll clamped at 3, got %d", m.scroll[paneText])
	}
	m = press(m, 'g')
	if m.scroll[paneText] != 0 {
		t.Errorf("expected top, got %d", m.scroll[paneText])
	}
	m = press(m, 'k')
	if m.scroll[paneText] != 0 {
		t.Errorf("scroll went negative: %d", m.scroll[paneText])
	}

	// Scroll positions are kept per pane.
	m = press(m, 'G')
	m = press(m, 'n')
	if m.scroll[paneSpans] != 0 {
		t.Errorf("spans pane scrolled: %d", m.scroll[paneSpans])
	}
}

func TestViewRenders(t *testing.T) {
	m := setupModel(t)
	view := m.View()
	for _, want := range []string{"Text", "Spans", "Markup", "help"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(m, 'n')
	if !strings.Contains(m.View(), "text_link") {
		t.Error("spans pane should list the dropped text_link")
	}
}

func TestViewBeforeSize(t *testing.T) {
	m := New("x", nil)
	if m.View() != "Loading..." {
		t.Errorf("got %q", m.View())
	}
}

func TestHelpToggle(t *testing.T) {
	m := setupModel(t)
	m = press(m, '?')
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Error("expected help view")
	}
	m = press(m, '?')
	if m.showHelp {
		t.Error("expected help closed")
	}
}

func TestQuit(t *testing.T) {
	m := setupModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestMarkupLinesKeepText(t *testing.T) {
	lines := markupLines("<b>a</b>\n&lt;c&gt;")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lipgloss.Width(lines[0]) != len("<b>a</b>") {
		t.Errorf("tag styling changed width: %q", lines[0])
	}
}
