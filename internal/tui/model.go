package tui

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tsum/internal/domain"
	"tsum/internal/format"
	"tsum/internal/summarizer"
)

// SummaryPort is the TUI-facing subset of the summary service.
type SummaryPort interface {
	Analyze(ctx context.Context, text string, ratio float64) (*summarizer.Analysis, error)
}

const keywordCount = 5

// Model is the Bubble Tea model for browsing summaries.
type Model struct {
	service   SummaryPort
	annotator format.Annotator
	docs      []domain.Document
	cursor    int
	ratio     float64
	analysis  *summarizer.Analysis
	err       error
	input     textinput.Model
	viewport  viewport.Model
	status    string
	ready     bool
}

// New creates a TUI model and summarizes the first document.
func New(service SummaryPort, docs []domain.Document, ratio float64, annotator format.Annotator) Model {
	ti := textinput.New()
	ti.Prompt = "ratio> "
	ti.Placeholder = "Type a ratio in (0,1] and press Enter"
	ti.Focus()
	ti.CharLimit = 8
	vp := viewport.New(0, 0)
	m := Model{
		service:   service,
		annotator: annotator,
		docs:      docs,
		ratio:     ratio,
		input:     ti,
		viewport:  vp,
		status:    "Up/Down: switch transcript. Enter: apply ratio. Ctrl+C: quit.",
	}
	m.summarize()
	return m
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, rh := resultBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		totalHeaderLines := 2 // header + document title
		totalFooterLines := 1 // status
		reserved := totalHeaderLines + totalFooterLines + qh + 1
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-rh)
		m.viewport.SetContent(m.renderSummary())
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			v := strings.TrimSpace(m.input.Value())
			if v == "" {
				return m, nil
			}
			ratio, err := strconv.ParseFloat(v, 64)
			if err != nil {
				m.status = fmt.Sprintf("Error: %q is not a number", v)
				return m, nil
			}
			if err := summarizer.ValidateRatio(ratio); err != nil {
				m.status = "Error: " + err.Error()
				return m, nil
			}
			m.ratio = ratio
			m.input.SetValue("")
			m.summarize()
			return m, nil
		case "down":
			if len(m.docs) > 1 {
				m.cursor = (m.cursor + 1) % len(m.docs)
				m.summarize()
				return m, nil
			}
		case "up":
			if len(m.docs) > 1 {
				m.cursor = (m.cursor - 1 + len(m.docs)) % len(m.docs)
				m.summarize()
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// summarize refreshes the analysis of the current document.
func (m *Model) summarize() {
	m.analysis, m.err = nil, nil
	if len(m.docs) == 0 {
		m.status = "No transcripts loaded."
		return
	}
	doc := m.docs[m.cursor]
	m.analysis, m.err = m.service.Analyze(context.Background(), doc.Content, m.ratio)
	if m.err != nil {
		m.status = "Error: " + m.err.Error()
	} else {
		m.status = fmt.Sprintf("Kept %d of %d sentences at ratio %.2f", len(m.analysis.Selected), len(m.analysis.Sentences), m.ratio)
	}
	m.viewport.SetContent(m.renderSummary())
	m.viewport.GotoTop()
}

// View renders the TUI layout and current summary.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Transcript Summary")
	title := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.title())
	input := queryBoxStyle.Render(m.input.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	if m.err != nil {
		status = errorStyle.Render(m.status)
	}
	body := resultBoxStyle.Render(m.viewport.View())
	return header + "\n" + title + "\n" + body + "\n" + input + "\n" + status
}

func (m Model) title() string {
	if len(m.docs) == 0 {
		return "No document"
	}
	return fmt.Sprintf("Document %d/%d  %s  ratio=%.2f", m.cursor+1, len(m.docs), m.docs[m.cursor].Path, m.ratio)
}

func (m Model) renderSummary() string {
	if m.err != nil {
		return "Cannot summarize this transcript:\n\n" + m.err.Error()
	}
	if m.analysis == nil || len(m.analysis.Selected) == 0 {
		return "Nothing selected. Try a larger ratio."
	}
	keywords := make(map[string]struct{}, keywordCount)
	var names []string
	for _, w := range m.analysis.Table.Top(keywordCount) {
		keywords[w.Word] = struct{}{}
		names = append(names, w.Word)
	}
	lines := m.annotator.Lines(m.analysis.Selected)
	for i := range lines {
		lines[i] = highlightKeywords(lines[i], keywords, m.analysis.Tokenizer, highlightStyle.Render)
	}
	return "Keywords: " + strings.Join(names, ", ") + "\n\n" + strings.Join(lines, "\n")
}

var (
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	unicodeWordRe  = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`)
)

// highlightKeywords marks every word of line whose table key is a keyword.
// Words are keyed by tok, so stemmed tables match inflected forms.
func highlightKeywords(line string, keywords map[string]struct{}, tok domain.Tokenizer, mark func(...string) string) string {
	if len(keywords) == 0 {
		return line
	}
	return unicodeWordRe.ReplaceAllStringFunc(line, func(word string) string {
		if _, ok := keywords[wordKey(word, tok)]; ok {
			return mark(word)
		}
		return word
	})
}

func wordKey(word string, tok domain.Tokenizer) string {
	if tok != nil {
		if tokens := tok.Tokens(word); len(tokens) > 0 {
			return tokens[0].Key()
		}
	}
	return strings.ToLower(word)
}
