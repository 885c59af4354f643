package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"rnaplot/internal/vienna"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	surfaceColor   = lipgloss.Color("#1F2937") // Dark gray
	textColor      = lipgloss.Color("#F3F4F6") // Light gray
	mutedColor     = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor    = lipgloss.Color("#374151") // Border gray
)

// Styles
var (
	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	sequenceStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(lipgloss.Color("#111827")).
			Padding(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	pairedStyle   = lipgloss.NewStyle().Foreground(secondaryColor).Bold(true)
	unpairedStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

// entry is one record together with the file it came from.
type entry struct {
	file   string
	record vienna.Record
}

type listItem struct {
	entry entry
}

func (i listItem) FilterValue() string { return i.entry.record.Name() }

func (i listItem) Title() string { return i.entry.record.Name() }

func (i listItem) Description() string {
	r := i.entry.record
	return fmt.Sprintf("Length: %d    Pairs: %d", len(r.Structure), vienna.Pairs(r.Structure))
}

type mode int

const (
	modeStructure mode = iota
	modeSequence
	modePaired
)

func (m mode) String() string {
	switch m {
	case modeStructure:
		return "Structure"
	case modeSequence:
		return "Sequence"
	case modePaired:
		return "Paired"
	default:
		return "Unknown"
	}
}

type model struct {
	list          list.Model
	entries       []entry
	summaries     map[string]vienna.Summary
	currentMode   mode
	showHelp      bool
	width         int
	height        int
	selectedIndex int
}

// loadEntries reads every vienna file in order.
func loadEntries(paths []string) ([]entry, map[string]vienna.Summary, error) {
	var entries []entry
	summaries := make(map[string]vienna.Summary)
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, nil, err
		}
		recs, err := vienna.Parse(f)
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", p, err)
		}
		for _, r := range recs {
			entries = append(entries, entry{file: p, record: r})
		}
		summaries[p] = vienna.Summarize(recs)
	}
	return entries, summaries, nil
}

func newModel(entries []entry, summaries map[string]vienna.Summary) model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = listItem{entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Folding steps"
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	return model{
		list:        l,
		entries:     entries,
		summaries:   summaries,
		currentMode: modeStructure,
	}
}

func (m model) cycleMode() model {
	m.currentMode = (m.currentMode + 1) % 3
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// left panel takes 1/3 of the width
		m.list.SetWidth(msg.Width / 3)
		m.list.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		// keys typed into the filter prompt belong to the list
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "h":
			m.showHelp = !m.showHelp
			return m, nil
		case "tab":
			return m.cycleMode(), nil
		case "1":
			m.currentMode = modeStructure
			return m, nil
		case "2":
			m.currentMode = modeSequence
			return m, nil
		case "3":
			m.currentMode = modePaired
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.selectedIndex = m.list.Index()
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelpModal()
	}

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		containerStyle.Width(m.width/3-2).Height(m.height-4).Render(m.list.View()),
		m.renderRightPanel(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderStatusBar())
}

func (m model) renderRightPanel() string {
	panel := containerStyle.
		Width(m.width*2/3 - 2).
		Height(m.height - 4)

	if len(m.entries) == 0 {
		return panel.Render("No records available")
	}
	selected, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return panel.Render("No step selected")
	}

	e := selected.entry
	header := titleStyle.Render(fmt.Sprintf("%s  (%s)", e.record.Name(), e.file))
	lines := m.buildRightLines(e.record)
	return panel.Render(lipgloss.JoinVertical(lipgloss.Left, append([]string{header, ""}, lines...)...))
}

// wrapWidth is the usable text width of the right panel.
func (m model) wrapWidth() int {
	w := m.width*2/3 - 8
	if w < 10 {
		w = 10
	}
	return w
}

// chunk splits s into pieces of at most n bytes.
func chunk(s string, n int) []string {
	var out []string
	for len(s) > n {
		out = append(out, s[:n])
		s = s[n:]
	}
	if s != "" {
		out = append(out, s)
	}
	return out
}

func colorStructure(s string) string {
	var b strings.Builder
	for _, c := range s {
		if c == '.' {
			b.WriteString(unpairedStyle.Render(string(c)))
		} else {
			b.WriteString(pairedStyle.Render(string(c)))
		}
	}
	return b.String()
}

// buildRightLines renders r for the current mode, wrapped to the panel.
func (m model) buildRightLines(r vienna.Record) []string {
	w := m.wrapWidth()
	label := lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	lines := []string{label.Render(m.currentMode.String() + ":")}

	switch m.currentMode {
	case modeStructure:
		for _, c := range chunk(r.Structure, w) {
			lines = append(lines, colorStructure(c))
		}
	case modeSequence:
		lines = append(lines, sequenceStyle.Width(w).Render(r.Sequence))
	case modePaired:
		seq := chunk(r.Sequence, w)
		st := chunk(r.Structure, w)
		for i := range st {
			if i < len(seq) {
				lines = append(lines, seq[i])
			}
			lines = append(lines, colorStructure(st[i]), "")
		}
	}
	return lines
}

func (m model) renderStatusBar() string {
	leftInfo := fmt.Sprintf("%d/%d steps", m.selectedIndex+1, len(m.entries))
	centerInfo := fmt.Sprintf("Mode: %s", m.currentMode)
	if selected, ok := m.list.SelectedItem().(listItem); ok {
		s := m.summaries[selected.entry.file]
		centerInfo += fmt.Sprintf("  |  pairs %.1f±%.1f max %d", s.MeanPairs, s.StdPairs, s.MaxPairs)
	}
	rightInfo := "Press 'h' for help • 'q' to quit"

	spacing := m.width - len(leftInfo) - len(centerInfo) - len(rightInfo) - 6
	var statusContent string
	if spacing > 0 {
		leftSpacing := spacing / 2
		statusContent = leftInfo + strings.Repeat(" ", leftSpacing) + centerInfo + strings.Repeat(" ", spacing-leftSpacing) + rightInfo
	} else {
		// narrow terminals
		statusContent = fmt.Sprintf("%s | %s", leftInfo, centerInfo)
	}
	return statusBarStyle.Width(m.width).Render(statusContent)
}

func (m model) renderHelpModal() string {
	helpContent := `Folding trajectory browser - Help

Navigation:
  ↑/↓, j/k     Navigate steps
  /            Filter by record name

View Modes:
  1            Show structure
  2            Show sequence prefix
  3            Show sequence over structure
  tab          Cycle modes

General:
  h            Toggle this help
  q, Ctrl+C    Quit

Current Mode: ` + m.currentMode.String() + `
Total Steps: ` + fmt.Sprintf("%d", len(m.entries)) + `
`
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(surfaceColor).
		Foreground(textColor).
		Width(60).
		Render(helpContent)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

// fileList collects --file values.
type fileList []string

func (f *fileList) String() string     { return strings.Join(*f, ",") }
func (f *fileList) Set(v string) error { *f = append(*f, v); return nil }

func main() {
	var files fileList
	flag.Var(&files, "file", "vienna file to browse (repeatable)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [--file FILE]... [FILE...]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	files = append(files, flag.Args()...)
	if len(files) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	entries, summaries, err := loadEntries(files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	p := tea.NewProgram(newModel(entries, summaries), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
