package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bdurukan/texxteditor/search"
	"github.com/bdurukan/texxteditor/settings"
	"github.com/bdurukan/texxteditor/stats"
)

var (
	reportTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	reportLabelStyle = lipgloss.NewStyle().Faint(true).Width(22)
	reportValueStyle = lipgloss.NewStyle().Bold(true)
	reportBoxStyle   = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 2)
	matchPosStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func runStats(path, findQuery string, caseSensitive bool, mgr *settings.Manager) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	text := string(data)

	// One snapshot feeds every number; the page and reading-time estimates
	// honor the configured divisors.
	r := stats.Report(text)
	r.PageCount = stats.EstimatePageCount(text, mgr.WordsPerPage())
	r.ReadingTimeMinutes = stats.EstimateReadingTime(text, mgr.WordsPerMinute())

	fmt.Println(renderReport(path, r))

	if findQuery != "" {
		printMatches(text, findQuery, caseSensitive)
	}
	return nil
}

func renderReport(path string, r stats.Statistics) string {
	row := func(label string, value any) string {
		return reportLabelStyle.Render(label) + reportValueStyle.Render(fmt.Sprint(value))
	}

	lines := []string{
		reportTitleStyle.Render(path),
		"",
		row("words", r.WordCount),
		row("characters", r.CharacterCount),
		row("characters (no sp.)", r.CharacterCountNoSpaces),
		row("lines", r.LineCount),
		row("paragraphs", r.ParagraphCount),
		row("sentences", r.SentenceCount),
		row("pages", r.PageCount),
		row("reading time", stats.FormatReadingTime(r.ReadingTimeMinutes)),
	}
	return reportBoxStyle.Render(strings.Join(lines, "\n"))
}

func printMatches(text, query string, caseSensitive bool) {
	matches := search.FindAll(text, query, caseSensitive)
	if len(matches) == 0 {
		fmt.Printf("no matches for %q\n", query)
		return
	}

	fmt.Printf("%d matches for %q:\n", len(matches), query)
	for _, m := range matches {
		line, col := lineCol(text, m.Start)
		fmt.Printf("  %s  %s\n",
			matchPosStyle.Render(fmt.Sprintf("%d:%d", line, col)),
			matchContext(text, m))
	}
}

// lineCol converts a byte offset into 1-based line and column numbers.
func lineCol(text string, offset int) (int, int) {
	line := 1 + strings.Count(text[:offset], "\n")
	col := offset - strings.LastIndex(text[:offset], "\n")
	return line, col
}

// matchContext shows the match inside the line it sits on, truncated around
// long lines.
func matchContext(text string, m search.Match) string {
	start := strings.LastIndex(text[:m.Start], "\n") + 1
	end := strings.Index(text[m.End:], "\n")
	if end < 0 {
		end = len(text)
	} else {
		end += m.End
	}

	const window = 40
	if m.Start-start > window {
		start = m.Start - window
	}
	if end-m.End > window {
		end = m.End + window
	}
	return strings.TrimSpace(text[start:end])
}
