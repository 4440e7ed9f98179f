package logging

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
)

// OutcomeKey marks an entry as a success line when set to OutcomeSuccess.
// logrus has no success level, so it is carried as a field on Info entries.
const (
	OutcomeKey     = "outcome"
	OutcomeSuccess = "success"
)

// Styles for console output
var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))
)

// ConsoleFormatter renders entries as a glyph, the message and any fields.
//
//	✗ error
//	! warning
//	✓ info with outcome=success
//	› info
//	• debug
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a ConsoleFormatter.
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// Format implements logrus.Formatter.
func (f *ConsoleFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	style, prefix := styleFor(entry)

	var b strings.Builder
	b.WriteString(style.Render(prefix + " " + entry.Message))

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != OutcomeKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%s=%v", k, entry.Data[k])))
	}
	b.WriteString("\n")

	return []byte(b.String()), nil
}

func styleFor(entry *logrus.Entry) (lipgloss.Style, string) {
	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return errorStyle, "✗"
	case logrus.WarnLevel:
		return warningStyle, "!"
	case logrus.InfoLevel:
		if entry.Data[OutcomeKey] == OutcomeSuccess {
			return successStyle, "✓"
		}
		return infoStyle, "›"
	default:
		return dimStyle, "•"
	}
}

// fileHook copies every entry, formatted as plain text, to a writer.
type fileHook struct {
	mu        sync.Mutex
	w         io.Writer
	formatter logrus.Formatter
}

func newFileHook(w io.Writer) *fileHook {
	return &fileHook{
		w: w,
		formatter: &logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		},
	}
}

func (h *fileHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *fileHook) Fire(entry *logrus.Entry) error {
	line, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.w.Write(line)
	return err
}
