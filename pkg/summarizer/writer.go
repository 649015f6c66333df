package summarizer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/user/instantfilm/pkg/ports"
)

// FormatterFor picks the formatter for a summary path: JSON for ".json",
// markdown for anything else.
func FormatterFor(path string, markdown Formatter) Formatter {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSONFormatter{}
	}
	return markdown
}

// Writer writes formatted summaries through a ports.FileSystem.
type Writer struct {
	formatter Formatter
	fs        ports.FileSystem
}

func NewWriter(formatter Formatter, fs ports.FileSystem) *Writer {
	return &Writer{formatter: formatter, fs: fs}
}

// Write formats summary and stores it at path, creating parent directories.
func (w *Writer) Write(path string, summary *Summary) error {
	if err := w.fs.MkdirAll(filepath.Dir(path)); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	if err := w.fs.WriteFile(path, []byte(w.formatter.Format(summary))); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
