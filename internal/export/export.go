package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agdealers8/learn-and-conquer/internal/flashcard"
	"github.com/mandolyte/mdtopdf"
)

// WriteFlashcardsJSON saves a deck as a JSON document named by its topic and
// returns the written path.
func WriteFlashcardsJSON(dir string, deck *flashcard.Deck) (string, error) {
	payload, err := deck.ExportJSON()
	if err != nil {
		return "", fmt.Errorf("deck.ExportJSON() > %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}
	path := filepath.Join(dir, deck.ExportFilename())
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}

// WriteSummaryMarkdown saves a generated summary as a markdown study sheet.
func WriteSummaryMarkdown(dir, topic, summary string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	name := strings.TrimSpace(strings.ToLower(topic))
	if name == "" {
		name = "summary"
	}
	name = strings.ReplaceAll(name, " ", "-")
	path := filepath.Join(dir, name+".md")

	var sb strings.Builder
	sb.WriteString("# " + topic + "\n\n")
	sb.WriteString("_Generated " + time.Now().Format("2006-01-02") + "_\n\n")
	sb.WriteString(summary)
	sb.WriteString("\n")

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}

// ConvertMarkdownToPDF converts a markdown study sheet to PDF next to the
// source file and returns the PDF path.
func ConvertMarkdownToPDF(markdownPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	pdfPath := strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}
