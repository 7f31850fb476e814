// Package report renders review statistics as a markdown report and converts
// it to PDF.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mandolyte/mdtopdf"

	"github.com/wrongbook-app/wrongbook/internal/review"
)

// Render builds the markdown statistics report.
func Render(stats review.Statistics, recommendedDaily int, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Wrong Answer Review Report\n\n")
	fmt.Fprintf(&b, "Generated on %s\n\n", now.Format("2006-01-02"))

	fmt.Fprintf(&b, "## Backlog\n\n")
	fmt.Fprintf(&b, "| Status | Count | Share |\n")
	fmt.Fprintf(&b, "| --- | --- | --- |\n")
	fmt.Fprintf(&b, "| Mastered | %d | %d%% |\n", stats.Mastered, stats.MasteredPercentage)
	fmt.Fprintf(&b, "| Reviewing | %d | %d%% |\n", stats.Reviewing, stats.ReviewingPercentage)
	fmt.Fprintf(&b, "| Not yet reviewed | %d | %d%% |\n", stats.Unreviewed, stats.UnreviewedPercentage)
	fmt.Fprintf(&b, "| Total | %d | 100%% |\n\n", stats.Total)

	fmt.Fprintf(&b, "## Schedule\n\n")
	fmt.Fprintf(&b, "- Due today: %d\n", stats.DueTodayCount)
	fmt.Fprintf(&b, "- Overdue: %d\n", stats.OverdueCount)
	fmt.Fprintf(&b, "- Average priority: %d (%s)\n", stats.AveragePriority, review.PriorityLevelOf(stats.AveragePriority))
	fmt.Fprintf(&b, "- Average mastery: %d%%\n", stats.AverageMastery)
	fmt.Fprintf(&b, "- Recommended questions per day: %d\n", recommendedDaily)

	return b.String()
}

// WriteMarkdown renders the report and writes it into the directory, named by
// date. It returns the path of the written file.
func WriteMarkdown(dir string, stats review.Statistics, recommendedDaily int, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	path := filepath.Join(dir, fmt.Sprintf("review-report-%s.md", now.Format("2006-01-02")))
	if err := os.WriteFile(path, []byte(Render(stats, recommendedDaily, now)), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", path, err)
	}
	return path, nil
}

// ConvertMarkdownToPDF converts a markdown report to PDF next to the source
// file and returns the PDF path.
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
