package statement

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPDFText pulls the text content of every page of a PDF, joined
// in page order. pdfcpu extracts per-page content into files, so the
// pages go through a scratch directory that is removed before return.
func extractPDFText(path string) (string, error) {
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return "", fmt.Errorf("reading PDF %s: %w", path, err)
	}

	outDir, err := os.MkdirTemp("", "wpulse-pdf-")
	if err != nil {
		return "", fmt.Errorf("creating scratch dir: %w", err)
	}
	defer os.RemoveAll(outDir)

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractContentFile(path, outDir, nil, conf); err != nil {
		return "", fmt.Errorf("extracting content of %s: %w", path, err)
	}

	entries, err := os.ReadDir(outDir)
	if err != nil {
		return "", fmt.Errorf("listing extracted pages: %w", err)
	}
	pages := make(map[int]string, ctx.PageCount)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		var pageNum int
		if _, err := fmt.Sscanf(e.Name(), "Content_page_%d", &pageNum); err != nil {
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, e.Name()))
		if err != nil {
			continue
		}
		pages[pageNum] = string(content)
	}

	var b strings.Builder
	for n := 1; n <= ctx.PageCount; n++ {
		if text, ok := pages[n]; ok {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(text)
		}
	}
	return b.String(), nil
}
