package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dkovtun/arms-dashboard-go/internal/domain/entity"
)

// Publisher writes per-selector view documents as JSON files that a
// static web frontend fetches directly.
type Publisher struct {
	outDir string
}

// NewPublisher creates a publisher writing into outDir.
func NewPublisher(outDir string) *Publisher {
	return &Publisher{outDir: outDir}
}

type metaFile struct {
	GeneratedAt string   `json:"generated_at"`
	Selectors   []string `json:"selectors"`
	Views       []string `json:"views"`
}

// Publish writes meta.json plus one view_<slug>.json per view and
// returns the written file paths.
func (p *Publisher) Publish(views []entity.DashboardView) ([]string, error) {
	if err := os.MkdirAll(p.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("site: creating output dir: %w", err)
	}

	meta := metaFile{GeneratedAt: time.Now().UTC().Format(time.RFC3339)}
	written := make([]string, 0, len(views)+1)

	for _, view := range views {
		name := fmt.Sprintf("view_%s.json", slug(view.Selector))
		path := filepath.Join(p.outDir, name)
		if err := writeJSON(path, view); err != nil {
			return nil, fmt.Errorf("site: writing %s: %w", name, err)
		}
		meta.Selectors = append(meta.Selectors, string(view.Selector))
		meta.Views = append(meta.Views, name)
		written = append(written, path)
	}

	metaPath := filepath.Join(p.outDir, "meta.json")
	if err := writeJSON(metaPath, meta); err != nil {
		return nil, fmt.Errorf("site: writing meta.json: %w", err)
	}
	written = append(written, metaPath)

	return written, nil
}

// slug maps a selector to a filename fragment, e.g. "2014-2021" or "all".
func slug(selector entity.YearRange) string {
	return strings.ToLower(string(selector))
}

func writeJSON(path string, value any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
