package page

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rook-computer/marquee/internal/assets"
	"gopkg.in/yaml.v3"
)

const pageFileName = "page.yaml"

// SourceEmbedded is reported by LoadDocument for the built-in page.
const SourceEmbedded = "embedded"

// LoadDocument finds and decodes a page description.
// Search order: customPath -> ~/.marquee/page.yaml -> ./configs/page.yaml -> embedded default.
// It returns the path the document came from.
func LoadDocument(customPath string) (Document, string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Document{}, customPath, fmt.Errorf("failed to read page %s: %w", customPath, err)
		}
		doc, err := ParseDocument(data)
		if err != nil {
			return Document{}, customPath, fmt.Errorf("failed to parse page %s: %w", customPath, err)
		}
		return doc, customPath, nil
	}

	for _, path := range []string{userPagePath(), filepath.Join("configs", pageFileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if doc, err := ParseDocument(data); err == nil {
			return doc, path, nil
		}
	}

	doc, err := ParseDocument(assets.DefaultPageYAML)
	if err != nil {
		return Document{}, SourceEmbedded, fmt.Errorf("embedded page: %w", err)
	}
	return doc, SourceEmbedded, nil
}

func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// userPagePath returns the per-user page file, or empty if home is unavailable.
func userPagePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".marquee", pageFileName)
}
