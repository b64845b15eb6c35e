package content

import (
	"embed"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const glossaryPathEnv = "GLOSSARY_YAML"

//go:embed glossary.yaml
var glossaryFS embed.FS

type GlossaryEntry struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

var (
	glossaryOnce   sync.Once
	glossaryLoaded map[string]GlossaryEntry
)

// Glossary returns the titled description of every reading, keyed by field
// name. The table ships embedded in the binary; GLOSSARY_YAML can point at
// an external override, and a minimal in-code table covers the case where
// neither parses.
func Glossary() map[string]GlossaryEntry {
	glossaryOnce.Do(func() {
		glossaryLoaded = loadGlossary()
	})
	return glossaryLoaded
}

func loadGlossary() map[string]GlossaryEntry {
	if path := strings.TrimSpace(os.Getenv(glossaryPathEnv)); path != "" {
		if raw, err := os.ReadFile(path); err == nil {
			if parsed := parseGlossary(raw); parsed != nil {
				return parsed
			}
		}
	}
	raw, err := glossaryFS.ReadFile("glossary.yaml")
	if err == nil {
		if parsed := parseGlossary(raw); parsed != nil {
			return parsed
		}
	}
	return fallbackGlossary
}

func parseGlossary(raw []byte) map[string]GlossaryEntry {
	var parsed map[string]GlossaryEntry
	if err := yaml.Unmarshal(raw, &parsed); err != nil || len(parsed) == 0 {
		return nil
	}
	return parsed
}

var fallbackGlossary = map[string]GlossaryEntry{
	"life_path":  {Title: "Life Path Number", Description: "Represents your life's purpose and the main lesson you are here to learn."},
	"expression": {Title: "Expression (Destiny) Number", Description: "Reveals your natural talents, abilities, and potential in this lifetime."},
}
