// Package sources provides jurisdiction search adapters. Adapters
// implement the research.JurisdictionSearcher and
// research.ComparativeSearcher contracts; the engine treats them all
// uniformly, one adapter per jurisdiction family being acceptable.
package sources

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lexafrica/lexsearch/internal/research"
)

// corpusEntry is the YAML shape of one corpus document on disk.
type corpusEntry struct {
	ID              string    `yaml:"id"`
	Title           string    `yaml:"title"`
	Excerpt         string    `yaml:"excerpt"`
	DocumentType    string    `yaml:"document_type"`
	Jurisdiction    string    `yaml:"jurisdiction"`
	Language        string    `yaml:"language"`
	LegalAreas      []string  `yaml:"legal_areas"`
	PublicationDate time.Time `yaml:"publication_date"`
	AuthorityLevel  string    `yaml:"authority_level"`
	KeyTerms        []string  `yaml:"key_terms"`
	ConfidenceScore float64   `yaml:"confidence_score"`
}

// corpusFile is the YAML shape of a document corpus on disk.
type corpusFile struct {
	Documents []corpusEntry `yaml:"documents"`
}

// LoadCorpus reads a document corpus from a YAML file. Used to back the
// local corpus adapter when no live upstream sources are configured.
func LoadCorpus(path string) ([]research.LegalDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}
	var f corpusFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}

	docs := make([]research.LegalDocument, len(f.Documents))
	for i, e := range f.Documents {
		lang := research.Language(e.Language)
		if lang == "" {
			lang = research.LangEnglish
		}
		level := research.AuthorityLevel(e.AuthorityLevel)
		if level == "" {
			level = research.AuthorityUnknown
		}
		areas := make([]research.LegalArea, len(e.LegalAreas))
		for k, a := range e.LegalAreas {
			areas[k] = research.LegalArea(a)
		}
		docs[i] = research.LegalDocument{
			ID:              e.ID,
			Title:           e.Title,
			Excerpt:         e.Excerpt,
			DocumentType:    research.DocumentType(e.DocumentType),
			Jurisdiction:    research.Jurisdiction(e.Jurisdiction),
			Language:        lang,
			LegalAreas:      areas,
			PublicationDate: e.PublicationDate,
			LastUpdated:     e.PublicationDate,
			AuthorityLevel:  level,
			KeyTerms:        e.KeyTerms,
			ConfidenceScore: e.ConfidenceScore,
		}
	}
	return docs, nil
}
