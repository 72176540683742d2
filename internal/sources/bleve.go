package sources

import (
	"context"
	"fmt"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/lexafrica/lexsearch/internal/research"
)

// Fallback result bound for one corpus query when the search hints
// carry no candidate cap.
const corpusSearchLimit = 50

// CorpusSearcher is a local-corpus adapter backed by an in-memory Bleve
// index. It makes the engine runnable end-to-end without live upstream
// sources; remote adapters implement the same interfaces.
type CorpusSearcher struct {
	index bleve.Index
	docs  map[string]research.LegalDocument
	name  string
}

var (
	_ research.JurisdictionSearcher = (*CorpusSearcher)(nil)
	_ research.ComparativeSearcher  = (*CorpusSearcher)(nil)
)

// indexedDoc is the flat shape handed to Bleve. Filter fields use the
// keyword analyzer so enum values match exactly.
type indexedDoc struct {
	Title           string    `json:"title"`
	Excerpt         string    `json:"excerpt"`
	KeyTerms        []string  `json:"key_terms"`
	Jurisdiction    string    `json:"jurisdiction"`
	DocumentType    string    `json:"document_type"`
	Language        string    `json:"language"`
	PublicationDate time.Time `json:"publication_date"`
}

// NewCorpusSearcher builds an in-memory index over the given documents.
func NewCorpusSearcher(name string, docs []research.LegalDocument) (*CorpusSearcher, error) {
	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create corpus index: %w", err)
	}

	byID := make(map[string]research.LegalDocument, len(docs))
	batch := index.NewBatch()
	for _, d := range docs {
		if d.ID == "" {
			continue
		}
		byID[d.ID] = d
		err := batch.Index(d.ID, indexedDoc{
			Title:           d.Title,
			Excerpt:         d.Excerpt,
			KeyTerms:        d.KeyTerms,
			Jurisdiction:    string(d.Jurisdiction),
			DocumentType:    string(d.DocumentType),
			Language:        string(d.Language),
			PublicationDate: d.PublicationDate,
		})
		if err != nil {
			return nil, fmt.Errorf("index corpus document %s: %w", d.ID, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("commit corpus batch: %w", err)
	}

	return &CorpusSearcher{index: index, docs: byID, name: name}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	textField := bleve.NewTextFieldMapping()

	keywordField := bleve.NewTextFieldMapping()
	keywordField.Analyzer = keyword.Name

	dateField := bleve.NewDateTimeFieldMapping()

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt("title", textField)
	doc.AddFieldMappingsAt("excerpt", textField)
	doc.AddFieldMappingsAt("key_terms", textField)
	doc.AddFieldMappingsAt("jurisdiction", keywordField)
	doc.AddFieldMappingsAt("document_type", keywordField)
	doc.AddFieldMappingsAt("language", keywordField)
	doc.AddFieldMappingsAt("publication_date", dateField)

	im := bleve.NewIndexMapping()
	im.DefaultMapping = doc
	return im
}

// Name implements JurisdictionSearcher.
func (c *CorpusSearcher) Name() string {
	return c.name
}

// Search returns corpus candidates for one jurisdiction.
func (c *CorpusSearcher) Search(ctx context.Context, q string, jurisdiction research.Jurisdiction, req *research.ResearchRequest, opts research.SemanticSearchOptions) ([]research.LegalDocument, error) {
	return c.run(ctx, q, []research.Jurisdiction{jurisdiction}, req, opts)
}

// SearchComparative searches across the full requested jurisdiction set.
func (c *CorpusSearcher) SearchComparative(ctx context.Context, q string, jurisdictions []research.Jurisdiction, req *research.ResearchRequest, opts research.SemanticSearchOptions) ([]research.LegalDocument, error) {
	return c.run(ctx, q, jurisdictions, req, opts)
}

func (c *CorpusSearcher) run(ctx context.Context, q string, jurisdictions []research.Jurisdiction, req *research.ResearchRequest, opts research.SemanticSearchOptions) ([]research.LegalDocument, error) {
	conjuncts := []query.Query{textQuery(q, opts.ConceptualMatch)}

	if len(jurisdictions) > 0 {
		conjuncts = append(conjuncts, termDisjunction("jurisdiction", asStrings(jurisdictions)))
	}
	if len(req.DocumentTypes) > 0 {
		conjuncts = append(conjuncts, termDisjunction("document_type", asStrings(req.DocumentTypes)))
	}
	if req.DateRange != nil && (!req.DateRange.From.IsZero() || !req.DateRange.To.IsZero()) {
		dr := bleve.NewDateRangeQuery(req.DateRange.From, req.DateRange.To)
		dr.SetField("publication_date")
		conjuncts = append(conjuncts, dr)
	}

	limit := opts.MaxCandidates
	if limit <= 0 {
		limit = corpusSearchLimit
	}
	searchReq := bleve.NewSearchRequestOptions(bleve.NewConjunctionQuery(conjuncts...), limit, 0, false)
	result, err := c.index.SearchInContext(ctx, searchReq)
	if err != nil {
		return nil, fmt.Errorf("corpus search: %w", err)
	}

	maxScore := result.MaxScore
	if maxScore == 0 {
		maxScore = 1
	}

	docs := make([]research.LegalDocument, 0, len(result.Hits))
	for _, hit := range result.Hits {
		d, ok := c.docs[hit.ID]
		if !ok {
			continue
		}
		// Bleve scores are unbounded; scale against the best hit so the
		// central ranker sees relevance in [0,1].
		d.RelevanceScore = hit.Score / maxScore
		if d.ConfidenceScore == 0 {
			d.ConfidenceScore = d.RelevanceScore
		}
		if opts.SimilarityThreshold > 0 && d.RelevanceScore < opts.SimilarityThreshold {
			continue
		}
		if req.ConfidenceThreshold > 0 && d.ConfidenceScore < req.ConfidenceThreshold {
			continue
		}
		docs = append(docs, d)
	}
	return docs, nil
}

// textQuery matches the query terms against the indexed text fields.
// Conceptual matching widens the search to excerpts and key terms;
// without it only titles are consulted.
func textQuery(q string, conceptual bool) query.Query {
	title := bleve.NewMatchQuery(q)
	title.SetField("title")
	title.SetBoost(2.0)

	if !conceptual {
		return title
	}

	excerpt := bleve.NewMatchQuery(q)
	excerpt.SetField("excerpt")

	terms := bleve.NewMatchQuery(q)
	terms.SetField("key_terms")

	return bleve.NewDisjunctionQuery(title, excerpt, terms)
}

// termDisjunction builds an OR of exact term matches on a keyword field.
func termDisjunction(field string, values []string) query.Query {
	qs := make([]query.Query, len(values))
	for i, v := range values {
		t := bleve.NewTermQuery(v)
		t.SetField(field)
		qs[i] = t
	}
	return bleve.NewDisjunctionQuery(qs...)
}

func asStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// Close releases the in-memory index.
func (c *CorpusSearcher) Close() error {
	return c.index.Close()
}
