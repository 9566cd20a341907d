// Package search provides the relevance-query contract for the public
// report listing. The canonical backend is Meilisearch; when it is not
// configured or unreachable the report service falls back to a database
// substring match.
package search

// ReportDocument is the indexed projection of a report. Only what the
// relevance query needs goes in; authors never enter the index.
type ReportDocument struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	IsPublic  bool   `json:"isPublic"`
	CreatedAt int64  `json:"createdAt"`
}

// Searcher indexes report documents and answers free-text queries with
// report ids ordered by relevance (ties broken by recency).
type Searcher interface {
	IndexReport(doc ReportDocument) error
	DeleteReport(id string) error
	Search(q string, limit int) ([]string, error)
	Healthy() bool
}
