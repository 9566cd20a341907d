package search

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	meili "github.com/meilisearch/meilisearch-go"
)

const idxReports = "reports"

// Meili implements Searcher via Meilisearch.
type Meili struct {
	client  meili.ServiceManager
	healthy atomic.Bool
	done    chan struct{}
}

// NewMeili creates a Meilisearch client and configures the reports
// index. The client starts degraded if the initial health check fails
// and recovers in the background.
func NewMeili(url, apiKey string) *Meili {
	client := meili.New(url, meili.WithAPIKey(apiKey))

	m := &Meili{
		client: client,
		done:   make(chan struct{}),
	}

	if _, err := client.Health(); err != nil {
		slog.Warn("meilisearch unavailable, search degraded", "url", url, "error", err)
		m.healthy.Store(false)
	} else {
		m.healthy.Store(true)
		m.configureIndex()
	}

	go m.healthLoop()
	return m
}

func (m *Meili) configureIndex() {
	if _, err := m.client.CreateIndex(&meili.IndexConfig{
		Uid:        idxReports,
		PrimaryKey: "id",
	}); err != nil {
		slog.Warn("create search index (may already exist)", "index", idxReports, "error", err)
	}

	index := m.client.Index(idxReports)

	filterable := []interface{}{"isPublic"}
	if _, err := index.UpdateFilterableAttributes(&filterable); err != nil {
		slog.Warn("update filterable attributes", "index", idxReports, "error", err)
	}
	searchable := []string{"title", "body"}
	if _, err := index.UpdateSearchableAttributes(&searchable); err != nil {
		slog.Warn("update searchable attributes", "index", idxReports, "error", err)
	}
	sortable := []string{"createdAt"}
	if _, err := index.UpdateSortableAttributes(&sortable); err != nil {
		slog.Warn("update sortable attributes", "index", idxReports, "error", err)
	}
}

func (m *Meili) healthLoop() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			_, err := m.client.Health()
			wasHealthy := m.healthy.Load()
			m.healthy.Store(err == nil)
			if err == nil && !wasHealthy {
				slog.Info("meilisearch recovered, reconfiguring index")
				m.configureIndex()
			}
		}
	}
}

// Close stops the background health monitor.
func (m *Meili) Close() {
	close(m.done)
}

// Healthy reports whether Meilisearch is reachable.
func (m *Meili) Healthy() bool {
	return m.healthy.Load()
}

// Search returns public report ids ordered by relevance. Ties fall back
// to recency via the createdAt sort attribute.
func (m *Meili) Search(q string, limit int) ([]string, error) {
	if !m.healthy.Load() {
		return nil, fmt.Errorf("meilisearch unhealthy")
	}
	if limit <= 0 {
		limit = 50
	}

	resp, err := m.client.Index(idxReports).Search(q, searchRequest(limit))
	if err != nil {
		m.healthy.Store(false)
		return nil, fmt.Errorf("meilisearch search: %w", err)
	}

	ids := make([]string, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		if id := decodeString(hit, "id"); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// searchRequest builds the query every report search sends: public
// documents only, score ties broken by recency (the sort ranking rule
// applies after relevance, so this orders equal-score hits only).
func searchRequest(limit int) *meili.SearchRequest {
	return &meili.SearchRequest{
		Limit:  int64(limit),
		Filter: "isPublic = true",
		Sort:   []string{"createdAt:desc"},
	}
}

// IndexReport adds or updates a report in the search index.
func (m *Meili) IndexReport(doc ReportDocument) error {
	_, err := m.client.Index(idxReports).AddDocuments([]ReportDocument{doc}, nil)
	return err
}

// DeleteReport removes a report from the search index.
func (m *Meili) DeleteReport(id string) error {
	_, err := m.client.Index(idxReports).DeleteDocument(id, nil)
	return err
}

func decodeString(hit meili.Hit, key string) string {
	raw, ok := hit[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return ""
}
