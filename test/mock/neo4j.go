// test/mock/neo4j.go
package mock

import (
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	dashgate_neo4j "github.com/rohanverma/dashgate/model/neo4j"
)

// InMemoryDashboardStore emulates the Cypher surface the dashboard DAO
// uses, backed by a map of rows. It lets DAO tests run the real decode,
// scan and whole-document replacement code without a Neo4j server.
type InMemoryDashboardStore struct {
	mu    sync.Mutex
	rows  map[string]dashboardRow
	order []string
}

type dashboardRow struct {
	label         string
	configuration string
}

func NewInMemoryDashboardStore() *InMemoryDashboardStore {
	return &InMemoryDashboardStore{rows: make(map[string]dashboardRow)}
}

// Driver returns a neo4j.Driver bound to this store.
func (s *InMemoryDashboardStore) Driver() neo4j.Driver {
	return &storeDriver{store: s}
}

// Seed inserts a row directly, the way backend administration writes
// grants outside the DAO's own mutation paths.
func (s *InMemoryDashboardStore) Seed(identifier, label, configuration string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insert(identifier, label, configuration)
}

func (s *InMemoryDashboardStore) insert(identifier, label, configuration string) {
	if _, exists := s.rows[identifier]; !exists {
		s.order = append(s.order, identifier)
	}
	s.rows[identifier] = dashboardRow{label: label, configuration: configuration}
}

func (s *InMemoryDashboardStore) remove(identifier string) bool {
	if _, exists := s.rows[identifier]; !exists {
		return false
	}
	delete(s.rows, identifier)
	for i, id := range s.order {
		if id == identifier {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *InMemoryDashboardStore) node(identifier string) neo4j.Node {
	row := s.rows[identifier]
	return neo4j.Node{
		Labels: []string{dashgate_neo4j.LabelDashboard},
		Props: map[string]interface{}{
			dashgate_neo4j.PropIdentifier:    identifier,
			dashgate_neo4j.PropLabel:         row.label,
			dashgate_neo4j.PropConfiguration: row.configuration,
		},
	}
}

// run dispatches the small set of queries the DAO issues.
func (s *InMemoryDashboardStore) run(cypher string, params map[string]interface{}) (*storeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identifier, _ := params["identifier"].(string)

	switch {
	case strings.Contains(cypher, "CREATE CONSTRAINT"):
		return &storeResult{keys: []string{}}, nil

	case strings.Contains(cypher, "CREATE ("):
		if _, exists := s.rows[identifier]; exists {
			return nil, fmt.Errorf("constraint violation: identifier %s already exists", identifier)
		}
		label, _ := params["label"].(string)
		configuration, _ := params["configuration"].(string)
		s.insert(identifier, label, configuration)
		return identifierResult(identifier), nil

	case strings.Contains(cypher, "SET d.configuration"):
		row, exists := s.rows[identifier]
		if !exists {
			return &storeResult{keys: []string{"identifier"}}, nil
		}
		configuration, _ := params["configuration"].(string)
		row.configuration = configuration
		s.rows[identifier] = row
		return identifierResult(identifier), nil

	case strings.Contains(cypher, "DELETE d"):
		if !s.remove(identifier) {
			return &storeResult{keys: []string{"identifier"}}, nil
		}
		return identifierResult(identifier), nil

	case strings.Contains(cypher, "RETURN d.configuration"):
		result := &storeResult{keys: []string{"configuration"}}
		for _, id := range s.matching(identifier) {
			result.records = append(result.records, &neo4j.Record{
				Keys:   result.keys,
				Values: []interface{}{s.rows[id].configuration},
			})
		}
		return result, nil

	default:
		result := &storeResult{keys: []string{"d"}}
		for _, id := range s.matching(identifier) {
			result.records = append(result.records, &neo4j.Record{
				Keys:   result.keys,
				Values: []interface{}{s.node(id)},
			})
		}
		return result, nil
	}
}

// matching returns the row identifiers a query addresses: one when the
// query binds $identifier, every row in insertion order otherwise.
func (s *InMemoryDashboardStore) matching(identifier string) []string {
	if identifier != "" {
		if _, exists := s.rows[identifier]; exists {
			return []string{identifier}
		}
		return nil
	}
	return s.order
}

func identifierResult(identifier string) *storeResult {
	keys := []string{"identifier"}
	return &storeResult{
		keys:    keys,
		records: []*neo4j.Record{{Keys: keys, Values: []interface{}{identifier}}},
	}
}

type storeDriver struct {
	store *InMemoryDashboardStore
}

func (d *storeDriver) Target() url.URL { return url.URL{Scheme: "bolt", Host: "in-memory"} }

func (d *storeDriver) NewSession(config neo4j.SessionConfig) neo4j.Session {
	return &storeSession{store: d.store}
}

func (d *storeDriver) VerifyConnectivity() error { return nil }
func (d *storeDriver) Close() error              { return nil }
func (d *storeDriver) IsEncrypted() bool         { return false }

type storeSession struct {
	store *InMemoryDashboardStore
}

func (s *storeSession) LastBookmarks() neo4j.Bookmarks { return nil }
func (s *storeSession) LastBookmark() string           { return "" }

func (s *storeSession) BeginTransaction(configurers ...func(*neo4j.TransactionConfig)) (neo4j.Transaction, error) {
	return &storeTransaction{store: s.store}, nil
}

func (s *storeSession) ReadTransaction(work neo4j.TransactionWork, configurers ...func(*neo4j.TransactionConfig)) (interface{}, error) {
	return work(&storeTransaction{store: s.store})
}

func (s *storeSession) WriteTransaction(work neo4j.TransactionWork, configurers ...func(*neo4j.TransactionConfig)) (interface{}, error) {
	return work(&storeTransaction{store: s.store})
}

func (s *storeSession) Run(cypher string, params map[string]interface{}, configurers ...func(*neo4j.TransactionConfig)) (neo4j.Result, error) {
	return s.store.run(cypher, params)
}

func (s *storeSession) Close() error { return nil }

type storeTransaction struct {
	store *InMemoryDashboardStore
}

func (t *storeTransaction) Run(cypher string, params map[string]interface{}) (neo4j.Result, error) {
	return t.store.run(cypher, params)
}

func (t *storeTransaction) Commit() error   { return nil }
func (t *storeTransaction) Rollback() error { return nil }
func (t *storeTransaction) Close() error    { return nil }

type storeResult struct {
	keys    []string
	records []*neo4j.Record
	current *neo4j.Record
}

func (r *storeResult) Keys() ([]string, error) { return r.keys, nil }

func (r *storeResult) Next() bool {
	if len(r.records) == 0 {
		r.current = nil
		return false
	}
	r.current = r.records[0]
	r.records = r.records[1:]
	return true
}

func (r *storeResult) NextRecord(record **neo4j.Record) bool {
	if !r.Next() {
		return false
	}
	*record = r.current
	return true
}

func (r *storeResult) PeekRecord(record **neo4j.Record) bool {
	if len(r.records) == 0 {
		return false
	}
	*record = r.records[0]
	return true
}

func (r *storeResult) Peek() bool { return len(r.records) > 0 }

func (r *storeResult) Err() error { return nil }

func (r *storeResult) Record() *neo4j.Record { return r.current }

func (r *storeResult) Collect() ([]*neo4j.Record, error) {
	collected := r.records
	r.records = nil
	return collected, nil
}

func (r *storeResult) Single() (*neo4j.Record, error) {
	if len(r.records) != 1 {
		return nil, fmt.Errorf("expected exactly one record, got %d", len(r.records))
	}
	r.current = r.records[0]
	r.records = nil
	return r.current, nil
}

func (r *storeResult) Consume() (neo4j.ResultSummary, error) { return nil, nil }
