// Package store models the external data store boundary: the relational
// store and GraphQL API that persist and serve Works are out of scope for
// this tree, specified only via the query contract the cache consumes.
// Store is that contract; Memory is an in-memory reference implementation
// for tests and local running.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/oabooks/exportcore/exporterrors"
	"github.com/oabooks/exportcore/work"
)

// Store is the external collaborator the export cache queries on a miss.
// UpstreamLastUpdated is an opaque timestamp string; the cache does not
// interpret it beyond equality comparison for its key.
type Store interface {
	GetWork(ctx context.Context, workID string) (*work.Work, string, error)
	GetWorksByPublisher(ctx context.Context, publisherID string) ([]*work.Work, string, error)
}

type publisherEntry struct {
	publisherName string
	workIDs       []string
}

// Memory is a Store backed by an in-process map, seeded by Put. It exists
// for tests and for running the HTTP surface locally without a database.
type Memory struct {
	mu          sync.RWMutex
	works       map[string]*work.Work
	lastUpdated map[string]string
	publishers  map[string]*publisherEntry
	workPublisher map[string]string
}

func NewMemory() *Memory {
	return &Memory{
		works:         make(map[string]*work.Work),
		lastUpdated:   make(map[string]string),
		publishers:    make(map[string]*publisherEntry),
		workPublisher: make(map[string]string),
	}
}

// Put registers a Work under a synthetic publisherID, with the given
// opaque upstream-last-updated timestamp string.
func (m *Memory) Put(publisherID string, w *work.Work, lastUpdated string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.works[w.WorkID] = w
	m.lastUpdated[w.WorkID] = lastUpdated
	m.workPublisher[w.WorkID] = publisherID
	entry, ok := m.publishers[publisherID]
	if !ok {
		entry = &publisherEntry{publisherName: w.Imprint.Publisher.Name}
		m.publishers[publisherID] = entry
	}
	entry.workIDs = append(entry.workIDs, w.WorkID)
}

func (m *Memory) GetWork(ctx context.Context, workID string) (*work.Work, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	w, ok := m.works[workID]
	if !ok {
		return nil, "", exporterrors.EntityNotFound("work", workID)
	}
	return w, m.lastUpdated[workID], nil
}

// GetWorksByPublisher returns every Work for publisherID, ordered by
// publication date ascending (the store's own ordering guarantee; the
// core makes no stronger one), and a combined upstream-last-updated value
// that changes whenever any member Work's timestamp changes.
func (m *Memory) GetWorksByPublisher(ctx context.Context, publisherID string) ([]*work.Work, string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entry, ok := m.publishers[publisherID]
	if !ok {
		return nil, "", exporterrors.EntityNotFound("publisher", publisherID)
	}
	works := make([]*work.Work, 0, len(entry.workIDs))
	combined := ""
	for _, id := range entry.workIDs {
		works = append(works, m.works[id])
		combined += m.lastUpdated[id] + ";"
	}
	sort.Slice(works, func(i, j int) bool {
		return works[i].PublicationDate.Before(works[j].PublicationDate)
	})
	return works, combined, nil
}
