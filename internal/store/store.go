// Package store holds the single live transaction set for the process.
// Each successful upload replaces the previous set wholesale; concurrent
// uploads race and the last write wins. Data is lost on restart.
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finwise-app/finwise/internal/domain"
	"github.com/finwise-app/finwise/internal/pipeline"
)

// Current is the process-wide upload slot. It is safe for concurrent use;
// readers see either the previous or the new set, never a partial one.
type Current struct {
	mu         sync.RWMutex
	set        *domain.Set
	context    string
	report     pipeline.Report
	uploadID   string
	uploadedAt time.Time
}

// New creates an empty upload slot.
func New() *Current {
	return &Current{}
}

// Replace swaps in a freshly normalized set along with its rendered LLM
// context and run report, returning the new upload's ID. The stored set
// must not be mutated after the call.
func (c *Current) Replace(set *domain.Set, context string, report pipeline.Report) string {
	id := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.set = set
	c.context = context
	c.report = report
	c.uploadID = id
	c.uploadedAt = time.Now()
	return id
}

// Snapshot returns the live set and its rendered context. ok is false when
// nothing has been uploaded yet.
func (c *Current) Snapshot() (set *domain.Set, context string, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.set == nil {
		return nil, "", false
	}
	return c.set, c.context, true
}

// Report returns the normalization report of the live upload.
func (c *Current) Report() pipeline.Report {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.report
}
