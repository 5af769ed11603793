// Package cache provides an optional memoizing decorator around candidate
// evaluation. The engine itself never caches; this utility lives on the
// caller side, and its key includes both candidate and project identity so
// a result can never leak across projects.
package cache

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gigboard/matchengine/internal/domain/model"
	"github.com/gigboard/matchengine/pkg/metrics"
)

// defaultMaxSize bounds the cache when no option overrides it.
const defaultMaxSize = 10000

// Evaluator is the single-candidate evaluation contract the memo wraps.
// *app.Ranker satisfies it.
type Evaluator interface {
	Evaluate(ctx context.Context, talent *model.TalentProfile, project *model.ProjectRequirements) (model.CandidateMatch, error)
}

// node is a single entry in the eviction list.
type node struct {
	key   string
	match model.CandidateMatch
	next  *node
}

func (n *node) reset() {
	n.key = ""
	n.match = model.CandidateMatch{}
	n.next = nil
}

// Memo implements Evaluator with memoization by
// (talentID, talentVersion, projectID, projectVersion). Bounded mode
// (maxSize > 0) evicts LIFO using a linked list with pooled nodes;
// maxSize <= 0 disables eviction.
type Memo struct {
	evaluator Evaluator

	mu       sync.RWMutex
	entries  map[string]*node
	head     *node
	maxSize  int
	size     atomic.Int64
	nodePool sync.Pool
}

// Option applies a configuration option to the Memo.
type Option func(*Memo)

// WithMaxSize bounds the number of cached evaluations. Zero or negative
// disables the bound.
func WithMaxSize(size int) Option {
	return func(m *Memo) {
		m.maxSize = size
	}
}

// New wraps an evaluator with a memoizing cache.
func New(evaluator Evaluator, opts ...Option) *Memo {
	m := &Memo{
		evaluator: evaluator,
		maxSize:   defaultMaxSize,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.entries = make(map[string]*node)
	if m.maxSize > 0 {
		m.nodePool = sync.Pool{
			New: func() interface{} {
				return &node{}
			},
		}
	}

	return m
}

// Evaluate returns the cached result for this candidate/project pair when
// present, otherwise delegates to the wrapped evaluator and records the
// result. Evaluation errors are never cached.
func (m *Memo) Evaluate(ctx context.Context, talent *model.TalentProfile, project *model.ProjectRequirements) (model.CandidateMatch, error) {
	if talent == nil || project == nil {
		// No key to build; let the wrapped evaluator reject the input.
		return m.evaluator.Evaluate(ctx, talent, project)
	}

	k := cacheKey(talent, project)

	m.mu.RLock()
	n, ok := m.entries[k]
	m.mu.RUnlock()
	if ok {
		metrics.RecordCacheHit()
		return n.match, nil
	}

	metrics.RecordCacheMiss()
	match, err := m.evaluator.Evaluate(ctx, talent, project)
	if err != nil {
		return model.CandidateMatch{}, err
	}

	m.store(k, match)
	return match, nil
}

// Size returns the current number of cached evaluations.
func (m *Memo) Size() int64 {
	return m.size.Load()
}

func (m *Memo) store(k string, match model.CandidateMatch) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.entries[k]; exists {
		return
	}

	if m.maxSize > 0 {
		if len(m.entries) >= m.maxSize {
			m.evictLIFO()
		}
		n := m.nodePool.Get().(*node)
		n.key = k
		n.match = match
		n.next = m.head
		m.head = n
		m.entries[k] = n
	} else {
		m.entries[k] = &node{key: k, match: match}
	}

	m.size.Add(1)
	metrics.UpdateCacheSize(m.size.Load())
}

// evictLIFO removes the least recently added entry (tail of the list).
// Must be called with m.mu held.
func (m *Memo) evictLIFO() {
	if m.head == nil {
		return
	}

	if m.head.next == nil {
		delete(m.entries, m.head.key)
		m.head.reset()
		m.nodePool.Put(m.head)
		m.head = nil
		m.size.Add(-1)
		return
	}

	var prev *node
	current := m.head
	for current.next != nil {
		prev = current
		current = current.next
	}

	prev.next = nil
	delete(m.entries, current.key)
	current.reset()
	m.nodePool.Put(current)
	m.size.Add(-1)
}

// cacheKey composes candidate and project identity and versions. Both sides
// must be present in the key; a candidate re-scored against a different
// project is a different entry.
func cacheKey(talent *model.TalentProfile, project *model.ProjectRequirements) string {
	return talent.ID + "@" + talent.Version + "|" + project.ID + "@" + project.Version
}
