// Package cache provides the response cache for rendered pages. The cache
// is constructed once in main and handed to the page handler; nothing in
// this package is ambient state.
package cache

import (
	"context"
	"sync"
	"time"
)

// Cache keys — single place so they do not spread through the code.
const KeyLanding = "page:landing:v1"

// PageCache is the contract the page handler renders against. A miss and an
// expired entry are indistinguishable to callers.
type PageCache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, html string)
	Clear(ctx context.Context)
}

// Clock abstracts time so expiry is testable without sleeping.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock returns the wall clock.
func RealClock() Clock { return realClock{} }

type entry struct {
	html      string
	expiresAt time.Time
}

// Memory is an in-process expiring cache. Entries carry an explicit expiry
// instant; expired entries are dropped on read. Two concurrent misses may
// both render and both store — last write wins, and both bodies are
// equivalent for the same window, so no singleflight is needed.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	clock   Clock
}

func NewMemory(ttl time.Duration, clock Clock) *Memory {
	return &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
		clock:   clock,
	}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return "", false
	}
	if !m.clock.Now().Before(e.expiresAt) {
		m.mu.Lock()
		// Re-check under the write lock; another request may have stored
		// a fresh entry in the meantime.
		if cur, ok := m.entries[key]; ok && !m.clock.Now().Before(cur.expiresAt) {
			delete(m.entries, key)
		}
		m.mu.Unlock()
		return "", false
	}
	return e.html, true
}

func (m *Memory) Set(_ context.Context, key, html string) {
	m.mu.Lock()
	m.entries[key] = entry{html: html, expiresAt: m.clock.Now().Add(m.ttl)}
	m.mu.Unlock()
}

func (m *Memory) Clear(_ context.Context) {
	m.mu.Lock()
	m.entries = make(map[string]entry)
	m.mu.Unlock()
}
