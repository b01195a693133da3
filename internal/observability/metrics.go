package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters for requests and ranking calls.
type Metrics struct {
	mu              sync.Mutex
	requestCount    map[string]int64
	errorCount      map[string]int64
	rankingCalls    int64
	rankingFailures int64
	rankingCacheHit int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
		errorCount:   make(map[string]int64),
	}
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// RecordRankingCall counts one outbound ranking attempt and whether it
// yielded a usable result. This is where the degradation path stays
// observable even though callers never see a ranking error.
func (m *Metrics) RecordRankingCall(failed bool) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rankingCalls++
	if failed {
		m.rankingFailures++
	}
}

// RecordRankingCacheHit counts a ranking served from cache.
func (m *Metrics) RecordRankingCacheHit() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rankingCacheHit++
}

// RankingStats returns calls, failures and cache hits recorded so far.
func (m *Metrics) RankingStats() (calls, failures, cacheHits int64) {
	if m == nil {
		return 0, 0, 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rankingCalls, m.rankingFailures, m.rankingCacheHit
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
