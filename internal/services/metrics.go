package services

import (
	"sync"
	"time"

	"github.com/eduassist/eduassist-backend/internal/types"
)

const popularTopicsCapacity = 20

// MetricsAggregator holds the process-wide usage counters. It is
// injected into the generation service rather than held as a global so
// tests can construct isolated instances. All mutation goes through
// the mutex; the per-dimension maps and the incremental mean are not
// safe under unsynchronized read-modify-write.
type MetricsAggregator struct {
	mu sync.Mutex

	totalRequests      int64
	successfulRequests int64
	failedRequests     int64
	averageMs          float64
	requestsByType     map[string]int64
	requestsBySubject  map[string]int64
	requestsByGrade    map[string]int64
	popularTopics      []string
	errorRate          float64
	lastUpdated        time.Time
}

func NewMetricsAggregator() *MetricsAggregator {
	return &MetricsAggregator{
		requestsByType:    map[string]int64{},
		requestsBySubject: map[string]int64{},
		requestsByGrade:   map[string]int64{},
	}
}

// RecordAttempt is called once per request, before the gateway call.
func (m *MetricsAggregator) RecordAttempt(kind, subject, grade, topic string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalRequests++
	if kind != "" {
		m.requestsByType[kind]++
	}
	if subject != "" {
		m.requestsBySubject[subject]++
	}
	if grade != "" {
		m.requestsByGrade[grade]++
	}
	m.addTopic(topic)
	m.lastUpdated = time.Now()
}

// addTopic appends to the bounded popular-topics list, skipping
// duplicates and evicting the oldest entry past capacity.
func (m *MetricsAggregator) addTopic(topic string) {
	if topic == "" {
		return
	}
	for _, t := range m.popularTopics {
		if t == topic {
			return
		}
	}
	m.popularTopics = append(m.popularTopics, topic)
	if len(m.popularTopics) > popularTopicsCapacity {
		m.popularTopics = m.popularTopics[1:]
	}
}

// RecordSuccess folds the elapsed time into the running mean over the
// post-increment success count. No history is kept.
func (m *MetricsAggregator) RecordSuccess(elapsed time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.successfulRequests++
	n := float64(m.successfulRequests)
	elapsedMs := float64(elapsed.Milliseconds())
	m.averageMs = (m.averageMs*(n-1) + elapsedMs) / n
	m.recomputeErrorRate()
	m.lastUpdated = time.Now()
}

func (m *MetricsAggregator) RecordFailure() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.failedRequests++
	m.recomputeErrorRate()
	m.lastUpdated = time.Now()
}

func (m *MetricsAggregator) recomputeErrorRate() {
	finished := m.successfulRequests + m.failedRequests
	if finished == 0 {
		m.errorRate = 0
		return
	}
	m.errorRate = float64(m.failedRequests) / float64(finished)
}

// Snapshot returns a deep copy safe for concurrent readers.
func (m *MetricsAggregator) Snapshot() types.ServiceMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	byType := make(map[string]int64, len(m.requestsByType))
	for k, v := range m.requestsByType {
		byType[k] = v
	}
	bySubject := make(map[string]int64, len(m.requestsBySubject))
	for k, v := range m.requestsBySubject {
		bySubject[k] = v
	}
	byGrade := make(map[string]int64, len(m.requestsByGrade))
	for k, v := range m.requestsByGrade {
		byGrade[k] = v
	}
	topics := make([]string, len(m.popularTopics))
	copy(topics, m.popularTopics)

	return types.ServiceMetrics{
		TotalRequests:         m.totalRequests,
		SuccessfulRequests:    m.successfulRequests,
		FailedRequests:        m.failedRequests,
		AverageProcessingTime: m.averageMs,
		RequestsByType:        byType,
		RequestsBySubject:     bySubject,
		RequestsByGrade:       byGrade,
		PopularTopics:         topics,
		ErrorRate:             m.errorRate,
		LastUpdated:           m.lastUpdated,
	}
}
