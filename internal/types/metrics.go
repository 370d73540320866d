package types

import "time"

// ServiceMetrics is the read-only snapshot returned by the metrics
// aggregator. The live aggregate itself lives in the services layer.
type ServiceMetrics struct {
	TotalRequests         int64            `json:"totalRequests"`
	SuccessfulRequests    int64            `json:"successfulRequests"`
	FailedRequests        int64            `json:"failedRequests"`
	AverageProcessingTime float64          `json:"averageProcessingTimeMs"`
	RequestsByType        map[string]int64 `json:"requestsByType"`
	RequestsBySubject     map[string]int64 `json:"requestsBySubject"`
	RequestsByGrade       map[string]int64 `json:"requestsByGrade"`
	PopularTopics         []string         `json:"popularTopics"`
	ErrorRate             float64          `json:"errorRate"`
	LastUpdated           time.Time        `json:"lastUpdated"`
}
