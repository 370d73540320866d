package services

import "math"

// Quality sub-scores are weighted equally.
const qualityWeight = 0.25

// overallQualityScore combines the four sub-scores (each 0-100) into a
// rounded weighted average.
func overallQualityScore(readability, grammar, relevance, accuracy int) int {
	weighted := qualityWeight*float64(readability) +
		qualityWeight*float64(grammar) +
		qualityWeight*float64(relevance) +
		qualityWeight*float64(accuracy)
	return int(math.Round(weighted))
}
