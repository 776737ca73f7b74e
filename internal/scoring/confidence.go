package scoring

import "github.com/Wittering/wigu-synthesis/internal/types"

// Weights for the confidence components.
const (
	selfQualityWeight        = 0.2
	advisorQualityWeight     = 0.3
	advisorCredibilityWeight = 0.3
	dataSufficiencyWeight    = 0.1
	domainCoverageWeight     = 0.1
)

// Confidence thresholds.
const (
	highConfidenceThreshold   = 0.75
	mediumConfidenceThreshold = 0.55
)

// responsesForSufficiency is the combined response count at which data
// sufficiency saturates.
const responsesForSufficiency = 20

// ConfidenceScore computes the weighted confidence sum over response quality,
// advisor credibility, data sufficiency and domain coverage.
func ConfidenceScore(self []types.Response, advisors []types.AdvisorResponse) float64 {
	score := selfQualityWeight*averageSelfQuality(self) +
		advisorQualityWeight*averageAdvisorQuality(advisors) +
		advisorCredibilityWeight*averageAdvisorCredibility(advisors) +
		dataSufficiencyWeight*dataSufficiency(len(self), len(advisors)) +
		domainCoverageWeight*domainCoverage(self, advisors)
	return clamp01(score)
}

// ConfidenceLevel buckets a confidence score at the 0.75 / 0.55 thresholds.
func ConfidenceLevel(score float64) types.ConfidenceLevel {
	switch {
	case score >= highConfidenceThreshold:
		return types.ConfidenceHigh
	case score >= mediumConfidenceThreshold:
		return types.ConfidenceMedium
	default:
		return types.ConfidenceLow
	}
}

func averageSelfQuality(self []types.Response) float64 {
	if len(self) == 0 {
		return 0
	}
	total := 0.0
	for i := range self {
		total += self[i].QualityScore
	}
	return total / float64(len(self))
}

func averageAdvisorQuality(advisors []types.AdvisorResponse) float64 {
	if len(advisors) == 0 {
		return 0
	}
	total := 0.0
	for i := range advisors {
		total += advisors[i].QualityScore
	}
	return total / float64(len(advisors))
}

func averageAdvisorCredibility(advisors []types.AdvisorResponse) float64 {
	if len(advisors) == 0 {
		return 0
	}
	total := 0.0
	for i := range advisors {
		total += advisors[i].CredibilityWeight
	}
	return total / float64(len(advisors))
}

// dataSufficiency saturates at 20 combined responses.
func dataSufficiency(selfCount, advisorCount int) float64 {
	return clamp01(float64(selfCount+advisorCount) / responsesForSufficiency)
}

// domainCoverage counts the distinct domains each side touched, normalized by
// the total domain count.
func domainCoverage(self []types.Response, advisors []types.AdvisorResponse) float64 {
	selfDomains := make(map[types.Domain]bool)
	for i := range self {
		selfDomains[self[i].Domain] = true
	}
	advisorDomains := make(map[types.Domain]bool)
	for i := range advisors {
		advisorDomains[advisors[i].Domain] = true
	}
	return clamp01(float64(len(selfDomains)+len(advisorDomains)) / float64(types.DomainCount))
}

// DistinctDomains returns how many distinct domains a self response list
// covers. Used by the assembler's low-coverage warning.
func DistinctDomains(self []types.Response) int {
	domains := make(map[types.Domain]bool)
	for i := range self {
		domains[self[i].Domain] = true
	}
	return len(domains)
}

// DistinctAdvisorDomains returns how many distinct domains an advisor
// response list covers.
func DistinctAdvisorDomains(advisors []types.AdvisorResponse) int {
	domains := make(map[types.Domain]bool)
	for i := range advisors {
		domains[advisors[i].Domain] = true
	}
	return len(domains)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
