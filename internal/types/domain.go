// Package types provides type definitions for structured data used throughout the synthesis engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Domain identifies which area of a person's working life a question probes.
type Domain string

// The eight reflection domains covered by a full question set.
const (
	DomainStrengths     Domain = "strengths"
	DomainValues        Domain = "values"
	DomainInterests     Domain = "interests"
	DomainGrowthAreas   Domain = "growth_areas"
	DomainWorkingStyle  Domain = "working_style"
	DomainRelationships Domain = "relationships"
	DomainAspirations   Domain = "aspirations"
	DomainAchievements  Domain = "achievements"
)

// AllDomains lists every reflection domain in declaration order.
var AllDomains = []Domain{
	DomainStrengths,
	DomainValues,
	DomainInterests,
	DomainGrowthAreas,
	DomainWorkingStyle,
	DomainRelationships,
	DomainAspirations,
	DomainAchievements,
}

// DomainCount is the total number of reflection domains.
const DomainCount = 8

// domainLabels maps each domain to its display string.
var domainLabels = map[Domain]string{
	DomainStrengths:     "Strengths",
	DomainValues:        "Values",
	DomainInterests:     "Interests",
	DomainGrowthAreas:   "Growth Areas",
	DomainWorkingStyle:  "Working Style",
	DomainRelationships: "Relationships",
	DomainAspirations:   "Aspirations",
	DomainAchievements:  "Achievements",
}

// Label returns the human-readable display string for the domain.
func (d Domain) Label() string {
	if label, ok := domainLabels[d]; ok {
		return label
	}
	return string(d)
}

// Valid reports whether the domain is one of the known reflection domains.
func (d Domain) Valid() bool {
	_, ok := domainLabels[d]
	return ok
}
