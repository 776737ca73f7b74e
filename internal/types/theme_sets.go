package types

// ThemeSets is the reconciled theme view carried on a synthesis. SelfThemes
// and AdvisorThemes are order-preserving multisets (duplicates carry
// frequency information); the derived sets hold distinct themes in
// first-appearance order.
type ThemeSets struct {
	SelfThemes    []string `json:"self_themes"`
	AdvisorThemes []string `json:"advisor_themes"`

	CommonThemes    []string `json:"common_themes"`
	UniqueToAdvisor []string `json:"unique_to_advisor"`
	UniqueToSelf    []string `json:"unique_to_self"`
}
