package types

// FiveInsightsModel groups categorized insights into the five-part strength
// model. Created once per synthesis run and never mutated afterward; a repeat
// run produces a new model.
type FiveInsightsModel struct {
	// EnergisingStrengths are themes both sides cite often and with evidence.
	EnergisingStrengths []SynthesisInsight `json:"energising_strengths"`
	// HiddenStrengths are themes advisors cite repeatedly but the person
	// barely mentions.
	HiddenStrengths []SynthesisInsight `json:"hidden_strengths"`
	// OverusedTalents are themes the person leans on that advisors rarely echo.
	OverusedTalents []SynthesisInsight `json:"overused_talents"`
	// AspirationalStrengths are growth areas advisors explicitly point at.
	AspirationalStrengths []SynthesisInsight `json:"aspirational_strengths"`
	// MisalignedEnergies are shared themes the person undersells relative to
	// the language advisors use for them.
	MisalignedEnergies []SynthesisInsight `json:"misaligned_energies"`

	// BalanceScore measures how evenly insights spread across the five
	// categories, in [0,1].
	BalanceScore       float64  `json:"balance_score"`
	KeyRecommendations []string `json:"key_recommendations"`
}

// All returns every insight in the model in fixed category order.
func (m *FiveInsightsModel) All() []SynthesisInsight {
	out := make([]SynthesisInsight, 0,
		len(m.EnergisingStrengths)+len(m.HiddenStrengths)+len(m.OverusedTalents)+
			len(m.AspirationalStrengths)+len(m.MisalignedEnergies))
	out = append(out, m.EnergisingStrengths...)
	out = append(out, m.HiddenStrengths...)
	out = append(out, m.OverusedTalents...)
	out = append(out, m.AspirationalStrengths...)
	out = append(out, m.MisalignedEnergies...)
	return out
}

// CategoryCounts returns the number of insights per category in fixed order:
// energising, hidden, overused, aspirational, misaligned.
func (m *FiveInsightsModel) CategoryCounts() [5]int {
	return [5]int{
		len(m.EnergisingStrengths),
		len(m.HiddenStrengths),
		len(m.OverusedTalents),
		len(m.AspirationalStrengths),
		len(m.MisalignedEnergies),
	}
}

// Total returns the total number of insights across all five categories.
func (m *FiveInsightsModel) Total() int {
	counts := m.CategoryCounts()
	total := 0
	for _, c := range counts {
		total += c
	}
	return total
}
