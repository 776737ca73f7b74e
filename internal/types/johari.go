package types

// QuadrantName identifies one of the four Johari Window quadrants.
type QuadrantName string

// Quadrant names in declaration order; ties in quadrant size break in this
// order (open > blind > hidden > unknown).
const (
	QuadrantOpen    QuadrantName = "open_arena"
	QuadrantBlind   QuadrantName = "blind_spot"
	QuadrantHidden  QuadrantName = "hidden_arena"
	QuadrantUnknown QuadrantName = "unknown_arena"
)

// quadrantLabels maps each quadrant to its display string.
var quadrantLabels = map[QuadrantName]string{
	QuadrantOpen:    "Open Arena",
	QuadrantBlind:   "Blind Spot",
	QuadrantHidden:  "Hidden Arena",
	QuadrantUnknown: "Unknown Arena",
}

// Label returns the human-readable display string for the quadrant.
func (q QuadrantName) Label() string {
	if label, ok := quadrantLabels[q]; ok {
		return label
	}
	return string(q)
}

// JohariQuadrant is one cell of the perception map: its themes, a description
// of what membership means, and generated actionable insight strings.
type JohariQuadrant struct {
	Name        QuadrantName `json:"name"`
	Description string       `json:"description"`
	Themes      []string     `json:"themes"`
	Count       int          `json:"count"`
	Insights    []string     `json:"insights"`
}

// JohariWindow is the 2x2 perception map built from the reconciled theme sets,
// plus derived scores.
type JohariWindow struct {
	OpenArena    JohariQuadrant `json:"open_arena"`
	BlindSpot    JohariQuadrant `json:"blind_spot"`
	HiddenArena  JohariQuadrant `json:"hidden_arena"`
	UnknownArena JohariQuadrant `json:"unknown_arena"`

	DominantQuadrant    QuadrantName `json:"dominant_quadrant"`
	DevelopmentPriority float64      `json:"development_priority"` // [0,1]
	SelfAwarenessScore  float64      `json:"self_awareness_score"` // [0,1]
}

// Quadrants returns the four quadrants in declaration order.
func (w *JohariWindow) Quadrants() []JohariQuadrant {
	return []JohariQuadrant{w.OpenArena, w.BlindSpot, w.HiddenArena, w.UnknownArena}
}
