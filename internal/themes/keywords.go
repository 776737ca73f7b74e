package themes

import "strings"

// keywordVocabulary maps theme tags to the surface words that signal them in
// free text. Used by the deterministic fallback extractor when the tagging
// collaborator is unavailable. Scanned in fixed order so extraction is
// reproducible.
var keywordVocabulary = []struct {
	theme    string
	keywords []string
}{
	{"leadership", []string{"lead", "leader", "leadership", "manage", "direct", "guide"}},
	{"communication", []string{"communicat", "present", "writing", "articulate", "explain"}},
	{"collaboration", []string{"collaborat", "team", "partner", "together", "cross-functional"}},
	{"creativity", []string{"creativ", "innovat", "design", "imagin", "original"}},
	{"problem_solving", []string{"problem", "solve", "solution", "analytical", "troubleshoot"}},
	{"strategic_thinking", []string{"strateg", "vision", "long-term", "big picture", "roadmap"}},
	{"mentoring", []string{"mentor", "coach", "teach", "develop others", "support"}},
	{"resilience", []string{"resilien", "persever", "adapt", "pressure", "setback"}},
	{"organisation", []string{"organis", "organiz", "plan", "prioritis", "prioritiz", "deadline"}},
	{"empathy", []string{"empath", "listen", "understand", "care", "compassion"}},
	{"initiative", []string{"initiative", "proactive", "self-start", "drive", "ownership"}},
	{"detail_focus", []string{"detail", "thorough", "precise", "accura", "quality"}},
}

// ExtractKeywordThemes is the deterministic local fallback for theme tagging:
// a keyword scan over the answer text. The question text is included in the
// scan since reflective answers often elide the subject the question names.
func ExtractKeywordThemes(question, answer string) []string {
	text := strings.ToLower(question + " " + answer)

	var found []string
	for _, entry := range keywordVocabulary {
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				found = append(found, entry.theme)
				break
			}
		}
	}
	return found
}
