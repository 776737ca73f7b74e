package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Response is a single free-text answer to a reflection question, tagged with
// the themes the tagging collaborator surfaced in it. Theme tags are short
// normalized strings ("leadership", "strategic_thinking") and are compared
// case-sensitively throughout the engine.
type Response struct {
	QuestionID   string    `json:"question_id" validate:"required"`
	QuestionText string    `json:"question_text"`
	Domain       Domain    `json:"domain" validate:"required"`
	Text         string    `json:"text" validate:"required"`
	AnsweredAt   time.Time `json:"answered_at"`
	KeyThemes    []string  `json:"key_themes"`
	QualityScore float64   `json:"quality_score" validate:"gte=0,lte=1"`
}

// AdvisorResponse is a Response authored by an external observer. The
// credibility weight discounts or boosts evidence from this advisor.
type AdvisorResponse struct {
	Response
	CredibilityWeight float64  `json:"credibility_weight" validate:"gte=0,lte=1"`
	SpecificExamples  []string `json:"specific_examples,omitempty"`
}

// HasTheme reports whether the response carries the given theme tag.
// Matching is case-sensitive exact string comparison.
func (r *Response) HasTheme(theme string) bool {
	for _, t := range r.KeyThemes {
		if t == theme {
			return true
		}
	}
	return false
}

var responseValidator = validator.New()

// ValidateResponse checks a response's struct constraints (required fields,
// score ranges) and that its domain is a known reflection domain.
func ValidateResponse(r *Response) error {
	if err := responseValidator.Struct(r); err != nil {
		return err
	}
	if !r.Domain.Valid() {
		return &FieldError{Field: "domain", Message: "unknown domain: " + string(r.Domain)}
	}
	return nil
}

// ValidateAdvisorResponse checks an advisor response, including the
// credibility weight range.
func ValidateAdvisorResponse(r *AdvisorResponse) error {
	if err := responseValidator.Struct(r); err != nil {
		return err
	}
	if !r.Domain.Valid() {
		return &FieldError{Field: "domain", Message: "unknown domain: " + string(r.Domain)}
	}
	return nil
}

// FieldError reports a constraint violation on a single field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}
