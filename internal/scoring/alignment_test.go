package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Wittering/wigu-synthesis/internal/themes"
)

func TestAlignmentScore(t *testing.T) {
	sets := &themes.ThemeSets{
		SelfThemes:    []string{"leadership", "leadership", "creativity"},
		AdvisorThemes: []string{"leadership", "leadership", "leadership", "mentoring"},
		CommonThemes:  []string{"leadership"},
	}

	// Union is {leadership, creativity, mentoring}.
	assert.InDelta(t, 1.0/3.0, AlignmentScore(sets), 1e-9)
}

func TestAlignmentScore_FullOverlap(t *testing.T) {
	sets := &themes.ThemeSets{
		SelfThemes:    []string{"leadership", "empathy"},
		AdvisorThemes: []string{"empathy", "leadership"},
		CommonThemes:  []string{"leadership", "empathy"},
	}
	assert.InDelta(t, 1.0, AlignmentScore(sets), 1e-9)
}

func TestAlignmentScore_EmptySide(t *testing.T) {
	assert.Zero(t, AlignmentScore(&themes.ThemeSets{
		SelfThemes:    []string{},
		AdvisorThemes: []string{"leadership"},
	}))
	assert.Zero(t, AlignmentScore(&themes.ThemeSets{
		SelfThemes:    []string{"leadership"},
		AdvisorThemes: []string{},
	}))
}

func TestAlignmentScore_DuplicatesDoNotInflate(t *testing.T) {
	once := AlignmentScore(&themes.ThemeSets{
		SelfThemes:    []string{"leadership"},
		AdvisorThemes: []string{"leadership"},
		CommonThemes:  []string{"leadership"},
	})
	many := AlignmentScore(&themes.ThemeSets{
		SelfThemes:    []string{"leadership", "leadership", "leadership"},
		AdvisorThemes: []string{"leadership", "leadership"},
		CommonThemes:  []string{"leadership"},
	})
	assert.Equal(t, once, many)
}
