package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakEvenValue(t *testing.T) {
	tests := []struct {
		name   string
		retail float64
		want   float64
	}{
		{"whole value", 1000, 250.00},
		{"rounds half up", 19.99, 5.00},
		{"zero", 0, 0},
		{"two decimal result", 10.10, 2.53},
		{"small value half up", 0.02, 0.01},
		{"exact quarter", 100, 25.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BreakEvenValue(tt.retail), 1e-9)
		})
	}
}

func TestDeriveKeywords(t *testing.T) {
	t.Run("blank slot dropped, order preserved", func(t *testing.T) {
		assert.Equal(t, []string{"A", "C"}, DeriveKeywords("A", "", "C"))
	})

	t.Run("all blank yields empty", func(t *testing.T) {
		assert.Empty(t, DeriveKeywords("", "  ", ""))
	})

	t.Run("entries trimmed", func(t *testing.T) {
		assert.Equal(t, []string{"fast", "red"}, DeriveKeywords(" fast ", "red", ""))
	})

	t.Run("capped at three", func(t *testing.T) {
		got := DeriveKeywords("a", "b", "c", "d")
		assert.Len(t, got, MaxKeywords)
	})
}

func TestPrizeDraftKeywords(t *testing.T) {
	draft := &PrizeDraft{DetailOne: "Limited edition", DetailTwo: "", DetailThree: "Collector item"}
	assert.Equal(t, []string{"Limited edition", "Collector item"}, draft.Keywords())
}

func TestCategorySet(t *testing.T) {
	t.Run("seeded with defaults", func(t *testing.T) {
		set := NewCategorySet()
		assert.Equal(t, DefaultPrizeCategories, set.Categories())
	})

	t.Run("duplicate is a no-op", func(t *testing.T) {
		set := NewCategorySet()
		require.Contains(t, set.Categories(), "Toys")
		assert.False(t, set.Add("Toys"))
		assert.Equal(t, len(DefaultPrizeCategories), len(set.Categories()))
	})

	t.Run("whitespace-padded duplicate is a no-op after trimming", func(t *testing.T) {
		set := NewCategorySet()
		assert.False(t, set.Add("  Toys  "))
		assert.Equal(t, len(DefaultPrizeCategories), len(set.Categories()))
	})

	t.Run("empty input is a no-op", func(t *testing.T) {
		set := NewCategorySet()
		assert.False(t, set.Add("   "))
		assert.Equal(t, len(DefaultPrizeCategories), len(set.Categories()))
	})

	t.Run("new category appended in order", func(t *testing.T) {
		set := NewCategorySet()
		assert.True(t, set.Add(" Board Games "))
		categories := set.Categories()
		assert.Equal(t, "Board Games", categories[len(categories)-1])
		assert.False(t, set.Add("Board Games"))
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		set := NewCategorySet()
		categories := set.Categories()
		categories[0] = "mutated"
		assert.Equal(t, DefaultPrizeCategories[0], set.Categories()[0])
	})
}

func TestRegionSet(t *testing.T) {
	t.Run("toggle adds then removes", func(t *testing.T) {
		set := NewRegionSet()
		set.Toggle("california")
		set.Toggle("texas")
		set.Toggle("nevada")
		require.Equal(t, "california,texas,nevada", set.String())

		set.Toggle("texas")
		assert.Equal(t, "california,nevada", set.String())
		assert.False(t, set.Contains("texas"))
	})

	t.Run("double toggle restores original projection", func(t *testing.T) {
		set := NewRegionSet()
		set.Toggle("california")
		set.Toggle("texas")
		before := set.String()

		set.Toggle("ohio")
		set.Toggle("ohio")
		assert.Equal(t, before, set.String())
	})

	t.Run("empty set serializes to empty string", func(t *testing.T) {
		assert.Equal(t, "", NewRegionSet().String())
	})
}

func TestImageStage(t *testing.T) {
	stagedFile := func(name string) StagedImage {
		return StagedImage{Filename: name, File: strings.NewReader("fake-bytes")}
	}

	t.Run("excess files silently truncated", func(t *testing.T) {
		stage := NewImageStage()
		stage.Add(
			stagedFile("1.png"), stagedFile("2.png"), stagedFile("3.png"),
			stagedFile("4.png"), stagedFile("5.png"), stagedFile("6.png"),
		)

		require.Equal(t, MaxPrizeImages, stage.Len())
		images := stage.Images()
		assert.Equal(t, "1.png", images[0].Filename)
		assert.Equal(t, "4.png", images[3].Filename)
		assert.True(t, stage.Full())
	})

	t.Run("incremental adds respect the cap", func(t *testing.T) {
		stage := NewImageStage()
		stage.Add(stagedFile("a.jpg"), stagedFile("b.jpg"), stagedFile("c.jpg"))
		assert.False(t, stage.Full())

		stage.Add(stagedFile("d.jpg"), stagedFile("e.jpg"))
		assert.Equal(t, MaxPrizeImages, stage.Len())
		assert.Equal(t, "d.jpg", stage.Images()[3].Filename)
	})
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "green", StatusColor(PrizeStatusActive))
	assert.Equal(t, "gray", StatusColor(PrizeStatusInactive))
	assert.Equal(t, "red", StatusColor(PrizeStatusExpired))
	assert.Equal(t, "gray", StatusColor(PrizeStatus("Unknown")))
}
