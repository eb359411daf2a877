package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllLabels(t *testing.T) {
	records := []IssueRecord{
		{Title: "one", Labels: []string{"b", "a"}},
		{Title: "two", Labels: []string{"b", "c"}},
		{Title: "three"},
	}
	assert.Equal(t, []string{"a", "b", "c"}, AllLabels(records))
}

func TestAllLabels_Empty(t *testing.T) {
	assert.Empty(t, AllLabels(nil))
}

func TestLabelPalette_ColorFor(t *testing.T) {
	p := DefaultLabelPalette()
	assert.Equal(t, "d73a4a", p.ColorFor("bug"))
	assert.Equal(t, "7057ff", p.ColorFor("good first issue"))
	assert.Equal(t, DefaultLabelColor, p.ColorFor("something-else"))

	assert.Equal(t, DefaultLabelColor, LabelPalette{}.ColorFor("x"))
}

func TestLabelPalette_Merge(t *testing.T) {
	base := DefaultLabelPalette()
	merged := base.Merge(LabelPalette{
		Colors:  map[string]string{"bug": "ff0000", "infra": "123456"},
		Default: "cccccc",
	})

	assert.Equal(t, "ff0000", merged.ColorFor("bug"))
	assert.Equal(t, "123456", merged.ColorFor("infra"))
	assert.Equal(t, "1d76db", merged.ColorFor("frontend"))
	assert.Equal(t, "cccccc", merged.ColorFor("unknown"))

	// base is untouched
	assert.Equal(t, "d73a4a", base.ColorFor("bug"))
}

func TestLabelOutcome_String(t *testing.T) {
	assert.Equal(t, "created", LabelCreated.String())
	assert.Equal(t, "already existed", LabelExisted.String())
	assert.Equal(t, "failed", LabelFailed.String())
}
