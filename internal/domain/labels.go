package domain

import (
	"maps"
	"slices"
)

// DefaultLabelColor is used for labels missing from the palette.
const DefaultLabelColor = "ededed"

// LabelPalette maps label names to display colors (6 hex digits, no '#').
type LabelPalette struct {
	Colors  map[string]string
	Default string
}

// DefaultLabelPalette returns the colors of the well-known labels.
func DefaultLabelPalette() LabelPalette {
	return LabelPalette{
		Colors: map[string]string{
			"frontend":         "1d76db",
			"backend":          "0e8a16",
			"enhancement":      "a2eeef",
			"good first issue": "7057ff",
			"easy":             "c5def5",
			"medium":           "fbca04",
			"hard":             "d93f0b",
			"bug":              "d73a4a",
			"documentation":    "0075ca",
		},
		Default: DefaultLabelColor,
	}
}

// ColorFor returns the color for a label, falling back to the palette default.
func (p LabelPalette) ColorFor(label string) string {
	if c, ok := p.Colors[label]; ok && c != "" {
		return c
	}
	if p.Default != "" {
		return p.Default
	}
	return DefaultLabelColor
}

// Merge returns a copy of p with the colors of other layered on top.
func (p LabelPalette) Merge(other LabelPalette) LabelPalette {
	merged := LabelPalette{
		Colors:  maps.Clone(p.Colors),
		Default: p.Default,
	}
	if merged.Colors == nil {
		merged.Colors = make(map[string]string)
	}
	maps.Copy(merged.Colors, other.Colors)
	if other.Default != "" {
		merged.Default = other.Default
	}
	return merged
}

// AllLabels returns the sorted, deduplicated union of labels across records.
func AllLabels(records []IssueRecord) []string {
	var labels []string
	for _, r := range records {
		labels = append(labels, r.Labels...)
	}
	slices.Sort(labels)
	return slices.Compact(labels)
}

// LabelOutcome is the result of provisioning one label.
type LabelOutcome int

// Label outcomes.
const (
	LabelCreated LabelOutcome = iota
	LabelExisted
	LabelFailed
)

// String returns the display name of the outcome.
func (o LabelOutcome) String() string {
	switch o {
	case LabelCreated:
		return "created"
	case LabelExisted:
		return "already existed"
	case LabelFailed:
		return "failed"
	default:
		return "unknown"
	}
}
