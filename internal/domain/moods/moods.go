// Package moods holds the fixed catalog of community moods. The catalog is
// code, not data: the UI ties animation and styling to these five IDs.
package moods

type Mood struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Emoji     string `json:"emoji"`
	Color     string `json:"color"`
	GlowClass string `json:"glowClass"`
	PulseType string `json:"pulseType"`
}

var catalog = []Mood{
	{ID: "cozy", Label: "Cozy", Emoji: "🕯️", Color: "#f59e0b", GlowClass: "glow-cozy", PulseType: "slow"},
	{ID: "anxious", Label: "Anxious", Emoji: "🌊", Color: "#3b82f6", GlowClass: "glow-anxious", PulseType: "fast"},
	{ID: "focused", Label: "Focused", Emoji: "🔮", Color: "#8b5cf6", GlowClass: "glow-focused", PulseType: "steady"},
	{ID: "low-energy", Label: "Low Energy", Emoji: "🌫️", Color: "#6b7280", GlowClass: "glow-low-energy", PulseType: "gentle"},
	{ID: "social", Label: "Social", Emoji: "🌿", Color: "#10b981", GlowClass: "glow-social", PulseType: "medium"},
}

// Catalog returns the full mood list in display order.
func Catalog() []Mood {
	out := make([]Mood, len(catalog))
	copy(out, catalog)
	return out
}

// ByID looks up a mood by its identifier.
func ByID(id string) (Mood, bool) {
	for _, mood := range catalog {
		if mood.ID == id {
			return mood, true
		}
	}
	return Mood{}, false
}
