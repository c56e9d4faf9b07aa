// Package moodmap serves the static geography of the mood map: weather-like
// mood zones, quiet shelters, and sunshine moments. The client renders these
// on a map; the server only hands out the data.
package moodmap

// Point is [latitude, longitude], matching the client's tuple order.
type Point [2]float64

type Zone struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Mood        string  `json:"mood"`
	Center      Point   `json:"center"`
	Radius      float64 `json:"radius"`
	Color       string  `json:"color"`
}

type Shelter struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Center Point  `json:"center"`
}

type Sunshine struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Center Point  `json:"center"`
}

type Map struct {
	Zones    []Zone     `json:"zones"`
	Shelters []Shelter  `json:"shelters"`
	Sunshine []Sunshine `json:"sunshine"`
}

var zones = []Zone{
	{ID: "harbor", Name: "Harbor District", Description: "Calm tides and steady energy.", Mood: "Calm", Center: Point{37.77, -122.42}, Radius: 26000, Color: "#60a5fa"},
	{ID: "ridge", Name: "Sunrise Ridge", Description: "Bright momentum and hope.", Mood: "Hopeful", Center: Point{34.05, -118.25}, Radius: 34000, Color: "#fbbf24"},
	{ID: "midtown", Name: "Midtown Loop", Description: "Neutral skies with steady movement.", Mood: "Balanced", Center: Point{41.88, -87.62}, Radius: 30000, Color: "#94a3b8"},
	{ID: "stormline", Name: "Stormline", Description: "Emotional storms moving through.", Mood: "Storm", Center: Point{40.71, -74.0}, Radius: 42000, Color: "#f87171"},
}

var shelters = []Shelter{
	{ID: "shelter-north", Name: "North Shelter", Center: Point{47.61, -122.33}},
	{ID: "shelter-central", Name: "Central Shelter", Center: Point{39.95, -75.17}},
	{ID: "shelter-south", Name: "South Shelter", Center: Point{29.76, -95.36}},
}

var sunshine = []Sunshine{
	{ID: "sun-1", Label: "Sunshine moment", Center: Point{36.16, -115.15}},
	{ID: "sun-2", Label: "Sunshine moment", Center: Point{44.98, -93.27}},
	{ID: "sun-3", Label: "Sunshine moment", Center: Point{33.45, -112.07}},
}

// Current returns the full map payload.
func Current() Map {
	return Map{
		Zones:    append([]Zone(nil), zones...),
		Shelters: append([]Shelter(nil), shelters...),
		Sunshine: append([]Sunshine(nil), sunshine...),
	}
}
