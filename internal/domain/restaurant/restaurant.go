package restaurant

import "strings"

// UnknownArea marks a restaurant whose city has no area granularity.
const UnknownArea = "Unknown"

// Restaurant is one row of the descriptive table.
type Restaurant struct {
	ID          string
	Name        string
	City        string
	Cuisine     string
	Rating      float64
	RatingCount int
	Cost        float64
	Area        string
}

// HasArea reports whether the row carries a real area value.
func (r *Restaurant) HasArea() bool {
	return r.Area != "" && r.Area != UnknownArea
}

// InCity matches the city by lowercase equality, the same rule cuisines use.
func (r *Restaurant) InCity(city string) bool {
	return strings.ToLower(r.City) == strings.ToLower(city)
}

// NormalizeArea maps a blank area to UnknownArea.
func NormalizeArea(area string) string {
	area = strings.TrimSpace(area)
	if area == "" {
		return UnknownArea
	}
	return area
}
