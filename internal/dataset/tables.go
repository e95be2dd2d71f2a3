package dataset

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/kailas-cloud/recodex/internal/domain"
	"github.com/kailas-cloud/recodex/internal/domain/restaurant"
)

// Descriptive table column names, matched case-insensitively.
const (
	ColCity        = "City"
	ColCuisine     = "cuisine"
	ColName        = "name"
	ColRating      = "rating"
	ColRatingCount = "rating_count"
	ColCost        = "cost"
	ColArea        = "Area"
)

// Tables is the immutable, row-aligned pair of descriptive and encoding tables.
// Row i of the encoding table belongs to Restaurant(i).
type Tables struct {
	restaurants []restaurant.Restaurant
	encodings   [][]float64
	features    []string
	index       map[string]int
}

// Len returns the number of restaurants.
func (t *Tables) Len() int { return len(t.restaurants) }

// Dim returns the feature-encoding dimension.
func (t *Tables) Dim() int { return len(t.features) }

// Features returns the encoding column names.
func (t *Tables) Features() []string { return t.features }

// Restaurant returns the i-th descriptive row.
func (t *Tables) Restaurant(i int) *restaurant.Restaurant { return &t.restaurants[i] }

// Encoding returns the feature vector of the i-th restaurant. Callers must not modify it.
func (t *Tables) Encoding(i int) []float64 { return t.encodings[i] }

// Index returns the row position of a restaurant identifier.
func (t *Tables) Index(id string) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// CityRows returns row positions of the city's restaurants in table order.
func (t *Tables) CityRows(city string) []int {
	var rows []int
	for i := range t.restaurants {
		if t.restaurants[i].InCity(city) {
			rows = append(rows, i)
		}
	}
	return rows
}

// Cities returns distinct non-empty city names, sorted.
func (t *Tables) Cities() []string {
	seen := make(map[string]struct{})
	var cities []string
	for i := range t.restaurants {
		c := t.restaurants[i].City
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		cities = append(cities, c)
	}
	sort.Strings(cities)
	return cities
}

// Cuisines returns the distinct cuisines of a city in table order.
func (t *Tables) Cuisines(city string) []string {
	seen := make(map[string]struct{})
	cuisines := []string{}
	for _, i := range t.CityRows(city) {
		c := t.restaurants[i].Cuisine
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		cuisines = append(cuisines, c)
	}
	return cuisines
}

// buildTables types both raw tables and aligns encodings to the descriptive row order.
func buildTables(desc, enc *rawTable) (*Tables, error) {
	restaurants, err := parseRestaurants(desc)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(restaurants))
	for i := range restaurants {
		id := restaurants[i].ID
		if _, dup := index[id]; dup {
			return nil, fmt.Errorf("%w: duplicate identifier %q in %s", domain.ErrMisalignedTables, id, desc.path)
		}
		index[id] = i
	}

	if len(enc.ids) != len(restaurants) {
		return nil, fmt.Errorf("%w: %s has %d rows, %s has %d",
			domain.ErrMisalignedTables, desc.path, len(restaurants), enc.path, len(enc.ids))
	}

	encodings := make([][]float64, len(restaurants))
	for r, id := range enc.ids {
		pos, ok := index[id]
		if !ok {
			return nil, fmt.Errorf("%w: identifier %q in %s has no descriptive row",
				domain.ErrMisalignedTables, id, enc.path)
		}
		if encodings[pos] != nil {
			return nil, fmt.Errorf("%w: duplicate identifier %q in %s", domain.ErrMisalignedTables, id, enc.path)
		}
		vec, err := parseVector(enc, r)
		if err != nil {
			return nil, err
		}
		encodings[pos] = vec
	}

	// equal row counts plus no duplicates and no unknown ids means every descriptive id was covered

	return &Tables{
		restaurants: restaurants,
		encodings:   encodings,
		features:    enc.columns,
		index:       index,
	}, nil
}

func parseRestaurants(t *rawTable) ([]restaurant.Restaurant, error) {
	cols := map[string]int{}
	for _, name := range []string{ColCity, ColCuisine, ColName, ColRating, ColRatingCount, ColCost} {
		idx := t.columnIndex(name)
		if idx < 0 {
			return nil, domain.NewTableError(t.path, 1, "missing column %q", name)
		}
		cols[name] = idx
	}
	areaIdx := t.columnIndex(ColArea)

	out := make([]restaurant.Restaurant, len(t.ids))
	for i, row := range t.cells {
		line := t.lines[i]

		rating, err := parseFloat(row[cols[ColRating]])
		if err != nil {
			return nil, domain.NewTableError(t.path, line, "column %q: %v", ColRating, err)
		}
		count, err := parseCount(row[cols[ColRatingCount]])
		if err != nil {
			return nil, domain.NewTableError(t.path, line, "column %q: %v", ColRatingCount, err)
		}
		cost, err := parseFloat(row[cols[ColCost]])
		if err != nil {
			return nil, domain.NewTableError(t.path, line, "column %q: %v", ColCost, err)
		}

		area := restaurant.UnknownArea
		if areaIdx >= 0 {
			area = restaurant.NormalizeArea(row[areaIdx])
		}

		out[i] = restaurant.Restaurant{
			ID:          t.ids[i],
			Name:        strings.TrimSpace(row[cols[ColName]]),
			City:        strings.TrimSpace(row[cols[ColCity]]),
			Cuisine:     strings.TrimSpace(row[cols[ColCuisine]]),
			Rating:      rating,
			RatingCount: count,
			Cost:        cost,
			Area:        area,
		}
	}
	return out, nil
}

func parseVector(t *rawTable, r int) ([]float64, error) {
	row := t.cells[r]
	vec := make([]float64, len(row))
	for j, cell := range row {
		v, err := parseFeature(cell)
		if err != nil {
			return nil, domain.NewTableError(t.path, t.lines[r], "column %q: %v", t.columns[j], err)
		}
		vec[j] = v
	}
	return vec, nil
}

// parseFeature accepts numbers and the True/False literals pandas writes for dummy columns.
func parseFeature(s string) (float64, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "true":
		return 1, nil
	case "false":
		return 0, nil
	}
	return parseFloat(s)
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return v, nil
}

// parseCount accepts "120" and the float form "120.0" pandas emits for nullable integer columns.
func parseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := parseFloat(s)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return int(f), nil
}
