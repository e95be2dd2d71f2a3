package result

import "sort"

// Item is one ranked restaurant, projected to the public column set.
// Area is nil when the city has no area granularity.
type Item struct {
	Rank            int     `json:"rank"`
	Name            string  `json:"name"`
	Rating          float64 `json:"rating"`
	RatingCount     int     `json:"rating_count"`
	Cost            float64 `json:"cost"`
	Cuisine         string  `json:"cuisine"`
	Area            *string `json:"area,omitempty"`
	SimilarityScore float64 `json:"similarity_score"`
}

// Result is an ordered recommendation list for one city.
type Result struct {
	City         string `json:"city"`
	IncludesArea bool   `json:"includes_area"`
	Items        []Item `json:"items"`
}

// Empty returns a result with no items for the given city.
func Empty(city string) Result {
	return Result{City: city, Items: []Item{}}
}

// Len returns the number of ranked items.
func (r Result) Len() int { return len(r.Items) }

// IsEmpty reports whether nothing matched.
func (r Result) IsEmpty() bool { return len(r.Items) == 0 }

// ByRating returns a copy ordered by rating, descending. Equal ratings keep rank order.
// Rank numbers are left untouched so clients can still see the similarity order.
func (r Result) ByRating() Result {
	items := make([]Item, len(r.Items))
	copy(items, r.Items)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Rating > items[j].Rating
	})
	return Result{City: r.City, IncludesArea: r.IncludesArea, Items: items}
}
