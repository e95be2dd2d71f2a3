package recodex

import "github.com/kailas-cloud/recodex/internal/domain/recommend/result"

// SortBy is the presentation order of recommendations.
type SortBy string

// Sort order constants.
const (
	SortBySimilarity SortBy = "similarity"
	SortByRating     SortBy = "rating"
)

// Recommendation is one ranked restaurant.
type Recommendation struct {
	Rank        int
	Name        string
	Rating      float64
	RatingCount int
	Cost        float64
	Cuisine     string
	Area        string // empty when the city has no area data
	Score       float64
}

// Recommendations is a ranked list for one city.
type Recommendations struct {
	City         string
	IncludesArea bool
	Items        []Recommendation
}

// Empty reports whether nothing matched.
func (r Recommendations) Empty() bool { return len(r.Items) == 0 }

func fromResult(res result.Result) Recommendations {
	items := make([]Recommendation, len(res.Items))
	for i, it := range res.Items {
		items[i] = Recommendation{
			Rank:        it.Rank,
			Name:        it.Name,
			Rating:      it.Rating,
			RatingCount: it.RatingCount,
			Cost:        it.Cost,
			Cuisine:     it.Cuisine,
			Score:       it.SimilarityScore,
		}
		if it.Area != nil {
			items[i].Area = *it.Area
		}
	}
	return Recommendations{City: res.City, IncludesArea: res.IncludesArea, Items: items}
}
