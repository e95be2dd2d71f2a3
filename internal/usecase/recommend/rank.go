package recommend

import (
	"sort"
	"strings"

	"github.com/kailas-cloud/recodex/internal/dataset"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/result"
	"github.com/kailas-cloud/recodex/internal/domain/restaurant"
	"github.com/kailas-cloud/recodex/internal/similarity"
)

// Rank scores every restaurant of city by its mean cosine similarity to the
// city's restaurants serving one of cuisines, and returns the topN best.
//
// City and cuisine matching is case-insensitive. Equal scores keep table order.
// Area is projected only when at least one restaurant of the city has a known area.
// An unknown city, no cuisine match, no cuisines or topN <= 0 yield an empty result.
func Rank(t *dataset.Tables, city string, cuisines []string, topN int) result.Result {
	res := result.Empty(city)
	if topN <= 0 || len(cuisines) == 0 {
		return res
	}

	cityRows := t.CityRows(city)
	if len(cityRows) == 0 {
		return res
	}

	wanted := make(map[string]struct{}, len(cuisines))
	for _, c := range cuisines {
		wanted[strings.ToLower(c)] = struct{}{}
	}
	var cuisineRows []int
	for _, i := range cityRows {
		if _, ok := wanted[strings.ToLower(t.Restaurant(i).Cuisine)]; ok {
			cuisineRows = append(cuisineRows, i)
		}
	}
	if len(cuisineRows) == 0 {
		return res
	}

	sim := similarity.CosineMatrix(encodings(t, cuisineRows), encodings(t, cityRows))
	scores := sim.ColumnMeans()

	// order[k] is a position in cityRows
	order := make([]int, len(cityRows))
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	n := min(topN, len(order))
	res.IncludesArea = anyKnownArea(t, cityRows)
	res.Items = make([]result.Item, n)
	for rank, k := range order[:n] {
		res.Items[rank] = toItem(t.Restaurant(cityRows[k]), rank, scores[k], res.IncludesArea)
	}
	return res
}

func encodings(t *dataset.Tables, rows []int) [][]float64 {
	out := make([][]float64, len(rows))
	for k, i := range rows {
		out[k] = t.Encoding(i)
	}
	return out
}

func anyKnownArea(t *dataset.Tables, rows []int) bool {
	for _, i := range rows {
		if t.Restaurant(i).Area != restaurant.UnknownArea {
			return true
		}
	}
	return false
}

func toItem(r *restaurant.Restaurant, rank int, score float64, withArea bool) result.Item {
	item := result.Item{
		Rank:            rank,
		Name:            r.Name,
		Rating:          r.Rating,
		RatingCount:     r.RatingCount,
		Cost:            r.Cost,
		Cuisine:         r.Cuisine,
		SimilarityScore: score,
	}
	if withArea {
		area := r.Area
		item.Area = &area
	}
	return item
}
