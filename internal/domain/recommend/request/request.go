package request

import (
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/kailas-cloud/recodex/internal/domain"
	"github.com/kailas-cloud/recodex/internal/domain/recommend/sortby"
)

// DefaultTopN is the result size used when the caller does not pick one.
const DefaultTopN = 15

// Request is a validated recommendation query.
type Request struct {
	city     string
	cuisines []string
	topN     int
	sortBy   sortby.Mode
}

// New validates and normalizes recommendation parameters.
// City and cuisines are trimmed; blank and case-insensitive duplicate cuisines are dropped.
// topN must be positive and is clamped to maxTopN when maxTopN > 0. Empty sort means similarity.
func New(city string, cuisines []string, topN, maxTopN int, order sortby.Mode) (Request, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return Request{}, fmt.Errorf("%w: city is required", domain.ErrInvalidRequest)
	}

	normalized := normalizeCuisines(cuisines)
	if len(normalized) == 0 {
		return Request{}, fmt.Errorf("%w: at least one cuisine is required", domain.ErrInvalidRequest)
	}

	if topN <= 0 {
		return Request{}, fmt.Errorf("%w: top_n must be positive, got %d", domain.ErrInvalidRequest, topN)
	}
	if maxTopN > 0 && topN > maxTopN {
		topN = maxTopN
	}

	if order == "" {
		order = sortby.Similarity
	}
	if !order.IsValid() {
		return Request{}, fmt.Errorf("%w: invalid sort_by %q", domain.ErrInvalidRequest, order)
	}

	return Request{city: city, cuisines: normalized, topN: topN, sortBy: order}, nil
}

// City returns the requested city as given (trimmed).
func (r *Request) City() string { return r.city }

// Cuisines returns the de-duplicated cuisine selection in request order.
func (r *Request) Cuisines() []string { return r.cuisines }

// TopN returns the maximum number of ranked restaurants.
func (r *Request) TopN() int { return r.topN }

// SortBy returns the presentation order.
func (r *Request) SortBy() sortby.Mode { return r.sortBy }

// rankingKey is the canonical form of the ranking inputs.
// Labels may contain separators, e.g. the cuisine "Chinese,North Indian".
type rankingKey struct {
	City     string   `json:"city"`
	Cuisines []string `json:"cuisines"`
	TopN     int      `json:"top_n"`
}

// RankingKey identifies the ranking independent of letter case, cuisine order and presentation order.
func (r *Request) RankingKey() string {
	lowered := make([]string, len(r.cuisines))
	for i, c := range r.cuisines {
		lowered[i] = strings.ToLower(c)
	}
	sort.Strings(lowered)

	// strings and ints always encode
	data, _ := json.Marshal(rankingKey{City: strings.ToLower(r.city), Cuisines: lowered, TopN: r.topN})
	return string(data)
}

func normalizeCuisines(cuisines []string) []string {
	seen := make(map[string]struct{}, len(cuisines))
	out := make([]string, 0, len(cuisines))
	for _, c := range cuisines {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		key := strings.ToLower(c)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}
