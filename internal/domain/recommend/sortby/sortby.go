package sortby

// Mode is the presentation order of a recommendation list.
type Mode string

const (
	// Similarity keeps the ranking order (mean similarity, descending).
	Similarity Mode = "similarity"
	// Rating re-sorts the ranked list by rating, descending.
	Rating Mode = "rating"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == Similarity || m == Rating
}
