package search

type Config struct {
	// NameMatchThreshold is the minimum normalized similarity (in 0..1)
	// a business name needs against the query to count as a match.
	// Zero means DefaultNameMatchThreshold.
	NameMatchThreshold float64
}
