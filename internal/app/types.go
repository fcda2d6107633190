package app

// RepositoryMetrics entity. Raw repository numbers taken from upstream.
type RepositoryMetrics struct {
	Owner string
	Name  string
	Stars int
	Forks int
}

// PopularityResult entity. Score computed for a single repository.
type PopularityResult struct {
	Score     int    `json:"score"`
	Owner     string `json:"owner"`
	Name      string `json:"name"`
	IsPopular bool   `json:"is_popular"`
}

// PopularityResultList entity. Items are kept in upstream listing order.
type PopularityResultList struct {
	Items []PopularityResult `json:"items"`
}
