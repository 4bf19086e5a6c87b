package catalog

// Store is a storefront listing a game, with its price there.
// Price is a string to avoid rounding errors (NUMERIC convention).
type Store struct {
	Name  string `json:"name"  example:"Steam"`
	URL   string `json:"url,omitempty"`
	Price string `json:"price" example:"59.99"`
}

// Game is an immutable catalog record.
// swagger:model
type Game struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Genres      []string `json:"genres,omitempty"`
	Platforms   []string `json:"platforms,omitempty"`
	ReleaseDate string   `json:"release_date,omitempty"`
	Developer   string   `json:"developer,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	Description string   `json:"description,omitempty"`
	Stores      []Store  `json:"stores"`
}
