package response_models

// Activity is a catalog entry as served by the trip API.
type Activity struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Title     string  `json:"title"`
	ImageURL  string  `json:"imageurl"`
	CountryID int64   `json:"countryid"`
	Address   string  `json:"address"`
	Price     float64 `json:"price"`
}

// Destination is a country a trip can be planned for.
type Destination struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
