package openfoodfacts

// apiProduct represents a single product from the Open Food Facts search
// response. Only the fields the catalog search consumes are mapped.
type apiProduct struct {
	ProductName string         `json:"product_name"`
	Brands      string         `json:"brands"`
	ImageURL    string         `json:"image_front_small_url"`
	Nutriments  map[string]any `json:"nutriments"`
}

type searchResponse struct {
	Products []apiProduct `json:"products"`
}
