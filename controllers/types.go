package controllers

// createProductResponse is the success payload of POST /products. Message is
// a translation catalog identifier, resolved client-side.
type createProductResponse struct {
	ID      string `json:"id"`
	Slug    string `json:"slug"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
