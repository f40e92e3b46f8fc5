package response

// Checkout carries the payment intent client secret back to the caller.
type Checkout struct {
	ClientSecret string `json:"client_secret"`
}
