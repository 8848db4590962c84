package models

// PaymentIntentRequest asks for a payment intent in the smallest currency unit.
type PaymentIntentRequest struct {
	Amount   int64  `json:"amount"` // cents
	Currency string `json:"currency"`
}

// PaymentIntentResponse carries the client secret the browser confirms with.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
