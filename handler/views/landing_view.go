package views

// Feature product feature blurb
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// PaymentOption payment method blurb
type PaymentOption struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TokenStandard token standard blurb
type TokenStandard struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Landing landing page view
type Landing struct {
	Assets         []*Asset         `json:"assets"`
	TokenStandards []*TokenStandard `json:"token_standards"`
	PaymentOptions []*PaymentOption `json:"payment_options"`
	Features       []*Feature       `json:"features"`
}
