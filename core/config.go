package core

// Config oasis config
type Config struct {
	Browse   Browse   `json:"browse"`
	Checkout Checkout `json:"checkout"`
	Session  Session  `json:"session"`
}

// Browse browse & select config
type Browse struct {
	// MaxSelection upper bound on ids accepted from a selection token
	MaxSelection int `json:"max_selection"`
}

// Checkout purchase summary config
type Checkout struct {
	// StrictQuantity surface sub-floor quantity edits as errors
	// instead of silently keeping the previous quantity
	StrictQuantity bool `json:"strict_quantity"`
}

// Session session store config
type Session struct {
	// Capacity max live sessions per kind
	Capacity int `json:"capacity"`
	// Expire session ttl in seconds
	Expire int64 `json:"expire"`
}
