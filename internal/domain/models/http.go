package models

// NewsRequest filters the news listing endpoint.
type NewsRequest struct {
	Category string `query:"category" validate:"omitempty,oneof=AI Layer2 LST Gaming DeFi Solana Stable General"`
	Limit    int    `query:"limit" default:"60" validate:"gte=1,lte=60"`
}

// IdeasRequest filters the trade idea listing endpoint.
type IdeasRequest struct {
	Conviction string `query:"conviction" validate:"omitempty,oneof=High Medium Low"`
}
