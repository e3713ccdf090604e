package models

// CheckoutRequest creates a Stripe checkout session for a track license
type CheckoutRequest struct {
	TrackID     int    `json:"track_id" validate:"required,min=1"`
	LicenseType string `json:"license_type" validate:"required,oneof=standard exclusive"`
}

// CheckoutResponse contains the Stripe checkout session URL
type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	CheckoutURL string `json:"checkout_url"`
}

// CreateTrackRequest creates a track in the catalog
type CreateTrackRequest struct {
	Title          string  `json:"title" validate:"required,min=1"`
	Genre          string  `json:"genre" validate:"omitempty"`
	BPM            int     `json:"bpm" validate:"omitempty,min=40,max=300"`
	StandardPrice  float64 `json:"standard_price" validate:"omitempty,min=0"`
	ExclusivePrice float64 `json:"exclusive_price" validate:"omitempty,min=0"`
}

// TrackInfo represents a track in API responses
type TrackInfo struct {
	ID             int     `json:"id"`
	ProducerID     int     `json:"producer_id"`
	ProducerName   string  `json:"producer_name,omitempty"`
	Title          string  `json:"title"`
	Genre          string  `json:"genre,omitempty"`
	BPM            int     `json:"bpm,omitempty"`
	StandardPrice  float64 `json:"standard_price"`
	ExclusivePrice float64 `json:"exclusive_price"`
	Status         string  `json:"status"`
}

// TrackListResponse is a paginated catalog listing
type TrackListResponse struct {
	Tracks []TrackInfo `json:"tracks"`
	Total  int         `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// TrackFilters narrows catalog listings
type TrackFilters struct {
	Genre  string `query:"genre"`
	Search string `query:"search"`
	MinBPM int    `query:"min_bpm"`
	MaxBPM int    `query:"max_bpm"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}
