package models

// GeneratePayoutsRequest triggers payout generation for a month
type GeneratePayoutsRequest struct {
	Month           string `json:"month" validate:"required"`
	ForceRegenerate bool   `json:"forceRegenerate"`
}

// DisbursePayoutsRequest triggers disbursement of pending payouts for a month
type DisbursePayoutsRequest struct {
	Month  string `json:"month" validate:"required"`
	DryRun bool   `json:"dryRun"`
}

// RetryPayoutsRequest triggers a retry sweep over still-pending payouts
type RetryPayoutsRequest struct {
	MaxRetries int    `json:"maxRetries" validate:"omitempty,min=1,max=10"`
	Month      string `json:"month" validate:"omitempty"`
}

// PayoutResult is the per-producer outcome of a generate/disburse/retry run
type PayoutResult struct {
	PayoutID      int     `json:"payout_id,omitempty"`
	ProducerID    int     `json:"producer_id"`
	ProducerName  string  `json:"producer_name,omitempty"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	WalletAddress string  `json:"wallet_address,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
	Error         string  `json:"error,omitempty"`
}

// GenerateSummary aggregates a generation run
type GenerateSummary struct {
	TotalProducers   int `json:"totalProducers"`
	PayoutsGenerated int `json:"payoutsGenerated"`
	Skipped          int `json:"skipped"`
}

// DisburseSummary aggregates a disbursement or retry run
type DisburseSummary struct {
	Total      int `json:"total"`
	Successful int `json:"successful"`
	Failed     int `json:"failed"`
	Skipped    int `json:"skipped"`
}

// GeneratePayoutsResponse is the generation run response
type GeneratePayoutsResponse struct {
	Success bool            `json:"success"`
	Month   string          `json:"month"`
	Message string          `json:"message,omitempty"`
	Summary GenerateSummary `json:"summary"`
	Results []PayoutResult  `json:"results"`
}

// DisbursePayoutsResponse is the disbursement run response
type DisbursePayoutsResponse struct {
	Success bool            `json:"success"`
	DryRun  bool            `json:"dryRun"`
	Month   string          `json:"month"`
	Message string          `json:"message,omitempty"`
	Summary DisburseSummary `json:"summary"`
	Results []PayoutResult  `json:"results"`
}

// RetryPayoutsResponse is the retry sweep response
type RetryPayoutsResponse struct {
	Success bool            `json:"success"`
	Summary DisburseSummary `json:"summary"`
	Results []PayoutResult  `json:"results"`
}

// CompensationSettingsRequest updates the singleton compensation rates
type CompensationSettingsRequest struct {
	StandardRate         float64 `json:"standard_rate" validate:"min=0,max=1"`
	ExclusiveRate        float64 `json:"exclusive_rate" validate:"min=0,max=1"`
	SyncFeeRate          float64 `json:"sync_fee_rate" validate:"min=0,max=1"`
	VolumeBonusRate      float64 `json:"volume_bonus_rate" validate:"min=0,max=1"`
	VolumeBonusThreshold int     `json:"volume_bonus_threshold" validate:"min=0"`
}

// CompensationSettingsResponse mirrors the stored singleton
type CompensationSettingsResponse struct {
	StandardRate         float64 `json:"standard_rate"`
	ExclusiveRate        float64 `json:"exclusive_rate"`
	SyncFeeRate          float64 `json:"sync_fee_rate"`
	VolumeBonusRate      float64 `json:"volume_bonus_rate"`
	VolumeBonusThreshold int     `json:"volume_bonus_threshold"`
}
