package models

// SpinState is a read-only snapshot of the wheel.
type SpinState struct {
	// Rotation is the cumulative rotation of the wheel in degrees.
	// It never decreases, except on explicit reset.
	Rotation float64 `json:"rotation"`

	// IsSpinning is true between spin start and settle.
	IsSpinning bool `json:"isSpinning"`

	// Result is the last settled outcome. Always nil while spinning.
	Result *Outcome `json:"result"`
}
