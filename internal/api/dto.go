package api

import (
	"github.com/petuhovskiy/prize-wheel/internal/models"
	"github.com/petuhovskiy/prize-wheel/internal/wheel"
)

// StateResponse is the wheel snapshot with the flags a client needs
// to enable or disable its controls.
type StateResponse struct {
	models.SpinState
	CanSpin   bool `json:"canSpin"`
	CanEdit   bool `json:"canEdit"`
	ItemCount int  `json:"itemCount"`
}

type SpinResponse struct {
	StateResponse
	SpinID         uint64  `json:"spinId"`
	TargetRotation float64 `json:"targetRotation"`
	DurationMs     int64   `json:"durationMs"`
}

type AddItemRequest struct {
	Label string `json:"label"`
}

type ErrorResponse struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

const (
	ErrTypeValidation = "validation_error"
	ErrTypeSpinning   = "spinning"
	ErrTypeRefused    = "refused"
	ErrTypeNotFound   = "not_found"
)

func toStateResponse(s *wheel.Session) StateResponse {
	return StateResponse{
		SpinState: s.State(),
		CanSpin:   s.CanSpin(),
		CanEdit:   s.CanEdit(),
		ItemCount: len(s.Items()),
	}
}
