package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, toStateResponse(s.session))
}

func (s *Server) handleSpin(w http.ResponseWriter, r *http.Request) {
	spin, ok := s.session.Spin(r.Context())
	if !ok {
		writeError(w, http.StatusConflict, ErrTypeRefused, "spin refused: already spinning or not enough items")
		return
	}

	writeJSON(w, http.StatusAccepted, SpinResponse{
		StateResponse:  toStateResponse(s.session),
		SpinID:         spin.ID,
		TargetRotation: spin.Rotation,
		DurationMs:     spin.Duration.Milliseconds(),
	})
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	if !s.session.Reset() {
		writeError(w, http.StatusConflict, ErrTypeSpinning, "can't reset while spinning")
		return
	}
	writeJSON(w, http.StatusOK, toStateResponse(s.session))
}

func (s *Server) handleListItems(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Items())
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, ErrTypeValidation, "invalid JSON body")
		return
	}

	item, ok := s.session.AddItem(r.Context(), req.Label)
	if !ok {
		writeError(w, http.StatusBadRequest, ErrTypeValidation, "label must not be blank")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	if !s.session.CanEdit() {
		writeError(w, http.StatusConflict, ErrTypeSpinning, "can't edit items while spinning")
		return
	}

	id := chi.URLParam(r, "id")
	if !s.session.RemoveItem(r.Context(), id) {
		writeError(w, http.StatusNotFound, ErrTypeNotFound, "item not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleClearItems(w http.ResponseWriter, r *http.Request) {
	if !s.session.ClearItems(r.Context()) {
		writeError(w, http.StatusConflict, ErrTypeSpinning, "can't edit items while spinning")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.session.History())
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request) {
	s.session.ClearHistory(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
