package handlers

import (
	"net/http"

	"github.com/baharkarakas/fitgroups-api/internal/api/httpx"
	"github.com/baharkarakas/fitgroups-api/internal/api/validate"
	"github.com/baharkarakas/fitgroups-api/internal/models"
	"github.com/baharkarakas/fitgroups-api/internal/services"
)

type RoutineHandler struct {
	Routines *services.RoutineService
}

func NewRoutineHandler(rs *services.RoutineService) *RoutineHandler {
	return &RoutineHandler{Routines: rs}
}

func (h *RoutineHandler) List(w http.ResponseWriter, r *http.Request) error {
	routines, err := h.Routines.List(r.Context())
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, routines)
	return nil
}

func (h *RoutineHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var in models.RoutineInput
	if err := validate.Decode(r.Body, &in); err != nil {
		return err
	}
	rt, err := h.Routines.Create(r.Context(), in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusCreated, rt)
	return nil
}
