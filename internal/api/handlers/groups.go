package handlers

import (
	"net/http"

	"github.com/baharkarakas/fitgroups-api/internal/api/httpx"
	"github.com/baharkarakas/fitgroups-api/internal/api/validate"
	"github.com/baharkarakas/fitgroups-api/internal/models"
	"github.com/baharkarakas/fitgroups-api/internal/services"
)

type GroupHandler struct {
	Groups *services.GroupService
}

func NewGroupHandler(gs *services.GroupService) *GroupHandler { return &GroupHandler{Groups: gs} }

func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var in models.GroupInput
	if err := validate.Decode(r.Body, &in); err != nil {
		return err
	}
	g, err := h.Groups.Create(r.Context(), in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusCreated, g)
	return nil
}

func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) error {
	groups, err := h.Groups.List(r.Context())
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, groups)
	return nil
}

func (h *GroupHandler) AddMember(w http.ResponseWriter, r *http.Request) error {
	groupID, err := idParam(r, "groupId")
	if err != nil {
		return err
	}
	var in models.MembershipInput
	if err := validate.Decode(r.Body, &in); err != nil {
		return err
	}
	m, err := h.Groups.AddMember(r.Context(), groupID, in.UserID)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"mensaje":    "Usuario añadido al grupo",
		"grupo_id":   m.GroupID,
		"usuario_id": m.UserID,
	})
	return nil
}

func (h *GroupHandler) Members(w http.ResponseWriter, r *http.Request) error {
	groupID, err := idParam(r, "groupId")
	if err != nil {
		return err
	}
	users, err := h.Groups.Members(r.Context(), groupID)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, users)
	return nil
}

func (h *GroupHandler) WithoutGroup(w http.ResponseWriter, r *http.Request) error {
	users, err := h.Groups.UsersWithoutGroup(r.Context())
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, users)
	return nil
}
