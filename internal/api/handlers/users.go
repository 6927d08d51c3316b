package handlers

import (
	"net/http"

	"github.com/baharkarakas/fitgroups-api/internal/api/httpx"
	"github.com/baharkarakas/fitgroups-api/internal/api/validate"
	"github.com/baharkarakas/fitgroups-api/internal/auth"
	"github.com/baharkarakas/fitgroups-api/internal/middleware"
	"github.com/baharkarakas/fitgroups-api/internal/models"
	"github.com/baharkarakas/fitgroups-api/internal/services"
)

type UserHandler struct {
	Users  *services.UserService
	Groups *services.GroupService
}

func NewUserHandler(us *services.UserService, gs *services.GroupService) *UserHandler {
	return &UserHandler{Users: us, Groups: gs}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) error {
	users, err := h.Users.List(r.Context())
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, users)
	return nil
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, "id")
	if err != nil {
		return err
	}
	u, err := h.Users.Get(r.Context(), id)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, u)
	return nil
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var in models.UserInput
	if err := validate.Decode(r.Body, &in); err != nil {
		return err
	}
	u, err := h.Users.Register(r.Context(), in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusCreated, u)
	return nil
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, "id")
	if err != nil {
		return err
	}
	var in models.UserInput
	if err := validate.Decode(r.Body, &in); err != nil {
		return err
	}
	u, err := h.Users.Update(r.Context(), id, in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, u)
	return nil
}

func (h *UserHandler) Rename(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, "id")
	if err != nil {
		return err
	}
	var in models.UserNameInput
	if err := validate.Decode(r.Body, &in); err != nil {
		return err
	}
	u, err := h.Users.Rename(r.Context(), id, in.Name)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, u)
	return nil
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	id, err := idParam(r, "id")
	if err != nil {
		return err
	}
	if err := h.Users.Delete(r.Context(), id); err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"mensaje": "Usuario eliminado", "id": id})
	return nil
}

func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) error {
	var in models.LoginInput
	if err := validate.Decode(r.Body, &in); err != nil {
		return err
	}
	res, err := h.Users.Login(r.Context(), in)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, res)
	return nil
}

func (h *UserHandler) WithoutGroup(w http.ResponseWriter, r *http.Request) error {
	users, err := h.Groups.UsersWithoutGroup(r.Context())
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, users)
	return nil
}

// Me returns the account bound to the bearer token; mount behind middleware.Auth.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) error {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		return auth.ErrInvalidToken
	}
	u, err := h.Users.Get(r.Context(), claims.UserID)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, http.StatusOK, u)
	return nil
}
