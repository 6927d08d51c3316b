package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/fitgroups-api/internal/api/httpx"
	"github.com/baharkarakas/fitgroups-api/internal/api/validate"
	"github.com/baharkarakas/fitgroups-api/internal/auth"
	"github.com/baharkarakas/fitgroups-api/internal/middleware"
	"github.com/baharkarakas/fitgroups-api/internal/repository"
	"github.com/baharkarakas/fitgroups-api/internal/services"
)

// HandlerFunc is a handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Handle adapts h to net/http and turns returned errors into responses.
func Handle(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			WriteErr(w, r, err)
		}
	}
}

// WriteErr maps known error kinds to status codes. Anything unclassified is
// logged with full detail and answered with a generic 500.
func WriteErr(w http.ResponseWriter, r *http.Request, err error) {
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		msg := "validation failed"
		if len(verrs) > 0 {
			msg = verrs[0].Field + ": " + verrs[0].Msg
		}
		httpx.WriteError(w, http.StatusBadRequest, "validation_failed", msg, verrs)
	case errors.Is(err, repository.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, "not_found", "not found", nil)
	case errors.Is(err, services.ErrInvalidCredentials):
		httpx.WriteError(w, http.StatusUnauthorized, "invalid_credentials", "invalid password", nil)
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrExpiredToken):
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid access token", nil)
	case errors.Is(err, repository.ErrConflict):
		httpx.WriteError(w, http.StatusConflict, "conflict", "email or username already exists", nil)
	case errors.Is(err, repository.ErrInvalidReference):
		httpx.WriteError(w, http.StatusBadRequest, "invalid_reference", "referenced user or group does not exist", nil)
	default:
		slog.Error("request failed",
			"err", err,
			"request_id", middleware.RequestIDFrom(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
		)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeInternal, httpx.MsgInternal, nil)
	}
}

func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, validate.Errs{{Field: name, Msg: "must be a positive integer"}}
	}
	return id, nil
}
