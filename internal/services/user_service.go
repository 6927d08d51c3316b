package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baharkarakas/fitgroups-api/internal/auth"
	"github.com/baharkarakas/fitgroups-api/internal/events"
	"github.com/baharkarakas/fitgroups-api/internal/metrics"
	"github.com/baharkarakas/fitgroups-api/internal/models"
	repo "github.com/baharkarakas/fitgroups-api/internal/repository"
)

// ErrInvalidCredentials is returned by Login when the password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

type UserService struct {
	r      repo.Users
	tm     *auth.TokenManager
	events events.Emitter
}

func NewUserService(r repo.Users, tm *auth.TokenManager, ev events.Emitter) *UserService {
	return &UserService{r: r, tm: tm, events: ev}
}

type LoginResult struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      models.User `json:"user"`
}

func (s *UserService) Register(ctx context.Context, in models.UserInput) (models.User, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	u, err := s.r.Create(ctx, models.User{
		Name:         in.Name,
		LastName:     in.LastName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	metrics.UsersRegistered.Inc()
	s.events.Emit(events.New(events.UserRegistered, "user", u.ID, map[string]any{"rol": string(u.Role)}))
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (models.User, error) {
	u, err := s.r.GetByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) { return s.r.List(ctx) }

// Update replaces every column of the user, re-hashing the supplied password.
func (s *UserService) Update(ctx context.Context, id int64, in models.UserInput) (models.User, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	u, err := s.r.Update(ctx, models.User{
		ID:           id,
		Name:         in.Name,
		LastName:     in.LastName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         in.Role,
	})
	if err != nil {
		return models.User{}, fmt.Errorf("update user %d: %w", id, err)
	}
	s.events.Emit(events.New(events.UserUpdated, "user", id, nil))
	return u, nil
}

func (s *UserService) Rename(ctx context.Context, id int64, name string) (models.User, error) {
	u, err := s.r.UpdateName(ctx, id, name)
	if err != nil {
		return models.User{}, fmt.Errorf("rename user %d: %w", id, err)
	}
	s.events.Emit(events.New(events.UserUpdated, "user", id, map[string]any{"nombre": name}))
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.r.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	s.events.Emit(events.New(events.UserDeleted, "user", id, nil))
	return nil
}

// Login looks the account up by email, checks the password and issues a token.
// An unknown email yields repository.ErrNotFound, a wrong password ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, in models.LoginInput) (LoginResult, error) {
	u, err := s.r.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			metrics.LoginAttempts.WithLabelValues("not_found").Inc()
		} else {
			metrics.LoginAttempts.WithLabelValues("error").Inc()
		}
		return LoginResult{}, fmt.Errorf("login lookup: %w", err)
	}
	if err := auth.VerifyPassword(in.Password, u.PasswordHash); err != nil {
		metrics.LoginAttempts.WithLabelValues("wrong_password").Inc()
		return LoginResult{}, ErrInvalidCredentials
	}
	token, exp, err := s.tm.Issue(u)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("error").Inc()
		return LoginResult{}, err
	}
	metrics.LoginAttempts.WithLabelValues("success").Inc()
	return LoginResult{Token: token, ExpiresAt: exp, User: u}, nil
}
