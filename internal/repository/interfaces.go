package repository

import (
	"context"

	"github.com/baharkarakas/fitgroups-api/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id int64) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u models.User) (models.User, error)
	UpdateName(ctx context.Context, id int64, name string) (models.User, error)
	Delete(ctx context.Context, id int64) error
}

type Groups interface {
	Create(ctx context.Context, g models.Group) (models.Group, error)
	List(ctx context.Context) ([]models.Group, error)
	AddMember(ctx context.Context, m models.Membership) error
	// Members returns ErrNotFound when the group does not exist.
	Members(ctx context.Context, groupID int64) ([]models.User, error)
	// UsersWithoutGroup returns every user that has no membership row.
	UsersWithoutGroup(ctx context.Context) ([]models.User, error)
}

type Routines interface {
	Create(ctx context.Context, r models.Routine) (models.Routine, error)
	List(ctx context.Context) ([]models.Routine, error)
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}
