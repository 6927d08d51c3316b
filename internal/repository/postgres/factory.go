package postgres

import (
	repo "github.com/baharkarakas/fitgroups-api/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Users     repo.Users
	Groups    repo.Groups
	Routines  repo.Routines
	AuditLogs repo.AuditLogs
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Users:     &usersRepo{pool},
		Groups:    &groupsRepo{pool},
		Routines:  &routinesRepo{pool},
		AuditLogs: &auditLogsRepo{pool},
	}
}
