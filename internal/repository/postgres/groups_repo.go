package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/fitgroups-api/internal/models"
	"github.com/baharkarakas/fitgroups-api/internal/repository"
)

type groupsRepo struct{ pool *pgxpool.Pool }

func (r *groupsRepo) Create(ctx context.Context, g models.Group) (models.Group, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO grupos(nombre, creador_id) VALUES($1,$2) RETURNING id, nombre, creador_id`,
		g.Name, g.CreatorID,
	).Scan(&g.ID, &g.Name, &g.CreatorID)
	return g, mapError(err)
}

func (r *groupsRepo) List(ctx context.Context) ([]models.Group, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, nombre, creador_id FROM grupos ORDER BY id`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := []models.Group{}
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatorID); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *groupsRepo) AddMember(ctx context.Context, m models.Membership) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO grupo_usuarios(grupo_id, usuario_id) VALUES($1,$2)`,
		m.GroupID, m.UserID,
	)
	return mapError(err)
}

// Members lists the distinct users of a group; an unknown group is ErrNotFound.
func (r *groupsRepo) Members(ctx context.Context, groupID int64) ([]models.User, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM grupos WHERE id=$1)`, groupID).Scan(&exists); err != nil {
		return nil, mapError(err)
	}
	if !exists {
		return nil, repository.ErrNotFound
	}
	users, err := collectUsers(r.pool.Query(ctx,
		`SELECT `+userColumns+`
		   FROM usuarios u
		  WHERE EXISTS (SELECT 1 FROM grupo_usuarios gu WHERE gu.usuario_id = u.id AND gu.grupo_id = $1)
		  ORDER BY id`,
		groupID,
	))
	return users, mapError(err)
}

func (r *groupsRepo) UsersWithoutGroup(ctx context.Context) ([]models.User, error) {
	users, err := collectUsers(r.pool.Query(ctx,
		`SELECT `+userColumns+`
		   FROM usuarios u
		  WHERE NOT EXISTS (SELECT 1 FROM grupo_usuarios gu WHERE gu.usuario_id = u.id)
		  ORDER BY id`,
	))
	return users, mapError(err)
}
