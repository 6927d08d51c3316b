package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/fitgroups-api/internal/models"
)

type routinesRepo struct{ pool *pgxpool.Pool }

const routineColumns = `id, nombre, descripcion, usuario_id, grupo_id, creado_en, video_url`

func (r *routinesRepo) Create(ctx context.Context, rt models.Routine) (models.Routine, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO rutinas(nombre, descripcion, usuario_id, grupo_id, creado_en, video_url)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING `+routineColumns,
		rt.Name, rt.Description, rt.UserID, rt.GroupID, rt.CreatedAt, rt.VideoURL,
	).Scan(&rt.ID, &rt.Name, &rt.Description, &rt.UserID, &rt.GroupID, &rt.CreatedAt, &rt.VideoURL)
	return rt, mapError(err)
}

func (r *routinesRepo) List(ctx context.Context) ([]models.Routine, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+routineColumns+` FROM rutinas ORDER BY id`)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	out := []models.Routine{}
	for rows.Next() {
		var rt models.Routine
		if err := rows.Scan(&rt.ID, &rt.Name, &rt.Description, &rt.UserID, &rt.GroupID, &rt.CreatedAt, &rt.VideoURL); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}
