package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/baharkarakas/fitgroups-api/internal/models"
	"github.com/baharkarakas/fitgroups-api/internal/repository"
)

type usersRepo struct{ pool *pgxpool.Pool }

const userColumns = `id, nombre, apellido, nombre_usuario, correo, contrasena, rol`

func scanUser(row pgx.Row) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.LastName, &u.Username, &u.Email, &u.PasswordHash, &u.Role)
	return u, err
}

func collectUsers(rows pgx.Rows, err error) ([]models.User, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *usersRepo) Create(ctx context.Context, u models.User) (models.User, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO usuarios(nombre, apellido, nombre_usuario, correo, contrasena, rol)
		 VALUES($1,$2,$3,$4,$5,$6)
		 RETURNING `+userColumns,
		u.Name, u.LastName, u.Username, u.Email, u.PasswordHash, u.Role,
	)
	created, err := scanUser(row)
	return created, mapError(err)
}

func (r *usersRepo) GetByID(ctx context.Context, id int64) (models.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM usuarios WHERE id=$1`, id))
	return u, mapError(err)
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM usuarios WHERE correo=$1`, email))
	return u, mapError(err)
}

func (r *usersRepo) List(ctx context.Context) ([]models.User, error) {
	users, err := collectUsers(r.pool.Query(ctx, `SELECT `+userColumns+` FROM usuarios ORDER BY id`))
	return users, mapError(err)
}

func (r *usersRepo) Update(ctx context.Context, u models.User) (models.User, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE usuarios
		    SET nombre=$2, apellido=$3, nombre_usuario=$4, correo=$5, contrasena=$6, rol=$7, actualizado_en=now()
		  WHERE id=$1
		  RETURNING `+userColumns,
		u.ID, u.Name, u.LastName, u.Username, u.Email, u.PasswordHash, u.Role,
	)
	updated, err := scanUser(row)
	return updated, mapError(err)
}

func (r *usersRepo) UpdateName(ctx context.Context, id int64, name string) (models.User, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE usuarios SET nombre=$2, actualizado_en=now() WHERE id=$1 RETURNING `+userColumns,
		id, name,
	)
	updated, err := scanUser(row)
	return updated, mapError(err)
}

func (r *usersRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM usuarios WHERE id=$1`, id)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
