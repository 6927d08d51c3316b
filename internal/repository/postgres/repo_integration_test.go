//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/baharkarakas/fitgroups-api/internal/db"
	"github.com/baharkarakas/fitgroups-api/internal/models"
	repo "github.com/baharkarakas/fitgroups-api/internal/repository"
)

func startPostgres(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("fitgroups"),
		postgrescontainer.WithUsername("fitgroups"),
		postgrescontainer.WithPassword("fitgroups"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	connStr, err := pg.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool := waitForDatabase(t, ctx, connStr)
	t.Cleanup(pool.Close)

	require.NoError(t, db.RunMigrations(ctx, pool))
	return pool
}

func waitForDatabase(t *testing.T, ctx context.Context, connStr string) *pgxpool.Pool {
	t.Helper()
	deadline := time.Now().Add(30 * time.Second)
	for {
		pool, err := db.NewPool(ctx, connStr, 4)
		if err == nil {
			return pool
		}
		if time.Now().After(deadline) {
			require.NoError(t, err)
		}
		time.Sleep(time.Second)
	}
}

func newUser(name string) models.User {
	return models.User{
		Name:         name,
		LastName:     "Tester",
		Username:     name,
		Email:        name + "@example.com",
		PasswordHash: "$2a$10$placeholder",
		Role:         models.RoleUser,
	}
}

func TestRepositoriesAgainstPostgres(t *testing.T) {
	ctx := context.Background()
	r := NewRepositories(startPostgres(t))

	ana, err := r.Users.Create(ctx, newUser("ana"))
	require.NoError(t, err)
	require.NotZero(t, ana.ID)

	bob, err := r.Users.Create(ctx, newUser("bob"))
	require.NoError(t, err)

	t.Run("lookup", func(t *testing.T) {
		got, err := r.Users.GetByEmail(ctx, "ana@example.com")
		require.NoError(t, err)
		require.Equal(t, ana.ID, got.ID)
		require.Equal(t, ana.PasswordHash, got.PasswordHash)

		_, err = r.Users.GetByID(ctx, 999999)
		require.ErrorIs(t, err, repo.ErrNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		dup := newUser("other")
		dup.Email = ana.Email
		_, err := r.Users.Create(ctx, dup)
		require.ErrorIs(t, err, repo.ErrConflict)
	})

	t.Run("rename", func(t *testing.T) {
		got, err := r.Users.UpdateName(ctx, bob.ID, "Roberto")
		require.NoError(t, err)
		require.Equal(t, "Roberto", got.Name)
		require.Equal(t, bob.Email, got.Email)
	})

	g, err := r.Groups.Create(ctx, models.Group{Name: "Morning", CreatorID: &ana.ID})
	require.NoError(t, err)

	t.Run("memberships and anti-join", func(t *testing.T) {
		require.NoError(t, r.Groups.AddMember(ctx, models.Membership{GroupID: g.ID, UserID: ana.ID}))
		require.NoError(t, r.Groups.AddMember(ctx, models.Membership{GroupID: g.ID, UserID: ana.ID}))

		members, err := r.Groups.Members(ctx, g.ID)
		require.NoError(t, err)
		require.Len(t, members, 1)

		_, err = r.Groups.Members(ctx, 999999)
		require.ErrorIs(t, err, repo.ErrNotFound)

		lonely, err := r.Groups.UsersWithoutGroup(ctx)
		require.NoError(t, err)
		require.Len(t, lonely, 1)
		require.Equal(t, bob.ID, lonely[0].ID)
	})

	t.Run("unknown references", func(t *testing.T) {
		err := r.Groups.AddMember(ctx, models.Membership{GroupID: g.ID, UserID: 999999})
		require.ErrorIs(t, err, repo.ErrInvalidReference)

		_, err = r.Routines.Create(ctx, models.Routine{
			Name: "Legs", Description: "squats", UserID: ana.ID, GroupID: 999999,
			CreatedAt: time.Now().UTC(),
		})
		require.ErrorIs(t, err, repo.ErrInvalidReference)
	})

	t.Run("routines", func(t *testing.T) {
		video := "https://example.com/v"
		created, err := r.Routines.Create(ctx, models.Routine{
			Name: "Legs", Description: "squats", UserID: ana.ID, GroupID: g.ID,
			CreatedAt: time.Now().UTC(), VideoURL: &video,
		})
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		list, err := r.Routines.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 1)
		require.NotNil(t, list[0].VideoURL)
		require.Equal(t, video, *list[0].VideoURL)
	})

	t.Run("audit log", func(t *testing.T) {
		require.NoError(t, r.AuditLogs.Create(ctx, models.AuditLog{
			EntityType: "user", EntityID: &ana.ID, Action: "user.registered",
		}))
	})

	t.Run("delete cascades", func(t *testing.T) {
		require.NoError(t, r.Users.Delete(ctx, ana.ID))
		require.ErrorIs(t, r.Users.Delete(ctx, ana.ID), repo.ErrNotFound)

		groups, err := r.Groups.List(ctx)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		require.Nil(t, groups[0].CreatorID)

		members, err := r.Groups.Members(ctx, g.ID)
		require.NoError(t, err)
		require.Empty(t, members)

		list, err := r.Routines.List(ctx)
		require.NoError(t, err)
		require.Empty(t, list)
	})
}
