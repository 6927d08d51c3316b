// Package memory keeps the repository contracts in process memory. It mirrors
// the Postgres schema rules: unique email and username, foreign keys on
// memberships and routines, cascading deletes.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/baharkarakas/fitgroups-api/internal/models"
	"github.com/baharkarakas/fitgroups-api/internal/repository"
)

type state struct {
	mu          sync.RWMutex
	seq         int64
	users       map[int64]models.User
	groups      map[int64]models.Group
	memberships []models.Membership
	routines    map[int64]models.Routine
	audit       []models.AuditLog
}

type Store struct{ s *state }

func New() *Store {
	return &Store{s: &state{
		users:    map[int64]models.User{},
		groups:   map[int64]models.Group{},
		routines: map[int64]models.Routine{},
	}}
}

func (st *Store) Users() repository.Users         { return &usersRepo{st.s} }
func (st *Store) Groups() repository.Groups       { return &groupsRepo{st.s} }
func (st *Store) Routines() repository.Routines   { return &routinesRepo{st.s} }
func (st *Store) AuditLogs() repository.AuditLogs { return &auditLogsRepo{st.s} }

// AuditEntries returns a copy of the audit log written so far.
func (st *Store) AuditEntries() []models.AuditLog {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	return append([]models.AuditLog(nil), st.s.audit...)
}

func (s *state) nextID() int64 {
	s.seq++
	return s.seq
}

func sortedUsers(m map[int64]models.User, keep func(models.User) bool) []models.User {
	out := []models.User{}
	for _, u := range m {
		if keep == nil || keep(u) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ---------- users ----------

type usersRepo struct{ s *state }

func (r *usersRepo) uniqueViolation(u models.User) error {
	for _, other := range r.s.users {
		if other.ID == u.ID {
			continue
		}
		if other.Email == u.Email {
			return fmt.Errorf("%w: usuarios_correo_key", repository.ErrConflict)
		}
		if other.Username == u.Username {
			return fmt.Errorf("%w: usuarios_nombre_usuario_key", repository.ErrConflict)
		}
	}
	return nil
}

func (r *usersRepo) Create(_ context.Context, u models.User) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u.ID = 0
	if err := r.uniqueViolation(u); err != nil {
		return models.User{}, err
	}
	u.ID = r.s.nextID()
	r.s.users[u.ID] = u
	return u, nil
}

func (r *usersRepo) GetByID(_ context.Context, id int64) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) GetByEmail(_ context.Context, email string) (models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (r *usersRepo) List(_ context.Context) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return sortedUsers(r.s.users, nil), nil
}

func (r *usersRepo) Update(_ context.Context, u models.User) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return models.User{}, repository.ErrNotFound
	}
	if err := r.uniqueViolation(u); err != nil {
		return models.User{}, err
	}
	r.s.users[u.ID] = u
	return u, nil
}

func (r *usersRepo) UpdateName(_ context.Context, id int64, name string) (models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	u.Name = name
	r.s.users[id] = u
	return u, nil
}

func (r *usersRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.users, id)

	kept := r.s.memberships[:0]
	for _, m := range r.s.memberships {
		if m.UserID != id {
			kept = append(kept, m)
		}
	}
	r.s.memberships = kept
	for gid, g := range r.s.groups {
		if g.CreatorID != nil && *g.CreatorID == id {
			g.CreatorID = nil
			r.s.groups[gid] = g
		}
	}
	for rid, rt := range r.s.routines {
		if rt.UserID == id {
			delete(r.s.routines, rid)
		}
	}
	return nil
}

// ---------- groups ----------

type groupsRepo struct{ s *state }

func (r *groupsRepo) Create(_ context.Context, g models.Group) (models.Group, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if g.CreatorID != nil {
		if _, ok := r.s.users[*g.CreatorID]; !ok {
			return models.Group{}, fmt.Errorf("%w: grupos_creador_id_fkey", repository.ErrInvalidReference)
		}
	}
	g.ID = r.s.nextID()
	r.s.groups[g.ID] = g
	return g, nil
}

func (r *groupsRepo) List(_ context.Context) ([]models.Group, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Group, 0, len(r.s.groups))
	for _, g := range r.s.groups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *groupsRepo) AddMember(_ context.Context, m models.Membership) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.groups[m.GroupID]; !ok {
		return fmt.Errorf("%w: grupo_usuarios_grupo_id_fkey", repository.ErrInvalidReference)
	}
	if _, ok := r.s.users[m.UserID]; !ok {
		return fmt.Errorf("%w: grupo_usuarios_usuario_id_fkey", repository.ErrInvalidReference)
	}
	r.s.memberships = append(r.s.memberships, m)
	return nil
}

func (r *groupsRepo) Members(_ context.Context, groupID int64) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if _, ok := r.s.groups[groupID]; !ok {
		return nil, repository.ErrNotFound
	}
	in := map[int64]struct{}{}
	for _, m := range r.s.memberships {
		if m.GroupID == groupID {
			in[m.UserID] = struct{}{}
		}
	}
	return sortedUsers(r.s.users, func(u models.User) bool {
		_, ok := in[u.ID]
		return ok
	}), nil
}

func (r *groupsRepo) UsersWithoutGroup(_ context.Context) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	grouped := map[int64]struct{}{}
	for _, m := range r.s.memberships {
		grouped[m.UserID] = struct{}{}
	}
	return sortedUsers(r.s.users, func(u models.User) bool {
		_, ok := grouped[u.ID]
		return !ok
	}), nil
}

// ---------- routines ----------

type routinesRepo struct{ s *state }

func (r *routinesRepo) Create(_ context.Context, rt models.Routine) (models.Routine, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[rt.UserID]; !ok {
		return models.Routine{}, fmt.Errorf("%w: rutinas_usuario_id_fkey", repository.ErrInvalidReference)
	}
	if _, ok := r.s.groups[rt.GroupID]; !ok {
		return models.Routine{}, fmt.Errorf("%w: rutinas_grupo_id_fkey", repository.ErrInvalidReference)
	}
	rt.ID = r.s.nextID()
	r.s.routines[rt.ID] = rt
	return rt, nil
}

func (r *routinesRepo) List(_ context.Context) ([]models.Routine, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]models.Routine, 0, len(r.s.routines))
	for _, rt := range r.s.routines {
		out = append(out, rt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ---------- audit ----------

type auditLogsRepo struct{ s *state }

func (r *auditLogsRepo) Create(_ context.Context, l models.AuditLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l.ID = r.s.nextID()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now().UTC()
	}
	r.s.audit = append(r.s.audit, l)
	return nil
}
