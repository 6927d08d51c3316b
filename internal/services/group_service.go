package services

import (
	"context"
	"fmt"

	"github.com/baharkarakas/fitgroups-api/internal/events"
	"github.com/baharkarakas/fitgroups-api/internal/models"
	repo "github.com/baharkarakas/fitgroups-api/internal/repository"
)

type GroupService struct {
	r      repo.Groups
	events events.Emitter
}

func NewGroupService(r repo.Groups, ev events.Emitter) *GroupService {
	return &GroupService{r: r, events: ev}
}

func (s *GroupService) Create(ctx context.Context, in models.GroupInput) (models.Group, error) {
	creator := in.CreatorID
	g, err := s.r.Create(ctx, models.Group{Name: in.Name, CreatorID: &creator})
	if err != nil {
		return models.Group{}, fmt.Errorf("create group: %w", err)
	}
	s.events.Emit(events.New(events.GroupCreated, "group", g.ID, map[string]any{"creador_id": creator}))
	return g, nil
}

func (s *GroupService) List(ctx context.Context) ([]models.Group, error) { return s.r.List(ctx) }

// AddMember appends a membership row; the same pair may be added twice.
func (s *GroupService) AddMember(ctx context.Context, groupID, userID int64) (models.Membership, error) {
	m := models.Membership{GroupID: groupID, UserID: userID}
	if err := s.r.AddMember(ctx, m); err != nil {
		return models.Membership{}, fmt.Errorf("add user %d to group %d: %w", userID, groupID, err)
	}
	s.events.Emit(events.New(events.GroupMemberAdded, "group", groupID, map[string]any{"usuario_id": userID}))
	return m, nil
}

func (s *GroupService) Members(ctx context.Context, groupID int64) ([]models.User, error) {
	users, err := s.r.Members(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("members of group %d: %w", groupID, err)
	}
	return users, nil
}

// UsersWithoutGroup backs both /api/users/no-group and /api/groups/no-group.
func (s *GroupService) UsersWithoutGroup(ctx context.Context) ([]models.User, error) {
	return s.r.UsersWithoutGroup(ctx)
}
