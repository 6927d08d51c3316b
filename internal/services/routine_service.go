package services

import (
	"context"
	"fmt"
	"time"

	"github.com/baharkarakas/fitgroups-api/internal/events"
	"github.com/baharkarakas/fitgroups-api/internal/models"
	repo "github.com/baharkarakas/fitgroups-api/internal/repository"
)

type RoutineService struct {
	r      repo.Routines
	events events.Emitter
	now    func() time.Time
}

func NewRoutineService(r repo.Routines, ev events.Emitter) *RoutineService {
	return &RoutineService{r: r, events: ev, now: func() time.Time { return time.Now().UTC() }}
}

func (s *RoutineService) WithClock(now func() time.Time) *RoutineService {
	cp := *s
	cp.now = now
	return &cp
}

// Create stamps creado_en with the service clock before inserting.
func (s *RoutineService) Create(ctx context.Context, in models.RoutineInput) (models.Routine, error) {
	rt, err := s.r.Create(ctx, models.Routine{
		Name:        in.Name,
		Description: in.Description,
		UserID:      in.UserID,
		GroupID:     in.GroupID,
		CreatedAt:   s.now(),
		VideoURL:    in.VideoURL,
	})
	if err != nil {
		return models.Routine{}, fmt.Errorf("create routine: %w", err)
	}
	s.events.Emit(events.New(events.RoutineCreated, "routine", rt.ID, map[string]any{"grupo_id": rt.GroupID}))
	return rt, nil
}

func (s *RoutineService) List(ctx context.Context) ([]models.Routine, error) { return s.r.List(ctx) }
