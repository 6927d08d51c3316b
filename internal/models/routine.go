package models

import (
	"strings"
	"time"
)

type Routine struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion"`
	UserID      int64     `json:"usuario_id"`
	GroupID     int64     `json:"grupo_id"`
	CreatedAt   time.Time `json:"creado_en"`
	VideoURL    *string   `json:"video_url,omitempty"`
}

type RoutineInput struct {
	Name        string  `json:"nombre" validate:"required,min=3"`
	Description string  `json:"descripcion" validate:"required,min=5"`
	UserID      int64   `json:"usuario_id" validate:"required,gt=0"`
	GroupID     int64   `json:"grupo_id" validate:"required,gt=0"`
	VideoURL    *string `json:"video_url" validate:"omitempty,url"`
}

func (in *RoutineInput) ApplyDefaults() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.VideoURL != nil && strings.TrimSpace(*in.VideoURL) == "" {
		in.VideoURL = nil
	}
}
