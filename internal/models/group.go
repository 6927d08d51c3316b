package models

import "strings"

type Group struct {
	ID        int64  `json:"id"`
	Name      string `json:"nombre"`
	CreatorID *int64 `json:"creador_id"`
}

type GroupInput struct {
	Name      string `json:"nombre" validate:"required,min=3"`
	CreatorID int64  `json:"creador_id" validate:"required,gt=0"`
}

func (in *GroupInput) ApplyDefaults() { in.Name = strings.TrimSpace(in.Name) }

// Membership is one row of the group/user join table. Rows are append-only
// and the same pair may appear more than once.
type Membership struct {
	GroupID int64 `json:"grupo_id"`
	UserID  int64 `json:"usuario_id"`
}

type MembershipInput struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
}
