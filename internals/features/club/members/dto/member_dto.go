package dto

import (
	"time"

	model "bowlingclub_backend/internals/features/club/members/model"

	"github.com/google/uuid"
)

type CreateMemberRequest struct {
	MemberName     string  `json:"member_name" validate:"required,min=1,max=60"`
	MemberPhone    *string `json:"member_phone,omitempty" validate:"omitempty,max=20"`
	MemberRole     string  `json:"member_role" validate:"omitempty,oneof=owner admin staff member"`
	MemberJoinedAt *string `json:"member_joined_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateMemberRequest) ToModel(clubID uuid.UUID) *model.MemberModel {
	role := r.MemberRole
	if role == "" {
		role = "member"
	}
	m := &model.MemberModel{
		MemberClubID:   clubID,
		MemberName:     r.MemberName,
		MemberPhone:    r.MemberPhone,
		MemberRole:     role,
		MemberIsActive: true,
	}
	if r.MemberJoinedAt != nil {
		if t, err := time.Parse("2006-01-02", *r.MemberJoinedAt); err == nil {
			m.MemberJoinedAt = t
		}
	}
	return m
}

type UpdateMemberRequest struct {
	MemberName     *string `json:"member_name,omitempty" validate:"omitempty,min=1,max=60"`
	MemberPhone    *string `json:"member_phone,omitempty" validate:"omitempty,max=20"`
	MemberRole     *string `json:"member_role,omitempty" validate:"omitempty,oneof=owner admin staff member"`
	MemberIsActive *bool   `json:"member_is_active,omitempty"`
}
