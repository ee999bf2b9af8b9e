package dto

import (
	model "bowlingclub_backend/internals/features/club/clubs/model"
)

type CreateClubRequest struct {
	ClubName        string  `json:"club_name" validate:"required,min=2,max=100"`
	ClubSlug        string  `json:"club_slug" validate:"required,min=2,max=100"`
	ClubDescription *string `json:"club_description,omitempty"`
}

func (r *CreateClubRequest) ToModel() *model.ClubModel {
	return &model.ClubModel{
		ClubName:        r.ClubName,
		ClubSlug:        r.ClubSlug,
		ClubDescription: r.ClubDescription,
		ClubIsActive:    true,
	}
}

type UpdateClubRequest struct {
	ClubName        *string `json:"club_name,omitempty" validate:"omitempty,min=2,max=100"`
	ClubDescription *string `json:"club_description,omitempty"`
	ClubIsActive    *bool   `json:"club_is_active,omitempty"`
}
