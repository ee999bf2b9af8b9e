package dto

import (
	"time"

	model "bowlingclub_backend/internals/features/finance/points/model"

	"github.com/google/uuid"
)

/* =========================
   Requests (manual 포인트 행)
   ========================= */

type CreatePointRequest struct {
	PointMemberID uuid.UUID `json:"point_member_id" validate:"required"`
	PointType     string    `json:"point_type" validate:"required,oneof=적립 보너스 사용"`
	PointAmount   int       `json:"point_amount" validate:"required,gt=0"`
	PointReason   string    `json:"point_reason" validate:"required"`
	PointDate     string    `json:"point_date" validate:"required,datetime=2006-01-02"`
	PointNote     *string   `json:"point_note,omitempty"`
}

func (r *CreatePointRequest) ToModel(clubID uuid.UUID) *model.PointModel {
	date, _ := time.Parse("2006-01-02", r.PointDate)
	return &model.PointModel{
		PointClubID:   clubID,
		PointMemberID: r.PointMemberID,
		PointType:     r.PointType,
		PointAmount:   r.PointAmount,
		PointReason:   r.PointReason,
		PointDate:     date,
		PointNote:     r.PointNote,
	}
}

type UpdatePointRequest struct {
	PointType   *string `json:"point_type,omitempty" validate:"omitempty,oneof=적립 보너스 사용"`
	PointAmount *int    `json:"point_amount,omitempty" validate:"omitempty,gt=0"`
	PointReason *string `json:"point_reason,omitempty"`
	PointDate   *string `json:"point_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PointNote   *string `json:"point_note,omitempty"`
}

/* =========================
   Responses
   ========================= */

type MemberPointBalanceResponse struct {
	MemberID uuid.UUID `json:"member_id"`
	Balance  int64     `json:"balance"`
}
