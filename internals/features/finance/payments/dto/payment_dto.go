package dto

import (
	"time"

	"github.com/google/uuid"

	model "bowlingclub_backend/internals/features/finance/payments/model"
	svc "bowlingclub_backend/internals/features/finance/payments/service"
)

/* =========================
   Requests
   ========================= */

type CreatePaymentRequest struct {
	PaymentMemberID       uuid.UUID `json:"payment_member_id" validate:"required"`
	PaymentType           string    `json:"payment_type" validate:"required,oneof=monthly game"`
	PaymentAmount         int       `json:"payment_amount" validate:"required"`
	PaymentDate           string    `json:"payment_date" validate:"required,datetime=2006-01-02"`
	PaymentIsPaid         bool      `json:"payment_is_paid"`
	PaymentIsExempt       bool      `json:"payment_is_exempt"`
	PaymentPaidWithPoints bool      `json:"payment_paid_with_points"`
	PaymentNote           *string   `json:"payment_note,omitempty"`
}

func (r *CreatePaymentRequest) ToModel(clubID uuid.UUID) *model.PaymentModel {
	date, _ := time.Parse("2006-01-02", r.PaymentDate)
	return &model.PaymentModel{
		PaymentClubID:         clubID,
		PaymentMemberID:       r.PaymentMemberID,
		PaymentType:           r.PaymentType,
		PaymentAmount:         r.PaymentAmount,
		PaymentDate:           date,
		PaymentIsPaid:         r.PaymentIsPaid,
		PaymentIsExempt:       r.PaymentIsExempt,
		PaymentPaidWithPoints: r.PaymentPaidWithPoints,
		PaymentNote:           r.PaymentNote,
	}
}

// 부분 갱신: 포인터 필드만 반영 (null 전송으로 비우기는 미지원)
type UpdatePaymentRequest struct {
	PaymentMemberID       *uuid.UUID `json:"payment_member_id,omitempty"`
	PaymentType           *string    `json:"payment_type,omitempty" validate:"omitempty,oneof=monthly game"`
	PaymentAmount         *int       `json:"payment_amount,omitempty"`
	PaymentDate           *string    `json:"payment_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PaymentIsPaid         *bool      `json:"payment_is_paid,omitempty"`
	PaymentIsExempt       *bool      `json:"payment_is_exempt,omitempty"`
	PaymentPaidWithPoints *bool      `json:"payment_paid_with_points,omitempty"`
	PaymentNote           *string    `json:"payment_note,omitempty"`
}

type ListPaymentQuery struct {
	MemberID *uuid.UUID `query:"member_id"`
	Type     *string    `query:"type"`
	Month    *string    `query:"month"`
	IsPaid   *bool      `query:"is_paid"`
	Limit    int        `query:"limit"`
	Offset   int        `query:"offset"`
}

/* =========================
   Responses
   ========================= */

type PaymentResponse struct {
	model.PaymentModel
}

// 결제 + 동기화 결과 묶음 (degraded sync를 호출자가 볼 수 있게)
type PaymentSyncResponse struct {
	Payment model.PaymentModel `json:"payment"`
	Sync    svc.SyncOutcome    `json:"sync"`
}

type PaymentListResponse struct {
	Items []model.PaymentModel `json:"items"`
	Total int64                `json:"total"`
}
