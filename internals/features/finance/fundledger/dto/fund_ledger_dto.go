package dto

import (
	"time"

	model "bowlingclub_backend/internals/features/finance/fundledger/model"

	"github.com/google/uuid"
)

/* =========================
   Requests (manual 장부 행)
   ========================= */

type CreateFundLedgerRequest struct {
	FundLedgerEntryType string  `json:"fund_ledger_entry_type" validate:"required,oneof=credit debit"`
	FundLedgerAmount    int     `json:"fund_ledger_amount" validate:"required,gt=0"`
	FundLedgerEventDate string  `json:"fund_ledger_event_date" validate:"required,datetime=2006-01-02"`
	FundLedgerNote      *string `json:"fund_ledger_note,omitempty"`
}

func (r *CreateFundLedgerRequest) ToModel(clubID uuid.UUID) *model.FundLedgerModel {
	date, _ := time.Parse("2006-01-02", r.FundLedgerEventDate)
	return &model.FundLedgerModel{
		FundLedgerClubID:    clubID,
		FundLedgerEventDate: date,
		FundLedgerEntryType: r.FundLedgerEntryType,
		FundLedgerAmount:    r.FundLedgerAmount,
		FundLedgerSource:    model.SourceManual,
		FundLedgerNote:      r.FundLedgerNote,
	}
}

type UpdateFundLedgerRequest struct {
	FundLedgerEntryType *string `json:"fund_ledger_entry_type,omitempty" validate:"omitempty,oneof=credit debit"`
	FundLedgerAmount    *int    `json:"fund_ledger_amount,omitempty" validate:"omitempty,gt=0"`
	FundLedgerEventDate *string `json:"fund_ledger_event_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	FundLedgerNote      *string `json:"fund_ledger_note,omitempty"`
}
