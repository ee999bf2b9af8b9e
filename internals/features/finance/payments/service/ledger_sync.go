// file: internals/features/finance/payments/service/ledger_sync.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	flModel "bowlingclub_backend/internals/features/finance/fundledger/model"
	pModel "bowlingclub_backend/internals/features/finance/payments/model"
)

// SyncLedger: Payment ↔ FundLedger 수렴.
// 장부 행은 is_paid && !is_exempt && !paid_with_points 일 때에만 존재해야 하며
// 결제당 최대 1행 (중복은 첫 행만 남기고 정리).
func SyncLedger(db *gorm.DB, p *pModel.PaymentModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		shouldExist := p.LedgerShouldExist()

		var rows []flModel.FundLedgerModel
		if err := tx.
			Where("fund_ledger_payment_id = ?", p.PaymentID).
			Order("fund_ledger_created_at ASC").
			Find(&rows).Error; err != nil {
			return err
		}

		if !shouldExist {
			if len(rows) == 0 {
				return nil
			}
			return tx.
				Where("fund_ledger_payment_id = ?", p.PaymentID).
				Delete(&flModel.FundLedgerModel{}).Error
		}

		if len(rows) == 0 {
			pid := p.PaymentID
			row := flModel.FundLedgerModel{
				FundLedgerClubID:    p.PaymentClubID,
				FundLedgerPaymentID: &pid,
				FundLedgerEventDate: p.PaymentDate,
				FundLedgerMonth:     p.PaymentMonth,
				FundLedgerEntryType: entryTypeFor(p),
				FundLedgerAmount:    absInt(p.PaymentAmount),
				FundLedgerSource:    p.PaymentType,
				FundLedgerNote:      p.PaymentNote,
			}
			return tx.Create(&row).Error
		}

		// 중복 방어: 첫 행만 유지
		if len(rows) > 1 {
			extras := make([]uuid.UUID, 0, len(rows)-1)
			for _, r := range rows[1:] {
				extras = append(extras, r.FundLedgerID)
			}
			if err := tx.
				Where("fund_ledger_id IN ?", extras).
				Delete(&flModel.FundLedgerModel{}).Error; err != nil {
				return err
			}
		}

		// 남은 행을 결제 현재 값으로 덮어쓰기
		patch := map[string]interface{}{
			"fund_ledger_club_id":    p.PaymentClubID,
			"fund_ledger_event_date": p.PaymentDate,
			"fund_ledger_month":      p.PaymentMonth,
			"fund_ledger_entry_type": entryTypeFor(p),
			"fund_ledger_amount":     absInt(p.PaymentAmount),
			"fund_ledger_source":     p.PaymentType,
			"fund_ledger_note":       p.PaymentNote,
		}
		return tx.Model(&flModel.FundLedgerModel{}).
			Where("fund_ledger_id = ?", rows[0].FundLedgerID).
			Updates(patch).Error
	})
}

// DeleteLedgerRows: 결제 삭제 시 장부 행 선(先) 제거 — 고아 FK 방지
func DeleteLedgerRows(tx *gorm.DB, paymentID uuid.UUID) error {
	return tx.
		Where("fund_ledger_payment_id = ?", paymentID).
		Delete(&flModel.FundLedgerModel{}).Error
}

// monthly/game 모두 클럽 수입 → credit (현행 회계 모델)
func entryTypeFor(_ *pModel.PaymentModel) string {
	return flModel.EntryTypeCredit
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
