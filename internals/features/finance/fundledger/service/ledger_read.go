// file: internals/features/finance/fundledger/service/ledger_read.go
package service

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	model "bowlingclub_backend/internals/features/finance/fundledger/model"
	pModel "bowlingclub_backend/internals/features/finance/payments/model"
)

// CleanupAndList: 장부 조회 + 읽기 시 정리 패스.
//  1. 포인트 결제로 바뀐 결제에 딸린 장부 행 삭제 (동기화 누락 복구)
//  2. game 출처 행의 entry_type을 credit으로 정규화
//
// fromMonth("YYYY-MM")가 주어지면 그 달 이후만 반환.
func CleanupAndList(db *gorm.DB, clubID uuid.UUID, fromMonth string) ([]model.FundLedgerModel, error) {
	// 1) 포인트 결제에 딸린 행 제거
	sub := db.Model(&pModel.PaymentModel{}).
		Select("payment_id").
		Where("payment_paid_with_points = ?", true)
	if err := db.
		Scopes(model.ScopeByClub(clubID)).
		Where("fund_ledger_payment_id IN (?)", sub).
		Delete(&model.FundLedgerModel{}).Error; err != nil {
		return nil, err
	}

	// 2) game 행은 항상 credit (현행 회계 모델 유지)
	if err := db.Model(&model.FundLedgerModel{}).
		Where("fund_ledger_club_id = ? AND fund_ledger_source = ? AND fund_ledger_entry_type <> ?",
			clubID, model.SourceGame, model.EntryTypeCredit).
		Update("fund_ledger_entry_type", model.EntryTypeCredit).Error; err != nil {
		return nil, err
	}

	q := db.Scopes(model.ScopeByClub(clubID))
	if fromMonth != "" {
		q = q.Where("fund_ledger_month >= ?", fromMonth)
	}

	var rows []model.FundLedgerModel
	if err := q.
		Order("fund_ledger_event_date ASC, fund_ledger_created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
