// file: internals/features/finance/payments/service/sync.go
package service

import (
	"log"

	"gorm.io/gorm"

	fundSvc "bowlingclub_backend/internals/features/finance/fundledger/service"
	pModel "bowlingclub_backend/internals/features/finance/payments/model"
)

// SyncAfterWrite: 결제 create/update 이후 파생 상태 일괄 수렴.
// 각 단계는 독립 트랜잭션으로 격리 — 어떤 실패도 결제 쓰기 자체를 되돌리지 않는다.
// 실패는 로그 + SyncOutcome 경고로만 전달.
func SyncAfterWrite(db *gorm.DB, p *pModel.PaymentModel) SyncOutcome {
	out := SyncOutcome{}

	if err := SyncLedger(db, p); err != nil {
		log.Printf("[LEDGER-SYNC] payment=%s err=%v", p.PaymentID, err)
		out.warn("장부 동기화 실패: " + err.Error())
	} else {
		out.LedgerSynced = true
	}

	if err := SyncPoint(db, p); err != nil {
		log.Printf("[POINT-SYNC] payment=%s err=%v", p.PaymentID, err)
		out.warn("포인트 동기화 실패: " + err.Error())
	} else {
		out.PointSynced = true
	}

	// 프로젝션 실패는 삼킨다 — 이전 캐시가 그대로 유효
	if err := fundSvc.Recompute(db, p.PaymentClubID); err != nil {
		log.Printf("[FUND-SNAPSHOT] club=%s err=%v", p.PaymentClubID, err)
		out.warn("잔액 재계산 실패: " + err.Error())
	} else {
		out.ProjectionOK = true
	}

	return out
}
