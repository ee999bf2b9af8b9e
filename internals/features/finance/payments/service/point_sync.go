// file: internals/features/finance/payments/service/point_sync.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	settingSvc "bowlingclub_backend/internals/features/club/settings/service"
	pModel "bowlingclub_backend/internals/features/finance/payments/model"
	ptModel "bowlingclub_backend/internals/features/finance/points/model"
	helper "bowlingclub_backend/internals/helpers"
)

// SyncPoint: Payment ↔ 포인트 "사용" 행 수렴.
// 포인트 결제(is_paid && !is_exempt && paid_with_points)일 때에만 존재해야 한다.
// 금액은 monthly면 설정된 월회비, 아니면 |payment.amount|.
// 날짜는 monthly면 해당 월 1일, 아니면 payment_date.
func SyncPoint(db *gorm.DB, p *pModel.PaymentModel) error {
	monthlyFee := settingSvc.MonthlyFee(db, p.PaymentClubID)

	return db.Transaction(func(tx *gorm.DB) error {
		shouldExist := p.PointShouldExist()

		var row ptModel.PointModel
		err := tx.Where("point_payment_id = ?", p.PaymentID).First(&row).Error
		found := err == nil
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if !shouldExist {
			if !found {
				return nil
			}
			return tx.
				Where("point_payment_id = ?", p.PaymentID).
				Delete(&ptModel.PointModel{}).Error
		}

		amount, date, reason := expectedPoint(p, monthlyFee)

		if !found {
			pid := p.PaymentID
			note := fmt.Sprintf("PAYMENT:%s", p.PaymentID)
			row = ptModel.PointModel{
				PointClubID:    p.PaymentClubID,
				PointMemberID:  p.PaymentMemberID,
				PointPaymentID: &pid,
				PointType:      ptModel.PointTypeUse,
				PointAmount:    amount,
				PointReason:    reason,
				PointDate:      date,
				PointNote:      &note,
			}
			return tx.Create(&row).Error
		}

		// 금액/날짜/사유가 결제와 어긋나면 제자리 갱신
		if row.PointAmount != amount || !row.PointDate.Equal(date) || row.PointReason != reason ||
			row.PointMemberID != p.PaymentMemberID {
			patch := map[string]interface{}{
				"point_member_id": p.PaymentMemberID,
				"point_amount":    amount,
				"point_date":      date,
				"point_reason":    reason,
			}
			return tx.Model(&ptModel.PointModel{}).
				Where("point_id = ?", row.PointID).
				Updates(patch).Error
		}
		return nil
	})
}

// DeletePointRows: 결제 삭제 시 연결 포인트 행 제거
func DeletePointRows(tx *gorm.DB, paymentID uuid.UUID) error {
	return tx.
		Where("point_payment_id = ?", paymentID).
		Delete(&ptModel.PointModel{}).Error
}

func expectedPoint(p *pModel.PaymentModel, monthlyFee int) (amount int, date time.Time, reason string) {
	if p.PaymentType == pModel.PaymentTypeMonthly {
		return monthlyFee, helper.FirstDayOfMonth(p.PaymentMonth), ptModel.ReasonMonthlyFee
	}
	return absInt(p.PaymentAmount), p.PaymentDate, ptModel.ReasonGameFee
}
