// file: internals/features/finance/payments/service/sync_test.go
package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	mModel "bowlingclub_backend/internals/features/club/members/model"
	csModel "bowlingclub_backend/internals/features/club/settings/model"
	flModel "bowlingclub_backend/internals/features/finance/fundledger/model"
	fundSvc "bowlingclub_backend/internals/features/finance/fundledger/service"
	pModel "bowlingclub_backend/internals/features/finance/payments/model"
	ptModel "bowlingclub_backend/internals/features/finance/points/model"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&csModel.ClubSettingModel{},
		&mModel.MemberModel{},
		&pModel.PaymentModel{},
		&flModel.FundLedgerModel{},
		&flModel.FundBalanceCacheModel{},
		&ptModel.PointModel{},
	))
	return db
}

func enableFund(t *testing.T, db *gorm.DB, clubID uuid.UUID, fee int, startMonth string) {
	t.Helper()
	require.NoError(t, db.Create(&csModel.ClubSettingModel{
		ClubSettingClubID:         clubID,
		ClubSettingMonthlyFee:     fee,
		ClubSettingFundEnabled:    true,
		ClubSettingFundStartMonth: startMonth,
	}).Error)
}

func newMember(t *testing.T, db *gorm.DB, clubID uuid.UUID) uuid.UUID {
	t.Helper()
	m := mModel.MemberModel{
		MemberClubID:   clubID,
		MemberName:     "테스트회원",
		MemberIsActive: true,
	}
	require.NoError(t, db.Create(&m).Error)
	return m.MemberID
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func createPayment(t *testing.T, db *gorm.DB, clubID, memberID uuid.UUID,
	typ string, amount int, date string, paid, exempt, withPoints bool) *pModel.PaymentModel {
	t.Helper()
	p := pModel.PaymentModel{
		PaymentClubID:         clubID,
		PaymentMemberID:       memberID,
		PaymentType:           typ,
		PaymentAmount:         amount,
		PaymentDate:           mustDate(t, date),
		PaymentIsPaid:         paid,
		PaymentIsExempt:       exempt,
		PaymentPaidWithPoints: withPoints,
	}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func ledgerRows(t *testing.T, db *gorm.DB, paymentID uuid.UUID) []flModel.FundLedgerModel {
	t.Helper()
	var rows []flModel.FundLedgerModel
	require.NoError(t, db.
		Where("fund_ledger_payment_id = ?", paymentID).
		Order("fund_ledger_created_at ASC").
		Find(&rows).Error)
	return rows
}

func pointRows(t *testing.T, db *gorm.DB, paymentID uuid.UUID) []ptModel.PointModel {
	t.Helper()
	var rows []ptModel.PointModel
	require.NoError(t, db.Where("point_payment_id = ?", paymentID).Find(&rows).Error)
	return rows
}

func TestSyncAfterWrite_PaidCashCreatesLedgerRow(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, 5000, "")
	memberID := newMember(t, db, clubID)

	p := createPayment(t, db, clubID, memberID, pModel.PaymentTypeGame, 20000, "2025-05-10", true, false, false)
	out := SyncAfterWrite(db, p)

	require.True(t, out.LedgerSynced)
	require.True(t, out.PointSynced)
	require.True(t, out.ProjectionOK)
	require.False(t, out.Degraded())

	rows := ledgerRows(t, db, p.PaymentID)
	require.Len(t, rows, 1)
	require.Equal(t, flModel.EntryTypeCredit, rows[0].FundLedgerEntryType)
	require.Equal(t, 20000, rows[0].FundLedgerAmount)
	require.Equal(t, flModel.SourceGame, rows[0].FundLedgerSource)
	require.Equal(t, "2025-05", rows[0].FundLedgerMonth)

	require.Empty(t, pointRows(t, db, p.PaymentID))

	snap := fundSvc.Get(db, clubID)
	require.Equal(t, int64(20000), snap.CurrentBalance)
}

// 파생 행의 존재는 플래그 조합만으로 결정된다.
func TestSync_ExistenceMatrix(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, 5000, "")
	memberID := newMember(t, db, clubID)

	cases := []struct {
		name                     string
		paid, exempt, withPoints bool
		wantLedger, wantPoint    bool
	}{
		{"미납", false, false, false, false, false},
		{"현금납부", true, false, false, true, false},
		{"포인트납부", true, false, true, false, true},
		{"면제", true, true, false, false, false},
		{"면제+포인트플래그", true, true, true, false, false},
		{"미납+포인트플래그", false, false, true, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := createPayment(t, db, clubID, memberID, pModel.PaymentTypeGame, 10000, "2025-04-01",
				tc.paid, tc.exempt, tc.withPoints)
			SyncAfterWrite(db, p)

			lRows := ledgerRows(t, db, p.PaymentID)
			ptRows := pointRows(t, db, p.PaymentID)

			if tc.wantLedger {
				require.Len(t, lRows, 1)
			} else {
				require.Empty(t, lRows)
			}
			if tc.wantPoint {
				require.Len(t, ptRows, 1)
			} else {
				require.Empty(t, ptRows)
			}
			// 장부 행과 포인트 행은 동시에 존재할 수 없다
			require.False(t, len(lRows) > 0 && len(ptRows) > 0)
		})
	}
}

func TestSyncLedger_Idempotent(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, 5000, "")
	memberID := newMember(t, db, clubID)

	p := createPayment(t, db, clubID, memberID, pModel.PaymentTypeMonthly, 5000, "2025-03-02", true, false, false)

	require.NoError(t, SyncLedger(db, p))
	first := ledgerRows(t, db, p.PaymentID)
	require.Len(t, first, 1)

	require.NoError(t, SyncLedger(db, p))
	second := ledgerRows(t, db, p.PaymentID)
	require.Len(t, second, 1)
	require.Equal(t, first[0].FundLedgerID, second[0].FundLedgerID)
	require.Equal(t, first[0].FundLedgerAmount, second[0].FundLedgerAmount)
}

// 레이스 등으로 중복 행이 생겨도 다음 동기화가 첫 행만 남기고 수렴시킨다.
func TestSyncLedger_CollapsesDuplicates(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, 5000, "")
	memberID := newMember(t, db, clubID)

	p := createPayment(t, db, clubID, memberID, pModel.PaymentTypeGame, 20000, "2025-05-10", true, false, false)
	require.NoError(t, SyncLedger(db, p))
	orig := ledgerRows(t, db, p.PaymentID)
	require.Len(t, orig, 1)

	// 중복 행 직접 삽입 (나중 시각, 엉뚱한 금액)
	pid := p.PaymentID
	dup := flModel.FundLedgerModel{
		FundLedgerClubID:    clubID,
		FundLedgerPaymentID: &pid,
		FundLedgerEventDate: p.PaymentDate,
		FundLedgerEntryType: flModel.EntryTypeCredit,
		FundLedgerAmount:    99999,
		FundLedgerSource:    flModel.SourceGame,
		FundLedgerCreatedAt: orig[0].FundLedgerCreatedAt.Add(time.Hour),
	}
	require.NoError(t, db.Create(&dup).Error)
	require.Len(t, ledgerRows(t, db, p.PaymentID), 2)

	require.NoError(t, SyncLedger(db, p))
	rows := ledgerRows(t, db, p.PaymentID)
	require.Len(t, rows, 1)
	require.Equal(t, orig[0].FundLedgerID, rows[0].FundLedgerID)
	require.Equal(t, 20000, rows[0].FundLedgerAmount)
}

// 현금 납부를 포인트 납부로 바꾸면 장부 행이 사라지고 포인트 차감이 생긴다.
func TestSync_SwitchCashToPoints(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, 5000, "")
	memberID := newMember(t, db, clubID)

	p := createPayment(t, db, clubID, memberID, pModel.PaymentTypeGame, 20000, "2025-05-10", true, false, false)
	SyncAfterWrite(db, p)
	require.Equal(t, int64(20000), fundSvc.Get(db, clubID).CurrentBalance)

	require.NoError(t, db.Model(&pModel.PaymentModel{}).
		Where("payment_id = ?", p.PaymentID).
		Update("payment_paid_with_points", true).Error)
	p.PaymentPaidWithPoints = true
	SyncAfterWrite(db, p)

	require.Empty(t, ledgerRows(t, db, p.PaymentID))

	pts := pointRows(t, db, p.PaymentID)
	require.Len(t, pts, 1)
	require.Equal(t, ptModel.PointTypeUse, pts[0].PointType)
	require.Equal(t, 20000, pts[0].PointAmount)
	require.Equal(t, ptModel.ReasonGameFee, pts[0].PointReason)
	require.True(t, pts[0].PointDate.Equal(p.PaymentDate))
	require.NotNil(t, pts[0].PointNote)
	require.Contains(t, *pts[0].PointNote, "PAYMENT:"+p.PaymentID.String())

	// 장부 기여분이 사라졌으니 잔액은 0으로 복귀
	require.Equal(t, int64(0), fundSvc.Get(db, clubID).CurrentBalance)
}

// 월회비 포인트 차감: 금액은 결제 금액이 아니라 설정된 월회비, 날짜는 그 달 1일.
func TestSyncPoint_MonthlyUsesConfiguredFee(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, 7000, "")
	memberID := newMember(t, db, clubID)

	p := createPayment(t, db, clubID, memberID, pModel.PaymentTypeMonthly, 30000, "2025-03-15", true, false, true)
	require.NoError(t, SyncPoint(db, p))

	pts := pointRows(t, db, p.PaymentID)
	require.Len(t, pts, 1)
	require.Equal(t, 7000, pts[0].PointAmount)
	require.Equal(t, ptModel.ReasonMonthlyFee, pts[0].PointReason)
	require.True(t, pts[0].PointDate.Equal(mustDate(t, "2025-03-01")))
}

func TestSyncPoint_UpdatesRowInPlace(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, 5000, "")
	memberID := newMember(t, db, clubID)

	p := createPayment(t, db, clubID, memberID, pModel.PaymentTypeGame, 12000, "2025-06-07", true, false, true)
	require.NoError(t, SyncPoint(db, p))
	before := pointRows(t, db, p.PaymentID)
	require.Len(t, before, 1)

	require.NoError(t, db.Model(&pModel.PaymentModel{}).
		Where("payment_id = ?", p.PaymentID).
		Update("payment_amount", 15000).Error)
	p.PaymentAmount = 15000
	require.NoError(t, SyncPoint(db, p))

	after := pointRows(t, db, p.PaymentID)
	require.Len(t, after, 1)
	require.Equal(t, before[0].PointID, after[0].PointID)
	require.Equal(t, 15000, after[0].PointAmount)
}

// 음수 금액이 들어와도 장부에는 절대값이 실린다.
func TestSyncLedger_NegativeAmountStoredAbsolute(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, 5000, "")
	memberID := newMember(t, db, clubID)

	p := createPayment(t, db, clubID, memberID, pModel.PaymentTypeGame, -15000, "2025-02-01", true, false, false)
	require.NoError(t, SyncLedger(db, p))

	rows := ledgerRows(t, db, p.PaymentID)
	require.Len(t, rows, 1)
	require.Equal(t, 15000, rows[0].FundLedgerAmount)
	require.Equal(t, flModel.EntryTypeCredit, rows[0].FundLedgerEntryType)
}

// 결제 삭제 시 파생 상태까지 지우면, 그 결제가 처음부터 없었던 것과 같은 스냅샷이 나온다.
func TestDeletePayment_RemovesDerivedState(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, 5000, "")
	memberID := newMember(t, db, clubID)

	p1 := createPayment(t, db, clubID, memberID, pModel.PaymentTypeMonthly, 5000, "2025-01-05", true, false, false)
	SyncAfterWrite(db, p1)
	baseline := fundSvc.Get(db, clubID)

	p2 := createPayment(t, db, clubID, memberID, pModel.PaymentTypeGame, 20000, "2025-02-10", true, false, false)
	SyncAfterWrite(db, p2)
	require.Equal(t, baseline.CurrentBalance+20000, fundSvc.Get(db, clubID).CurrentBalance)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		if err := DeleteLedgerRows(tx, p2.PaymentID); err != nil {
			return err
		}
		if err := DeletePointRows(tx, p2.PaymentID); err != nil {
			return err
		}
		return tx.Where("payment_id = ?", p2.PaymentID).Delete(&pModel.PaymentModel{}).Error
	}))
	require.NoError(t, fundSvc.Recompute(db, clubID))

	after := fundSvc.Get(db, clubID)
	require.Equal(t, baseline.CurrentBalance, after.CurrentBalance)
	require.Equal(t, baseline.Series.Labels, after.Series.Labels)
	require.Equal(t, baseline.Series.Balance, after.Series.Balance)
}

// fund 기능이 꺼진 클럽: 행 동기화는 그대로 돌고 캐시만 만들지 않는다.
func TestSyncAfterWrite_FundDisabledSkipsProjection(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	memberID := newMember(t, db, clubID)
	// 설정 행 없음 → fund_enabled 기본 false

	p := createPayment(t, db, clubID, memberID, pModel.PaymentTypeGame, 8000, "2025-07-01", true, false, false)
	out := SyncAfterWrite(db, p)

	require.True(t, out.LedgerSynced)
	require.True(t, out.PointSynced)
	require.True(t, out.ProjectionOK) // no-op도 성공

	require.Len(t, ledgerRows(t, db, p.PaymentID), 1)

	var n int64
	require.NoError(t, db.Model(&flModel.FundBalanceCacheModel{}).Count(&n).Error)
	require.Equal(t, int64(0), n)
}
