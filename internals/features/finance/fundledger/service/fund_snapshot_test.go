// file: internals/features/finance/fundledger/service/fund_snapshot_test.go
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
	model "bowlingclub_backend/internals/features/finance/fundledger/model"
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
		&model.FundLedgerModel{},
		&model.FundBalanceCacheModel{},
		&ptModel.PointModel{},
	))
	return db
}

func enableFund(t *testing.T, db *gorm.DB, clubID uuid.UUID, startMonth string) {
	t.Helper()
	require.NoError(t, db.Create(&csModel.ClubSettingModel{
		ClubSettingClubID:         clubID,
		ClubSettingMonthlyFee:     5000,
		ClubSettingFundEnabled:    true,
		ClubSettingFundStartMonth: startMonth,
	}).Error)
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func addEntry(t *testing.T, db *gorm.DB, clubID uuid.UUID, date, entryType, source string, amount int, note string) {
	t.Helper()
	e := model.FundLedgerModel{
		FundLedgerClubID:    clubID,
		FundLedgerEventDate: mustDate(t, date),
		FundLedgerEntryType: entryType,
		FundLedgerAmount:    amount,
		FundLedgerSource:    source,
	}
	if note != "" {
		e.FundLedgerNote = &note
	}
	require.NoError(t, db.Create(&e).Error)
}

func addPoint(t *testing.T, db *gorm.DB, clubID, memberID uuid.UUID, date, typ string, amount int) {
	t.Helper()
	require.NoError(t, db.Create(&ptModel.PointModel{
		PointClubID:   clubID,
		PointMemberID: memberID,
		PointType:     typ,
		PointAmount:   amount,
		PointReason:   "테스트",
		PointDate:     mustDate(t, date),
	}).Error)
}

func addTestMember(t *testing.T, db *gorm.DB, clubID uuid.UUID, deleted bool) uuid.UUID {
	t.Helper()
	m := mModel.MemberModel{
		MemberClubID:   clubID,
		MemberName:     "회원",
		MemberIsActive: !deleted,
	}
	if deleted {
		now := time.Now().UTC()
		m.MemberDeletedAt = &now
	}
	require.NoError(t, db.Create(&m).Error)
	return m.MemberID
}

func TestRecompute_EmptyLedgerWritesZeroCache(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, "")

	require.NoError(t, Recompute(db, clubID))

	snap := Get(db, clubID)
	require.Equal(t, int64(0), snap.CurrentBalance)
	require.Empty(t, snap.Series.Labels)
	require.False(t, snap.CalculatedAt.IsZero())
}

// 첫 달의 "이월잔액" manual 행은 기초잔액으로 빠지고 그 달 흐름에서는 제외된다.
func TestRecompute_OpeningBalanceMarker(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, "")

	addEntry(t, db, clubID, "2025-01-03", model.EntryTypeCredit, model.SourceManual, 100000, model.OpeningBalanceMarker)
	addEntry(t, db, clubID, "2025-01-15", model.EntryTypeCredit, model.SourceGame, 20000, "")

	require.NoError(t, Recompute(db, clubID))
	snap := Get(db, clubID)

	require.Equal(t, []string{"2025-01"}, snap.Series.Labels)
	require.Equal(t, []int64{20000}, snap.Series.Credit)
	require.Equal(t, []int64{120000}, snap.Series.Balance)
	require.Equal(t, int64(120000), snap.CurrentBalance)
}

// 표시 시작 월 이전의 순변동은 기초잔액에 접혀서 최종 잔액이 보존된다.
func TestRecompute_StartMonthFoldsEarlierMonths(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, "2025-02")

	addEntry(t, db, clubID, "2025-01-05", model.EntryTypeCredit, model.SourceMonthly, 50000, "")
	addEntry(t, db, clubID, "2025-01-20", model.EntryTypeDebit, model.SourceManual, 10000, "볼장 대관료")
	addEntry(t, db, clubID, "2025-02-10", model.EntryTypeCredit, model.SourceGame, 20000, "")
	addEntry(t, db, clubID, "2025-03-01", model.EntryTypeDebit, model.SourceManual, 5000, "")

	require.NoError(t, Recompute(db, clubID))
	snap := Get(db, clubID)

	require.Equal(t, []string{"2025-02", "2025-03"}, snap.Series.Labels)
	require.Equal(t, []int64{60000, 55000}, snap.Series.Balance)
	// 접힌 달을 포함한 전체 합계와 일치
	require.Equal(t, int64(50000-10000+20000-5000), snap.CurrentBalance)
}

// 포인트 시계열은 월말 기준 누적 잔액. 탈퇴 회원 내역은 제외.
func TestRecompute_PointSeriesCumulative(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, "")

	alive := addTestMember(t, db, clubID, false)
	gone := addTestMember(t, db, clubID, true)

	addEntry(t, db, clubID, "2025-01-10", model.EntryTypeCredit, model.SourceMonthly, 5000, "")
	addEntry(t, db, clubID, "2025-02-10", model.EntryTypeCredit, model.SourceMonthly, 5000, "")

	addPoint(t, db, clubID, alive, "2025-01-12", ptModel.PointTypeEarn, 1000)
	addPoint(t, db, clubID, alive, "2025-02-05", ptModel.PointTypeUse, 300)
	addPoint(t, db, clubID, gone, "2025-01-20", ptModel.PointTypeEarn, 99999)

	require.NoError(t, Recompute(db, clubID))
	snap := Get(db, clubID)

	require.Equal(t, []string{"2025-01", "2025-02"}, snap.Series.Labels)
	require.Equal(t, []int64{1000, 700}, snap.Series.Points)
}

// 같은 입력이면 몇 번을 돌려도 같은 스냅샷 (전체 재계산, 증분 없음)
func TestRecompute_Deterministic(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, "")

	memberID := addTestMember(t, db, clubID, false)
	addEntry(t, db, clubID, "2025-01-03", model.EntryTypeCredit, model.SourceManual, 100000, model.OpeningBalanceMarker)
	addEntry(t, db, clubID, "2025-02-10", model.EntryTypeDebit, model.SourceManual, 30000, "시상품 구입")
	addPoint(t, db, clubID, memberID, "2025-01-15", ptModel.PointTypeBonus, 500)

	require.NoError(t, Recompute(db, clubID))
	first := Get(db, clubID)

	require.NoError(t, Recompute(db, clubID))
	second := Get(db, clubID)

	require.Equal(t, first.CurrentBalance, second.CurrentBalance)
	require.Equal(t, first.Series, second.Series)
}

func TestGet_NoCacheRecomputesOnce(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, "")
	addEntry(t, db, clubID, "2025-04-01", model.EntryTypeCredit, model.SourceGame, 12000, "")

	snap := Get(db, clubID)
	require.Equal(t, int64(12000), snap.CurrentBalance)

	var n int64
	require.NoError(t, db.Model(&model.FundBalanceCacheModel{}).
		Where("fund_balance_cache_club_id = ?", clubID).Count(&n).Error)
	require.Equal(t, int64(1), n)
}

// fund 기능이 꺼진 클럽의 조회는 zero 스냅샷 — 절대 실패하지 않는다.
func TestGet_DisabledClubReturnsZeroSnapshot(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()

	snap := Get(db, clubID)
	require.Equal(t, clubID, snap.ClubID)
	require.Equal(t, int64(0), snap.CurrentBalance)
	require.Empty(t, snap.Series.Labels)

	var n int64
	require.NoError(t, db.Model(&model.FundBalanceCacheModel{}).Count(&n).Error)
	require.Equal(t, int64(0), n)
}

// 읽기 시 정리 패스: 포인트 결제에 딸린 장부 행 삭제 + game 행 credit 정규화
func TestCleanupAndList(t *testing.T) {
	db := setupDB(t)
	clubID := uuid.New()
	enableFund(t, db, clubID, "")
	memberID := addTestMember(t, db, clubID, false)

	// 포인트 결제인데 장부 행이 남아 있는 오염 상태
	stale := pModel.PaymentModel{
		PaymentClubID:         clubID,
		PaymentMemberID:       memberID,
		PaymentType:           pModel.PaymentTypeGame,
		PaymentAmount:         20000,
		PaymentDate:           mustDate(t, "2025-01-10"),
		PaymentIsPaid:         true,
		PaymentPaidWithPoints: true,
	}
	require.NoError(t, db.Create(&stale).Error)
	stalePID := stale.PaymentID
	require.NoError(t, db.Create(&model.FundLedgerModel{
		FundLedgerClubID:    clubID,
		FundLedgerPaymentID: &stalePID,
		FundLedgerEventDate: stale.PaymentDate,
		FundLedgerEntryType: model.EntryTypeCredit,
		FundLedgerAmount:    20000,
		FundLedgerSource:    model.SourceGame,
	}).Error)

	// game 출처인데 debit으로 잘못 기록된 행
	addEntry(t, db, clubID, "2025-02-01", model.EntryTypeDebit, model.SourceGame, 8000, "")
	// 정상 manual 행
	addEntry(t, db, clubID, "2025-03-01", model.EntryTypeDebit, model.SourceManual, 3000, "")

	rows, err := CleanupAndList(db, clubID, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, model.EntryTypeCredit, rows[0].FundLedgerEntryType) // game 행 정규화됨
	require.Equal(t, model.SourceManual, rows[1].FundLedgerSource)

	// from_month 필터
	rows, err = CleanupAndList(db, clubID, "2025-03")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "2025-03", rows[0].FundLedgerMonth)
}
