// file: internals/features/finance/fundledger/service/fund_snapshot.go
//
// 잔액 프로젝션: 장부 전체 + 포인트 전체를 월 단위로 걸어가며
// 누적 현금 잔액 / 월별 입출금 / 누적 포인트 잔액 시계열을 만들어
// fund_balance_caches에 통째로 덮어쓴다. 증분 갱신 없음 — 항상 전체 재계산.
package service

import (
	"encoding/json"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	settingSvc "bowlingclub_backend/internals/features/club/settings/service"
	model "bowlingclub_backend/internals/features/finance/fundledger/model"
	ptModel "bowlingclub_backend/internals/features/finance/points/model"
	helper "bowlingclub_backend/internals/helpers"
)

// BalanceSeries: 월별 병렬 배열.
// balance는 누적 현금 잔액, points는 해당 월 말일 기준 누적 포인트 잔액.
type BalanceSeries struct {
	Labels  []string `json:"labels"`
	Balance []int64  `json:"balance"`
	Credit  []int64  `json:"credit"`
	Debit   []int64  `json:"debit"`
	Points  []int64  `json:"points"`
}

// Snapshot: 리포트 핸들러에 내려주는 형태
type Snapshot struct {
	ClubID         uuid.UUID     `json:"club_id"`
	CurrentBalance int64         `json:"current_balance"`
	Series         BalanceSeries `json:"series"`
	CalculatedAt   time.Time     `json:"calculated_at"`
}

func emptySeries() BalanceSeries {
	return BalanceSeries{
		Labels:  []string{},
		Balance: []int64{},
		Credit:  []int64{},
		Debit:   []int64{},
		Points:  []int64{},
	}
}

// 클럽별 직렬화 — 같은 클럽의 재계산이 동시에 돌면 마지막 쓰기가 유실될 수 있어서
var clubLocks sync.Map // uuid.UUID → *sync.Mutex

func lockClub(clubID uuid.UUID) *sync.Mutex {
	v, _ := clubLocks.LoadOrStore(clubID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu
}

type monthFlow struct {
	credit int64
	debit  int64
}

// Recompute: 클럽의 잔액 스냅샷 전체 재계산.
// fund 기능이 꺼진 클럽이면 no-op. 실패 시 이전 캐시는 건드리지 않는다.
func Recompute(db *gorm.DB, clubID uuid.UUID) error {
	setting, err := settingSvc.ForClub(db, clubID)
	if err != nil {
		return err
	}
	if !setting.ClubSettingFundEnabled {
		return nil
	}

	mu := lockClub(clubID)
	defer mu.Unlock()

	// 1) 장부 전체 (event_date 오름차순)
	var entries []model.FundLedgerModel
	if err := db.
		Scopes(model.ScopeByClub(clubID)).
		Order("fund_ledger_event_date ASC, fund_ledger_created_at ASC").
		Find(&entries).Error; err != nil {
		return err
	}

	if len(entries) == 0 {
		return writeCache(db, clubID, 0, emptySeries())
	}

	// 2) 포인트 전체 (탈퇴 회원 제외, 시간순)
	var points []ptModel.PointModel
	if err := db.
		Table("points").
		Select("points.*").
		Joins("JOIN members ON members.member_id = points.point_member_id").
		Where("points.point_club_id = ? AND members.member_deleted_at IS NULL", clubID).
		Order("points.point_date ASC, points.point_created_at ASC").
		Find(&points).Error; err != nil {
		return err
	}

	// 3) 장부 월별 입출금 집계
	flows := map[string]*monthFlow{}
	for _, e := range entries {
		f := flows[e.FundLedgerMonth]
		if f == nil {
			f = &monthFlow{}
			flows[e.FundLedgerMonth] = f
		}
		if e.FundLedgerEntryType == model.EntryTypeDebit {
			f.debit += int64(e.FundLedgerAmount)
		} else {
			f.credit += int64(e.FundLedgerAmount)
		}
	}

	// 4) 월 목록 (장부 ∪ 포인트)
	monthSet := map[string]bool{}
	for m := range flows {
		monthSet[m] = true
	}
	for _, p := range points {
		monthSet[helper.MonthOf(p.PointDate)] = true
	}
	months := make([]string, 0, len(monthSet))
	for m := range monthSet {
		months = append(months, m)
	}
	sort.Strings(months)

	// 5) 이월잔액: 첫 달의 manual 행 중 마커가 붙은 것은 기초잔액으로 빼서
	//    그 달의 흐름에 이중 계상되지 않게 한다.
	var initial int64
	firstMonth := months[0]
	for _, e := range entries {
		if e.FundLedgerMonth != firstMonth || e.FundLedgerSource != model.SourceManual {
			continue
		}
		if e.FundLedgerNote == nil || !strings.Contains(*e.FundLedgerNote, model.OpeningBalanceMarker) {
			continue
		}
		f := flows[firstMonth]
		if e.FundLedgerEntryType == model.EntryTypeDebit {
			initial -= int64(e.FundLedgerAmount)
			f.debit -= int64(e.FundLedgerAmount)
		} else {
			initial += int64(e.FundLedgerAmount)
			f.credit -= int64(e.FundLedgerAmount)
		}
	}

	// 6) 표시 구간: 설정된 시작 월 이전의 순변동은 기초잔액에 접어 넣는다.
	display := months
	if start := setting.ClubSettingFundStartMonth; start != "" {
		display = display[:0:0]
		for _, m := range months {
			if m < start {
				if f := flows[m]; f != nil {
					initial += f.credit - f.debit
				}
				continue
			}
			display = append(display, m)
		}
	}

	// 7) 월 순회: 누적 현금 잔액 + 월말 기준 누적 포인트 잔액
	series := emptySeries()
	running := initial
	var pointCum int64
	pi := 0
	for _, m := range display {
		var credit, debit int64
		if f := flows[m]; f != nil {
			credit, debit = f.credit, f.debit
		}
		running += credit - debit

		end := helper.MonthEndExclusive(m)
		for pi < len(points) && points[pi].PointDate.Before(end) {
			pointCum += points[pi].SignedDelta()
			pi++
		}

		series.Labels = append(series.Labels, m)
		series.Balance = append(series.Balance, running)
		series.Credit = append(series.Credit, credit)
		series.Debit = append(series.Debit, debit)
		series.Points = append(series.Points, pointCum)
	}

	return writeCache(db, clubID, running, series)
}

func writeCache(db *gorm.DB, clubID uuid.UUID, balance int64, series BalanceSeries) error {
	raw, err := json.Marshal(series)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	var row model.FundBalanceCacheModel
	err = db.Where("fund_balance_cache_club_id = ?", clubID).First(&row).Error
	switch {
	case err == nil:
		return db.Model(&model.FundBalanceCacheModel{}).
			Where("fund_balance_cache_id = ?", row.FundBalanceCacheID).
			Updates(map[string]interface{}{
				"fund_balance_cache_current_balance": balance,
				"fund_balance_cache_series":          datatypes.JSON(raw),
				"fund_balance_cache_calculated_at":   now,
			}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = model.FundBalanceCacheModel{
			FundBalanceCacheClubID:         clubID,
			FundBalanceCacheCurrentBalance: balance,
			FundBalanceCacheSeries:         datatypes.JSON(raw),
			FundBalanceCacheCalculatedAt:   now,
		}
		return db.Create(&row).Error
	default:
		return err
	}
}

// Get: 캐시 reader. 캐시 없으면 1회 동기 재계산, 그래도 없으면 zero 스냅샷.
// 리포트 조회는 절대 에러를 돌려주지 않는다.
func Get(db *gorm.DB, clubID uuid.UUID) Snapshot {
	if snap, ok := readCache(db, clubID); ok {
		return snap
	}

	if err := Recompute(db, clubID); err != nil {
		log.Printf("[FUND-SNAPSHOT] read-through recompute club=%s err=%v", clubID, err)
	}
	if snap, ok := readCache(db, clubID); ok {
		return snap
	}

	return Snapshot{
		ClubID: clubID,
		Series: emptySeries(),
	}
}

func readCache(db *gorm.DB, clubID uuid.UUID) (Snapshot, bool) {
	var row model.FundBalanceCacheModel
	if err := db.Where("fund_balance_cache_club_id = ?", clubID).First(&row).Error; err != nil {
		return Snapshot{}, false
	}

	series := emptySeries()
	if len(row.FundBalanceCacheSeries) > 0 {
		if err := json.Unmarshal(row.FundBalanceCacheSeries, &series); err != nil {
			log.Printf("[FUND-SNAPSHOT] series decode club=%s err=%v", clubID, err)
			series = emptySeries()
		}
	}

	return Snapshot{
		ClubID:         clubID,
		CurrentBalance: row.FundBalanceCacheCurrentBalance,
		Series:         series,
		CalculatedAt:   row.FundBalanceCacheCalculatedAt,
	}, true
}
