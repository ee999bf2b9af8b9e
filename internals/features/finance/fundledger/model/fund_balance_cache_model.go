package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FundBalanceCacheModel: 클럽당 1행. 장부+포인트 전체를 재계산한 스냅샷.
// 파생 데이터이므로 언제든 버리고 다시 만들 수 있다 (증분 패치 금지).
type FundBalanceCacheModel struct {
	FundBalanceCacheID     uuid.UUID `gorm:"column:fund_balance_cache_id;type:uuid;primaryKey" json:"fund_balance_cache_id"`
	FundBalanceCacheClubID uuid.UUID `gorm:"column:fund_balance_cache_club_id;type:uuid;not null;uniqueIndex" json:"fund_balance_cache_club_id"`

	FundBalanceCacheCurrentBalance int64 `gorm:"column:fund_balance_cache_current_balance;not null;default:0" json:"fund_balance_cache_current_balance"`

	// 월별 병렬 배열 (labels/balance/credit/debit/points) — JSONB
	FundBalanceCacheSeries datatypes.JSON `gorm:"column:fund_balance_cache_series;type:jsonb" json:"fund_balance_cache_series,omitempty"`

	FundBalanceCacheCalculatedAt time.Time `gorm:"column:fund_balance_cache_calculated_at;not null" json:"fund_balance_cache_calculated_at"`
}

func (FundBalanceCacheModel) TableName() string { return "fund_balance_caches" }

func (m *FundBalanceCacheModel) BeforeCreate(tx *gorm.DB) error {
	if m.FundBalanceCacheID == uuid.Nil {
		m.FundBalanceCacheID = uuid.New()
	}
	return nil
}
