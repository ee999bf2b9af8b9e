package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EntryTypeCredit = "credit" // 입금
	EntryTypeDebit  = "debit"  // 출금
)

const (
	SourceMonthly = "monthly"
	SourceGame    = "game"
	SourceManual  = "manual"
)

// 이월잔액 마커: 첫 달 manual 행 비고에 이 문구가 있으면 기초잔액으로 취급
const OpeningBalanceMarker = "이월잔액"

// FundLedgerModel: 회계 이벤트 1건 (입금/출금).
// Payment 파생 행은 payment_id로 연결되며 결제당 최대 1행.
// unique 제약 대신 동기화가 트랜잭션 안에서 중복을 접는다 —
// 과거 데이터의 중복 행도 읽기/동기화 경로에서 복구 대상이기 때문.
type FundLedgerModel struct {
	FundLedgerID        uuid.UUID  `gorm:"column:fund_ledger_id;type:uuid;primaryKey" json:"fund_ledger_id"`
	FundLedgerClubID    uuid.UUID  `gorm:"column:fund_ledger_club_id;type:uuid;not null;index" json:"fund_ledger_club_id"`
	FundLedgerPaymentID *uuid.UUID `gorm:"column:fund_ledger_payment_id;type:uuid;index" json:"fund_ledger_payment_id,omitempty"`

	FundLedgerEventDate time.Time `gorm:"column:fund_ledger_event_date;type:date;not null;index" json:"fund_ledger_event_date"`
	FundLedgerMonth     string    `gorm:"column:fund_ledger_month;type:varchar(7);not null;index" json:"fund_ledger_month"`

	FundLedgerEntryType string `gorm:"column:fund_ledger_entry_type;type:varchar(10);not null" json:"fund_ledger_entry_type"` // credit|debit
	FundLedgerAmount    int    `gorm:"column:fund_ledger_amount;not null" json:"fund_ledger_amount"`                          // 항상 양수
	FundLedgerSource    string `gorm:"column:fund_ledger_source;type:varchar(20);not null" json:"fund_ledger_source"`         // monthly|game|manual

	FundLedgerNote *string `gorm:"column:fund_ledger_note;type:text" json:"fund_ledger_note,omitempty"`

	FundLedgerCreatedAt time.Time  `gorm:"column:fund_ledger_created_at;autoCreateTime" json:"fund_ledger_created_at"`
	FundLedgerUpdatedAt *time.Time `gorm:"column:fund_ledger_updated_at;autoUpdateTime" json:"fund_ledger_updated_at,omitempty"`
}

func (FundLedgerModel) TableName() string { return "fund_ledgers" }

func (m *FundLedgerModel) BeforeCreate(tx *gorm.DB) error {
	if m.FundLedgerID == uuid.Nil {
		m.FundLedgerID = uuid.New()
	}
	return nil
}

// BeforeSave: month는 event_date에서 파생
func (m *FundLedgerModel) BeforeSave(tx *gorm.DB) error {
	if !m.FundLedgerEventDate.IsZero() {
		m.FundLedgerMonth = m.FundLedgerEventDate.Format("2006-01")
	}
	return nil
}

func ScopeByClub(clubID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("fund_ledger_club_id = ?", clubID)
	}
}
