package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 납부 유형
const (
	PaymentTypeMonthly = "monthly" // 월회비
	PaymentTypeGame    = "game"    // 정기전 게임비
)

// PaymentModel: 회원 1명의 회비 이벤트 1건.
// 장부/포인트 파생 상태의 단일 진실 소스 — 동기화 서비스가 이 레코드에 맞춰 수렴한다.
type PaymentModel struct {
	PaymentID       uuid.UUID `gorm:"column:payment_id;type:uuid;primaryKey" json:"payment_id"`
	PaymentClubID   uuid.UUID `gorm:"column:payment_club_id;type:uuid;not null;index" json:"payment_club_id"`
	PaymentMemberID uuid.UUID `gorm:"column:payment_member_id;type:uuid;not null;index" json:"payment_member_id"`

	PaymentType   string    `gorm:"column:payment_type;type:varchar(20);not null" json:"payment_type"` // monthly|game
	PaymentAmount int       `gorm:"column:payment_amount;not null" json:"payment_amount"`              // 원 단위 정수
	PaymentDate   time.Time `gorm:"column:payment_date;type:date;not null" json:"payment_date"`

	// payment_date에서 파생 ("YYYY-MM"). 직접 수정 금지 — BeforeSave에서 항상 재계산.
	PaymentMonth string `gorm:"column:payment_month;type:varchar(7);not null;index" json:"payment_month"`

	PaymentIsPaid         bool `gorm:"column:payment_is_paid;not null;default:false" json:"payment_is_paid"`
	PaymentIsExempt       bool `gorm:"column:payment_is_exempt;not null;default:false" json:"payment_is_exempt"`
	PaymentPaidWithPoints bool `gorm:"column:payment_paid_with_points;not null;default:false" json:"payment_paid_with_points"`

	PaymentNote *string `gorm:"column:payment_note;type:text" json:"payment_note,omitempty"`

	PaymentCreatedAt time.Time  `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt *time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }

func (p *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if p.PaymentID == uuid.Nil {
		p.PaymentID = uuid.New()
	}
	return nil
}

// BeforeSave: month는 항상 payment_date에서 파생
func (p *PaymentModel) BeforeSave(tx *gorm.DB) error {
	if !p.PaymentDate.IsZero() {
		p.PaymentMonth = p.PaymentDate.Format("2006-01")
	}
	return nil
}

// LedgerShouldExist: 현금 장부 행이 존재해야 하는 조건
func (p *PaymentModel) LedgerShouldExist() bool {
	return p.PaymentIsPaid && !p.PaymentIsExempt && !p.PaymentPaidWithPoints
}

// PointShouldExist: 포인트 차감 행이 존재해야 하는 조건
func (p *PaymentModel) PointShouldExist() bool {
	return p.PaymentIsPaid && !p.PaymentIsExempt && p.PaymentPaidWithPoints
}

func ScopeByClub(clubID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("payment_club_id = ?", clubID)
	}
}
