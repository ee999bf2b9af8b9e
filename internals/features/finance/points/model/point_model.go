package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 포인트 구분
const (
	PointTypeEarn  = "적립"
	PointTypeBonus = "보너스"
	PointTypeUse   = "사용"
)

// 결제 파생 포인트 사유
const (
	ReasonMonthlyFee = "월회비"
	ReasonGameFee    = "정기전 게임비"
)

// PointModel: 회원 포인트 적립/사용 이벤트 1건.
// 결제 대체 행은 point_payment_id FK로 연결 (결제당 최대 1행, unique index).
// 비고의 "PAYMENT:<id>" 문구는 감사용 표시일 뿐, 조회 키가 아니다.
type PointModel struct {
	PointID       uuid.UUID `gorm:"column:point_id;type:uuid;primaryKey" json:"point_id"`
	PointClubID   uuid.UUID `gorm:"column:point_club_id;type:uuid;not null;index" json:"point_club_id"`
	PointMemberID uuid.UUID `gorm:"column:point_member_id;type:uuid;not null;index" json:"point_member_id"`

	PointPaymentID *uuid.UUID `gorm:"column:point_payment_id;type:uuid;uniqueIndex" json:"point_payment_id,omitempty"`

	PointType   string    `gorm:"column:point_type;type:varchar(10);not null" json:"point_type"` // 적립|보너스|사용
	PointAmount int       `gorm:"column:point_amount;not null" json:"point_amount"`              // 항상 양수 크기
	PointReason string    `gorm:"column:point_reason;type:varchar(100);not null" json:"point_reason"`
	PointDate   time.Time `gorm:"column:point_date;type:date;not null;index" json:"point_date"`

	PointNote *string `gorm:"column:point_note;type:text" json:"point_note,omitempty"`

	PointCreatedAt time.Time `gorm:"column:point_created_at;autoCreateTime" json:"point_created_at"`
}

func (PointModel) TableName() string { return "points" }

func (m *PointModel) BeforeCreate(tx *gorm.DB) error {
	if m.PointID == uuid.Nil {
		m.PointID = uuid.New()
	}
	return nil
}

// SignedDelta: 잔액 계산용 부호 (적립/보너스 +, 사용 −)
func (m *PointModel) SignedDelta() int64 {
	if m.PointType == PointTypeUse {
		return -int64(m.PointAmount)
	}
	return int64(m.PointAmount)
}

func ScopeByClub(clubID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("point_club_id = ?", clubID)
	}
}

func ScopeByMember(memberID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("point_member_id = ?", memberID)
	}
}
