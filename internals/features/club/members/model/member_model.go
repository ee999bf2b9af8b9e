package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberModel: 클럽 회원. 탈퇴는 soft delete (member_deleted_at).
// 탈퇴 회원의 포인트 내역은 잔액 프로젝션에서 제외된다.
type MemberModel struct {
	MemberID     uuid.UUID `gorm:"column:member_id;type:uuid;primaryKey" json:"member_id"`
	MemberClubID uuid.UUID `gorm:"column:member_club_id;type:uuid;not null;index" json:"member_club_id"`

	MemberName  string  `gorm:"column:member_name;type:varchar(60);not null" json:"member_name"`
	MemberPhone *string `gorm:"column:member_phone;type:varchar(20)" json:"member_phone,omitempty"`
	MemberRole  string  `gorm:"column:member_role;type:varchar(20);not null;default:'member'" json:"member_role"`

	MemberJoinedAt time.Time `gorm:"column:member_joined_at;type:date;not null" json:"member_joined_at"`
	MemberIsActive bool      `gorm:"column:member_is_active;not null;default:true" json:"member_is_active"`

	MemberCreatedAt time.Time  `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt *time.Time `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at,omitempty"`
	MemberDeletedAt *time.Time `gorm:"column:member_deleted_at;type:timestamptz;index" json:"member_deleted_at,omitempty"`
}

func (MemberModel) TableName() string { return "members" }

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.MemberID == uuid.Nil {
		m.MemberID = uuid.New()
	}
	if m.MemberJoinedAt.IsZero() {
		m.MemberJoinedAt = time.Now().UTC()
	}
	return nil
}

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("member_deleted_at IS NULL")
}

func ScopeByClub(clubID uuid.UUID) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("member_club_id = ?", clubID)
	}
}
