package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClubModel: 볼링 클럽. 모든 회계/포인트/점수 데이터의 소유자.
type ClubModel struct {
	ClubID   uuid.UUID `gorm:"column:club_id;type:uuid;primaryKey" json:"club_id"`
	ClubName string    `gorm:"column:club_name;type:varchar(100);not null" json:"club_name"`
	ClubSlug string    `gorm:"column:club_slug;type:varchar(100);not null;uniqueIndex" json:"club_slug"`

	ClubDescription *string `gorm:"column:club_description;type:text" json:"club_description,omitempty"`
	ClubIsActive    bool    `gorm:"column:club_is_active;not null;default:true" json:"club_is_active"`

	ClubCreatedAt time.Time  `gorm:"column:club_created_at;autoCreateTime" json:"club_created_at"`
	ClubUpdatedAt *time.Time `gorm:"column:club_updated_at;autoUpdateTime" json:"club_updated_at,omitempty"`
	ClubDeletedAt *time.Time `gorm:"column:club_deleted_at;type:timestamptz;index" json:"club_deleted_at,omitempty"`
}

func (ClubModel) TableName() string { return "clubs" }

func (m *ClubModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClubID == uuid.Nil {
		m.ClubID = uuid.New()
	}
	return nil
}

func ScopeAlive(db *gorm.DB) *gorm.DB {
	return db.Where("club_deleted_at IS NULL")
}
