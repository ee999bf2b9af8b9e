package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// 월회비 기본값 (관리자가 바꾸기 전까지)
const DefaultMonthlyFee = 5000

// ClubSettingModel: 클럽당 1행 설정.
// 회계 기능 사용 여부(fund flag), 월회비 금액, 잔액 리포트 표시 시작 월.
type ClubSettingModel struct {
	ClubSettingID     uuid.UUID `gorm:"column:club_setting_id;type:uuid;primaryKey" json:"club_setting_id"`
	ClubSettingClubID uuid.UUID `gorm:"column:club_setting_club_id;type:uuid;not null;uniqueIndex" json:"club_setting_club_id"`

	ClubSettingMonthlyFee  int  `gorm:"column:club_setting_monthly_fee;not null;default:5000" json:"club_setting_monthly_fee"`
	ClubSettingFundEnabled bool `gorm:"column:club_setting_fund_enabled;not null;default:false" json:"club_setting_fund_enabled"`

	// 잔액 시계열 표시 시작 월 ("YYYY-MM", 빈 값이면 전체 표시)
	ClubSettingFundStartMonth string `gorm:"column:club_setting_fund_start_month;type:varchar(7);not null;default:''" json:"club_setting_fund_start_month"`

	ClubSettingCreatedAt time.Time  `gorm:"column:club_setting_created_at;autoCreateTime" json:"club_setting_created_at"`
	ClubSettingUpdatedAt *time.Time `gorm:"column:club_setting_updated_at;autoUpdateTime" json:"club_setting_updated_at,omitempty"`
}

func (ClubSettingModel) TableName() string { return "club_settings" }

func (m *ClubSettingModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClubSettingID == uuid.Nil {
		m.ClubSettingID = uuid.New()
	}
	return nil
}
