package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "bowlingclub_backend/internals/features/club/settings/model"
)

// ForClub: 설정 행이 없으면 기본값으로 채운 값을 돌려준다 (행 생성은 하지 않음).
func ForClub(db *gorm.DB, clubID uuid.UUID) (model.ClubSettingModel, error) {
	var row model.ClubSettingModel
	err := db.Where("club_setting_club_id = ?", clubID).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.ClubSettingModel{
				ClubSettingClubID:     clubID,
				ClubSettingMonthlyFee: model.DefaultMonthlyFee,
			}, nil
		}
		return model.ClubSettingModel{}, err
	}
	if row.ClubSettingMonthlyFee <= 0 {
		row.ClubSettingMonthlyFee = model.DefaultMonthlyFee
	}
	return row, nil
}

// MonthlyFee: 클럽의 월회비 금액 (조회 실패 시 기본값)
func MonthlyFee(db *gorm.DB, clubID uuid.UUID) int {
	s, err := ForClub(db, clubID)
	if err != nil {
		return model.DefaultMonthlyFee
	}
	return s.ClubSettingMonthlyFee
}
