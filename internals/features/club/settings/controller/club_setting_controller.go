package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bowlingclub_backend/internals/features/club/settings/dto"
	model "bowlingclub_backend/internals/features/club/settings/model"
	svc "bowlingclub_backend/internals/features/club/settings/service"
	helper "bowlingclub_backend/internals/helpers"
)

type ClubSettingController struct {
	DB *gorm.DB
}

func NewClubSettingController(db *gorm.DB) *ClubSettingController {
	return &ClubSettingController{DB: db}
}

/* ======================= GET ======================= */
// GET /api/a/:club_id/settings
// 행이 없으면 기본값을 내려준다
func (h *ClubSettingController) Get(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	setting, serr := svc.ForClub(h.DB, clubID)
	if serr != nil {
		return fiber.NewError(fiber.StatusInternalServerError, serr.Error())
	}

	return helper.JsonOK(c, "OK", setting)
}

/* ======================= UPSERT ======================= */
// PUT /api/a/:club_id/settings
func (h *ClubSettingController) Upsert(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpsertClubSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var row model.ClubSettingModel
	ferr := h.DB.Where("club_setting_club_id = ?", clubID).First(&row).Error

	switch {
	case ferr == nil:
		patch := map[string]interface{}{}
		if req.ClubSettingMonthlyFee != nil {
			patch["club_setting_monthly_fee"] = *req.ClubSettingMonthlyFee
		}
		if req.ClubSettingFundEnabled != nil {
			patch["club_setting_fund_enabled"] = *req.ClubSettingFundEnabled
		}
		if req.ClubSettingFundStartMonth != nil {
			patch["club_setting_fund_start_month"] = *req.ClubSettingFundStartMonth
		}
		if len(patch) == 0 {
			return helper.JsonOK(c, "변경 사항 없음", row)
		}
		if err := h.DB.Model(&model.ClubSettingModel{}).
			Where("club_setting_id = ?", row.ClubSettingID).
			Updates(patch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "설정 저장 실패")
		}

	case errors.Is(ferr, gorm.ErrRecordNotFound):
		row = model.ClubSettingModel{
			ClubSettingClubID:     clubID,
			ClubSettingMonthlyFee: model.DefaultMonthlyFee,
		}
		if req.ClubSettingMonthlyFee != nil {
			row.ClubSettingMonthlyFee = *req.ClubSettingMonthlyFee
		}
		if req.ClubSettingFundEnabled != nil {
			row.ClubSettingFundEnabled = *req.ClubSettingFundEnabled
		}
		if req.ClubSettingFundStartMonth != nil {
			row.ClubSettingFundStartMonth = *req.ClubSettingFundStartMonth
		}
		if err := h.DB.Create(&row).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "설정 저장 실패")
		}

	default:
		return fiber.NewError(fiber.StatusInternalServerError, ferr.Error())
	}

	updated, uerr := svc.ForClub(h.DB, clubID)
	if uerr != nil {
		return fiber.NewError(fiber.StatusInternalServerError, uerr.Error())
	}
	return helper.JsonUpdated(c, "설정이 저장되었습니다", updated)
}
