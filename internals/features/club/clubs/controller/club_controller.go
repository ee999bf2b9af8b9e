package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bowlingclub_backend/internals/features/club/clubs/dto"
	model "bowlingclub_backend/internals/features/club/clubs/model"
	helper "bowlingclub_backend/internals/helpers"
)

type ClubController struct {
	DB *gorm.DB
}

func NewClubController(db *gorm.DB) *ClubController {
	return &ClubController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/o/clubs
func (h *ClubController) Create(c *fiber.Ctx) error {
	var req dto.CreateClubRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return fiber.NewError(fiber.StatusConflict, "이미 사용 중인 slug입니다")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "클럽 생성 실패")
	}

	return helper.JsonCreated(c, "클럽이 생성되었습니다", m)
}

/* ======================= GET BY SLUG (public) ======================= */
// GET /api/public/clubs/:slug
func (h *ClubController) GetBySlug(c *fiber.Ctx) error {
	slug := strings.TrimSpace(c.Params("slug"))
	if slug == "" {
		return fiber.NewError(fiber.StatusBadRequest, "slug가 비어 있습니다")
	}

	var row model.ClubModel
	if err := h.DB.
		Scopes(model.ScopeAlive).
		Where("club_slug = ?", slug).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "클럽을 찾을 수 없습니다")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", row)
}

/* ======================= UPDATE ======================= */
// PUT /api/a/:club_id/club
func (h *ClubController) Update(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	var req dto.UpdateClubRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	patch := map[string]interface{}{}
	if req.ClubName != nil {
		patch["club_name"] = *req.ClubName
	}
	if req.ClubDescription != nil {
		patch["club_description"] = *req.ClubDescription
	}
	if req.ClubIsActive != nil {
		patch["club_is_active"] = *req.ClubIsActive
	}
	if len(patch) == 0 {
		return helper.JsonOK(c, "변경 사항 없음", nil)
	}

	res := h.DB.Model(&model.ClubModel{}).
		Scopes(model.ScopeAlive).
		Where("club_id = ?", clubID).
		Updates(patch)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "클럽 수정 실패")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "클럽을 찾을 수 없습니다")
	}

	var updated model.ClubModel
	if err := h.DB.Where("club_id = ?", clubID).First(&updated).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "클럽 정보가 수정되었습니다", updated)
}

/* ======================= DELETE (soft) ======================= */
// DELETE /api/o/clubs/:club_id
func (h *ClubController) Delete(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	res := h.DB.Model(&model.ClubModel{}).
		Scopes(model.ScopeAlive).
		Where("club_id = ?", clubID).
		Update("club_deleted_at", now)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "클럽 삭제 실패")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "클럽을 찾을 수 없습니다")
	}

	return helper.JsonDeleted(c, "클럽이 삭제되었습니다", fiber.Map{"club_id": clubID})
}
