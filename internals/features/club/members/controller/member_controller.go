package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "bowlingclub_backend/internals/features/club/members/dto"
	model "bowlingclub_backend/internals/features/club/members/model"
	helper "bowlingclub_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

func NewMemberController(db *gorm.DB) *MemberController {
	return &MemberController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/:club_id/members
func (h *MemberController) Create(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	var req dto.CreateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(clubID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "회원 등록 실패")
	}

	return helper.JsonCreated(c, "회원이 등록되었습니다", m)
}

/* ======================= LIST ======================= */
// GET /api/a/:club_id/members?q=&page=&per_page=
func (h *MemberController) List(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.MemberModel{}).
		Scopes(model.ScopeByClub(clubID), model.ScopeAlive)

	if q := strings.TrimSpace(c.Query("q")); q != "" {
		base = base.Where("member_name LIKE ?", "%"+q+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.MemberModel
	if err := base.
		Order("member_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", list, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================= GET BY ID ======================= */
// GET /api/a/:club_id/members/:id
func (h *MemberController) GetByID(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}
	idStr := strings.TrimSpace(c.Params("id"))

	var row model.MemberModel
	if err := h.DB.
		Scopes(model.ScopeByClub(clubID), model.ScopeAlive).
		Where("member_id = ?", idStr).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "회원을 찾을 수 없습니다")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", row)
}

/* ======================= UPDATE ======================= */
// PUT /api/a/:club_id/members/:id
func (h *MemberController) Update(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}
	idStr := strings.TrimSpace(c.Params("id"))

	var req dto.UpdateMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	patch := map[string]interface{}{}
	if req.MemberName != nil {
		patch["member_name"] = *req.MemberName
	}
	if req.MemberPhone != nil {
		patch["member_phone"] = *req.MemberPhone
	}
	if req.MemberRole != nil {
		patch["member_role"] = *req.MemberRole
	}
	if req.MemberIsActive != nil {
		patch["member_is_active"] = *req.MemberIsActive
	}
	if len(patch) == 0 {
		return helper.JsonOK(c, "변경 사항 없음", nil)
	}

	res := h.DB.Model(&model.MemberModel{}).
		Scopes(model.ScopeByClub(clubID), model.ScopeAlive).
		Where("member_id = ?", idStr).
		Updates(patch)
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "회원 수정 실패")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "회원을 찾을 수 없습니다")
	}

	var updated model.MemberModel
	if err := h.DB.Where("member_id = ?", idStr).First(&updated).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "회원 정보가 수정되었습니다", updated)
}

/* ======================= DELETE (soft) ======================= */
// DELETE /api/a/:club_id/members/:id
// 탈퇴 처리 — 포인트 내역은 남지만 잔액 프로젝션에서 제외된다
func (h *MemberController) Delete(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}
	idStr := strings.TrimSpace(c.Params("id"))

	now := time.Now().UTC()
	res := h.DB.Model(&model.MemberModel{}).
		Scopes(model.ScopeByClub(clubID), model.ScopeAlive).
		Where("member_id = ?", idStr).
		Updates(map[string]interface{}{
			"member_deleted_at": now,
			"member_is_active":  false,
		})
	if res.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "회원 삭제 실패")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "회원을 찾을 수 없습니다")
	}

	return helper.JsonDeleted(c, "회원이 탈퇴 처리되었습니다", fiber.Map{"member_id": idStr})
}
