package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	fundSvc "bowlingclub_backend/internals/features/finance/fundledger/service"
	dto "bowlingclub_backend/internals/features/finance/points/dto"
	model "bowlingclub_backend/internals/features/finance/points/model"
	helper "bowlingclub_backend/internals/helpers"
)

type PointController struct {
	DB *gorm.DB
}

func NewPointController(db *gorm.DB) *PointController {
	return &PointController{DB: db}
}

/* ======================= CREATE (manual) ======================= */
// POST /api/a/:club_id/finance/points
func (h *PointController) Create(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	var req dto.CreatePointRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(clubID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "포인트 저장 실패")
	}

	h.reproject(clubID)

	return helper.JsonCreated(c, "포인트 내역이 등록되었습니다", m)
}

/* ======================= LIST ======================= */
// GET /api/a/:club_id/finance/points?member_id=&page=&per_page=
func (h *PointController) List(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.PointModel{}).
		Scopes(model.ScopeByClub(clubID))

	if s := strings.TrimSpace(c.Query("member_id")); s != "" {
		memberID, perr := uuid.Parse(s)
		if perr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "member_id 형식 오류")
		}
		base = base.Scopes(model.ScopeByMember(memberID))
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.PointModel
	if err := base.
		Order("point_date DESC, point_created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", list, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ======================= MEMBER BALANCE ======================= */
// GET /api/a/:club_id/finance/points/balance/:member_id
// 잔액 = Σ(적립+보너스) − Σ(사용), 시간순 합이므로 순서 무관
func (h *PointController) MemberBalance(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}
	memberID, perr := uuid.Parse(strings.TrimSpace(c.Params("member_id")))
	if perr != nil {
		return fiber.NewError(fiber.StatusBadRequest, "member_id 형식 오류")
	}

	var rows []model.PointModel
	if err := h.DB.
		Scopes(model.ScopeByClub(clubID), model.ScopeByMember(memberID)).
		Order("point_date ASC, point_created_at ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var balance int64
	for _, r := range rows {
		balance += r.SignedDelta()
	}

	return helper.JsonOK(c, "OK", dto.MemberPointBalanceResponse{MemberID: memberID, Balance: balance})
}

/* ======================= UPDATE (manual) ======================= */
// PUT /api/a/:club_id/finance/points/:id
func (h *PointController) Update(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID가 비어 있습니다")
	}

	var req dto.UpdatePointRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var curr model.PointModel
	if err := h.DB.
		Where("point_id = ? AND point_club_id = ?", idStr, clubID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "포인트 내역을 찾을 수 없습니다")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// 결제 파생 행은 직접 수정 금지
	if curr.PointPaymentID != nil {
		return fiber.NewError(fiber.StatusConflict, "결제 파생 포인트 행은 직접 수정할 수 없습니다")
	}

	patch := map[string]interface{}{}
	if req.PointType != nil {
		patch["point_type"] = *req.PointType
	}
	if req.PointAmount != nil {
		patch["point_amount"] = *req.PointAmount
	}
	if req.PointReason != nil {
		patch["point_reason"] = *req.PointReason
	}
	if req.PointDate != nil {
		date, derr := time.Parse("2006-01-02", *req.PointDate)
		if derr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "point_date 형식 오류 (YYYY-MM-DD)")
		}
		patch["point_date"] = date
	}
	if req.PointNote != nil {
		patch["point_note"] = *req.PointNote
	}

	if len(patch) == 0 {
		return helper.JsonOK(c, "변경 사항 없음", curr)
	}

	if err := h.DB.Model(&model.PointModel{}).
		Where("point_id = ?", curr.PointID).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "포인트 수정 실패")
	}

	h.reproject(clubID)

	var updated model.PointModel
	if err := h.DB.Where("point_id = ?", curr.PointID).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "포인트 내역이 수정되었습니다", curr)
	}
	return helper.JsonUpdated(c, "포인트 내역이 수정되었습니다", updated)
}

/* ======================= DELETE (manual) ======================= */
// DELETE /api/a/:club_id/finance/points/:id
func (h *PointController) Delete(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID가 비어 있습니다")
	}

	var curr model.PointModel
	if err := h.DB.
		Where("point_id = ? AND point_club_id = ?", idStr, clubID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "포인트 내역을 찾을 수 없습니다")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if curr.PointPaymentID != nil {
		return fiber.NewError(fiber.StatusConflict, "결제 파생 포인트 행은 결제 삭제로만 정리됩니다")
	}

	if err := h.DB.Delete(&curr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "포인트 삭제 실패")
	}

	h.reproject(clubID)

	return helper.JsonDeleted(c, "포인트 내역이 삭제되었습니다", fiber.Map{"point_id": curr.PointID})
}

func (h *PointController) reproject(clubID uuid.UUID) {
	if err := fundSvc.Recompute(h.DB, clubID); err != nil {
		log.Printf("[FUND-SNAPSHOT] point mutation club=%s err=%v", clubID, err)
	}
}
