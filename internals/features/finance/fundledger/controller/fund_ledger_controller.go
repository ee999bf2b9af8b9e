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

	dto "bowlingclub_backend/internals/features/finance/fundledger/dto"
	model "bowlingclub_backend/internals/features/finance/fundledger/model"
	svc "bowlingclub_backend/internals/features/finance/fundledger/service"
	helper "bowlingclub_backend/internals/helpers"
)

type FundLedgerController struct {
	DB *gorm.DB
}

func NewFundLedgerController(db *gorm.DB) *FundLedgerController {
	return &FundLedgerController{DB: db}
}

/* ======================= LIST (읽기 시 정리 포함) ======================= */
// GET /api/a/:club_id/finance/fund-ledger?from_month=YYYY-MM
func (h *FundLedgerController) List(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	fromMonth := strings.TrimSpace(c.Query("from_month"))
	if fromMonth != "" {
		if _, err := helper.ParseMonth(fromMonth); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "from_month 형식 오류 (YYYY-MM)")
		}
	}

	rows, err := svc.CleanupAndList(h.DB, clubID, fromMonth)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", rows)
}

/* ======================= CREATE (manual) ======================= */
// POST /api/a/:club_id/finance/fund-ledger
func (h *FundLedgerController) Create(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	var req dto.CreateFundLedgerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(clubID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "장부 저장 실패")
	}

	h.reproject(clubID)

	return helper.JsonCreated(c, "장부 항목이 등록되었습니다", m)
}

/* ======================= UPDATE (manual) ======================= */
// PUT /api/a/:club_id/finance/fund-ledger/:id
func (h *FundLedgerController) Update(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID가 비어 있습니다")
	}

	var req dto.UpdateFundLedgerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var curr model.FundLedgerModel
	if err := h.DB.
		Where("fund_ledger_id = ? AND fund_ledger_club_id = ?", idStr, clubID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "장부 항목을 찾을 수 없습니다")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// 결제 파생 행은 직접 수정 금지 — 결제를 수정하면 동기화가 따라온다
	if curr.FundLedgerPaymentID != nil {
		return fiber.NewError(fiber.StatusConflict, "결제 파생 장부 행은 직접 수정할 수 없습니다")
	}

	patch := map[string]interface{}{}
	if req.FundLedgerEntryType != nil {
		patch["fund_ledger_entry_type"] = *req.FundLedgerEntryType
	}
	if req.FundLedgerAmount != nil {
		patch["fund_ledger_amount"] = *req.FundLedgerAmount
	}
	if req.FundLedgerEventDate != nil {
		date, perr := time.Parse("2006-01-02", *req.FundLedgerEventDate)
		if perr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "fund_ledger_event_date 형식 오류 (YYYY-MM-DD)")
		}
		patch["fund_ledger_event_date"] = date
		patch["fund_ledger_month"] = date.Format("2006-01")
	}
	if req.FundLedgerNote != nil {
		patch["fund_ledger_note"] = *req.FundLedgerNote
	}

	if len(patch) == 0 {
		return helper.JsonOK(c, "변경 사항 없음", curr)
	}

	if err := h.DB.Model(&model.FundLedgerModel{}).
		Where("fund_ledger_id = ?", curr.FundLedgerID).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "장부 수정 실패")
	}

	h.reproject(clubID)

	var updated model.FundLedgerModel
	if err := h.DB.Where("fund_ledger_id = ?", curr.FundLedgerID).First(&updated).Error; err != nil {
		return helper.JsonUpdated(c, "장부 항목이 수정되었습니다", curr)
	}
	return helper.JsonUpdated(c, "장부 항목이 수정되었습니다", updated)
}

/* ======================= DELETE (manual) ======================= */
// DELETE /api/a/:club_id/finance/fund-ledger/:id
func (h *FundLedgerController) Delete(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID가 비어 있습니다")
	}

	var curr model.FundLedgerModel
	if err := h.DB.
		Where("fund_ledger_id = ? AND fund_ledger_club_id = ?", idStr, clubID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "장부 항목을 찾을 수 없습니다")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if curr.FundLedgerPaymentID != nil {
		return fiber.NewError(fiber.StatusConflict, "결제 파생 장부 행은 직접 삭제할 수 없습니다")
	}

	if err := h.DB.Delete(&curr).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "장부 삭제 실패")
	}

	h.reproject(clubID)

	return helper.JsonDeleted(c, "장부 항목이 삭제되었습니다", fiber.Map{"fund_ledger_id": curr.FundLedgerID})
}

// 프로젝션 실패는 삼킨다 — 캐시는 직전 값 유지
func (h *FundLedgerController) reproject(clubID uuid.UUID) {
	if err := svc.Recompute(h.DB, clubID); err != nil {
		log.Printf("[FUND-SNAPSHOT] manual ledger club=%s err=%v", clubID, err)
	}
}
