package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	fundSvc "bowlingclub_backend/internals/features/finance/fundledger/service"
	dto "bowlingclub_backend/internals/features/finance/payments/dto"
	model "bowlingclub_backend/internals/features/finance/payments/model"
	svc "bowlingclub_backend/internals/features/finance/payments/service"
	helper "bowlingclub_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /api/a/:club_id/finance/payments
func (h *PaymentController) Create(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	m := req.ToModel(clubID)
	if err := h.DB.Create(m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "결제 저장 실패")
	}

	// 파생 상태 동기화 — 실패해도 결제 저장은 유지, 경고만 동봉
	out := svc.SyncAfterWrite(h.DB, m)

	return helper.JsonCreated(c, "결제가 등록되었습니다", dto.PaymentSyncResponse{Payment: *m, Sync: out})
}

/* ======================= GET BY ID ======================= */
// GET /api/a/:club_id/finance/payments/:id
func (h *PaymentController) GetByID(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID가 비어 있습니다")
	}

	var row model.PaymentModel
	if err := h.DB.
		Where("payment_id = ? AND payment_club_id = ?", idStr, clubID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "결제를 찾을 수 없습니다")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", row)
}

/* ======================= LIST ======================= */
// GET /api/a/:club_id/finance/payments?member_id=&type=&month=&is_paid=&limit=&offset=
func (h *PaymentController) List(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	var q dto.ListPaymentQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "잘못된 쿼리입니다")
	}
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	base := h.DB.Model(&model.PaymentModel{}).
		Scopes(model.ScopeByClub(clubID))

	if q.MemberID != nil {
		base = base.Where("payment_member_id = ?", *q.MemberID)
	}
	if q.Type != nil && *q.Type != "" {
		base = base.Where("payment_type = ?", *q.Type)
	}
	if q.Month != nil && *q.Month != "" {
		base = base.Where("payment_month = ?", *q.Month)
	}
	if q.IsPaid != nil {
		base = base.Where("payment_is_paid = ?", *q.IsPaid)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.PaymentModel
	if err := base.
		Order("payment_date DESC, payment_created_at DESC").
		Limit(q.Limit).
		Offset(q.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.PaymentListResponse{Items: list, Total: total})
}

/* ======================= UPDATE (PUT, partial) ======================= */
// PUT /api/a/:club_id/finance/payments/:id
func (h *PaymentController) Update(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID가 비어 있습니다")
	}

	var req dto.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "잘못된 요청 본문입니다")
	}
	if err := validator.New().Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var curr model.PaymentModel
	if err := h.DB.
		Where("payment_id = ? AND payment_club_id = ?", idStr, clubID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "결제를 찾을 수 없습니다")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	patch := map[string]interface{}{}
	if req.PaymentMemberID != nil {
		patch["payment_member_id"] = *req.PaymentMemberID
	}
	if req.PaymentType != nil {
		patch["payment_type"] = *req.PaymentType
	}
	if req.PaymentAmount != nil {
		patch["payment_amount"] = *req.PaymentAmount
	}
	if req.PaymentDate != nil {
		date, perr := time.Parse("2006-01-02", *req.PaymentDate)
		if perr != nil {
			return fiber.NewError(fiber.StatusBadRequest, "payment_date 형식 오류 (YYYY-MM-DD)")
		}
		patch["payment_date"] = date
		// month는 date에서 파생 — 독립 수정 금지
		patch["payment_month"] = date.Format("2006-01")
	}
	if req.PaymentIsPaid != nil {
		patch["payment_is_paid"] = *req.PaymentIsPaid
	}
	if req.PaymentIsExempt != nil {
		patch["payment_is_exempt"] = *req.PaymentIsExempt
	}
	if req.PaymentPaidWithPoints != nil {
		patch["payment_paid_with_points"] = *req.PaymentPaidWithPoints
	}
	if req.PaymentNote != nil {
		patch["payment_note"] = *req.PaymentNote
	}

	if len(patch) == 0 {
		return helper.JsonOK(c, "변경 사항 없음", curr)
	}

	if err := h.DB.Model(&model.PaymentModel{}).
		Where("payment_id = ? AND payment_club_id = ?", idStr, clubID).
		Updates(patch).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "결제 수정 실패")
	}

	var updated model.PaymentModel
	if err := h.DB.
		Where("payment_id = ? AND payment_club_id = ?", idStr, clubID).
		First(&updated).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := svc.SyncAfterWrite(h.DB, &updated)

	return helper.JsonUpdated(c, "결제가 수정되었습니다", dto.PaymentSyncResponse{Payment: updated, Sync: out})
}

/* ======================= DELETE ======================= */
// DELETE /api/a/:club_id/finance/payments/:id
// 파생 행(장부/포인트)을 먼저 지우고 결제를 지운다 — 같은 트랜잭션.
func (h *PaymentController) Delete(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}
	idStr := strings.TrimSpace(c.Params("id"))
	if idStr == "" {
		return fiber.NewError(fiber.StatusBadRequest, "ID가 비어 있습니다")
	}

	var curr model.PaymentModel
	if err := h.DB.
		Where("payment_id = ? AND payment_club_id = ?", idStr, clubID).
		First(&curr).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "결제를 찾을 수 없습니다")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := svc.DeleteLedgerRows(tx, curr.PaymentID); err != nil {
			return err
		}
		if err := svc.DeletePointRows(tx, curr.PaymentID); err != nil {
			return err
		}
		return tx.Delete(&curr).Error
	}); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "결제 삭제 실패")
	}

	// 재계산 실패는 삼킨다 — 다음 쓰기에서 수렴
	if err := fundSvc.Recompute(h.DB, clubID); err != nil {
		log.Printf("[FUND-SNAPSHOT] after delete club=%s err=%v", clubID, err)
	}

	return helper.JsonDeleted(c, "결제가 삭제되었습니다", fiber.Map{"payment_id": curr.PaymentID})
}
