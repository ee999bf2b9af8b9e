package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	svc "bowlingclub_backend/internals/features/finance/fundledger/service"
	helper "bowlingclub_backend/internals/helpers"
)

type FundBalanceController struct {
	DB *gorm.DB
}

func NewFundBalanceController(db *gorm.DB) *FundBalanceController {
	return &FundBalanceController{DB: db}
}

/* ======================= BALANCE SNAPSHOT ======================= */
// GET /api/a/:club_id/finance/fund-balance
// 캐시 → 없으면 1회 재계산 → 그래도 없으면 zero 스냅샷. 조회는 실패하지 않는다.
func (h *FundBalanceController) Get(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	snap := svc.Get(h.DB, clubID)
	return helper.JsonOK(c, "OK", snap)
}

/* ======================= FORCE RECOMPUTE ======================= */
// POST /api/a/:club_id/finance/fund-balance/recompute
// 감사/복구용 수동 트리거
func (h *FundBalanceController) Recompute(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDParam(c)
	if err != nil {
		return err
	}

	if err := svc.Recompute(h.DB, clubID); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "잔액 재계산 실패: "+err.Error())
	}

	return helper.JsonOK(c, "잔액이 재계산되었습니다", svc.Get(h.DB, clubID))
}
