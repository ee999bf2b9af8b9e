package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "bowlingclub_backend/internals/features/finance/fundledger/controller"
	middlewares "bowlingclub_backend/internals/middlewares"
)

// 장부 + 잔액 스냅샷 (admin 이상)
func FundLedgerAdminRoutes(r fiber.Router, db *gorm.DB) {
	ledger := controller.NewFundLedgerController(db)
	balance := controller.NewFundBalanceController(db)
	mut := middlewares.MutationRateLimiter()

	g := r.Group("/:club_id/finance/fund-ledger")
	g.Get("/", ledger.List)
	g.Post("/", mut, ledger.Create)
	g.Put("/:id", mut, ledger.Update)
	g.Delete("/:id", mut, ledger.Delete)

	b := r.Group("/:club_id/finance/fund-balance")
	b.Get("/", balance.Get)
	b.Post("/recompute", mut, balance.Recompute)
}
