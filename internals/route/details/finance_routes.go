// file: internals/route/details/finance_routes.go
package details

import (
	FundLedgerRoute "bowlingclub_backend/internals/features/finance/fundledger/route"
	PaymentRoute "bowlingclub_backend/internals/features/finance/payments/route"
	PointRoute "bowlingclub_backend/internals/features/finance/points/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	PaymentRoute.PaymentAdminRoutes(r, db)
	FundLedgerRoute.FundLedgerAdminRoutes(r, db)
	PointRoute.PointAdminRoutes(r, db)
}
