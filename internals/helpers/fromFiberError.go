package helper

import "github.com/gofiber/fiber/v2"

// FromFiberError: Transaction 안에서 반환된 error(대개 *fiber.Error)를
// 일관된 JSON 응답으로 변환. *fiber.Error가 아니면 500 fallback.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return Error(c, fe.Code, fe.Message)
	}
	return Error(c, fiber.StatusInternalServerError, err.Error())
}
