package helper

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParseIDParam validates the :id path parameter as an integer. A
// non-integer id is a client error, not a lookup miss.
func ParseIDParam(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid id parameter")
	}
	return id, nil
}

// ParseLimitQuery reads the optional ?limit= query parameter. Absent
// means no cap (0); anything that is not a positive integer is a 400.
func ParseLimitQuery(c *fiber.Ctx) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "limit must be a positive integer")
	}
	return limit, nil
}
