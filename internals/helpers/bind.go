package helper

import (
	"bytes"
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// BindStrict decodes a JSON body rejecting unknown fields. Partial
// updates use it so a misspelled field is a 400 instead of a silent
// no-op. Uses encoding/json directly: the app-level sonic decoder has no
// unknown-field mode.
func BindStrict(c *fiber.Ctx, out interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(c.Body()))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body: "+err.Error())
	}
	return nil
}
