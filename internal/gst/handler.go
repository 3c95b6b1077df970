package gst

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// LookupHandler answers GET /gst/lookup?hsn_code=...&taxable_value=...&interstate=bool
// with the resolved rate and the component split for an exclusive amount.
func LookupHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		hsn := strings.TrimSpace(c.Query("hsn_code"))
		if hsn == "" {
			return fiber.NewError(fiber.StatusBadRequest, "hsn_code is required")
		}

		rate := RateForHSN(hsn)

		taxable := decimal.Zero
		if s := c.Query("taxable_value"); s != "" {
			var err error
			taxable, err = decimal.NewFromString(s)
			if err != nil || taxable.IsNegative() {
				return fiber.NewError(fiber.StatusBadRequest, "taxable_value must be a non-negative number")
			}
		}

		tax := TaxOnExclusive(taxable, rate)
		split := Split(rate, tax, c.QueryBool("interstate", false))

		return c.JSON(fiber.Map{
			"hsn_code":      hsn,
			"rate":          rate,
			"taxable_value": taxable,
			"tax_amount":    tax,
			"cgst":          split.CGST,
			"sgst":          split.SGST,
			"igst":          split.IGST,
		})
	}
}
