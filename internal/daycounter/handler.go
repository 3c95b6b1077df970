package daycounter

import (
	"errors"

	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type DayCounterRequest struct {
	Date               string          `json:"date" validate:"required"`
	OpeningCashBalance decimal.Decimal `json:"opening_cash_balance"`
	SalesCash          decimal.Decimal `json:"sales_cash"`
	SalesUPI           decimal.Decimal `json:"sales_upi"`
	SalesCard          decimal.Decimal `json:"sales_card"`
	SalesCredit        decimal.Decimal `json:"sales_credit"`
	TotalExpensesCash  decimal.Decimal `json:"total_expenses_cash"`
	CashHandOver       decimal.Decimal `json:"cash_hand_over"`
	ActualClosingCash  decimal.Decimal `json:"actual_closing_cash"`
	Remarks            string          `json:"remarks"`
}

func apply(dc *models.DayCounter, body *DayCounterRequest) {
	dc.OpeningCashBalance = body.OpeningCashBalance
	dc.SalesCash = body.SalesCash
	dc.SalesUPI = body.SalesUPI
	dc.SalesCard = body.SalesCard
	dc.SalesCredit = body.SalesCredit
	dc.TotalExpensesCash = body.TotalExpensesCash
	dc.CashHandOver = body.CashHandOver
	dc.ActualClosingCash = body.ActualClosingCash
	dc.Remarks = body.Remarks
	Derive(dc)
}

// UpsertHandler creates the counter for a date or overwrites the existing row.
// One row per calendar day; re-posting a day is how corrections happen.
func UpsertHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DayCounterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}
		date, err := web.ParseDate("date", body.Date)
		if err != nil {
			return err
		}

		var dc models.DayCounter
		err = database.DB.Where("date = ?", date).First(&dc).Error
		created := false
		if errors.Is(err, gorm.ErrRecordNotFound) {
			dc = models.DayCounter{Date: date}
			created = true
		} else if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not load day counter")
		}

		apply(&dc, &body)

		if err := database.DB.Save(&dc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not save day counter")
		}
		if created {
			return c.Status(fiber.StatusCreated).JSON(dc)
		}
		return c.JSON(dc)
	}
}

func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, limit, offset := web.Pagination(c)

		q := database.DB.Model(&models.DayCounter{})
		from, err := web.DateQuery(c, "from_date")
		if err != nil {
			return err
		}
		to, err := web.DateQuery(c, "to_date")
		if err != nil {
			return err
		}
		if from != nil {
			q = q.Where("date >= ?", *from)
		}
		if to != nil {
			q = q.Where("date <= ?", *to)
		}

		var counters []models.DayCounter
		if err := q.Order("date DESC").Offset(offset).Limit(limit).Find(&counters).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list day counters")
		}
		return c.JSON(counters)
	}
}

// GetByDateHandler fetches the counter for a single date (path param
// YYYY-MM-DD).
func GetByDateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		date, err := web.ParseDate("date", c.Params("date"))
		if err != nil {
			return err
		}
		var dc models.DayCounter
		if err := database.DB.Where("date = ?", date).First(&dc).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "no day counter for that date")
		}
		return c.JSON(dc)
	}
}

// UpdateHandler edits an existing row by id and rederives the totals.
func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var body DayCounterRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}
		date, err := web.ParseDate("date", body.Date)
		if err != nil {
			return err
		}

		var dc models.DayCounter
		if err := database.DB.First(&dc, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "day counter not found")
		}

		// moving the row onto a date that already has one is rejected
		var clash int64
		database.DB.Model(&models.DayCounter{}).Where("date = ? AND id <> ?", date, id).Count(&clash)
		if clash > 0 {
			return fiber.NewError(fiber.StatusBadRequest, "a day counter already exists for that date")
		}

		dc.Date = date
		apply(&dc, &body)

		if err := database.DB.Save(&dc).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update day counter")
		}
		return c.JSON(dc)
	}
}

func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		res := database.DB.Delete(&models.DayCounter{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete day counter")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "day counter not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
