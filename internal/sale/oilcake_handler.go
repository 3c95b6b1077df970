package sale

import (
	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OilCakeSaleRequest struct {
	Date         string          `json:"date" validate:"required"`
	CustomerID   *uuid.UUID      `json:"customer_id"`
	CakeCategory string          `json:"cake_category" validate:"required"`
	Cake         string          `json:"cake" validate:"required"`
	Quantity     decimal.Decimal `json:"quantity" validate:"required"`
	PricePerKg   decimal.Decimal `json:"price_per_kg" validate:"required"`
	IsPaid       *bool           `json:"is_paid"`
	Remarks      string          `json:"remarks"`
}

func CreateOilCakeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body OilCakeSaleRequest
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
		if !body.Quantity.IsPositive() || !body.PricePerKg.IsPositive() {
			return fiber.NewError(fiber.StatusBadRequest, "quantity and price_per_kg must be positive")
		}

		ocs := models.OilCakeSale{
			Date:         date,
			CustomerID:   body.CustomerID,
			CakeCategory: body.CakeCategory,
			Cake:         body.Cake,
			Quantity:     body.Quantity,
			PricePerKg:   body.PricePerKg,
			Total:        body.Quantity.Mul(body.PricePerKg).Round(2),
			Remarks:      body.Remarks,
		}
		if body.IsPaid != nil {
			ocs.IsPaid = *body.IsPaid
		}
		if err := database.DB.Create(&ocs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create oil cake sale")
		}
		return c.Status(fiber.StatusCreated).JSON(ocs)
	}
}

func ListOilCakeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, limit, offset := web.Pagination(c)

		q := database.DB.Model(&models.OilCakeSale{}).Preload("Customer")
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
		if cat := c.Query("cake_category"); cat != "" {
			q = q.Where("cake_category = ?", cat)
		}
		customerID, err := web.UUIDQuery(c, "customer_id")
		if err != nil {
			return err
		}
		if customerID != nil {
			q = q.Where("customer_id = ?", *customerID)
		}
		if s := c.Query("is_paid"); s != "" {
			q = q.Where("is_paid = ?", c.QueryBool("is_paid"))
		}

		var sales []models.OilCakeSale
		if err := q.Order("date DESC").Offset(offset).Limit(limit).Find(&sales).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list oil cake sales")
		}
		return c.JSON(sales)
	}
}

func GetOilCakeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var ocs models.OilCakeSale
		if err := database.DB.Preload("Customer").First(&ocs, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "oil cake sale not found")
		}
		return c.JSON(ocs)
	}
}

// UpdateOilCakeHandler recomputes the total whenever quantity or price change.
func UpdateOilCakeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var body OilCakeSaleRequest
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
		if !body.Quantity.IsPositive() || !body.PricePerKg.IsPositive() {
			return fiber.NewError(fiber.StatusBadRequest, "quantity and price_per_kg must be positive")
		}

		var ocs models.OilCakeSale
		if err := database.DB.First(&ocs, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "oil cake sale not found")
		}

		ocs.Date = date
		ocs.CustomerID = body.CustomerID
		ocs.CakeCategory = body.CakeCategory
		ocs.Cake = body.Cake
		ocs.Quantity = body.Quantity
		ocs.PricePerKg = body.PricePerKg
		ocs.Total = body.Quantity.Mul(body.PricePerKg).Round(2)
		ocs.Remarks = body.Remarks
		if body.IsPaid != nil {
			ocs.IsPaid = *body.IsPaid
		}

		if err := database.DB.Save(&ocs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update oil cake sale")
		}
		return c.JSON(ocs)
	}
}

func DeleteOilCakeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		res := database.DB.Delete(&models.OilCakeSale{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete oil cake sale")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "oil cake sale not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
