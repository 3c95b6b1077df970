package expense

import (
	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ExpenseRequest struct {
	Date                 string          `json:"date" validate:"required"`
	Name                 string          `json:"name" validate:"required"`
	Description          string          `json:"description"`
	ExpenseCategoryID    *uuid.UUID      `json:"expense_category_id"`
	ExpenseSubcategoryID *uuid.UUID      `json:"expense_subcategory_id"`
	VendorID             *uuid.UUID      `json:"vendor_id"`
	AmountCash           decimal.Decimal `json:"amount_cash"`
	AmountUPI            decimal.Decimal `json:"amount_upi"`
	AmountCard           decimal.Decimal `json:"amount_card"`
	AmountCredit         decimal.Decimal `json:"amount_credit"`
}

// applyTotals derives the expense totals: everything recorded is the total,
// cash/UPI/card are settled, credit is outstanding.
func applyTotals(e *models.Expense, body *ExpenseRequest) {
	e.AmountCash = body.AmountCash
	e.AmountUPI = body.AmountUPI
	e.AmountCard = body.AmountCard
	e.AmountCredit = body.AmountCredit
	e.TotalPaid = body.AmountCash.Add(body.AmountUPI).Add(body.AmountCard)
	e.TotalAmount = e.TotalPaid.Add(body.AmountCredit)
	e.BalanceDue = body.AmountCredit
}

func validateRefs(body *ExpenseRequest) error {
	if body.ExpenseCategoryID != nil {
		var count int64
		database.DB.Model(&models.ExpenseCategory{}).Where("id = ?", *body.ExpenseCategoryID).Count(&count)
		if count == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "expense category not found")
		}
	}
	if body.ExpenseSubcategoryID != nil {
		var sub models.ExpenseSubcategory
		if err := database.DB.First(&sub, "id = ?", *body.ExpenseSubcategoryID).Error; err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "expense subcategory not found")
		}
		if body.ExpenseCategoryID != nil && sub.CategoryID != *body.ExpenseCategoryID {
			return fiber.NewError(fiber.StatusBadRequest, "subcategory does not belong to category")
		}
	}
	if body.VendorID != nil {
		var count int64
		database.DB.Model(&models.Vendor{}).Where("id = ?", *body.VendorID).Count(&count)
		if count == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "vendor not found")
		}
	}
	return nil
}

func CreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ExpenseRequest
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
		if err := validateRefs(&body); err != nil {
			return err
		}

		expense := models.Expense{
			Date:                 date,
			Name:                 body.Name,
			Description:          body.Description,
			ExpenseCategoryID:    body.ExpenseCategoryID,
			ExpenseSubcategoryID: body.ExpenseSubcategoryID,
			VendorID:             body.VendorID,
		}
		applyTotals(&expense, &body)

		if err := database.DB.Create(&expense).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create expense")
		}
		return c.Status(fiber.StatusCreated).JSON(expense)
	}
}

func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, limit, offset := web.Pagination(c)

		q := database.DB.Model(&models.Expense{}).
			Preload("ExpenseCategory").Preload("ExpenseSubcategory").Preload("Vendor")

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
		categoryID, err := web.UUIDQuery(c, "category_id")
		if err != nil {
			return err
		}
		if categoryID != nil {
			q = q.Where("expense_category_id = ?", *categoryID)
		}
		vendorID, err := web.UUIDQuery(c, "vendor_id")
		if err != nil {
			return err
		}
		if vendorID != nil {
			q = q.Where("vendor_id = ?", *vendorID)
		}

		var expenses []models.Expense
		if err := q.Order("date DESC, created_at DESC").Offset(offset).Limit(limit).Find(&expenses).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list expenses")
		}
		return c.JSON(expenses)
	}
}

func GetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var expense models.Expense
		if err := database.DB.
			Preload("ExpenseCategory").Preload("ExpenseSubcategory").Preload("Vendor").
			First(&expense, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "expense not found")
		}
		return c.JSON(expense)
	}
}

func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var body ExpenseRequest
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
		if err := validateRefs(&body); err != nil {
			return err
		}

		var expense models.Expense
		if err := database.DB.First(&expense, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "expense not found")
		}

		expense.Date = date
		expense.Name = body.Name
		expense.Description = body.Description
		expense.ExpenseCategoryID = body.ExpenseCategoryID
		expense.ExpenseSubcategoryID = body.ExpenseSubcategoryID
		expense.VendorID = body.VendorID
		applyTotals(&expense, &body)

		if err := database.DB.Save(&expense).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update expense")
		}
		return c.JSON(expense)
	}
}

func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		res := database.DB.Delete(&models.Expense{}, "id = ?", id)
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete expense")
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "expense not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
