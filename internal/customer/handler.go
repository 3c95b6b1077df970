package customer

import (
	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
)

type CreateCustomerRequest struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" validate:"omitempty,email"`
	GSTNumber string `json:"gst_number"`
	Address   string `json:"address"`
}

type UpdateCustomerRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" validate:"omitempty,email"`
	GSTNumber *string `json:"gst_number"`
	Address   *string `json:"address"`
	IsActive  *bool   `json:"is_active"`
}

func CreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}

		customer := models.Customer{
			Name:      body.Name,
			Phone:     body.Phone,
			Email:     body.Email,
			GSTNumber: body.GSTNumber,
			Address:   body.Address,
			IsActive:  true,
		}
		if err := database.DB.Create(&customer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not create customer")
		}
		return c.Status(fiber.StatusCreated).JSON(customer)
	}
}

func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, limit, offset := web.Pagination(c)

		q := database.DB.Model(&models.Customer{})
		if c.QueryBool("active_only", true) {
			q = q.Where("is_active = ?", true)
		}
		if search := c.Query("search"); search != "" {
			q = q.Where("name ILIKE ? OR phone ILIKE ?", "%"+search+"%", "%"+search+"%")
		}

		var customers []models.Customer
		if err := q.Order("name").Offset(offset).Limit(limit).Find(&customers).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list customers")
		}
		return c.JSON(customers)
	}
}

func GetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "customer not found")
		}
		return c.JSON(customer)
	}
}

func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var body UpdateCustomerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}

		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "customer not found")
		}

		if body.Name != nil {
			customer.Name = *body.Name
		}
		if body.Phone != nil {
			customer.Phone = *body.Phone
		}
		if body.Email != nil {
			customer.Email = *body.Email
		}
		if body.GSTNumber != nil {
			customer.GSTNumber = *body.GSTNumber
		}
		if body.Address != nil {
			customer.Address = *body.Address
		}
		if body.IsActive != nil {
			customer.IsActive = *body.IsActive
		}

		if err := database.DB.Save(&customer).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not update customer")
		}
		return c.JSON(customer)
	}
}

func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var customer models.Customer
		if err := database.DB.First(&customer, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "customer not found")
		}

		if c.QueryBool("hard_delete", false) {
			if err := database.DB.Delete(&customer).Error; err != nil {
				return fiber.NewError(fiber.StatusConflict, "customer is referenced by other records")
			}
		} else {
			customer.IsActive = false
			if err := database.DB.Save(&customer).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "could not delete customer")
			}
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
