package manufacturing

import (
	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/logging"
	"github.com/santoshmvhs/purebornmvp/internal/models"
	"github.com/santoshmvhs/purebornmvp/internal/web"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type InputRequest struct {
	RawMaterialID  uuid.UUID       `json:"raw_material_id" validate:"required"`
	Quantity       decimal.Decimal `json:"quantity" validate:"required"`
	Unit           string          `json:"unit" validate:"required"`
	Rate           decimal.Decimal `json:"rate" validate:"required"`
	PurchaseItemID *uuid.UUID      `json:"purchase_item_id"`
}

type OutputRequest struct {
	ProductID           uuid.UUID        `json:"product_id" validate:"required"`
	ProductVariantID    *uuid.UUID       `json:"product_variant_id"`
	QuantityKg          *decimal.Decimal `json:"quantity_kg"`
	QuantityLtr         *decimal.Decimal `json:"quantity_ltr"`
	Unit                string           `json:"unit"`
	TotalOutputQuantity *decimal.Decimal `json:"total_output_quantity"`
	UnitCost            *decimal.Decimal `json:"unit_cost"`
	TotalCost           *decimal.Decimal `json:"total_cost"`
	YieldPercentage     *decimal.Decimal `json:"yield_percentage"`
}

type BatchRequest struct {
	BatchCode string          `json:"batch_code" validate:"required"`
	BatchDate string          `json:"batch_date" validate:"required"`
	Notes     string          `json:"notes"`
	Inputs    []InputRequest  `json:"inputs" validate:"required,min=1,dive"`
	Outputs   []OutputRequest `json:"outputs" validate:"omitempty,dive"`
}

func buildInputs(tx *gorm.DB, reqs []InputRequest) ([]models.ManufacturingInput, error) {
	inputs := make([]models.ManufacturingInput, 0, len(reqs))
	for _, in := range reqs {
		if !in.Quantity.IsPositive() {
			return nil, fiber.NewError(fiber.StatusBadRequest, "input quantity must be positive")
		}
		var count int64
		tx.Model(&models.RawMaterial{}).Where("id = ?", in.RawMaterialID).Count(&count)
		if count == 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "raw material not found")
		}
		inputs = append(inputs, models.ManufacturingInput{
			RawMaterialID:  in.RawMaterialID,
			Quantity:       in.Quantity,
			Unit:           in.Unit,
			Rate:           in.Rate,
			Amount:         in.Quantity.Mul(in.Rate).Round(2),
			PurchaseItemID: in.PurchaseItemID,
		})
	}
	return inputs, nil
}

func buildOutputs(tx *gorm.DB, reqs []OutputRequest) ([]models.ManufacturingOutput, error) {
	outputs := make([]models.ManufacturingOutput, 0, len(reqs))
	for _, out := range reqs {
		var count int64
		tx.Model(&models.Product{}).Where("id = ?", out.ProductID).Count(&count)
		if count == 0 {
			return nil, fiber.NewError(fiber.StatusBadRequest, "output product not found")
		}
		if out.ProductVariantID != nil {
			tx.Model(&models.ProductVariant{}).Where("id = ?", *out.ProductVariantID).Count(&count)
			if count == 0 {
				return nil, fiber.NewError(fiber.StatusBadRequest, "output product variant not found")
			}
		}
		outputs = append(outputs, models.ManufacturingOutput{
			ProductID:           out.ProductID,
			ProductVariantID:    out.ProductVariantID,
			QuantityKg:          out.QuantityKg,
			QuantityLtr:         out.QuantityLtr,
			Unit:                out.Unit,
			TotalOutputQuantity: out.TotalOutputQuantity,
			UnitCost:            out.UnitCost,
			TotalCost:           out.TotalCost,
			YieldPercentage:     out.YieldPercentage,
		})
	}
	return outputs, nil
}

// recordMovements consumes raw materials (-OUT per input) and receives
// finished goods (+IN per output that names a variant and a quantity).
func recordMovements(tx *gorm.DB, batch *models.ManufacturingBatch) error {
	for i := range batch.Inputs {
		in := &batch.Inputs[i]
		mv := models.InventoryMovement{
			DateTime:       batch.BatchDate,
			ItemType:       models.ItemTypeRawMaterial,
			ItemID:         in.RawMaterialID,
			QuantityChange: in.Quantity.Neg(),
			Unit:           in.Unit,
			CostPerUnit:    &in.Rate,
			TotalCost:      &in.Amount,
			ReferenceType:  models.RefTypeManufacturingInput,
			ReferenceID:    &batch.ID,
		}
		if err := tx.Create(&mv).Error; err != nil {
			return err
		}
	}
	for i := range batch.Outputs {
		out := &batch.Outputs[i]
		if out.ProductVariantID == nil || out.TotalOutputQuantity == nil {
			continue
		}
		mv := models.InventoryMovement{
			DateTime:       batch.BatchDate,
			ItemType:       models.ItemTypeProductVariant,
			ItemID:         *out.ProductVariantID,
			QuantityChange: *out.TotalOutputQuantity,
			Unit:           "Unit",
			CostPerUnit:    out.UnitCost,
			TotalCost:      out.TotalCost,
			ReferenceType:  models.RefTypeManufacturingOutput,
			ReferenceID:    &batch.ID,
		}
		if err := tx.Create(&mv).Error; err != nil {
			return err
		}
	}
	return nil
}

func clearMovements(tx *gorm.DB, batchID uuid.UUID) error {
	return tx.Where("reference_type IN ? AND reference_id = ?",
		[]string{models.RefTypeManufacturingInput, models.RefTypeManufacturingOutput}, batchID).
		Delete(&models.InventoryMovement{}).Error
}

func CreateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body BatchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}
		batchDate, err := web.ParseDate("batch_date", body.BatchDate)
		if err != nil {
			return err
		}

		var batch models.ManufacturingBatch
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			var dup int64
			tx.Model(&models.ManufacturingBatch{}).Where("batch_code = ?", body.BatchCode).Count(&dup)
			if dup > 0 {
				return fiber.NewError(fiber.StatusBadRequest, "batch_code already exists")
			}

			inputs, err := buildInputs(tx, body.Inputs)
			if err != nil {
				return err
			}
			outputs, err := buildOutputs(tx, body.Outputs)
			if err != nil {
				return err
			}

			batch = models.ManufacturingBatch{
				BatchCode: body.BatchCode,
				BatchDate: batchDate,
				Notes:     body.Notes,
				Inputs:    inputs,
				Outputs:   outputs,
			}
			if err := tx.Create(&batch).Error; err != nil {
				return err
			}
			return recordMovements(tx, &batch)
		})
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return fe
			}
			logging.Error("manufacturing", "create", err, logrus.Fields{"batch_code": body.BatchCode})
			return fiber.NewError(fiber.StatusInternalServerError, "could not create batch")
		}
		return c.Status(fiber.StatusCreated).JSON(batch)
	}
}

func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, limit, offset := web.Pagination(c)

		q := database.DB.Model(&models.ManufacturingBatch{}).
			Preload("Inputs").Preload("Inputs.RawMaterial").
			Preload("Outputs").Preload("Outputs.Product").Preload("Outputs.ProductVariant")

		from, err := web.DateQuery(c, "from_date")
		if err != nil {
			return err
		}
		to, err := web.DateQuery(c, "to_date")
		if err != nil {
			return err
		}
		if from != nil {
			q = q.Where("batch_date >= ?", *from)
		}
		if to != nil {
			q = q.Where("batch_date <= ?", *to)
		}

		var batches []models.ManufacturingBatch
		if err := q.Order("batch_date DESC").Offset(offset).Limit(limit).Find(&batches).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "could not list batches")
		}
		return c.JSON(batches)
	}
}

func GetHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var batch models.ManufacturingBatch
		if err := database.DB.
			Preload("Inputs").Preload("Inputs.RawMaterial").
			Preload("Outputs").Preload("Outputs.Product").Preload("Outputs.ProductVariant").
			First(&batch, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "batch not found")
		}
		return c.JSON(batch)
	}
}

func UpdateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		var body BatchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := web.ValidateStruct(&body); err != nil {
			return err
		}
		batchDate, err := web.ParseDate("batch_date", body.BatchDate)
		if err != nil {
			return err
		}

		var batch models.ManufacturingBatch
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&batch, "id = ?", id).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "batch not found")
			}
			var dup int64
			tx.Model(&models.ManufacturingBatch{}).Where("batch_code = ? AND id <> ?", body.BatchCode, id).Count(&dup)
			if dup > 0 {
				return fiber.NewError(fiber.StatusBadRequest, "batch_code already exists")
			}

			if err := clearMovements(tx, batch.ID); err != nil {
				return err
			}
			if err := tx.Where("batch_id = ?", batch.ID).Delete(&models.ManufacturingInput{}).Error; err != nil {
				return err
			}
			if err := tx.Where("batch_id = ?", batch.ID).Delete(&models.ManufacturingOutput{}).Error; err != nil {
				return err
			}

			inputs, err := buildInputs(tx, body.Inputs)
			if err != nil {
				return err
			}
			outputs, err := buildOutputs(tx, body.Outputs)
			if err != nil {
				return err
			}

			batch.BatchCode = body.BatchCode
			batch.BatchDate = batchDate
			batch.Notes = body.Notes
			batch.Inputs = inputs
			batch.Outputs = outputs

			if err := tx.Save(&batch).Error; err != nil {
				return err
			}
			return recordMovements(tx, &batch)
		})
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return fe
			}
			logging.Error("manufacturing", "update", err, logrus.Fields{"batch_id": id})
			return fiber.NewError(fiber.StatusInternalServerError, "could not update batch")
		}
		return c.JSON(batch)
	}
}

func DeleteHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := web.UUIDParam(c, "id")
		if err != nil {
			return err
		}
		err = database.DB.Transaction(func(tx *gorm.DB) error {
			var batch models.ManufacturingBatch
			if err := tx.First(&batch, "id = ?", id).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "batch not found")
			}
			if err := clearMovements(tx, batch.ID); err != nil {
				return err
			}
			if err := tx.Where("batch_id = ?", batch.ID).Delete(&models.ManufacturingInput{}).Error; err != nil {
				return err
			}
			if err := tx.Where("batch_id = ?", batch.ID).Delete(&models.ManufacturingOutput{}).Error; err != nil {
				return err
			}
			return tx.Delete(&batch).Error
		})
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				return fe
			}
			logging.Error("manufacturing", "delete", err, logrus.Fields{"batch_id": id})
			return fiber.NewError(fiber.StatusInternalServerError, "could not delete batch")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
