package database

import (
	"log"

	"github.com/santoshmvhs/purebornmvp/internal/config"
	"github.com/santoshmvhs/purebornmvp/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	// UUID defaults rely on pgcrypto's gen_random_uuid (Postgres 13+ ships it in core,
	// older installs need the extension)
	if err := DB.Exec("CREATE EXTENSION IF NOT EXISTS pgcrypto").Error; err != nil {
		log.Printf("[WARN] could not ensure pgcrypto extension: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Vendor{},
		&models.Customer{},
		&models.ProductCategory{},
		&models.Product{},
		&models.ProductVariant{},
		&models.RawMaterial{},
		&models.ExpenseCategory{},
		&models.ExpenseSubcategory{},
		&models.Expense{},
		&models.Purchase{},
		&models.PurchaseItem{},
		&models.Sale{},
		&models.SaleItem{},
		&models.OilCakeSale{},
		&models.ManufacturingBatch{},
		&models.ManufacturingInput{},
		&models.ManufacturingOutput{},
		&models.InventoryMovement{},
		&models.DayCounter{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Println("database connected, migration complete")
}
