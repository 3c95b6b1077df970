// Command cleanup wipes transactional data (invoices, batches, movements,
// counters) while keeping master data intact. Meant for resetting a test or
// staging database; refuses to run against production unless forced.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/santoshmvhs/purebornmvp/internal/config"
	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/models"

	"gorm.io/gorm"
)

func main() {
	var (
		yes        = flag.Bool("yes", false, "skip the confirmation prompt")
		withMaster = flag.Bool("with-masters", false, "also wipe vendors, customers, catalog and raw materials")
		force      = flag.Bool("force", false, "allow running against a production environment")
	)
	flag.Parse()

	cfg := config.Load()
	if cfg.Environment == "production" && !*force {
		log.Fatal("refusing to clean a production database without --force")
	}

	database.Init(cfg)

	if !*yes {
		fmt.Print("This deletes ALL transactional data. Type 'yes' to continue: ")
		line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		if strings.TrimSpace(line) != "yes" {
			fmt.Println("aborted")
			return
		}
	}

	// child tables first, then their parents
	transactional := []struct {
		name  string
		model interface{}
	}{
		{"inventory_movements", &models.InventoryMovement{}},
		{"manufacturing_inputs", &models.ManufacturingInput{}},
		{"manufacturing_outputs", &models.ManufacturingOutput{}},
		{"manufacturing_batches", &models.ManufacturingBatch{}},
		{"sale_items", &models.SaleItem{}},
		{"sales", &models.Sale{}},
		{"oil_cake_sales", &models.OilCakeSale{}},
		{"purchase_items", &models.PurchaseItem{}},
		{"purchases", &models.Purchase{}},
		{"expenses", &models.Expense{}},
		{"day_counters", &models.DayCounter{}},
	}

	masters := []struct {
		name  string
		model interface{}
	}{
		{"product_variants", &models.ProductVariant{}},
		{"products", &models.Product{}},
		{"product_categories", &models.ProductCategory{}},
		{"raw_materials", &models.RawMaterial{}},
		{"expense_subcategories", &models.ExpenseSubcategory{}},
		{"expense_categories", &models.ExpenseCategory{}},
		{"vendors", &models.Vendor{}},
		{"customers", &models.Customer{}},
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, t := range transactional {
			res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(t.model)
			if res.Error != nil {
				return fmt.Errorf("%s: %w", t.name, res.Error)
			}
			fmt.Printf("%-24s %d rows\n", t.name, res.RowsAffected)
		}
		if *withMaster {
			for _, t := range masters {
				res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(t.model)
				if res.Error != nil {
					return fmt.Errorf("%s: %w", t.name, res.Error)
				}
				fmt.Printf("%-24s %d rows\n", t.name, res.RowsAffected)
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("cleanup failed, rolled back: %v", err)
	}
	fmt.Println("done")
}
