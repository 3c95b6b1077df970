package main

import (
	"errors"
	"log"
	"time"

	"github.com/santoshmvhs/purebornmvp/internal/auth"
	"github.com/santoshmvhs/purebornmvp/internal/catalog"
	"github.com/santoshmvhs/purebornmvp/internal/config"
	"github.com/santoshmvhs/purebornmvp/internal/customer"
	"github.com/santoshmvhs/purebornmvp/internal/dashboard"
	"github.com/santoshmvhs/purebornmvp/internal/database"
	"github.com/santoshmvhs/purebornmvp/internal/daycounter"
	"github.com/santoshmvhs/purebornmvp/internal/expense"
	"github.com/santoshmvhs/purebornmvp/internal/gst"
	"github.com/santoshmvhs/purebornmvp/internal/inventory"
	"github.com/santoshmvhs/purebornmvp/internal/logging"
	"github.com/santoshmvhs/purebornmvp/internal/manufacturing"
	"github.com/santoshmvhs/purebornmvp/internal/material"
	"github.com/santoshmvhs/purebornmvp/internal/purchase"
	"github.com/santoshmvhs/purebornmvp/internal/report"
	"github.com/santoshmvhs/purebornmvp/internal/sale"
	"github.com/santoshmvhs/purebornmvp/internal/vendor"
	"github.com/santoshmvhs/purebornmvp/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	cfg := config.Load()
	if cfg.Environment == "development" {
		logging.SetDebug()
	}

	database.Init(cfg)

	app := fiber.New(fiber.Config{
		AppName:      "pureborn-backend",
		BodyLimit:    10 * 1024 * 1024, // xlsx uploads
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimitPerMin,
		Expiration: time.Minute,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	registerRoutes(api, cfg)

	log.Fatal(app.Listen(":" + cfg.HTTPPort))
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}

func registerRoutes(api fiber.Router, cfg *config.Config) {
	loginLimiter := limiter.New(limiter.Config{
		Max:        cfg.LoginLimitPerMin,
		Expiration: time.Minute,
	})

	// public
	authGroup := api.Group("/auth")
	authGroup.Post("/login", loginLimiter, auth.LoginHandler(cfg))
	authGroup.Post("/logout", auth.LogoutHandler())
	authGroup.Post("/signup", auth.SignupHandler())

	// everything below requires a session
	protected := api.Group("", auth.JWTMiddleware(cfg))
	registerProtected(protected, auth.RequireAdmin())
}

// registerProtected wires the session-guarded routes. Master data is writable
// by admins only; cashiers keep read access plus the transactional endpoints.
func registerProtected(protected fiber.Router, admin fiber.Handler) {
	authed := protected.Group("/auth")
	authed.Get("/me", auth.MeHandler())
	authed.Post("/register", admin, auth.RegisterHandler())

	users := protected.Group("/users", admin)
	users.Get("/", auth.ListUsersHandler())
	users.Patch("/:id", auth.UpdateUserHandler())

	vendors := protected.Group("/vendors")
	vendors.Post("/", admin, vendor.CreateHandler())
	vendors.Get("/", vendor.ListHandler())
	vendors.Get("/:id", vendor.GetHandler())
	vendors.Put("/:id", admin, vendor.UpdateHandler())
	vendors.Delete("/:id", admin, vendor.DeleteHandler())

	customers := protected.Group("/customers")
	customers.Post("/", admin, customer.CreateHandler())
	customers.Get("/", customer.ListHandler())
	customers.Get("/:id", customer.GetHandler())
	customers.Put("/:id", admin, customer.UpdateHandler())
	customers.Delete("/:id", admin, customer.DeleteHandler())

	categories := protected.Group("/product-categories")
	categories.Post("/", admin, catalog.CreateCategoryHandler())
	categories.Get("/", catalog.ListCategoriesHandler())
	categories.Put("/:id", admin, catalog.UpdateCategoryHandler())
	categories.Delete("/:id", admin, catalog.DeleteCategoryHandler())

	products := protected.Group("/products")
	products.Post("/", admin, catalog.CreateProductHandler())
	products.Post("/import", admin, catalog.ImportProductsHandler())
	products.Get("/", catalog.ListProductsHandler())
	products.Get("/:id", catalog.GetProductHandler())
	products.Put("/:id", admin, catalog.UpdateProductHandler())
	products.Delete("/:id", admin, catalog.DeleteProductHandler())

	variants := protected.Group("/product-variants")
	variants.Post("/", admin, catalog.CreateVariantHandler())
	variants.Get("/", catalog.ListVariantsHandler())
	variants.Get("/:id", catalog.GetVariantHandler())
	variants.Put("/:id", admin, catalog.UpdateVariantHandler())
	variants.Delete("/:id", admin, catalog.DeleteVariantHandler())

	materials := protected.Group("/raw-materials")
	materials.Post("/", admin, material.CreateHandler())
	materials.Get("/", material.ListHandler())
	materials.Get("/:id", material.GetHandler())
	materials.Put("/:id", admin, material.UpdateHandler())
	materials.Delete("/:id", admin, material.DeleteHandler())

	expenseCategories := protected.Group("/expense-categories")
	expenseCategories.Post("/", expense.CreateCategoryHandler())
	expenseCategories.Get("/", expense.ListCategoriesHandler())
	expenseCategories.Put("/:id", expense.UpdateCategoryHandler())
	expenseCategories.Delete("/:id", expense.DeleteCategoryHandler())

	expenseSubcategories := protected.Group("/expense-subcategories")
	expenseSubcategories.Post("/", expense.CreateSubcategoryHandler())
	expenseSubcategories.Get("/", expense.ListSubcategoriesHandler())
	expenseSubcategories.Delete("/:id", expense.DeleteSubcategoryHandler())

	expenses := protected.Group("/expenses")
	expenses.Post("/", expense.CreateHandler())
	expenses.Get("/", expense.ListHandler())
	expenses.Get("/:id", expense.GetHandler())
	expenses.Put("/:id", expense.UpdateHandler())
	expenses.Delete("/:id", expense.DeleteHandler())

	purchases := protected.Group("/purchases")
	purchases.Post("/", purchase.CreateHandler())
	purchases.Get("/", purchase.ListHandler())
	purchases.Get("/:id", purchase.GetHandler())
	purchases.Put("/:id", purchase.UpdateHandler())
	purchases.Delete("/:id", purchase.DeleteHandler())

	sales := protected.Group("/sales")
	sales.Post("/", sale.CreateHandler())
	sales.Get("/", sale.ListHandler())
	sales.Get("/:id", sale.GetHandler())
	sales.Put("/:id", sale.UpdateHandler())
	sales.Delete("/:id", sale.DeleteHandler())

	oilCake := protected.Group("/oil-cake-sales")
	oilCake.Post("/", sale.CreateOilCakeHandler())
	oilCake.Get("/", sale.ListOilCakeHandler())
	oilCake.Get("/:id", sale.GetOilCakeHandler())
	oilCake.Put("/:id", sale.UpdateOilCakeHandler())
	oilCake.Delete("/:id", sale.DeleteOilCakeHandler())

	batches := protected.Group("/manufacturing")
	batches.Post("/", manufacturing.CreateHandler())
	batches.Get("/", manufacturing.ListHandler())
	batches.Get("/:id", manufacturing.GetHandler())
	batches.Put("/:id", manufacturing.UpdateHandler())
	batches.Delete("/:id", manufacturing.DeleteHandler())

	movements := protected.Group("/inventory")
	movements.Get("/movements", inventory.ListHandler())
	movements.Post("/adjustments", inventory.AdjustHandler())

	counters := protected.Group("/day-counters")
	counters.Post("/", daycounter.UpsertHandler())
	counters.Get("/", daycounter.ListHandler())
	counters.Get("/by-date/:date", daycounter.GetByDateHandler())
	counters.Put("/:id", daycounter.UpdateHandler())
	counters.Delete("/:id", admin, daycounter.DeleteHandler())

	protected.Get("/dashboard/kpis", dashboard.KPIHandler())

	reports := protected.Group("/reports")
	reports.Get("/daily", report.DailyHandler())
	reports.Get("/monthly", report.MonthlyHandler())
	reports.Get("/gstr1", report.GSTR1Handler())
	reports.Get("/gstr3b", report.GSTR3BHandler())

	viewsGroup := protected.Group("/views")
	viewsGroup.Get("/inventory/raw-materials", views.RawMaterialStockHandler())
	viewsGroup.Get("/inventory/product-variants", views.VariantStockHandler())
	viewsGroup.Get("/balances/vendors", views.VendorBalancesHandler())
	viewsGroup.Get("/balances/customers", views.CustomerBalancesHandler())
	viewsGroup.Get("/gst/sales", views.SalesGSTHandler())
	viewsGroup.Get("/gst/purchases", views.PurchasesGSTHandler())

	protected.Get("/gst/lookup", gst.LookupHandler())
}
