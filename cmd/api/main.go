package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/gamevault/gamevault-backend/internal/domain/entities"
	httphandlers "github.com/gamevault/gamevault-backend/internal/handlers/http"
	"github.com/gamevault/gamevault-backend/internal/handlers/middleware"
	"github.com/gamevault/gamevault-backend/internal/infrastructure/auth"
	"github.com/gamevault/gamevault-backend/internal/infrastructure/config"
	"github.com/gamevault/gamevault-backend/internal/infrastructure/logging"
	"github.com/gamevault/gamevault-backend/internal/infrastructure/mail"
	"github.com/gamevault/gamevault-backend/internal/infrastructure/payment"
	"github.com/gamevault/gamevault-backend/internal/infrastructure/persistence/postgres"
	"github.com/gamevault/gamevault-backend/internal/infrastructure/storage"
	"github.com/gamevault/gamevault-backend/internal/realtime"
	"github.com/gamevault/gamevault-backend/internal/services"
)

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting gamevault backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Infraestrutura externa
	s3Storage, err := storage.NewS3Storage(cfg.Storage.Region, cfg.Storage.Bucket)
	if err != nil {
		logger.Error("failed to initialize object storage", "error", err)
		log.Fatal(err)
	}
	mailer := mail.NewSMTPMailer(&cfg.SMTP, cfg.Server.BaseURL, logger)
	gateway := payment.NewMercadoPagoClient(&cfg.MercadoPago, logger)
	issuer := auth.NewJWTIssuer(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	hub := realtime.NewHub(logger)

	// Inicializar repositories
	uow := postgres.NewUnitOfWork(db)
	userRepo := postgres.NewUserRepository(db)
	productRepo := postgres.NewProductRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	cartRepo := postgres.NewCartRepository(db)
	orderRepo := postgres.NewOrderRepository(db)
	couponRepo := postgres.NewCouponRepository(db)
	imageRepo := postgres.NewImageRepository(db)

	// Inicializar services
	authService := services.NewAuthService(userRepo, issuer, mailer, logger)
	userService := services.NewUserService(userRepo, s3Storage, logger)
	productService := services.NewProductService(productRepo, categoryRepo, imageRepo, s3Storage, logger)
	categoryService := services.NewCategoryService(categoryRepo, productRepo, logger)
	cartService := services.NewCartService(cartRepo, productRepo, logger)
	orderService := services.NewOrderService(orderRepo, productRepo, userRepo, couponRepo, uow, gateway, mailer, hub, logger)
	couponService := services.NewCouponService(couponRepo, mailer, logger)
	fileService := services.NewFileService(imageRepo, productRepo, s3Storage, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService)
	userHandler := httphandlers.NewUserHandler(userService)
	productHandler := httphandlers.NewProductHandler(productService)
	categoryHandler := httphandlers.NewCategoryHandler(categoryService)
	cartHandler := httphandlers.NewCartHandler(cartService)
	orderHandler := httphandlers.NewOrderHandler(orderService)
	couponHandler := httphandlers.NewCouponHandler(couponService)
	fileHandler := httphandlers.NewFileHandler(fileService)
	mpHandler := httphandlers.NewMercadoPagoHandler(orderService, logger)
	wsHandler := httphandlers.NewWSHandler(hub, logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	registerValidations()

	router := gin.Default()
	router.Use(middleware.BaseURL(cfg.Server.BaseURL))
	router.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	requireAuth := middleware.RequireAuth(issuer)
	manageCatalog := middleware.RequirePermission(issuer, entities.PermissionCatalogWrite)
	readUsers := middleware.RequirePermission(issuer, entities.PermissionUserRead)
	banUsers := middleware.RequirePermission(issuer, entities.PermissionUserBan)
	readAllOrders := middleware.RequirePermission(issuer, entities.PermissionOrderReadAll)
	deliverOrders := middleware.RequirePermission(issuer, entities.PermissionOrderDeliver)
	manageCoupons := middleware.RequirePermission(issuer, entities.PermissionCouponWrite)

	v1 := router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
		}

		// Link clicado a partir do email de confirmação
		v1.POST("/mail/verified-email/:token", authHandler.VerifyEmail)

		users := v1.Group("/users")
		{
			users.GET("/me", requireAuth, userHandler.GetMe)
			users.PATCH("/me", requireAuth, userHandler.UpdateMe)
			users.DELETE("/me", requireAuth, userHandler.DeleteMe)
			users.PATCH("/me/password", requireAuth, userHandler.ChangePassword)
			users.POST("/me/profile-image", requireAuth, userHandler.UploadProfileImage)
			users.POST("/me/banner-image", requireAuth, userHandler.UploadBannerImage)

			users.GET("", readUsers, userHandler.ListUsers)
			users.GET("/:id", readUsers, userHandler.GetUser)
			users.POST("/:id/ban", banUsers, userHandler.BanUser)
		}

		// Catálogo é público; mutações são de admin
		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/category/:id", productHandler.ListByCategory)
			products.GET("/dashboard", manageCatalog, productHandler.ListDashboard)
			products.POST("", manageCatalog, productHandler.CreateProduct)
			products.PATCH("/:id", manageCatalog, productHandler.UpdateProduct)
			products.DELETE("/:id", manageCatalog, productHandler.DeleteProduct)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.POST("", manageCatalog, categoryHandler.CreateCategory)
			categories.PATCH("/:id", manageCatalog, categoryHandler.UpdateCategory)
			categories.DELETE("/:id", manageCatalog, categoryHandler.DeleteCategory)
		}

		carts := v1.Group("/carts", requireAuth)
		{
			carts.GET("", cartHandler.GetCart)
			carts.POST("", cartHandler.AddItem)
			carts.POST("/mixed", cartHandler.MergeCart)
			carts.PATCH("/:productId", cartHandler.UpdateItem)
			carts.DELETE("/:productId", cartHandler.RemoveItem)
			carts.DELETE("", cartHandler.ClearCart)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", requireAuth, orderHandler.CreateOrder)
			orders.GET("/me", requireAuth, orderHandler.ListMyOrders)
			orders.GET("/:id", requireAuth, orderHandler.GetOrder)
			orders.GET("", readAllOrders, orderHandler.ListAllOrders)
			orders.POST("/deliver/:id", deliverOrders, orderHandler.MarkDelivered)
		}

		coupons := v1.Group("/coupons")
		{
			coupons.GET("/validate/:id", requireAuth, couponHandler.ValidateCoupon)
			coupons.GET("", manageCoupons, couponHandler.ListCoupons)
			coupons.GET("/:id", manageCoupons, couponHandler.GetCoupon)
			coupons.POST("/new", manageCoupons, couponHandler.CreateCoupon)
			coupons.POST("", manageCoupons, couponHandler.SendCoupons)
			coupons.PATCH("/:id/toggle", manageCoupons, couponHandler.ToggleCoupon)
			coupons.PATCH("/:id/discount", manageCoupons, couponHandler.UpdateDiscount)
			coupons.DELETE("/:id", manageCoupons, couponHandler.DeleteCoupon)
		}

		files := v1.Group("/files")
		{
			files.GET("", fileHandler.ListImages)
			files.GET("/product/:productId", fileHandler.ListByProduct)
			files.POST("/product/:productId", manageCatalog, fileHandler.UploadImages)
			files.DELETE("/:publicId", manageCatalog, fileHandler.DeleteImage)
		}

		mercadopago := v1.Group("/mercadopago")
		{
			mercadopago.POST("", requireAuth, mpHandler.CreateCheckout)
			// O gateway chama sem autenticação; o payload nunca é confiado
			mercadopago.POST("/webhook", mpHandler.Webhook)
		}

		v1.GET("/ws", requireAuth, wsHandler.Connect)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// registerValidations registra a validação producttype no binding do gin
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("producttype", func(fl validator.FieldLevel) bool {
			value := entities.ProductType(fl.Field().String())
			return value == entities.ProductTypeDigital || value == entities.ProductTypePhysical
		})
	}
}

// corsConfig monta a configuração de CORS a partir da lista de origens
func corsConfig(allowedOrigins string) cors.Config {
	corsCfg := cors.DefaultConfig()
	if allowedOrigins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = splitOrigins(allowedOrigins)
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	return corsCfg
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
