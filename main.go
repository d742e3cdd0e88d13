package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	adminpkg "github.com/mikios34/storefront-backend/admin"
	adminrepo "github.com/mikios34/storefront-backend/admin/repository"
	adminsvc "github.com/mikios34/storefront-backend/admin/service"
	authpkg "github.com/mikios34/storefront-backend/auth"
	authrepo "github.com/mikios34/storefront-backend/auth/repository"
	authsvc "github.com/mikios34/storefront-backend/auth/service"
	checkoutrepo "github.com/mikios34/storefront-backend/checkout/repository"
	checkoutsvc "github.com/mikios34/storefront-backend/checkout/service"
	"github.com/mikios34/storefront-backend/config"
	"github.com/mikios34/storefront-backend/dispatch"
	"github.com/mikios34/storefront-backend/entity"
	filepkg "github.com/mikios34/storefront-backend/file"
	filerepo "github.com/mikios34/storefront-backend/file/repository"
	filesvc "github.com/mikios34/storefront-backend/file/service"
	api "github.com/mikios34/storefront-backend/handler"
	"github.com/mikios34/storefront-backend/logging"
	"github.com/mikios34/storefront-backend/messenger"
	"github.com/mikios34/storefront-backend/metrics"
	"github.com/mikios34/storefront-backend/middleware"
	orderrepo "github.com/mikios34/storefront-backend/order/repository"
	ordersvc "github.com/mikios34/storefront-backend/order/service"
	productrepo "github.com/mikios34/storefront-backend/product/repository"
	productsvc "github.com/mikios34/storefront-backend/product/service"
	"github.com/mikios34/storefront-backend/realtime"
	userrepo "github.com/mikios34/storefront-backend/user/repository"
	usersvc "github.com/mikios34/storefront-backend/user/service"
	"github.com/mikios34/storefront-backend/web"
)

const flashTTL = time.Hour

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	logger, err := logging.New(cfg.Logging.Level, cfg.Env)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	db := setupDatabase(cfg.DatabaseURL, logger)

	var flash messenger.Store = messenger.NewMemoryStore()
	if rdb := setupRedis(cfg.RedisURL, logger); rdb != nil {
		defer rdb.Close()
		flash = messenger.NewRedisStore(rdb, flashTTL)
	}

	var firebaseVerifier middleware.IDTokenVerifier
	if fbClient, err := authpkg.InitFirebaseAuth(context.Background(), cfg.Firebase.CredentialsFile); err != nil {
		logger.Warn("firebase auth disabled", zap.Error(err))
	} else if fbClient != nil {
		firebaseVerifier = fbClient
	}

	hub := realtime.NewHub(logger)

	// setup repositories + services (impl-style constructors)
	urls := filepkg.NewURLGenerator(cfg.BaseURL, cfg.Files.PublicPath)
	fileService := filesvc.NewFileService(filerepo.NewGormFileRepo(db), urls, cfg.Files.Dir, logger)
	productService := productsvc.NewProductService(productrepo.NewGormProductRepo(db), fileService)
	orderRepo := orderrepo.NewGormOrderRepo(db)
	orderService := ordersvc.NewOrderService(orderRepo)
	dispatchService := dispatch.New(orderRepo, hub, logger)
	checkoutService := checkoutsvc.NewCheckoutService(checkoutrepo.NewGormAddressRepo(db), productService, orderService, hub, logger)
	userService := usersvc.NewUserService(userrepo.NewGormUserRepo(db))
	adminService := adminsvc.NewAdminService(adminrepo.NewGormAdminRepo(db), userService)
	authService := authsvc.NewAuthService(authrepo.NewGormAuthRepo(db), cfg.Auth.JWTSecret, cfg.Auth.AccessTTL, cfg.Auth.RefreshTTL)

	bootstrap := adminpkg.RegisterAdminRequest{Name: cfg.Admin.Name, Email: cfg.Admin.Email, Password: cfg.Admin.Password}
	if created, err := adminService.EnsureBootstrapAdmin(context.Background(), bootstrap); err != nil {
		logger.Error("failed to create bootstrap admin", zap.Error(err))
	} else if created {
		logger.Info("bootstrap admin created", zap.String("email", cfg.Admin.Email))
	}

	pages := api.NewPages(flash, logger)
	productHandler := api.NewProductHandler(productService, pages)
	checkoutHandler := api.NewCheckoutHandler(checkoutService, pages)
	cartHandler := api.NewCartHandler(productService, hub, pages)
	authHandler := api.NewAuthHandler(authService, pages, cfg.Auth.AccessTTL, cfg.IsProduction())
	userHandler := api.NewUserHandler(userService)
	orderHandler := api.NewOrderHandler(orderService)
	fileHandler := api.NewFileHandler(fileService, cfg.Files.MaxUpload)
	adminHandler := api.NewAdminHandler(adminService)
	orderStatusHandler := api.NewOrderStatusHandler(dispatchService)
	wsHandler := api.NewWSHandler(hub)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.Metrics())
	r.Use(cors.New(corsConfig(cfg.HTTP.CORSOrigins)))
	r.Use(middleware.Session(cfg.IsProduction()))
	r.SetHTMLTemplate(web.Templates())
	r.Static(cfg.Files.PublicPath, cfg.Files.Dir)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	secret := cfg.Auth.JWTSecret

	// Browser pages
	site := r.Group("/", middleware.OptionalAuth(secret))
	{
		site.GET("/products/:id", productHandler.ProductPage())
		site.GET("/products/:id/thank-you", checkoutHandler.ThankYou())
		site.GET("/products/:id/cart", cartHandler.CartForm())
		site.POST("/products/:id/cart", cartHandler.AddToCart())
		site.GET("/login", authHandler.LoginPage())
		site.POST("/login", authHandler.LoginSubmit())
		site.POST("/logout", authHandler.Logout())
	}
	buy := r.Group("/products/:id/buy", middleware.RequireLogin(secret, "/login"))
	{
		buy.GET("", checkoutHandler.BuyForm())
		buy.POST("", checkoutHandler.SubmitBuy())
	}

	limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst)
	apiGroup := r.Group("/api", limiter.Handler())
	apiGroup.GET("/products", productHandler.ShowProducts())

	// API v1 routes
	v1 := apiGroup.Group("/v1")
	{
		v1.POST("/users/register", userHandler.Register())
		v1.POST("/users/register/firebase", middleware.RequireFirebaseAuth(firebaseVerifier), userHandler.RegisterFirebase())
		v1.POST("/auth/login", authHandler.Login())
		v1.POST("/auth/refresh", authHandler.Refresh())
		v1.POST("/auth/firebase", middleware.RequireFirebaseAuth(firebaseVerifier), authHandler.FirebaseLogin())
	}
	me := v1.Group("/me", middleware.RequireAuth(secret))
	{
		me.GET("/orders", orderHandler.MyOrders())
		me.POST("/orders/:id/cancel", orderHandler.Cancel())
	}
	admin := v1.Group("", middleware.RequireAuth(secret), middleware.RequireRoles(entity.RoleAdmin))
	{
		admin.POST("/files", fileHandler.Upload())
		admin.POST("/products", productHandler.CreateProduct())
		admin.POST("/admins", adminHandler.RegisterAdmin())
		admin.POST("/users/:id/promote", adminHandler.Promote())
		admin.POST("/orders/:id/ship", orderStatusHandler.Ship())
		admin.POST("/orders/:id/deliver", orderStatusHandler.Deliver())
	}

	r.GET("/ws", middleware.RequireAuth(secret), wsHandler.Socket())

	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				limiter.Cleanup(10 * time.Minute)
			case <-stop:
				return
			}
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: cfg.HTTP.RequestTimeout,
	}
	go func() {
		logger.Info("starting storefront", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down storefront")
	close(stop)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
}

func corsConfig(origins []string) cors.Config {
	cc := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cc.AllowAllOrigins = true
		return cc
	}
	for _, o := range origins {
		if o == "*" {
			cc.AllowAllOrigins = true
			return cc
		}
	}
	cc.AllowOrigins = origins
	cc.AllowCredentials = true
	return cc
}
