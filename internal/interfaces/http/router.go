package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	adminusecases "billu/internal/application/admin/usecases"
	authusecases "billu/internal/application/auth/usecases"
	customerusecases "billu/internal/application/customer/usecases"
	productusecases "billu/internal/application/product/usecases"
	centerusecases "billu/internal/application/servicecenter/usecases"
	techusecases "billu/internal/application/technician/usecases"
	ticketusecases "billu/internal/application/ticket/usecases"
	"billu/internal/infrastructure/auth"
	"billu/internal/infrastructure/cache"
	"billu/internal/infrastructure/config"
	"billu/internal/infrastructure/ratelimit"
	"billu/internal/infrastructure/repository"
	"billu/internal/interfaces/http/handlers"
	"billu/internal/interfaces/http/middleware"
	"billu/internal/shared/logger"
)

// Router wires handlers, middleware and routes for the HTTP surface.
type Router struct {
	engine               *gin.Engine
	authHandler          *handlers.AuthHandler
	customerHandler      *handlers.CustomerHandler
	productHandler       *handlers.ProductHandler
	serviceCenterHandler *handlers.ServiceCenterHandler
	technicianHandler    *handlers.TechnicianHandler
	ticketHandler        *handlers.TicketHandler
	portalHandler        *handlers.PortalHandler
	adminHandler         *handlers.AdminHandler
	authMiddleware       *middleware.AuthMiddleware
	loginLimiter         ratelimit.RateLimiter
	allowedOrigins       []string
	logger               logger.Interface
}

// NewRouter builds the full dependency graph on top of the database and
// optional redis connections. A nil redis client degrades gracefully:
// no token blacklist, no login throttling.
func NewRouter(db *gorm.DB, redisClient *redis.Client, snapshots *cache.SnapshotStore, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	customerRepo := repository.NewCustomerRepository(db)
	productRepo := repository.NewProductRepository(db)
	centerRepo := repository.NewServiceCenterRepository(db)
	techRepo := repository.NewTechnicianRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	userRepo := repository.NewUserRepository(db)

	var blacklist auth.TokenBlacklist
	var loginLimiter ratelimit.RateLimiter
	if redisClient != nil {
		blacklist = cache.NewRedisTokenBlacklist(redisClient)
		loginLimiter = ratelimit.NewRedisRateLimiter(redisClient, "billu:ratelimit:login", time.Minute, 10)
	}

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays, blacklist)

	registerUC := authusecases.NewRegisterOperatorUseCase(userRepo, hasher, log)
	loginUC := authusecases.NewLoginUseCase(userRepo, hasher, jwtService, cfg.Auth.SuperAdminEmail, log)
	logoutUC := authusecases.NewLogoutUseCase(jwtService, log)
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, logoutUC)

	createCustomerUC := customerusecases.NewCreateCustomerUseCase(customerRepo, log)
	updateCustomerUC := customerusecases.NewUpdateCustomerUseCase(customerRepo, log)
	deleteCustomerUC := customerusecases.NewDeleteCustomerUseCase(customerRepo, log)
	listCustomersUC := customerusecases.NewListCustomersUseCase(customerRepo, log)
	customerHandler := handlers.NewCustomerHandler(createCustomerUC, updateCustomerUC, deleteCustomerUC, listCustomersUC)

	createProductUC := productusecases.NewCreateProductUseCase(productRepo, customerRepo, log)
	updateProductUC := productusecases.NewUpdateProductUseCase(productRepo, log)
	deleteProductUC := productusecases.NewDeleteProductUseCase(productRepo, log)
	listProductsUC := productusecases.NewListProductsUseCase(productRepo, log)
	productHandler := handlers.NewProductHandler(createProductUC, updateProductUC, deleteProductUC, listProductsUC)

	createCenterUC := centerusecases.NewCreateServiceCenterUseCase(centerRepo, log)
	updateCenterUC := centerusecases.NewUpdateServiceCenterUseCase(centerRepo, log)
	deleteCenterUC := centerusecases.NewDeleteServiceCenterUseCase(centerRepo, log)
	listCentersUC := centerusecases.NewListServiceCentersUseCase(centerRepo, log)
	recommendCentersUC := centerusecases.NewRecommendServiceCentersUseCase(centerRepo, log)
	serviceCenterHandler := handlers.NewServiceCenterHandler(createCenterUC, updateCenterUC, deleteCenterUC, listCentersUC, recommendCentersUC)

	createTechnicianUC := techusecases.NewCreateTechnicianUseCase(techRepo, log)
	updateTechnicianUC := techusecases.NewUpdateTechnicianUseCase(techRepo, log)
	deleteTechnicianUC := techusecases.NewDeleteTechnicianUseCase(techRepo, log)
	listTechniciansUC := techusecases.NewListTechniciansUseCase(techRepo, log)
	getWalletUC := techusecases.NewGetWalletUseCase(techRepo, ticketRepo, ledgerRepo, log)
	getPointsUC := techusecases.NewGetPointsUseCase(techRepo, ticketRepo, log)
	addTransactionUC := techusecases.NewAddTransactionUseCase(techRepo, ledgerRepo, log)
	listTransactionsUC := techusecases.NewListTransactionsUseCase(techRepo, ledgerRepo, log)
	technicianHandler := handlers.NewTechnicianHandler(
		createTechnicianUC, updateTechnicianUC, deleteTechnicianUC, listTechniciansUC,
		getWalletUC, getPointsUC, addTransactionUC, listTransactionsUC,
	)

	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, customerRepo, productRepo, centerRepo, techRepo, log)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, centerRepo, techRepo, log)
	changeStatusUC := ticketusecases.NewChangeStatusUseCase(ticketRepo, log)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, log)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, log)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, log)
	ticketHandler := handlers.NewTicketHandler(createTicketUC, updateTicketUC, changeStatusUC, deleteTicketUC, getTicketUC, listTicketsUC)

	portalLoginUC := techusecases.NewPortalLoginUseCase(techRepo, log)
	listTechTicketsUC := ticketusecases.NewListTechnicianTicketsUseCase(ticketRepo, log)
	portalHandler := handlers.NewPortalHandler(portalLoginUC, listTechTicketsUC, getWalletUC, getPointsUC, listTransactionsUC)

	getOverviewUC := adminusecases.NewGetOverviewUseCase(snapshots, log)
	adminHandler := handlers.NewAdminHandler(getOverviewUC)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	return &Router{
		engine:               engine,
		authHandler:          authHandler,
		customerHandler:      customerHandler,
		productHandler:       productHandler,
		serviceCenterHandler: serviceCenterHandler,
		technicianHandler:    technicianHandler,
		ticketHandler:        ticketHandler,
		portalHandler:        portalHandler,
		adminHandler:         adminHandler,
		authMiddleware:       authMiddleware,
		loginLimiter:         loginLimiter,
		allowedOrigins:       cfg.Server.AllowedOrigins,
		logger:               log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(r.allowedOrigins))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.engine.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", middleware.LoginRateLimit(r.loginLimiter, r.logger), r.authHandler.Login)
		authGroup.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
	}

	customers := api.Group("/customers")
	customers.Use(r.authMiddleware.RequireAuth())
	{
		customers.POST("", r.customerHandler.CreateCustomer)
		customers.GET("", r.customerHandler.ListCustomers)
		customers.PUT("/:id", r.customerHandler.UpdateCustomer)
		customers.DELETE("/:id", r.customerHandler.DeleteCustomer)
	}

	products := api.Group("/products")
	products.Use(r.authMiddleware.RequireAuth())
	{
		products.POST("", r.productHandler.CreateProduct)
		products.GET("", r.productHandler.ListProducts)
		products.PUT("/:id", r.productHandler.UpdateProduct)
		products.DELETE("/:id", r.productHandler.DeleteProduct)
	}

	centers := api.Group("/service-centers")
	centers.Use(r.authMiddleware.RequireAuth())
	{
		centers.POST("", r.serviceCenterHandler.CreateServiceCenter)
		centers.GET("", r.serviceCenterHandler.ListServiceCenters)
		centers.GET("/recommend", r.serviceCenterHandler.RecommendServiceCenters)
		centers.PUT("/:id", r.serviceCenterHandler.UpdateServiceCenter)
		centers.DELETE("/:id", r.serviceCenterHandler.DeleteServiceCenter)
	}

	technicians := api.Group("/technicians")
	technicians.Use(r.authMiddleware.RequireAuth())
	{
		technicians.POST("", r.technicianHandler.CreateTechnician)
		technicians.GET("", r.technicianHandler.ListTechnicians)
		technicians.PUT("/:id", r.technicianHandler.UpdateTechnician)
		technicians.DELETE("/:id", r.technicianHandler.DeleteTechnician)
		technicians.GET("/:id/wallet", r.technicianHandler.GetWallet)
		technicians.GET("/:id/points", r.technicianHandler.GetPoints)
		technicians.GET("/:id/transactions", r.technicianHandler.ListTransactions)
		technicians.POST("/:id/transactions", r.technicianHandler.AddTransaction)
	}

	tickets := api.Group("/tickets")
	tickets.Use(r.authMiddleware.RequireAuth())
	{
		tickets.POST("", r.ticketHandler.CreateTicket)
		tickets.GET("", r.ticketHandler.ListTickets)
		tickets.GET("/:id", r.ticketHandler.GetTicket)
		tickets.PUT("/:id", r.ticketHandler.UpdateTicket)
		tickets.PATCH("/:id/status", r.ticketHandler.ChangeStatus)
		tickets.DELETE("/:id", r.ticketHandler.DeleteTicket)
	}

	portal := api.Group("/portal")
	{
		portal.POST("/login", r.portalHandler.Login)

		scoped := portal.Group("")
		scoped.Use(r.portalHandler.Authenticate())
		{
			scoped.GET("/tickets", r.portalHandler.MyTickets)
			scoped.GET("/wallet", r.portalHandler.MyWallet)
			scoped.GET("/points", r.portalHandler.MyPoints)
			scoped.GET("/transactions", r.portalHandler.MyTransactions)
		}
	}

	admin := api.Group("/admin")
	admin.Use(r.authMiddleware.RequireAuth(), r.authMiddleware.RequireSuperAdmin())
	{
		admin.GET("/overview", r.adminHandler.GetOverview)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
