package router

import (
	"time"

	"saborpos/internal/config"
	"saborpos/internal/handler"
	"saborpos/internal/middleware"
	"saborpos/internal/model"
	"saborpos/internal/repository"
	"saborpos/internal/service"
	"saborpos/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps carries the wired services the server entrypoint also needs
// (worker handlers are built from the same instances).
type Deps struct {
	ReporteSvc service.ReporteService
	Dispatcher *worker.Dispatcher
}

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, *Deps) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	pagoRepo := repository.NewPagoRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	comandaRepo := repository.NewComandaRepository(db)
	reporteRepo := repository.NewReporteRepository(db)
	asistenciaRepo := repository.NewAsistenciaRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs.
	// Nil when Redis is not configured: rollups then apply inline.
	var dispatcher *worker.Dispatcher
	if rdb != nil {
		dispatcher = worker.NewDispatcher(rdb)
	}

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	productoSvc := service.NewProductoService(productoRepo)
	reporteSvc := service.NewReporteService(reporteRepo, ventaRepo, cajaRepo)
	cajaSvc := service.NewCajaService(cajaRepo, usuarioRepo, dispatcher, cfg.ResumenEmail)
	comandaSvc := service.NewComandaService(comandaRepo)
	asistenciaSvc := service.NewAsistenciaService(asistenciaRepo)
	ventaSvc := service.NewVentaService(
		ventaRepo, usuarioRepo, pagoRepo, cajaRepo, productoRepo, comandaRepo,
		reporteSvc, dispatcher, cfg.PDFStoragePath,
	)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	pagosH := handler.NewPagosHandler(pagoRepo)
	ventasH := handler.NewVentasHandler(ventaSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	cocinaH := handler.NewCocinaHandler(comandaSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)
	asistenciaH := handler.NewAsistenciaHandler(asistenciaSvc)
	dashboardH := handler.NewDashboardHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Attendance terminal has no login screen
	asistencia := r.Group("/api/asistencia")
	{
		asistencia.POST("/ingreso", asistenciaH.Ingreso)
		asistencia.POST("/salida", asistenciaH.Salida)
		asistencia.GET("", asistenciaH.Listar)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	api := r.Group("/api", jwtMW)
	{
		ventas := api.Group("/ventas", middleware.RequireRole(model.RolAdministrador, model.RolCajero))
		{
			ventas.POST("/registrar", ventasH.Registrar)
			ventas.GET("/todas", ventasH.Todas)
			ventas.GET("/:id/ticket", ventasH.Ticket)
		}

		caja := api.Group("/caja", middleware.RequireRole(model.RolAdministrador, model.RolCajero))
		{
			caja.POST("/abrir", cajaH.Abrir)
			caja.POST("/cerrar", cajaH.Cerrar)
			caja.GET("/estado", cajaH.Estado)
		}

		cocina := api.Group("/cocina", middleware.RequireRole(model.RolAdministrador, model.RolCocinero))
		{
			cocina.GET("/pendientes", cocinaH.Pendientes)
			cocina.GET("/completadas", cocinaH.Completadas)
			cocina.PUT("/actualizar/:id", cocinaH.Actualizar)
		}

		// Catalog reads for the sale screen; writes are admin-only
		api.GET("/productos", productosH.Listar)
		api.GET("/productos/:id", productosH.Obtener)
		api.GET("/pagos", pagosH.Listar)
		productos := api.Group("/productos", middleware.RequireRole(model.RolAdministrador))
		{
			productos.POST("", productosH.Crear)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
		}

		reportes := api.Group("/reportes", middleware.RequireRole(model.RolAdministrador))
		{
			reportes.GET("/resumen-diario", reportesH.ResumenDiario)
			reportes.GET("/exportar/:periodo", reportesH.Exportar)
			reportes.GET("/:periodo", reportesH.Listar)
		}

		api.GET("/dashboard/resumen", middleware.RequireRole(model.RolAdministrador), dashboardH.Resumen)

		usuarios := api.Group("/usuarios", middleware.RequireRole(model.RolAdministrador))
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Eliminar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, &Deps{ReporteSvc: reporteSvc, Dispatcher: dispatcher}
}
