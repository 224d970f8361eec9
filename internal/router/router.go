package router

import (
	"context"
	"time"

	"kiosko/internal/config"
	"kiosko/internal/handler"
	"kiosko/internal/infra"
	"kiosko/internal/middleware"
	"kiosko/internal/repository"
	"kiosko/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies, bulk-loads the in-memory collections, and
// returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Caches/Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, error) {
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
	r.Use(middleware.Metrics())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	mailer := infra.NewMailer(cfg)

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	deudaRepo := repository.NewDeudaRepository(db)
	egresoRepo := repository.NewEgresoRepository(db)
	configuracionRepo := repository.NewConfiguracionRepository(db)

	// ── Caches ───────────────────────────────────────────────────────────────
	caches := service.NewCaches()
	if err := caches.CargarTodo(context.Background(), clienteRepo, productoRepo, deudaRepo, egresoRepo); err != nil {
		return nil, err
	}
	resumenCache := service.NewResumenCache(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	configuracionSvc := service.NewConfiguracionService(configuracionRepo, resumenCache)
	if err := configuracionSvc.Cargar(context.Background()); err != nil {
		return nil, err
	}
	clienteSvc := service.NewClienteService(clienteRepo, deudaRepo, caches, resumenCache)
	productoSvc := service.NewProductoService(productoRepo, deudaRepo, caches, resumenCache)
	deudaSvc := service.NewDeudaService(deudaRepo, caches, resumenCache)
	egresoSvc := service.NewEgresoService(egresoRepo, caches, resumenCache)
	reporteSvc := service.NewReporteService(caches, resumenCache, configuracionSvc, mailer, cfg)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	deudasH := handler.NewDeudasHandler(deudaSvc)
	egresosH := handler.NewEgresosHandler(egresoSvc)
	configuracionH := handler.NewConfiguracionHandler(configuracionSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/metrics", middleware.MetricsHandler())

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes — any active user
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	adminMW := middleware.RequireAdmin(func(c *gin.Context, email string) (bool, error) {
		return authSvc.EsAdmin(c.Request.Context(), email)
	})
	v1 := r.Group("/v1", jwtMW)
	{
		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Eliminar)
		}

		productos := v1.Group("/productos")
		{
			productos.POST("", productosH.Crear)
			productos.GET("", productosH.Listar)
			productos.GET("/categorias", productosH.Categorias)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Eliminar)
		}

		deudas := v1.Group("/deudas")
		{
			deudas.POST("", deudasH.Registrar)
			deudas.GET("", deudasH.Listar)
			deudas.PATCH("/:id/pagar", deudasH.MarcarPagada)
			deudas.DELETE("/:id", deudasH.Eliminar)
		}

		egresos := v1.Group("/egresos")
		{
			egresos.POST("", egresosH.Crear)
			egresos.GET("", egresosH.Listar)
			egresos.PUT("/:id", egresosH.Actualizar)
			egresos.DELETE("/:id", egresosH.Eliminar)
		}

		reportes := v1.Group("/reportes")
		{
			reportes.GET("/resumen", reportesH.Resumen)
			reportes.GET("/flujo-caja", reportesH.FlujoCaja)
			reportes.GET("/top-productos", reportesH.TopProductos)
			reportes.GET("/top-clientes", reportesH.TopClientes)
			reportes.GET("/ventas", reportesH.Ventas)
			reportes.GET("/ventas/pdf", reportesH.VentasPDF)
			reportes.POST("/ventas/email", reportesH.VentasEmail)
		}

		// Initial investment — admin only, it rewrites the dashboard baseline
		configuracion := v1.Group("/configuracion", adminMW)
		{
			configuracion.GET("/inversion-inicial", configuracionH.ObtenerInversion)
			configuracion.PUT("/inversion-inicial", configuracionH.GuardarInversion)
		}

		usuarios := v1.Group("/usuarios", adminMW)
		{
			usuarios.POST("", usuariosH.Crear)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Actualizar)
			usuarios.DELETE("/:id", usuariosH.Desactivar)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, nil
}
