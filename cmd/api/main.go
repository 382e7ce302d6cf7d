package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appanalytics "github.com/jhoicas/freshstock-api/internal/application/analytics"
	"github.com/jhoicas/freshstock-api/internal/application/auth"
	"github.com/jhoicas/freshstock-api/internal/application/export"
	"github.com/jhoicas/freshstock-api/internal/application/inventory"
	"github.com/jhoicas/freshstock-api/internal/application/ports"
	"github.com/jhoicas/freshstock-api/internal/application/usecase"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/document"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/events"
	infrapdf "github.com/jhoicas/freshstock-api/internal/infrastructure/pdf"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/storage"
	"github.com/jhoicas/freshstock-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/freshstock-api/internal/interfaces/http"
	"github.com/jhoicas/freshstock-api/pkg/config"
	"github.com/jhoicas/freshstock-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	now := time.Now
	handle, err := storage.Open(ctx, cfg.Store, cfg.DB, now, log.Zerolog())
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer handle.Close()
	store := handle.Store

	// Primera lectura: siembra el documento si el almacenamiento está vacío.
	if _, err := store.Load(ctx); err != nil {
		log.Fatal().Err(err).Msg("cargar documento")
	}

	// Eventos: NATS si está configurado; siempre contados en /metrics.
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	var publisher ports.EventPublisher = events.Noop{}
	if cfg.NATS.URL != "" {
		natsPub, err := events.NewNATSPublisher(cfg.NATS.URL, cfg.NATS.SubjectPrefix)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a NATS")
		}
		defer natsPub.Close()
		publisher = natsPub
		log.Info().Str("url", cfg.NATS.URL).Msg("publicando eventos en NATS")
	}
	counted, err := events.NewCountingPublisher(publisher, registry)
	if err != nil {
		log.Fatal().Err(err).Msg("registrar métricas de eventos")
	}

	notifier := ports.NewNotifier(counted, log.Zerolog().With().Str("component", "events").Logger())

	repos := document.NewRepositories(store, now)
	txRunner := document.NewTxRunner(store, now)

	productUC := usecase.NewProductUseCase(repos.Products, repos.Settings, txRunner, notifier, now)
	supplierUC := usecase.NewSupplierUseCase(repos.Suppliers, txRunner)
	orderUC := usecase.NewOrderUseCase(repos.Orders, repos.Products, txRunner, notifier, now)
	settingsUC := usecase.NewSettingsUseCase(repos.Settings, txRunner, notifier, now)
	activityUC := usecase.NewActivityUseCase(repos.Activities)
	userUC := usecase.NewUserUseCase(repos.Users)
	analyticsUC := usecase.NewAnalyticsUseCase(store, now)
	dashboardUC := appanalytics.NewDashboardUseCase(store, now)

	salesUC := inventory.NewSalesUseCase(txRunner, repos.Sales, repos.Products, notifier, now)
	receiveUC := inventory.NewReceiveOrderUseCase(txRunner, notifier, now)
	replenishmentUC := inventory.NewReplenishmentUseCase(store, now)

	// Exportación de órdenes: PDF (maroto) y XML (etree)
	orderExportUC := export.NewOrderExportUseCase(store, infrapdf.NewMarotoPDFGenerator(), xmlexport.NewOrderXMLBuilder())

	authUC := auth.NewAuthUseCase(repos.Users, repos.Activities, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: el login fallará hasta configurarlo")
	}

	if handle.Watchable() {
		go func() {
			err := handle.Watch(ctx, func() {
				// El store no cachea: basta con validar que el archivo nuevo se pueda leer.
				if _, err := store.Load(ctx); err != nil {
					log.Error().Err(err).Msg("el documento modificado no es válido")
				}
			})
			if err != nil {
				log.Error().Err(err).Msg("watcher del documento detenido")
			}
		}()
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI en local: http://localhost:<port>/docs (solo si se generó docs/swagger.json)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "FreshStock API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": handle.Driver})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		ProductUC:     productUC,
		SupplierUC:    supplierUC,
		OrderUC:       orderUC,
		SettingsUC:    settingsUC,
		ActivityUC:    activityUC,
		AnalyticsUC:   analyticsUC,
		DashboardUC:   dashboardUC,
		SalesUC:       salesUC,
		ReceiveUC:     receiveUC,
		Replenishment: replenishmentUC,
		OrderExport:   orderExportUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
