package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xavierca1/farmareach/internal/config"
	"github.com/xavierca1/farmareach/internal/i18n"
	"github.com/xavierca1/farmareach/internal/infra/http/handlers"
	"github.com/xavierca1/farmareach/internal/infra/http/middleware"
	"github.com/xavierca1/farmareach/internal/infra/integration/backend"
	"github.com/xavierca1/farmareach/internal/infra/mail"
	"github.com/xavierca1/farmareach/internal/infra/queue"
	"github.com/xavierca1/farmareach/internal/infra/worker"
	"github.com/xavierca1/farmareach/internal/logger"
	"github.com/xavierca1/farmareach/internal/usecase"
	"github.com/xavierca1/farmareach/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "console").Fatal("config", zap.Error(err))
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer log.Sync()

	text := i18n.New(cfg.Locale)

	// 1. Storage
	store, closeStore, err := openTokenStore(cfg.Storage)
	if err != nil {
		log.Fatal("token store", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer closeStore()

	// 2. Backend client
	client := backend.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	client.ObserveWith(middleware.RecordAPICall)

	// 3. Activity fan-out, optional
	var (
		publisher usecase.ActivityPublisher
		amqpConn  *amqp.Connection
	)
	if cfg.AMQP.URL != "" {
		mq, err := queue.Connect(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Warn("activity publishing disabled", zap.Error(err))
		} else {
			defer mq.Close()
			amqpConn = mq.Conn
			publisher = queue.NewActivityProducer(mq.Ch, cfg.AMQP.Exchange)
		}
	}

	// 4. Controller
	feedback := view.NewFeedback(time.Now)
	app := usecase.NewApp(usecase.AppDeps{
		API:       client,
		Store:     store,
		Presenter: feedback,
		Text:      text,
		Publisher: publisher,
		SMTP:      mail.NewSMTPChecker(cfg.SMTP.Host, cfg.SMTP.Port),
		Recorder:  middleware.Recorder{},
		Clock:     time.Now,
		Logger:    log,
		Campaign: usecase.CampaignDefaults{
			SenderName: cfg.Campaign.SenderName,
			ValuePitch: cfg.Campaign.ValuePitch,
		},
		MaxItems: cfg.Campaign.MaxItems,
	})
	client.Bind(app.Session)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Start(ctx); err != nil {
		log.Warn("session restore failed", zap.Error(err))
	}
	go worker.NewSessionExpiryWorker(app.Session, log.Named("expiry")).Start(ctx)

	// 5. Handlers
	console := handlers.NewConsole(app, feedback, text, log.Named("console"), handlers.ConsoleConfig{
		SendDelaySeconds: cfg.Campaign.SendDelaySeconds,
	})
	go console.Limiter().Cleanup(5*time.Minute, ctx.Done())
	health := handlers.NewHealthHandler(client, store, cfg.Storage.Driver, amqpConn)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	if cfg.Console.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Console.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(middleware.Metrics)

	r.Get("/healthz", health.Handle)
	r.Handle("/metrics", promhttp.Handler())
	console.Mount(r)

	srv := &http.Server{
		Addr:              cfg.Console.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("console listening", zap.String("addr", cfg.Console.Addr), zap.String("backend", client.BaseURL()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("console server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
