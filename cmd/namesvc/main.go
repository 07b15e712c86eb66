package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/na2na-p/compoundname/internal/config"
	"github.com/na2na-p/compoundname/internal/handler"
	appMiddleware "github.com/na2na-p/compoundname/internal/handler/middleware"
	"github.com/na2na-p/compoundname/internal/infrastructure/auth"
	"github.com/na2na-p/compoundname/internal/infrastructure/logging"
	"github.com/na2na-p/compoundname/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.Log.Level, os.Stdout)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	nameUC, err := usecase.NewNameUseCase(cfg.Names.Representation)
	if err != nil {
		return err
	}
	treeUC, err := usecase.NewTreeUseCase(context.Background(), cfg.Tree.Delimiter)
	if err != nil {
		return err
	}
	slog.Info("node tree initialized", "root_id", treeUC.RootID(), "delimiter", cfg.Tree.Delimiter)

	store, err := newNameStore(context.Background(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close name store", "error", err)
		}
	}()
	slog.Info("name store initialized", "driver", cfg.Store.Driver, "cache", cfg.Store.Cache)

	checkers := append([]usecase.HealthChecker{treeUC}, store.checkers...)
	deps := serverDeps{
		nameUC:      nameUC,
		savedNameUC: usecase.NewSavedNameUseCase(nameUC, store.repo),
		treeUC:      treeUC,
		readinessUC: usecase.NewReadinessUseCase(checkers...),
	}
	if cfg.Auth.Enabled() {
		slog.Info("bearer authentication enabled", "auth", cfg.Auth.String())
		deps.auth = appMiddleware.BearerAuth(auth.NewHMACVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience))
	}

	e := newServer(deps)

	ipExtractor, err := buildIPExtractor(cfg.Server.TrustedProxyCIDRs)
	if err != nil {
		return err
	}
	e.IPExtractor = ipExtractor

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", server.Addr)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		slog.Info("received shutdown signal")
	case err := <-errChan:
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	if err := e.Shutdown(ctx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}

type serverDeps struct {
	nameUC      handler.NameUseCase
	savedNameUC handler.SavedNameUseCase
	treeUC      handler.TreeUseCase
	readinessUC handler.ReadinessUseCaseInterface
	// auth がnilの場合、変更系のルートも認証なしで公開する
	auth echo.MiddlewareFunc
}

func newServer(deps serverDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = appMiddleware.CustomHTTPErrorHandler

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("request_id", v.RequestID),
				slog.String("method", v.Method),
				slog.String("uri", appMiddleware.MaskSensitiveParams(v.URI)),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				slog.LogAttrs(c.Request().Context(), slog.LevelError, "REQUEST", attrs...)
			} else {
				slog.LogAttrs(c.Request().Context(), slog.LevelInfo, "REQUEST", attrs...)
			}
			return nil
		},
	}))

	e.GET("/healthz", handler.HealthHandler)

	readyzHandler := handler.NewReadyzHandler(deps.readinessUC)
	e.GET("/readyz", readyzHandler.Handle)

	var mutating []echo.MiddlewareFunc
	if deps.auth != nil {
		mutating = append(mutating, deps.auth)
	}

	nameHandler := handler.NewNameHandler(deps.nameUC)
	names := e.Group("/names")
	names.POST("/describe", nameHandler.Describe)
	names.POST("/edit", nameHandler.Edit)
	names.POST("/compare", nameHandler.Compare)

	savedNameHandler := handler.NewSavedNameHandler(deps.savedNameUC)
	names.GET("/saved/:key", savedNameHandler.Get)
	names.PUT("/saved/:key", savedNameHandler.Save, mutating...)
	names.DELETE("/saved/:key", savedNameHandler.Delete, mutating...)

	nodeHandler := handler.NewNodeHandler(deps.treeUC)
	nodes := e.Group("/nodes")
	nodes.POST("", nodeHandler.Create, mutating...)
	nodes.GET("/:id", nodeHandler.Get)
	nodes.GET("/:id/children", nodeHandler.Children)
	nodes.PUT("/:id/name", nodeHandler.Rename, mutating...)
	nodes.PUT("/:id/parent", nodeHandler.Move, mutating...)
	nodes.PUT("/:id/target", nodeHandler.Retarget, mutating...)
	nodes.PUT("/:id/state", nodeHandler.ChangeState, mutating...)
	nodes.DELETE("/:id", nodeHandler.Delete, mutating...)

	return e
}

// buildIPExtractor は設定に基づいてIPエクストラクタを構築する。
// 信頼するプロキシのCIDRが指定されている場合、そのCIDRからのX-Forwarded-Forヘッダーのみを信頼する。
func buildIPExtractor(trustedProxyCIDRs []string) (echo.IPExtractor, error) {
	if len(trustedProxyCIDRs) == 0 {
		return echo.ExtractIPDirect(), nil
	}

	trustOptions := make([]echo.TrustOption, 0, len(trustedProxyCIDRs))
	for _, cidr := range trustedProxyCIDRs {
		_, ipNet, err := net.ParseCIDR(cidr)
		if err != nil {
			return nil, fmt.Errorf("invalid trusted proxy CIDR %q: %w", cidr, err)
		}
		trustOptions = append(trustOptions, echo.TrustIPRange(ipNet))
	}

	slog.Info("trusted proxy CIDRs configured", "cidrs", trustedProxyCIDRs)
	return echo.ExtractIPFromXFFHeader(trustOptions...), nil
}
