package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/healthcamp/dashboard/internal/config"
	"github.com/healthcamp/dashboard/internal/domain/activity"
	"github.com/healthcamp/dashboard/internal/domain/camp"
	"github.com/healthcamp/dashboard/internal/domain/doctor"
	"github.com/healthcamp/dashboard/internal/domain/family"
	"github.com/healthcamp/dashboard/internal/domain/healthrecord"
	"github.com/healthcamp/dashboard/internal/domain/patient"
	"github.com/healthcamp/dashboard/internal/domain/report"
	"github.com/healthcamp/dashboard/internal/domain/scheme"
	"github.com/healthcamp/dashboard/internal/domain/user"
	"github.com/healthcamp/dashboard/internal/platform/auth"
	"github.com/healthcamp/dashboard/internal/platform/browse"
	"github.com/healthcamp/dashboard/internal/platform/confirm"
	"github.com/healthcamp/dashboard/internal/platform/middleware"
	"github.com/healthcamp/dashboard/internal/platform/tui"
	"github.com/healthcamp/dashboard/internal/platform/websocket"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "camp-admin",
		Short: "Health camp administration dashboard",
	}

	root.AddCommand(serveCmd())
	root.AddCommand(browseCmd())
	root.AddCommand(exportCmd())
	root.AddCommand(seedCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a seeded collection in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			entity, _ := cmd.Flags().GetString("entity")
			pageSize, _ := cmd.Flags().GetInt("page-size")

			a := newApp(zerolog.Nop(), nil, time.Minute)
			src, err := a.source(entity)
			if err != nil {
				return err
			}

			p := tea.NewProgram(tui.NewModel(src, pageSize), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("terminal browser: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().String("entity", "doctors", "Collection to browse (doctors, camps, users, health-records, schemes, families, patients, activities)")
	cmd.Flags().Int("page-size", browse.DefaultLimits.DefaultSize, "Rows per page")
	return cmd
}

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a report as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, _ := cmd.Flags().GetString("type")
			out, _ := cmd.Flags().GetString("out")

			t, err := parseReportType(typ)
			if err != nil {
				return err
			}
			if out == "" {
				out = report.Filename(t)
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}

			a := newApp(zerolog.Nop(), nil, time.Minute)
			if err := a.reports.Export(w, t); err != nil {
				return fmt.Errorf("export %s: %w", t, err)
			}
			if out != "-" {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s report to %s\n", t, out)
			}
			return nil
		},
	}
	cmd.Flags().String("type", string(report.TypeMonthly), "Report type (monthly, participation, health-trends, comprehensive)")
	cmd.Flags().String("out", "", "Output file, - for stdout (default: the report's download name)")
	return cmd
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Print the size of every seeded collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes := newApp(zerolog.Nop(), nil, time.Minute).seedSizes()
			names := make([]string, 0, len(sizes))
			for n := range sizes {
				names = append(names, n)
			}
			sort.Strings(names)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%-16s %s\n", "COLLECTION", "RECORDS")
			for _, n := range names {
				fmt.Fprintf(w, "%-16s %d\n", n, sizes[n])
			}
			return nil
		},
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return logger.Level(level)
}

func runServer() error {
	// Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Logger
	logger := newLogger(cfg)

	var metrics *middleware.Metrics
	if cfg.MetricsEnabled {
		metrics = middleware.NewMetrics()
	}

	a := newApp(logger, metrics, cfg.ConfirmTTL)
	e := newServer(cfg, logger, a)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	logger.Info().Msg("server stopped")
	return nil
}

// newServer builds the echo instance with every route registered.
func newServer(cfg *config.Config, logger zerolog.Logger, a *app) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.BodyLimit(cfg.BodyLimit))

	if a.metrics != nil {
		e.Use(a.metrics.Middleware())
		e.GET("/metrics", echo.WrapHandler(a.metrics.Handler()))
	}

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// Sessions
	issuer := auth.NewIssuer(cfg.SigningKey(), cfg.SessionTTL)
	revoked := auth.NewRevocationList()
	if a.metrics != nil {
		a.metrics.Gauge("confirm", "pending_prompts", "Confirmation prompts awaiting an answer.", func() float64 {
			return float64(a.prompts.Pending())
		})
		a.metrics.Gauge("auth", "revoked_sessions", "Logged-out sessions whose tokens have not yet expired.", func() float64 {
			return float64(revoked.Count())
		})
	}

	api := e.Group("/api/v1")
	api.Use(auth.SessionMiddleware(issuer, revoked, logger))
	if cfg.IsDev() {
		api.Use(auth.DevSessionMiddleware())
	}

	authHandler := auth.NewHandler(issuer, revoked, a.users, cfg.LoginDelay, logger)
	authHandler.OnLogout(a.expansions.Forget)
	authHandler.RegisterRoutes(api.Group("", middleware.RateLimit(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.LoginRateRPS,
		BurstSize:         cfg.LoginRateBurst,
	})))

	websocket.NewHandler(a.hub).RegisterRoutes(api)

	limits := browse.Limits{DefaultSize: cfg.DefaultPageSize, MaxSize: cfg.MaxPageSize}
	admin := api.Group("", auth.RequirePortal(auth.PortalAdmin))
	doctorPortal := api.Group("/doctor", auth.RequirePortal(auth.PortalDoctor))

	confirm.NewHandler(a.prompts).RegisterRoutes(admin)
	activity.NewHandler(a.activity, limits).RegisterRoutes(admin)
	doctor.NewHandler(a.doctors, a.camps, limits).RegisterRoutes(admin)
	camp.NewHandler(a.camps, a.doctors, limits).RegisterRoutes(admin, doctorPortal)
	user.NewHandler(a.users, a.records, a.expansions, limits).RegisterRoutes(admin)
	healthrecord.NewHandler(a.records, a.camps, limits).RegisterRoutes(admin)
	scheme.NewHandler(a.schemes, limits).RegisterRoutes(admin)
	family.NewHandler(a.families, a.expansions, limits).RegisterRoutes(admin)
	patient.NewHandler(a.patients, limits).RegisterRoutes(doctorPortal)
	report.NewHandler(a.reports).RegisterRoutes(admin, doctorPortal)

	if cfg.IsDev() {
		admin.POST("/dev/reset", func(c echo.Context) error {
			a.reset()
			logger.Warn().Msg("all collections reset to seed data")
			return c.JSON(http.StatusOK, map[string]string{"status": "reset"})
		}, auth.RequireRole("admin"))
	}

	return e
}
