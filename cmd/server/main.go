package main // Entry point package

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"

	"github.com/pitchside/seatmap/internal/config"
	"github.com/pitchside/seatmap/internal/database"
	"github.com/pitchside/seatmap/internal/handler"
	"github.com/pitchside/seatmap/internal/match"
	"github.com/pitchside/seatmap/internal/middleware"
	"github.com/pitchside/seatmap/internal/queue"
	"github.com/pitchside/seatmap/internal/repository"
	"github.com/pitchside/seatmap/internal/router"
	"github.com/pitchside/seatmap/internal/seatstate"
	"github.com/pitchside/seatmap/internal/service"
	"github.com/pitchside/seatmap/internal/session"
	"github.com/pitchside/seatmap/internal/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	flags := pflag.NewFlagSet("seatmap-server", pflag.ContinueOnError)
	envFile := flags.String("env-file", ".env", "dotenv file loaded before reading the environment")
	stadiumFile := flags.String("stadium", "", "stadium layout YAML (overrides STADIUM_CONFIG)")
	matchesFile := flags.String("matches", "", "match board YAML (default: built-in fixtures)")
	devToken := flags.String("dev-token", "", "print a one-hour viewer token for this subject and exit")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	config.LoadDotEnv(*envFile)
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *devToken != "" {
		tok, err := utils.NewViewerToken(cfg.JWTSecret, *devToken, time.Hour)
		if err != nil {
			return err
		}
		fmt.Println(tok.Token)
		return nil
	}
	logger := config.NewLogger(os.Stderr, cfg.LogFormat, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stadium layout and match board.
	if *stadiumFile == "" {
		*stadiumFile = cfg.StadiumFile
	}
	st, err := config.LoadStadium(*stadiumFile)
	if err != nil {
		return err
	}
	layout, err := session.NewLayout(st.Geometry(), st.Pitch, st.SectionColors, st.ViewOptions())
	if err != nil {
		return err
	}
	if short := layout.Capacity.Shortfall(); short > 0 {
		logger.Warn("stadium holds fewer seats than requested",
			"requested", layout.Capacity.Requested, "realized", layout.Capacity.Realized, "shortfall", short)
	}
	board, err := match.LoadBoard(*matchesFile)
	if err != nil {
		return err
	}

	// Storage.
	db, err := database.Open(ctx, database.DSN(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName), cfg.DBTimeout)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("database connected", "addr", cfg.DBAddr(), "name", cfg.DBName)

	rdb := config.NewRedisClient(ctx)
	if rdb == nil {
		logger.Warn("redis unavailable, cache and rate limit disabled")
	} else {
		defer rdb.Close()
	}

	users := repository.NewUserRepo(db)
	sales := repository.NewSaleRepo(db)
	registry := session.NewRegistry(layout, sales, logger)

	// Sold seats pushed by the ticketing back end.
	applySold := func(ev queue.SeatsSoldEvent) {
		seats := seatstate.Dedupe(ev.Seats)
		n := registry.MarkSold(ev.MatchID, seats)
		logger.Debug("seats sold", "match_id", ev.MatchID, "seats", len(seats), "sessions", n)
	}
	switch cfg.SoldFeed {
	case config.FeedAMQP:
		go func() {
			if err := queue.StartSoldConsumer(ctx, cfg.RabbitURL, applySold, logger); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("sold consumer stopped", "err", err)
			}
		}()
	case config.FeedNATS:
		nc, err := queue.ConnectNATS(cfg.NATSURL, "seatmap-server", logger)
		if err != nil {
			return err
		}
		defer nc.Drain()
		if _, err := queue.SubscribeSoldNATS(nc, cfg.NATSSubject, applySold, logger); err != nil {
			return err
		}
	default:
		logger.Info("sold feed disabled; sold seats refresh on open and on demand")
	}

	publisher := service.NewCheckoutPublisher(cfg.RabbitURL, logger)

	// HTTP.
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency, "remote_ip", v.RemoteIP}
			if v.Error != nil {
				logger.Warn("request", append(attrs, "err", v.Error)...)
				return nil
			}
			logger.Info("request", attrs...)
			return nil
		},
	}))

	checks := map[string]handler.Check{"mysql": db.PingContext}
	if rdb != nil {
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	router.RegisterRoutes(e, checks)
	router.RegisterPublic(e, &handler.MatchHandler{Board: board}, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	router.RegisterViewer(e, cfg.JWTSecret, users, board)
	router.RegisterSeatMap(e,
		handler.NewSeatMapHandler(registry, board, publisher, logger),
		cfg.JWTSecret,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	)

	addr := ":" + cfg.Port
	errc := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", addr, "env", cfg.Env, "seats", layout.Capacity.Realized, "sold_feed", cfg.SoldFeed)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
