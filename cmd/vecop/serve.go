package main

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v5"
	"github.com/labstack/echo/v5/middleware"
	"github.com/urfave/cli/v3"

	"github.com/samcharles93/vecop/internal/api"
	"github.com/samcharles93/vecop/internal/logger"
	"github.com/samcharles93/vecop/internal/store"
)

const (
	flagAddr      = "addr"
	flagRateLimit = "rate-limit"
	flagStore     = "store"
)

func serveCmd(g *globals) *cli.Command {
	var (
		addr        string
		rateLimit   float64
		storePath   string
		readTimeout time.Duration
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the evaluation REST API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        flagAddr,
				Usage:       "listen address",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
			&cli.Float64Flag{
				Name:        flagRateLimit,
				Usage:       "requests per second (0 disables limiting)",
				Destination: &rateLimit,
			},
			&cli.StringFlag{
				Name:        flagStore,
				Usage:       "bbolt file to persist evaluations in (default: memory)",
				Destination: &storePath,
			},
			&cli.DurationFlag{
				Name:        "read-timeout",
				Usage:       "read header timeout",
				Value:       30 * time.Second,
				Destination: &readTimeout,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyServeConfig(cmd, g.cfg, &addr, &rateLimit, &storePath)
			log := logger.FromContext(ctx)

			st, err := openStore(storePath)
			if err != nil {
				return err
			}
			defer func() {
				if err := st.Close(); err != nil {
					log.Warn("closing store", "error", err)
				}
			}()

			server := api.NewServer(g.dispatcher, st, log)
			e := echo.New()
			e.Use(middleware.RequestLogger())
			e.Use(middleware.Recover())
			e.Use(api.RateLimit(rateLimit))
			server.Register(e)

			log.Info("starting server", "address", addr, "store", storeLabel(storePath), "rate_limit", rateLimit)
			sc := echo.StartConfig{
				Address: addr,
				BeforeServeFunc: func(srv *http.Server) error {
					srv.ReadHeaderTimeout = readTimeout
					return nil
				},
			}
			return sc.Start(ctx, e)
		},
	}
}

// applyServeConfig applies config file defaults to serve flags that were not
// given on the command line.
func applyServeConfig(c *cli.Command, cfg Config, addr *string, rateLimit *float64, storePath *string) {
	if cfg.ServerAddress != "" && !c.IsSet(flagAddr) {
		*addr = cfg.ServerAddress
	}
	if cfg.RateLimit != nil && !c.IsSet(flagRateLimit) {
		*rateLimit = *cfg.RateLimit
	}
	if cfg.StorePath != "" && !c.IsSet(flagStore) {
		*storePath = cfg.StorePath
	}
}

func openStore(path string) (store.Store, error) {
	if path == "" {
		return store.NewMemory(), nil
	}
	return store.OpenBolt(path)
}

func storeLabel(path string) string {
	if path == "" {
		return "memory"
	}
	return path
}
