// Package main boots the order-to-delivery demo HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill"
	"golang.org/x/sync/errgroup"

	"github.com/ManabBehera342/biztab-order-validation/internal/catalog"
	"github.com/ManabBehera342/biztab-order-validation/internal/config"
	"github.com/ManabBehera342/biztab-order-validation/internal/feed"
	httpapi "github.com/ManabBehera342/biztab-order-validation/internal/http"
	"github.com/ManabBehera342/biztab-order-validation/internal/obs"
	"github.com/ManabBehera342/biztab-order-validation/internal/pipeline"
)

func main() {
	cfg := config.Load()
	obs.InitLogger()
	defer obs.Logger.Sync()
	obs.Logger.Infow("service_starting")

	cat := catalog.New()
	fd := feed.New(watermill.NewStdLogger(false, false))
	defer fd.Close()

	rules := pipeline.Rules{
		MinQuantity:      cfg.MinOrderQuantity,
		MaxAmount:        cfg.MaxOrderAmount,
		ServiceableZones: cfg.Zones(),
	}
	pl := pipeline.New(cat, rules,
		pipeline.WithPublisher(fd),
		pipeline.WithStageDelay(cfg.StageDelay()),
	)

	app := httpapi.NewApp(cfg, cat, pl, fd)
	e := httpapi.NewRouter(app)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		obs.Logger.Infow("http_listen", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shCtx, cancelSh := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancelSh()
		return e.Shutdown(shCtx)
	})

	if err := g.Wait(); err != nil {
		obs.Logger.Errorw("service_error", "error", err)
		os.Exit(1)
	}
	obs.Logger.Infow("service_stopped")
}
