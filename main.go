package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"storefront/config"
	"storefront/pkg/domain/service"
	"storefront/pkg/infrastructure/cartstore"
	"storefront/pkg/infrastructure/dataservice"
	"storefront/pkg/infrastructure/event"
	"storefront/transport"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})

	app := &cli.App{
		Name:   "storefront",
		Usage:  "storefront web client over the hosted data service",
		Action: runApp,
	}

	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("Failed to run app")
	}
}

func runApp(_ *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	client := dataservice.NewClient(cfg.DataServiceURL, cfg.DataServiceKey)
	products := dataservice.NewProductRepository(client)
	orders := dataservice.NewOrderRepository(client)
	addresses := dataservice.NewAddressRepository(client)
	profiles := dataservice.NewProfileRepository(client)

	carts := service.NewCartService(cartstore.NewFileStore(cfg.CartFile), client, orders, event.NewLogDispatcher())

	sessions := service.NewSessionService(client, profiles)
	sessions.Start(context.Background())
	defer sessions.Close()

	router := transport.Router(products, orders, addresses, carts, sessions)

	log.WithField("addr", cfg.ListenAddr).Info("Starting server")

	killSignalChan := getKillSignalChan()
	srv := startServer(cfg.ListenAddr, router)

	waitForKillSignalChan(killSignalChan)
	return srv.Shutdown(context.Background())
}

func startServer(addr string, router http.Handler) *http.Server {
	srv := &http.Server{Addr: addr, Handler: router}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("Failed to start server")
		}
	}()

	return srv
}

func getKillSignalChan() chan os.Signal {
	osKillSignalChan := make(chan os.Signal, 1)
	signal.Notify(osKillSignalChan, os.Interrupt, syscall.SIGTERM)
	return osKillSignalChan
}

func waitForKillSignalChan(killSignalChan <-chan os.Signal) {
	killSignal := <-killSignalChan
	switch killSignal {
	case os.Interrupt:
		log.Info("Got SIGINT...")
	case syscall.SIGTERM:
		log.Info("Got SIGTERM...")
	}
}
