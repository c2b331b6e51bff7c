package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/api"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/config"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/logging"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/operator"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/service"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logger.Info("credit-card-planner starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logger.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)

	op := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	op.Start()

	svc := service.NewService(dbStorage, op, logger)

	scheduler := cron.New()
	_, err = scheduler.AddFunc(envConfig.RebuildSchedule, func() {
		upserted, rebuildErr := svc.Invoice.Rebuild(context.Background())
		if rebuildErr != nil {
			logger.WithError(rebuildErr).Error("Cron.RebuildInvoices")
			return
		}
		logger.WithField("upserted", upserted).Info("Cron.RebuildInvoices.Complete")
	})
	if err != nil {
		logger.WithError(err).Fatal("cron.AddFunc")
		return
	}
	scheduler.Start()

	httpRest := api.Rest{
		Logger:    logger,
		Port:      envConfig.Port,
		JWTSecret: envConfig.JWTSecret,
		Service:   svc,
	}
	go httpRest.Serve()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logger.Info("credit-card-planner shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpRest.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("HttpServer.Shutdown")
	}

	scheduler.Stop()
	op.Stop()
}
