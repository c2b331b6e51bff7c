package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/auth"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/handlers/v1/card"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/handlers/v1/category"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/handlers/v1/dependent"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/handlers/v1/invoice"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/handlers/v1/status"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/handlers/v1/transaction"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/logging"
	"github.com/felippe-fernandes/credit-card-planner-backend-sub000/internal/service"
)

type Rest struct {
	Logger    *logrus.Logger
	Port      string
	JWTSecret string
	Service   *service.Service

	server *http.Server
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	// The status probe stays outside the Huma API so it needs no token.
	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("credit-card-planner", "1.0.0"))
	humaAPI.UseMiddleware(
		logging.Middleware(r.Logger),
		auth.Middleware(humaAPI, r.JWTSecret, r.Logger),
	)

	card.NewCreateCardHandler(r.Service.Card).Register(humaAPI)
	card.NewGetCardHandler(r.Service.Card).Register(humaAPI)
	card.NewListCardsHandler(r.Service.Card).Register(humaAPI)
	card.NewDeleteCardHandler(r.Service.Card).Register(humaAPI)

	category.NewHandler(r.Service.Category).Register(humaAPI)
	dependent.NewHandler(r.Service.Dependent).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewGetTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(humaAPI)

	invoice.NewListInvoicesHandler(r.Service.Invoice).Register(humaAPI)
	invoice.NewRebuildInvoicesHandler(r.Service.Invoice).Register(humaAPI)
	invoice.NewPayInvoiceHandler(r.Service.Invoice).Register(humaAPI)

	r.server = &http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := r.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (r *Rest) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}
