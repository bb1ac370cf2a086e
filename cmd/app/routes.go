package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hibiken/asynq"
	"github.com/hibiken/asynqmon"

	"transferservice/internal/api"
	"transferservice/internal/api/middleware"
	"transferservice/internal/service"
)

func (app *App) initHTTP(
	quoteService service.QuoteServiceInterface,
	transferService service.TransferServiceInterface,
	settlementQueue api.SettlementQueue,
) {
	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.RequestLoggingMiddleware(app.logger))
	r.Use(chimiddleware.Recoverer)

	r.Post("/transfers/quote", api.HandleCreateQuote(quoteService))
	r.Get("/transfers/quote/{quoteId}", api.HandleGetQuote(quoteService))
	r.Post("/transfers", api.HandleCreateTransfer(transferService))
	r.Get("/transfers/{transferId:[0-9a-f-]{36}}", api.HandleGetTransfer(transferService))
	r.Post("/transfers/{transferId:[0-9a-f-]{36}}/settlement", api.HandleEnqueueSettlement(settlementQueue))
	r.Get("/healthz", api.HandleHealthz())
	r.Get("/readyz", api.HandleReadyz(app.db, app.rdbCache, app.rdbAsynq))

	if app.cfg.Server.ServeSwagger {
		r.Get("/swagger/*", api.SwaggerUIHandler())
		r.Get("/openapi.json", api.OpenAPISpecHandler())
	}

	if app.cfg.Server.ServeAsynqmon {
		mon := asynqmon.New(asynqmon.Options{
			RootPath:     "/monitoring",
			RedisConnOpt: asynq.RedisClientOpt{Addr: app.cfg.Redis.AsynqAddr},
		})
		r.Mount(mon.RootPath(), mon)
	}

	app.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Server.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
