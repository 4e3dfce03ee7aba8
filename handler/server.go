package handler

import (
	"net/http"

	"dsc/core"
	"dsc/handler/hc"
	"dsc/handler/rest"

	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
)

// Server api server
type Server struct {
	version        string
	engine         core.IEngine
	accountService core.IAccountService
	priceFeed      core.IPriceFeed
	priceSink      core.IPriceSink
	eventStore     core.IEventStore
}

// New new server
func New(
	version string,
	engine core.IEngine,
	accountService core.IAccountService,
	priceFeed core.IPriceFeed,
	priceSink core.IPriceSink,
	eventStore core.IEventStore,
) Server {
	return Server{
		version:        version,
		engine:         engine,
		accountService: accountService,
		priceFeed:      priceFeed,
		priceSink:      priceSink,
		eventStore:     eventStore,
	}
}

// Handler assembles the full route tree
func (s Server) Handler() http.Handler {
	mux := chi.NewMux()
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(cors.AllowAll().Handler)
	mux.Use(logger.WithRequestID)
	mux.Use(middleware.Logger)

	mux.Mount("/hc", hc.Handle(s.version))
	mux.Mount("/api", rest.Handle(s.engine, s.accountService, s.priceFeed, s.priceSink, s.eventStore))

	return mux
}
