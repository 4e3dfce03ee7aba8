package rest

import (
	"errors"
	"net/http"

	"dsc/core"
	"dsc/handler/render"

	"github.com/go-chi/chi"
)

// Handle handle rest api request
func Handle(
	engine core.IEngine,
	accountService core.IAccountService,
	priceFeed core.IPriceFeed,
	priceSink core.IPriceSink,
	eventStore core.IEventStore,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/assets", assetsHandler(engine, priceFeed))
	router.Get("/accounts/{user}", accountHandler(accountService))
	router.Get("/accounts/{user}/health-factor", healthFactorHandler(engine))
	router.Get("/events", eventsHandler(eventStore))

	router.Post("/deposit", depositHandler(engine))
	router.Post("/redeem", redeemHandler(engine))
	router.Post("/mint", mintHandler(engine))
	router.Post("/burn", burnHandler(engine))
	router.Post("/deposit-and-mint", depositAndMintHandler(engine))
	router.Post("/redeem-for-dsc", redeemForDscHandler(engine))
	router.Post("/liquidate", liquidateHandler(engine))
	router.Post("/prices", setPriceHandler(priceSink))

	return router
}
