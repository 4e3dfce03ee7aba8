package rest

import (
	"net/http"

	"dsc/core"
	"dsc/handler/param"
	"dsc/handler/render"
	"dsc/handler/views"
	"dsc/internal/dsc"

	"github.com/go-chi/chi"
)

func accountHandler(accountService core.IAccountService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user")

		account, err := accountService.Account(r.Context(), userID)
		if err != nil {
			render.EngineError(w, err)
			return
		}

		render.JSON(w, views.Account{
			Account: *account,
			Solvent: account.HealthFactor.GreaterThanOrEqual(dsc.MinHealthFactor),
		})
	}
}

func healthFactorHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "user")

		factor, err := engine.HealthFactor(r.Context(), userID)
		if err != nil {
			render.EngineError(w, err)
			return
		}

		render.JSON(w, render.H{
			"user_id":       userID,
			"health_factor": factor,
			"minimum":       engine.MinHealthFactor(),
		})
	}
}

func assetsHandler(engine core.IEngine, priceFeed core.IPriceFeed) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		assetViews := make([]*views.Asset, 0)
		for _, asset := range engine.RegisteredAssets() {
			price, err := priceFeed.LatestPrice(ctx, asset.FeedID)
			if err != nil {
				render.EngineError(w, err)
				return
			}

			assetViews = append(assetViews, &views.Asset{
				CollateralAsset: *asset,
				Price:           price,
			})
		}

		render.JSON(w, assetViews)
	}
}

func eventsHandler(eventStore core.IEventStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := param.QueryInt(r, "limit", 50)

		var (
			events []*core.Event
			err    error
		)
		if userID := r.URL.Query().Get("user"); userID != "" {
			events, err = eventStore.FindByUser(r.Context(), userID, limit)
		} else {
			events, err = eventStore.List(r.Context(), limit)
		}
		if err != nil {
			render.EngineError(w, err)
			return
		}

		render.JSON(w, events)
	}
}
