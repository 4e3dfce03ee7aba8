package rest

import (
	"errors"
	"net/http"

	"dsc/core"
	"dsc/handler/param"
	"dsc/handler/render"

	"github.com/shopspring/decimal"
)

type priceParams struct {
	FeedID string          `json:"feed_id"`
	Price  decimal.Decimal `json:"price"`
}

// setPriceHandler publishes a new round for a feed, standing in for the
// external oracle network.
func setPriceHandler(priceSink core.IPriceSink) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params priceParams
		if err := param.Binding(r, &params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if params.FeedID == "" {
			render.BadRequest(w, errors.New("feed_id required"))
			return
		}

		if err := priceSink.SetPrice(r.Context(), params.FeedID, params.Price); err != nil {
			render.EngineError(w, err)
			return
		}

		render.JSON(w, render.H{"ok": true})
	}
}
