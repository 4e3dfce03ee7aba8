package rest

import (
	"net/http"

	"dsc/core"
	"dsc/handler/param"
	"dsc/handler/render"

	"github.com/shopspring/decimal"
)

type operationParams struct {
	UserID      string          `json:"user"`
	Liquidator  string          `json:"liquidator"`
	Symbol      string          `json:"symbol"`
	Amount      decimal.Decimal `json:"amount"`
	MintAmount  decimal.Decimal `json:"mint_amount"`
	BurnAmount  decimal.Decimal `json:"burn_amount"`
	DebtToCover decimal.Decimal `json:"debt_to_cover"`
}

func bindOperation(w http.ResponseWriter, r *http.Request) (*operationParams, bool) {
	var params operationParams
	if err := param.Binding(r, &params); err != nil {
		render.BadRequest(w, err)
		return nil, false
	}
	if params.UserID == "" {
		render.Error(w, http.StatusBadRequest, int(core.ErrUnknown), core.ErrUnknown)
		return nil, false
	}

	return &params, true
}

func runOperation(w http.ResponseWriter, err error) {
	if err != nil {
		render.EngineError(w, err)
		return
	}

	render.JSON(w, render.H{"ok": true})
}

func depositHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := bindOperation(w, r)
		if !ok {
			return
		}

		runOperation(w, engine.DepositCollateral(r.Context(), params.UserID, params.Symbol, params.Amount))
	}
}

func redeemHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := bindOperation(w, r)
		if !ok {
			return
		}

		runOperation(w, engine.RedeemCollateral(r.Context(), params.UserID, params.Symbol, params.Amount))
	}
}

func mintHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := bindOperation(w, r)
		if !ok {
			return
		}

		runOperation(w, engine.MintDsc(r.Context(), params.UserID, params.Amount))
	}
}

func burnHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := bindOperation(w, r)
		if !ok {
			return
		}

		runOperation(w, engine.BurnDsc(r.Context(), params.UserID, params.Amount))
	}
}

func depositAndMintHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := bindOperation(w, r)
		if !ok {
			return
		}

		runOperation(w, engine.DepositCollateralAndMintDsc(
			r.Context(), params.UserID, params.Symbol, params.Amount, params.MintAmount))
	}
}

func redeemForDscHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := bindOperation(w, r)
		if !ok {
			return
		}

		runOperation(w, engine.RedeemCollateralForDsc(
			r.Context(), params.UserID, params.Symbol, params.Amount, params.BurnAmount))
	}
}

func liquidateHandler(engine core.IEngine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := bindOperation(w, r)
		if !ok {
			return
		}

		runOperation(w, engine.Liquidate(
			r.Context(), params.Liquidator, params.UserID, params.Symbol, params.DebtToCover))
	}
}
