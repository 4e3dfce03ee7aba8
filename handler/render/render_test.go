package render

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"dsc/core"
	"dsc/pkg/number"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineErrorStatus(t *testing.T) {
	for _, tt := range []struct {
		err    error
		status int
		code   int
	}{
		{core.ErrReentrantCall, http.StatusConflict, 100001},
		{core.ErrAssetNotRegistered, http.StatusNotFound, 100100},
		{core.ErrInvalidAmount, http.StatusBadRequest, 100101},
		{core.ErrHealthFactorOk, http.StatusUnprocessableEntity, 100110},
		{
			&core.HealthFactorError{Code: core.ErrHealthFactorViolated, Factor: number.Decimal("0.5")},
			http.StatusUnprocessableEntity,
			100109,
		},
		{
			&core.TransferError{Symbol: "WETH", Err: core.ErrInsufficientBalance},
			http.StatusBadRequest,
			100105,
		},
	} {
		w := httptest.NewRecorder()
		EngineError(w, tt.err)

		assert.Equal(t, tt.status, w.Code, "status for %v", tt.err)

		var body struct {
			Code int    `json:"code"`
			Msg  string `json:"msg"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tt.code, body.Code, "code for %v", tt.err)
	}
}

func TestJSONEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, H{"ok": true})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"ok":true}}`, w.Body.String())
}
