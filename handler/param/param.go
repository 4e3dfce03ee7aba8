package param

import (
	"encoding/json"
	"net/http"

	"github.com/spf13/cast"
)

// Binding decodes a JSON request body into v.
func Binding(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// QueryInt reads an integer query param with a default.
func QueryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}

	if v := cast.ToInt(raw); v > 0 {
		return v
	}

	return def
}
