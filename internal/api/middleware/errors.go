package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/hotel-booking/engine/internal/api/types"
)

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.NewErrorResponse(status, message))
}
