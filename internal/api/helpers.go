package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/eduboard/academy/internal/entity"
)

type ErrorResponse struct {
	Message     string `json:"message"`
	Description string `json:"description,omitempty"`
}

func SendJSONErr(ctx context.Context, w http.ResponseWriter, code int, originErr error, msgToSend string) {
	if originErr != nil {
		slog.ErrorContext(ctx, "api error", "error", originErr.Error())
		SendJSON(ctx, w, code, ErrorResponse{Message: msgToSend, Description: originErr.Error()})

		return
	}

	SendJSON(ctx, w, code, ErrorResponse{Message: msgToSend})
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		code = http.StatusInternalServerError
		http.Error(w, http.StatusText(code), code)

		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}

// sendServiceErr maps the service error taxonomy to HTTP status codes.
func sendServiceErr(ctx context.Context, w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, entity.ErrInvalidArgument):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid request")
	case errors.Is(err, entity.ErrInvalidRelation):
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Receipt does not belong to the invoice")
	case errors.Is(err, entity.ErrAlreadyApproved):
		SendJSONErr(ctx, w, http.StatusConflict, err, "Receipt is already approved")
	case errors.Is(err, entity.ErrNotFound):
		SendJSONErr(ctx, w, http.StatusNotFound, err, "Not found")
	case errors.Is(err, entity.ErrForbidden):
		SendJSONErr(ctx, w, http.StatusForbidden, err, "Action is not allowed")
	case errors.Is(err, entity.ErrUnauthenticated):
		SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Authentication required")
	default:
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, fallbackMsg)
	}
}
