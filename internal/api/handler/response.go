package handler

import (
	"customer-catalog/internal/api/codec"
	"customer-catalog/internal/api/handler/dto"
	"customer-catalog/internal/pkg/apperrors"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

const (
	headerProtobufSchema  = "X-Protobuf-Schema"
	headerProtobufMessage = "X-Protobuf-Message"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

// respondEncoded writes a negotiated payload. Domain errors travel inside the
// payload, so the status is always 200.
func respondEncoded(w http.ResponseWriter, c codec.Codec, message string, body []byte) {
	w.Header().Set("Content-Type", c.ContentType())
	w.Header().Add("Vary", "Accept")
	if c.Format() == codec.FormatProtobuf {
		w.Header().Set(headerProtobufSchema, codec.SchemaFile)
		w.Header().Set(headerProtobufMessage, message)
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func respondError(w http.ResponseWriter, err error) {
	status, message, code := http.StatusInternalServerError, "An unexpected error occurred.", apperrors.CodeInternal
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		status, message, code = http.StatusBadRequest, err.Error(), apperrors.CodeInvalidArgument
	case errors.Is(err, apperrors.ErrNotAcceptable):
		status, message, code = http.StatusNotAcceptable, err.Error(), apperrors.CodeNotAcceptable
	case errors.As(err, &appErr):
		message, code = appErr.Message, appErr.Code
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	respondJSON(w, status, dto.NewErrorResponse(message, code))
}
