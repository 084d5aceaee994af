package handler

import (
	"customer-catalog/internal/api/codec"
	"customer-catalog/internal/domain/customer"
	"customer-catalog/internal/pkg/apperrors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type CustomerHandler struct {
	service customer.CatalogService
	codecs  *codec.Registry
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CatalogService, codecs *codec.Registry, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("catalog service cannot be nil")
	}
	if codecs == nil {
		panic("codec registry cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		codecs:  codecs,
		logger:  l.With("component", "CustomerHandler"),
	}
}

// getPositionFromURL reads {id}. The value is a zero-based position in the
// catalog, not a Customer.ID.
func getPositionFromURL(r *http.Request) (int, error) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		return 0, fmt.Errorf("%w: id not found in URL path", apperrors.ErrInvalidArgument)
	}
	position, err := strconv.ParseInt(idStr, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id format in URL path: %s", apperrors.ErrInvalidArgument, idStr)
	}
	return int(position), nil
}

// GetCustomer handles GET /customers/{id}
// @Summary Retrieve a customer by position
// @Description Returns the record at the given zero-based position of the catalog. The path value is a position, not the record id. A position outside the catalog yields an error envelope ("Item not found", "NF/404") with status 200.
// @Tags Customers
// @Produce json
// @Produce application/x-protobuf
// @Param id path int true "Zero-based catalog position"
// @Param format query string false "Overrides Accept negotiation" Enums(json, protobuf)
// @Success 200 {object} dto.CustomerResult "Result or error envelope"
// @Failure 400 {object} dto.ErrorResponse "Path value is not an integer"
// @Failure 406 {object} dto.ErrorResponse "No supported representation is acceptable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {

	c, err := h.codecs.Negotiate(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Content negotiation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	position, err := getPositionFromURL(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get position from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Calling catalog service GetCustomer", slog.Int("position", position))
	result := h.service.GetCustomer(r.Context(), position)

	body, err := c.MarshalResult(result)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to encode customer result", slog.Any("error", err))
		respondError(w, apperrors.WrapEncodingError(err, "failed to encode response"))
		return
	}

	if result.IsError() {
		h.logger.InfoContext(r.Context(), "Customer lookup returned error envelope",
			slog.Int("position", position), slog.String("code", result.Error.Code))
	} else {
		h.logger.InfoContext(r.Context(), "Customer retrieved successfully", slog.String("format", string(c.Format())))
	}
	respondEncoded(w, c, c.ResultMessage(), body)
}

// ListCustomers handles GET /customers
// @Summary List customers
// @Description Returns every catalog record in insertion order.
// @Tags Customers
// @Produce json
// @Produce application/x-protobuf
// @Param format query string false "Overrides Accept negotiation" Enums(json, protobuf)
// @Success 200 {object} dto.CustomerList "All customers"
// @Failure 406 {object} dto.ErrorResponse "No supported representation is acceptable"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {

	c, err := h.codecs.Negotiate(r)
	if err != nil {
		h.logger.WarnContext(r.Context(), "Content negotiation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Calling catalog service ListCustomers")
	list := h.service.ListCustomers(r.Context())

	body, err := c.MarshalList(list)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to encode customer list", slog.Any("error", err))
		respondError(w, apperrors.WrapEncodingError(err, "failed to encode response"))
		return
	}

	h.logger.InfoContext(r.Context(), "Customers listed successfully",
		slog.Int("count", len(list.Customers)), slog.String("format", string(c.Format())))
	respondEncoded(w, c, c.ListMessage(), body)
}
