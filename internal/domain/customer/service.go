package customer

import (
	"context"
	"customer-catalog/internal/infrastructure/monitoring"
	"customer-catalog/internal/pkg/apperrors"
	"errors"
	"log/slog"
	"os"
)

const (
	NotFoundMessage = "Item not found"
	NotFoundCode    = apperrors.CodeNotFound

	internalMessage = "Internal error"
)

// CatalogService turns store queries into response envelopes. It never
// returns the store's out-of-range condition to its caller.
type CatalogService interface {
	GetCustomer(ctx context.Context, position int) Result
	ListCustomers(ctx context.Context) List
}

var _ CatalogService = (*catalogService)(nil)

type catalogService struct {
	store  Store
	logger *slog.Logger
}

func NewCatalogService(store Store, logger *slog.Logger) CatalogService {
	if store == nil {
		panic("customer store cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCatalogService, using default stderr handler")
	}

	return &catalogService{
		store:  store,
		logger: logger.With(slog.String("component", "catalogService")),
	}
}

func (s *catalogService) GetCustomer(ctx context.Context, position int) Result {
	logger := s.logger.With(slog.Int("position", position))
	logger.DebugContext(ctx, "Fetching customer by position")

	c, err := s.store.FindByPosition(ctx, position)
	switch {
	case err == nil:
		monitoring.RecordLookup(monitoring.OutcomeFound)
		logger.DebugContext(ctx, "Customer found", slog.Int("customerID", int(c.ID)))
		return Found(c)
	case errors.Is(err, apperrors.ErrOutOfRange):
		monitoring.RecordLookup(monitoring.OutcomeNotFound)
		logger.InfoContext(ctx, "Customer position out of range", slog.Any("error", err))
		return Failed(NotFoundMessage, NotFoundCode)
	default:
		monitoring.RecordLookup(monitoring.OutcomeFailed)
		logger.ErrorContext(ctx, "Store failed to fetch customer", slog.Any("error", err))
		return Failed(internalMessage, apperrors.CodeInternal)
	}
}

func (s *catalogService) ListCustomers(ctx context.Context) List {
	customers := s.store.FindAll(ctx)
	if customers == nil {
		customers = []Customer{}
	}
	s.logger.DebugContext(ctx, "Listed customers", slog.Int("count", len(customers)))
	return List{Customers: customers}
}
