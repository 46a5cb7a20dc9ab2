// Package registry implements the registration service: record creation with
// sequential protocol/draft numbering, filtered and paginated listing, and
// soft delete over the registration store.
package registry

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/akontos/protokolo/internal/registry/domain"
)

// PageSize is the fixed listing page size.
const PageSize = 100

// CreateRequest carries the inputs to Create.
type CreateRequest struct {
	Category domain.Category
	Form     domain.FormData
	Offices  []domain.Office
}

// CreateResult reports the identifiers assigned to a new registration.
type CreateResult struct {
	ID             string
	ProtocolNumber string
	DraftNumber    string
}

// Filters narrows a listing. Zero values mean "no filter"; Page is 1-based
// and defaults to the first page.
type Filters struct {
	// Month keeps registrations whose creation timestamp starts with the
	// given "YYYY-MM" prefix.
	Month string

	// Category keeps registrations of exactly this category when non-nil.
	Category *domain.Category

	// Page selects the 1-based result page of PageSize entries.
	Page int
}

// Service orchestrates registration creation, listing and soft delete.
// Construct with NewService and share a single instance per process.
type Service struct {
	registrations domain.RegistrationRepository
	counters      domain.CounterStore
	clock         domain.Clock
	identity      domain.IdentityProvider
	ids           domain.IDGenerator
	tracer        trace.Tracer
}

// NewService creates a registration service over the given collaborators.
// A nil tracer disables tracing.
func NewService(
	registrations domain.RegistrationRepository,
	counters domain.CounterStore,
	clock domain.Clock,
	identity domain.IdentityProvider,
	ids domain.IDGenerator,
	tracer trace.Tracer,
) *Service {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("registry")
	}
	return &Service{
		registrations: registrations,
		counters:      counters,
		clock:         clock,
		identity:      identity,
		ids:           ids,
		tracer:        tracer,
	}
}

// Create validates the request, allocates the protocol number (and draft
// number for outgoing categories), and persists a new registration.
//
// Validation happens before any allocation, so a rejected request leaves
// every counter untouched. If an allocation fails, nothing is persisted and
// the whole create can be retried from scratch.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	ctx, span := s.tracer.Start(ctx, "registry.create",
		trace.WithAttributes(attribute.String("registry.category", req.Category.Key())))
	defer span.End()

	if !req.Category.IsValid() {
		return nil, failSpan(span, &domain.ValidationError{Field: "category", Reason: "unknown category"})
	}
	if err := req.Form.Validate(req.Category); err != nil {
		return nil, failSpan(span, err)
	}
	offices, err := domain.NormalizeOffices(req.Offices)
	if err != nil {
		return nil, failSpan(span, err)
	}

	now := s.clock.Now()
	year, err := yearOf(now)
	if err != nil {
		return nil, failSpan(span, err)
	}

	key, start := domain.CounterKeyFor(req.Category, year)
	protocol, err := s.counters.AllocateNext(ctx, key, start)
	if err != nil {
		return nil, failSpan(span, err)
	}

	var draft string
	if domain.NeedsDraftNumber(req.Category) {
		draftKey, draftStart := domain.DraftCounterKey()
		n, err := s.counters.AllocateNext(ctx, draftKey, draftStart)
		if err != nil {
			return nil, failSpan(span, err)
		}
		draft = strconv.FormatInt(n, 10)
	}

	registration := domain.NewRegistration(
		s.ids.NewID(),
		req.Category,
		strconv.FormatInt(protocol, 10),
		draft,
		req.Form,
		offices,
		now,
		s.identity.CurrentUser(),
	)
	if err := s.registrations.Insert(ctx, registration); err != nil {
		return nil, failSpan(span, err)
	}

	span.SetAttributes(attribute.String("registry.protocol_number", registration.ProtocolNumber()))
	return &CreateResult{
		ID:             registration.ID(),
		ProtocolNumber: registration.ProtocolNumber(),
		DraftNumber:    registration.DraftNumber(),
	}, nil
}

// List returns one page of registrations matching the filters, most recent
// first. Soft-deleted registrations are included; callers distinguish them
// via IsDeleted. A page beyond the available data yields an empty slice.
func (s *Service) List(ctx context.Context, filters Filters) ([]*domain.Registration, error) {
	ctx, span := s.tracer.Start(ctx, "registry.list")
	defer span.End()

	all, err := s.registrations.GetAll(ctx)
	if err != nil {
		return nil, failSpan(span, err)
	}

	filtered := make([]*domain.Registration, 0, len(all))
	for _, r := range all {
		if filters.Month != "" && !strings.HasPrefix(r.CreatedAt(), filters.Month) {
			continue
		}
		if filters.Category != nil && r.Category() != *filters.Category {
			continue
		}
		filtered = append(filtered, r)
	}

	// Stable sort keeps insertion order for equal timestamps.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt() > filtered[j].CreatedAt()
	})

	page := filters.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize
	if offset >= len(filtered) {
		return []*domain.Registration{}, nil
	}
	end := offset + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	span.SetAttributes(attribute.Int("registry.results", end-offset))
	return filtered[offset:end], nil
}

// SoftDelete marks a registration as deleted without removing it. Deleting
// an unknown or already-deleted registration returns NotFoundError, so the
// original deletion timestamp is never rewritten.
func (s *Service) SoftDelete(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "registry.soft_delete",
		trace.WithAttributes(attribute.String("registry.id", id)))
	defer span.End()

	registration, err := s.registrations.Get(ctx, id)
	if err != nil {
		return failSpan(span, err)
	}
	if registration.IsDeleted() {
		return failSpan(span, &domain.NotFoundError{ID: id})
	}

	registration.SoftDelete(s.clock.Now())
	if err := s.registrations.Update(ctx, registration); err != nil {
		return failSpan(span, err)
	}
	return nil
}

// yearOf extracts the calendar year from an RFC 3339 timestamp string.
func yearOf(timestamp string) (int, error) {
	if len(timestamp) < 4 {
		return 0, fmt.Errorf("malformed timestamp %q", timestamp)
	}
	year, err := strconv.Atoi(timestamp[:4])
	if err != nil {
		return 0, fmt.Errorf("malformed timestamp %q: %w", timestamp, err)
	}
	return year, nil
}

// failSpan records an error on the span and passes it through.
func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
