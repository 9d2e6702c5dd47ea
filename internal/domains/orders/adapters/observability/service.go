package observability

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	orderdomain "github.com/Apurer/go-order-api/internal/domains/orders/domain"
	orderports "github.com/Apurer/go-order-api/internal/domains/orders/ports"
)

const tracerName = "github.com/Apurer/go-order-api/internal/domains/orders/adapters/observability/service"

// Service decorates the order service with tracing, logging, and metrics.
type Service struct {
	inner   orderports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wraps the core order service.
func New(inner orderports.Service, opts ...Option) orderports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	return s
}

func (s *Service) Create(ctx context.Context, order *orderdomain.Order) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Create",
		trace.WithAttributes(attribute.Int64("order.order_id", order.OrderID), attribute.Int64("order.user_id", order.UserID)))
	defer span.End()

	s.logInfo(ctx, "creating order", slog.Int64("order.order_id", order.OrderID), slog.Int64("order.user_id", order.UserID))
	result, err := s.inner.Create(ctx, order)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to create order", slog.Int64("order.order_id", order.OrderID))
	}
	s.metrics.recordCreated(ctx, result.Status)
	s.logInfo(ctx, "order created", slog.Int64("order.id", result.ID), slog.Int64("order.order_id", result.OrderID))
	return result, nil
}

func (s *Service) GetAll(ctx context.Context) ([]*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetAll")
	defer span.End()

	result, err := s.inner.GetAll(ctx)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders")
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetByID", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	result, err := s.inner.GetByID(ctx, id)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order", slog.Int64("order.id", id))
	}
	return result, nil
}

func (s *Service) GetByOrderID(ctx context.Context, orderID int64) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.GetByOrderID", trace.WithAttributes(attribute.Int64("order.order_id", orderID)))
	defer span.End()

	result, err := s.inner.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to load order by external id", slog.Int64("order.order_id", orderID))
	}
	return result, nil
}

func (s *Service) ListByUserID(ctx context.Context, userID int64) ([]*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListByUserID", trace.WithAttributes(attribute.Int64("order.user_id", userID)))
	defer span.End()

	result, err := s.inner.ListByUserID(ctx, userID)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders by user", slog.Int64("order.user_id", userID))
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListByStatus", trace.WithAttributes(attribute.String("order.status", status)))
	defer span.End()

	result, err := s.inner.ListByStatus(ctx, status)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders by status", slog.String("order.status", status))
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) ListByUserIDAndStatus(ctx context.Context, userID int64, status string) ([]*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ListByUserIDAndStatus",
		trace.WithAttributes(attribute.Int64("order.user_id", userID), attribute.String("order.status", status)))
	defer span.End()

	result, err := s.inner.ListByUserIDAndStatus(ctx, userID, status)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to list orders by user and status",
			slog.Int64("order.user_id", userID), slog.String("order.status", status))
	}
	span.SetAttributes(attribute.Int("orders.count", len(result)))
	return result, nil
}

func (s *Service) Update(ctx context.Context, id int64, patch orderdomain.Patch) (*orderdomain.Order, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Update", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "updating order", slog.Int64("order.id", id))
	result, err := s.inner.Update(ctx, id, patch)
	if err != nil {
		return nil, s.handleError(ctx, span, err, "failed to update order", slog.Int64("order.id", id))
	}
	s.metrics.recordUpdated(ctx)
	s.logInfo(ctx, "order updated", slog.Int64("order.id", result.ID), slog.String("order.status", result.Status))
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "OrderService.Delete", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	s.logInfo(ctx, "deleting order", slog.Int64("order.id", id))
	if err := s.inner.Delete(ctx, id); err != nil {
		return s.handleError(ctx, span, err, "failed to delete order", slog.Int64("order.id", id))
	}
	s.metrics.recordDeleted(ctx)
	s.logInfo(ctx, "order deleted", slog.Int64("order.id", id))
	return nil
}

func (s *Service) Exists(ctx context.Context, id int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.Exists", trace.WithAttributes(attribute.Int64("order.id", id)))
	defer span.End()

	result, err := s.inner.Exists(ctx, id)
	if err != nil {
		return false, s.handleError(ctx, span, err, "failed to check order existence", slog.Int64("order.id", id))
	}
	return result, nil
}

func (s *Service) ExistsByOrderID(ctx context.Context, orderID int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "OrderService.ExistsByOrderID", trace.WithAttributes(attribute.Int64("order.order_id", orderID)))
	defer span.End()

	result, err := s.inner.ExistsByOrderID(ctx, orderID)
	if err != nil {
		return false, s.handleError(ctx, span, err, "failed to check external id existence", slog.Int64("order.order_id", orderID))
	}
	return result, nil
}

func (s *Service) logInfo(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

func (s *Service) logError(ctx context.Context, msg string, err error, attrs ...slog.Attr) {
	if s.logger == nil {
		return
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	s.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
}

func (s *Service) handleError(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	s.logError(ctx, msg, err, attrs...)
	return err
}

type serviceMetrics struct {
	ordersCreated metric.Int64Counter
	ordersUpdated metric.Int64Counter
	ordersDeleted metric.Int64Counter
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		return serviceMetrics{}
	}
	ordersCreated, _ := m.Int64Counter("orders.service.created", metric.WithDescription("Number of orders created"))
	ordersUpdated, _ := m.Int64Counter("orders.service.updated", metric.WithDescription("Number of orders updated"))
	ordersDeleted, _ := m.Int64Counter("orders.service.deleted", metric.WithDescription("Number of orders deleted"))
	return serviceMetrics{ordersCreated: ordersCreated, ordersUpdated: ordersUpdated, ordersDeleted: ordersDeleted}
}

func (m serviceMetrics) recordCreated(ctx context.Context, status string) {
	if m.ordersCreated != nil {
		m.ordersCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("order.status", status)))
	}
}

func (m serviceMetrics) recordUpdated(ctx context.Context) {
	if m.ordersUpdated != nil {
		m.ordersUpdated.Add(ctx, 1)
	}
}

func (m serviceMetrics) recordDeleted(ctx context.Context) {
	if m.ordersDeleted != nil {
		m.ordersDeleted.Add(ctx, 1)
	}
}

var _ orderports.Service = (*Service)(nil)
