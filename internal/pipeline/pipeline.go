// Package pipeline implements the linear order-to-delivery workflow:
// validation, inventory check, payment, fulfillment, shipment, and
// delivery confirmation, run strictly in sequence with short-circuit
// on the first failure.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/ManabBehera342/biztab-order-validation/internal/catalog"
	"github.com/ManabBehera342/biztab-order-validation/internal/model"
	"github.com/ManabBehera342/biztab-order-validation/internal/obs"
)

// StagePublisher receives every StageResult as it is produced, tagged
// with the order id, so the presentation layer can render progress
// live.
type StagePublisher interface {
	PublishStage(orderID string, res model.StageResult) error
}

// Pipeline orchestrates the six stages over injected state. It holds
// the process-lifetime set of accepted order ids.
type Pipeline struct {
	validator   *Validator
	inventory   *InventoryChecker
	payments    PaymentProcessor
	fulfillment *FulfillmentHandler
	delivery    DeliveryConfirmer
	processed   *ProcessedSet
	publisher   StagePublisher
	stageDelay  time.Duration
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithPayments substitutes the payment strategy.
func WithPayments(p PaymentProcessor) Option {
	return func(pl *Pipeline) { pl.payments = p }
}

// WithDelivery substitutes the delivery-confirmation strategy.
func WithDelivery(d DeliveryConfirmer) Option {
	return func(pl *Pipeline) { pl.delivery = d }
}

// WithPublisher attaches a live stage-event publisher.
func WithPublisher(pub StagePublisher) Option {
	return func(pl *Pipeline) { pl.publisher = pub }
}

// WithStageDelay sets the presentational pause inserted before each
// stage. Zero disables pacing.
func WithStageDelay(d time.Duration) Option {
	return func(pl *Pipeline) { pl.stageDelay = d }
}

// New wires a Pipeline over the given catalog and rules. The payment
// gateway and courier default to the demo mocks.
func New(cat *catalog.Store, rules Rules, opts ...Option) *Pipeline {
	processed := NewProcessedSet()
	p := &Pipeline{
		validator:   NewValidator(rules, processed),
		inventory:   NewInventoryChecker(cat),
		payments:    NewMockGateway(rules.MaxAmount),
		fulfillment: NewFulfillmentHandler(cat),
		delivery:    MockCourier{},
		processed:   processed,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Process runs the order through all stages and returns the results in
// stage order. The first negative result terminates the run; there is
// no compensation of prior steps, so a validated order id stays in the
// processed set even when a later stage fails.
func (p *Pipeline) Process(ctx context.Context, order model.Order) []model.StageResult {
	start := time.Now()
	obs.OrdersSubmitted.Inc()
	defer func() { obs.PipelineDuration.Observe(time.Since(start).Seconds()) }()

	status := model.StatusSubmitted
	results := make([]model.StageResult, 0, 6)

	emit := func(res model.StageResult) {
		results = append(results, res)
		if res.Success {
			status = res.Status
		} else {
			obs.StageFailures.WithLabelValues(string(res.Stage)).Inc()
		}
		if p.publisher != nil {
			if err := p.publisher.PublishStage(order.OrderID, res); err != nil {
				obs.Logger.Errorw("stage_publish_failed",
					"order_id", order.OrderID, "stage", res.Stage, "error", err)
			}
		}
		obs.Logger.Infow("stage_completed",
			"order_id", order.OrderID,
			"stage", res.Stage,
			"status", status,
			"success", res.Success,
			"message", res.Message,
		)
	}

	// runStage records the stage outcome; on failure the order keeps
	// the status it held before the stage.
	runStage := func(stage model.Stage, next model.Status, ok bool, msg string) bool {
		res := model.StageResult{Stage: stage, Status: next, Success: ok, Message: msg}
		if !ok {
			res.Status = status
		}
		emit(res)
		return ok
	}

	p.pause(ctx)
	ok, msg := p.validator.Validate(order)
	if !runStage(model.StageValidation, model.StatusValidated, ok, msg) {
		return results
	}
	p.processed.Add(order.OrderID)

	p.pause(ctx)
	ok, msg = p.inventory.CheckStock(order)
	if !runStage(model.StageInventory, model.StatusStockChecked, ok, msg) {
		return results
	}

	p.pause(ctx)
	ok, msg = p.payments.Charge(order.TotalAmount)
	if !runStage(model.StagePayment, model.StatusPaymentApproved, ok, msg) {
		return results
	}

	p.pause(ctx)
	runStage(model.StageFulfillment, model.StatusFulfilled, true, p.fulfillment.Fulfill(order))

	p.pause(ctx)
	trackingID := InitiateShipment()
	emit(model.StageResult{
		Stage:      model.StageShipment,
		Status:     model.StatusShipped,
		Success:    true,
		Message:    fmt.Sprintf("Shipment initiated | Tracking ID: %s", trackingID),
		TrackingID: trackingID,
	})

	p.pause(ctx)
	runStage(model.StageDelivery, model.StatusDelivered, true, p.delivery.ConfirmDelivery())
	obs.OrdersDelivered.Inc()
	return results
}

// pause sleeps for the configured stage delay. The pacing is purely
// presentational; a canceled context cuts the pause short but never
// aborts the run, since an in-flight submission cannot be interrupted.
func (p *Pipeline) pause(ctx context.Context) {
	if p.stageDelay <= 0 {
		return
	}
	t := time.NewTimer(p.stageDelay)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
