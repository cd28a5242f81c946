package pipeline

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ManabBehera342/biztab-order-validation/internal/catalog"
	"github.com/ManabBehera342/biztab-order-validation/internal/model"
	"github.com/ManabBehera342/biztab-order-validation/internal/obs"
)

func TestMain(m *testing.M) {
	obs.InitLogger()
	os.Exit(m.Run())
}

// recordingPublisher captures every stage event handed to it.
type recordingPublisher struct {
	orderIDs []string
	results  []model.StageResult
}

func (r *recordingPublisher) PublishStage(orderID string, res model.StageResult) error {
	r.orderIDs = append(r.orderIDs, orderID)
	r.results = append(r.results, res)
	return nil
}

func orderFor(cat *catalog.Store, t *testing.T, productID string, qty int64) model.Order {
	t.Helper()
	p, ok := cat.Get(productID)
	require.True(t, ok)
	return model.Order{
		OrderID:      NewOrderID(),
		ProductID:    productID,
		Quantity:     qty,
		TotalAmount:  p.Price * qty,
		DeliveryZone: "IN",
	}
}

func TestProcessHappyPath(t *testing.T) {
	cat := catalog.New()
	pub := &recordingPublisher{}
	pl := New(cat, DefaultRules(), WithPublisher(pub))

	order := orderFor(cat, t, "P001", 2)
	require.Equal(t, int64(1598), order.TotalAmount)

	results := pl.Process(context.Background(), order)
	require.Len(t, results, 6)

	wantStatuses := []model.Status{
		model.StatusValidated,
		model.StatusStockChecked,
		model.StatusPaymentApproved,
		model.StatusFulfilled,
		model.StatusShipped,
		model.StatusDelivered,
	}
	for i, res := range results {
		assert.True(t, res.Success, "stage %s", res.Stage)
		assert.Equal(t, wantStatuses[i], res.Status)
	}
	assert.Equal(t, MsgOrderValidated, results[0].Message)
	assert.Equal(t, "Stock available (15 units)", results[1].Message)
	assert.Equal(t, MsgPaymentSuccessful, results[2].Message)
	assert.Equal(t, MsgOrderPacked, results[3].Message)
	assert.Regexp(t, `^TRK-[0-9A-F]{8}$`, results[4].TrackingID)
	assert.Contains(t, results[4].Message, results[4].TrackingID)
	assert.Equal(t, MsgOrderDelivered, results[5].Message)

	p, _ := cat.Get("P001")
	assert.Equal(t, int64(13), p.Stock)

	assert.True(t, pl.processed.Contains(order.OrderID))

	// every stage event reached the publisher
	require.Len(t, pub.results, 6)
	for _, id := range pub.orderIDs {
		assert.Equal(t, order.OrderID, id)
	}
}

func TestProcessHaltsOnOutOfStock(t *testing.T) {
	cat := catalog.New()
	pl := New(cat, DefaultRules())

	order := orderFor(cat, t, "P003", 1)
	results := pl.Process(context.Background(), order)

	require.Len(t, results, 2)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.Equal(t, model.StageInventory, results[1].Stage)
	assert.Equal(t, MsgOutOfStock, results[1].Message)
	// the order keeps the status it held before the failing stage
	assert.Equal(t, model.StatusValidated, results[1].Status)

	// no compensation: the validated id stays in the processed set
	ok, msg := pl.validator.Validate(order)
	assert.False(t, ok)
	assert.Equal(t, MsgDuplicateOrder, msg)
}

func TestProcessHaltsOnRiskThreshold(t *testing.T) {
	cat := catalog.New()
	pl := New(cat, DefaultRules())

	order := orderFor(cat, t, "P004", 1)
	require.Equal(t, int64(5999), order.TotalAmount)

	results := pl.Process(context.Background(), order)
	require.Len(t, results, 1)
	assert.False(t, results[0].Success)
	assert.Equal(t, model.StageValidation, results[0].Stage)
	assert.Equal(t, MsgExceedsRisk, results[0].Message)
	assert.Equal(t, model.StatusSubmitted, results[0].Status)

	// a rejected order never enters the processed set
	assert.False(t, pl.processed.Contains(order.OrderID))

	// and stock is untouched
	p, _ := cat.Get("P004")
	assert.Equal(t, int64(8), p.Stock)
}

func TestProcessRejectsReplay(t *testing.T) {
	cat := catalog.New()
	pl := New(cat, DefaultRules())

	order := orderFor(cat, t, "P005", 1)
	first := pl.Process(context.Background(), order)
	require.Len(t, first, 6)

	second := pl.Process(context.Background(), order)
	require.Len(t, second, 1)
	assert.False(t, second[0].Success)
	assert.Equal(t, MsgDuplicateOrder, second[0].Message)

	// the replay never reached fulfillment
	p, _ := cat.Get("P005")
	assert.Equal(t, int64(19), p.Stock)
}

func TestProcessPluggableStages(t *testing.T) {
	cat := catalog.New()
	pl := New(cat, DefaultRules(),
		WithPayments(decliningGateway{}),
	)

	order := orderFor(cat, t, "P001", 1)
	results := pl.Process(context.Background(), order)

	require.Len(t, results, 3)
	assert.False(t, results[2].Success)
	assert.Equal(t, model.StagePayment, results[2].Stage)
	assert.Equal(t, "card declined", results[2].Message)

	// payment failed after validation: the id is still burned
	assert.True(t, pl.processed.Contains(order.OrderID))
	// and stock was never decremented
	p, _ := cat.Get("P001")
	assert.Equal(t, int64(15), p.Stock)
}

type decliningGateway struct{}

func (decliningGateway) Charge(int64) (bool, string) { return false, "card declined" }

func TestProcessStagePacing(t *testing.T) {
	cat := catalog.New()
	pl := New(cat, DefaultRules(), WithStageDelay(5*time.Millisecond))

	start := time.Now()
	results := pl.Process(context.Background(), orderFor(cat, t, "P001", 1))
	elapsed := time.Since(start)

	require.Len(t, results, 6)
	assert.GreaterOrEqual(t, elapsed, 30*time.Millisecond)
}

func TestProcessPacingCutShortByCancel(t *testing.T) {
	cat := catalog.New()
	pl := New(cat, DefaultRules(), WithStageDelay(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// a canceled context skips the pacing but never aborts the run
	results := pl.Process(ctx, orderFor(cat, t, "P001", 1))
	require.Len(t, results, 6)
	assert.Equal(t, model.StatusDelivered, results[5].Status)
}
