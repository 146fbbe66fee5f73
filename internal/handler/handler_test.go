package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/pricegrid/catalog-linker/internal/handler"
	"github.com/pricegrid/catalog-linker/internal/handler/mocks"
	"github.com/pricegrid/catalog-linker/internal/matcher"
	"github.com/pricegrid/catalog-linker/internal/platform"
	"github.com/pricegrid/catalog-linker/pkg/v1/commander"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testQueues = handler.Queues{
	MatchQueue:     "linker.match",
	AggregateQueue: "linker.aggregate",
	MatchKey:       "match",
	AggregateKey:   "aggregate",
	DeadLetterKey:  "dead-letter",
	Workers:        2,
}

// immediate backoff keeps retry publishing synchronous in tests
var testRetry = handler.RetryPolicy{
	Backoff:     []time.Duration{0},
	MaxAttempts: 3,
}

func newHandler(queue *mocks.Queue, mat *mocks.Matcher, agg *mocks.Aggregator) *handler.RMQHandler {
	logger := zerolog.Nop()
	return handler.NewHandler(queue, mat, agg, testRetry, testQueues, &logger)
}

func TestUnitHandleMatch(t *testing.T) {
	itemID := 7
	message := []byte(fmt.Sprintf(`{"supplierItemId":%d}`, itemID))

	queue := mocks.NewQueue(t)
	mat := mocks.NewMatcher(t)
	agg := mocks.NewAggregator(t)

	mat.On("Process", mock.Anything, itemID, false).Return(matcher.Decision{Outcome: matcher.OutcomeAutoLinked}, nil)

	han := newHandler(queue, mat, agg)

	err := han.HandleMatch(context.TODO(), message)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitHandleMatchMalformedMessage(t *testing.T) {
	queue := mocks.NewQueue(t)
	mat := mocks.NewMatcher(t)
	agg := mocks.NewAggregator(t)

	han := newHandler(queue, mat, agg)

	err := han.HandleMatch(context.TODO(), []byte("not json"))

	require.NoError(t, err, "malformed messages should be dropped, not retried")
	mat.AssertNotCalled(t, "Process", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnitHandleMatchForcedNewProduct(t *testing.T) {
	itemID := 7
	message, err := json.Marshal(commander.MatchCommand{SupplierItemID: itemID, ForceNewProduct: true})
	require.NoError(t, err)

	queue := mocks.NewQueue(t)
	mat := mocks.NewMatcher(t)
	agg := mocks.NewAggregator(t)

	mat.On("Process", mock.Anything, itemID, true).
		Return(matcher.Decision{Outcome: matcher.OutcomeNewProduct}, nil)

	han := newHandler(queue, mat, agg)

	handleErr := han.HandleMatch(context.TODO(), message)

	require.NoError(t, handleErr, "shouldn't return any error")
	mat.AssertCalled(t, "Process", mock.Anything, itemID, true)
}

func TestUnitHandleMatchPermanentError(t *testing.T) {
	permanentErrors := []error{
		platform.ErrEmptyName,
		platform.ErrNotFound,
		platform.ErrInvalidTransition,
	}

	for _, permanent := range permanentErrors {
		t.Run(permanent.Error(), func(t *testing.T) {
			itemID := 7
			message := []byte(fmt.Sprintf(`{"supplierItemId":%d}`, itemID))

			queue := mocks.NewQueue(t)
			mat := mocks.NewMatcher(t)
			agg := mocks.NewAggregator(t)

			mat.On("Process", mock.Anything, itemID, false).
				Return(matcher.Decision{}, fmt.Errorf("can't match: %w", permanent))

			han := newHandler(queue, mat, agg)

			err := han.HandleMatch(context.TODO(), message)

			require.NoError(t, err, "permanent failures should be acked, not retried")
			queue.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUnitHandleMatchTransientErrorRetries(t *testing.T) {
	itemID := 7
	message := []byte(fmt.Sprintf(`{"supplierItemId":%d}`, itemID))
	retried, err := json.Marshal(commander.MatchCommand{SupplierItemID: itemID, Attempt: 1})
	require.NoError(t, err)

	queue := mocks.NewQueue(t)
	mat := mocks.NewMatcher(t)
	agg := mocks.NewAggregator(t)

	mat.On("Process", mock.Anything, itemID, false).Return(matcher.Decision{}, assert.AnError)
	queue.On("Publish", mock.Anything, testQueues.MatchKey, retried).Return(nil)

	han := newHandler(queue, mat, agg)

	handleErr := han.HandleMatch(context.TODO(), message)

	require.NoError(t, handleErr, "retried messages should still be acked")
	queue.AssertCalled(t, "Publish", mock.Anything, testQueues.MatchKey, retried)
}

func TestUnitHandleMatchExhaustedRetriesDeadLetter(t *testing.T) {
	itemID := 7
	lastAttempt := testRetry.MaxAttempts - 1
	message, err := json.Marshal(commander.MatchCommand{SupplierItemID: itemID, Attempt: lastAttempt})
	require.NoError(t, err)

	queue := mocks.NewQueue(t)
	mat := mocks.NewMatcher(t)
	agg := mocks.NewAggregator(t)

	mat.On("Process", mock.Anything, itemID, false).Return(matcher.Decision{}, assert.AnError)
	queue.On("Publish", mock.Anything, testQueues.DeadLetterKey, message).Return(nil)

	han := newHandler(queue, mat, agg)

	handleErr := han.HandleMatch(context.TODO(), message)

	require.NoError(t, handleErr, "dead-lettered messages should still be acked")
	queue.AssertCalled(t, "Publish", mock.Anything, testQueues.DeadLetterKey, message)
}

func TestUnitHandleAggregate(t *testing.T) {
	productID := 11
	message := []byte(fmt.Sprintf(`{"productId":%d,"reason":"linked"}`, productID))

	queue := mocks.NewQueue(t)
	mat := mocks.NewMatcher(t)
	agg := mocks.NewAggregator(t)

	agg.On("Recompute", mock.Anything, productID).Return(nil)

	han := newHandler(queue, mat, agg)

	err := han.HandleAggregate(context.TODO(), message)

	require.NoError(t, err, "shouldn't return any error")
}

func TestUnitHandleAggregateLockedRequeues(t *testing.T) {
	productID := 11
	cmd := commander.AggregateCommand{ProductID: productID, Reason: commander.ReasonLinked}
	message, err := json.Marshal(cmd)
	require.NoError(t, err)

	queue := mocks.NewQueue(t)
	mat := mocks.NewMatcher(t)
	agg := mocks.NewAggregator(t)

	agg.On("Recompute", mock.Anything, productID).Return(platform.ErrRecomputeLocked)
	queue.On("Publish", mock.Anything, testQueues.AggregateKey, message).Return(nil)

	han := newHandler(queue, mat, agg)

	handleErr := han.HandleAggregate(context.TODO(), message)

	require.NoError(t, handleErr, "a held lock shouldn't fail the message")
	queue.AssertCalled(t, "Publish", mock.Anything, testQueues.AggregateKey, message)
}

func TestUnitHandleAggregateTransientErrorRetries(t *testing.T) {
	productID := 11
	cmd := commander.AggregateCommand{ProductID: productID, Reason: commander.ReasonUnlinked}
	message, err := json.Marshal(cmd)
	require.NoError(t, err)

	retriedCmd := cmd
	retriedCmd.Attempt = 1
	retried, err := json.Marshal(retriedCmd)
	require.NoError(t, err)

	queue := mocks.NewQueue(t)
	mat := mocks.NewMatcher(t)
	agg := mocks.NewAggregator(t)

	agg.On("Recompute", mock.Anything, productID).Return(assert.AnError)
	queue.On("Publish", mock.Anything, testQueues.AggregateKey, retried).Return(nil)

	han := newHandler(queue, mat, agg)

	handleErr := han.HandleAggregate(context.TODO(), message)

	require.NoError(t, handleErr, "retried messages should still be acked")
}

func TestUnitRetryPolicyDelay(t *testing.T) {
	policy := handler.RetryPolicy{
		Backoff:     []time.Duration{time.Second, 5 * time.Second, 25 * time.Second},
		MaxAttempts: 3,
	}

	assert.Equal(t, time.Second, policy.Delay(0), "first retry should use the first delay")
	assert.Equal(t, 5*time.Second, policy.Delay(1), "second retry should use the second delay")
	assert.Equal(t, 25*time.Second, policy.Delay(2), "third retry should use the third delay")
	assert.Equal(t, 25*time.Second, policy.Delay(9), "later retries should reuse the last delay")
	assert.Equal(t, time.Second, policy.FirstDelay(), "first delay should be the shortest")

	var empty handler.RetryPolicy
	assert.Zero(t, empty.Delay(0), "empty schedule should mean no delay")
}
