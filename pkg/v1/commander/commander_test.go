package commander_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/pricegrid/catalog-linker/pkg/v1/commander"
	"github.com/pricegrid/catalog-linker/pkg/v1/commander/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitSendMatchCommand(t *testing.T) {
	itemID := rand.Intn(100000) + 1
	body := []byte(fmt.Sprintf(`{"supplierItemId":%d,"attempt":0}`, itemID))

	tests := map[string]struct {
		senderError error
		wantErr     error
	}{
		"ok": {},
		"sender error": {
			senderError: assert.AnError,
			wantErr:     assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			matchSender := mocks.NewSender(t)
			aggregateSender := mocks.NewSender(t)
			matchSender.On("Send", mock.Anything, body).Return(tt.senderError)

			cmndr := commander.NewCommander(matchSender, aggregateSender)
			err := cmndr.SendMatchCommand(context.TODO(), commander.MatchCommand{SupplierItemID: itemID})

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}

func TestUnitSendAggregateCommand(t *testing.T) {
	productID := rand.Intn(100000) + 1
	body := []byte(fmt.Sprintf(`{"productId":%d,"reason":"linked","attempt":0}`, productID))

	tests := map[string]struct {
		senderError error
		wantErr     error
	}{
		"ok": {},
		"sender error": {
			senderError: assert.AnError,
			wantErr:     assert.AnError,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			matchSender := mocks.NewSender(t)
			aggregateSender := mocks.NewSender(t)
			aggregateSender.On("Send", mock.Anything, body).Return(tt.senderError)

			cmndr := commander.NewCommander(matchSender, aggregateSender)
			err := cmndr.SendAggregateCommand(context.TODO(), commander.AggregateCommand{
				ProductID: productID,
				Reason:    commander.ReasonLinked,
			})

			require.ErrorIs(t, err, tt.wantErr, "should return correct error")
		})
	}
}
