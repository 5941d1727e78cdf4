package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListingTransitions(t *testing.T) {
	assert.NoError(t, ListingScheduled.To(ListingActive))
	assert.NoError(t, ListingActive.To(ListingSold))
	assert.Error(t, ListingScheduled.To(ListingSold))
	assert.Error(t, ListingSold.To(ListingActive))
	assert.Error(t, ListingActive.To(ListingScheduled))
	assert.True(t, ListingActive.Open())
	assert.False(t, ListingSold.Open())
	assert.False(t, ListingStatus("GONE").Valid())
}

func TestBidTransitions(t *testing.T) {
	assert.NoError(t, BidActive.To(BidAccepted))
	assert.NoError(t, BidActive.To(BidRejected))
	assert.Error(t, BidAccepted.To(BidRejected))
	assert.Error(t, BidRejected.To(BidActive))
	assert.Error(t, BidActive.To(BidActive))

	var illegal *ErrIllegalTransition
	err := BidRejected.To(BidAccepted)
	assert.True(t, errors.As(err, &illegal))
	assert.Equal(t, "bid cannot move from REJECTED to ACCEPTED", err.Error())
}

func TestTradeAndOtherTransitions(t *testing.T) {
	assert.NoError(t, TradePending.To(TradeCompleted))
	assert.NoError(t, TradePending.To(TradeCancelled))
	assert.Error(t, TradeCompleted.To(TradeCancelled))
	assert.Error(t, TradeCancelled.To(TradePending))

	assert.NoError(t, RequestPending.To(RequestAccepted))
	assert.Error(t, RequestRejected.To(RequestAccepted))

	assert.NoError(t, TxPending.To(TxCompleted))
	assert.Error(t, TxCompleted.To(TxFailed))

	assert.NoError(t, WebUnread.To(WebRead))
	assert.Error(t, WebRead.To(WebUnread))

	assert.NoError(t, EmailPending.To(EmailSent))
	assert.NoError(t, EmailFailed.To(EmailSent))
	assert.Error(t, EmailSent.To(EmailFailed))
}

func TestPreferencesWants(t *testing.T) {
	p := Preferences{Outbid: true}
	assert.True(t, p.Wants(NotifyOutbid))
	assert.False(t, p.Wants(NotifyPurchase))
	assert.False(t, p.Wants(NotifyBestOffer))
	assert.True(t, p.Wants(NotifySuccess), "success notifications are always delivered")
}
