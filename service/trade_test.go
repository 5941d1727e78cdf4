package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nftmarket/model"
)

func ownerOf(t *testing.T, s *Service, nftID string) string {
	t.Helper()
	var n model.NFT
	require.NoError(t, s.DB().Where("id = ?", nftID).Take(&n).Error)
	return n.OwnerWallet
}

func TestTradeRequiresFriendship(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	a := addUser(t, s, "0")
	b := addUser(t, s, "0")
	c := addCollection(t, s, a, "0")
	mine := addNFT(t, s, c, a, "Mine", "1")

	in := CreateTradeInput{TakerWallet: b, OfferedNFTIDs: []string{mine.ID}}
	_, err := s.CreateTrade(ctx, a, in)
	assert.EqualError(t, err, "You can only trade with friends")

	_, err = s.CreateTrade(ctx, a, CreateTradeInput{TakerWallet: a, OfferedNFTIDs: []string{mine.ID}})
	assert.EqualError(t, err, "You cannot trade with yourself")

	befriend(t, s, a, b)
	_, err = s.CreateTrade(ctx, a, CreateTradeInput{TakerWallet: b})
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = s.CreateTrade(ctx, a, CreateTradeInput{TakerWallet: b, OfferedNFTIDs: []string{mine.ID, mine.ID}})
	assert.True(t, errors.Is(err, ErrValidation))

	trade, err := s.CreateTrade(ctx, a, in)
	require.NoError(t, err)
	assert.Equal(t, model.TradePending, trade.Status)
	require.Len(t, trade.Items, 1)
}

func TestTradeSwap(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	a := addUser(t, s, "0")
	b := addUser(t, s, "0")
	befriend(t, s, b, a)
	c := addCollection(t, s, a, "0")
	x := addNFT(t, s, c, a, "X", "1")
	y := addNFT(t, s, c, a, "Y", "1")
	z := addNFT(t, s, c, b, "Z", "1")

	trade, err := s.CreateTrade(ctx, a, CreateTradeInput{
		TakerWallet:     b,
		OfferedNFTIDs:   []string{x.ID, y.ID},
		RequestedNFTIDs: []string{z.ID},
	})
	require.NoError(t, err)

	_, err = s.UpdateTrade(ctx, a, UpdateTradeInput{TradeID: trade.ID, Accepted: boolPtr(true)})
	assert.True(t, errors.Is(err, ErrForbidden))

	done, err := s.UpdateTrade(ctx, b, UpdateTradeInput{TradeID: trade.ID, Accepted: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, model.TradeCompleted, done.Status)
	require.NotNil(t, done.ExchangeTime)

	assert.Equal(t, b, ownerOf(t, s, x.ID))
	assert.Equal(t, b, ownerOf(t, s, y.ID))
	assert.Equal(t, a, ownerOf(t, s, z.ID))

	var stored model.Trade
	require.NoError(t, s.DB().Where("id = ?", trade.ID).Take(&stored).Error)
	assert.Equal(t, model.TradeCompleted, stored.Status)
	assert.NotNil(t, stored.ExchangeTime)

	_, err = s.UpdateTrade(ctx, b, UpdateTradeInput{TradeID: trade.ID, Accepted: boolPtr(false)})
	assert.True(t, errors.Is(err, ErrBusiness))

	page, err := s.Trades(ctx, TradeFilter{Wallet: a, Type: "sent"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Len(t, page.Items[0].Items, 3)
}

func TestTradeRejectAndListedItems(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	a := addUser(t, s, "0")
	b := addUser(t, s, "0")
	befriend(t, s, a, b)
	c := addCollection(t, s, a, "0")
	x := addNFT(t, s, c, a, "X", "1")
	listed := addNFT(t, s, c, a, "Listed", "1")
	addListing(t, s, listed, "5")

	_, err := s.CreateTrade(ctx, a, CreateTradeInput{TakerWallet: b, OfferedNFTIDs: []string{listed.ID}})
	assert.EqualError(t, err, "Listed NFTs cannot be traded")

	_, err = s.CreateTrade(ctx, a, CreateTradeInput{TakerWallet: b, RequestedNFTIDs: []string{x.ID}})
	assert.True(t, errors.Is(err, ErrBusiness))

	trade, err := s.CreateTrade(ctx, a, CreateTradeInput{TakerWallet: b, OfferedNFTIDs: []string{x.ID}})
	require.NoError(t, err)
	cancelled, err := s.UpdateTrade(ctx, b, UpdateTradeInput{TradeID: trade.ID, Accepted: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, model.TradeCancelled, cancelled.Status)
	assert.Equal(t, a, ownerOf(t, s, x.ID))

	page, err := s.Trades(ctx, TradeFilter{Wallet: b, Status: string(model.TradeCancelled)})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
}

func TestTradeAcceptRejectsItemListedAfterOffer(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	a := addUser(t, s, "0")
	b := addUser(t, s, "0")
	befriend(t, s, a, b)
	c := addCollection(t, s, a, "0")
	x := addNFT(t, s, c, a, "X", "1")

	trade, err := s.CreateTrade(ctx, a, CreateTradeInput{TakerWallet: b, OfferedNFTIDs: []string{x.ID}})
	require.NoError(t, err)
	addListing(t, s, x, "5")

	_, err = s.UpdateTrade(ctx, b, UpdateTradeInput{TradeID: trade.ID, Accepted: boolPtr(true)})
	assert.EqualError(t, err, "Listed NFTs cannot be traded")
	assert.Equal(t, a, ownerOf(t, s, x.ID))

	var open int64
	require.NoError(t, s.DB().Model(&model.Listing{}).Where("nft_id = ? AND status = ?", x.ID, model.ListingActive).Count(&open).Error)
	assert.EqualValues(t, 1, open, "listing untouched")
}
