package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nftmarket/common/types"
	"nftmarket/model"
)

func TestSplitRoyalty(t *testing.T) {
	cases := []struct {
		price, pct, seller, royalty string
	}{
		{"100", "10", "90", "10"},
		{"100", "0", "100", "0"},
		{"100", "100", "0", "100"},
		{"2.5", "7.5", "2.3125", "0.1875"},
		{"0.000000000000000001", "50", "0.000000000000000001", "0"},
		{"0.000000000000000003", "50", "0.000000000000000002", "0.000000000000000001"},
		{"1", "33.333333333333333333", "0.666666666666666667", "0.333333333333333333"},
	}
	for _, c := range cases {
		seller, royalty, err := SplitRoyalty(amt(c.price), amt(c.pct))
		require.NoError(t, err, c.price)
		assert.Zero(t, seller.Cmp(amt(c.seller)), "seller of %s at %s%%: %s", c.price, c.pct, seller)
		assert.Zero(t, royalty.Cmp(amt(c.royalty)), "royalty of %s at %s%%: %s", c.price, c.pct, royalty)
		sum, err := seller.Add(royalty)
		require.NoError(t, err)
		assert.Zero(t, sum.Cmp(amt(c.price)))
	}
	_, _, err := SplitRoyalty(amt("100"), amt("101"))
	assert.Error(t, err)
	_, _, err = SplitRoyalty(amt("100"), amt("-1"))
	assert.Error(t, err)
}

func TestBuySplitsRoyalty(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	creator := addUser(t, s, "0")
	seller := addUser(t, s, "0")
	buyer := addUser(t, s, "250")
	c := addCollection(t, s, creator, "10")
	nft := addNFT(t, s, c, seller, "Sunset", "80")
	l := addListing(t, s, nft, "100")

	record, err := s.Buy(ctx, buyer, BuyInput{ListingID: l.ID})
	require.NoError(t, err)
	assert.Zero(t, record.Price.Cmp(amt("100")))
	assert.Zero(t, record.Royalty.Cmp(amt("10")))
	assert.Equal(t, model.TxCompleted, record.Status)
	assert.Equal(t, Network, record.Network)

	requireBalance(t, s, buyer, "150")
	requireBalance(t, s, seller, "90")
	requireBalance(t, s, creator, "10")

	var got model.NFT
	require.NoError(t, s.DB().Where("id = ?", nft.ID).Take(&got).Error)
	assert.Equal(t, buyer, got.OwnerWallet)
	assert.Zero(t, got.Price.Cmp(amt("100")))

	var listing model.Listing
	require.NoError(t, s.DB().Where("id = ?", l.ID).Take(&listing).Error)
	assert.Equal(t, model.ListingSold, listing.Status)
	require.NotNil(t, listing.TransactionID)
	assert.Equal(t, record.ID, *listing.TransactionID)

	var kinds []model.NotificationType
	require.NoError(t, s.DB().Model(&model.Notification{}).Where("user_wallet IN ?", []string{buyer, seller}).
		Order("type").Pluck("type", &kinds).Error)
	assert.Contains(t, kinds, model.NotifyPurchase)
	assert.Contains(t, kinds, model.NotifyItemSold)

	_, err = s.Buy(ctx, addUser(t, s, "500"), BuyInput{ListingID: l.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBusiness))
}

func TestCreatorBuyerCoversFullPrice(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	creator := addUser(t, s, "95")
	seller := addUser(t, s, "0")
	c := addCollection(t, s, creator, "10")
	l := addListing(t, s, addNFT(t, s, c, seller, "Echo", "100"), "100")

	_, err := s.Buy(ctx, creator, BuyInput{ListingID: l.ID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBusiness))
	requireBalance(t, s, creator, "95")
	requireBalance(t, s, seller, "0")

	require.NoError(t, s.DB().Model(&model.User{}).Where("wallet_address = ?", creator).Update("balance", amt("100")).Error)
	_, err = s.Buy(ctx, creator, BuyInput{ListingID: l.ID})
	require.NoError(t, err)
	requireBalance(t, s, creator, "10")
	requireBalance(t, s, seller, "90")
}

func TestCreatorBidderCoversFullPriceOnAccept(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	creator := addUser(t, s, "100")
	seller := addUser(t, s, "0")
	c := addCollection(t, s, creator, "10")
	l := addListing(t, s, addNFT(t, s, c, seller, "Echo", "50"), "50")

	bid, err := s.CreateBid(ctx, creator, CreateBidInput{ListingID: l.ID, Price: amt("100")})
	require.NoError(t, err)
	require.NoError(t, s.DB().Model(&model.User{}).Where("wallet_address = ?", creator).Update("balance", amt("95")).Error)

	accepted := true
	_, err = s.UpdateBid(ctx, seller, UpdateBidInput{BidID: bid.ID, Accepted: &accepted})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBusiness))
	requireBalance(t, s, creator, "95")
	requireBalance(t, s, seller, "0")
}

func TestBuyWithoutCreatorPaysSeller(t *testing.T) {
	s := newTestService(t)
	seller := addUser(t, s, "0")
	buyer := addUser(t, s, "100")
	c := addCollection(t, s, "0x0000000000000000000000000000000000000001", "25")
	l := addListing(t, s, addNFT(t, s, c, seller, "Orphan", "1"), "40")

	record, err := s.Buy(context.Background(), buyer, BuyInput{ListingID: l.ID})
	require.NoError(t, err)
	assert.True(t, record.Royalty.IsZero())
	requireBalance(t, s, seller, "40")
	requireBalance(t, s, buyer, "60")
}

func TestBuyRejections(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	seller := addUser(t, s, "0")
	poor := addUser(t, s, "5")
	c := addCollection(t, s, seller, "5")
	l := addListing(t, s, addNFT(t, s, c, seller, "Moon", "1"), "10")

	_, err := s.Buy(ctx, seller, BuyInput{ListingID: l.ID})
	assert.True(t, errors.Is(err, ErrBusiness))
	assert.EqualError(t, err, "You cannot buy your own listing")

	_, err = s.Buy(ctx, poor, BuyInput{ListingID: l.ID})
	assert.EqualError(t, err, "Insufficient balance")
	requireBalance(t, s, poor, "5")
	requireBalance(t, s, seller, "0")

	_, err = s.Buy(ctx, poor, BuyInput{ListingID: "missing"})
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.Buy(ctx, poor, BuyInput{})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestScheduledListingNotBuyable(t *testing.T) {
	s := newTestService(t)
	seller := addUser(t, s, "0")
	buyer := addUser(t, s, "100")
	c := addCollection(t, s, seller, "0")
	nft := addNFT(t, s, c, seller, "Later", "1")
	drop := time.Now().Add(time.Hour)
	l, err := s.CreateListing(context.Background(), seller, CreateListingInput{
		NFTID:        nft.ID,
		Price:        amt("10"),
		ContractAddr: "0x5b38da6a701c568545dcfcb03fcb875f56beddc4",
		DropAt:       &drop,
	})
	require.NoError(t, err)
	assert.Equal(t, model.ListingScheduled, l.Status)

	_, err = s.Buy(context.Background(), buyer, BuyInput{ListingID: l.ID})
	assert.EqualError(t, err, "Listing is not active")
}

func TestCreateListingRules(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	owner := addUser(t, s, "0")
	other := addUser(t, s, "0")
	c := addCollection(t, s, owner, "0")
	nft := addNFT(t, s, c, owner, "Dusk", "1")
	in := CreateListingInput{NFTID: nft.ID, Price: amt("3"), ContractAddr: "0x5b38da6a701c568545dcfcb03fcb875f56beddc4"}

	_, err := s.CreateListing(ctx, other, in)
	assert.True(t, errors.Is(err, ErrForbidden))

	zero := in
	zero.Price = types.Amount{}
	_, err = s.CreateListing(ctx, owner, zero)
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = s.CreateListing(ctx, owner, in)
	require.NoError(t, err)
	_, err = s.CreateListing(ctx, owner, in)
	assert.EqualError(t, err, "NFT is already listed")
}

func TestListingViews(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	seller := addUser(t, s, "0")
	bidder := addUser(t, s, "100")
	c := addCollection(t, s, seller, "0")
	first := addListing(t, s, addNFT(t, s, c, seller, "Red Fox", "1"), "10")
	addListing(t, s, addNFT(t, s, c, seller, "Blue Whale", "1"), "20")
	_, err := s.CreateBid(ctx, bidder, CreateBidInput{ListingID: first.ID, Price: amt("15")})
	require.NoError(t, err)

	page, err := s.Listings(ctx, ListingFilter{Wallet: seller, Sort: "listingPrice:desc"})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.EqualValues(t, 2, page.Total)
	assert.Equal(t, "Blue Whale", page.Items[0].NFTName)
	assert.Equal(t, c.Name, page.Items[0].CollectionName)

	page, err = s.Listings(ctx, ListingFilter{Wallet: seller, Name: "fox"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, first.ID, page.Items[0].ID)
	assert.Zero(t, page.Items[0].BestOffer.Cmp(amt("15")))
	assert.Zero(t, page.Items[0].ListingPrice.Cmp(amt("15")))

	page, err = s.Listings(ctx, ListingFilter{Wallet: seller, Status: "SOLD"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	_, err = s.Listings(ctx, ListingFilter{Wallet: seller, Sort: "color:asc"})
	assert.True(t, errors.Is(err, ErrValidation))

	view, err := s.Listing(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Red Fox", view.NFTName)
}

func TestTransactionsAndAttach(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	seller := addUser(t, s, "0")
	buyer := addUser(t, s, "100")
	c := addCollection(t, s, seller, "0")
	cheap := addListing(t, s, addNFT(t, s, c, seller, "Pebble", "1"), "5")
	dear := addListing(t, s, addNFT(t, s, c, seller, "Boulder", "1"), "50")
	for _, l := range []*model.Listing{cheap, dear} {
		_, err := s.Buy(ctx, buyer, BuyInput{ListingID: l.ID})
		require.NoError(t, err)
	}

	page, err := s.Transactions(ctx, TransactionFilter{Wallet: buyer, Role: "buyer"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)

	min := amt("10")
	page, err = s.Transactions(ctx, TransactionFilter{Wallet: seller, Role: "seller", MinPrice: &min})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Boulder", page.Items[0].NFTName)
	assert.Equal(t, buyer, page.Items[0].BuyerWallet)

	_, err = s.Transactions(ctx, TransactionFilter{Wallet: seller, Role: "broker"})
	assert.True(t, errors.Is(err, ErrValidation))

	var record model.Transaction
	require.NoError(t, s.DB().Where("listing_id = ?", cheap.ID).Take(&record).Error)
	_, err = s.AttachTransaction(ctx, buyer, AttachTransactionInput{ListingID: cheap.ID, TransactionID: record.ID})
	assert.True(t, errors.Is(err, ErrForbidden))
	_, err = s.AttachTransaction(ctx, seller, AttachTransactionInput{ListingID: dear.ID, TransactionID: record.ID})
	assert.True(t, errors.Is(err, ErrBusiness))
	l, err := s.AttachTransaction(ctx, seller, AttachTransactionInput{ListingID: cheap.ID, TransactionID: record.ID})
	require.NoError(t, err)
	assert.Equal(t, record.ID, *l.TransactionID)
}
