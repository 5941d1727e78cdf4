package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nftmarket/model"
)

func TestCreateCollectionAndNFT(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	creator := addUser(t, s, "0")
	image := &Upload{Name: "art.png", Data: []byte("png")}
	in := CreateCollectionInput{
		Name:            "Skyline",
		Symbol:          "SKY",
		ContractAddress: "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4",
		Royalties:       amt("7.5"),
		Blockchain:      "ETHEREUM",
		Website:         "https://skyline.example.com",
	}

	bad := in
	bad.Royalties = amt("120")
	_, err := s.CreateCollection(ctx, creator, bad, image)
	assert.True(t, errors.Is(err, ErrValidation))
	_, err = s.CreateCollection(ctx, creator, in, nil)
	assert.True(t, errors.Is(err, ErrValidation))
	short := in
	short.Symbol = "S"
	_, err = s.CreateCollection(ctx, creator, short, image)
	assert.True(t, errors.Is(err, ErrValidation))

	c, err := s.CreateCollection(ctx, creator, in, image)
	require.NoError(t, err)
	assert.Equal(t, "0x5b38da6a701c568545dcfcb03fcb875f56beddc4", c.ContractAddress)
	assert.Contains(t, c.Image, "art.png")
	assert.Contains(t, c.Metadata, "ipfs://")

	nft, err := s.CreateNFT(ctx, creator, CreateNFTInput{
		Name:         "Tower",
		CollectionID: c.ID,
		Quantity:     1,
		Price:        amt("2"),
		Traits:       []TraitInput{{TraitType: "floor", Value: "99"}},
	}, image)
	require.NoError(t, err)
	assert.Equal(t, creator, nft.OwnerWallet)
	assert.Nil(t, nft.TokenID)

	_, err = s.CreateNFT(ctx, creator, CreateNFTInput{Name: "Ghost", CollectionID: "missing", Quantity: 1}, image)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = s.SetTokenID(ctx, addUser(t, s, "0"), SetTokenIDInput{NFTID: nft.ID, TokenID: "7"})
	assert.True(t, errors.Is(err, ErrForbidden))
	_, err = s.SetTokenID(ctx, creator, SetTokenIDInput{NFTID: nft.ID, TokenID: "seven"})
	assert.True(t, errors.Is(err, ErrValidation))
	minted, err := s.SetTokenID(ctx, creator, SetTokenIDInput{NFTID: nft.ID, TokenID: "7"})
	require.NoError(t, err)
	assert.Equal(t, "7", *minted.TokenID)

	details, err := s.NFT(ctx, nft.ID)
	require.NoError(t, err)
	assert.Equal(t, "Skyline", details.CollectionName)
	require.Len(t, details.Traits, 1)
	require.Len(t, details.Activities, 1)
	assert.Equal(t, "Mint", details.Activities[0].EventType)
}

func TestNFTActivities(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	seller := addUser(t, s, "0")
	buyer := addUser(t, s, "100")
	c := addCollection(t, s, seller, "0")
	nft := addNFT(t, s, c, seller, "Wave", "5")
	l := addListing(t, s, nft, "10")
	_, err := s.CreateBid(ctx, buyer, CreateBidInput{ListingID: l.ID, Price: amt("12")})
	require.NoError(t, err)
	_, err = s.Buy(ctx, buyer, BuyInput{ListingID: l.ID})
	require.NoError(t, err)

	befriend(t, s, buyer, seller)
	trade, err := s.CreateTrade(ctx, buyer, CreateTradeInput{TakerWallet: seller, OfferedNFTIDs: []string{nft.ID}})
	require.NoError(t, err)
	_, err = s.UpdateTrade(ctx, seller, UpdateTradeInput{TradeID: trade.ID, Accepted: boolPtr(true)})
	require.NoError(t, err)

	details, err := s.NFT(ctx, nft.ID)
	require.NoError(t, err)
	kinds := map[string]Activity{}
	for _, a := range details.Activities {
		kinds[a.EventType] = a
	}
	assert.Len(t, details.Activities, 3)
	assert.NotContains(t, kinds, "Offer")
	require.Contains(t, kinds, "Sale")
	assert.Zero(t, kinds["Sale"].Price.Cmp(amt("12")))
	require.Contains(t, kinds, "Transfer")
	assert.Equal(t, buyer, kinds["Transfer"].From)
	assert.Equal(t, seller, kinds["Transfer"].To)

	all, err := s.CollectionActivities(ctx, c.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	offers, err := s.CollectionActivities(ctx, c.ID, []string{"Offer"})
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, buyer, offers[0].From)

	_, err = s.CollectionActivities(ctx, c.ID, []string{"Burn"})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestCollectionStats(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	creator := addUser(t, s, "0")
	buyer := addUser(t, s, "100")
	c := addCollection(t, s, creator, "0")
	addNFT(t, s, c, creator, "A", "4")
	b := addNFT(t, s, c, creator, "B", "9")
	_, err := s.Buy(ctx, buyer, BuyInput{ListingID: addListing(t, s, b, "20").ID})
	require.NoError(t, err)

	v, err := s.Collection(ctx, c.ID)
	require.NoError(t, err)
	assert.Zero(t, v.Floor.Cmp(amt("4")))
	assert.Zero(t, v.Volume.Cmp(amt("20")))
	assert.EqualValues(t, 2, v.ItemsCount)
	assert.EqualValues(t, 2, v.OwnersCount)
	assert.NotEmpty(t, v.CreatorName)

	other := addCollection(t, s, creator, "0")
	addNFT(t, s, other, creator, "C", "1")
	page, err := s.SearchCollections(ctx, "", "floor:asc", PageReq{})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, other.ID, page.Items[0].ID)

	mine, err := s.Collections(ctx, creator, PageReq{Limit: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, mine.Total)
	assert.Equal(t, 2, mine.TotalPages)
	assert.Len(t, mine.Items, 1)

	_, err = s.Collection(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNFTSearch(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	owner := addUser(t, s, "0")
	bidder := addUser(t, s, "100")
	c := addCollection(t, s, owner, "0")
	listed := addNFT(t, s, c, owner, "Golden Lion", "10")
	addNFT(t, s, c, owner, "Silver Lion", "3")
	addNFT(t, s, c, owner, "Paper Boat", "1")
	l := addListing(t, s, listed, "10")
	_, err := s.CreateBid(ctx, bidder, CreateBidInput{ListingID: l.ID, Price: amt("11")})
	require.NoError(t, err)

	page, err := s.SearchNFTs(ctx, SearchFilter{Query: "lion"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)

	page, err = s.SearchNFTs(ctx, SearchFilter{Status: "NEW"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)

	max := amt("5")
	owned, err := s.OwnedNFTs(ctx, OwnedFilter{Wallet: owner, MaxPrice: &max, Sort: "price:asc"})
	require.NoError(t, err)
	require.Len(t, owned.Items, 2)
	assert.Equal(t, "Paper Boat", owned.Items[0].Name)

	owned, err = s.OwnedNFTs(ctx, OwnedFilter{Wallet: owner, Status: "LISTED"})
	require.NoError(t, err)
	require.Len(t, owned.Items, 1)
	assert.Zero(t, owned.Items[0].BestOffer.Cmp(amt("11")))

	offered, err := s.CollectionNFTs(ctx, NFTFilter{CollectionID: c.ID, Status: "HAS_OFFERS"})
	require.NoError(t, err)
	require.Len(t, offered.Items, 1)
	assert.Equal(t, listed.ID, offered.Items[0].ID)

	_, err = s.CollectionNFTs(ctx, NFTFilter{CollectionID: c.ID, Status: "BURNT"})
	assert.True(t, errors.Is(err, ErrValidation))

	users, err := s.SearchUsers(ctx, "", PageReq{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, users.Total)
	var u model.User
	require.NoError(t, s.DB().Where("wallet_address = ?", bidder).Take(&u).Error)
	users, err = s.SearchUsers(ctx, u.Nickname, PageReq{})
	require.NoError(t, err)
	require.NotEmpty(t, users.Items)
	assert.Equal(t, bidder, users.Items[0].WalletAddress)
}

type fakeContracts map[string]bool

func (f fakeContracts) IsNFTContract(_ context.Context, address string) (bool, error) {
	return f[address], nil
}

func TestCreateCollectionVerifiesContract(t *testing.T) {
	s := newTestService(t)
	s.contracts = fakeContracts{"0x5B38Da6a701c568545dCfcB03FcB875f56beddC4": true}
	ctx := context.Background()
	creator := addUser(t, s, "0")
	image := &Upload{Name: "art.png", Data: []byte("png")}
	in := CreateCollectionInput{
		Name:            "Skyline",
		Symbol:          "SKY",
		ContractAddress: "0xAb8483F64d9C6d1EcF9b849Ae677dD3315835cb2",
		Royalties:       amt("5"),
		Blockchain:      "ETHEREUM",
	}

	_, err := s.CreateCollection(ctx, creator, in, image)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "contract_address", verr.Fields[0].Field)

	in.ContractAddress = "0x5B38Da6a701c568545dCfcB03FcB875f56beddC4"
	_, err = s.CreateCollection(ctx, creator, in, image)
	require.NoError(t, err)
}
