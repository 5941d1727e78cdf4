package service

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"nftmarket/common/types"
	"nftmarket/model"
)

// ListingView listing card with its NFT, collection and seller
type ListingView struct {
	ID             string              `json:"id"`
	NFTID          string              `json:"nft_id"`
	NFTName        string              `json:"nft_name"`
	NFTImage       string              `json:"nft_image"`
	CollectionName string              `json:"collection_name"`
	SellerName     string              `json:"seller_name"`
	SellerImage    string              `json:"seller_image"`
	SellerWallet   string              `json:"seller_wallet"`
	ListingPrice   types.Amount        `json:"listing_price" swaggertype:"number"`
	BestOffer      types.Amount        `json:"best_offer" swaggertype:"number"` //highest ACTIVE bid, 0 without bids
	Status         model.ListingStatus `json:"status"`
	DropAt         time.Time           `json:"drop_at"`
	LastListed     time.Time           `json:"last_listed"` //latest drop time among the NFT's listings
}

// TransactionView sale record with buyer, seller and NFT details
type TransactionView struct {
	ID           string       `json:"id"`
	NFTID        string       `json:"nft_id"`
	NFTName      string       `json:"nft_name"`
	NFTImage     string       `json:"nft_image"`
	ListingID    string       `json:"listing_id"`
	BuyerName    string       `json:"buyer_name"`
	BuyerImage   string       `json:"buyer_image"`
	BuyerWallet  string       `json:"buyer_wallet"`
	SellerName   string       `json:"seller_name"`
	SellerImage  string       `json:"seller_image"`
	SellerWallet string       `json:"seller_wallet"`
	Price        types.Amount `json:"price" swaggertype:"number"`
	Royalty      types.Amount `json:"royalty" swaggertype:"number"`
	CreatedAt    time.Time    `json:"created_at"`
}

// BidView bid with its distance to the NFT price
type BidView struct {
	ID              string          `json:"id"`
	ListingID       string          `json:"listing_id"`
	BidderWallet    string          `json:"bidder_wallet"`
	BidderName      string          `json:"bidder_name"`
	Price           types.Amount    `json:"price" swaggertype:"number"`
	FloorDifference float64         `json:"floor_difference"` //percent above (or below) the NFT price
	Status          model.BidStatus `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	ExpiresAt       time.Time       `json:"expires_at"`
}

// NFTCard search result card
type NFTCard struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Image       string       `json:"image"`
	Price       types.Amount `json:"price" swaggertype:"number"`
	BestOffer   types.Amount `json:"best_offer" swaggertype:"number"`
	OwnerWallet string       `json:"owner_wallet"`
	OwnerName   string       `json:"owner_name"`
	OwnerAvatar string       `json:"owner_avatar"`
}

// Activity one event in the history of an NFT or collection
type Activity struct {
	EventType string        `json:"event_type"` //Mint, Sale, Transfer or Offer
	NFTID     string        `json:"nft_id"`
	From      string        `json:"from"`
	To        string        `json:"to"`
	Price     *types.Amount `json:"price,omitempty" swaggertype:"number"`
	Date      time.Time     `json:"date"`
}

const unknown = "Unknown"

// users loads the profiles of the wallets keyed by wallet
func users(tx *gorm.DB, wallets []string) (map[string]model.User, error) {
	out := map[string]model.User{}
	if len(wallets) == 0 {
		return out, nil
	}
	var list []model.User
	if err := tx.Where("wallet_address IN ?", dedupe(wallets)).Find(&list).Error; err != nil {
		return nil, errors.Wrap(err, "load users")
	}
	for _, u := range list {
		out[u.WalletAddress] = u
	}
	return out, nil
}

// nicknameOf falls back to Unknown for wallets without an account
func nicknameOf(m map[string]model.User, wallet string) (string, string) {
	u, ok := m[wallet]
	if !ok {
		return unknown, ""
	}
	return u.Nickname, u.Avatar
}

// bestOffers highest ACTIVE bid per listing
func bestOffers(tx *gorm.DB, listingIDs []string) (map[string]types.Amount, error) {
	out := map[string]types.Amount{}
	if len(listingIDs) == 0 {
		return out, nil
	}
	var bids []model.Bid
	err := tx.Where("listing_id IN ? AND status = ?", dedupe(listingIDs), model.BidActive).Find(&bids).Error
	if err != nil {
		return nil, errors.Wrap(err, "load bids")
	}
	for _, b := range bids {
		if cur, ok := out[b.ListingID]; !ok || b.Price.Cmp(cur) > 0 {
			out[b.ListingID] = b.Price
		}
	}
	return out, nil
}

// nftBestOffers highest ACTIVE bid per NFT over all of its listings
func nftBestOffers(tx *gorm.DB, nftIDs []string) (map[string]types.Amount, error) {
	out := map[string]types.Amount{}
	if len(nftIDs) == 0 {
		return out, nil
	}
	var rows []struct {
		NFTID string       `gorm:"column:nft_id"`
		Price types.Amount `gorm:"column:price"`
	}
	err := tx.Model(&model.Bid{}).
		Joins("JOIN listings ON listings.id = bids.listing_id").
		Where("listings.nft_id IN ? AND bids.status = ?", dedupe(nftIDs), model.BidActive).
		Select("listings.nft_id AS nft_id, bids.price AS price").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "load bids")
	}
	for _, r := range rows {
		if cur, ok := out[r.NFTID]; !ok || r.Price.Cmp(cur) > 0 {
			out[r.NFTID] = r.Price
		}
	}
	return out, nil
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0:0]
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// nftCards maps NFTs to cards with owner and best offer
func nftCards(tx *gorm.DB, nfts []model.NFT) ([]NFTCard, error) {
	ids := make([]string, len(nfts))
	owners := make([]string, len(nfts))
	for i, n := range nfts {
		ids[i], owners[i] = n.ID, n.OwnerWallet
	}
	offers, err := nftBestOffers(tx, ids)
	if err != nil {
		return nil, err
	}
	profiles, err := users(tx, owners)
	if err != nil {
		return nil, err
	}
	cards := make([]NFTCard, len(nfts))
	for i, n := range nfts {
		name, avatar := nicknameOf(profiles, n.OwnerWallet)
		cards[i] = NFTCard{
			ID:          n.ID,
			Name:        n.Name,
			Image:       n.Image,
			Price:       n.Price,
			BestOffer:   offers[n.ID],
			OwnerWallet: n.OwnerWallet,
			OwnerName:   name,
			OwnerAvatar: avatar,
		}
	}
	return cards, nil
}

// floorDifference (bid - floor) / floor * 100, 0 when the floor is 0
func floorDifference(bid, floor types.Amount) float64 {
	f := floor.Float64()
	if f == 0 {
		return 0
	}
	return (bid.Float64() - f) / f * 100
}
