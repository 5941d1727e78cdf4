package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"nftmarket/common/types"
	"nftmarket/metrics"
	"nftmarket/model"
)

// Network recorded on every settlement
const Network = "Ethereum"

type BuyInput struct {
	ListingID string `json:"listing_id" validate:"required"`
}

// sale one settlement of a listing at a price
type sale struct {
	listingID string
	buyer     string
	price     types.Amount
	bidID     string //accepted bid, kept out of the bulk reject
}

func lockListing(tx *gorm.DB, id string) (*model.Listing, error) {
	var l model.Listing
	err := forUpdate(tx).Where("id = ?", id).Take(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Listing not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "load listing")
	}
	return &l, nil
}

func getNFT(tx *gorm.DB, id string) (*model.NFT, error) {
	var n model.NFT
	err := tx.Where("id = ?", id).Take(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("NFT not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "load nft")
	}
	return &n, nil
}

// royaltyFor returns the creator wallet and royalty percentage of the NFT's collection,
// an empty wallet when the collection or its creator account is gone
func royaltyFor(tx *gorm.DB, nft *model.NFT) (string, types.Amount, error) {
	var c model.Collection
	err := tx.Where("id = ?", nft.CollectionID).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", types.Amount{}, nil
	}
	if err != nil {
		return "", types.Amount{}, errors.Wrap(err, "load collection")
	}
	var count int64
	if err = tx.Model(&model.User{}).Where("wallet_address = ?", c.CreatorWallet).Count(&count).Error; err != nil {
		return "", types.Amount{}, errors.Wrap(err, "load creator")
	}
	if count == 0 {
		return "", types.Amount{}, nil
	}
	return c.CreatorWallet, c.Royalties, nil
}

// applyDeltas locks every touched user in wallet order and moves the balances,
// no balance may end below zero and each wallet in holds must start with at
// least its amount
func applyDeltas(tx *gorm.DB, deltas, holds map[string]types.Amount) error {
	wallets := make([]string, 0, len(deltas))
	for w := range deltas {
		wallets = append(wallets, w)
	}
	sort.Strings(wallets)
	next := make(map[string]types.Amount, len(wallets))
	for _, w := range wallets {
		u, err := lockUser(tx, w)
		if err != nil {
			return err
		}
		if need, ok := holds[w]; ok && u.Balance.Cmp(need) < 0 {
			return Business("Insufficient balance")
		}
		bal, err := u.Balance.Add(deltas[w])
		if err != nil {
			return errors.Wrap(err, "balance")
		}
		if bal.Sign() < 0 {
			return Business("Insufficient balance")
		}
		next[w] = bal
	}
	for _, w := range wallets {
		err := tx.Model(&model.User{}).Where("wallet_address = ?", w).Update("balance", next[w]).Error
		if err != nil {
			return errors.Wrap(err, "update balance")
		}
	}
	return nil
}

// settle sells a listing to the buyer inside tx: balances, ownership, listing
// status, the Transaction record, bid cleanup and notifications all commit together
func (s *Service) settle(tx *gorm.DB, in sale) (*model.Transaction, error) {
	l, err := lockListing(tx, in.listingID)
	if err != nil {
		return nil, err
	}
	if l.Status != model.ListingActive {
		return nil, Business("Listing is not active")
	}
	if l.SellerWallet == in.buyer {
		return nil, Business("You cannot buy your own listing")
	}
	nft, err := getNFT(forUpdate(tx), l.NFTID)
	if err != nil {
		return nil, err
	}
	creator, pct, err := royaltyFor(tx, nft)
	if err != nil {
		return nil, err
	}
	sellerShare, royalty, err := SplitRoyalty(in.price, pct)
	if err != nil {
		return nil, err
	}
	if creator == "" || royalty.IsZero() {
		sellerShare, royalty = in.price, types.Amount{}
	}

	deltas := map[string]types.Amount{}
	add := func(w string, v types.Amount) error {
		sum, err := deltas[w].Add(v)
		deltas[w] = sum
		return err
	}
	var negPrice types.Amount
	if negPrice, err = (types.Amount{}).Sub(in.price); err != nil {
		return nil, errors.Wrap(err, "price")
	}
	if err = add(in.buyer, negPrice); err != nil {
		return nil, errors.Wrap(err, "price")
	}
	if err = add(l.SellerWallet, sellerShare); err != nil {
		return nil, errors.Wrap(err, "price")
	}
	if !royalty.IsZero() {
		if err = add(creator, royalty); err != nil {
			return nil, errors.Wrap(err, "price")
		}
	}
	// a creator buying from its own collection still pays the full price up front
	if err = applyDeltas(tx, deltas, map[string]types.Amount{in.buyer: in.price}); err != nil {
		return nil, err
	}

	err = tx.Model(nft).Updates(map[string]interface{}{"owner_wallet": in.buyer, "price": in.price}).Error
	if err != nil {
		return nil, errors.Wrap(err, "transfer nft")
	}
	record := &model.Transaction{
		ListingID:    l.ID,
		NFTID:        nft.ID,
		BuyerWallet:  in.buyer,
		SellerWallet: l.SellerWallet,
		Price:        in.price,
		Royalty:      royalty,
		Status:       model.TxCompleted,
		Network:      Network,
	}
	if err = tx.Create(record).Error; err != nil {
		return nil, errors.Wrap(err, "create transaction")
	}
	if err = l.Status.To(model.ListingSold); err != nil {
		return nil, transitionErr(err)
	}
	res := tx.Model(&model.Listing{}).Where("id = ? AND status = ?", l.ID, model.ListingActive).
		Updates(map[string]interface{}{"status": model.ListingSold, "transaction_id": record.ID})
	if res.Error != nil {
		return nil, errors.Wrap(res.Error, "close listing")
	}
	if res.RowsAffected != 1 {
		return nil, Business("Listing is no longer available")
	}
	bids := tx.Model(&model.Bid{}).Where("listing_id = ? AND status = ?", l.ID, model.BidActive)
	if in.bidID != "" {
		bids = bids.Where("id <> ?", in.bidID)
	}
	if err = bids.Update("status", model.BidRejected).Error; err != nil {
		return nil, errors.Wrap(err, "reject bids")
	}

	err = notifyWallet(tx, in.buyer, model.NotifyPurchase, "Purchase successful",
		fmt.Sprintf("You bought %s for %s", nft.Name, in.price))
	if err != nil {
		return nil, err
	}
	err = notifyWallet(tx, l.SellerWallet, model.NotifyItemSold, "Item sold",
		fmt.Sprintf("Your NFT %s sold for %s", nft.Name, in.price))
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Buy purchases an ACTIVE listing at its price
func (s *Service) Buy(ctx context.Context, buyer string, in BuyInput) (*model.Transaction, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	buyer = normWallet(buyer)
	var record *model.Transaction
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := lockListing(tx, in.ListingID)
		if err != nil {
			return err
		}
		record, err = s.settle(tx, sale{listingID: l.ID, buyer: buyer, price: l.Price})
		return err
	})
	if err != nil {
		return nil, err
	}
	metrics.Settlements.WithLabelValues("buy").Inc()
	s.log.Info("listing sold", "listing", record.ListingID, "buyer", buyer, "price", record.Price.String())
	return record, nil
}
