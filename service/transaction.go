package service

import (
	"context"

	"github.com/pkg/errors"
	"nftmarket/common/types"
	"nftmarket/model"
)

// TransactionFilter query of a wallet's sales or purchases
type TransactionFilter struct {
	PageReq
	Wallet   string        `form:"walletAddress"`
	Role     string        `form:"role"` //seller or buyer
	Name     string        `form:"name"` //fuzzy NFT name
	MinPrice *types.Amount `form:"minPrice" swaggertype:"number"`
	MaxPrice *types.Amount `form:"maxPrice" swaggertype:"number"`
}

// Transactions settlements where the wallet sold or bought, newest first
func (s *Service) Transactions(ctx context.Context, f TransactionFilter) (Page[TransactionView], error) {
	wallet, err := walletParam(f.Wallet)
	if err != nil {
		return Page[TransactionView]{}, err
	}
	db := s.conn(ctx)
	switch f.Role {
	case "seller":
		db = db.Where("seller_wallet = ?", wallet)
	case "buyer":
		db = db.Where("buyer_wallet = ?", wallet)
	default:
		return Page[TransactionView]{}, Invalid("role", "must be one of seller buyer")
	}
	if f.MinPrice != nil {
		db = db.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		db = db.Where("price <= ?", *f.MaxPrice)
	}
	var txs []model.Transaction
	if err = db.Order("created_at DESC").Find(&txs).Error; err != nil {
		return Page[TransactionView]{}, errors.Wrap(err, "list transactions")
	}

	nftIDs := make([]string, 0, len(txs))
	wallets := make([]string, 0, 2*len(txs))
	for _, t := range txs {
		nftIDs = append(nftIDs, t.NFTID)
		wallets = append(wallets, t.BuyerWallet, t.SellerWallet)
	}
	nfts := map[string]model.NFT{}
	if len(nftIDs) > 0 {
		var list []model.NFT
		if err = s.conn(ctx).Where("id IN ?", dedupe(nftIDs)).Find(&list).Error; err != nil {
			return Page[TransactionView]{}, errors.Wrap(err, "load nfts")
		}
		for _, n := range list {
			nfts[n.ID] = n
		}
	}
	profiles, err := users(s.conn(ctx), wallets)
	if err != nil {
		return Page[TransactionView]{}, err
	}
	views := make([]TransactionView, len(txs))
	for i, t := range txs {
		buyerName, buyerImage := nicknameOf(profiles, t.BuyerWallet)
		sellerName, sellerImage := nicknameOf(profiles, t.SellerWallet)
		views[i] = TransactionView{
			ID:           t.ID,
			NFTID:        t.NFTID,
			NFTName:      nfts[t.NFTID].Name,
			NFTImage:     nfts[t.NFTID].Image,
			ListingID:    t.ListingID,
			BuyerName:    buyerName,
			BuyerImage:   buyerImage,
			BuyerWallet:  t.BuyerWallet,
			SellerName:   sellerName,
			SellerImage:  sellerImage,
			SellerWallet: t.SellerWallet,
			Price:        t.Price,
			Royalty:      t.Royalty,
			CreatedAt:    t.CreatedAt,
		}
	}
	views = fuzzyFilter(views, f.Name, func(v TransactionView) []string { return []string{v.NFTName} })
	return pageOf(views, f.PageReq), nil
}
