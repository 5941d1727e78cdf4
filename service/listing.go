package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"nftmarket/common/types"
	"nftmarket/model"
)

type CreateListingInput struct {
	NFTID        string       `json:"nft_id" validate:"required"`
	Price        types.Amount `json:"price" swaggertype:"number"`
	ContractAddr string       `json:"contract_addr" validate:"required,eth_addr"`
	DropAt       *time.Time   `json:"drop_at"` //activation time, now when empty
}

type AttachTransactionInput struct {
	ListingID     string `json:"listing_id" validate:"required"`
	TransactionID string `json:"transaction_id" validate:"required"`
}

// ListingFilter query of the seller listings page
type ListingFilter struct {
	PageReq
	Wallet     string        `form:"walletAddress"`
	Name       string        `form:"name"`       //fuzzy NFT name
	Collection string        `form:"collection"` //fuzzy collection name
	Blockchain string        `form:"blockchain"`
	Status     string        `form:"status"` //SOLD or LISTED, LISTED by default
	MinPrice   *types.Amount `form:"minPrice" swaggertype:"number"`
	MaxPrice   *types.Amount `form:"maxPrice" swaggertype:"number"`
	Sort       string        `form:"sort"` //price|bestOffer|listingPrice|lastListed:asc|desc
}

func positive(field string, v types.Amount) error {
	if v.Sign() <= 0 {
		return Invalid(field, "must be greater than 0")
	}
	return nil
}

// openListing the SCHEDULED or ACTIVE listing of an NFT, nil when there is none
func openListing(tx *gorm.DB, nftID string) (*model.Listing, error) {
	var l model.Listing
	err := tx.Where("nft_id = ? AND status IN ?", nftID, []model.ListingStatus{model.ListingScheduled, model.ListingActive}).
		Take(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "load open listing")
	}
	return &l, nil
}

// CreateListing lists an owned NFT, scheduled when the drop time is in the future
func (s *Service) CreateListing(ctx context.Context, seller string, in CreateListingInput) (*model.Listing, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	if err := positive("price", in.Price); err != nil {
		return nil, err
	}
	seller = normWallet(seller)
	now := s.now()
	dropAt := now
	if in.DropAt != nil {
		dropAt = *in.DropAt
	}
	status := model.ListingActive
	if dropAt.After(now) {
		status = model.ListingScheduled
	}
	l := &model.Listing{
		SellerWallet: seller,
		Price:        in.Price,
		ContractAddr: normWallet(in.ContractAddr),
		DropAt:       dropAt,
		Status:       status,
	}
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := getUser(tx, seller)
		if err != nil {
			return err
		}
		nft, err := getNFT(forUpdate(tx), in.NFTID)
		if err != nil {
			return err
		}
		if nft.OwnerWallet != seller {
			return Forbidden("You do not own this NFT")
		}
		open, err := openListing(tx, nft.ID)
		if err != nil {
			return err
		}
		if open != nil {
			return Business("NFT is already listed")
		}
		l.NFTID = nft.ID
		if err = tx.Create(l).Error; err != nil {
			return errors.Wrap(err, "create listing")
		}
		msg := fmt.Sprintf("Your NFT %s is listed for %s", nft.Name, in.Price)
		if status == model.ListingScheduled {
			msg = fmt.Sprintf("Your NFT %s drops at %s for %s", nft.Name, dropAt.UTC().Format(time.RFC3339), in.Price)
		}
		return notify(tx, user, model.NotifyMint, "Listing created", msg)
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// AttachTransaction links a completed settlement of the listing to it
func (s *Service) AttachTransaction(ctx context.Context, seller string, in AttachTransactionInput) (*model.Listing, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	seller = normWallet(seller)
	var l *model.Listing
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if l, err = lockListing(tx, in.ListingID); err != nil {
			return err
		}
		if l.SellerWallet != seller {
			return Forbidden("Only the seller can update this listing")
		}
		var t model.Transaction
		err = tx.Where("id = ?", in.TransactionID).Take(&t).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Transaction not found")
		}
		if err != nil {
			return errors.Wrap(err, "load transaction")
		}
		if t.ListingID != l.ID || t.Status != model.TxCompleted {
			return Business("Transaction does not settle this listing")
		}
		if err = tx.Model(l).Update("transaction_id", t.ID).Error; err != nil {
			return errors.Wrap(err, "update listing")
		}
		l.TransactionID = &t.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// listingViews decorates listings with NFT, collection, seller, best offer and last listed
func listingViews(tx *gorm.DB, listings []model.Listing) ([]ListingView, error) {
	ids := make([]string, len(listings))
	nftIDs := make([]string, len(listings))
	sellers := make([]string, len(listings))
	for i, l := range listings {
		ids[i], nftIDs[i], sellers[i] = l.ID, l.NFTID, l.SellerWallet
	}
	offers, err := bestOffers(tx, ids)
	if err != nil {
		return nil, err
	}
	profiles, err := users(tx, sellers)
	if err != nil {
		return nil, err
	}
	nfts := map[string]model.NFT{}
	collections := map[string]model.Collection{}
	lastListed := map[string]time.Time{}
	if len(listings) > 0 {
		var list []model.NFT
		if err = tx.Where("id IN ?", dedupe(nftIDs)).Find(&list).Error; err != nil {
			return nil, errors.Wrap(err, "load nfts")
		}
		var collectionIDs []string
		for _, n := range list {
			nfts[n.ID] = n
			collectionIDs = append(collectionIDs, n.CollectionID)
		}
		var cols []model.Collection
		if len(collectionIDs) > 0 {
			if err = tx.Where("id IN ?", dedupe(collectionIDs)).Find(&cols).Error; err != nil {
				return nil, errors.Wrap(err, "load collections")
			}
		}
		for _, c := range cols {
			collections[c.ID] = c
		}
		var all []model.Listing
		if err = tx.Select("nft_id", "drop_at").Where("nft_id IN ?", dedupe(nftIDs)).Find(&all).Error; err != nil {
			return nil, errors.Wrap(err, "load listing history")
		}
		for _, l := range all {
			if l.DropAt.After(lastListed[l.NFTID]) {
				lastListed[l.NFTID] = l.DropAt
			}
		}
	}
	out := make([]ListingView, len(listings))
	for i, l := range listings {
		nft := nfts[l.NFTID]
		name, avatar := nicknameOf(profiles, l.SellerWallet)
		collection := unknown
		if c, ok := collections[nft.CollectionID]; ok {
			collection = c.Name
		}
		nftName := nft.Name
		if nftName == "" {
			nftName = unknown
		}
		out[i] = ListingView{
			ID:             l.ID,
			NFTID:          l.NFTID,
			NFTName:        nftName,
			NFTImage:       nft.Image,
			CollectionName: collection,
			SellerName:     name,
			SellerImage:    avatar,
			SellerWallet:   l.SellerWallet,
			ListingPrice:   l.Price,
			BestOffer:      offers[l.ID],
			Status:         l.Status,
			DropAt:         l.DropAt,
			LastListed:     lastListed[l.NFTID],
		}
	}
	return out, nil
}

// Listings the seller's listings filtered, fuzzy matched, sorted and paged
func (s *Service) Listings(ctx context.Context, f ListingFilter) (Page[ListingView], error) {
	wallet, err := walletParam(f.Wallet)
	if err != nil {
		return Page[ListingView]{}, err
	}
	keys, err := parseSort(f.Sort, "price", "bestOffer", "listingPrice", "lastListed")
	if err != nil {
		return Page[ListingView]{}, err
	}
	status := model.ListingActive
	switch f.Status {
	case "", "LISTED":
	case "SOLD":
		status = model.ListingSold
	default:
		return Page[ListingView]{}, Invalid("status", "must be one of SOLD LISTED")
	}
	db := s.conn(ctx).Where("seller_wallet = ? AND status = ?", wallet, status)
	if f.MinPrice != nil {
		db = db.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		db = db.Where("price <= ?", *f.MaxPrice)
	}
	var listings []model.Listing
	if err = db.Order("created_at DESC").Find(&listings).Error; err != nil {
		return Page[ListingView]{}, errors.Wrap(err, "list listings")
	}
	views, err := listingViews(s.conn(ctx), listings)
	if err != nil {
		return Page[ListingView]{}, err
	}
	views = fuzzyFilter(views, f.Name, func(v ListingView) []string { return []string{v.NFTName} })
	views = fuzzyFilter(views, f.Collection, func(v ListingView) []string { return []string{v.CollectionName} })
	if f.Blockchain != "" {
		views, err = s.onChain(ctx, views, f.Blockchain)
		if err != nil {
			return Page[ListingView]{}, err
		}
	}
	sortBy(views, keys, func(v ListingView, field string) float64 {
		switch field {
		case "bestOffer":
			return v.BestOffer.Float64()
		case "lastListed":
			return float64(v.LastListed.Unix())
		default:
			return v.ListingPrice.Float64()
		}
	})
	return pageOf(views, f.PageReq), nil
}

// onChain keeps the listings whose collection lives on the blockchain
func (s *Service) onChain(ctx context.Context, views []ListingView, chain string) ([]ListingView, error) {
	var ids []string
	err := s.conn(ctx).Model(&model.NFT{}).
		Joins("JOIN collections ON collections.id = nfts.collection_id").
		Where("UPPER(collections.blockchain) = UPPER(?)", chain).
		Pluck("nfts.id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "filter blockchain")
	}
	keep := map[string]bool{}
	for _, id := range ids {
		keep[id] = true
	}
	out := views[:0]
	for _, v := range views {
		if keep[v.NFTID] {
			out = append(out, v)
		}
	}
	return out, nil
}

// ActiveListings every ACTIVE listing, newest first
func (s *Service) ActiveListings(ctx context.Context, req PageReq) (res Page[ListingView], err error) {
	page, size := req.norm()
	db := s.conn(ctx).Model(&model.Listing{}).Where("status = ?", model.ListingActive)
	var total int64
	if err = db.Count(&total).Error; err != nil {
		return res, errors.Wrap(err, "count listings")
	}
	var listings []model.Listing
	if err = db.Order("created_at DESC").Offset((page - 1) * size).Limit(size).Find(&listings).Error; err != nil {
		return res, errors.Wrap(err, "list listings")
	}
	views, err := listingViews(s.conn(ctx), listings)
	if err != nil {
		return res, err
	}
	return newPage(views, total, page, size), nil
}

func (s *Service) Listing(ctx context.Context, id string) (*ListingView, error) {
	var l model.Listing
	err := s.conn(ctx).Where("id = ?", id).Take(&l).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Listing not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "load listing")
	}
	views, err := listingViews(s.conn(ctx), []model.Listing{l})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}
