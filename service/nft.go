package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"nftmarket/common/types"
	"nftmarket/model"
)

type TraitInput struct {
	TraitType string `json:"trait_type" validate:"required"`
	Value     string `json:"value" validate:"required"`
}

type CreateNFTInput struct {
	Name         string       `json:"name" form:"name" validate:"required,min=1,max=100"`
	Description  string       `json:"description" form:"description" validate:"max=1000"`
	CollectionID string       `json:"collection_id" form:"collection_id" validate:"required"`
	Quantity     int          `json:"quantity" form:"quantity" validate:"gte=1"`
	Price        types.Amount `json:"price" form:"price" swaggertype:"number"`
	Traits       []TraitInput `json:"traits" form:"-" validate:"dive"` //multipart sends a JSON array string
}

type SetTokenIDInput struct {
	NFTID   string `json:"nft_id" validate:"required"`
	TokenID string `json:"token_id" validate:"required,numeric"`
}

// nftMetadata ERC-721 metadata document
type nftMetadata struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       string       `json:"image"`
	Attributes  []TraitInput `json:"attributes"`
}

// NFTDetails an NFT with its market history
type NFTDetails struct {
	model.NFT
	CollectionName string          `json:"collection_name"`
	OwnerName      string          `json:"owner_name"`
	OwnerAvatar    string          `json:"owner_avatar"`
	Listings       []model.Listing `json:"listings"`
	Bids           []BidView       `json:"bids"`
	Activities     []Activity      `json:"activities"`
}

// NFTFilter query of a collection's items
type NFTFilter struct {
	PageReq
	CollectionID string        `form:"collectionId"`
	Name         string        `form:"name"`   //fuzzy name
	Status       string        `form:"status"` //comma list of LISTED HAS_OFFERS
	MinPrice     *types.Amount `form:"minPrice" swaggertype:"number"`
	MaxPrice     *types.Amount `form:"maxPrice" swaggertype:"number"`
}

// OwnedFilter query of a wallet's NFTs
type OwnedFilter struct {
	PageReq
	Wallet     string        `form:"walletAddress"`
	Query      string        `form:"query"`
	Status     string        `form:"status"` //NEW or LISTED
	Blockchain string        `form:"blockchain"`
	MinPrice   *types.Amount `form:"minPrice" swaggertype:"number"`
	MaxPrice   *types.Amount `form:"maxPrice" swaggertype:"number"`
	Sort       string        `form:"sortCriteria"` //price|bestOffer:asc|desc
}

// CreateNFT pins the image and metadata and mints the NFT to the caller
func (s *Service) CreateNFT(ctx context.Context, creator string, in CreateNFTInput, image *Upload) (*model.NFT, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	if in.Price.Sign() < 0 {
		return nil, Invalid("price", "must not be negative")
	}
	if image == nil {
		return nil, Invalid("image", "is required")
	}
	creator = normWallet(creator)
	user, err := getUser(s.conn(ctx), creator)
	if err != nil {
		return nil, err
	}
	if _, err = getCollection(s.conn(ctx), in.CollectionID); err != nil {
		return nil, err
	}
	url, uri, err := s.pin(ctx, image, func(url string) interface{} {
		return nftMetadata{Name: in.Name, Description: in.Description, Image: url, Attributes: in.Traits}
	})
	if err != nil {
		return nil, err
	}
	n := &model.NFT{
		Name:          in.Name,
		Description:   in.Description,
		CollectionID:  in.CollectionID,
		Quantity:      in.Quantity,
		Price:         in.Price,
		OwnerWallet:   creator,
		CreatorWallet: creator,
		Image:         url,
		MetadataURI:   uri,
	}
	for _, t := range in.Traits {
		n.Traits = append(n.Traits, model.Trait{TraitType: t.TraitType, Value: t.Value})
	}
	err = s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(n).Error; err != nil {
			return errors.Wrap(err, "create nft")
		}
		return notify(tx, user, model.NotifyMint, "NFT minted", fmt.Sprintf("Your NFT %s was minted", n.Name))
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

// SetTokenID records the on-chain token id, owner only
func (s *Service) SetTokenID(ctx context.Context, owner string, in SetTokenIDInput) (*model.NFT, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	n, err := getNFT(s.conn(ctx), in.NFTID)
	if err != nil {
		return nil, err
	}
	if n.OwnerWallet != normWallet(owner) {
		return nil, Forbidden("You do not own this NFT")
	}
	if err = s.conn(ctx).Model(n).Update("token_id", in.TokenID).Error; err != nil {
		return nil, errors.Wrap(err, "set token id")
	}
	n.TokenID = &in.TokenID
	return n, nil
}

// activities builds the event history of the NFTs, filtered by event type when given
func (s *Service) activities(ctx context.Context, nftIDs []string, collectionCreator string, offers bool, eventTypes []string) ([]Activity, error) {
	out := []Activity{}
	if len(nftIDs) == 0 {
		return out, nil
	}
	want := func(t string) bool {
		if len(eventTypes) == 0 {
			return t != "Offer" || offers
		}
		for _, e := range eventTypes {
			if e == t {
				return true
			}
		}
		return false
	}
	db := s.conn(ctx)
	if want("Mint") {
		var nfts []model.NFT
		if err := db.Where("id IN ?", nftIDs).Find(&nfts).Error; err != nil {
			return nil, errors.Wrap(err, "load mints")
		}
		for _, n := range nfts {
			to := collectionCreator
			if to == "" {
				to = unknown
			}
			out = append(out, Activity{EventType: "Mint", NFTID: n.ID, From: n.CreatorWallet, To: to, Date: n.CreatedAt})
		}
	}
	if want("Sale") {
		var txs []model.Transaction
		if err := db.Where("nft_id IN ?", nftIDs).Find(&txs).Error; err != nil {
			return nil, errors.Wrap(err, "load sales")
		}
		for _, t := range txs {
			price := t.Price
			out = append(out, Activity{EventType: "Sale", NFTID: t.NFTID, From: t.SellerWallet, To: t.BuyerWallet, Price: &price, Date: t.CreatedAt})
		}
	}
	if want("Transfer") {
		var rows []struct {
			NFTID         string     `gorm:"column:nft_id"`
			OffererWallet string     `gorm:"column:offerer_wallet"`
			TakerWallet   string     `gorm:"column:taker_wallet"`
			Side          string     `gorm:"column:side"`
			ExchangeTime  *time.Time `gorm:"column:exchange_time"`
		}
		err := db.Model(&model.TradeItem{}).
			Joins("JOIN trades ON trades.id = trade_items.trade_id").
			Where("trade_items.nft_id IN ? AND trades.status = ?", nftIDs, model.TradeCompleted).
			Select("trade_items.nft_id AS nft_id, trades.offerer_wallet AS offerer_wallet, " +
				"trades.taker_wallet AS taker_wallet, trade_items.side AS side, trades.exchange_time AS exchange_time").
			Scan(&rows).Error
		if err != nil {
			return nil, errors.Wrap(err, "load transfers")
		}
		for _, r := range rows {
			from, to := r.OffererWallet, r.TakerWallet
			if model.TradeSide(r.Side) == model.SideReceiver {
				from, to = to, from
			}
			var date time.Time
			if r.ExchangeTime != nil {
				date = *r.ExchangeTime
			}
			out = append(out, Activity{EventType: "Transfer", NFTID: r.NFTID, From: from, To: to, Date: date})
		}
	}
	if want("Offer") {
		var rows []struct {
			NFTID        string       `gorm:"column:nft_id"`
			BidderWallet string       `gorm:"column:bidder_wallet"`
			SellerWallet string       `gorm:"column:seller_wallet"`
			Price        types.Amount `gorm:"column:price"`
			CreatedAt    time.Time    `gorm:"column:created_at"`
		}
		err := db.Model(&model.Bid{}).
			Joins("JOIN listings ON listings.id = bids.listing_id").
			Where("listings.nft_id IN ?", nftIDs).
			Select("listings.nft_id AS nft_id, bids.bidder_wallet AS bidder_wallet, " +
				"listings.seller_wallet AS seller_wallet, bids.price AS price, bids.created_at AS created_at").
			Scan(&rows).Error
		if err != nil {
			return nil, errors.Wrap(err, "load offers")
		}
		for _, r := range rows {
			price := r.Price
			out = append(out, Activity{EventType: "Offer", NFTID: r.NFTID, From: r.BidderWallet, To: r.SellerWallet, Price: &price, Date: r.CreatedAt})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// NFT details with listings, bids and history
func (s *Service) NFT(ctx context.Context, id string) (*NFTDetails, error) {
	db := s.conn(ctx)
	var n model.NFT
	err := db.Preload("Traits").Where("id = ?", id).Take(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("NFT not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "load nft")
	}
	d := &NFTDetails{NFT: n, CollectionName: unknown}
	creator := ""
	if c, err := getCollection(db, n.CollectionID); err == nil {
		d.CollectionName, creator = c.Name, c.CreatorWallet
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	profiles, err := users(db, []string{n.OwnerWallet})
	if err != nil {
		return nil, err
	}
	d.OwnerName, d.OwnerAvatar = nicknameOf(profiles, n.OwnerWallet)
	if err = db.Where("nft_id = ?", n.ID).Order("created_at DESC").Find(&d.Listings).Error; err != nil {
		return nil, errors.Wrap(err, "load listings")
	}
	var bids []model.Bid
	err = db.Joins("JOIN listings ON listings.id = bids.listing_id").
		Where("listings.nft_id = ?", n.ID).Select("bids.*").Order("bids.price DESC").Find(&bids).Error
	if err != nil {
		return nil, errors.Wrap(err, "load bids")
	}
	if d.Bids, err = s.bidViews(ctx, bids); err != nil {
		return nil, err
	}
	if d.Activities, err = s.activities(ctx, []string{n.ID}, creator, false, nil); err != nil {
		return nil, err
	}
	return d, nil
}

func priceRange(db *gorm.DB, column string, min, max *types.Amount) *gorm.DB {
	if min != nil {
		db = db.Where(column+" >= ?", *min)
	}
	if max != nil {
		db = db.Where(column+" <= ?", *max)
	}
	return db
}

// CollectionNFTs minted NFTs of a collection matching the filter
func (s *Service) CollectionNFTs(ctx context.Context, f NFTFilter) (Page[NFTCard], error) {
	if f.CollectionID == "" {
		return Page[NFTCard]{}, Invalid("collectionId", "is required")
	}
	db := priceRange(s.conn(ctx).Where("collection_id = ? AND token_id IS NOT NULL", f.CollectionID), "price", f.MinPrice, f.MaxPrice)
	var nfts []model.NFT
	if err := db.Order("created_at DESC").Find(&nfts).Error; err != nil {
		return Page[NFTCard]{}, errors.Wrap(err, "list nfts")
	}
	nfts = fuzzyFilter(nfts, f.Name, func(n model.NFT) []string { return []string{n.Name} })
	statuses := map[string]bool{}
	for _, st := range strings.Split(f.Status, ",") {
		switch st = strings.TrimSpace(st); st {
		case "":
		case "LISTED", "HAS_OFFERS":
			statuses[st] = true
		default:
			return Page[NFTCard]{}, Invalid("status", "must be a list of LISTED HAS_OFFERS")
		}
	}
	if len(statuses) > 0 {
		listed, offered, err := s.marketState(ctx, nfts)
		if err != nil {
			return Page[NFTCard]{}, err
		}
		kept := nfts[:0]
		for _, n := range nfts {
			if (statuses["LISTED"] && listed[n.ID]) || (statuses["HAS_OFFERS"] && offered[n.ID]) {
				kept = append(kept, n)
			}
		}
		nfts = kept
	}
	return s.cardPage(ctx, nfts, f.PageReq)
}

// marketState which NFTs have an ACTIVE listing and which ever received a bid
func (s *Service) marketState(ctx context.Context, nfts []model.NFT) (listed, offered map[string]bool, err error) {
	listed, offered = map[string]bool{}, map[string]bool{}
	if len(nfts) == 0 {
		return
	}
	ids := make([]string, len(nfts))
	for i, n := range nfts {
		ids[i] = n.ID
	}
	var active []string
	err = s.conn(ctx).Model(&model.Listing{}).Where("nft_id IN ? AND status = ?", ids, model.ListingActive).Pluck("nft_id", &active).Error
	if err != nil {
		return nil, nil, errors.Wrap(err, "load listings")
	}
	for _, id := range active {
		listed[id] = true
	}
	var withBids []string
	err = s.conn(ctx).Model(&model.Bid{}).Joins("JOIN listings ON listings.id = bids.listing_id").
		Where("listings.nft_id IN ?", ids).Distinct().Pluck("listings.nft_id", &withBids).Error
	if err != nil {
		return nil, nil, errors.Wrap(err, "load bids")
	}
	for _, id := range withBids {
		offered[id] = true
	}
	return listed, offered, nil
}

func (s *Service) cardPage(ctx context.Context, nfts []model.NFT, req PageReq) (Page[NFTCard], error) {
	page, size := req.norm()
	cards, err := nftCards(s.conn(ctx), pageOf(nfts, req).Items)
	if err != nil {
		return Page[NFTCard]{}, err
	}
	return newPage(cards, int64(len(nfts)), page, size), nil
}

// statusFilter NEW keeps NFTs never listed nor traded, LISTED keeps NFTs with any listing
func statusFilter(db *gorm.DB, status string) (*gorm.DB, error) {
	switch status {
	case "":
		return db, nil
	case "NEW":
		return db.Where("NOT EXISTS (SELECT 1 FROM listings WHERE listings.nft_id = nfts.id)").
			Where("NOT EXISTS (SELECT 1 FROM trade_items WHERE trade_items.nft_id = nfts.id)"), nil
	case "LISTED":
		return db.Where("EXISTS (SELECT 1 FROM listings WHERE listings.nft_id = nfts.id)"), nil
	}
	return nil, Invalid("status", "must be one of NEW LISTED")
}

func chainFilter(db *gorm.DB, chain string) *gorm.DB {
	if chain == "" {
		return db
	}
	return db.Where("collection_id IN (?)",
		db.Session(&gorm.Session{NewDB: true}).Model(&model.Collection{}).Select("id").Where("UPPER(blockchain) = UPPER(?)", chain))
}

// OwnedNFTs the wallet's NFTs, sortable by price and best offer
func (s *Service) OwnedNFTs(ctx context.Context, f OwnedFilter) (Page[NFTCard], error) {
	wallet, err := walletParam(f.Wallet)
	if err != nil {
		return Page[NFTCard]{}, err
	}
	keys, err := parseSort(f.Sort, "price", "bestOffer")
	if err != nil {
		return Page[NFTCard]{}, err
	}
	db, err := statusFilter(s.conn(ctx).Model(&model.NFT{}).Where("owner_wallet = ?", wallet), f.Status)
	if err != nil {
		return Page[NFTCard]{}, err
	}
	db = chainFilter(priceRange(db, "price", f.MinPrice, f.MaxPrice), f.Blockchain)
	var nfts []model.NFT
	if err = db.Order("created_at DESC").Find(&nfts).Error; err != nil {
		return Page[NFTCard]{}, errors.Wrap(err, "list nfts")
	}
	nfts = fuzzyFilter(nfts, f.Query, func(n model.NFT) []string { return []string{n.Name} })
	cards, err := nftCards(s.conn(ctx), nfts)
	if err != nil {
		return Page[NFTCard]{}, err
	}
	sortBy(cards, keys, func(c NFTCard, field string) float64 {
		if field == "bestOffer" {
			return c.BestOffer.Float64()
		}
		return c.Price.Float64()
	})
	return pageOf(cards, f.PageReq), nil
}

// SearchFilter query of the NFT search page
type SearchFilter struct {
	PageReq
	Query      string        `form:"query"`
	Collection string        `form:"collection"` //fuzzy collection name
	Status     string        `form:"status"`     //NEW or LISTED
	Blockchain string        `form:"blockchain"`
	MinPrice   *types.Amount `form:"minPrice" swaggertype:"number"`
	MaxPrice   *types.Amount `form:"maxPrice" swaggertype:"number"`
}

// SearchNFTs fuzzy search over every NFT name
func (s *Service) SearchNFTs(ctx context.Context, f SearchFilter) (Page[NFTCard], error) {
	db, err := statusFilter(s.conn(ctx).Model(&model.NFT{}), f.Status)
	if err != nil {
		return Page[NFTCard]{}, err
	}
	db = chainFilter(priceRange(db, "price", f.MinPrice, f.MaxPrice), f.Blockchain)
	if strings.TrimSpace(f.Collection) != "" {
		var cols []model.Collection
		if err = s.conn(ctx).Find(&cols).Error; err != nil {
			return Page[NFTCard]{}, errors.Wrap(err, "list collections")
		}
		cols = fuzzyFilter(cols, f.Collection, func(c model.Collection) []string { return []string{c.Name, c.Symbol} })
		ids := make([]string, len(cols))
		for i, c := range cols {
			ids[i] = c.ID
		}
		if len(ids) == 0 {
			return pageOf([]NFTCard{}, f.PageReq), nil
		}
		db = db.Where("collection_id IN ?", ids)
	}
	var nfts []model.NFT
	if err = db.Order("created_at DESC").Find(&nfts).Error; err != nil {
		return Page[NFTCard]{}, errors.Wrap(err, "search nfts")
	}
	nfts = fuzzyFilter(nfts, f.Query, func(n model.NFT) []string { return []string{n.Name} })
	return s.cardPage(ctx, nfts, f.PageReq)
}

// SearchUsers fuzzy search over nickname and wallet
func (s *Service) SearchUsers(ctx context.Context, query string, req PageReq) (Page[model.User], error) {
	var all []model.User
	if err := s.conn(ctx).Order("created_at DESC").Find(&all).Error; err != nil {
		return Page[model.User]{}, errors.Wrap(err, "search users")
	}
	all = fuzzyFilter(all, query, func(u model.User) []string { return []string{u.Nickname, u.WalletAddress} })
	return pageOf(all, req), nil
}
