package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"nftmarket/common/types"
	"nftmarket/model"
)

type CreateCollectionInput struct {
	Name            string       `json:"name" form:"name" validate:"required,min=3,max=50"`
	Symbol          string       `json:"symbol" form:"symbol" validate:"required,min=3,max=10"`
	ContractAddress string       `json:"contract_address" form:"contract_address" validate:"required,eth_addr"`
	Description     string       `json:"description" form:"description" validate:"max=1000"`
	Royalties       types.Amount `json:"royalties" form:"royalties" swaggertype:"number"`
	Blockchain      string       `json:"blockchain" form:"blockchain" validate:"required"`
	Website         string       `json:"website" form:"website" validate:"omitempty,url"`
	Twitter         string       `json:"twitter" form:"twitter" validate:"omitempty,url"`
	Discord         string       `json:"discord" form:"discord" validate:"omitempty,url"`
	Telegram        string       `json:"telegram" form:"telegram" validate:"omitempty,url"`
}

// collectionMetadata document pinned next to the collection image
type collectionMetadata struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Royalties   string `json:"seller_fee_basis_points"`
	Creator     string `json:"fee_recipient"`
	ExternalURL string `json:"external_link,omitempty"`
}

// CollectionView a collection with its market stats
type CollectionView struct {
	model.Collection
	CreatorName   string          `json:"creator_name"`
	CreatorImage  string          `json:"creator_image"`
	Floor         types.Amount    `json:"floor" swaggertype:"number"`  //lowest NFT price
	FloorChange   float64         `json:"floor_change"`                //percent over the last 24h
	Volume        types.Amount    `json:"volume" swaggertype:"number"` //total settled sales
	VolumeChange  float64         `json:"volume_change"`               //percent over the last 24h
	ItemsCount    int64           `json:"items_count"`
	OwnersCount   int64           `json:"owners_count"`
	ScheduledMint *model.Listing  `json:"scheduled_mint,omitempty"` //next SCHEDULED drop
}

// CreateCollection pins the image and metadata, the caller becomes the creator
func (s *Service) CreateCollection(ctx context.Context, creator string, in CreateCollectionInput, image *Upload) (*model.Collection, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	if in.Royalties.Sign() < 0 || in.Royalties.Cmp(hundred) > 0 {
		return nil, Invalid("royalties", "must be between 0 and 100")
	}
	if image == nil {
		return nil, Invalid("image", "is required")
	}
	if s.contracts != nil {
		ok, err := s.contracts.IsNFTContract(ctx, in.ContractAddress)
		if err != nil {
			return nil, errors.Wrap(err, "verify contract")
		}
		if !ok {
			return nil, Invalid("contract_address", "must be an ERC-721 or ERC-1155 contract")
		}
	}
	creator = normWallet(creator)
	if _, err := getUser(s.conn(ctx), creator); err != nil {
		return nil, err
	}
	url, metadata, err := s.pin(ctx, image, func(url string) interface{} {
		bps, _ := in.Royalties.Mul(hundred)
		return collectionMetadata{
			Name:        in.Name,
			Symbol:      in.Symbol,
			Description: in.Description,
			Image:       url,
			Royalties:   bps.String(),
			Creator:     creator,
			ExternalURL: in.Website,
		}
	})
	if err != nil {
		return nil, err
	}
	c := &model.Collection{
		ContractAddress: normWallet(in.ContractAddress),
		Name:            in.Name,
		Symbol:          in.Symbol,
		Description:     in.Description,
		Image:           url,
		Metadata:        metadata,
		Royalties:       in.Royalties,
		Blockchain:      in.Blockchain,
		CreatorWallet:   creator,
		Website:         in.Website,
		Twitter:         in.Twitter,
		Discord:         in.Discord,
		Telegram:        in.Telegram,
	}
	if err = s.conn(ctx).Create(c).Error; err != nil {
		return nil, errors.Wrap(err, "create collection")
	}
	return c, nil
}

// pin uploads the file then the metadata document built from its url
func (s *Service) pin(ctx context.Context, file *Upload, doc func(url string) interface{}) (string, string, error) {
	if s.pinner == nil {
		return "", "", errors.New("no pinning service configured")
	}
	url, err := s.pinner.PinFile(ctx, file.Name, file.Data)
	if err != nil {
		return "", "", errors.Wrap(err, "pin image")
	}
	uri, err := s.pinner.PinJSON(ctx, file.Name+".json", doc(url))
	if err != nil {
		return "", "", errors.Wrap(err, "pin metadata")
	}
	return url, uri, nil
}

func getCollection(tx *gorm.DB, id string) (*model.Collection, error) {
	var c model.Collection
	err := tx.Where("id = ?", id).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Collection not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "load collection")
	}
	return &c, nil
}

func pctChange(now, before float64) float64 {
	base := before
	if base == 0 {
		base = 1
	}
	return (now - before) / base * 100
}

// stats fills the market figures of a collection
func (s *Service) stats(ctx context.Context, c model.Collection) (CollectionView, error) {
	v := CollectionView{Collection: c}
	db := s.conn(ctx)
	var nfts []model.NFT
	if err := db.Where("collection_id = ?", c.ID).Find(&nfts).Error; err != nil {
		return v, errors.Wrap(err, "load collection nfts")
	}
	dayAgo := s.now().Add(-24 * time.Hour)
	owners := map[string]bool{}
	var pastFloor *types.Amount
	var initial, current types.Amount
	for i, n := range nfts {
		if i == 0 || n.Price.Cmp(v.Floor) < 0 {
			v.Floor = n.Price
		}
		if !n.UpdatedAt.After(dayAgo) {
			if pastFloor == nil || n.Price.Cmp(*pastFloor) < 0 {
				p := n.Price
				pastFloor = &p
			}
			initial, _ = initial.Add(n.Price)
		}
		current, _ = current.Add(n.Price)
		owners[n.OwnerWallet] = true
	}
	v.ItemsCount = int64(len(nfts))
	v.OwnersCount = int64(len(owners))
	past := 0.0
	if pastFloor != nil {
		past = pastFloor.Float64()
	}
	v.FloorChange = pctChange(v.Floor.Float64(), past)

	var txs []model.Transaction
	err := db.Model(&model.Transaction{}).
		Joins("JOIN nfts ON nfts.id = transactions.nft_id").
		Where("nfts.collection_id = ?", c.ID).
		Select("transactions.*").
		Find(&txs).Error
	if err != nil {
		return v, errors.Wrap(err, "load collection sales")
	}
	var recent types.Amount
	for _, t := range txs {
		v.Volume, _ = v.Volume.Add(t.Price)
		if t.CreatedAt.After(dayAgo) {
			recent, _ = recent.Add(t.Price)
		}
	}
	v.VolumeChange = profit(initial, current, recent)

	var scheduled model.Listing
	err = db.Joins("JOIN nfts ON nfts.id = listings.nft_id").
		Where("nfts.collection_id = ? AND listings.status = ?", c.ID, model.ListingScheduled).
		Order("listings.drop_at").Select("listings.*").Take(&scheduled).Error
	switch {
	case err == nil:
		v.ScheduledMint = &scheduled
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return v, errors.Wrap(err, "load scheduled mint")
	}
	return v, nil
}

func (s *Service) withCreators(ctx context.Context, views []CollectionView) error {
	wallets := make([]string, len(views))
	for i, v := range views {
		wallets[i] = v.CreatorWallet
	}
	profiles, err := users(s.conn(ctx), wallets)
	if err != nil {
		return err
	}
	for i := range views {
		views[i].CreatorName, views[i].CreatorImage = nicknameOf(profiles, views[i].CreatorWallet)
	}
	return nil
}

// Collection one collection with its stats
func (s *Service) Collection(ctx context.Context, id string) (*CollectionView, error) {
	c, err := getCollection(s.conn(ctx), id)
	if err != nil {
		return nil, err
	}
	v, err := s.stats(ctx, *c)
	if err != nil {
		return nil, err
	}
	views := []CollectionView{v}
	if err = s.withCreators(ctx, views); err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Collections collections of a creator, or all when creator is empty
func (s *Service) Collections(ctx context.Context, creator string, req PageReq) (res Page[CollectionView], err error) {
	db := s.conn(ctx).Model(&model.Collection{})
	if creator != "" {
		if creator, err = walletParam(creator); err != nil {
			return res, err
		}
		db = db.Where("creator_wallet = ?", creator)
	}
	page, size := req.norm()
	var total int64
	if err = db.Count(&total).Error; err != nil {
		return res, errors.Wrap(err, "count collections")
	}
	var cols []model.Collection
	if err = db.Order("created_at DESC").Offset((page - 1) * size).Limit(size).Find(&cols).Error; err != nil {
		return res, errors.Wrap(err, "list collections")
	}
	views := make([]CollectionView, len(cols))
	for i, c := range cols {
		views[i] = CollectionView{Collection: c}
	}
	if err = s.withCreators(ctx, views); err != nil {
		return res, err
	}
	return newPage(views, total, page, size), nil
}

// SearchCollections fuzzy matches name and symbol, then sorts by stats
func (s *Service) SearchCollections(ctx context.Context, query, sortSpec string, req PageReq) (Page[CollectionView], error) {
	keys, err := parseSort(sortSpec, "floor", "floorChange", "volume", "volumeChange", "itemsCount", "ownersCount")
	if err != nil {
		return Page[CollectionView]{}, err
	}
	var cols []model.Collection
	if err = s.conn(ctx).Order("created_at DESC").Find(&cols).Error; err != nil {
		return Page[CollectionView]{}, errors.Wrap(err, "list collections")
	}
	cols = fuzzyFilter(cols, query, func(c model.Collection) []string { return []string{c.Name, c.Symbol} })
	views := make([]CollectionView, 0, len(cols))
	for _, c := range cols {
		v, err := s.stats(ctx, c)
		if err != nil {
			return Page[CollectionView]{}, err
		}
		views = append(views, v)
	}
	sortBy(views, keys, func(v CollectionView, field string) float64 {
		switch field {
		case "floorChange":
			return v.FloorChange
		case "volume":
			return v.Volume.Float64()
		case "volumeChange":
			return v.VolumeChange
		case "itemsCount":
			return float64(v.ItemsCount)
		case "ownersCount":
			return float64(v.OwnersCount)
		default:
			return v.Floor.Float64()
		}
	})
	p := pageOf(views, req)
	if err = s.withCreators(ctx, p.Items); err != nil {
		return Page[CollectionView]{}, err
	}
	return p, nil
}

var activityTypes = map[string]bool{"Mint": true, "Sale": true, "Transfer": true, "Offer": true}

// CollectionActivities mints, sales, transfers and offers of the collection's NFTs, newest first
func (s *Service) CollectionActivities(ctx context.Context, id string, eventTypes []string) ([]Activity, error) {
	c, err := getCollection(s.conn(ctx), id)
	if err != nil {
		return nil, err
	}
	for _, t := range eventTypes {
		if !activityTypes[t] {
			return nil, Invalid("eventTypes", "must be a list of Mint Sale Transfer Offer")
		}
	}
	var ids []string
	if err = s.conn(ctx).Model(&model.NFT{}).Where("collection_id = ?", c.ID).Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "load collection nfts")
	}
	return s.activities(ctx, ids, c.CreatorWallet, true, eventTypes)
}
