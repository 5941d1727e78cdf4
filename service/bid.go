package service

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"nftmarket/common/types"
	"nftmarket/metrics"
	"nftmarket/model"
)

// bids within this window of their expiry are reported as EXPIRING
const expiringWindow = 3 * 24 * time.Hour

type CreateBidInput struct {
	ListingID string       `json:"listing_id" validate:"required"`
	Price     types.Amount `json:"price" swaggertype:"number"`
}

type UpdateBidInput struct {
	BidID    string `json:"bid_id" validate:"required"`
	Accepted *bool  `json:"accepted" validate:"required"`
}

// CreateBid places a bid strictly above the current best offer. The outbid
// offer is rejected and the asking price follows the new high bid.
func (s *Service) CreateBid(ctx context.Context, bidder string, in CreateBidInput) (*model.Bid, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	if err := positive("price", in.Price); err != nil {
		return nil, err
	}
	bidder = normWallet(bidder)
	bid := &model.Bid{BidderWallet: bidder, Price: in.Price, Status: model.BidActive}
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		l, err := lockListing(tx, in.ListingID)
		if err != nil {
			return err
		}
		if l.Status != model.ListingActive {
			return Business("Listing is not active")
		}
		if l.SellerWallet == bidder {
			return Business("You cannot bid on your own listing")
		}
		user, err := getUser(tx, bidder)
		if err != nil {
			return err
		}
		if user.Balance.Cmp(in.Price) < 0 {
			return Business("Insufficient balance")
		}
		var active []model.Bid
		if err = forUpdate(tx).Where("listing_id = ? AND status = ?", l.ID, model.BidActive).Find(&active).Error; err != nil {
			return errors.Wrap(err, "load bids")
		}
		for _, b := range active {
			if in.Price.Cmp(b.Price) <= 0 {
				return Business("Bid is too low")
			}
		}
		nft, err := getNFT(tx, l.NFTID)
		if err != nil {
			return err
		}
		for _, b := range active {
			if err = b.Status.To(model.BidRejected); err != nil {
				return transitionErr(err)
			}
			if err = tx.Model(&b).Update("status", model.BidRejected).Error; err != nil {
				return errors.Wrap(err, "reject outbid")
			}
			err = notifyWallet(tx, b.BidderWallet, model.NotifyOutbid, "You have been outbid",
				fmt.Sprintf("Someone bid %s on %s, above your offer of %s", in.Price, nft.Name, b.Price))
			if err != nil {
				return err
			}
		}
		bid.ListingID = l.ID
		if err = tx.Create(bid).Error; err != nil {
			return errors.Wrap(err, "create bid")
		}
		if l.Price.Cmp(in.Price) < 0 {
			if err = tx.Model(l).Update("price", in.Price).Error; err != nil {
				return errors.Wrap(err, "raise listing price")
			}
		}
		return notifyWallet(tx, l.SellerWallet, model.NotifyBestOffer, "New best offer",
			fmt.Sprintf("Your NFT %s received an offer of %s", nft.Name, in.Price))
	})
	if err != nil {
		return nil, err
	}
	return bid, nil
}

// UpdateBid the seller accepts a bid, settling the sale at the bid price, or
// the seller or bidder rejects it
func (s *Service) UpdateBid(ctx context.Context, caller string, in UpdateBidInput) (*model.Bid, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	caller = normWallet(caller)
	var bid model.Bid
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		err := forUpdate(tx).Where("id = ?", in.BidID).Take(&bid).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Bid not found")
		}
		if err != nil {
			return errors.Wrap(err, "load bid")
		}
		if bid.Status != model.BidActive {
			return Business("Bid is no longer active")
		}
		l, err := lockListing(tx, bid.ListingID)
		if err != nil {
			return err
		}
		if !*in.Accepted {
			if caller != l.SellerWallet && caller != bid.BidderWallet {
				return Forbidden("Only the seller or the bidder can reject this bid")
			}
			return setBidStatus(tx, &bid, model.BidRejected)
		}
		if caller != l.SellerWallet {
			return Forbidden("Only the seller can accept this bid")
		}
		if _, err = s.settle(tx, sale{listingID: l.ID, buyer: bid.BidderWallet, price: bid.Price, bidID: bid.ID}); err != nil {
			return err
		}
		return setBidStatus(tx, &bid, model.BidAccepted)
	})
	if err != nil {
		return nil, err
	}
	if bid.Status == model.BidAccepted {
		metrics.Settlements.WithLabelValues("bid").Inc()
		s.log.Info("bid accepted", "bid", bid.ID, "listing", bid.ListingID, "price", bid.Price.String())
	}
	return &bid, nil
}

func setBidStatus(tx *gorm.DB, bid *model.Bid, next model.BidStatus) error {
	if err := bid.Status.To(next); err != nil {
		return transitionErr(err)
	}
	res := tx.Model(&model.Bid{}).Where("id = ? AND status = ?", bid.ID, bid.Status).Update("status", next)
	if res.Error != nil {
		return errors.Wrap(res.Error, "update bid")
	}
	if res.RowsAffected != 1 {
		return Business("Bid is no longer active")
	}
	bid.Status = next
	return nil
}

// bidViews decorates bids with bidder name, floor difference and expiry
func (s *Service) bidViews(ctx context.Context, bids []model.Bid) ([]BidView, error) {
	listingIDs := make([]string, len(bids))
	bidders := make([]string, len(bids))
	for i, b := range bids {
		listingIDs[i], bidders[i] = b.ListingID, b.BidderWallet
	}
	floors := map[string]types.Amount{}
	if len(bids) > 0 {
		var rows []struct {
			ListingID string       `gorm:"column:listing_id"`
			Price     types.Amount `gorm:"column:price"`
		}
		err := s.conn(ctx).Model(&model.Listing{}).
			Joins("JOIN nfts ON nfts.id = listings.nft_id").
			Where("listings.id IN ?", dedupe(listingIDs)).
			Select("listings.id AS listing_id, nfts.price AS price").
			Scan(&rows).Error
		if err != nil {
			return nil, errors.Wrap(err, "load nft prices")
		}
		for _, r := range rows {
			floors[r.ListingID] = r.Price
		}
	}
	profiles, err := users(s.conn(ctx), bidders)
	if err != nil {
		return nil, err
	}
	out := make([]BidView, len(bids))
	for i, b := range bids {
		name, _ := nicknameOf(profiles, b.BidderWallet)
		out[i] = BidView{
			ID:              b.ID,
			ListingID:       b.ListingID,
			BidderWallet:    b.BidderWallet,
			BidderName:      name,
			Price:           b.Price,
			FloorDifference: floorDifference(b.Price, floors[b.ListingID]),
			Status:          b.Status,
			CreatedAt:       b.CreatedAt,
			ExpiresAt:       b.CreatedAt.Add(s.bidTTL),
		}
	}
	return out, nil
}

// ListingBids every bid on a listing, highest first
func (s *Service) ListingBids(ctx context.Context, listingID string) ([]BidView, error) {
	if listingID == "" {
		return nil, Invalid("listingId", "is required")
	}
	var bids []model.Bid
	if err := s.conn(ctx).Where("listing_id = ?", listingID).Order("price DESC").Find(&bids).Error; err != nil {
		return nil, errors.Wrap(err, "list bids")
	}
	return s.bidViews(ctx, bids)
}

// CurrentBid the ACTIVE bid of a listing
func (s *Service) CurrentBid(ctx context.Context, listingID string) (*BidView, error) {
	if listingID == "" {
		return nil, Invalid("listingId", "is required")
	}
	var bid model.Bid
	err := s.conn(ctx).Where("listing_id = ? AND status = ?", listingID, model.BidActive).Order("price DESC").Take(&bid).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("No active bid on this listing")
	}
	if err != nil {
		return nil, errors.Wrap(err, "load bid")
	}
	views, err := s.bidViews(ctx, []model.Bid{bid})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// BidFilter query of a bidder's offers
type BidFilter struct {
	PageReq
	Wallet string `form:"walletAddress"`
	Status string `form:"status"` //ACTIVE, REJECTED, ACCEPTED or EXPIRING
}

// WalletBids the bidder's offers, EXPIRING selects ACTIVE bids close to expiry
func (s *Service) WalletBids(ctx context.Context, f BidFilter) (res Page[BidView], err error) {
	wallet, err := walletParam(f.Wallet)
	if err != nil {
		return res, err
	}
	db := s.conn(ctx).Model(&model.Bid{}).Where("bidder_wallet = ?", wallet)
	switch f.Status {
	case "":
	case "EXPIRING":
		db = db.Where("status = ? AND created_at < ?", model.BidActive, s.now().Add(-(s.bidTTL - expiringWindow)))
	default:
		st := model.BidStatus(f.Status)
		if !st.Valid() {
			return res, Invalid("status", "must be one of ACTIVE ACCEPTED REJECTED EXPIRING")
		}
		db = db.Where("status = ?", st)
	}
	page, size := f.norm()
	var total int64
	if err = db.Count(&total).Error; err != nil {
		return res, errors.Wrap(err, "count bids")
	}
	var bids []model.Bid
	if err = db.Order("created_at DESC").Offset((page - 1) * size).Limit(size).Find(&bids).Error; err != nil {
		return res, errors.Wrap(err, "list bids")
	}
	views, err := s.bidViews(ctx, bids)
	if err != nil {
		return res, err
	}
	return newPage(views, total, page, size), nil
}
