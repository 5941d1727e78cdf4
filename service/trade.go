package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"nftmarket/metrics"
	"nftmarket/model"
)

type CreateTradeInput struct {
	TakerWallet     string   `json:"taker_wallet" validate:"required,eth_addr"`
	OfferedNFTIDs   []string `json:"offered_nft_ids" validate:"dive,required"`
	RequestedNFTIDs []string `json:"requested_nft_ids" validate:"dive,required"`
}

type UpdateTradeInput struct {
	TradeID  string `json:"trade_id" validate:"required"`
	Accepted *bool  `json:"accepted" validate:"required"`
}

// TradeFilter query of a wallet's trades
type TradeFilter struct {
	PageReq
	Wallet string `form:"walletAddress"`
	Type   string `form:"type"` //sent or received, both when empty
	Status string `form:"status"`
}

// checkItems verifies the NFTs are all owned by owner and none is in an open listing
func checkItems(tx *gorm.DB, ids []string, owner string) error {
	if len(ids) == 0 {
		return nil
	}
	var nfts []model.NFT
	if err := forUpdate(tx).Where("id IN ?", ids).Find(&nfts).Error; err != nil {
		return errors.Wrap(err, "load trade items")
	}
	if len(nfts) != len(ids) {
		return NotFound("NFT not found")
	}
	for _, n := range nfts {
		if n.OwnerWallet != owner {
			return Business("NFT %s is not owned by %s", n.Name, owner)
		}
	}
	var listed int64
	err := tx.Model(&model.Listing{}).
		Where("nft_id IN ? AND status IN ?", ids, []model.ListingStatus{model.ListingScheduled, model.ListingActive}).
		Count(&listed).Error
	if err != nil {
		return errors.Wrap(err, "check listings")
	}
	if listed > 0 {
		return Business("Listed NFTs cannot be traded")
	}
	return nil
}

// CreateTrade offers the caller's NFTs for NFTs of a friend
func (s *Service) CreateTrade(ctx context.Context, offerer string, in CreateTradeInput) (*model.Trade, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	offerer, taker := normWallet(offerer), normWallet(in.TakerWallet)
	if offerer == taker {
		return nil, Business("You cannot trade with yourself")
	}
	if len(in.OfferedNFTIDs)+len(in.RequestedNFTIDs) == 0 {
		return nil, Invalid("offered_nft_ids", "at least one NFT must be traded")
	}
	seen := map[string]bool{}
	for _, id := range append(append([]string{}, in.OfferedNFTIDs...), in.RequestedNFTIDs...) {
		if seen[id] {
			return nil, Invalid("offered_nft_ids", "must not contain duplicates")
		}
		seen[id] = true
	}
	trade := &model.Trade{OffererWallet: offerer, TakerWallet: taker, Status: model.TradePending}
	for _, id := range in.OfferedNFTIDs {
		trade.Items = append(trade.Items, model.TradeItem{NFTID: id, Side: model.SideOffer})
	}
	for _, id := range in.RequestedNFTIDs {
		trade.Items = append(trade.Items, model.TradeItem{NFTID: id, Side: model.SideReceiver})
	}
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, offerer); err != nil {
			return err
		}
		if _, err := getUser(tx, taker); err != nil {
			return err
		}
		friends, err := areFriends(tx, offerer, taker)
		if err != nil {
			return err
		}
		if !friends {
			return Business("You can only trade with friends")
		}
		if err = checkItems(tx, in.OfferedNFTIDs, offerer); err != nil {
			return err
		}
		if err = checkItems(tx, in.RequestedNFTIDs, taker); err != nil {
			return err
		}
		if err = tx.Create(trade).Error; err != nil {
			return errors.Wrap(err, "create trade")
		}
		return notifyWallet(tx, taker, model.NotifyOffer, "New trade offer",
			fmt.Sprintf("You received a trade offer for %d NFTs", len(trade.Items)))
	})
	if err != nil {
		return nil, err
	}
	return trade, nil
}

// itemsBySide NFT ids per side of the trade, sorted for lock ordering
func itemsBySide(items []model.TradeItem) (offered, requested []string) {
	for _, it := range items {
		if it.Side == model.SideOffer {
			offered = append(offered, it.NFTID)
		} else {
			requested = append(requested, it.NFTID)
		}
	}
	sort.Strings(offered)
	sort.Strings(requested)
	return offered, requested
}

// UpdateTrade the taker accepts, swapping every item at once, or rejects a pending trade
func (s *Service) UpdateTrade(ctx context.Context, taker string, in UpdateTradeInput) (*model.Trade, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	taker = normWallet(taker)
	var trade model.Trade
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		err := forUpdate(tx).Where("id = ?", in.TradeID).Take(&trade).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Trade not found")
		}
		if err != nil {
			return errors.Wrap(err, "load trade")
		}
		if trade.TakerWallet != taker {
			return Forbidden("Only the receiver of the trade can answer it")
		}
		if err = tx.Where("trade_id = ?", trade.ID).Find(&trade.Items).Error; err != nil {
			return errors.Wrap(err, "load trade items")
		}
		next := model.TradeCancelled
		if *in.Accepted {
			next = model.TradeCompleted
		}
		if err = trade.Status.To(next); err != nil {
			return transitionErr(err)
		}
		now := s.now()
		if next == model.TradeCompleted {
			offered, requested := itemsBySide(trade.Items)
			if err = checkItems(tx, offered, trade.OffererWallet); err != nil {
				return err
			}
			if err = checkItems(tx, requested, trade.TakerWallet); err != nil {
				return err
			}
			if len(offered) > 0 {
				err = tx.Model(&model.NFT{}).Where("id IN ?", offered).Update("owner_wallet", trade.TakerWallet).Error
				if err != nil {
					return errors.Wrap(err, "transfer offered nfts")
				}
			}
			if len(requested) > 0 {
				err = tx.Model(&model.NFT{}).Where("id IN ?", requested).Update("owner_wallet", trade.OffererWallet).Error
				if err != nil {
					return errors.Wrap(err, "transfer requested nfts")
				}
			}
		}
		res := tx.Model(&model.Trade{}).Where("id = ? AND status = ?", trade.ID, model.TradePending).
			Updates(map[string]interface{}{"status": next, "exchange_time": now})
		if res.Error != nil {
			return errors.Wrap(res.Error, "update trade")
		}
		if res.RowsAffected != 1 {
			return Business("Trade is no longer pending")
		}
		trade.Status, trade.ExchangeTime = next, &now
		if next == model.TradeCancelled {
			return notifyWallet(tx, trade.OffererWallet, model.NotifyTransfer, "Trade declined",
				"Your trade offer was declined")
		}
		msg := fmt.Sprintf("Your trade of %d NFTs is complete", len(trade.Items))
		if err = notifyWallet(tx, trade.OffererWallet, model.NotifySuccessTransfer, "Trade completed", msg); err != nil {
			return err
		}
		return notifyWallet(tx, trade.TakerWallet, model.NotifySuccessTransfer, "Trade completed", msg)
	})
	if err != nil {
		return nil, err
	}
	metrics.Trades.WithLabelValues(string(trade.Status)).Inc()
	return &trade, nil
}

// Trades the wallet's trades with their items, newest first
func (s *Service) Trades(ctx context.Context, f TradeFilter) (res Page[model.Trade], err error) {
	wallet, err := walletParam(f.Wallet)
	if err != nil {
		return res, err
	}
	db := s.conn(ctx).Model(&model.Trade{})
	switch f.Type {
	case "":
		db = db.Where("(offerer_wallet = ? OR taker_wallet = ?)", wallet, wallet)
	case "sent":
		db = db.Where("offerer_wallet = ?", wallet)
	case "received":
		db = db.Where("taker_wallet = ?", wallet)
	default:
		return res, Invalid("type", "must be one of sent received")
	}
	if f.Status != "" {
		st := model.TradeStatus(f.Status)
		if !st.Valid() {
			return res, Invalid("status", "must be one of PENDING COMPLETED CANCELLED")
		}
		db = db.Where("status = ?", st)
	}
	page, size := f.norm()
	var total int64
	if err = db.Count(&total).Error; err != nil {
		return res, errors.Wrap(err, "count trades")
	}
	var trades []model.Trade
	err = db.Preload("Items").Order("created_at DESC").Offset((page - 1) * size).Limit(size).Find(&trades).Error
	if err != nil {
		return res, errors.Wrap(err, "list trades")
	}
	return newPage(trades, total, page, size), nil
}
