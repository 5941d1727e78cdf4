package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"nftmarket/common/types"
	"nftmarket/model"
)

// Upload an uploaded file from a multipart form
type Upload struct {
	Name string
	Data []byte
}

type CreateUserInput struct {
	Email         string `json:"email" form:"email" validate:"required,email"`
	WalletAddress string `json:"wallet_address" form:"wallet_address" validate:"required,eth_addr"`
	Nickname      string `json:"nickname" form:"nickname" validate:"required,min=3,max=20"`
}

type UpdateUserInput struct {
	Email    *string `json:"email" form:"email" validate:"omitempty,email"`
	Nickname *string `json:"nickname" form:"nickname" validate:"omitempty,min=3,max=20"`
}

// PreferencesInput nil flags are left unchanged
type PreferencesInput struct {
	ItemSold           *bool `json:"item_sold_notification"`
	OfferActivity      *bool `json:"offer_activity_notification"`
	BestOfferActivity  *bool `json:"best_offer_activity_notification"`
	SuccessfulTransfer *bool `json:"successful_transfer_notification"`
	Transfer           *bool `json:"transfer_notification"`
	Outbid             *bool `json:"outbid_notification"`
	SuccessfulPurchase *bool `json:"successful_purchase_notification"`
	SuccessfulMint     *bool `json:"successful_mint_notification"`
}

func getUser(tx *gorm.DB, wallet string) (*model.User, error) {
	var u model.User
	err := tx.Where("wallet_address = ?", wallet).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("User not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "load user")
	}
	return &u, nil
}

// lockUser loads a user row for update inside a transaction
func lockUser(tx *gorm.DB, wallet string) (*model.User, error) {
	return getUser(forUpdate(tx), wallet)
}

func walletParam(wallet string) (string, error) {
	if !isWallet(wallet) {
		return "", Invalid("wallet_address", "must be a valid Ethereum address")
	}
	return normWallet(wallet), nil
}

func (s *Service) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := s.conn(ctx).Order("created_at").Find(&users).Error
	return users, errors.Wrap(err, "list users")
}

func (s *Service) User(ctx context.Context, wallet string) (*model.User, error) {
	wallet, err := walletParam(wallet)
	if err != nil {
		return nil, err
	}
	return getUser(s.conn(ctx), wallet)
}

// CreateUser registers a wallet, the avatar falls back to the default image
func (s *Service) CreateUser(ctx context.Context, in CreateUserInput, avatar *Upload) (*model.User, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	wallet := normWallet(in.WalletAddress)
	var count int64
	if err := s.conn(ctx).Model(&model.User{}).Where("wallet_address = ?", wallet).Count(&count).Error; err != nil {
		return nil, errors.Wrap(err, "check wallet")
	}
	if count > 0 {
		return nil, Invalid("wallet_address", "Wallet address already in use")
	}
	url := s.defaultAvatar
	if avatar != nil && s.images != nil {
		var err error
		if url, err = s.images.Upload(ctx, avatar.Name, avatar.Data); err != nil {
			return nil, errors.Wrap(err, "upload avatar")
		}
	}
	u := &model.User{
		WalletAddress: wallet,
		Email:         in.Email,
		Nickname:      in.Nickname,
		Avatar:        url,
	}
	if err := s.conn(ctx).Create(u).Error; err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	return getUser(s.conn(ctx), wallet)
}

// UpdateUser changes profile fields, a new avatar replaces and deletes the old one
func (s *Service) UpdateUser(ctx context.Context, wallet string, in UpdateUserInput, avatar *Upload) (*model.User, error) {
	wallet, err := walletParam(wallet)
	if err != nil {
		return nil, err
	}
	if err = s.check(in); err != nil {
		return nil, err
	}
	u, err := getUser(s.conn(ctx), wallet)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Nickname != nil {
		updates["nickname"] = *in.Nickname
	}
	oldAvatar := u.Avatar
	if avatar != nil && s.images != nil {
		url, err := s.images.Upload(ctx, avatar.Name, avatar.Data)
		if err != nil {
			return nil, errors.Wrap(err, "upload avatar")
		}
		updates["avatar"] = url
	}
	if len(updates) > 0 {
		if err = s.conn(ctx).Model(u).Updates(updates).Error; err != nil {
			return nil, errors.Wrap(err, "update user")
		}
	}
	if _, replaced := updates["avatar"]; replaced && oldAvatar != s.defaultAvatar {
		if err := s.images.Delete(ctx, oldAvatar); err != nil {
			s.log.Warn("delete old avatar", "wallet", wallet, "err", err)
		}
	}
	return getUser(s.conn(ctx), wallet)
}

// UpdatePreferences sets notification opt-in flags
func (s *Service) UpdatePreferences(ctx context.Context, wallet string, in PreferencesInput) (*model.User, error) {
	wallet, err := walletParam(wallet)
	if err != nil {
		return nil, err
	}
	u, err := getUser(s.conn(ctx), wallet)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	set := func(column string, v *bool) {
		if v != nil {
			updates[column] = *v
		}
	}
	set("item_sold", in.ItemSold)
	set("offer_activity", in.OfferActivity)
	set("best_offer_activity", in.BestOfferActivity)
	set("successful_transfer", in.SuccessfulTransfer)
	set("transfer", in.Transfer)
	set("outbid", in.Outbid)
	set("successful_purchase", in.SuccessfulPurchase)
	set("successful_mint", in.SuccessfulMint)
	if len(updates) > 0 {
		if err = s.conn(ctx).Model(u).Updates(updates).Error; err != nil {
			return nil, errors.Wrap(err, "update preferences")
		}
	}
	return getUser(s.conn(ctx), wallet)
}

func (s *Service) DeleteUser(ctx context.Context, wallet string) (*model.User, error) {
	wallet, err := walletParam(wallet)
	if err != nil {
		return nil, err
	}
	u, err := getUser(s.conn(ctx), wallet)
	if err != nil {
		return nil, err
	}
	if err = s.conn(ctx).Delete(u).Error; err != nil {
		return nil, errors.Wrap(err, "delete user")
	}
	if s.images != nil && u.Avatar != "" && u.Avatar != s.defaultAvatar {
		if err := s.images.Delete(ctx, u.Avatar); err != nil {
			s.log.Warn("delete avatar", "wallet", wallet, "err", err)
		}
	}
	return u, nil
}

// profit percentage change of value held plus value sold over a window:
// (end value + sold - start value) / (start value or 1) * 100
func profit(start, end, sold types.Amount) float64 {
	before := start.Float64()
	if before == 0 {
		before = 1
	}
	return (end.Float64() + sold.Float64() - start.Float64()) / before * 100
}

func sumPrices[T any](items []T, price func(T) types.Amount) types.Amount {
	var total types.Amount
	for _, it := range items {
		// additions at 34 digit precision cannot fail for stored numeric(36,18) values
		total, _ = total.Add(price(it))
	}
	return total
}

// ownedValue sum of prices of the wallet's NFTs last touched at or before t
func (s *Service) ownedValue(ctx context.Context, wallet string, t *time.Time) (types.Amount, error) {
	db := s.conn(ctx).Where("owner_wallet = ?", wallet)
	if t != nil {
		db = db.Where("updated_at <= ?", *t)
	}
	var nfts []model.NFT
	if err := db.Find(&nfts).Error; err != nil {
		return types.Amount{}, errors.Wrap(err, "load owned nfts")
	}
	return sumPrices(nfts, func(n model.NFT) types.Amount { return n.Price }), nil
}

func (s *Service) soldValue(ctx context.Context, wallet string, from, to time.Time) (types.Amount, error) {
	var txs []model.Transaction
	err := s.conn(ctx).Where("seller_wallet = ? AND created_at >= ? AND created_at <= ?", wallet, from, to).Find(&txs).Error
	if err != nil {
		return types.Amount{}, errors.Wrap(err, "load sales")
	}
	return sumPrices(txs, func(t model.Transaction) types.Amount { return t.Price }), nil
}

// Profit percentage profit of a wallet over the last hours
func (s *Service) Profit(ctx context.Context, wallet string, hours int) (float64, error) {
	wallet, err := walletParam(wallet)
	if err != nil {
		return 0, err
	}
	if hours <= 0 {
		return 0, Invalid("hours", "must be greater than 0")
	}
	now := s.now()
	start := now.Add(-time.Duration(hours) * time.Hour)
	initial, err := s.ownedValue(ctx, wallet, &start)
	if err != nil {
		return 0, err
	}
	current, err := s.ownedValue(ctx, wallet, nil)
	if err != nil {
		return 0, err
	}
	sold, err := s.soldValue(ctx, wallet, start, now)
	if err != nil {
		return 0, err
	}
	return profit(initial, current, sold), nil
}

// HourlyProfit one entry per hour, most recent hour first
type HourlyProfit struct {
	Hour   string  `json:"hour"` //HH:MM start of the hour window
	Profit float64 `json:"profit"`
}

func (s *Service) HourlyProfit(ctx context.Context, wallet string, hours int) ([]HourlyProfit, error) {
	wallet, err := walletParam(wallet)
	if err != nil {
		return nil, err
	}
	if hours <= 0 || hours > 168 {
		return nil, Invalid("hours", "must be between 1 and 168")
	}
	now := s.now()
	out := make([]HourlyProfit, 0, hours)
	for i := 1; i <= hours; i++ {
		end := now.Add(-time.Duration(i-1) * time.Hour)
		start := now.Add(-time.Duration(i) * time.Hour)
		initial, err := s.ownedValue(ctx, wallet, &start)
		if err != nil {
			return nil, err
		}
		current, err := s.ownedValue(ctx, wallet, &end)
		if err != nil {
			return nil, err
		}
		sold, err := s.soldValue(ctx, wallet, start, end)
		if err != nil {
			return nil, err
		}
		out = append(out, HourlyProfit{Hour: start.Format("15:04"), Profit: profit(initial, current, sold)})
	}
	return out, nil
}
