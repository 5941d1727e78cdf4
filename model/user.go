package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"nftmarket/common/types"
)

// Base uuid primary key and timestamps shared by every table
type Base struct {
	ID        string    `json:"id" gorm:"type:VARCHAR(36);primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Base) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// User marketplace account, identified by wallet address
type User struct {
	Base
	WalletAddress  string       `json:"wallet_address" gorm:"type:VARCHAR(42);uniqueIndex;not null"`    //wallet address
	Email          string       `json:"email" gorm:"type:VARCHAR(255)"`                                 //email address for notifications
	Nickname       string       `json:"nickname" gorm:"type:VARCHAR(20)"`                               //display name
	Avatar         string       `json:"avatar"`                                                         //avatar image url
	Balance        types.Amount `json:"balance" gorm:"not null;default:0" swaggertype:"number"`         //spendable balance, never negative
	Preferences    `gorm:"embedded"`
}

// Preferences per notification type opt-in flags
type Preferences struct {
	ItemSold           bool `json:"item_sold_notification" gorm:"default:true"`
	OfferActivity      bool `json:"offer_activity_notification" gorm:"default:true"`
	BestOfferActivity  bool `json:"best_offer_activity_notification" gorm:"default:true"`
	SuccessfulTransfer bool `json:"successful_transfer_notification" gorm:"default:true"`
	Transfer           bool `json:"transfer_notification" gorm:"default:true"`
	Outbid             bool `json:"outbid_notification" gorm:"default:true"`
	SuccessfulPurchase bool `json:"successful_purchase_notification" gorm:"default:true"`
	SuccessfulMint     bool `json:"successful_mint_notification" gorm:"default:true"`
}

// Wants reports whether the user opted into notifications of type t
func (p Preferences) Wants(t NotificationType) bool {
	switch t {
	case NotifyBestOffer:
		return p.BestOfferActivity
	case NotifyMint:
		return p.SuccessfulMint
	case NotifyOffer:
		return p.OfferActivity
	case NotifyOutbid:
		return p.Outbid
	case NotifySuccessTransfer:
		return p.SuccessfulTransfer
	case NotifyPurchase:
		return p.SuccessfulPurchase
	case NotifyTransfer:
		return p.Transfer
	case NotifyItemSold:
		return p.ItemSold
	default:
		return true
	}
}

// FriendRequest pending friendship proposal
type FriendRequest struct {
	Base
	SenderWallet   string        `json:"sender_wallet" gorm:"type:VARCHAR(42);index"`
	ReceiverWallet string        `json:"receiver_wallet" gorm:"type:VARCHAR(42);index"`
	Status         RequestStatus `json:"status" gorm:"type:VARCHAR(16);index"`
}

// Friendship symmetric relation, User1Wallet is whoever sent the request
type Friendship struct {
	Base
	User1Wallet string `json:"user1_wallet" gorm:"column:user1_wallet;type:VARCHAR(42);uniqueIndex:idx_friend_pair"`
	User2Wallet string `json:"user2_wallet" gorm:"column:user2_wallet;type:VARCHAR(42);uniqueIndex:idx_friend_pair"`
}

// Nonce sign-in challenge per wallet, used when redis is not configured
type Nonce struct {
	Address   string    `json:"address" gorm:"type:VARCHAR(42);primaryKey"`
	Value     string    `json:"value" gorm:"type:VARCHAR(64)"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RefreshToken issued refresh token, the id is the token's jti
type RefreshToken struct {
	Base
	UserWallet string    `json:"user_wallet" gorm:"type:VARCHAR(42);index"`
	TokenHash  string    `json:"-" gorm:"type:VARCHAR(64);uniqueIndex"` //sha256 of the signed token
	ExpiresAt  time.Time `json:"expires_at" gorm:"index"`
}
