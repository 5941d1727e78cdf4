package model

import (
	"time"

	"nftmarket/common/types"
)

// Listing an NFT offered for sale, optionally activated later by the drop job
type Listing struct {
	Base
	NFTID         string        `json:"nft_id" gorm:"column:nft_id;type:VARCHAR(36);index"` //listed NFT
	SellerWallet  string        `json:"seller_wallet" gorm:"type:VARCHAR(42);index"`    //seller
	Price         types.Amount  `json:"price" swaggertype:"number"`                     //asking price, raised by higher bids
	ContractAddr  string        `json:"contract_addr" gorm:"type:VARCHAR(42)"`          //NFT contract
	DropAt        time.Time     `json:"drop_at" gorm:"index"`                           //activation time
	Status        ListingStatus `json:"status" gorm:"type:VARCHAR(16);index"`           //SCHEDULED, ACTIVE or SOLD
	TransactionID *string       `json:"transaction_id" gorm:"type:VARCHAR(36)"`         //settlement record once sold
	NFT           *NFT          `json:"nft,omitempty" gorm:"foreignKey:NFTID"`
}

// Bid offer on a listing, at most one ACTIVE per listing
type Bid struct {
	Base
	ListingID    string       `json:"listing_id" gorm:"type:VARCHAR(36);index"`
	BidderWallet string       `json:"bidder_wallet" gorm:"type:VARCHAR(42);index"`
	Price        types.Amount `json:"price" swaggertype:"number"`
	Status       BidStatus    `json:"status" gorm:"type:VARCHAR(16);index"`
}

// Transaction immutable settlement record of a sale
type Transaction struct {
	Base
	ListingID    string            `json:"listing_id" gorm:"type:VARCHAR(36);index"`
	NFTID        string            `json:"nft_id" gorm:"column:nft_id;type:VARCHAR(36);index"`
	BuyerWallet  string            `json:"buyer_wallet" gorm:"type:VARCHAR(42);index"`
	SellerWallet string            `json:"seller_wallet" gorm:"type:VARCHAR(42);index"`
	Price        types.Amount      `json:"price" swaggertype:"number"`   //amount paid by the buyer
	Royalty      types.Amount      `json:"royalty" swaggertype:"number"` //part of price paid to the collection creator
	Status       TransactionStatus `json:"status" gorm:"type:VARCHAR(16)"`
	Network      string            `json:"network" gorm:"type:VARCHAR(32)"`
}

// Trade NFT for NFT barter between two friends
type Trade struct {
	Base
	OffererWallet string      `json:"offerer_wallet" gorm:"type:VARCHAR(42);index"`
	TakerWallet   string      `json:"taker_wallet" gorm:"type:VARCHAR(42);index"`
	Status        TradeStatus `json:"status" gorm:"type:VARCHAR(16);index"`
	ExchangeTime  *time.Time  `json:"exchange_time"` //set when completed or cancelled
	Items         []TradeItem `json:"trade_items" gorm:"foreignKey:TradeID;constraint:OnDelete:CASCADE"`
}

type TradeItem struct {
	Base
	TradeID string    `json:"trade_id" gorm:"type:VARCHAR(36);index"`
	NFTID   string    `json:"nft_id" gorm:"column:nft_id;type:VARCHAR(36);index"`
	Side    TradeSide `json:"side" gorm:"type:VARCHAR(16)"`
}
