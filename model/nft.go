package model

import "nftmarket/common/types"

// Collection NFT collection, royalties go to its creator on every sale
type Collection struct {
	Base
	ContractAddress string       `json:"contract_address" gorm:"type:VARCHAR(42);index"`    //contract address
	Name            string       `json:"name" gorm:"type:VARCHAR(50);index"`                //name
	Symbol          string       `json:"symbol" gorm:"type:VARCHAR(10)"`                    //symbol
	Description     string       `json:"description"`                                       //description
	Image           string       `json:"image"`                                             //image gateway url
	Metadata        string       `json:"metadata"`                                          //metadata uri
	Royalties       types.Amount `json:"royalties" swaggertype:"number"`                    //percentage of the sale price, 0-100
	Blockchain      string       `json:"blockchain" gorm:"type:VARCHAR(32)"`                //chain name
	CreatorWallet   string       `json:"creator_wallet" gorm:"type:VARCHAR(42);index"`      //creator wallet
	Website         string       `json:"website"`                                           //social links
	Twitter         string       `json:"twitter"`
	Discord         string       `json:"discord"`
	Telegram        string       `json:"telegram"`
}

// NFT a minted item
type NFT struct {
	Base
	TokenID       *string      `json:"token_id" gorm:"type:VARCHAR(78)"`                  //on-chain token id, set after mint
	Name          string       `json:"name" gorm:"index"`                                 //name
	Description   string       `json:"description"`                                       //description
	CollectionID  string       `json:"collection_id" gorm:"type:VARCHAR(36);index"`       //owning collection
	Quantity      int          `json:"quantity"`                                          //edition size
	Price         types.Amount `json:"price" swaggertype:"number"`                        //last known price
	OwnerWallet   string       `json:"owner_wallet" gorm:"type:VARCHAR(42);index"`        //current owner
	CreatorWallet string       `json:"creator_wallet" gorm:"type:VARCHAR(42);index"`      //minter
	Image         string       `json:"image"`                                             //image gateway url
	MetadataURI   string       `json:"metadata_uri" gorm:"column:metadata_uri"`                                      //metadata uri
	Traits        []Trait      `json:"traits,omitempty" gorm:"foreignKey:NFTID;constraint:OnDelete:CASCADE"`
}

func (NFT) TableName() string { return "nfts" }

// Trait NFT attribute
type Trait struct {
	Base
	NFTID     string `json:"nft_id" gorm:"column:nft_id;type:VARCHAR(36);index"`
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}
