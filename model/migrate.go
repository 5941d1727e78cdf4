package model

import "gorm.io/gorm"

var Tables = []interface{}{
	&User{},
	&FriendRequest{},
	&Friendship{},
	&Nonce{},
	&RefreshToken{},
	&Collection{},
	&NFT{},
	&Trait{},
	&Listing{},
	&Bid{},
	&Transaction{},
	&Trade{},
	&TradeItem{},
	&Notification{},
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Tables...)
}

func DropTable(db *gorm.DB) error {
	return db.Migrator().DropTable(Tables...)
}
