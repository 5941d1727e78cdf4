package service

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"nftmarket/common/types"
	"nftmarket/log"
	"nftmarket/model"
)

var dbSeq int64

// newTestService a Service over a fresh in-memory sqlite schema
func newTestService(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, model.Migrate(db))
	return New(db, Options{
		Log:           log.Nop(),
		Pinner:        &fakePinner{},
		Images:        &fakeImages{},
		Tokens:        NewTokenIssuer("access-secret", "refresh-secret", time.Hour, 7*24*time.Hour),
		DefaultAvatar: "https://img.test/default.png",
	})
}

type fakePinner struct{ n int }

func (p *fakePinner) PinFile(_ context.Context, name string, _ []byte) (string, error) {
	p.n++
	return fmt.Sprintf("https://ipfs.test/ipfs/file%d/%s", p.n, name), nil
}

func (p *fakePinner) PinJSON(_ context.Context, name string, _ interface{}) (string, error) {
	p.n++
	return fmt.Sprintf("ipfs://meta%d/%s", p.n, name), nil
}

type fakeImages struct{ deleted []string }

func (f *fakeImages) Upload(_ context.Context, name string, _ []byte) (string, error) {
	return "https://img.test/" + name, nil
}

func (f *fakeImages) Delete(_ context.Context, url string) error {
	f.deleted = append(f.deleted, url)
	return nil
}

type fakeMailer struct {
	sent []string
	fail map[string]bool
}

func (m *fakeMailer) Send(_ context.Context, to, subject, _ string) error {
	if m.fail[to] {
		return fmt.Errorf("mailbox %s unavailable", to)
	}
	m.sent = append(m.sent, to+":"+subject)
	return nil
}

var walletSeq int64

// newWallet a random key and its lowercase address
func newWallet(t *testing.T) (*ecdsa.PrivateKey, string) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return key, strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())
}

func addUser(t *testing.T, s *Service, balance string) string {
	t.Helper()
	_, wallet := newWallet(t)
	n := atomic.AddInt64(&walletSeq, 1)
	u := &model.User{
		WalletAddress: wallet,
		Email:         fmt.Sprintf("user%d@example.com", n),
		Nickname:      fmt.Sprintf("user%d", n),
		Balance:       types.MustAmount(balance),
	}
	require.NoError(t, s.DB().Create(u).Error)
	return wallet
}

func addCollection(t *testing.T, s *Service, creator, royalties string) *model.Collection {
	t.Helper()
	c := &model.Collection{
		ContractAddress: "0x5b38da6a701c568545dcfcb03fcb875f56beddc4",
		Name:            "Collection " + creator[2:8],
		Symbol:          "COL",
		Royalties:       types.MustAmount(royalties),
		Blockchain:      "ETHEREUM",
		CreatorWallet:   creator,
	}
	require.NoError(t, s.DB().Create(c).Error)
	return c
}

func addNFT(t *testing.T, s *Service, collection *model.Collection, owner, name, price string) *model.NFT {
	t.Helper()
	token := "1"
	n := &model.NFT{
		TokenID:       &token,
		Name:          name,
		CollectionID:  collection.ID,
		Quantity:      1,
		Price:         types.MustAmount(price),
		OwnerWallet:   owner,
		CreatorWallet: collection.CreatorWallet,
	}
	require.NoError(t, s.DB().Create(n).Error)
	return n
}

func addListing(t *testing.T, s *Service, nft *model.NFT, price string) *model.Listing {
	t.Helper()
	l, err := s.CreateListing(context.Background(), nft.OwnerWallet, CreateListingInput{
		NFTID:        nft.ID,
		Price:        types.MustAmount(price),
		ContractAddr: "0x5b38da6a701c568545dcfcb03fcb875f56beddc4",
	})
	require.NoError(t, err)
	return l
}

// requireBalance compares numerically, sqlite may hand back 90 for 90.0
func requireBalance(t *testing.T, s *Service, wallet, want string) {
	t.Helper()
	u, err := getUser(s.DB(), wallet)
	require.NoError(t, err)
	require.Zerof(t, u.Balance.Cmp(types.MustAmount(want)), "balance of %s is %s, want %s", wallet, u.Balance, want)
}

func befriend(t *testing.T, s *Service, a, b string) {
	t.Helper()
	require.NoError(t, s.DB().Create(&model.Friendship{User1Wallet: a, User2Wallet: b}).Error)
}

func amt(s string) types.Amount { return types.MustAmount(s) }

func boolPtr(v bool) *bool { return &v }
