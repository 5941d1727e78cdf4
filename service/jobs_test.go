package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nftmarket/model"
)

func TestExpireBids(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	seller := addUser(t, s, "0")
	bidder := addUser(t, s, "100")
	c := addCollection(t, s, seller, "0")
	stale := addListing(t, s, addNFT(t, s, c, seller, "Stale", "1"), "1")
	recent := addListing(t, s, addNFT(t, s, c, seller, "Recent", "1"), "1")
	old, err := s.CreateBid(ctx, bidder, CreateBidInput{ListingID: stale.ID, Price: amt("2")})
	require.NoError(t, err)
	young, err := s.CreateBid(ctx, bidder, CreateBidInput{ListingID: recent.ID, Price: amt("2")})
	require.NoError(t, err)
	require.NoError(t, s.DB().Model(&model.Bid{}).Where("id = ?", old.ID).
		Update("created_at", time.Now().Add(-31*24*time.Hour)).Error)
	require.NoError(t, s.DB().Model(&model.Bid{}).Where("id = ?", young.ID).
		Update("created_at", time.Now().Add(-29*24*time.Hour)).Error)

	n, err := s.ExpireBids(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	assert.Empty(t, activeBids(t, s, stale.ID))
	assert.Len(t, activeBids(t, s, recent.ID), 1)

	n, err = s.ExpireBids(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestActivateDrops(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	seller := addUser(t, s, "0")
	c := addCollection(t, s, seller, "0")
	soon := time.Now().Add(time.Minute)
	later := time.Now().Add(24 * time.Hour)
	var ids []string
	for i, at := range []time.Time{soon, later} {
		drop := at
		l, err := s.CreateListing(ctx, seller, CreateListingInput{
			NFTID:        addNFT(t, s, c, seller, []string{"Soon", "Later"}[i], "1").ID,
			Price:        amt("5"),
			ContractAddr: "0x5b38da6a701c568545dcfcb03fcb875f56beddc4",
			DropAt:       &drop,
		})
		require.NoError(t, err)
		require.Equal(t, model.ListingScheduled, l.Status)
		ids = append(ids, l.ID)
	}

	s.now = func() time.Time { return time.Now().Add(time.Hour) }
	n, err := s.ActivateDrops(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	var got []model.Listing
	require.NoError(t, s.DB().Where("id IN ?", ids).Find(&got).Error)
	for _, l := range got {
		if l.ID == ids[0] {
			assert.Equal(t, model.ListingActive, l.Status)
		} else {
			assert.Equal(t, model.ListingScheduled, l.Status)
		}
	}

	var drop model.Notification
	require.NoError(t, s.DB().Where("user_wallet = ? AND title = ?", seller, "Drop").Take(&drop).Error)
	assert.Equal(t, "Your NFT Soon has dropped!", drop.Message)
	assert.Equal(t, model.NotifySuccess, drop.Type)
}

func TestDeliverEmails(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	alice := addUser(t, s, "0")
	bob := addUser(t, s, "0")
	silent := addUser(t, s, "0")
	require.NoError(t, s.DB().Model(&model.User{}).Where("wallet_address = ?", silent).Update("email", "").Error)

	var aliceUser, bobUser model.User
	require.NoError(t, s.DB().Where("wallet_address = ?", alice).Take(&aliceUser).Error)
	require.NoError(t, s.DB().Where("wallet_address = ?", bob).Take(&bobUser).Error)
	for _, w := range []string{alice, bob, silent} {
		require.NoError(t, notifyWallet(s.DB(), w, model.NotifySuccess, "Hello", "Welcome aboard"))
	}

	mailer := &fakeMailer{fail: map[string]bool{bobUser.Email: true}}
	sent, failed, err := s.DeliverEmails(ctx, mailer, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, 2, failed)
	assert.Equal(t, []string{aliceUser.Email + ":Hello"}, mailer.sent)

	statusOf := func(wallet string) model.EmailStatus {
		var n model.Notification
		require.NoError(t, s.DB().Where("user_wallet = ?", wallet).Take(&n).Error)
		return n.EmailStatus
	}
	assert.Equal(t, model.EmailSent, statusOf(alice))
	assert.Equal(t, model.EmailFailed, statusOf(bob))
	assert.Equal(t, model.EmailFailed, statusOf(silent))

	// bob's mailbox is back, the failed send is retried
	mailer.fail = nil
	sent, _, err = s.DeliverEmails(ctx, mailer, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)
	assert.Equal(t, model.EmailSent, statusOf(bob))
	assert.Equal(t, model.EmailFailed, statusOf(silent))
}

func TestRenderMail(t *testing.T) {
	body, err := renderMail(model.User{Nickname: "<b>eve</b>"}, model.Notification{Title: "Item sold", Message: "Your NFT sold"})
	require.NoError(t, err)
	assert.Contains(t, body, "<h2>Item sold</h2>")
	assert.Contains(t, body, "&lt;b&gt;eve&lt;/b&gt;")
}
