package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"nftmarket/model"
)

type FriendRequestInput struct {
	ReceiverWallet string `json:"receiver_wallet" validate:"required,eth_addr"`
}

type RespondFriendRequestInput struct {
	SenderWallet string `json:"sender_wallet" validate:"required,eth_addr"`
	Accepted     *bool  `json:"accepted" validate:"required"`
}

// areFriends reports whether a friendship exists in either direction
func areFriends(tx *gorm.DB, a, b string) (bool, error) {
	var count int64
	err := tx.Model(&model.Friendship{}).
		Where("(user1_wallet = ? AND user2_wallet = ?) OR (user1_wallet = ? AND user2_wallet = ?)", a, b, b, a).
		Count(&count).Error
	return count > 0, errors.Wrap(err, "check friendship")
}

// SendFriendRequest proposes a friendship from the caller to the receiver
func (s *Service) SendFriendRequest(ctx context.Context, sender string, in FriendRequestInput) (*model.FriendRequest, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	sender, receiver := normWallet(sender), normWallet(in.ReceiverWallet)
	if sender == receiver {
		return nil, Business("You cannot send a friend request to yourself")
	}
	var req *model.FriendRequest
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := getUser(tx, sender); err != nil {
			return err
		}
		if _, err := getUser(tx, receiver); err != nil {
			return err
		}
		friends, err := areFriends(tx, sender, receiver)
		if err != nil {
			return err
		}
		if friends {
			return Business("You are already friends")
		}
		var pending int64
		err = tx.Model(&model.FriendRequest{}).
			Where("status = ? AND ((sender_wallet = ? AND receiver_wallet = ?) OR (sender_wallet = ? AND receiver_wallet = ?))",
				model.RequestPending, sender, receiver, receiver, sender).
			Count(&pending).Error
		if err != nil {
			return errors.Wrap(err, "check pending requests")
		}
		if pending > 0 {
			return Business("A friend request is already pending")
		}
		req = &model.FriendRequest{SenderWallet: sender, ReceiverWallet: receiver, Status: model.RequestPending}
		return errors.Wrap(tx.Create(req).Error, "create friend request")
	})
	return req, err
}

// FriendRequests pending requests sent or received by the wallet
func (s *Service) FriendRequests(ctx context.Context, wallet, kind string, req PageReq) (Page[model.FriendRequest], error) {
	wallet, err := walletParam(wallet)
	if err != nil {
		return Page[model.FriendRequest]{}, err
	}
	column := ""
	switch kind {
	case "sent":
		column = "sender_wallet"
	case "received":
		column = "receiver_wallet"
	default:
		return Page[model.FriendRequest]{}, Invalid("type", "must be one of sent received")
	}
	page, size := req.norm()
	db := s.conn(ctx).Model(&model.FriendRequest{}).Where(column+" = ? AND status = ?", wallet, model.RequestPending)
	var total int64
	if err = db.Count(&total).Error; err != nil {
		return Page[model.FriendRequest]{}, errors.Wrap(err, "count friend requests")
	}
	var items []model.FriendRequest
	if err = db.Order("created_at DESC").Offset((page - 1) * size).Limit(size).Find(&items).Error; err != nil {
		return Page[model.FriendRequest]{}, errors.Wrap(err, "list friend requests")
	}
	return newPage(items, total, page, size), nil
}

// RespondFriendRequest the receiver accepts or rejects a pending request
func (s *Service) RespondFriendRequest(ctx context.Context, receiver string, in RespondFriendRequestInput) (*model.FriendRequest, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	receiver, sender := normWallet(receiver), normWallet(in.SenderWallet)
	var req model.FriendRequest
	err := s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		err := forUpdate(tx).Where("sender_wallet = ? AND receiver_wallet = ? AND status = ?", sender, receiver, model.RequestPending).
			Take(&req).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return NotFound("Friend request not found")
		}
		if err != nil {
			return errors.Wrap(err, "load friend request")
		}
		next := model.RequestRejected
		if *in.Accepted {
			next = model.RequestAccepted
		}
		if err = req.Status.To(next); err != nil {
			return transitionErr(err)
		}
		if err = tx.Model(&req).Update("status", next).Error; err != nil {
			return errors.Wrap(err, "update friend request")
		}
		req.Status = next
		if next != model.RequestAccepted {
			return nil
		}
		friendship := &model.Friendship{User1Wallet: sender, User2Wallet: receiver}
		return errors.Wrap(tx.Create(friendship).Error, "create friendship")
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// Friends the users befriended with the wallet
func (s *Service) Friends(ctx context.Context, wallet string, req PageReq) (Page[model.User], error) {
	wallet, err := walletParam(wallet)
	if err != nil {
		return Page[model.User]{}, err
	}
	var friendships []model.Friendship
	err = s.conn(ctx).Where("user1_wallet = ? OR user2_wallet = ?", wallet, wallet).Order("created_at DESC").Find(&friendships).Error
	if err != nil {
		return Page[model.User]{}, errors.Wrap(err, "list friendships")
	}
	wallets := make([]string, 0, len(friendships))
	for _, f := range friendships {
		if f.User1Wallet == wallet {
			wallets = append(wallets, f.User2Wallet)
		} else {
			wallets = append(wallets, f.User1Wallet)
		}
	}
	page, size := req.norm()
	var users []model.User
	if len(wallets) > 0 {
		err = s.conn(ctx).Where("wallet_address IN ?", wallets).Order("nickname").
			Offset((page - 1) * size).Limit(size).Find(&users).Error
		if err != nil {
			return Page[model.User]{}, errors.Wrap(err, "list friends")
		}
	}
	return newPage(users, int64(len(wallets)), page, size), nil
}

// RemoveFriend deletes the friendship between the caller and other
func (s *Service) RemoveFriend(ctx context.Context, caller, other string) error {
	other, err := walletParam(other)
	if err != nil {
		return err
	}
	caller = normWallet(caller)
	res := s.conn(ctx).
		Where("(user1_wallet = ? AND user2_wallet = ?) OR (user1_wallet = ? AND user2_wallet = ?)", caller, other, other, caller).
		Delete(&model.Friendship{})
	if res.Error != nil {
		return errors.Wrap(res.Error, "delete friendship")
	}
	if res.RowsAffected == 0 {
		return NotFound("Friendship not found")
	}
	return nil
}
