package service

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"nftmarket/model"
)

// notify writes a notification when the user opted into its type, inside tx
func notify(tx *gorm.DB, user *model.User, t model.NotificationType, title, message string) error {
	if user == nil || !user.Wants(t) {
		return nil
	}
	n := &model.Notification{
		UserWallet:  user.WalletAddress,
		Title:       title,
		Message:     message,
		Type:        t,
		WebStatus:   model.WebUnread,
		EmailStatus: model.EmailPending,
	}
	return errors.Wrap(tx.Create(n).Error, "create notification")
}

// notifyWallet loads the recipient's preferences first, unknown wallets are skipped
func notifyWallet(tx *gorm.DB, wallet string, t model.NotificationType, title, message string) error {
	var user model.User
	err := tx.Where("wallet_address = ?", wallet).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "load notification recipient")
	}
	return notify(tx, &user, t, title, message)
}

// Notifications the caller's notifications, newest first, failed ones hidden
func (s *Service) Notifications(ctx context.Context, wallet string, req PageReq) (Page[model.Notification], error) {
	page, size := req.norm()
	db := s.conn(ctx).Model(&model.Notification{}).
		Where("user_wallet = ? AND web_status <> ?", wallet, model.WebFailed)
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return Page[model.Notification]{}, errors.Wrap(err, "count notifications")
	}
	var items []model.Notification
	err := db.Order("created_at DESC").Offset((page - 1) * size).Limit(size).Find(&items).Error
	if err != nil {
		return Page[model.Notification]{}, errors.Wrap(err, "list notifications")
	}
	return newPage(items, total, page, size), nil
}

// MarkRead marks one of the caller's notifications READ, repeated calls are no-ops
func (s *Service) MarkRead(ctx context.Context, wallet, id string) (*model.Notification, error) {
	if id == "" {
		return nil, Invalid("notification_id", "is required")
	}
	var n model.Notification
	err := s.conn(ctx).Where("id = ?", id).Take(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, NotFound("Notification not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "load notification")
	}
	if n.UserWallet != wallet {
		return nil, Forbidden("Notification belongs to another user")
	}
	if n.WebStatus == model.WebRead {
		return &n, nil
	}
	if err = n.WebStatus.To(model.WebRead); err != nil {
		return nil, transitionErr(err)
	}
	if err = s.conn(ctx).Model(&n).Update("web_status", model.WebRead).Error; err != nil {
		return nil, errors.Wrap(err, "mark notification read")
	}
	n.WebStatus = model.WebRead
	return &n, nil
}
