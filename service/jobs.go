package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"nftmarket/model"
)

// ExpireBids rejects ACTIVE bids older than the bid ttl
func (s *Service) ExpireBids(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.bidTTL)
	res := s.conn(ctx).Model(&model.Bid{}).
		Where("status = ? AND created_at < ?", model.BidActive, cutoff).
		Update("status", model.BidRejected)
	return res.RowsAffected, errors.Wrap(res.Error, "expire bids")
}

// ActivateDrops moves SCHEDULED listings whose drop time passed to ACTIVE and tells the seller
func (s *Service) ActivateDrops(ctx context.Context) (int64, error) {
	var due []model.Listing
	err := s.conn(ctx).Preload("NFT").
		Where("status = ? AND drop_at <= ?", model.ListingScheduled, s.now()).
		Find(&due).Error
	if err != nil {
		return 0, errors.Wrap(err, "load due drops")
	}
	var activated int64
	for _, l := range due {
		err = s.conn(ctx).Transaction(func(tx *gorm.DB) error {
			if err := l.Status.To(model.ListingActive); err != nil {
				return transitionErr(err)
			}
			res := tx.Model(&model.Listing{}).Where("id = ? AND status = ?", l.ID, model.ListingScheduled).
				Update("status", model.ListingActive)
			if res.Error != nil {
				return errors.Wrap(res.Error, "activate drop")
			}
			if res.RowsAffected == 0 {
				return nil
			}
			activated++
			name := unknown
			if l.NFT != nil {
				name = l.NFT.Name
			}
			return notifyWallet(tx, l.SellerWallet, model.NotifySuccess, "Drop", fmt.Sprintf("Your NFT %s has dropped!", name))
		})
		if err != nil {
			return activated, err
		}
	}
	return activated, nil
}

var mailTemplate = template.Must(template.New("mail").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif">
<h2>{{.Title}}</h2>
<p>Hello {{.Nickname}},</p>
<p>{{.Message}}</p>
</body>
</html>`))

func renderMail(user model.User, n model.Notification) (string, error) {
	var buf bytes.Buffer
	err := mailTemplate.Execute(&buf, map[string]string{
		"Title":    n.Title,
		"Nickname": user.Nickname,
		"Message":  n.Message,
	})
	return buf.String(), err
}

// DeliverEmails sends up to batch notifications not yet emailed, each ends SENT or FAILED.
// Notifications of users without an email fail at once, FAILED sends are retried
// on later runs after the PENDING ones.
func (s *Service) DeliverEmails(ctx context.Context, mailer Mailer, batch int) (sent, failed int, err error) {
	if batch <= 0 {
		batch = 50
	}
	reachable := s.conn(ctx).Model(&model.User{}).Select("wallet_address").Where("email <> ''")
	res := s.conn(ctx).Model(&model.Notification{}).
		Where("email_status = ? AND user_wallet NOT IN (?)", model.EmailPending, reachable).
		Update("email_status", model.EmailFailed)
	if res.Error != nil {
		return 0, 0, errors.Wrap(res.Error, "fail unreachable emails")
	}
	failed = int(res.RowsAffected)

	var pending []model.Notification
	err = s.conn(ctx).Where("email_status <> ? AND user_wallet IN (?)", model.EmailSent, reachable).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN email_status = ? THEN 0 ELSE 1 END, created_at",
			Vars:               []interface{}{model.EmailPending},
			WithoutParentheses: true,
		}}).
		Limit(batch).Find(&pending).Error
	if err != nil {
		return 0, failed, errors.Wrap(err, "load pending emails")
	}
	wallets := make([]string, len(pending))
	for i, n := range pending {
		wallets[i] = n.UserWallet
	}
	profiles, err := users(s.conn(ctx), wallets)
	if err != nil {
		return 0, failed, err
	}
	for _, n := range pending {
		if ctx.Err() != nil {
			return sent, failed, ctx.Err()
		}
		next := model.EmailSent
		user := profiles[n.UserWallet]
		body, err := renderMail(user, n)
		if err == nil {
			err = mailer.Send(ctx, user.Email, n.Title, body)
		}
		if err != nil {
			s.log.Warn("send notification email", "notification", n.ID, "err", err)
			next = model.EmailFailed
		}
		if err := n.EmailStatus.To(next); err != nil {
			return sent, failed, transitionErr(err)
		}
		if err := s.conn(ctx).Model(&n).Update("email_status", next).Error; err != nil {
			return sent, failed, errors.Wrap(err, "update email status")
		}
		if next == model.EmailSent {
			sent++
		} else {
			failed++
		}
	}
	return sent, failed, nil
}
