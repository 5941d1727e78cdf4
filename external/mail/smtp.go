package mail

import (
	"context"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
	"golang.org/x/time/rate"
	"nftmarket/log"
)

// SMTP sends html mails through one relay, throttled to the provider limit
type SMTP struct {
	from    string
	limiter *rate.Limiter
	send    func(ctx context.Context, m *gomail.Msg) error
}

// NewSMTP rate is mails per second, an empty user skips SMTP auth
func NewSMTP(host string, port int, user, password, from string, ratePerSec float64) (*SMTP, error) {
	opts := []gomail.Option{gomail.WithPort(port), gomail.WithTLSPortPolicy(gomail.TLSOpportunistic)}
	if user != "" {
		opts = append(opts, gomail.WithSMTPAuth(gomail.SMTPAuthPlain), gomail.WithUsername(user), gomail.WithPassword(password))
	}
	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "smtp client")
	}
	if from == "" {
		from = user
	}
	if err = gomail.NewMsg().From(from); err != nil {
		return nil, errors.Wrapf(err, "invalid sender %q", from)
	}
	return &SMTP{
		from:    from,
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), 1),
		send: func(ctx context.Context, m *gomail.Msg) error {
			return client.DialAndSendWithContext(ctx, m)
		},
	}, nil
}

func (s *SMTP) message(to, subject, body string) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return nil, errors.Wrapf(err, "invalid sender %q", s.from)
	}
	if err := m.To(to); err != nil {
		return nil, errors.Wrapf(err, "invalid recipient %q", to)
	}
	m.Subject(subject)
	m.SetDate()
	m.SetBodyString(gomail.TypeTextHTML, body)
	return m, nil
}

// Send waits for the limiter, ctx cancellation aborts the wait
func (s *SMTP) Send(ctx context.Context, to, subject, body string) error {
	m, err := s.message(to, subject, body)
	if err != nil {
		return err
	}
	if err = s.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "mail rate limit")
	}
	if err = s.send(ctx, m); err != nil {
		return errors.Wrapf(err, "send mail to %s", to)
	}
	return nil
}

// Log writes mails to the logger instead of sending them
type Log struct {
	log *log.Logger
}

func NewLog(l *log.Logger) *Log {
	return &Log{log: l}
}

func (m *Log) Send(_ context.Context, to, subject, body string) error {
	m.log.Info("mail", "to", to, "subject", subject, "size", len(body))
	return nil
}
