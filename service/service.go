package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"nftmarket/common/utils"
	"nftmarket/log"
)

// Pinner stores files and metadata on content addressed storage
type Pinner interface {
	// PinFile returns a gateway url of the pinned file
	PinFile(ctx context.Context, name string, data []byte) (string, error)
	// PinJSON returns the uri of the pinned document
	PinJSON(ctx context.Context, name string, v interface{}) (string, error)
}

// ImageStore hosts user avatars
type ImageStore interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
	Delete(ctx context.Context, url string) error
}

// ContractVerifier checks that a collection address is a deployed NFT contract
type ContractVerifier interface {
	IsNFTContract(ctx context.Context, address string) (bool, error)
}

// Mailer delivers notification emails
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Options collaborators and settings of a Service, zero values get defaults
type Options struct {
	Log           *log.Logger
	Pinner        Pinner
	Images        ImageStore
	Nonces        NonceStore
	Contracts     ContractVerifier //nil skips the on-chain check
	Tokens        *TokenIssuer
	DefaultAvatar string
	NonceTTL      time.Duration
	BidTTL        time.Duration
	Now           func() time.Time
}

// Service marketplace operations over one shared database handle
type Service struct {
	db            *gorm.DB
	log           *log.Logger
	validate      *validator.Validate
	pinner        Pinner
	images        ImageStore
	nonces        NonceStore
	contracts     ContractVerifier
	tokens        *TokenIssuer
	defaultAvatar string
	nonceTTL      time.Duration
	bidTTL        time.Duration
	now           func() time.Time
}

func New(db *gorm.DB, o Options) *Service {
	s := &Service{
		db:            db,
		log:           o.Log,
		validate:      newValidator(),
		pinner:        o.Pinner,
		images:        o.Images,
		nonces:        o.Nonces,
		contracts:     o.Contracts,
		tokens:        o.Tokens,
		defaultAvatar: o.DefaultAvatar,
		nonceTTL:      o.NonceTTL,
		bidTTL:        o.BidTTL,
		now:           o.Now,
	}
	if s.log == nil {
		s.log = log.Default()
	}
	if s.nonces == nil {
		s.nonces = NewDBNonceStore(db)
	}
	if s.nonceTTL <= 0 {
		s.nonceTTL = 10 * time.Minute
	}
	if s.bidTTL <= 0 {
		s.bidTTL = 30 * 24 * time.Hour
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// DB the storage handle, for health checks
func (s *Service) DB() *gorm.DB {
	return s.db
}

func (s *Service) conn(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

// forUpdate row locks the selected rows on dialects that have SELECT ... FOR UPDATE
func forUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// wallets are stored lowercase so equality checks are plain string compares
func normWallet(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func isWallet(s string) bool {
	return utils.IsAddress(strings.TrimSpace(s))
}
