package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"nftmarket/common/utils"
	"nftmarket/model"
)

// TokenIssuer signs and verifies HS256 access and refresh tokens
type TokenIssuer struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

func NewTokenIssuer(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenIssuer {
	return &TokenIssuer{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

func (t *TokenIssuer) RefreshTTL() time.Duration { return t.refreshTTL }

func (t *TokenIssuer) sign(secret []byte, wallet, id string, ttl time.Duration) (string, time.Time, error) {
	now := t.now()
	expires := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   wallet,
		ID:        id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	return signed, expires, err
}

func (t *TokenIssuer) parse(secret []byte, token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return nil, Unauthorized("Invalid token")
	}
	return claims, nil
}

// Access issues an access token for the wallet
func (t *TokenIssuer) Access(wallet string) (string, error) {
	token, _, err := t.sign(t.accessSecret, wallet, uuid.NewString(), t.accessTTL)
	return token, err
}

// VerifyAccess returns the wallet of a valid access token
func (t *TokenIssuer) VerifyAccess(token string) (string, error) {
	claims, err := t.parse(t.accessSecret, token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// Tokens result of a sign-in or refresh
type Tokens struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"-"` //sent as an http-only cookie
	RefreshUntil time.Time   `json:"-"`
	User         *model.User `json:"user"`
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// issue creates an access token and a persisted refresh token inside tx
func (s *Service) issue(tx *gorm.DB, user *model.User) (*Tokens, error) {
	access, err := s.tokens.Access(user.WalletAddress)
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}
	id := uuid.NewString()
	refresh, expires, err := s.tokens.sign(s.tokens.refreshSecret, user.WalletAddress, id, s.tokens.refreshTTL)
	if err != nil {
		return nil, errors.Wrap(err, "sign refresh token")
	}
	row := &model.RefreshToken{
		Base:       model.Base{ID: id},
		UserWallet: user.WalletAddress,
		TokenHash:  hashToken(refresh),
		ExpiresAt:  expires,
	}
	if err = tx.Create(row).Error; err != nil {
		return nil, errors.Wrap(err, "save refresh token")
	}
	return &Tokens{AccessToken: access, RefreshToken: refresh, RefreshUntil: expires, User: user}, nil
}

// Nonce creates a fresh sign-in challenge for the address
func (s *Service) Nonce(ctx context.Context, address string) (string, error) {
	address, err := walletParam(address)
	if err != nil {
		return "", err
	}
	nonce, err := utils.RandomHex(16)
	if err != nil {
		return "", errors.Wrap(err, "generate nonce")
	}
	if err = s.nonces.Put(ctx, address, nonce, s.nonceTTL); err != nil {
		return "", err
	}
	return nonce, nil
}

type SignInInput struct {
	Address   string `json:"address" validate:"required,eth_addr"`
	Signature string `json:"signature" validate:"required"`
}

// SignIn verifies the personal_sign signature of the issued nonce
func (s *Service) SignIn(ctx context.Context, in SignInInput) (*Tokens, error) {
	if err := s.check(in); err != nil {
		return nil, err
	}
	address := normWallet(in.Address)
	nonce, err := s.nonces.Take(ctx, address)
	if errors.Is(err, ErrNoNonce) {
		return nil, Unauthorized("Nonce not found or expired, request a new one")
	}
	if err != nil {
		return nil, err
	}
	signer, err := utils.RecoverPersonalSigner(nonce, in.Signature)
	if err != nil || !utils.SameAddress(signer, address) {
		return nil, Unauthorized("Invalid signature")
	}
	var tokens *Tokens
	err = s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := getUser(tx, address)
		if err != nil {
			return err
		}
		tokens, err = s.issue(tx, user)
		return err
	})
	return tokens, err
}

// Refresh rotates a refresh token, the old one stops working
func (s *Service) Refresh(ctx context.Context, refresh string) (*Tokens, error) {
	if refresh == "" {
		return nil, Unauthorized("Refresh token missing")
	}
	claims, err := s.tokens.parse(s.tokens.refreshSecret, refresh)
	if err != nil {
		return nil, err
	}
	var tokens *Tokens
	err = s.conn(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND token_hash = ?", claims.ID, hashToken(refresh)).Delete(&model.RefreshToken{})
		if res.Error != nil {
			return errors.Wrap(res.Error, "revoke refresh token")
		}
		if res.RowsAffected == 0 {
			return Unauthorized("Refresh token revoked")
		}
		user, err := getUser(tx, claims.Subject)
		if errors.Is(err, ErrNotFound) {
			return Unauthorized("User not found")
		}
		if err != nil {
			return err
		}
		tokens, err = s.issue(tx, user)
		return err
	})
	return tokens, err
}

// Logout revokes the refresh token, unknown tokens are ignored
func (s *Service) Logout(ctx context.Context, refresh string) error {
	if refresh == "" {
		return nil
	}
	err := s.conn(ctx).Where("token_hash = ?", hashToken(refresh)).Delete(&model.RefreshToken{}).Error
	return errors.Wrap(err, "revoke refresh token")
}

// Authenticate resolves an access token to an existing user
func (s *Service) Authenticate(ctx context.Context, token string) (*model.User, error) {
	wallet, err := s.tokens.VerifyAccess(token)
	if err != nil {
		return nil, err
	}
	user, err := getUser(s.conn(ctx), wallet)
	if errors.Is(err, ErrNotFound) {
		return nil, Unauthorized("User not found")
	}
	return user, err
}

// PurgeRefreshTokens deletes expired refresh tokens
func (s *Service) PurgeRefreshTokens(ctx context.Context) (int64, error) {
	res := s.conn(ctx).Where("expires_at < ?", s.now()).Delete(&model.RefreshToken{})
	return res.RowsAffected, errors.Wrap(res.Error, "purge refresh tokens")
}
