package service

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"nftmarket/common/utils"
	"nftmarket/model"
)

func personalSign(t *testing.T, key *ecdsa.PrivateKey, msg string) string {
	t.Helper()
	sig, err := crypto.Sign(utils.HashPersonalMessage(msg), key)
	require.NoError(t, err)
	sig[64] += 27
	return "0x" + hex.EncodeToString(sig)
}

func signedUpUser(t *testing.T, s *Service) (*ecdsa.PrivateKey, string) {
	t.Helper()
	key, wallet := newWallet(t)
	require.NoError(t, s.DB().Create(&model.User{WalletAddress: wallet, Email: "me@example.com", Nickname: "signer"}).Error)
	return key, wallet
}

func TestSignInWithNonce(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	key, wallet := signedUpUser(t, s)

	nonce, err := s.Nonce(ctx, wallet)
	require.NoError(t, err)
	assert.Len(t, nonce, 32)

	tokens, err := s.SignIn(ctx, SignInInput{Address: wallet, Signature: personalSign(t, key, nonce)})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, wallet, tokens.User.WalletAddress)

	user, err := s.Authenticate(ctx, tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, wallet, user.WalletAddress)

	// the nonce is single use
	_, err = s.SignIn(ctx, SignInInput{Address: wallet, Signature: personalSign(t, key, nonce)})
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestSignInRejectsOtherSigner(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	_, wallet := signedUpUser(t, s)
	intruder, _ := newWallet(t)

	nonce, err := s.Nonce(ctx, wallet)
	require.NoError(t, err)
	_, err = s.SignIn(ctx, SignInInput{Address: wallet, Signature: personalSign(t, intruder, nonce)})
	assert.EqualError(t, err, "Invalid signature")

	_, err = s.Nonce(ctx, "not-a-wallet")
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestRefreshRotation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	key, wallet := signedUpUser(t, s)
	nonce, err := s.Nonce(ctx, wallet)
	require.NoError(t, err)
	first, err := s.SignIn(ctx, SignInInput{Address: wallet, Signature: personalSign(t, key, nonce)})
	require.NoError(t, err)

	second, err := s.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = s.Refresh(ctx, first.RefreshToken)
	assert.EqualError(t, err, "Refresh token revoked")

	require.NoError(t, s.Logout(ctx, second.RefreshToken))
	_, err = s.Refresh(ctx, second.RefreshToken)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	_, err = s.Refresh(ctx, "garbage")
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestTokenIssuer(t *testing.T) {
	issuer := NewTokenIssuer("a", "r", time.Minute, time.Hour)
	token, err := issuer.Access("0xabc")
	require.NoError(t, err)
	wallet, err := issuer.VerifyAccess(token)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", wallet)

	// a refresh token is not an access token
	refresh, _, err := issuer.sign(issuer.refreshSecret, "0xabc", "id", time.Hour)
	require.NoError(t, err)
	_, err = issuer.VerifyAccess(refresh)
	assert.True(t, errors.Is(err, ErrUnauthorized))

	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	stale, err := issuer.Access("0xabc")
	require.NoError(t, err)
	issuer.now = time.Now
	_, err = issuer.VerifyAccess(stale)
	assert.True(t, errors.Is(err, ErrUnauthorized))
}

func TestPurgeRefreshTokens(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	_, wallet := signedUpUser(t, s)
	require.NoError(t, s.DB().Create(&model.RefreshToken{UserWallet: wallet, TokenHash: "old", ExpiresAt: time.Now().Add(-time.Hour)}).Error)
	require.NoError(t, s.DB().Create(&model.RefreshToken{UserWallet: wallet, TokenHash: "new", ExpiresAt: time.Now().Add(time.Hour)}).Error)

	n, err := s.PurgeRefreshTokens(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
