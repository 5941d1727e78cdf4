package api

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"nftmarket/common/types"
	"nftmarket/common/utils"
	"nftmarket/log"
	"nftmarket/middleware"
	"nftmarket/model"
	"nftmarket/service"
)

var dbSeq int64

type stubPinner struct{}

func (stubPinner) PinFile(_ context.Context, name string, _ []byte) (string, error) {
	return "https://ipfs.test/ipfs/file/" + name, nil
}

func (stubPinner) PinJSON(_ context.Context, name string, _ interface{}) (string, error) {
	return "ipfs://meta/" + name, nil
}

type stubImages struct{}

func (stubImages) Upload(_ context.Context, name string, _ []byte) (string, error) {
	return "https://img.test/" + name, nil
}

func (stubImages) Delete(context.Context, string) error { return nil }

type testEnv struct {
	svc    *service.Service
	tokens *service.TokenIssuer
	engine *gin.Engine
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:api%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, model.Migrate(db))

	tokens := service.NewTokenIssuer("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	svc := service.New(db, service.Options{
		Log:           log.Nop(),
		Pinner:        stubPinner{},
		Images:        stubImages{},
		Tokens:        tokens,
		DefaultAvatar: "https://img.test/default.png",
	})
	a := &API{Svc: svc, Log: log.Nop(), Auth: middleware.Auth(svc)}
	r := gin.New()
	for _, register := range []func(gin.IRouter, *API){Auth, User, Friend, NFT, Market, Bid, Trade, Notification} {
		register(r, a)
	}
	return &testEnv{svc: svc, tokens: tokens, engine: r}
}

func (e *testEnv) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

func (e *testEnv) json(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return e.do(req, token)
}

// user stores a user and returns its wallet and an access token
func (e *testEnv) user(t *testing.T, balance string) (string, string) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	wallet := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())
	u := &model.User{WalletAddress: wallet, Email: wallet[2:10] + "@example.com", Nickname: "u" + wallet[2:8], Balance: types.MustAmount(balance)}
	require.NoError(t, e.svc.DB().Create(u).Error)
	token, err := e.tokens.Access(wallet)
	require.NoError(t, err)
	return wallet, token
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}

func TestFailStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{service.NotFound("User not found"), http.StatusBadRequest, "User not found"},
		{service.Business("Bid is too low"), http.StatusBadRequest, "Bid is too low"},
		{service.Unauthorized("Invalid signature"), http.StatusUnauthorized, "Invalid signature"},
		{service.Forbidden("Not yours"), http.StatusForbidden, "Not yours"},
		{errors.Wrap(errors.New("connection reset"), "load user"), http.StatusInternalServerError, "Internal server error"},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		fail(c, tc.err)
		assert.Equal(t, tc.code, w.Code)
		var res service.ErrRes
		decode(t, w, &res)
		assert.Equal(t, tc.msg, res.ErrStr)
	}
}

func TestCreateUserMultipart(t *testing.T) {
	e := newEnv(t)
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	wallet := crypto.PubkeyToAddress(key.PublicKey).Hex()

	form := func(nickname string) *http.Request {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		_ = mw.WriteField("email", "fresh@example.com")
		_ = mw.WriteField("wallet_address", wallet)
		_ = mw.WriteField("nickname", nickname)
		fw, _ := mw.CreateFormFile("avatar", "face.png")
		_, _ = fw.Write([]byte("png"))
		_ = mw.Close()
		req := httptest.NewRequest(http.MethodPost, "/user", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		return req
	}

	w := e.do(form("ab"), "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	var res service.ErrRes
	decode(t, w, &res)
	require.Len(t, res.Fields, 1)
	assert.Equal(t, "nickname", res.Fields[0].Field)

	w = e.do(form("fresh"), "")
	require.Equal(t, http.StatusCreated, w.Code)
	var u model.User
	decode(t, w, &u)
	assert.Equal(t, strings.ToLower(wallet), u.WalletAddress)
	assert.Equal(t, "https://img.test/face.png", u.Avatar)

	w = e.do(httptest.NewRequest(http.MethodGet, "/user/"+wallet, nil), "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = e.do(httptest.NewRequest(http.MethodGet, "/user/0x0000000000000000000000000000000000000001", nil), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRoutes(t *testing.T) {
	e := newEnv(t)
	alice, aliceToken := e.user(t, "0")
	bob, _ := e.user(t, "0")

	w := e.json(http.MethodGet, "/notification", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = e.json(http.MethodGet, "/notification", nil, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.json(http.MethodGet, "/notification", nil, aliceToken)
	require.Equal(t, http.StatusOK, w.Code)
	var page service.Page[model.Notification]
	decode(t, w, &page)
	assert.Zero(t, page.Total)

	off := false
	w = e.json(http.MethodPut, "/user/"+bob+"/notifications", service.PreferencesInput{Outbid: &off}, aliceToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = e.json(http.MethodPut, "/user/"+alice+"/notifications", service.PreferencesInput{Outbid: &off}, aliceToken)
	require.Equal(t, http.StatusOK, w.Code)
	var u model.User
	decode(t, w, &u)
	assert.False(t, u.Outbid)
}

func TestSignInSetsRefreshCookie(t *testing.T) {
	e := newEnv(t)
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	wallet := strings.ToLower(crypto.PubkeyToAddress(key.PublicKey).Hex())
	require.NoError(t, e.svc.DB().Create(&model.User{WalletAddress: wallet, Email: "s@example.com", Nickname: "signer"}).Error)

	w := e.json(http.MethodGet, "/auth/nonce?address="+wallet, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var n struct {
		Nonce string `json:"nonce"`
	}
	decode(t, w, &n)
	sig, err := crypto.Sign(utils.HashPersonalMessage(n.Nonce), key)
	require.NoError(t, err)
	sig[64] += 27

	w = e.json(http.MethodPost, "/auth/signin", service.SignInInput{Address: wallet, Signature: "0x" + hex.EncodeToString(sig)}, "")
	require.Equal(t, http.StatusOK, w.Code)
	var cookie *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == refreshCookie {
			cookie = ck
		}
	}
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.Positive(t, cookie.MaxAge)
	var tokens struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, w, &tokens)
	assert.NotEmpty(t, tokens.AccessToken)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(cookie)
	w = e.do(req, "")
	require.Equal(t, http.StatusOK, w.Code)

	// the rotated cookie replaced the one just used
	req = httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(cookie)
	w = e.do(req, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListAndBuyOverHTTP(t *testing.T) {
	e := newEnv(t)
	seller, sellerToken := e.user(t, "0")
	buyer, buyerToken := e.user(t, "100")
	c := &model.Collection{
		ContractAddress: "0x5b38da6a701c568545dcfcb03fcb875f56beddc4",
		Name:            "Harbor",
		Symbol:          "HBR",
		Blockchain:      "ETHEREUM",
		CreatorWallet:   seller,
	}
	require.NoError(t, e.svc.DB().Create(c).Error)
	nft := &model.NFT{Name: "Dock", CollectionID: c.ID, Quantity: 1, Price: types.MustAmount("5"), OwnerWallet: seller, CreatorWallet: seller}
	require.NoError(t, e.svc.DB().Create(nft).Error)

	w := e.json(http.MethodPost, "/market/listing", map[string]interface{}{
		"nft_id":        nft.ID,
		"price":         30,
		"contract_addr": c.ContractAddress,
	}, buyerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = e.json(http.MethodPost, "/market/listing", map[string]interface{}{
		"nft_id":        nft.ID,
		"price":         "30",
		"contract_addr": c.ContractAddress,
	}, sellerToken)
	require.Equal(t, http.StatusCreated, w.Code)
	var l model.Listing
	decode(t, w, &l)

	w = e.json(http.MethodGet, "/market/listing?walletAddress="+seller+"&minPrice=10", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var listings service.Page[service.ListingView]
	decode(t, w, &listings)
	assert.EqualValues(t, 1, listings.Total)

	w = e.json(http.MethodPost, "/market/listing/buy", service.BuyInput{ListingID: l.ID}, buyerToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.json(http.MethodGet, "/market/transactions?walletAddress="+buyer+"&role=buyer", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var txs service.Page[service.TransactionView]
	decode(t, w, &txs)
	assert.EqualValues(t, 1, txs.Total)

	w = e.json(http.MethodGet, "/market/listing/"+l.ID, nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFriendRoutesActOnCaller(t *testing.T) {
	e := newEnv(t)
	alice, aliceToken := e.user(t, "0")
	bob, bobToken := e.user(t, "0")

	w := e.json(http.MethodPost, "/user/friend/request", map[string]string{"sender_wallet": bob, "receiver_wallet": alice}, aliceToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = e.json(http.MethodPost, "/user/friend/request", map[string]string{"sender_wallet": alice, "receiver_wallet": bob}, aliceToken)
	require.Equal(t, http.StatusCreated, w.Code)

	w = e.json(http.MethodGet, "/user/friend/requests?walletAddress="+bob+"&type=received", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var reqs service.Page[model.FriendRequest]
	decode(t, w, &reqs)
	assert.EqualValues(t, 1, reqs.Total)

	w = e.json(http.MethodPut, "/user/friend/request", map[string]interface{}{
		"sender_wallet": alice, "receiver_wallet": bob, "accepted": true,
	}, bobToken)
	require.Equal(t, http.StatusOK, w.Code)

	w = e.json(http.MethodDelete, "/user/friend", map[string]string{"user1_wallet": bob, "user2_wallet": alice}, aliceToken)
	assert.Equal(t, http.StatusOK, w.Code)
	w = e.json(http.MethodDelete, "/user/friend", map[string]string{"user1_wallet": bob, "user2_wallet": alice}, aliceToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
