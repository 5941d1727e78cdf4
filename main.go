package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"nftmarket/conf"
	"nftmarket/external/cloud"
	"nftmarket/external/ipfs"
	"nftmarket/external/mail"
	"nftmarket/log"
	"nftmarket/middleware"
	"nftmarket/monitor"
	"nftmarket/node"
	"nftmarket/router"
	"nftmarket/router/api"
	"nftmarket/service"
)

// @title                      NFT marketplace API
// @version                    1.0
// @description                Wallet sign-in, collections, NFTs, listings, bids, trades between friends and notifications
// @securityDefinitions.apikey Bearer
// @in                         header
// @name                       Authorization
func main() {
	if err := run(); err != nil {
		log.Error("server stopped", "err", err)
		_ = log.Default().Sync()
		os.Exit(1)
	}
}

func run() error {
	c, err := conf.Load()
	if err != nil {
		return err
	}
	l, err := log.Init(log.Config{Level: c.Log.Level, Format: c.Log.Format})
	if err != nil {
		return err
	}
	defer l.Sync()

	db, err := service.Open(c)
	if err != nil {
		return err
	}
	defer service.Close(db)

	opts := service.Options{
		Log:           l.With("component", "service"),
		Tokens:        service.NewTokenIssuer(c.Auth.AccessSecret, c.Auth.RefreshSecret, c.Auth.AccessTTL, c.Auth.RefreshTTL),
		DefaultAvatar: c.Cloud.DefaultImage,
		NonceTTL:      c.Auth.NonceTTL,
		BidTTL:        c.Jobs.BidTTL,
	}
	if c.RedisURL != "" {
		nonces, err := service.NewRedisNonceStore(c.RedisURL)
		if err != nil {
			return err
		}
		defer nonces.Close()
		opts.Nonces = nonces
	}
	if c.Chain.RPCURL != "" {
		chain, err := node.Dial(c.Chain.RPCURL)
		if err != nil {
			return err
		}
		defer chain.Close()
		opts.Contracts = chain
	}
	if c.Pinata.JWT != "" {
		opts.Pinner = ipfs.NewPinata(c.Pinata.APIURL, c.Pinata.JWT, c.Pinata.Gateway)
	} else {
		l.Warn("PINATA_JWT is empty, pinned files stay in memory")
		opts.Pinner = ipfs.NewMemory(c.Pinata.Gateway)
	}
	if c.Cloud.Name != "" {
		images, err := cloud.NewCloudinary(c.Cloud.Name, c.Cloud.APIKey, c.Cloud.APISecret, c.Cloud.APIURL)
		if err != nil {
			return err
		}
		opts.Images = images
	} else {
		l.Warn("CLOUD_NAME is empty, avatars are not uploaded")
		opts.Images = cloud.NewStatic("https://example.com/uploads/")
	}
	var mailer service.Mailer = mail.NewLog(l.With("component", "mail"))
	if c.Mail.Host != "" {
		smtp, err := mail.NewSMTP(c.Mail.Host, c.Mail.Port, c.Mail.User, c.Mail.Password, c.Mail.From, c.Mail.Rate)
		if err != nil {
			return err
		}
		mailer = smtp
	}
	svc := service.New(db, opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	jobs := monitor.New(l.With("component", "monitor"), monitor.MarketJobs(svc, mailer, monitor.Config{
		BidInterval:   c.Jobs.BidInterval,
		DropInterval:  c.Jobs.DropInterval,
		EmailInterval: c.Jobs.EmailInterval,
		PurgeInterval: c.Jobs.PurgeInterval,
		MailBatch:     c.Mail.Batch,
	})...)
	jobsDone := make(chan struct{})
	go func() {
		jobs.Run(ctx)
		close(jobsDone)
	}()

	gin.SetMode(gin.ReleaseMode)
	a := &api.API{
		Svc:          svc,
		Log:          l.With("component", "http"),
		Auth:         middleware.Auth(svc),
		SecureCookie: c.Auth.SecureCookie,
	}
	srv := &http.Server{
		Addr:              c.ServerAddr,
		Handler:           router.New(a, c.CorsOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		l.Info("server listening", "addr", c.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		stop()
	case <-ctx.Done():
		l.Info("shutting down")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.ShutdownTimeout)
	defer cancel()
	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	<-jobsDone
	return err
}
