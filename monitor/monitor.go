package monitor

import (
	"context"
	"sync"
	"time"

	"nftmarket/log"
	"nftmarket/metrics"
	"nftmarket/service"
)

// Job one periodic task, Run returns the number of records changed
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) (int64, error)
}

// Scheduler runs every job on its own ticker until the context ends
type Scheduler struct {
	log  *log.Logger
	jobs []Job
}

type Config struct {
	BidInterval   time.Duration
	DropInterval  time.Duration
	EmailInterval time.Duration
	PurgeInterval time.Duration
	MailBatch     int
}

func New(l *log.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{log: l, jobs: jobs}
}

// MarketJobs the background work of the market: bid expiry, scheduled drops,
// email delivery and refresh token cleanup
func MarketJobs(svc *service.Service, mailer service.Mailer, c Config) []Job {
	return []Job{
		{Name: "expire_bids", Interval: c.BidInterval, Run: svc.ExpireBids},
		{Name: "activate_drops", Interval: c.DropInterval, Run: svc.ActivateDrops},
		{Name: "deliver_emails", Interval: c.EmailInterval, Run: func(ctx context.Context) (int64, error) {
			sent, failed, err := svc.DeliverEmails(ctx, mailer, c.MailBatch)
			return int64(sent + failed), err
		}},
		{Name: "purge_refresh_tokens", Interval: c.PurgeInterval, Run: svc.PurgeRefreshTokens},
	}
}

// Run blocks until ctx is done and every job loop has returned
func (s *Scheduler) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, job := range s.jobs {
		if job.Interval <= 0 {
			s.log.Warn("job disabled", "job", job.Name)
			continue
		}
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.loop(ctx, job)
		}(job)
	}
	wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	s.log.Info("job started", "job", job.Name, "interval", job.Interval.String())
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()
	for {
		s.tick(ctx, job)
		select {
		case <-ctx.Done():
			s.log.Info("job stopped", "job", job.Name)
			return
		case <-ticker.C:
		}
	}
}

// tick one run, a panic is logged and the loop survives
func (s *Scheduler) tick(ctx context.Context, job Job) {
	defer func() {
		if r := recover(); r != nil {
			metrics.JobRuns.WithLabelValues(job.Name, "panic").Inc()
			s.log.Error("job panicked", "job", job.Name, "panic", r)
		}
	}()
	if ctx.Err() != nil {
		return
	}
	start := time.Now()
	n, err := job.Run(ctx)
	if err != nil {
		metrics.JobRuns.WithLabelValues(job.Name, "error").Inc()
		s.log.Error("job failed", "job", job.Name, "err", err)
		return
	}
	metrics.JobRuns.WithLabelValues(job.Name, "ok").Inc()
	metrics.JobAffected.WithLabelValues(job.Name).Add(float64(n))
	if n > 0 {
		s.log.Info("job done", "job", job.Name, "affected", n, "elapsed", time.Since(start).String())
	}
}
