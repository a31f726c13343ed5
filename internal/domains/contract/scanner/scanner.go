// Package scanner expires active contracts whose end date has passed.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"hotelhub/config"
	"hotelhub/infras/metrics"
	"hotelhub/infras/otel"
	"hotelhub/internal/domains/contract/model"
	"hotelhub/internal/domains/contract/repository"
	"hotelhub/internal/domains/contract/service"
	"hotelhub/shared/cache"
	"hotelhub/shared/constant"
	"hotelhub/shared/failure"
	"hotelhub/shared/logger"
	"hotelhub/shared/timezone"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const defaultMaxBatches = 50

const (
	OutcomeOK     = "ok"
	OutcomeLocked = "locked"
	OutcomeError  = "error"
)

// Result summarises one sweep.
type Result struct {
	Scanned int `json:"scanned"`
	Expired int `json:"expired"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

type Scanner struct {
	contracts  repository.Contract
	lifecycle  service.Contract
	locker     cache.Locker
	clock      timezone.Clock
	otel       otel.Otel
	limiter    *rate.Limiter
	interval   time.Duration
	lockTTL    time.Duration
	batchSize  int
	maxBatches int
	log        zerolog.Logger
}

func New(
	contracts repository.Contract,
	lifecycle service.Contract,
	locker cache.Locker,
	clock timezone.Clock,
	cfg *config.Config,
	otel otel.Otel,
) *Scanner {
	perSecond := cfg.Scanner.WritesPerSecond
	if perSecond <= 0 {
		perSecond = 1
	}

	maxBatches := cfg.Scanner.MaxBatchesPerRun
	if maxBatches <= 0 {
		maxBatches = defaultMaxBatches
	}

	return &Scanner{
		contracts:  contracts,
		lifecycle:  lifecycle,
		locker:     locker,
		clock:      clock,
		otel:       otel,
		limiter:    rate.NewLimiter(rate.Limit(perSecond), 1),
		interval:   time.Duration(max(cfg.Scanner.IntervalSeconds, 1)) * time.Second,
		lockTTL:    time.Duration(max(cfg.Scanner.LockTTLSeconds, 1)) * time.Second,
		batchSize:  max(cfg.Scanner.BatchSize, 1),
		maxBatches: maxBatches,
		log:        logger.Component("expiry-scanner"),
	}
}

// RunOnce performs a single sweep. It returns an empty result when another replica holds the lock.
// Batches are listed until one comes back short or maxBatches is reached. Rows that failed earlier
// in the sweep are listed again first; each listing is widened by the failure count and skips them.
func (s *Scanner) RunOnce(ctx context.Context) (res Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelWorkerScopeName, constant.OtelWorkerScopeName+".expiry.RunOnce")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	token, acquired, err := s.locker.AcquireLock(ctx, constant.CacheKeyScannerLock, s.lockTTL)
	if err != nil {
		metrics.ObserveScan(OutcomeError, 0, 0, 0)

		return res, fmt.Errorf("failed to acquire scanner lock: %w", err)
	}

	if !acquired {
		s.log.Info().Msg("expiry sweep skipped, another replica holds the lock")
		metrics.ObserveScan(OutcomeLocked, 0, 0, 0)

		return res, nil
	}

	defer func() {
		if err := s.locker.ReleaseLock(context.WithoutCancel(ctx), constant.CacheKeyScannerLock, token); err != nil {
			s.log.Warn().Err(err).Msg("failed to release scanner lock")
		}
	}()

	today := timezone.Today(s.clock)

	attempted := make(map[string]struct{})

	for batch := 0; batch < s.maxBatches; batch++ {
		limit := s.batchSize + res.Failed

		contracts, listErr := s.contracts.ListExpirable(ctx, today, limit)
		if listErr != nil {
			s.log.Error().Err(listErr).Msg("failed to list expirable contracts")
			metrics.ObserveScan(OutcomeError, res.Expired, res.Skipped, res.Failed)

			return res, fmt.Errorf("failed to list expirable contracts: %w", listErr)
		}

		fresh := 0

		for _, contract := range contracts {
			if _, seen := attempted[contract.ID]; seen {
				continue
			}

			attempted[contract.ID] = struct{}{}
			fresh++

			if err = s.limiter.Wait(ctx); err != nil {
				metrics.ObserveScan(OutcomeError, res.Expired, res.Skipped, res.Failed)

				return res, fmt.Errorf("expiry sweep interrupted: %w", err)
			}

			s.expire(ctx, contract, &res)
		}

		if len(contracts) < limit || fresh == 0 {
			break
		}
	}

	scope.SetAttributes(map[string]any{
		"scanned": res.Scanned,
		"expired": res.Expired,
		"skipped": res.Skipped,
		"failed":  res.Failed,
	})

	metrics.ObserveScan(OutcomeOK, res.Expired, res.Skipped, res.Failed)

	s.log.Info().
		Str("today", today.Format(constant.CalendarDate)).
		Int("scanned", res.Scanned).
		Int("expired", res.Expired).
		Int("skipped", res.Skipped).
		Int("failed", res.Failed).
		Msg("expiry sweep finished")

	return res, nil
}

func (s *Scanner) expire(ctx context.Context, contract model.Contract, res *Result) {
	res.Scanned++

	_, err := s.lifecycle.Expire(ctx, contract)

	switch {
	case err == nil:
		res.Expired++
	case errors.Is(err, failure.ErrStaleState):
		res.Skipped++

		s.log.Info().Err(err).Str("contractID", contract.ID).Msg("contract changed before expiry, skipped")
	default:
		res.Failed++

		s.log.Error().Err(err).Str("contractID", contract.ID).Msg("failed to expire contract")
	}
}

// Run sweeps once immediately and then on every interval until ctx is cancelled.
func (s *Scanner) Run(ctx context.Context) error {
	s.log.Info().Dur("interval", s.interval).Int("batchSize", s.batchSize).Msg("expiry scanner started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
			s.log.Error().Err(err).Msg("expiry sweep failed")
		}

		select {
		case <-ctx.Done():
			s.log.Info().Msg("expiry scanner stopped")

			return nil
		case <-ticker.C:
		}
	}
}
