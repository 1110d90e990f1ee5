package services

import (
	"context"
	"fmt"
	"time"

	"github.com/holiman/uint256"
	container "github.com/thehyperflames/dicontainer-go"
	"golang.org/x/sync/errgroup"

	"github.com/hxuan190/split-engine/internal/config"
	"github.com/hxuan190/split-engine/internal/metrics"
	"github.com/hxuan190/split-engine/internal/splitter"
)

const SPLIT_SERVICE = "split-service"

// SplitService exposes the splitter to the host: metrics, logging and
// concurrent batch processing around the pure core.
type SplitService struct {
	container.BaseDIInstance
	logger *ServiceLogger
	conf   *config.SplitterConfig
}

// NewSplitService builds a service outside the DI container.
func NewSplitService(conf *config.SplitterConfig) *SplitService {
	svc := &SplitService{conf: conf}
	svc.logger = NewServiceLogger(svc)
	return svc
}

func (svc *SplitService) ID() string {
	return SPLIT_SERVICE
}

func (svc *SplitService) Configure(c container.IContainer) error {
	conf, ok := c.GetConfig(config.SPLITTER_CONFIG_KEY).(*config.SplitterConfig)
	if !ok || conf == nil {
		return fmt.Errorf("%s: missing %s", SPLIT_SERVICE, config.SPLITTER_CONFIG_KEY)
	}
	svc.conf = conf
	svc.logger = NewServiceLogger(svc)
	return nil
}

func (svc *SplitService) Start() error {
	svc.logger.Info().
		Int("batch_max_size", svc.conf.BatchMaxSize).
		Int("batch_workers", svc.conf.BatchWorkers).
		Msg("split service ready")
	return nil
}

func (svc *SplitService) Stop() error {
	return nil
}

// Config returns the active splitter configuration.
func (svc *SplitService) Config() *config.SplitterConfig {
	return svc.conf
}

// Split partitions amount 30/10/60 and checks conservation of the result.
func (svc *SplitService) Split(amount *uint256.Int) (splitter.SplitResult, error) {
	return svc.split(amount, metrics.OpSplit)
}

func (svc *SplitService) ThirtyPercent(amount *uint256.Int) splitter.PercentResult {
	svc.observe(metrics.OpThirty, splitter.DecomposesThirty(amount))
	return splitter.ThirtyPercent(amount)
}

func (svc *SplitService) TenPercent(amount *uint256.Int) splitter.PercentResult {
	metrics.Splits.WithLabelValues(metrics.OpTen).Inc()
	return splitter.TenPercent(amount)
}

// Divisibility returns whether amount is a multiple of ten and amount mod 10.
func (svc *SplitService) Divisibility(amount *uint256.Int) (bool, *uint256.Int) {
	metrics.Splits.WithLabelValues(metrics.OpDivisibility).Inc()
	return splitter.IsDivisibleByTen(amount), splitter.RemainderModTen(amount)
}

// SplitBatch splits every amount, preserving input order. Work is spread over
// BatchWorkers goroutines; the first failure or ctx cancellation aborts the batch.
func (svc *SplitService) SplitBatch(ctx context.Context, amounts []*uint256.Int) ([]splitter.SplitResult, error) {
	logger := svc.logger.Method("SplitBatch")

	if len(amounts) == 0 {
		metrics.BatchRequests.WithLabelValues("rejected").Inc()
		return nil, ErrEmptyBatch
	}
	if len(amounts) > svc.conf.BatchMaxSize {
		metrics.BatchRequests.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(amounts), svc.conf.BatchMaxSize)
	}

	start := time.Now()
	results := make([]splitter.SplitResult, len(amounts))

	workers := svc.conf.BatchWorkers
	if workers > len(amounts) {
		workers = len(amounts)
	}
	chunk := (len(amounts) + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < len(amounts); lo += chunk {
		hi := min(lo+chunk, len(amounts))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				res, err := svc.split(amounts[i], metrics.OpBatch)
				if err != nil {
					return fmt.Errorf("amount %d: %w", i, err)
				}
				results[i] = res
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		metrics.BatchRequests.WithLabelValues("error").Inc()
		logger.Warn().Err(err).Int("size", len(amounts)).Msg("batch aborted")
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.BatchRequests.WithLabelValues("ok").Inc()
	metrics.BatchSize.Observe(float64(len(amounts)))
	metrics.BatchDuration.Observe(elapsed.Seconds())
	logger.Debug().
		Int("size", len(amounts)).
		Int("workers", workers).
		Dur("elapsed", elapsed).
		Msg("batch split")

	return results, nil
}

// split takes the uint64 path whenever the amount fits in a word.
func (svc *SplitService) split(amount *uint256.Int, op string) (splitter.SplitResult, error) {
	var res splitter.SplitResult
	if amount != nil && amount.IsUint64() {
		metrics.Splits.WithLabelValues(op).Inc()
		metrics.FastPathSplits.WithLabelValues(op).Inc()
		res = splitter.SplitFast(amount.Uint64()).ToSplitResult()
	} else {
		svc.observe(op, splitter.Decomposes(amount))
		res = splitter.Split(amount)
	}

	if !res.Conserves(amount) {
		metrics.ConservationFailures.Inc()
		svc.logger.Split(op, amount).Error().
			Str("thirty", res.Thirty.Dec()).
			Str("ten", res.Ten.Dec()).
			Str("remaining", res.Remaining.Dec()).
			Msg("conservation violated")
		return splitter.SplitResult{}, ErrConservation
	}
	return res, nil
}

func (svc *SplitService) observe(op string, decomposed bool) {
	metrics.Splits.WithLabelValues(op).Inc()
	if decomposed {
		metrics.DecomposedSplits.WithLabelValues(op).Inc()
	}
}
