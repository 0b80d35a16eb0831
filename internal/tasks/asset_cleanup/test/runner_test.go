package assetcleanup_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/bionicotaku/lingo-services-course/internal/clients/mux"
	"github.com/bionicotaku/lingo-services-course/internal/models/po"
	"github.com/bionicotaku/lingo-services-course/internal/repositories"
	assetcleanup "github.com/bionicotaku/lingo-services-course/internal/tasks/asset_cleanup"

	"github.com/bionicotaku/lingo-utils/txmanager"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

type outcome struct {
	kind      string
	lockToken string
	at        time.Time
	lastErr   string
}

type fakeStore struct {
	mu        sync.Mutex
	jobs      []*po.AssetCleanupJob
	claimErr  error
	updateErr error
	claims    []claimCall
	outcomes  map[uuid.UUID]outcome
	pending   int64
	countErr  error
}

type claimCall struct {
	availableBefore time.Time
	staleBefore     time.Time
	limit           int
	lockToken       string
}

func newFakeStore(jobs ...*po.AssetCleanupJob) *fakeStore {
	return &fakeStore{jobs: jobs, outcomes: map[uuid.UUID]outcome{}}
}

func (s *fakeStore) ClaimPending(_ context.Context, availableBefore, staleBefore time.Time, limit int, lockToken string) ([]*po.AssetCleanupJob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.claims = append(s.claims, claimCall{availableBefore, staleBefore, limit, lockToken})
	if s.claimErr != nil {
		return nil, s.claimErr
	}
	jobs := s.jobs
	s.jobs = nil
	return jobs, nil
}

func (s *fakeStore) record(id uuid.UUID, o outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	s.outcomes[id] = o
	return nil
}

func (s *fakeStore) MarkCompleted(_ context.Context, _ txmanager.Session, jobID uuid.UUID, lockToken string, completedAt time.Time) error {
	return s.record(jobID, outcome{kind: "completed", lockToken: lockToken, at: completedAt})
}

func (s *fakeStore) Reschedule(_ context.Context, _ txmanager.Session, jobID uuid.UUID, lockToken string, nextAvailable time.Time, lastErr string) error {
	return s.record(jobID, outcome{kind: "rescheduled", lockToken: lockToken, at: nextAvailable, lastErr: lastErr})
}

func (s *fakeStore) Abandon(_ context.Context, _ txmanager.Session, jobID uuid.UUID, lockToken string, at time.Time, lastErr string) error {
	return s.record(jobID, outcome{kind: "abandoned", lockToken: lockToken, at: at, lastErr: lastErr})
}

func (s *fakeStore) CountPending(context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending, s.countErr
}

type fakeDeleter struct {
	mu      sync.Mutex
	results map[string]error
	calls   []string
}

func (d *fakeDeleter) DeleteAsset(_ context.Context, assetID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, assetID)
	return d.results[assetID]
}

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func job(assetID string, attempts int32) *po.AssetCleanupJob {
	return &po.AssetCleanupJob{ID: uuid.New(), AssetID: assetID, ChapterID: uuid.New(), Attempts: attempts}
}

func newRunner(t *testing.T, store *fakeStore, deleter *fakeDeleter, cfg assetcleanup.Config) *assetcleanup.Runner {
	t.Helper()
	runner, err := assetcleanup.NewRunner(assetcleanup.RunnerParams{
		Store:    store,
		Provider: deleter,
		Config:   cfg,
		Logger:   log.NewStdLogger(io.Discard),
		Now:      func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return runner
}

func TestNewRunnerRequiresDependencies(t *testing.T) {
	_, err := assetcleanup.NewRunner(assetcleanup.RunnerParams{Provider: &fakeDeleter{}})
	require.Error(t, err)
	_, err = assetcleanup.NewRunner(assetcleanup.RunnerParams{Store: newFakeStore()})
	require.Error(t, err)
}

func TestProcessOnceClaimsWithLockWindow(t *testing.T) {
	store := newFakeStore()
	runner := newRunner(t, store, &fakeDeleter{}, assetcleanup.Config{BatchSize: 7, LockTTL: time.Minute})

	n, err := runner.ProcessOnce(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
	require.Len(t, store.claims, 1)
	require.Equal(t, fixedNow, store.claims[0].availableBefore)
	require.Equal(t, fixedNow.Add(-time.Minute), store.claims[0].staleBefore)
	require.Equal(t, 7, store.claims[0].limit)
	_, err = uuid.Parse(store.claims[0].lockToken)
	require.NoError(t, err)
}

func TestProcessOnceResolvesEachJob(t *testing.T) {
	done := job("asset-ok", 0)
	gone := job("asset-gone", 2)
	retry := job("asset-retry", 1)
	dead := job("asset-dead", 4)
	store := newFakeStore(done, gone, retry, dead)
	deleter := &fakeDeleter{results: map[string]error{
		"asset-gone":  mux.ErrAssetNotFound,
		"asset-retry": mux.ErrServerError,
		"asset-dead":  mux.ErrRequestFailed,
	}}
	runner := newRunner(t, store, deleter, assetcleanup.Config{
		Workers:        2,
		MaxAttempts:    5,
		InitialBackoff: 10 * time.Second,
		MaxBackoff:     time.Hour,
	})

	n, err := runner.ProcessOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, n)
	require.ElementsMatch(t, []string{"asset-ok", "asset-gone", "asset-retry", "asset-dead"}, deleter.calls)

	token := store.claims[0].lockToken
	require.Equal(t, outcome{kind: "completed", lockToken: token, at: fixedNow}, store.outcomes[done.ID])
	require.Equal(t, "completed", store.outcomes[gone.ID].kind)

	rescheduled := store.outcomes[retry.ID]
	require.Equal(t, "rescheduled", rescheduled.kind)
	require.Equal(t, token, rescheduled.lockToken)
	require.NotEmpty(t, rescheduled.lastErr)
	// 第 2 次失败：基准 15s，默认随机因子 0.5。
	delay := rescheduled.at.Sub(fixedNow)
	require.GreaterOrEqual(t, delay, 7*time.Second)
	require.LessOrEqual(t, delay, 23*time.Second)

	abandoned := store.outcomes[dead.ID]
	require.Equal(t, "abandoned", abandoned.kind)
	require.Equal(t, fixedNow, abandoned.at)
	require.NotEmpty(t, abandoned.lastErr)
}

func TestProcessOnceBackoffIsCapped(t *testing.T) {
	retry := job("asset-retry", 30)
	store := newFakeStore(retry)
	deleter := &fakeDeleter{results: map[string]error{"asset-retry": mux.ErrServerError}}
	runner := newRunner(t, store, deleter, assetcleanup.Config{
		MaxAttempts:    100,
		InitialBackoff: time.Second,
		MaxBackoff:     time.Minute,
	})

	_, err := runner.ProcessOnce(context.Background())
	require.NoError(t, err)
	delay := store.outcomes[retry.ID].at.Sub(fixedNow)
	require.LessOrEqual(t, delay, 90*time.Second)
	require.GreaterOrEqual(t, delay, 30*time.Second)
}

func TestProcessOnceReturnsClaimError(t *testing.T) {
	store := newFakeStore()
	store.claimErr = errors.New("db down")
	runner := newRunner(t, store, &fakeDeleter{}, assetcleanup.Config{})

	_, err := runner.ProcessOnce(context.Background())
	require.EqualError(t, err, "db down")
}

func TestProcessOnceToleratesLostLock(t *testing.T) {
	store := newFakeStore(job("asset-ok", 0))
	store.updateErr = repositories.ErrCleanupLockLost
	runner := newRunner(t, store, &fakeDeleter{}, assetcleanup.Config{})

	n, err := runner.ProcessOnce(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Empty(t, store.outcomes)
}

func TestProcessOnceReportsPendingGauge(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	store := newFakeStore(job("asset-retry", 0))
	store.pending = 3
	runner, err := assetcleanup.NewRunner(assetcleanup.RunnerParams{
		Store:    store,
		Provider: &fakeDeleter{results: map[string]error{"asset-retry": mux.ErrServerError}},
		Logger:   log.NewStdLogger(io.Discard),
		Meter:    provider.Meter("lingo-services-course.asset_cleanup.test"),
		Now:      func() time.Time { return fixedNow },
	})
	require.NoError(t, err)

	_, err = runner.ProcessOnce(context.Background())
	require.NoError(t, err)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	pending, ok := findGauge(rm, "course_asset_cleanup_pending_jobs")
	require.True(t, ok)
	require.Equal(t, int64(3), pending)

	// 统计失败不影响本轮结果。
	store.countErr = errors.New("db down")
	n, err := runner.ProcessOnce(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
}

func findGauge(rm metricdata.ResourceMetrics, name string) (int64, bool) {
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != name {
				continue
			}
			gauge, ok := m.Data.(metricdata.Gauge[int64])
			if !ok || len(gauge.DataPoints) == 0 {
				return 0, false
			}
			return gauge.DataPoints[0].Value, true
		}
	}
	return 0, false
}

func TestRunStopsOnContextCancel(t *testing.T) {
	store := newFakeStore(job("asset-ok", 0))
	deleter := &fakeDeleter{}
	runner := newRunner(t, store, deleter, assetcleanup.Config{TickInterval: time.Hour})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- runner.Run(ctx) }()

	require.Eventually(t, func() bool {
		deleter.mu.Lock()
		defer deleter.mu.Unlock()
		return len(deleter.calls) == 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-errCh:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestNilRunnerRunIsNoop(t *testing.T) {
	var runner *assetcleanup.Runner
	require.NoError(t, runner.Run(context.Background()))
}
