package fleet

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracker_UpdateAndSnapshot(t *testing.T) {
	tr := NewMRReadinessTracker()

	_, ok := tr.Snapshot(1, 87)
	assert.False(t, ok)

	r := tr.Update(1, 87, func(r *Readiness) { r.SecurityPassed = true })
	assert.True(t, r.SecurityPassed)
	assert.False(t, r.TestsPassed)
	assert.False(t, r.OpenedAt.IsZero())

	snap, ok := tr.Snapshot(1, 87)
	require.True(t, ok)
	assert.True(t, snap.SecurityPassed)
	assert.Equal(t, 1, tr.Len())

	// a different merge request is an independent record
	other := tr.Update(1, 88, func(r *Readiness) { r.TestsPassed = true })
	assert.False(t, other.SecurityPassed)
	assert.Equal(t, 2, tr.Len())
}

func TestTracker_ClaimRequiresAllSignals(t *testing.T) {
	tr := NewMRReadinessTracker()

	assert.False(t, tr.TryClaimAutoMerge(1, 87), "unknown entry cannot be claimed")

	tr.Update(1, 87, func(r *Readiness) {
		r.SecurityPassed = true
		r.TestsPassed = true
	})
	assert.False(t, tr.TryClaimAutoMerge(1, 87), "eligibility signal still missing")

	tr.Update(1, 87, func(r *Readiness) { r.AutoMergeEligible = true })
	assert.True(t, tr.TryClaimAutoMerge(1, 87))
	assert.False(t, tr.TryClaimAutoMerge(1, 87), "claim is exclusive")
}

func TestTracker_SignalOrderIrrelevant(t *testing.T) {
	orders := []struct {
		name  string
		apply []func(*Readiness)
	}{
		{"security then tests", []func(*Readiness){
			func(r *Readiness) { r.AutoMergeEligible = true },
			func(r *Readiness) { r.SecurityPassed = true },
			func(r *Readiness) { r.TestsPassed = true },
		}},
		{"tests then security", []func(*Readiness){
			func(r *Readiness) { r.AutoMergeEligible = true },
			func(r *Readiness) { r.TestsPassed = true },
			func(r *Readiness) { r.SecurityPassed = true },
		}},
	}

	for _, tc := range orders {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewMRReadinessTracker()
			for i, apply := range tc.apply[:len(tc.apply)-1] {
				tr.Update(1, 87, apply)
				assert.False(t, tr.TryClaimAutoMerge(1, 87), "claim after signal %d", i+1)
			}
			tr.Update(1, 87, tc.apply[len(tc.apply)-1])
			assert.True(t, tr.TryClaimAutoMerge(1, 87))
		})
	}
}

func TestTracker_ReleaseAllowsRetry(t *testing.T) {
	tr := NewMRReadinessTracker()
	tr.Update(1, 87, func(r *Readiness) {
		r.SecurityPassed = true
		r.TestsPassed = true
		r.AutoMergeEligible = true
	})

	require.True(t, tr.TryClaimAutoMerge(1, 87))
	tr.Release(1, 87)
	assert.True(t, tr.TryClaimAutoMerge(1, 87), "released claim must be retryable")
}

func TestTracker_DeleteRemovesRecord(t *testing.T) {
	tr := NewMRReadinessTracker()
	tr.Update(1, 87, func(r *Readiness) {
		r.SecurityPassed = true
		r.TestsPassed = true
		r.AutoMergeEligible = true
	})

	require.True(t, tr.TryClaimAutoMerge(1, 87))
	tr.Delete(1, 87)

	assert.Zero(t, tr.Len())
	_, ok := tr.Snapshot(1, 87)
	assert.False(t, ok)
	assert.False(t, tr.TryClaimAutoMerge(1, 87))

	// deleting again is a no-op
	tr.Delete(1, 87)
}

func TestTracker_ConcurrentClaimExactlyOnce(t *testing.T) {
	tr := NewMRReadinessTracker()
	tr.Update(5, 12, func(r *Readiness) {
		r.SecurityPassed = true
		r.TestsPassed = true
		r.AutoMergeEligible = true
	})

	var wg sync.WaitGroup
	var mu sync.Mutex
	claims := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if tr.TryClaimAutoMerge(5, 12) {
				mu.Lock()
				claims++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, claims, "exactly one concurrent claimant may win")
}
