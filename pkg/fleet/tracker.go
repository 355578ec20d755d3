package fleet

import (
	"sync"
	"time"
)

// Readiness collects the independent signals that together license an
// auto-merge attempt for one merge request.
type Readiness struct {
	SecurityPassed    bool      `json:"security_passed"`
	TestsPassed       bool      `json:"tests_passed"`
	AutoMergeEligible bool      `json:"auto_merge_eligible"`
	OpenedAt          time.Time `json:"opened_at"`
}

func (r Readiness) allSignals() bool {
	return r.SecurityPassed && r.TestsPassed && r.AutoMergeEligible
}

type mrKey struct {
	project int
	mrIID   int
}

type mrEntry struct {
	mu      sync.Mutex
	r       Readiness
	claimed bool
}

// MRReadinessTracker is the only mutable state shared across agents. Entries
// are keyed by (project, merge request) and updated under an entry-level
// lock, so security and test signals arriving concurrently cannot race each
// other into skipping or double-firing an auto-merge.
type MRReadinessTracker struct {
	mu      sync.Mutex
	entries map[mrKey]*mrEntry
}

// NewMRReadinessTracker creates an empty tracker.
func NewMRReadinessTracker() *MRReadinessTracker {
	return &MRReadinessTracker{entries: make(map[mrKey]*mrEntry)}
}

func (t *MRReadinessTracker) entry(project, mrIID int) *mrEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	k := mrKey{project: project, mrIID: mrIID}
	e, ok := t.entries[k]
	if !ok {
		e = &mrEntry{r: Readiness{OpenedAt: time.Now()}}
		t.entries[k] = e
	}
	return e
}

// Update creates the entry if absent, applies fn under the entry lock, and
// returns the resulting snapshot.
func (t *MRReadinessTracker) Update(project, mrIID int, fn func(*Readiness)) Readiness {
	e := t.entry(project, mrIID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.r)
	return e.r
}

// Snapshot returns the current readiness record, if one exists.
func (t *MRReadinessTracker) Snapshot(project, mrIID int) (Readiness, bool) {
	t.mu.Lock()
	e, ok := t.entries[mrKey{project: project, mrIID: mrIID}]
	t.mu.Unlock()
	if !ok {
		return Readiness{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.r, true
}

// TryClaimAutoMerge atomically checks the three readiness signals and, when
// all are set and no other handler has claimed the merge, marks the entry
// claimed. The caller performs the merge outside the lock and must call
// either Delete (success) or Release (failure, so a later event can retry).
func (t *MRReadinessTracker) TryClaimAutoMerge(project, mrIID int) bool {
	t.mu.Lock()
	e, ok := t.entries[mrKey{project: project, mrIID: mrIID}]
	t.mu.Unlock()
	if !ok {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.claimed || !e.r.allSignals() {
		return false
	}
	e.claimed = true
	return true
}

// Release undoes a claim after a failed merge attempt, leaving the record
// intact for retry on later events.
func (t *MRReadinessTracker) Release(project, mrIID int) {
	t.mu.Lock()
	e, ok := t.entries[mrKey{project: project, mrIID: mrIID}]
	t.mu.Unlock()
	if !ok {
		return
	}
	e.mu.Lock()
	e.claimed = false
	e.mu.Unlock()
}

// Delete removes the record after a successful auto-merge.
func (t *MRReadinessTracker) Delete(project, mrIID int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, mrKey{project: project, mrIID: mrIID})
}

// Len reports the number of tracked merge requests.
func (t *MRReadinessTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
