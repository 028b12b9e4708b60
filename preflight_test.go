// preflight_test.go
package preflight

import (
	"context"
	"os/exec"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/arc-language/preflight/pkg/backend"
	"github.com/arc-language/preflight/pkg/core"
)

// fakeSystem resolves presence from a map and counts probe invocations.
type fakeSystem struct {
	present map[string]bool
	delay   time.Duration
	calls   atomic.Int64
}

func (f *fakeSystem) Trace(ctx context.Context, name string) (core.Verdict, []backend.ProbeResult) {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.present[name] {
		return core.VerdictPresent, []backend.ProbeResult{{Backend: backend.KindDpkg, Outcome: backend.OutcomeInstalled}}
	}
	return core.VerdictMissing, []backend.ProbeResult{{Backend: backend.KindDpkg, Outcome: backend.OutcomeNotInstalled}}
}

type fakePython struct {
	present map[string]bool
	calls   atomic.Int64
}

func (f *fakePython) Check(ctx context.Context, name string) core.Verdict {
	f.calls.Add(1)
	if f.present[name] {
		return core.VerdictPresent
	}
	return core.VerdictMissing
}

type panicSystem struct{}

func (panicSystem) Trace(ctx context.Context, name string) (core.Verdict, []backend.ProbeResult) {
	panic("checker exploded")
}

func newFakeChecker(sys *fakeSystem, py *fakePython) *Checker {
	return NewWithCheckers(nil, sys, py)
}

func TestVerifyEmptyInputs(t *testing.T) {
	sys := &fakeSystem{}
	py := &fakePython{}
	rep := newFakeChecker(sys, py).Verify(context.Background(), nil, nil)

	assert.Empty(t, rep.MissingSystem)
	assert.Empty(t, rep.MissingPython)
	assert.Empty(t, rep.InvalidSystem)
	assert.Empty(t, rep.InvalidPython)
	assert.True(t, rep.OK())
	assert.Zero(t, sys.calls.Load())
	assert.Zero(t, py.calls.Load())
}

func TestVerifyPartitionsResults(t *testing.T) {
	sys := &fakeSystem{present: map[string]bool{"git": true}}
	py := &fakePython{present: map[string]bool{"sys": true}}

	rep := newFakeChecker(sys, py).Verify(context.Background(),
		[]string{"git", "nmap"}, []string{"sys", "flask"})

	assert.Equal(t, []string{"git"}, rep.PresentSystem)
	assert.Equal(t, []string{"nmap"}, rep.MissingSystem)
	assert.Equal(t, []string{"sys"}, rep.PresentPython)
	assert.Equal(t, []string{"flask"}, rep.MissingPython)
	assert.False(t, rep.OK())
}

func TestVerifyPreservesInputOrderAndDuplicates(t *testing.T) {
	sys := &fakeSystem{present: map[string]bool{"b": true}, delay: 10 * time.Millisecond}

	rep := newFakeChecker(sys, &fakePython{}).Verify(context.Background(),
		[]string{"a", "b", "c", "a"}, nil)

	require.Len(t, rep.System, 4)
	names := []string{rep.System[0].Name, rep.System[1].Name, rep.System[2].Name, rep.System[3].Name}
	assert.Equal(t, []string{"a", "b", "c", "a"}, names, "report order is input order, not completion order")
	assert.Equal(t, []string{"a", "c", "a"}, rep.MissingSystem, "duplicates are checked and reported twice")
	assert.Equal(t, int64(4), sys.calls.Load())
}

func TestVerifyRejectsInvalidNamesWithoutProbing(t *testing.T) {
	sys := &fakeSystem{}
	py := &fakePython{}

	rep := newFakeChecker(sys, py).Verify(context.Background(),
		[]string{"bad;rm -rf /"}, []string{"also bad"})

	assert.Equal(t, []string{"bad;rm -rf /"}, rep.InvalidSystem)
	assert.Equal(t, []string{"also bad"}, rep.InvalidPython)
	assert.Empty(t, rep.MissingSystem)
	assert.Empty(t, rep.MissingPython)
	assert.Zero(t, sys.calls.Load(), "an invalid name must never reach a prober")
	assert.Zero(t, py.calls.Load())
}

func TestVerifyMixedValidAndInvalid(t *testing.T) {
	sys := &fakeSystem{present: map[string]bool{"git": true}}

	rep := newFakeChecker(sys, &fakePython{}).Verify(context.Background(),
		[]string{"", "git", "hack`command`", "valid-package"}, nil)

	assert.Equal(t, []string{"", "hack`command`"}, rep.InvalidSystem)
	assert.Equal(t, []string{"git"}, rep.PresentSystem)
	assert.Equal(t, []string{"valid-package"}, rep.MissingSystem)
	assert.Equal(t, 2, rep.Invalid())
}

func TestVerifyExposesProbeTrace(t *testing.T) {
	sys := &fakeSystem{present: map[string]bool{"git": true}}

	rep := newFakeChecker(sys, &fakePython{}).Verify(context.Background(), []string{"git"}, nil)

	require.Len(t, rep.System, 1)
	require.Len(t, rep.System[0].Probes, 1)
	assert.Equal(t, "dpkg", rep.System[0].Probes[0].Backend)
	assert.Equal(t, "installed", rep.System[0].Probes[0].Outcome)
}

func TestVerifyContainsPanics(t *testing.T) {
	checker := NewWithCheckers(nil, panicSystem{}, &fakePython{present: map[string]bool{"sys": true}})

	var rep *Report
	assert.NotPanics(t, func() {
		rep = checker.Verify(context.Background(), []string{"git", "curl"}, []string{"sys"})
	})

	assert.Equal(t, []string{"git", "curl"}, rep.MissingSystem, "a panicking check records the name as missing")
	assert.Equal(t, []string{"sys"}, rep.PresentPython, "other checks keep running")
}

func TestVerifyBoundsWallClock(t *testing.T) {
	// 16 packages at 50ms each: serial execution would need 800ms.
	// With 8 concurrent probes the batch should finish in ~2 rounds.
	cfg := core.DefaultConfig()
	cfg.MaxProbes = 8
	sys := &fakeSystem{delay: 50 * time.Millisecond}
	checker := NewWithCheckers(cfg, sys, &fakePython{})

	names := make([]string, 16)
	for i := range names {
		names[i] = "pkg" + string(rune('a'+i))
	}

	start := time.Now()
	checker.Verify(context.Background(), names, nil)
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 400*time.Millisecond, "checks must run concurrently, not serially")
}

func TestVerifyCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep := newFakeChecker(&fakeSystem{}, &fakePython{}).Verify(ctx, []string{"git"}, []string{"sys"})

	// Cancellation degrades to conservative missing verdicts, never a hang
	// or a panic.
	assert.Equal(t, []string{"git"}, rep.MissingSystem)
	assert.Equal(t, []string{"sys"}, rep.MissingPython)
}

func TestVerifyDependenciesAgainstHost(t *testing.T) {
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not available on this host")
	}

	rep := VerifyDependencies(context.Background(),
		[]string{"this-package-does-not-exist-xyz"},
		[]string{"sys", "no_such_module_xyz"})

	assert.Contains(t, rep.MissingSystem, "this-package-does-not-exist-xyz")
	assert.Contains(t, rep.PresentPython, "sys")
	assert.Contains(t, rep.MissingPython, "no_such_module_xyz")
}
