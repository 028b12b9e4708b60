// pkg/backend/checker_test.go
package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/arc-language/preflight/pkg/core"
)

// scriptedProber answers each backend from a fixed script and counts calls.
type scriptedProber struct {
	script map[Kind]Outcome
	calls  []Kind
}

func (p *scriptedProber) Probe(ctx context.Context, kind Kind, name string) Outcome {
	p.calls = append(p.calls, kind)
	if outcome, ok := p.script[kind]; ok {
		return outcome
	}
	return OutcomeUnavailable
}

// panicProber blows up on a chosen backend and delegates the rest.
type panicProber struct {
	scriptedProber
	panicOn Kind
}

func (p *panicProber) Probe(ctx context.Context, kind Kind, name string) Outcome {
	if kind == p.panicOn {
		p.calls = append(p.calls, kind)
		panic("backend exploded")
	}
	return p.scriptedProber.Probe(ctx, kind, name)
}

func TestCheckShortCircuitsOnInstalled(t *testing.T) {
	prober := &scriptedProber{script: map[Kind]Outcome{
		KindDpkg: OutcomeInstalled,
	}}
	checker := NewCheckerWithProber(prober, nil)

	verdict := checker.Check(context.Background(), "git")

	assert.Equal(t, core.VerdictPresent, verdict)
	assert.Equal(t, []Kind{KindDpkg}, prober.calls, "lower-priority backends must not be probed")
}

func TestCheckTrustsAuthoritativeNotInstalled(t *testing.T) {
	prober := &scriptedProber{script: map[Kind]Outcome{
		KindDpkg: OutcomeNotInstalled,
		KindRpm:  OutcomeInstalled, // must never be reached
	}}
	checker := NewCheckerWithProber(prober, nil)

	verdict := checker.Check(context.Background(), "nmap")

	assert.Equal(t, core.VerdictMissing, verdict)
	assert.Equal(t, []Kind{KindDpkg}, prober.calls, "a definitive answer stops the fold")
}

func TestCheckFallsThroughUnavailableBackends(t *testing.T) {
	prober := &scriptedProber{script: map[Kind]Outcome{
		KindDpkg: OutcomeUnavailable,
		KindRpm:  OutcomeUnavailable,
		KindApk:  OutcomeInstalled,
	}}
	checker := NewCheckerWithProber(prober, nil)

	verdict := checker.Check(context.Background(), "curl")

	assert.Equal(t, core.VerdictPresent, verdict)
	assert.Equal(t, []Kind{KindDpkg, KindRpm, KindApk}, prober.calls)
}

func TestCheckAllUnavailableIsMissing(t *testing.T) {
	prober := &scriptedProber{script: map[Kind]Outcome{}}
	checker := NewCheckerWithProber(prober, nil)

	verdict, results := checker.Trace(context.Background(), "anything")

	assert.Equal(t, core.VerdictMissing, verdict, "unverifiable presence is reported missing")
	require.Len(t, results, len(PriorityOrder))
	for _, r := range results {
		assert.Equal(t, OutcomeUnavailable, r.Outcome)
	}
}

func TestCheckPriorityOrder(t *testing.T) {
	prober := &scriptedProber{script: map[Kind]Outcome{}}
	checker := NewCheckerWithProber(prober, nil)

	checker.Check(context.Background(), "anything")

	assert.Equal(t, []Kind{KindDpkg, KindRpm, KindApk, KindYum}, prober.calls)
}

func TestCheckSurvivesPanickingProber(t *testing.T) {
	prober := &panicProber{
		scriptedProber: scriptedProber{script: map[Kind]Outcome{
			KindRpm: OutcomeInstalled,
		}},
		panicOn: KindDpkg,
	}
	checker := NewCheckerWithProber(prober, nil)

	var verdict core.Verdict
	assert.NotPanics(t, func() {
		verdict = checker.Check(context.Background(), "git")
	})
	assert.Equal(t, core.VerdictPresent, verdict, "a panicking backend is skipped, not fatal")
	assert.Equal(t, []Kind{KindDpkg, KindRpm}, prober.calls)
}

func TestTraceRecordsOutcomes(t *testing.T) {
	prober := &scriptedProber{script: map[Kind]Outcome{
		KindDpkg: OutcomeUnavailable,
		KindRpm:  OutcomeNotInstalled,
	}}
	checker := NewCheckerWithProber(prober, nil)

	verdict, results := checker.Trace(context.Background(), "wireshark")

	assert.Equal(t, core.VerdictMissing, verdict)
	require.Equal(t, []ProbeResult{
		{Backend: KindDpkg, Outcome: OutcomeUnavailable},
		{Backend: KindRpm, Outcome: OutcomeNotInstalled},
	}, results, "per-backend outcomes are preserved for callers")
}
