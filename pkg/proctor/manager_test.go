package proctor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/pkg/ai/mock"
	"github.com/hireloop/hireloop/pkg/config"
	"github.com/hireloop/hireloop/pkg/masking"
	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/storage"
	"github.com/hireloop/hireloop/pkg/vision"
)

type managerFixture struct {
	mgr  *Manager
	ai   *mock.Gateway
	sink *fakeSink
	an   *fakeAnalyzer
}

func newTestManager(t *testing.T, an *fakeAnalyzer) *managerFixture {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	bank, err := config.LoadQuestionBank("")
	require.NoError(t, err)
	gateway := mock.New(bank)
	sink := newFakeSink()

	var analyzer vision.Analyzer
	if an != nil {
		analyzer = an
	}
	mgr := NewManager(testProctorConfig(), analyzer, gateway, masking.NewService(), store, sink)
	t.Cleanup(mgr.StopAll)

	return &managerFixture{mgr: mgr, ai: gateway, sink: sink, an: an}
}

func TestAttachIsIdempotent(t *testing.T) {
	fx := newTestManager(t, &fakeAnalyzer{})

	fx.mgr.Attach("sess-1")
	fx.mgr.Attach("sess-1")
	assert.Equal(t, 1, fx.mgr.ActiveMonitors())
	assert.True(t, fx.mgr.Monitoring("sess-1"))

	fx.mgr.Detach("sess-1")
	assert.False(t, fx.mgr.Monitoring("sess-1"))
	fx.mgr.Detach("sess-1") // second detach is a no-op
}

func TestIngestWithoutMonitorIsRejected(t *testing.T) {
	fx := newTestManager(t, &fakeAnalyzer{})

	assert.ErrorIs(t, fx.mgr.SubmitFrame("ghost", []byte("f")), ErrNotMonitored)
	assert.ErrorIs(t, fx.mgr.SubmitAudio("ghost", []byte("a"), 16000), ErrNotMonitored)
	assert.ErrorIs(t, fx.mgr.SubmitEvent("ghost", EventTabSwitched), ErrNotMonitored)
}

func TestStopAllDetachesEverything(t *testing.T) {
	fx := newTestManager(t, &fakeAnalyzer{})

	fx.mgr.Attach("sess-1")
	fx.mgr.Attach("sess-2")
	require.Equal(t, 2, fx.mgr.ActiveMonitors())

	fx.mgr.StopAll()
	assert.Zero(t, fx.mgr.ActiveMonitors())
}

func TestDetectorsReflectSidecarPresence(t *testing.T) {
	withSidecar := newTestManager(t, &fakeAnalyzer{})
	for _, d := range withSidecar.mgr.Detectors() {
		assert.True(t, d.Available, "detector %s should be available with a sidecar", d.Name)
	}

	withoutSidecar := newTestManager(t, nil)
	available := map[string]bool{}
	for _, d := range withoutSidecar.mgr.Detectors() {
		available[d.Name] = d.Available
	}
	assert.False(t, available[models.WarningNoPerson])
	assert.False(t, available[models.WarningMultipleSpeakers])
	assert.True(t, available[models.WarningTabSwitched])
	assert.True(t, available[models.WarningExcessiveNoise])
	assert.Error(t, withoutSidecar.mgr.SidecarReady())
}

func TestVerifyIDSuccessMasksDetails(t *testing.T) {
	an := &fakeAnalyzer{analysis: vision.FrameAnalysis{Faces: []vision.Face{face(100, 0.5), face(60, 0)}}}
	fx := newTestManager(t, an)

	res := fx.mgr.VerifyID(context.Background(), "sess-1", "Priya Patel", []byte("frame"))
	require.True(t, res.Verified)
	assert.Empty(t, res.Reason)
	assert.Contains(t, res.Details, "Priya Sharma")
	assert.Contains(t, res.Details, "9012", "last four digits survive masking")
	assert.NotContains(t, res.Details, "1234", "leading digits must be masked")
}

func TestVerifyIDWrongFaceCount(t *testing.T) {
	an := &fakeAnalyzer{analysis: vision.FrameAnalysis{Faces: []vision.Face{face(100, 0.5)}}}
	fx := newTestManager(t, an)

	res := fx.mgr.VerifyID(context.Background(), "sess-1", "Priya Patel", []byte("frame"))
	assert.False(t, res.Verified)
	assert.Equal(t, ReasonWrongFaceCount, res.Reason)
	assert.Contains(t, res.Details, "found 1")
}

func TestVerifyIDNameMismatch(t *testing.T) {
	an := &fakeAnalyzer{analysis: vision.FrameAnalysis{Faces: []vision.Face{face(100, 0.5), face(60, 0)}}}
	fx := newTestManager(t, an)

	res := fx.mgr.VerifyID(context.Background(), "sess-1", "Rahul Verma", []byte("frame"))
	assert.False(t, res.Verified)
	assert.Equal(t, ReasonNameMismatch, res.Reason)
	assert.NotContains(t, res.Details, "1234")
}

func TestVerifyIDOCRFailureHasNoFallback(t *testing.T) {
	an := &fakeAnalyzer{analysis: vision.FrameAnalysis{Faces: []vision.Face{face(100, 0.5), face(60, 0)}}}
	fx := newTestManager(t, an)
	fx.ai.FailOCR = true

	res := fx.mgr.VerifyID(context.Background(), "sess-1", "Priya Patel", []byte("frame"))
	assert.False(t, res.Verified)
	assert.Equal(t, ReasonOCRFailed, res.Reason)
}

func TestVerifyIDWithoutSidecar(t *testing.T) {
	fx := newTestManager(t, nil)

	res := fx.mgr.VerifyID(context.Background(), "sess-1", "Priya Patel", []byte("frame"))
	assert.False(t, res.Verified)
	assert.Equal(t, ReasonProctorUnavailable, res.Reason)
}

func TestNameMatching(t *testing.T) {
	cases := []struct {
		candidate string
		extracted string
		want      bool
	}{
		{"Priya Patel", "PRIYA SHARMA", true},
		{"priya", "Ms. Priya S.", true},
		{"Rahul Verma", "Priya Sharma", false},
		{"", "Priya Sharma", false},
		{"  ", "Priya Sharma", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, nameMatches(tc.candidate, tc.extracted),
			"candidate %q vs extracted %q", tc.candidate, tc.extracted)
	}
}
