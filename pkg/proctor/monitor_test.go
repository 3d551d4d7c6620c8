package proctor

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/hireloop/pkg/config"
	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/storage"
	"github.com/hireloop/hireloop/pkg/vision"
)

// ── test doubles ──

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: trackerEpoch}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type fakeAnalyzer struct {
	mu          sync.Mutex
	analysis    vision.FrameAnalysis
	frameErr    error
	panicFrames bool
	speakers    int
	audioErr    error
	frameCalls  int
	audioCalls  int
}

func (f *fakeAnalyzer) AnalyzeFrame(_ context.Context, _ string, _ []byte) (*vision.FrameAnalysis, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.frameCalls++
	if f.panicFrames {
		panic("detector model blew up")
	}
	if f.frameErr != nil {
		return nil, f.frameErr
	}
	out := f.analysis
	return &out, nil
}

func (f *fakeAnalyzer) AnalyzeAudioWindow(_ context.Context, _ string, _ []byte, _ int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.audioCalls++
	if f.audioErr != nil {
		return 0, f.audioErr
	}
	return f.speakers, nil
}

func (f *fakeAnalyzer) AnnotateEvidence(_ context.Context, frameJPEG []byte, _ string, _ time.Time) ([]byte, error) {
	return append([]byte("annotated:"), frameJPEG...), nil
}

func (f *fakeAnalyzer) Close() error { return nil }

func (f *fakeAnalyzer) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.frameCalls
}

func (f *fakeAnalyzer) windowCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.audioCalls
}

type recordedWarning struct {
	sessionID    string
	warningType  string
	message      string
	evidencePath string
}

type fakeSink struct {
	mu       sync.Mutex
	warnings []recordedWarning
	videos   map[string]string
}

func newFakeSink() *fakeSink {
	return &fakeSink{videos: make(map[string]string)}
}

func (s *fakeSink) RecordWarning(_ context.Context, sessionID, warningType, message, evidencePath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = append(s.warnings, recordedWarning{sessionID, warningType, message, evidencePath})
	return nil
}

func (s *fakeSink) SetVideoPath(_ context.Context, sessionID, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.videos[sessionID] = path
	return nil
}

func (s *fakeSink) count(warningType string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, w := range s.warnings {
		if w.warningType == warningType {
			n++
		}
	}
	return n
}

func (s *fakeSink) total() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.warnings)
}

func (s *fakeSink) last(warningType string) (recordedWarning, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.warnings) - 1; i >= 0; i-- {
		if s.warnings[i].warningType == warningType {
			return s.warnings[i], true
		}
	}
	return recordedWarning{}, false
}

func (s *fakeSink) videoFor(sessionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.videos[sessionID]
}

// ── fixtures ──

func testProctorConfig() *config.ProctorConfig {
	cfg := config.DefaultProctorConfig()
	cfg.HeavyDetectorEveryN = 1
	cfg.NoPersonGrace = 2 * time.Second
	cfg.MultiplePeopleGrace = 2 * time.Second
	cfg.PhoneGrace = 0
	cfg.LowConcentrationFrames = 2
	cfg.NoiseGrace = time.Second
	cfg.SpeakerGrace = time.Second
	return cfg
}

type monitorFixture struct {
	m     *Monitor
	an    *fakeAnalyzer
	sink  *fakeSink
	clock *fakeClock
	store *storage.Store
}

func startMonitor(t *testing.T, cfg *config.ProctorConfig, an *fakeAnalyzer) *monitorFixture {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	sink := newFakeSink()
	clock := newFakeClock()

	var analyzer vision.Analyzer
	if an != nil {
		analyzer = an
	}
	m := newMonitor("sess-1", cfg, analyzer, store, sink, "", clock.Now)
	m.start(context.Background())
	t.Cleanup(func() {
		m.cancel()
		<-m.done
	})

	return &monitorFixture{m: m, an: an, sink: sink, clock: clock, store: store}
}

func face(area int, ear float64) vision.Face {
	return vision.Face{
		Box:              vision.BoundingBox{Width: area, Height: 1},
		EyeAspectRatio:   ear,
		LandmarksVisible: true,
	}
}

func (fx *monitorFixture) feedFrames(n int, step time.Duration) {
	for i := 0; i < n; i++ {
		fx.m.SubmitFrame([]byte("frame"))
		fx.clock.Advance(step)
	}
}

const eventually = 3 * time.Second
const tick = 10 * time.Millisecond

// ── tests ──

func TestMultiplePeopleActivatesOnceWithAnnotatedEvidence(t *testing.T) {
	an := &fakeAnalyzer{analysis: vision.FrameAnalysis{Faces: []vision.Face{face(100, 0.5), face(90, 0.5)}}}
	fx := startMonitor(t, testProctorConfig(), an)

	fx.feedFrames(6, time.Second)
	require.Eventually(t, func() bool {
		return fx.sink.count(models.WarningMultiplePeople) == 1
	}, eventually, tick)

	// Sustained violation never re-logs.
	fx.feedFrames(3, time.Second)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, 1, fx.sink.count(models.WarningMultiplePeople))

	w, ok := fx.sink.last(models.WarningMultiplePeople)
	require.True(t, ok)
	require.NotEmpty(t, w.evidencePath, "multiple_people is not suppressed, evidence expected")
	data, err := fx.store.Read(w.evidencePath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("annotated:")))
}

func TestSecondFaceBelowAreaRatioIgnored(t *testing.T) {
	// Second face is 10% of the largest, well under the 35% floor; drop the
	// grace so a single analyzed frame would be enough to fire.
	cfg := testProctorConfig()
	cfg.MultiplePeopleGrace = 0
	an := &fakeAnalyzer{analysis: vision.FrameAnalysis{Faces: []vision.Face{face(100, 0.5), face(10, 0.5)}}}
	fx := startMonitor(t, cfg, an)

	fx.feedFrames(4, time.Second)
	require.Eventually(t, func() bool { return an.calls() >= 1 }, eventually, tick)
	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, fx.sink.count(models.WarningMultiplePeople))
}

func TestNoPersonAfterSustainedAbsence(t *testing.T) {
	an := &fakeAnalyzer{analysis: vision.FrameAnalysis{}}
	fx := startMonitor(t, testProctorConfig(), an)

	fx.feedFrames(6, time.Second)
	require.Eventually(t, func() bool {
		return fx.sink.count(models.WarningNoPerson) == 1
	}, eventually, tick)

	w, _ := fx.sink.last(models.WarningNoPerson)
	assert.Contains(t, w.message, "no person visible")
}

func TestLowConcentrationIsSuppressedButLogged(t *testing.T) {
	an := &fakeAnalyzer{analysis: vision.FrameAnalysis{Faces: []vision.Face{face(100, 0.1)}}}
	fx := startMonitor(t, testProctorConfig(), an)

	fx.feedFrames(4, time.Second)
	require.Eventually(t, func() bool {
		return fx.sink.count(models.WarningLowConcentration) == 1
	}, eventually, tick)

	w, _ := fx.sink.last(models.WarningLowConcentration)
	assert.Empty(t, w.evidencePath, "suppressed warnings must not store evidence")
}

func TestAttentiveFaceNeverTriggersLowConcentration(t *testing.T) {
	an := &fakeAnalyzer{analysis: vision.FrameAnalysis{Faces: []vision.Face{face(100, 0.4)}}}
	fx := startMonitor(t, testProctorConfig(), an)

	fx.feedFrames(6, time.Second)
	require.Eventually(t, func() bool { return an.calls() >= 2 }, eventually, tick)
	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, fx.sink.count(models.WarningLowConcentration))
}

func TestTabSwitchEdgesLogPerActivation(t *testing.T) {
	fx := startMonitor(t, testProctorConfig(), &fakeAnalyzer{analysis: vision.FrameAnalysis{Faces: []vision.Face{face(100, 0.5)}}})

	fx.m.SubmitEvent(EventTabSwitched)
	require.Eventually(t, func() bool {
		return fx.sink.count(models.WarningTabSwitched) == 1
	}, eventually, tick)

	// Duplicate hidden events are one activation.
	fx.m.SubmitEvent(EventTabSwitched)
	fx.m.SubmitEvent(EventTabFocused)
	fx.m.SubmitEvent(EventTabSwitched)
	require.Eventually(t, func() bool {
		return fx.sink.count(models.WarningTabSwitched) == 2
	}, eventually, tick)
}

func TestAnalyzerFailureDegradesWithoutWarnings(t *testing.T) {
	an := &fakeAnalyzer{frameErr: errors.New("model not loaded")}
	fx := startMonitor(t, testProctorConfig(), an)

	fx.feedFrames(5, time.Second)
	require.Eventually(t, func() bool { return an.calls() >= 1 }, eventually, tick)
	time.Sleep(150 * time.Millisecond)
	assert.Zero(t, fx.sink.total(), "failed analysis must not count as absence")
}

func TestDetectorPanicRecordsProctorDegraded(t *testing.T) {
	an := &fakeAnalyzer{panicFrames: true}
	fx := startMonitor(t, testProctorConfig(), an)

	fx.m.SubmitFrame([]byte("frame"))
	require.Eventually(t, func() bool {
		return fx.sink.count(models.WarningProctorDegraded) == 1
	}, eventually, tick)

	select {
	case <-fx.m.done:
	case <-time.After(eventually):
		t.Fatal("monitor loops should stop after a detector panic")
	}
}

func TestExcessiveNoiseUsesLatestFrameAsEvidence(t *testing.T) {
	an := &fakeAnalyzer{analysis: vision.FrameAnalysis{Faces: []vision.Face{face(100, 0.5)}}}
	fx := startMonitor(t, testProctorConfig(), an)

	fx.m.SubmitFrame([]byte("snapshot"))
	require.Eventually(t, func() bool { return an.calls() >= 1 }, eventually, tick)

	loud := pcmConstant(30000, 1600)
	for i := 0; i < 3; i++ {
		fx.m.SubmitAudio(loud, 16000)
		fx.clock.Advance(time.Second)
	}

	require.Eventually(t, func() bool {
		return fx.sink.count(models.WarningExcessiveNoise) == 1
	}, eventually, tick)

	w, _ := fx.sink.last(models.WarningExcessiveNoise)
	require.NotEmpty(t, w.evidencePath)
	data, err := fx.store.Read(w.evidencePath)
	require.NoError(t, err)
	assert.True(t, bytes.HasSuffix(data, []byte("snapshot")))
}

func TestMultipleSpeakersFromDiarization(t *testing.T) {
	an := &fakeAnalyzer{analysis: vision.FrameAnalysis{Faces: []vision.Face{face(100, 0.5)}}, speakers: 2}
	fx := startMonitor(t, testProctorConfig(), an)

	quiet := pcmConstant(100, 1600)
	for i := 0; i < 3; i++ {
		fx.m.SubmitAudio(quiet, 16000)
		fx.clock.Advance(time.Second)
	}

	require.Eventually(t, func() bool {
		return fx.sink.count(models.WarningMultipleSpeakers) == 1
	}, eventually, tick)
	assert.Zero(t, fx.sink.count(models.WarningExcessiveNoise), "quiet audio is not noise")
}

func TestSubmitNeverBlocksWhenBufferFull(t *testing.T) {
	cfg := testProctorConfig()
	cfg.FrameBuffer = 4

	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)
	// Not started: the buffers only fill.
	m := newMonitor("sess-1", cfg, nil, store, newFakeSink(), "", newFakeClock().Now)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			m.SubmitFrame([]byte{byte(i)})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("SubmitFrame blocked on a full buffer")
	}
	assert.Equal(t, cfg.FrameBuffer, len(m.frames))
}

func TestRecordingDiscardedWithoutFFmpeg(t *testing.T) {
	an := &fakeAnalyzer{analysis: vision.FrameAnalysis{Faces: []vision.Face{face(100, 0.5)}}}
	fx := startMonitor(t, testProctorConfig(), an)

	fx.feedFrames(2, time.Second)
	require.Eventually(t, func() bool { return an.calls() >= 1 }, eventually, tick)

	fx.m.cancel()
	<-fx.m.done

	require.Eventually(t, func() bool {
		objs, err := fx.store.List(storage.PrefixTmp)
		return err == nil && len(objs) == 0
	}, eventually, tick, "recording parts should be cleaned up")
	assert.Empty(t, fx.sink.videoFor("sess-1"))
}

func TestStopObservedQuickly(t *testing.T) {
	an := &fakeAnalyzer{analysis: vision.FrameAnalysis{Faces: []vision.Face{face(100, 0.5)}}}
	fx := startMonitor(t, testProctorConfig(), an)

	fx.feedFrames(2, time.Second)

	start := time.Now()
	fx.m.cancel()
	select {
	case <-fx.m.done:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not observe cancellation within 2s")
	}
	assert.Less(t, time.Since(start), 2*time.Second)
}
