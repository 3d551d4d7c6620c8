package proctor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hireloop/hireloop/pkg/config"
	"github.com/hireloop/hireloop/pkg/models"
	"github.com/hireloop/hireloop/pkg/storage"
	"github.com/hireloop/hireloop/pkg/vision"
)

// sidecarCallTimeout bounds each per-frame and per-window sidecar call so a
// stalled sidecar cannot back the monitor up.
const sidecarCallTimeout = 5 * time.Second

// finalizeTimeout bounds the recording merge after the loops have exited.
const finalizeTimeout = 30 * time.Second

type frameMsg struct {
	jpeg []byte
	at   time.Time
}

type audioMsg struct {
	pcm        []byte
	sampleRate int
	at         time.Time
}

type eventMsg struct {
	name string
	at   time.Time
}

// Monitor watches one session. Three loops run under an errgroup: the frame
// loop consumes camera frames and client events, the detector loop analyzes
// every Nth frame through the sidecar, and the audio loop scores one-second
// PCM windows. Each warning type is owned by exactly one loop; the only
// state shared between loops is the latest-frame snapshot used for
// audio-warning evidence.
type Monitor struct {
	sessionID string
	cfg       *config.ProctorConfig
	analyzer  vision.Analyzer // nil when no sidecar is configured
	store     *storage.Store
	sink      Sink
	rec       *recorder
	now       func() time.Time

	frames chan frameMsg
	audio  chan audioMsg
	events chan eventMsg

	mu        sync.Mutex
	lastFrame []byte

	cancel context.CancelFunc
	done   chan struct{}
}

func newMonitor(sessionID string, cfg *config.ProctorConfig, analyzer vision.Analyzer, store *storage.Store, sink Sink, ffmpeg string, now func() time.Time) *Monitor {
	buf := cfg.FrameBuffer
	if buf <= 0 {
		buf = 8
	}
	return &Monitor{
		sessionID: sessionID,
		cfg:       cfg,
		analyzer:  analyzer,
		store:     store,
		sink:      sink,
		rec:       newRecorder(store, sessionID, ffmpeg),
		now:       now,
		frames:    make(chan frameMsg, buf),
		audio:     make(chan audioMsg, buf),
		events:    make(chan eventMsg, buf),
		done:      make(chan struct{}),
	}
}

func (m *Monitor) start(ctx context.Context) {
	ctx, m.cancel = context.WithCancel(ctx)
	go m.run(ctx)
}

// SubmitFrame queues one JPEG camera frame. Never blocks: when the buffer
// is full the oldest frame is dropped.
func (m *Monitor) SubmitFrame(jpeg []byte) {
	offer(m.frames, frameMsg{jpeg: jpeg, at: m.now()})
}

// SubmitAudio queues one 1-second PCM chunk.
func (m *Monitor) SubmitAudio(pcm []byte, sampleRate int) {
	offer(m.audio, audioMsg{pcm: pcm, sampleRate: sampleRate, at: m.now()})
}

// SubmitEvent queues one client event (page visibility).
func (m *Monitor) SubmitEvent(name string) {
	offer(m.events, eventMsg{name: name, at: m.now()})
}

// offer is a non-blocking send that drops the oldest queued element when
// the channel is full, so a slow monitor never blocks the ingest handlers.
func offer[T any](ch chan T, v T) {
	select {
	case ch <- v:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- v:
	default:
	}
}

func (m *Monitor) run(ctx context.Context) {
	heavy := make(chan frameMsg, 1)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return guard("frame loop", func() error { return m.frameLoop(gctx, heavy) }) })
	g.Go(func() error { return guard("detector loop", func() error { return m.detectorLoop(gctx, heavy) }) })
	g.Go(func() error { return guard("audio loop", func() error { return m.audioLoop(gctx) }) })
	err := g.Wait()

	// done closes as soon as the loops stop; recording finalization keeps
	// running so a detach wait is never held up by ffmpeg.
	close(m.done)

	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("Proctor monitor failed", "session_id", m.sessionID, "error", err)
		m.record(context.Background(), models.WarningProctorDegraded,
			"proctoring stopped early: "+err.Error(), nil, m.now())
	}

	fctx, cancel := context.WithTimeout(context.Background(), finalizeTimeout)
	defer cancel()
	if key := m.rec.finalize(fctx); key != "" {
		if err := m.sink.SetVideoPath(fctx, m.sessionID, key); err != nil {
			slog.Error("Failed to store recording path", "session_id", m.sessionID, "error", err)
		}
	}
}

// guard converts a loop panic into an error so one bad frame cannot take
// the process down with it.
func guard(name string, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", name, r)
		}
	}()
	return fn()
}

func (m *Monitor) frameLoop(ctx context.Context, heavy chan frameMsg) error {
	tab := newTracker(0)
	count := 0

	for {
		select {
		case <-ctx.Done():
			return nil
		case f := <-m.frames:
			count++
			m.mu.Lock()
			m.lastFrame = f.jpeg
			m.mu.Unlock()
			m.rec.addFrame(f.jpeg)
			if m.analyzer != nil && (count-1)%m.cfg.HeavyDetectorEveryN == 0 {
				offer(heavy, f)
			}
		case ev := <-m.events:
			switch ev.name {
			case EventTabSwitched:
				if tab.Observe(true, ev.at) {
					m.record(ctx, models.WarningTabSwitched, "candidate left the interview tab", nil, ev.at)
				}
			case EventTabFocused:
				tab.Observe(false, ev.at)
			default:
				slog.Debug("Ignoring unknown client event", "session_id", m.sessionID, "event", ev.name)
			}
		}
	}
}

// frameDetectors holds the camera-warning state owned by the detector loop.
type frameDetectors struct {
	noPerson  *tracker
	multiple  *tracker
	phone     *tracker
	lowRun    int
	lowActive bool
}

func (m *Monitor) detectorLoop(ctx context.Context, heavy chan frameMsg) error {
	if m.analyzer == nil {
		slog.Warn("Vision sidecar not configured, camera detectors disabled", "session_id", m.sessionID)
		return nil
	}

	d := &frameDetectors{
		noPerson: newTracker(m.cfg.NoPersonGrace),
		multiple: newTracker(m.cfg.MultiplePeopleGrace),
		phone:    newTracker(m.cfg.PhoneGrace),
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case f := <-heavy:
			m.analyzeFrame(ctx, f, d)
		}
	}
}

func (m *Monitor) analyzeFrame(ctx context.Context, f frameMsg, d *frameDetectors) {
	callCtx, cancel := context.WithTimeout(ctx, sidecarCallTimeout)
	analysis, err := m.analyzer.AnalyzeFrame(callCtx, m.sessionID, f.jpeg)
	cancel()
	if err != nil {
		// A failed analysis is not evidence of absence; skip the tick.
		slog.Warn("Frame analysis failed", "session_id", m.sessionID, "error", err)
		return
	}

	if d.noPerson.Observe(len(analysis.Faces) == 0, f.at) {
		m.record(ctx, models.WarningNoPerson,
			fmt.Sprintf("no person visible for %s", m.cfg.NoPersonGrace), f.jpeg, f.at)
	}
	if d.multiple.Observe(countSignificantFaces(analysis.Faces, m.cfg.SecondFaceAreaRatio) > 1, f.at) {
		m.record(ctx, models.WarningMultiplePeople, "multiple people visible in frame", f.jpeg, f.at)
	}
	if d.phone.Observe(analysis.PhoneDetected, f.at) {
		m.record(ctx, models.WarningPhoneDetected, "phone visible in frame", f.jpeg, f.at)
	}

	// Low concentration counts consecutive analyzed frames, not wall time.
	distracted := false
	if primary := primaryFace(analysis.Faces); primary != nil {
		distracted = !primary.LandmarksVisible || primary.EyeAspectRatio < m.cfg.EyeAspectRatioMin
	}
	if distracted {
		d.lowRun++
	} else {
		d.lowRun = 0
		d.lowActive = false
	}
	if d.lowRun >= m.cfg.LowConcentrationFrames && !d.lowActive {
		d.lowActive = true
		m.record(ctx, models.WarningLowConcentration,
			fmt.Sprintf("candidate looked away for %d consecutive analyzed frames", d.lowRun), f.jpeg, f.at)
	}
}

func (m *Monitor) audioLoop(ctx context.Context) error {
	noise := newTracker(m.cfg.NoiseGrace)
	speakers := newTracker(m.cfg.SpeakerGrace)

	for {
		select {
		case <-ctx.Done():
			return nil
		case chunk := <-m.audio:
			m.rec.addAudio(chunk.pcm, chunk.sampleRate)

			if noise.Observe(rmsEnergy(chunk.pcm) > m.cfg.NoiseRMSThreshold, chunk.at) {
				m.record(ctx, models.WarningExcessiveNoise, "sustained background noise", m.snapshotFrame(), chunk.at)
			}

			if m.analyzer == nil {
				continue
			}
			callCtx, cancel := context.WithTimeout(ctx, sidecarCallTimeout)
			count, err := m.analyzer.AnalyzeAudioWindow(callCtx, m.sessionID, chunk.pcm, chunk.sampleRate)
			cancel()
			if err != nil {
				slog.Warn("Audio diarization failed", "session_id", m.sessionID, "error", err)
				continue
			}
			if speakers.Observe(count > 1, chunk.at) {
				m.record(ctx, models.WarningMultipleSpeakers,
					fmt.Sprintf("%d distinct speakers heard", count), m.snapshotFrame(), chunk.at)
			}
		}
	}
}

// record persists one warning activation, saving annotated evidence first
// for non-suppressed types.
func (m *Monitor) record(ctx context.Context, warningType, message string, evidence []byte, at time.Time) {
	evidencePath := ""
	if len(evidence) > 0 && !m.suppressed(warningType) {
		evidencePath = m.saveEvidence(ctx, warningType, evidence, at)
	}
	if err := m.sink.RecordWarning(ctx, m.sessionID, warningType, message, evidencePath); err != nil {
		slog.Error("Failed to record warning",
			"session_id", m.sessionID, "warning_type", warningType, "error", err)
		return
	}
	slog.Info("Proctor warning",
		"session_id", m.sessionID, "warning_type", warningType, "evidence", evidencePath != "")
}

func (m *Monitor) suppressed(warningType string) bool {
	return slices.Contains(m.cfg.SuppressedTypes, warningType)
}

func (m *Monitor) saveEvidence(ctx context.Context, warningType string, frameJPEG []byte, at time.Time) string {
	img := frameJPEG
	if m.analyzer != nil {
		callCtx, cancel := context.WithTimeout(ctx, sidecarCallTimeout)
		annotated, err := m.analyzer.AnnotateEvidence(callCtx, frameJPEG, warningType, at)
		cancel()
		if err != nil {
			slog.Warn("Evidence annotation failed, storing raw frame", "session_id", m.sessionID, "error", err)
		} else if len(annotated) > 0 {
			img = annotated
		}
	}
	key := fmt.Sprintf("%s/%s/%s-%d.jpg", storage.PrefixEvidence, m.sessionID, warningType, at.UnixMilli())
	if _, err := m.store.Save(key, img); err != nil {
		slog.Error("Failed to store evidence frame", "session_id", m.sessionID, "error", err)
		return ""
	}
	return key
}

func (m *Monitor) snapshotFrame() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastFrame
}

// countSignificantFaces counts faces whose bounding box is at least ratio
// of the largest face's area. Distant bystanders and photos on the wall do
// not count toward MULTIPLE_PEOPLE.
func countSignificantFaces(faces []vision.Face, ratio float64) int {
	largest := 0
	for _, f := range faces {
		if a := f.Box.Area(); a > largest {
			largest = a
		}
	}
	n := 0
	for _, f := range faces {
		if float64(f.Box.Area()) >= ratio*float64(largest) {
			n++
		}
	}
	return n
}

// primaryFace returns the largest detected face, the one assumed to be the
// candidate.
func primaryFace(faces []vision.Face) *vision.Face {
	var best *vision.Face
	for i := range faces {
		if best == nil || faces[i].Box.Area() > best.Box.Area() {
			best = &faces[i]
		}
	}
	return best
}
