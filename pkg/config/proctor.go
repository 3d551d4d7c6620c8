package config

import "time"

// ProctorConfig controls the per-session monitor workers and their
// detectors. Grace periods filter flickering detector booleans into
// warning activations.
type ProctorConfig struct {
	// SidecarAddr is the gRPC address of the vision sidecar. Empty disables
	// the vision detectors (the monitor degrades, it does not fail).
	SidecarAddr string `yaml:"sidecar_addr"`

	// HeavyDetectorEveryN runs face/phone/gaze analysis every N processed
	// frames.
	HeavyDetectorEveryN int `yaml:"heavy_detector_every_n"`

	// NoPersonGrace is how long zero faces must persist before NO_PERSON
	// activates.
	NoPersonGrace time.Duration `yaml:"no_person_grace"`

	// MultiplePeopleGrace filters transient second-face detections.
	MultiplePeopleGrace time.Duration `yaml:"multiple_people_grace"`

	// PhoneGrace filters one-frame phone detections.
	PhoneGrace time.Duration `yaml:"phone_grace"`

	// LowConcentrationFrames is the consecutive-frame threshold for the
	// eye-aspect-ratio detector.
	LowConcentrationFrames int `yaml:"low_concentration_frames"`

	// EyeAspectRatioMin is the EAR floor below which a frame counts toward
	// LOW_CONCENTRATION.
	EyeAspectRatioMin float64 `yaml:"eye_aspect_ratio_min"`

	// SecondFaceAreaRatio is the minimum bbox area relative to the largest
	// face for a second face to count toward MULTIPLE_PEOPLE.
	SecondFaceAreaRatio float64 `yaml:"second_face_area_ratio"`

	// NoiseRMSThreshold is the 1-second RMS energy above which a chunk is
	// noisy; NoiseGrace filters it into EXCESSIVE_NOISE.
	NoiseRMSThreshold float64       `yaml:"noise_rms_threshold"`
	NoiseGrace        time.Duration `yaml:"noise_grace"`

	// SpeakerGrace filters diarization flicker into MULTIPLE_SPEAKERS.
	SpeakerGrace time.Duration `yaml:"speaker_grace"`

	// SuppressedTypes are warning types recorded without evidence
	// screenshots.
	SuppressedTypes []string `yaml:"suppressed_types"`

	// FrameBuffer caps the per-session ingest queues; overflow drops the
	// oldest entry so the candidate client is never blocked.
	FrameBuffer int `yaml:"frame_buffer"`

	// StopTimeout is how long the manager waits for a monitor to observe
	// cancellation before abandoning it.
	StopTimeout time.Duration `yaml:"stop_timeout"`

	// FFmpegPath enables recording finalization when the binary exists;
	// empty means probe PATH.
	FFmpegPath string `yaml:"ffmpeg_path"`
}

// DefaultProctorConfig returns the built-in proctoring defaults.
func DefaultProctorConfig() *ProctorConfig {
	return &ProctorConfig{
		HeavyDetectorEveryN:    15,
		NoPersonGrace:          30 * time.Second,
		MultiplePeopleGrace:    5 * time.Second,
		PhoneGrace:             3 * time.Second,
		LowConcentrationFrames: 8,
		EyeAspectRatioMin:      0.25,
		SecondFaceAreaRatio:    0.35,
		NoiseRMSThreshold:      0.35,
		NoiseGrace:             5 * time.Second,
		SpeakerGrace:           5 * time.Second,
		SuppressedTypes:        []string{"low_concentration", "tab_switched"},
		FrameBuffer:            8,
		StopTimeout:            2 * time.Second,
	}
}

func loadProctorConfig() *ProctorConfig {
	cfg := DefaultProctorConfig()
	cfg.SidecarAddr = getEnvOrDefault("VISION_SIDECAR_ADDR", "")
	cfg.NoiseRMSThreshold = getEnvFloat("PROCTOR_NOISE_THRESHOLD", cfg.NoiseRMSThreshold)
	cfg.FFmpegPath = getEnvOrDefault("FFMPEG_PATH", "")
	return cfg
}
