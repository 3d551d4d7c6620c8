// Package visionv1 holds the hand-maintained wire types and client stub for
// the vision sidecar RPCs defined in vision.proto. The messages are encoded
// with protowire directly, so the schema stays wire-compatible with the
// sidecar's protoc-generated Python server without running protoc in this
// build. Keep field numbers in sync with vision.proto.
package visionv1

import (
	"context"
	"fmt"
	"math"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protowire"
)

// CodecName scopes the hand-rolled codec to vision calls via
// grpc.CallContentSubtype; the process-wide proto codec is untouched.
const CodecName = "visionv1"

func init() {
	encoding.RegisterCodec(codec{})
}

type marshaler interface {
	appendFields(b []byte) []byte
}

type unmarshaler interface {
	unmarshalField(num protowire.Number, typ protowire.Type, payload []byte) error
}

type codec struct{}

func (codec) Name() string { return CodecName }

func (codec) Marshal(v any) ([]byte, error) {
	m, ok := v.(marshaler)
	if !ok {
		return nil, fmt.Errorf("visionv1: cannot marshal %T", v)
	}
	return m.appendFields(nil), nil
}

func (codec) Unmarshal(data []byte, v any) error {
	m, ok := v.(unmarshaler)
	if !ok {
		return fmt.Errorf("visionv1: cannot unmarshal into %T", v)
	}
	return walkFields(data, m)
}

// walkFields dispatches each top-level field to the message; unknown fields
// are skipped, matching proto semantics.
func walkFields(data []byte, m unmarshaler) error {
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return protowire.ParseError(n)
		}
		data = data[n:]

		size := protowire.ConsumeFieldValue(num, typ, data)
		if size < 0 {
			return protowire.ParseError(size)
		}
		if err := m.unmarshalField(num, typ, data[:size]); err != nil {
			return err
		}
		data = data[size:]
	}
	return nil
}

func appendStringField(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendBytesField(b []byte, num protowire.Number, v []byte) []byte {
	if len(v) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, v)
}

func appendInt32Field(b []byte, num protowire.Number, v int32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendBoolField(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, 1)
}

func appendDoubleField(b []byte, num protowire.Number, v float64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendMessageField(b []byte, num protowire.Number, m marshaler) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m.appendFields(nil))
}

func consumeString(payload []byte) (string, error) {
	v, n := protowire.ConsumeString(payload)
	if n < 0 {
		return "", protowire.ParseError(n)
	}
	return v, nil
}

func consumeBytes(payload []byte) ([]byte, error) {
	v, n := protowire.ConsumeBytes(payload)
	if n < 0 {
		return nil, protowire.ParseError(n)
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func consumeVarint(payload []byte) (uint64, error) {
	v, n := protowire.ConsumeVarint(payload)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return v, nil
}

func consumeDouble(payload []byte) (float64, error) {
	v, n := protowire.ConsumeFixed64(payload)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	return math.Float64frombits(v), nil
}

func consumeMessage(payload []byte, m unmarshaler) error {
	v, n := protowire.ConsumeBytes(payload)
	if n < 0 {
		return protowire.ParseError(n)
	}
	return walkFields(v, m)
}

// ────────────────────────────────────────────────────────────
// Messages
// ────────────────────────────────────────────────────────────

type AnalyzeFrameRequest struct {
	SessionId string
	FrameJpeg []byte
}

func (m *AnalyzeFrameRequest) appendFields(b []byte) []byte {
	b = appendStringField(b, 1, m.SessionId)
	b = appendBytesField(b, 2, m.FrameJpeg)
	return b
}

func (m *AnalyzeFrameRequest) unmarshalField(num protowire.Number, _ protowire.Type, payload []byte) (err error) {
	switch num {
	case 1:
		m.SessionId, err = consumeString(payload)
	case 2:
		m.FrameJpeg, err = consumeBytes(payload)
	}
	return err
}

type BoundingBox struct {
	X      int32
	Y      int32
	Width  int32
	Height int32
}

func (m *BoundingBox) appendFields(b []byte) []byte {
	b = appendInt32Field(b, 1, m.X)
	b = appendInt32Field(b, 2, m.Y)
	b = appendInt32Field(b, 3, m.Width)
	b = appendInt32Field(b, 4, m.Height)
	return b
}

func (m *BoundingBox) unmarshalField(num protowire.Number, _ protowire.Type, payload []byte) error {
	v, err := consumeVarint(payload)
	if err != nil {
		return err
	}
	switch num {
	case 1:
		m.X = int32(v)
	case 2:
		m.Y = int32(v)
	case 3:
		m.Width = int32(v)
	case 4:
		m.Height = int32(v)
	}
	return nil
}

type Face struct {
	Box              *BoundingBox
	EyeAspectRatio   float64
	LandmarksVisible bool
}

func (m *Face) appendFields(b []byte) []byte {
	if m.Box != nil {
		b = appendMessageField(b, 1, m.Box)
	}
	b = appendDoubleField(b, 2, m.EyeAspectRatio)
	b = appendBoolField(b, 3, m.LandmarksVisible)
	return b
}

func (m *Face) unmarshalField(num protowire.Number, _ protowire.Type, payload []byte) (err error) {
	switch num {
	case 1:
		m.Box = new(BoundingBox)
		err = consumeMessage(payload, m.Box)
	case 2:
		m.EyeAspectRatio, err = consumeDouble(payload)
	case 3:
		var v uint64
		v, err = consumeVarint(payload)
		m.LandmarksVisible = v != 0
	}
	return err
}

type AnalyzeFrameResponse struct {
	Faces         []*Face
	PhoneDetected bool
}

func (m *AnalyzeFrameResponse) appendFields(b []byte) []byte {
	for _, f := range m.Faces {
		b = appendMessageField(b, 1, f)
	}
	b = appendBoolField(b, 2, m.PhoneDetected)
	return b
}

func (m *AnalyzeFrameResponse) unmarshalField(num protowire.Number, _ protowire.Type, payload []byte) (err error) {
	switch num {
	case 1:
		f := new(Face)
		if err = consumeMessage(payload, f); err == nil {
			m.Faces = append(m.Faces, f)
		}
	case 2:
		var v uint64
		v, err = consumeVarint(payload)
		m.PhoneDetected = v != 0
	}
	return err
}

type AnalyzeAudioWindowRequest struct {
	SessionId  string
	Pcm        []byte
	SampleRate int32
}

func (m *AnalyzeAudioWindowRequest) appendFields(b []byte) []byte {
	b = appendStringField(b, 1, m.SessionId)
	b = appendBytesField(b, 2, m.Pcm)
	b = appendInt32Field(b, 3, m.SampleRate)
	return b
}

func (m *AnalyzeAudioWindowRequest) unmarshalField(num protowire.Number, _ protowire.Type, payload []byte) (err error) {
	switch num {
	case 1:
		m.SessionId, err = consumeString(payload)
	case 2:
		m.Pcm, err = consumeBytes(payload)
	case 3:
		var v uint64
		v, err = consumeVarint(payload)
		m.SampleRate = int32(v)
	}
	return err
}

type AnalyzeAudioWindowResponse struct {
	SpeakerCount int32
}

func (m *AnalyzeAudioWindowResponse) appendFields(b []byte) []byte {
	return appendInt32Field(b, 1, m.SpeakerCount)
}

func (m *AnalyzeAudioWindowResponse) unmarshalField(num protowire.Number, _ protowire.Type, payload []byte) error {
	if num == 1 {
		v, err := consumeVarint(payload)
		if err != nil {
			return err
		}
		m.SpeakerCount = int32(v)
	}
	return nil
}

type AnnotateEvidenceRequest struct {
	FrameJpeg  []byte
	Label      string
	CapturedAt string
}

func (m *AnnotateEvidenceRequest) appendFields(b []byte) []byte {
	b = appendBytesField(b, 1, m.FrameJpeg)
	b = appendStringField(b, 2, m.Label)
	b = appendStringField(b, 3, m.CapturedAt)
	return b
}

func (m *AnnotateEvidenceRequest) unmarshalField(num protowire.Number, _ protowire.Type, payload []byte) (err error) {
	switch num {
	case 1:
		m.FrameJpeg, err = consumeBytes(payload)
	case 2:
		m.Label, err = consumeString(payload)
	case 3:
		m.CapturedAt, err = consumeString(payload)
	}
	return err
}

type AnnotateEvidenceResponse struct {
	AnnotatedJpeg []byte
}

func (m *AnnotateEvidenceResponse) appendFields(b []byte) []byte {
	return appendBytesField(b, 1, m.AnnotatedJpeg)
}

func (m *AnnotateEvidenceResponse) unmarshalField(num protowire.Number, _ protowire.Type, payload []byte) (err error) {
	if num == 1 {
		m.AnnotatedJpeg, err = consumeBytes(payload)
	}
	return err
}

// ────────────────────────────────────────────────────────────
// Client stub
// ────────────────────────────────────────────────────────────

const (
	methodAnalyzeFrame       = "/vision.v1.VisionAnalyzer/AnalyzeFrame"
	methodAnalyzeAudioWindow = "/vision.v1.VisionAnalyzer/AnalyzeAudioWindow"
	methodAnnotateEvidence   = "/vision.v1.VisionAnalyzer/AnnotateEvidence"
)

// VisionAnalyzerClient is the client surface of the VisionAnalyzer service.
type VisionAnalyzerClient interface {
	AnalyzeFrame(ctx context.Context, in *AnalyzeFrameRequest, opts ...grpc.CallOption) (*AnalyzeFrameResponse, error)
	AnalyzeAudioWindow(ctx context.Context, in *AnalyzeAudioWindowRequest, opts ...grpc.CallOption) (*AnalyzeAudioWindowResponse, error)
	AnnotateEvidence(ctx context.Context, in *AnnotateEvidenceRequest, opts ...grpc.CallOption) (*AnnotateEvidenceResponse, error)
}

// NewVisionAnalyzerClient creates a VisionAnalyzer client on the connection.
func NewVisionAnalyzerClient(cc grpc.ClientConnInterface) VisionAnalyzerClient {
	return &visionAnalyzerClient{cc: cc}
}

type visionAnalyzerClient struct {
	cc grpc.ClientConnInterface
}

func (c *visionAnalyzerClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, opts...)
}

func (c *visionAnalyzerClient) AnalyzeFrame(ctx context.Context, in *AnalyzeFrameRequest, opts ...grpc.CallOption) (*AnalyzeFrameResponse, error) {
	out := new(AnalyzeFrameResponse)
	if err := c.invoke(ctx, methodAnalyzeFrame, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *visionAnalyzerClient) AnalyzeAudioWindow(ctx context.Context, in *AnalyzeAudioWindowRequest, opts ...grpc.CallOption) (*AnalyzeAudioWindowResponse, error) {
	out := new(AnalyzeAudioWindowResponse)
	if err := c.invoke(ctx, methodAnalyzeAudioWindow, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *visionAnalyzerClient) AnnotateEvidence(ctx context.Context, in *AnnotateEvidenceRequest, opts ...grpc.CallOption) (*AnnotateEvidenceResponse, error) {
	out := new(AnnotateEvidenceResponse)
	if err := c.invoke(ctx, methodAnnotateEvidence, in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}
