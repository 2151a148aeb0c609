// Package encoder describes what the application wants to send: a codec
// agnostic encoder configuration and the streams it should produce.
package encoder

import (
	"github.com/pion/ion-vcodec/pkg/codec"
)

// ContentType classifies the video source.
type ContentType int

const (
	RealtimeVideo ContentType = iota
	Screen
)

func (c ContentType) String() string {
	if c == Screen {
		return "screen"
	}
	return "realtime"
}

// SpecificSettings populates the codec specific part of a VideoCodec.
// Settings supplied this way take precedence over the built-in defaults.
type SpecificSettings interface {
	FillEncoderSpecificSettings(c *codec.VideoCodec)
}

// VideoEncoderConfig is the application level encoder configuration.
type VideoEncoderConfig struct {
	// CodecType may be codec.Unknown, in which case the payload name of
	// EncoderSettings decides.
	CodecType   codec.Type
	ContentType ContentType

	EncoderSpecificSettings SpecificSettings
	// SpatialLayers sets VP9 layering explicitly. Empty means generated.
	SpatialLayers []codec.SpatialLayer

	MinTransmitBitrateBps int
}

// Copy returns a copy that owns its spatial layers. The encoder specific
// settings object is shared and must not be mutated.
func (c VideoEncoderConfig) Copy() VideoEncoderConfig {
	out := c
	if c.SpatialLayers != nil {
		out.SpatialLayers = append([]codec.SpatialLayer(nil), c.SpatialLayers...)
	}
	return out
}

// VideoStream describes one output stream. Bitrates are in bits per second.
type VideoStream struct {
	Width            int
	Height           int
	MaxFramerate     int
	MinBitrateBps    int
	TargetBitrateBps int
	MaxBitrateBps    int
	MaxQP            int
	// NumTemporalLayers is nil when the stream leaves it to the codec.
	NumTemporalLayers *int
	Active            bool
}

// TemporalLayers returns a pointer suitable for VideoStream.NumTemporalLayers.
func TemporalLayers(n int) *int {
	return &n
}

// EncoderSettings is the legacy send stream hint used to resolve the codec
// when VideoEncoderConfig.CodecType is unset.
type EncoderSettings struct {
	PayloadName string
	PayloadType int
}
