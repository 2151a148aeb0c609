// Package codec holds the normalized, codec specific encoder configuration
// record and the per codec settings it carries.
package codec

import (
	"strings"

	"github.com/pion/webrtc/v3"
)

const (
	// MaxSimulcastStreams bounds VideoCodec.SimulcastStreams.
	MaxSimulcastStreams = 4
	// MaxSpatialLayers bounds VideoCodec.SpatialLayers.
	MaxSpatialLayers = 5
	// MaxTemporalStreams bounds temporal layer counts for every codec.
	MaxTemporalStreams = 4
	// EncoderMinBitrateKbps is the lowest bitrate an encoder is configured with.
	EncoderMinBitrateKbps = 30

	defaultTimingFramesDelayMs     = 200
	defaultOutlierFrameSizePercent = 250
)

// Type identifies a video codec.
type Type int

const (
	Unknown Type = iota
	VP8
	VP9
	H264
	I420
	RED
	ULPFEC
	Flexfec
	Generic
	// Multiplex pairs a VP9 stream with an associated stream (e.g. alpha).
	Multiplex
)

const (
	payloadNameVP8       = "VP8"
	payloadNameVP9       = "VP9"
	payloadNameH264      = "H264"
	payloadNameI420      = "I420"
	payloadNameRED       = "red"
	payloadNameULPFEC    = "ulpfec"
	payloadNameFlexfec   = "flexfec-03"
	payloadNameGeneric   = "Generic"
	payloadNameMultiplex = "Multiplex"
)

// String returns the payload name of the codec.
func (t Type) String() string {
	switch t {
	case VP8:
		return payloadNameVP8
	case VP9:
		return payloadNameVP9
	case H264:
		return payloadNameH264
	case I420:
		return payloadNameI420
	case RED:
		return payloadNameRED
	case ULPFEC:
		return payloadNameULPFEC
	case Flexfec:
		return payloadNameFlexfec
	case Generic:
		return payloadNameGeneric
	case Multiplex:
		return payloadNameMultiplex
	default:
		return "Unknown"
	}
}

// MimeType returns the RTP mime type for codecs that have one.
func (t Type) MimeType() string {
	switch t {
	case VP8:
		return webrtc.MimeTypeVP8
	case VP9:
		return webrtc.MimeTypeVP9
	case H264:
		return webrtc.MimeTypeH264
	default:
		return ""
	}
}

// PayloadNameToCodecType maps an SDP payload name, or a "video/<name>" mime
// type, to a codec Type. Names that are not recognized map to Generic.
func PayloadNameToCodecType(name string) Type {
	switch {
	case strings.EqualFold(name, webrtc.MimeTypeVP8):
		return VP8
	case strings.EqualFold(name, webrtc.MimeTypeVP9):
		return VP9
	case strings.EqualFold(name, webrtc.MimeTypeH264):
		return H264
	}

	name = strings.TrimPrefix(strings.ToLower(name), "video/")
	for _, t := range []Type{VP8, VP9, H264, I420, RED, ULPFEC, Flexfec, Multiplex} {
		if strings.EqualFold(name, t.String()) {
			return t
		}
	}
	// stereo is the former name of the multiplex codec
	if name == "stereo" {
		return Multiplex
	}
	return Generic
}
