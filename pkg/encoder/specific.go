package encoder

import (
	"fmt"

	"github.com/pion/ion-vcodec/pkg/codec"
)

// VP8SpecificSettings fills VP8 records with fixed settings.
type VP8SpecificSettings struct {
	Specifics codec.VP8Settings
}

// NewVP8SpecificSettings returns a settings object for VP8 encoders.
func NewVP8SpecificSettings(s codec.VP8Settings) *VP8SpecificSettings {
	return &VP8SpecificSettings{Specifics: s}
}

// FillEncoderSpecificSettings implements SpecificSettings.
func (s *VP8SpecificSettings) FillEncoderSpecificSettings(c *codec.VideoCodec) {
	mustMatch(c, codec.VP8)
	c.SetVP8(s.Specifics)
}

// VP9SpecificSettings fills VP9 records with fixed settings.
type VP9SpecificSettings struct {
	Specifics codec.VP9Settings
}

// NewVP9SpecificSettings returns a settings object for VP9 encoders.
func NewVP9SpecificSettings(s codec.VP9Settings) *VP9SpecificSettings {
	return &VP9SpecificSettings{Specifics: s}
}

// FillEncoderSpecificSettings implements SpecificSettings.
func (s *VP9SpecificSettings) FillEncoderSpecificSettings(c *codec.VideoCodec) {
	mustMatch(c, codec.VP9)
	c.SetVP9(s.Specifics)
}

// H264SpecificSettings fills H264 records with fixed settings.
type H264SpecificSettings struct {
	Specifics codec.H264Settings
}

// NewH264SpecificSettings returns a settings object for H264 encoders.
func NewH264SpecificSettings(s codec.H264Settings) *H264SpecificSettings {
	return &H264SpecificSettings{Specifics: s}
}

// FillEncoderSpecificSettings implements SpecificSettings.
func (s *H264SpecificSettings) FillEncoderSpecificSettings(c *codec.VideoCodec) {
	mustMatch(c, codec.H264)
	c.SetH264(s.Specifics)
}

func mustMatch(c *codec.VideoCodec, want codec.Type) {
	if c.CodecType != want {
		panic(fmt.Errorf("%w: %s settings for a %s encoder", ErrSettingsMismatch, want, c.CodecType))
	}
}
