// Package conf loads encoder configurations from TOML files.
package conf

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/pion/ion-vcodec/pkg/codec"
	"github.com/pion/ion-vcodec/pkg/encoder"
	"github.com/pion/ion-vcodec/pkg/logger"
)

// Config is the root of a configuration file.
type Config struct {
	Log           logger.Config        `mapstructure:"log"`
	Encoder       EncoderConfig        `mapstructure:"encoder"`
	Streams       []StreamConfig       `mapstructure:"stream"`
	SpatialLayers []SpatialLayerConfig `mapstructure:"spatiallayer"`
	VP8           *VP8Config           `mapstructure:"vp8"`
	VP9           *VP9Config           `mapstructure:"vp9"`
	H264          *H264Config          `mapstructure:"h264"`
}

// EncoderConfig is the [encoder] section. Bitrates are in bps.
type EncoderConfig struct {
	Codec              string `mapstructure:"codec"`
	PayloadName        string `mapstructure:"payloadname"`
	ContentType        string `mapstructure:"contenttype"`
	PayloadType        int    `mapstructure:"payloadtype"`
	MinTransmitBitrate int    `mapstructure:"mintransmitbitrate"`
	Nack               bool   `mapstructure:"nack"`
}

// StreamConfig is one [[stream]] entry. Bitrates are in bps, a zero
// temporallayers leaves the count to the codec.
type StreamConfig struct {
	Width          int   `mapstructure:"width"`
	Height         int   `mapstructure:"height"`
	MaxFramerate   int   `mapstructure:"maxframerate"`
	MinBitrate     int   `mapstructure:"minbitrate"`
	TargetBitrate  int   `mapstructure:"targetbitrate"`
	MaxBitrate     int   `mapstructure:"maxbitrate"`
	MaxQP          int   `mapstructure:"maxqp"`
	TemporalLayers int   `mapstructure:"temporallayers"`
	Active         *bool `mapstructure:"active"`
}

// SpatialLayerConfig is one [[spatiallayer]] entry. Bitrates are in kbps.
type SpatialLayerConfig struct {
	Width          int     `mapstructure:"width"`
	Height         int     `mapstructure:"height"`
	MaxFramerate   float64 `mapstructure:"maxframerate"`
	TemporalLayers int     `mapstructure:"temporallayers"`
	MinBitrate     int     `mapstructure:"minbitrate"`
	TargetBitrate  int     `mapstructure:"targetbitrate"`
	MaxBitrate     int     `mapstructure:"maxbitrate"`
	MaxQP          int     `mapstructure:"maxqp"`
}

// VP8Config overrides the built-in VP8 defaults.
type VP8Config struct {
	TemporalLayers   int    `mapstructure:"temporallayers"`
	Resilience       string `mapstructure:"resilience"`
	Denoising        *bool  `mapstructure:"denoising"`
	AutomaticResize  *bool  `mapstructure:"automaticresize"`
	FrameDropping    *bool  `mapstructure:"framedropping"`
	KeyFrameInterval int    `mapstructure:"keyframeinterval"`
}

// VP9Config overrides the built-in VP9 defaults.
type VP9Config struct {
	SpatialLayers    int   `mapstructure:"spatiallayers"`
	TemporalLayers   int   `mapstructure:"temporallayers"`
	Resilience       *bool `mapstructure:"resilience"`
	Denoising        *bool `mapstructure:"denoising"`
	FrameDropping    *bool `mapstructure:"framedropping"`
	AdaptiveQp       *bool `mapstructure:"adaptiveqp"`
	AutomaticResize  *bool `mapstructure:"automaticresize"`
	FlexibleMode     bool  `mapstructure:"flexiblemode"`
	KeyFrameInterval int   `mapstructure:"keyframeinterval"`
}

// H264Config overrides the built-in H264 defaults.
type H264Config struct {
	Profile          string `mapstructure:"profile"`
	FrameDropping    *bool  `mapstructure:"framedropping"`
	KeyFrameInterval int    `mapstructure:"keyframeinterval"`
}

// Load reads and validates a TOML configuration file.
func Load(file string) (Config, error) {
	c := Config{}
	if _, err := os.Stat(file); err != nil {
		return c, fmt.Errorf("config file %s: %w", file, err)
	}

	v := viper.New()
	v.SetConfigFile(file)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return c, fmt.Errorf("config file %s read failed: %w", file, err)
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("config file %s unmarshal failed: %w", file, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config file %s: %w", file, err)
	}
	return c, nil
}

// Validate checks the structure of the configuration. Value level checks on
// streams are left to the initializer.
func (c Config) Validate() error {
	if len(c.Streams) == 0 {
		return fmt.Errorf("%w: at least one [[stream]] is required", ErrInvalidConfig)
	}
	if len(c.Streams) > codec.MaxSimulcastStreams {
		return fmt.Errorf("%w: %d streams, max %d", ErrInvalidConfig, len(c.Streams), codec.MaxSimulcastStreams)
	}
	if len(c.SpatialLayers) > codec.MaxSpatialLayers {
		return fmt.Errorf("%w: %d spatial layers, max %d", ErrInvalidConfig, len(c.SpatialLayers), codec.MaxSpatialLayers)
	}
	if _, err := parseContentType(c.Encoder.ContentType); err != nil {
		return err
	}
	if c.Encoder.Codec == "" && c.Encoder.PayloadName == "" {
		return fmt.Errorf("%w: one of encoder.codec or encoder.payloadname is required", ErrInvalidConfig)
	}

	tables := 0
	for _, set := range []bool{c.VP8 != nil, c.VP9 != nil, c.H264 != nil} {
		if set {
			tables++
		}
	}
	if tables > 1 {
		return fmt.Errorf("%w: only one of [vp8], [vp9], [h264] may be set", ErrInvalidConfig)
	}

	// VP9 settings also apply to multiplex, which is encoded as VP9.
	resolved := c.codecType()
	switch {
	case c.VP8 != nil && resolved != codec.VP8,
		c.VP9 != nil && resolved != codec.VP9 && resolved != codec.Multiplex,
		c.H264 != nil && resolved != codec.H264:
		return fmt.Errorf("%w: codec specific table does not match codec %s", ErrInvalidConfig, resolved)
	}

	if c.VP8 != nil {
		if _, err := parseResilience(c.VP8.Resilience); err != nil {
			return err
		}
	}
	if c.H264 != nil {
		if _, err := parseProfile(c.H264.Profile); err != nil {
			return err
		}
	}
	return nil
}

func (c Config) codecType() codec.Type {
	if c.Encoder.Codec != "" {
		return codec.PayloadNameToCodecType(c.Encoder.Codec)
	}
	return codec.PayloadNameToCodecType(c.Encoder.PayloadName)
}

// EncoderConfig converts the file into the application level encoder config.
func (c Config) EncoderConfig() encoder.VideoEncoderConfig {
	contentType, _ := parseContentType(c.Encoder.ContentType)
	out := encoder.VideoEncoderConfig{
		ContentType:           contentType,
		MinTransmitBitrateBps: c.Encoder.MinTransmitBitrate,
	}
	if c.Encoder.Codec != "" {
		out.CodecType = codec.PayloadNameToCodecType(c.Encoder.Codec)
	}
	for _, l := range c.SpatialLayers {
		out.SpatialLayers = append(out.SpatialLayers, codec.SpatialLayer{
			Width:                  l.Width,
			Height:                 l.Height,
			MaxFramerate:           l.MaxFramerate,
			NumberOfTemporalLayers: l.TemporalLayers,
			MinBitrate:             l.MinBitrate,
			TargetBitrate:          l.TargetBitrate,
			MaxBitrate:             l.MaxBitrate,
			QPMax:                  l.MaxQP,
			Active:                 true,
		})
	}

	switch {
	case c.VP8 != nil:
		out.EncoderSpecificSettings = encoder.NewVP8SpecificSettings(c.VP8.settings())
	case c.VP9 != nil:
		out.EncoderSpecificSettings = encoder.NewVP9SpecificSettings(c.VP9.settings())
	case c.H264 != nil:
		out.EncoderSpecificSettings = encoder.NewH264SpecificSettings(c.H264.settings())
	}
	return out
}

// EncoderSettings returns the payload hint used when no codec is set.
func (c Config) EncoderSettings() encoder.EncoderSettings {
	return encoder.EncoderSettings{PayloadName: c.Encoder.PayloadName, PayloadType: c.Encoder.PayloadType}
}

// VideoStreams converts the [[stream]] entries. Streams are active unless
// they set active = false.
func (c Config) VideoStreams() []encoder.VideoStream {
	out := make([]encoder.VideoStream, 0, len(c.Streams))
	for _, s := range c.Streams {
		vs := encoder.VideoStream{
			Width:            s.Width,
			Height:           s.Height,
			MaxFramerate:     s.MaxFramerate,
			MinBitrateBps:    s.MinBitrate,
			TargetBitrateBps: s.TargetBitrate,
			MaxBitrateBps:    s.MaxBitrate,
			MaxQP:            s.MaxQP,
			Active:           s.Active == nil || *s.Active,
		}
		if s.TemporalLayers > 0 {
			vs.NumTemporalLayers = encoder.TemporalLayers(s.TemporalLayers)
		}
		out = append(out, vs)
	}
	return out
}

func (v *VP8Config) settings() codec.VP8Settings {
	s := codec.DefaultVP8Settings()
	if v.TemporalLayers > 0 {
		s.NumberOfTemporalLayers = v.TemporalLayers
	}
	if v.Resilience != "" {
		s.Resilience, _ = parseResilience(v.Resilience)
	}
	setBool(&s.DenoisingOn, v.Denoising)
	setBool(&s.AutomaticResizeOn, v.AutomaticResize)
	setBool(&s.FrameDroppingOn, v.FrameDropping)
	if v.KeyFrameInterval > 0 {
		s.KeyFrameInterval = v.KeyFrameInterval
	}
	return s
}

func (v *VP9Config) settings() codec.VP9Settings {
	s := codec.DefaultVP9Settings()
	if v.SpatialLayers > 0 {
		s.NumberOfSpatialLayers = v.SpatialLayers
	}
	if v.TemporalLayers > 0 {
		s.NumberOfTemporalLayers = v.TemporalLayers
	}
	setBool(&s.ResilienceOn, v.Resilience)
	setBool(&s.DenoisingOn, v.Denoising)
	setBool(&s.FrameDroppingOn, v.FrameDropping)
	setBool(&s.AdaptiveQpMode, v.AdaptiveQp)
	setBool(&s.AutomaticResizeOn, v.AutomaticResize)
	s.FlexibleMode = v.FlexibleMode
	if v.KeyFrameInterval > 0 {
		s.KeyFrameInterval = v.KeyFrameInterval
	}
	return s
}

func (h *H264Config) settings() codec.H264Settings {
	s := codec.DefaultH264Settings()
	if h.Profile != "" {
		s.Profile, _ = parseProfile(h.Profile)
	}
	setBool(&s.FrameDroppingOn, h.FrameDropping)
	if h.KeyFrameInterval > 0 {
		s.KeyFrameInterval = h.KeyFrameInterval
	}
	return s
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func parseContentType(s string) (encoder.ContentType, error) {
	switch strings.ToLower(s) {
	case "", "realtime":
		return encoder.RealtimeVideo, nil
	case "screen", "screenshare":
		return encoder.Screen, nil
	}
	return encoder.RealtimeVideo, fmt.Errorf("%w: unknown content type %q", ErrInvalidConfig, s)
}

func parseResilience(s string) (codec.VP8Resilience, error) {
	switch strings.ToLower(s) {
	case "", "stream":
		return codec.ResilientStream, nil
	case "off":
		return codec.ResilienceOff, nil
	case "frames":
		return codec.ResilientFrames, nil
	}
	return codec.ResilientStream, fmt.Errorf("%w: unknown vp8 resilience %q", ErrInvalidConfig, s)
}

func parseProfile(s string) (codec.H264Profile, error) {
	switch strings.ToLower(s) {
	case "", "constrainedbaseline":
		return codec.ProfileConstrainedBaseline, nil
	case "baseline":
		return codec.ProfileBaseline, nil
	case "main":
		return codec.ProfileMain, nil
	case "constrainedhigh":
		return codec.ProfileConstrainedHigh, nil
	case "high":
		return codec.ProfileHigh, nil
	}
	return codec.ProfileConstrainedBaseline, fmt.Errorf("%w: unknown h264 profile %q", ErrInvalidConfig, s)
}
