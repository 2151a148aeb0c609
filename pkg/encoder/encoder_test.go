package encoder

import (
	"errors"
	"testing"

	"github.com/pion/ion-vcodec/pkg/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyOwnsSpatialLayers(t *testing.T) {
	cfg := VideoEncoderConfig{
		CodecType:     codec.VP9,
		SpatialLayers: []codec.SpatialLayer{{Width: 320, Height: 180}},
	}
	cp := cfg.Copy()
	cp.CodecType = codec.VP8
	cp.SpatialLayers[0].Width = 640

	assert.Equal(t, codec.VP9, cfg.CodecType)
	assert.Equal(t, 320, cfg.SpatialLayers[0].Width)
}

func TestSpecificSettingsFill(t *testing.T) {
	vp8 := codec.DefaultVP8Settings()
	vp8.NumberOfTemporalLayers = 3

	c := codec.NewVideoCodec(codec.VP8)
	NewVP8SpecificSettings(vp8).FillEncoderSpecificSettings(&c)
	require.NotNil(t, c.VP8())
	assert.Equal(t, 3, c.VP8().NumberOfTemporalLayers)

	c = codec.NewVideoCodec(codec.VP9)
	NewVP9SpecificSettings(codec.DefaultVP9Settings()).FillEncoderSpecificSettings(&c)
	assert.NotNil(t, c.VP9())

	c = codec.NewVideoCodec(codec.H264)
	NewH264SpecificSettings(codec.H264Settings{Profile: codec.ProfileHigh}).FillEncoderSpecificSettings(&c)
	require.NotNil(t, c.H264())
	assert.Equal(t, codec.ProfileHigh, c.H264().Profile)
}

func TestSpecificSettingsMismatchPanics(t *testing.T) {
	c := codec.NewVideoCodec(codec.H264)
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrSettingsMismatch))
	}()
	NewVP8SpecificSettings(codec.DefaultVP8Settings()).FillEncoderSpecificSettings(&c)
}

func TestTemporalLayers(t *testing.T) {
	s := VideoStream{NumTemporalLayers: TemporalLayers(2)}
	require.NotNil(t, s.NumTemporalLayers)
	assert.Equal(t, 2, *s.NumTemporalLayers)
}
