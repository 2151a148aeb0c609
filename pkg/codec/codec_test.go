package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadNameToCodecType(t *testing.T) {
	tests := []struct {
		name string
		want Type
	}{
		{name: "VP8", want: VP8},
		{name: "vp8", want: VP8},
		{name: "video/VP8", want: VP8},
		{name: "video/vp9", want: VP9},
		{name: "H264", want: H264},
		{name: "I420", want: I420},
		{name: "RED", want: RED},
		{name: "ulpfec", want: ULPFEC},
		{name: "flexfec-03", want: Flexfec},
		{name: "multiplex", want: Multiplex},
		{name: "stereo", want: Multiplex},
		{name: "AV1X", want: Generic},
		{name: "", want: Generic},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PayloadNameToCodecType(tt.name))
		})
	}
}

func TestTypeStringRoundTrip(t *testing.T) {
	for _, typ := range []Type{VP8, VP9, H264, I420, RED, ULPFEC, Flexfec, Multiplex} {
		assert.Equal(t, typ, PayloadNameToCodecType(typ.String()))
	}
	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "video/VP9", VP9.MimeType())
	assert.Empty(t, Multiplex.MimeType())
}

func TestSpecificsAreTagged(t *testing.T) {
	c := NewVideoCodec(VP8)
	assert.Equal(t, Unknown, c.SpecificsType())
	assert.Nil(t, c.VP8())

	c.SetVP8(DefaultVP8Settings())
	require.NotNil(t, c.VP8())
	assert.Nil(t, c.VP9())
	assert.Nil(t, c.H264())
	assert.Equal(t, VP8, c.SpecificsType())

	c.SetVP9(DefaultVP9Settings())
	assert.Nil(t, c.VP8())
	require.NotNil(t, c.VP9())
	assert.Equal(t, 1, c.VP9().NumberOfSpatialLayers)
}

func TestBoundedSequences(t *testing.T) {
	c := NewVideoCodec(VP8)
	c.SetSimulcastStream(2, SimulcastStream{Width: 640})
	assert.Len(t, c.SimulcastStreams, 3)
	assert.Equal(t, 640, c.SimulcastStreams[2].Width)

	assert.Panics(t, func() { c.SetSimulcastStream(MaxSimulcastStreams, SimulcastStream{}) })
	assert.Panics(t, func() { c.SetSpatialLayer(MaxSpatialLayers, SpatialLayer{}) })
	assert.Panics(t, func() { c.SetSpatialLayer(-1, SpatialLayer{}) })

	c.SetSpatialLayer(0, SpatialLayer{Width: 320})
	assert.Len(t, c.SpatialLayers, 1)
}

func TestCloneIsDeep(t *testing.T) {
	c := NewVideoCodec(VP9)
	c.SetVP9(DefaultVP9Settings())
	c.SetSpatialLayer(0, SpatialLayer{Width: 320})

	clone := c.Clone()
	assert.Equal(t, c, clone)

	clone.VP9().NumberOfTemporalLayers = 3
	clone.SpatialLayers[0].Width = 640
	assert.Equal(t, 1, c.VP9().NumberOfTemporalLayers)
	assert.Equal(t, 320, c.SpatialLayers[0].Width)
}
