package initializer

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pion/ion-vcodec/pkg/allocator"
	"github.com/pion/ion-vcodec/pkg/codec"
	"github.com/pion/ion-vcodec/pkg/encoder"
)

func TestSetupCodecSelectsAllocator(t *testing.T) {
	tests := []struct {
		name      string
		codecType codec.Type
		payload   string
		wantType  codec.Type
		wantAlloc allocator.Allocator
	}{
		{name: "explicit VP8", codecType: codec.VP8, wantType: codec.VP8, wantAlloc: &allocator.SimulcastAllocator{}},
		{name: "explicit VP9", codecType: codec.VP9, wantType: codec.VP9, wantAlloc: &allocator.SvcAllocator{}},
		{name: "explicit H264", codecType: codec.H264, wantType: codec.H264, wantAlloc: &allocator.DefaultAllocator{}},
		{name: "payload name VP8", payload: "VP8", wantType: codec.VP8, wantAlloc: &allocator.SimulcastAllocator{}},
		{name: "payload mime VP9", payload: "video/VP9", wantType: codec.VP9, wantAlloc: &allocator.SvcAllocator{}},
		{name: "unknown payload is generic", payload: "AV1X", wantType: codec.Generic, wantAlloc: &allocator.DefaultAllocator{}},
		{name: "explicit type wins over payload", codecType: codec.H264, payload: "VP8", wantType: codec.H264, wantAlloc: &allocator.DefaultAllocator{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			config := encoder.VideoEncoderConfig{CodecType: tt.codecType}
			vc, alloc, err := SetupCodec(config, encoder.EncoderSettings{PayloadName: tt.payload},
				[]encoder.VideoStream{hdStream()}, false)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, vc.CodecType)
			assert.IsType(t, tt.wantAlloc, alloc)
		})
	}
}

func TestSetupCodecEmptyPayloadNameIsGeneric(t *testing.T) {
	vc, alloc, err := SetupCodec(encoder.VideoEncoderConfig{}, encoder.EncoderSettings{},
		[]encoder.VideoStream{hdStream()}, false)
	require.NoError(t, err)
	assert.Equal(t, codec.Generic, vc.CodecType)
	assert.IsType(t, &allocator.DefaultAllocator{}, alloc)
	assert.Equal(t, codec.Unknown, vc.SpecificsType())
	assert.Equal(t, 2500, vc.MaxBitrate)
}

func TestSetupCodecAllocatorMatchesCodec(t *testing.T) {
	vc, alloc, err := SetupCodec(encoder.VideoEncoderConfig{CodecType: codec.VP8}, encoder.EncoderSettings{},
		threeStreams(), false)
	require.NoError(t, err)

	// Lower streams stay at target, the top stream is filled to its max.
	a := alloc.Allocate(uint32(vc.MaxBitrate) * 1000)
	assert.Equal(t, uint32(150000), a.GetSpatialLayerSum(0))
	assert.Equal(t, uint32(300000), a.GetSpatialLayerSum(1))
	assert.Equal(t, uint32(600000), a.GetSpatialLayerSum(2))
	assert.LessOrEqual(t, a.SumBps(), uint32(vc.MaxBitrate)*1000)
}

func TestSetupCodecMultiplex(t *testing.T) {
	vp9 := codec.DefaultVP9Settings()
	vp9.NumberOfSpatialLayers = 2
	settings := encoder.NewVP9SpecificSettings(vp9)
	streams := []encoder.VideoStream{hdStream()}

	tests := []struct {
		name     string
		config   encoder.VideoEncoderConfig
		settings encoder.EncoderSettings
	}{
		{name: "codec type", config: encoder.VideoEncoderConfig{CodecType: codec.Multiplex}},
		{name: "codec type with settings", config: encoder.VideoEncoderConfig{CodecType: codec.Multiplex, EncoderSpecificSettings: settings}},
		{name: "payload name", settings: encoder.EncoderSettings{PayloadName: "multiplex"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			vc, alloc, err := SetupCodec(tt.config, tt.settings, streams, true)
			require.NoError(t, err)
			assert.Equal(t, codec.Multiplex, vc.CodecType)
			assert.IsType(t, &allocator.SvcAllocator{}, alloc)
			require.NotNil(t, vc.VP9())

			direct := tt.config
			direct.CodecType = codec.VP9
			want, _, err := SetupCodec(direct, encoder.EncoderSettings{}, streams, true)
			require.NoError(t, err)

			vc.CodecType = codec.VP9
			assert.Equal(t, want, vc)
		})
	}
}

func TestSetupCodecMultiplexDoesNotMutateConfig(t *testing.T) {
	config := encoder.VideoEncoderConfig{CodecType: codec.Multiplex}
	_, _, err := SetupCodec(config, encoder.EncoderSettings{}, []encoder.VideoStream{hdStream()}, false)
	require.NoError(t, err)
	assert.Equal(t, codec.Multiplex, config.CodecType)
}

func TestNestedMultiplexRejected(t *testing.T) {
	_, _, err := New().setupCodec(encoder.VideoEncoderConfig{CodecType: codec.Multiplex}, encoder.EncoderSettings{},
		[]encoder.VideoStream{hdStream()}, false, 1)
	assert.True(t, errors.Is(err, errNestedMultiplex))
}

func TestSetupCodecMetrics(t *testing.T) {
	okBefore := testutil.ToFloat64(setupTotal.WithLabelValues("H264", "ok"))
	genericBefore := testutil.ToFloat64(setupTotal.WithLabelValues("Generic", "ok"))
	errBefore := testutil.ToFloat64(setupTotal.WithLabelValues("Multiplex", "error"))

	_, _, err := SetupCodec(encoder.VideoEncoderConfig{CodecType: codec.H264}, encoder.EncoderSettings{},
		[]encoder.VideoStream{hdStream()}, false)
	require.NoError(t, err)
	_, _, err = SetupCodec(encoder.VideoEncoderConfig{}, encoder.EncoderSettings{},
		[]encoder.VideoStream{hdStream()}, false)
	require.NoError(t, err)
	observeSetup(codec.Multiplex, encoder.EncoderSettings{}, codec.VideoCodec{}, ErrMultiplexSetup)

	assert.Equal(t, okBefore+1, testutil.ToFloat64(setupTotal.WithLabelValues("H264", "ok")))
	assert.Equal(t, genericBefore+1, testutil.ToFloat64(setupTotal.WithLabelValues("Generic", "ok")))
	assert.Equal(t, errBefore+1, testutil.ToFloat64(setupTotal.WithLabelValues("Multiplex", "error")))

	families, err := Registry().Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "ion_vcodec_setup_total")
	assert.Contains(t, names, "ion_vcodec_max_bitrate_kbps")
}
