package svc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSvcConfigLayerCount(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		spatial       int
		wantLayers    int
	}{
		{name: "720p fits three", width: 1280, height: 720, spatial: 3, wantLayers: 3},
		{name: "720p capped by request", width: 1280, height: 720, spatial: 2, wantLayers: 2},
		{name: "360p fits two", width: 640, height: 360, spatial: 3, wantLayers: 2},
		{name: "tiny input keeps one", width: 160, height: 90, spatial: 3, wantLayers: 1},
		{name: "height limits", width: 1280, height: 200, spatial: 3, wantLayers: 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			layers := GetSvcConfig(tt.width, tt.height, tt.spatial, 2)
			require.Len(t, layers, tt.wantLayers)
			top := layers[len(layers)-1]
			assert.Equal(t, tt.width, top.Width)
			assert.Equal(t, tt.height, top.Height)
		})
	}
}

func TestGetSvcConfigGeometry(t *testing.T) {
	layers := GetSvcConfig(1280, 720, 3, 3)
	require.Len(t, layers, 3)

	assert.Equal(t, 320, layers[0].Width)
	assert.Equal(t, 180, layers[0].Height)
	assert.Equal(t, 640, layers[1].Width)
	assert.Equal(t, 360, layers[1].Height)

	for i, l := range layers {
		assert.Equal(t, 3, l.NumberOfTemporalLayers)
		assert.True(t, l.Active)
		assert.GreaterOrEqual(t, l.MinBitrate, minVP9SvcBitrateKbps)
		assert.LessOrEqual(t, l.MinBitrate, l.TargetBitrate)
		assert.LessOrEqual(t, l.TargetBitrate, l.MaxBitrate)
		if i > 0 {
			assert.Greater(t, l.MaxBitrate, layers[i-1].MaxBitrate)
		}
	}

	// 320x180: min = (600*240-95000)/1000 = 49, max = (1.6*57600+50000)/1000 = 142
	assert.Equal(t, 49, layers[0].MinBitrate)
	assert.Equal(t, 142, layers[0].MaxBitrate)
	assert.Equal(t, 95, layers[0].TargetBitrate)
}

func TestGetSvcConfigInvalidInput(t *testing.T) {
	assert.Panics(t, func() { GetSvcConfig(0, 720, 1, 1) })
	assert.Panics(t, func() { GetSvcConfig(1280, 720, 0, 1) })
	assert.Panics(t, func() { GetSvcConfig(1280, 720, 1, 0) })
}
