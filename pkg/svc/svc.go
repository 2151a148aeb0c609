// Package svc computes default VP9 spatial layer geometry and bitrates.
package svc

import (
	"fmt"
	"math"

	"github.com/pion/ion-vcodec/pkg/codec"
)

const (
	minVP9SvcBitrateKbps = 30
	// MinSpatialLayerWidth and MinSpatialLayerHeight bound the lowest layer.
	MinSpatialLayerWidth  = 320
	MinSpatialLayerHeight = 180
)

// ConfigFunc produces an ordered list of spatial layers, lowest first.
type ConfigFunc func(width, height, numSpatialLayers, numTemporalLayers int) []codec.SpatialLayer

// GetSvcConfig returns up to numSpatialLayers layers for a width x height
// input, each half the size of the next. The count is reduced so that the
// lowest layer stays at or above 320x180; at least one layer is returned.
func GetSvcConfig(width, height, numSpatialLayers, numTemporalLayers int) []codec.SpatialLayer {
	if width <= 0 || height <= 0 || numSpatialLayers <= 0 || numTemporalLayers <= 0 {
		panic(fmt.Errorf("%w: %dx%d, %d spatial, %d temporal", ErrInvalidInput,
			width, height, numSpatialLayers, numTemporalLayers))
	}

	fitHorz := layersThatFit(width, MinSpatialLayerWidth)
	fitVert := layersThatFit(height, MinSpatialLayerHeight)
	n := minInt(numSpatialLayers, minInt(fitHorz, fitVert))

	layers := make([]codec.SpatialLayer, 0, n)
	for i := 0; i < n; i++ {
		shift := uint(n - i - 1)
		l := codec.SpatialLayer{
			Width:                  width >> shift,
			Height:                 height >> shift,
			NumberOfTemporalLayers: numTemporalLayers,
			Active:                 true,
		}
		pixels := float64(l.Width * l.Height)
		// kbps, fitted to subjective quality data
		minBitrate := int((600*math.Sqrt(pixels) - 95000) / 1000)
		if minBitrate < minVP9SvcBitrateKbps {
			minBitrate = minVP9SvcBitrateKbps
		}
		l.MinBitrate = minBitrate
		l.MaxBitrate = int((1.6*pixels + 50*1000) / 1000)
		if l.MaxBitrate < l.MinBitrate {
			l.MaxBitrate = l.MinBitrate
		}
		l.TargetBitrate = (l.MinBitrate + l.MaxBitrate) / 2
		layers = append(layers, l)
	}
	return layers
}

func layersThatFit(size, minSize int) int {
	ratio := math.Log2(float64(size) / float64(minSize))
	return int(math.Floor(1 + math.Max(0, ratio)))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
