package allocator

import (
	"github.com/pion/ion-vcodec/pkg/codec"
)

// SvcAllocator allocates bitrate over VP9 spatial layers, lowest first.
type SvcAllocator struct {
	codec codec.VideoCodec
}

// NewSvcAllocator captures a copy of c.
func NewSvcAllocator(c codec.VideoCodec) *SvcAllocator {
	return &SvcAllocator{codec: c.Clone()}
}

// Allocate implements Allocator.
func (s *SvcAllocator) Allocate(totalBitrateBps uint32) Allocation {
	var a Allocation
	if !s.codec.Active || totalBitrateBps == 0 {
		return a
	}
	total := totalBitrateBps
	if maxBps := kbpsToBps(s.codec.MaxBitrate); maxBps > 0 && total > maxBps {
		total = maxBps
	}

	numSpatial := 1
	numTemporal := 1
	if vp9 := s.codec.VP9(); vp9 != nil {
		numSpatial = vp9.NumberOfSpatialLayers
		numTemporal = vp9.NumberOfTemporalLayers
	}
	if numSpatial > len(s.codec.SpatialLayers) {
		numSpatial = len(s.codec.SpatialLayers)
	}
	if numSpatial == 0 {
		if minBps := kbpsToBps(s.codec.MinBitrate); total < minBps {
			total = minBps
		}
		a.splitTemporal(0, numTemporal, total)
		return a
	}

	var layers []layerBounds
	for i, l := range s.codec.SpatialLayers[:numSpatial] {
		if !l.Active {
			continue
		}
		layers = append(layers, layerBounds{
			index:  i,
			min:    kbpsToBps(l.MinBitrate),
			target: kbpsToBps(l.TargetBitrate),
			max:    kbpsToBps(l.MaxBitrate),
		})
	}
	for i, bps := range distribute(total, layers) {
		a.splitTemporal(i, s.codec.SpatialLayers[i].NumberOfTemporalLayers, bps)
	}
	return a
}
