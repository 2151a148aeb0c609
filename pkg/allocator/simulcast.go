package allocator

import (
	"github.com/pion/ion-vcodec/pkg/codec"
)

// SimulcastAllocator allocates bitrate over simulcast streams, lowest
// first, and over the temporal layers of each stream.
type SimulcastAllocator struct {
	codec codec.VideoCodec
}

// NewSimulcastAllocator captures a copy of c.
func NewSimulcastAllocator(c codec.VideoCodec) *SimulcastAllocator {
	return &SimulcastAllocator{codec: c.Clone()}
}

// Allocate implements Allocator.
func (s *SimulcastAllocator) Allocate(totalBitrateBps uint32) Allocation {
	var a Allocation
	if !s.codec.Active || totalBitrateBps == 0 {
		return a
	}
	total := totalBitrateBps
	if maxBps := kbpsToBps(s.codec.MaxBitrate); maxBps > 0 && total > maxBps {
		total = maxBps
	}

	if s.codec.NumberOfSimulcastStreams <= 1 {
		if minBps := kbpsToBps(s.codec.MinBitrate); total < minBps {
			total = minBps
		}
		a.splitTemporal(0, s.singleStreamTemporalLayers(), total)
		return a
	}

	var layers []layerBounds
	for i, st := range s.codec.SimulcastStreams {
		if i >= s.codec.NumberOfSimulcastStreams || !st.Active {
			continue
		}
		layers = append(layers, layerBounds{
			index:  i,
			min:    kbpsToBps(st.MinBitrate),
			target: kbpsToBps(st.TargetBitrate),
			max:    kbpsToBps(st.MaxBitrate),
		})
	}
	for i, bps := range distribute(total, layers) {
		a.splitTemporal(i, s.codec.SimulcastStreams[i].NumberOfTemporalLayers, bps)
	}
	return a
}

func (s *SimulcastAllocator) singleStreamTemporalLayers() int {
	if vp8 := s.codec.VP8(); vp8 != nil {
		return vp8.NumberOfTemporalLayers
	}
	if len(s.codec.SimulcastStreams) > 0 {
		return s.codec.SimulcastStreams[0].NumberOfTemporalLayers
	}
	return 1
}
