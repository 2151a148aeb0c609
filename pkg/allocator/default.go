package allocator

import (
	"github.com/pion/ion-vcodec/pkg/codec"
)

// DefaultAllocator gives the whole bitrate, clamped to the codec bounds, to
// a single stream.
type DefaultAllocator struct {
	codec codec.VideoCodec
}

// NewDefaultAllocator captures a copy of c.
func NewDefaultAllocator(c codec.VideoCodec) *DefaultAllocator {
	return &DefaultAllocator{codec: c.Clone()}
}

// Allocate implements Allocator.
func (d *DefaultAllocator) Allocate(totalBitrateBps uint32) Allocation {
	var a Allocation
	if !d.codec.Active || totalBitrateBps == 0 {
		return a
	}
	bps := totalBitrateBps
	if minBps := kbpsToBps(d.codec.MinBitrate); bps < minBps {
		bps = minBps
	}
	if maxBps := kbpsToBps(d.codec.MaxBitrate); maxBps > 0 && bps > maxBps {
		bps = maxBps
	}
	a.SetBitrate(0, 0, bps)
	return a
}
