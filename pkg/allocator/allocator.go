// Package allocator distributes a total send bitrate over the simulcast
// streams or spatial layers of a configured encoder, and over their
// temporal layers.
package allocator

import (
	"fmt"
	"strings"

	"github.com/pion/ion-vcodec/pkg/codec"
)

// Allocator splits a total bitrate, in bits per second, over the active
// streams of the codec it was built for.
type Allocator interface {
	Allocate(totalBitrateBps uint32) Allocation
}

// Allocation is a bitrate matrix in bps indexed by spatial (or simulcast)
// index, then temporal index.
type Allocation struct {
	bitrates [codec.MaxSpatialLayers][codec.MaxTemporalStreams]uint32
	used     [codec.MaxSpatialLayers][codec.MaxTemporalStreams]bool
}

// SetBitrate stores bps for the given layer. It returns false when the
// indexes are out of range.
func (a *Allocation) SetBitrate(spatial, temporal int, bps uint32) bool {
	if spatial < 0 || spatial >= codec.MaxSpatialLayers || temporal < 0 || temporal >= codec.MaxTemporalStreams {
		return false
	}
	a.bitrates[spatial][temporal] = bps
	a.used[spatial][temporal] = true
	return true
}

// GetBitrate returns the bitrate of one temporal layer.
func (a Allocation) GetBitrate(spatial, temporal int) uint32 {
	if spatial < 0 || spatial >= codec.MaxSpatialLayers || temporal < 0 || temporal >= codec.MaxTemporalStreams {
		return 0
	}
	return a.bitrates[spatial][temporal]
}

// IsSpatialLayerUsed reports whether any temporal layer of spatial was set.
func (a Allocation) IsSpatialLayerUsed(spatial int) bool {
	if spatial < 0 || spatial >= codec.MaxSpatialLayers {
		return false
	}
	for _, u := range a.used[spatial] {
		if u {
			return true
		}
	}
	return false
}

// GetSpatialLayerSum returns the bitrate of all temporal layers of spatial.
func (a Allocation) GetSpatialLayerSum(spatial int) uint32 {
	if spatial < 0 || spatial >= codec.MaxSpatialLayers {
		return 0
	}
	var sum uint32
	for _, b := range a.bitrates[spatial] {
		sum += b
	}
	return sum
}

// GetTemporalLayerAllocation returns the per temporal layer bitrates of
// spatial, up to the last layer that was set.
func (a Allocation) GetTemporalLayerAllocation(spatial int) []uint32 {
	if spatial < 0 || spatial >= codec.MaxSpatialLayers {
		return nil
	}
	last := -1
	for t, u := range a.used[spatial] {
		if u {
			last = t
		}
	}
	out := make([]uint32, last+1)
	copy(out, a.bitrates[spatial][:last+1])
	return out
}

// SumBps returns the total allocated bitrate.
func (a Allocation) SumBps() uint32 {
	var sum uint32
	for s := range a.bitrates {
		sum += a.GetSpatialLayerSum(s)
	}
	return sum
}

func (a Allocation) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "total=%dbps", a.SumBps())
	for s := 0; s < codec.MaxSpatialLayers; s++ {
		if !a.IsSpatialLayerUsed(s) {
			continue
		}
		fmt.Fprintf(&sb, " [%d]=%v", s, a.GetTemporalLayerAllocation(s))
	}
	return sb.String()
}

// temporalRatePercent is the cumulative share of a stream's bitrate given to
// temporal layers 0..i, by layer count.
var temporalRatePercent = [codec.MaxTemporalStreams][codec.MaxTemporalStreams]uint64{
	{100},
	{60, 100},
	{40, 60, 100},
	{25, 40, 60, 100},
}

// splitTemporal stores bps for spatial index s spread over numTemporal layers.
func (a *Allocation) splitTemporal(s int, numTemporal int, bps uint32) {
	if numTemporal < 1 {
		numTemporal = 1
	}
	if numTemporal > codec.MaxTemporalStreams {
		numTemporal = codec.MaxTemporalStreams
	}
	var assigned uint32
	for t := 0; t < numTemporal; t++ {
		cumulative := uint32(uint64(bps) * temporalRatePercent[numTemporal-1][t] / 100)
		a.SetBitrate(s, t, cumulative-assigned)
		assigned = cumulative
	}
}

// layerBounds is the bitrate range of one stream or layer in bps.
type layerBounds struct {
	index  int
	min    uint32
	target uint32
	max    uint32
}

// distribute walks layers in order. The first layer always receives its
// minimum; later layers are only enabled if their minimum fits. Remaining
// bitrate tops up the highest enabled layer towards its maximum.
func distribute(total uint32, layers []layerBounds) map[int]uint32 {
	out := make(map[int]uint32, len(layers))
	if len(layers) == 0 {
		return out
	}
	left := total
	top := -1
	for i, l := range layers {
		if i > 0 && left < l.min {
			break
		}
		alloc := l.target
		if left < alloc {
			alloc = left
		}
		if alloc < l.min {
			alloc = l.min
		}
		out[l.index] = alloc
		if alloc > left {
			left = 0
		} else {
			left -= alloc
		}
		top = i
	}
	if left > 0 {
		l := layers[top]
		headroom := l.max - out[l.index]
		if l.max < out[l.index] {
			headroom = 0
		}
		if left < headroom {
			headroom = left
		}
		out[l.index] += headroom
	}
	return out
}

func kbpsToBps(kbps int) uint32 {
	if kbps <= 0 {
		return 0
	}
	return uint32(kbps) * 1000
}
