package codec

import "fmt"

// Mode is the encoder operating mode.
type Mode int

const (
	RealtimeVideo Mode = iota
	Screensharing
)

func (m Mode) String() string {
	if m == Screensharing {
		return "screensharing"
	}
	return "realtime"
}

// TimingFrameThresholds controls when frames get timing information attached.
type TimingFrameThresholds struct {
	DelayMs             int64
	OutlierRatioPercent uint16
}

// SimulcastStream describes one simulcast output stream. Bitrates are in kbps.
type SimulcastStream struct {
	Width                  int
	Height                 int
	NumberOfTemporalLayers int
	MaxBitrate             int
	TargetBitrate          int
	MinBitrate             int
	QPMax                  int
	Active                 bool
}

// SpatialLayer describes one SVC spatial layer. Bitrates are in kbps.
type SpatialLayer struct {
	Width                  int
	Height                 int
	MaxFramerate           float64
	NumberOfTemporalLayers int
	MaxBitrate             int
	TargetBitrate          int
	MinBitrate             int
	QPMax                  int
	Active                 bool
}

// VideoCodec is the normalized configuration handed to a video encoder.
// Bitrates are in kbps.
type VideoCodec struct {
	CodecType Type
	Mode      Mode

	Width  int
	Height int

	StartBitrate  int
	MaxBitrate    int
	MinBitrate    int
	TargetBitrate int

	MaxFramerate int
	QPMax        int

	NumberOfSimulcastStreams int
	SimulcastStreams         []SimulcastStream
	SpatialLayers            []SpatialLayer

	// Active is false when every simulcast stream is inactive.
	Active bool

	TimingFrameThresholds   TimingFrameThresholds
	ExpectEncodeFromTexture bool

	specifics specifics
}

// NewVideoCodec returns a record of the given type with default timing
// frame thresholds and no codec specific settings.
func NewVideoCodec(t Type) VideoCodec {
	return VideoCodec{
		CodecType: t,
		TimingFrameThresholds: TimingFrameThresholds{
			DelayMs:             defaultTimingFramesDelayMs,
			OutlierRatioPercent: defaultOutlierFrameSizePercent,
		},
	}
}

// SetSimulcastStream stores s at index i, growing the sequence as needed.
// It panics when i is outside [0, MaxSimulcastStreams).
func (c *VideoCodec) SetSimulcastStream(i int, s SimulcastStream) {
	if i < 0 || i >= MaxSimulcastStreams {
		panic(fmt.Errorf("%w: simulcast stream index %d, max %d", ErrCapacityExceeded, i, MaxSimulcastStreams))
	}
	for len(c.SimulcastStreams) <= i {
		c.SimulcastStreams = append(c.SimulcastStreams, SimulcastStream{})
	}
	c.SimulcastStreams[i] = s
}

// SetSpatialLayer stores l at index i, growing the sequence as needed.
// It panics when i is outside [0, MaxSpatialLayers).
func (c *VideoCodec) SetSpatialLayer(i int, l SpatialLayer) {
	if i < 0 || i >= MaxSpatialLayers {
		panic(fmt.Errorf("%w: spatial layer index %d, max %d", ErrCapacityExceeded, i, MaxSpatialLayers))
	}
	for len(c.SpatialLayers) <= i {
		c.SpatialLayers = append(c.SpatialLayers, SpatialLayer{})
	}
	c.SpatialLayers[i] = l
}

// Clone returns a deep copy of c.
func (c VideoCodec) Clone() VideoCodec {
	out := c
	if c.SimulcastStreams != nil {
		out.SimulcastStreams = append([]SimulcastStream(nil), c.SimulcastStreams...)
	}
	if c.SpatialLayers != nil {
		out.SpatialLayers = append([]SpatialLayer(nil), c.SpatialLayers...)
	}
	if c.specifics != nil {
		out.specifics = c.specifics.clone()
	}
	return out
}

func (c VideoCodec) String() string {
	return fmt.Sprintf("%s %s %dx%d@%dfps bitrate=[%d,%d]kbps streams=%d layers=%d active=%t",
		c.CodecType, c.Mode, c.Width, c.Height, c.MaxFramerate, c.MinBitrate, c.MaxBitrate,
		c.NumberOfSimulcastStreams, len(c.SpatialLayers), c.Active)
}
