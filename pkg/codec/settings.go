package codec

// Complexity is the encoder CPU usage level.
type Complexity int

const (
	ComplexityNormal Complexity = iota
	ComplexityHigh
	ComplexityHigher
	ComplexityMax
)

// VP8Resilience selects VP8 error resilience.
type VP8Resilience int

const (
	ResilienceOff VP8Resilience = iota
	ResilientStream
	ResilientFrames
)

// H264Profile is the H264 profile the encoder produces.
type H264Profile int

const (
	ProfileConstrainedBaseline H264Profile = iota
	ProfileBaseline
	ProfileMain
	ProfileConstrainedHigh
	ProfileHigh
)

// VP8Settings are the VP8 specific encoder options.
type VP8Settings struct {
	Complexity             Complexity
	Resilience             VP8Resilience
	NumberOfTemporalLayers int
	DenoisingOn            bool
	AutomaticResizeOn      bool
	FrameDroppingOn        bool
	KeyFrameInterval       int
}

// VP9Settings are the VP9 specific encoder options.
type VP9Settings struct {
	Complexity             Complexity
	ResilienceOn           bool
	NumberOfTemporalLayers int
	DenoisingOn            bool
	FrameDroppingOn        bool
	KeyFrameInterval       int
	AdaptiveQpMode         bool
	AutomaticResizeOn      bool
	NumberOfSpatialLayers  int
	FlexibleMode           bool
}

// H264Settings are the H264 specific encoder options.
type H264Settings struct {
	FrameDroppingOn  bool
	KeyFrameInterval int
	Profile          H264Profile
}

// DefaultVP8Settings returns the built-in VP8 defaults.
func DefaultVP8Settings() VP8Settings {
	return VP8Settings{
		Complexity:             ComplexityNormal,
		Resilience:             ResilientStream,
		NumberOfTemporalLayers: 1,
		DenoisingOn:            true,
		AutomaticResizeOn:      false,
		FrameDroppingOn:        true,
		KeyFrameInterval:       3000,
	}
}

// DefaultVP9Settings returns the built-in VP9 defaults.
func DefaultVP9Settings() VP9Settings {
	return VP9Settings{
		Complexity:             ComplexityNormal,
		ResilienceOn:           true,
		NumberOfTemporalLayers: 1,
		DenoisingOn:            true,
		FrameDroppingOn:        true,
		KeyFrameInterval:       3000,
		AdaptiveQpMode:         true,
		AutomaticResizeOn:      true,
		NumberOfSpatialLayers:  1,
		FlexibleMode:           false,
	}
}

// DefaultH264Settings returns the built-in H264 defaults.
func DefaultH264Settings() H264Settings {
	return H264Settings{
		FrameDroppingOn:  true,
		KeyFrameInterval: 3000,
		Profile:          ProfileConstrainedBaseline,
	}
}
