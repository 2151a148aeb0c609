package initializer

import (
	"github.com/pion/ion-vcodec/pkg/codec"
	"github.com/pion/ion-vcodec/pkg/encoder"
)

// VideoEncoderConfigToVideoCodec builds the normalized codec record for
// streams encoded as codecType. Malformed input is a programming error and
// panics with one of the precondition errors of this package.
func (i *Initializer) VideoEncoderConfigToVideoCodec(config encoder.VideoEncoderConfig,
	streams []encoder.VideoStream, codecType codec.Type, nackEnabled bool) codec.VideoCodec {
	check(len(streams) > 0, ErrInvalidStream, "no streams")
	check(config.MinTransmitBitrateBps >= 0, ErrInvalidConfig, "min transmit bitrate %d", config.MinTransmitBitrateBps)
	check(len(streams) <= codec.MaxSimulcastStreams, ErrTooManyStreams, "%d streams, max %d",
		len(streams), codec.MaxSimulcastStreams)

	vc := codec.NewVideoCodec(codecType)
	switch config.ContentType {
	case encoder.RealtimeVideo:
		vc.Mode = codec.RealtimeVideo
	case encoder.Screen:
		vc.Mode = codec.Screensharing
		if n := streams[0].NumTemporalLayers; n != nil && *n == 2 {
			vc.TargetBitrate = streams[0].TargetBitrateBps / 1000
		}
	}

	vc.NumberOfSimulcastStreams = len(streams)
	vc.MinBitrate = streams[0].MinBitrateBps / 1000
	for _, s := range streams {
		if s.Active {
			vc.Active = true
			break
		}
	}
	if vc.MinBitrate < codec.EncoderMinBitrateKbps {
		vc.MinBitrate = codec.EncoderMinBitrateKbps
	}

	for idx, s := range streams {
		checkStream(config, streams, idx)

		temporalLayers := 1
		if s.NumTemporalLayers != nil {
			temporalLayers = *s.NumTemporalLayers
		}
		vc.SetSimulcastStream(idx, codec.SimulcastStream{
			Width:                  s.Width,
			Height:                 s.Height,
			NumberOfTemporalLayers: temporalLayers,
			MinBitrate:             s.MinBitrateBps / 1000,
			TargetBitrate:          s.TargetBitrateBps / 1000,
			MaxBitrate:             s.MaxBitrateBps / 1000,
			QPMax:                  s.MaxQP,
			Active:                 s.Active,
		})

		vc.Width = maxInt(vc.Width, s.Width)
		vc.Height = maxInt(vc.Height, s.Height)
		vc.MinBitrate = minInt(vc.MinBitrate, s.MinBitrateBps/1000)
		// total budget over all simulcast streams
		vc.MaxBitrate += s.MaxBitrateBps / 1000
		vc.QPMax = maxInt(vc.QPMax, s.MaxQP)
	}
	// A stream below the encoder floor must not pull the aggregate under it.
	if vc.MinBitrate < codec.EncoderMinBitrateKbps {
		vc.MinBitrate = codec.EncoderMinBitrateKbps
	}

	if vc.MaxBitrate == 0 {
		// Unset max bitrate -> cap to one bit per pixel.
		vc.MaxBitrate = vc.Width * vc.Height * streams[0].MaxFramerate / 1000
	}
	if vc.MaxBitrate < codec.EncoderMinBitrateKbps {
		vc.MaxBitrate = codec.EncoderMinBitrateKbps
	}
	vc.MaxFramerate = streams[0].MaxFramerate

	settings := config.EncoderSpecificSettings
	if settings != nil {
		check(hasSpecifics(vc.CodecType), ErrUnsupportedSettings, "codec %s", vc.CodecType)
		settings.FillEncoderSpecificSettings(&vc)
	}

	switch vc.CodecType {
	case codec.VP8:
		i.finalizeVP8(&vc, settings != nil, streams, nackEnabled)
	case codec.VP9:
		i.finalizeVP9(&vc, config, streams, nackEnabled)
	case codec.H264:
		if settings == nil {
			vc.SetH264(codec.DefaultH264Settings())
		}
	}

	i.logger.V(1).Info("codec configured", "codec", vc.String())
	return vc
}

func checkStream(config encoder.VideoEncoderConfig, streams []encoder.VideoStream, idx int) {
	s := streams[idx]
	check(s.Width > 0 && s.Height > 0, ErrInvalidStream, "stream %d: size %dx%d", idx, s.Width, s.Height)
	check(s.MaxFramerate > 0, ErrInvalidStream, "stream %d: max framerate %d", idx, s.MaxFramerate)
	// Per stream framerates are only supported for screenshare, where a
	// simulcast encoder adapter is used.
	if config.ContentType != encoder.Screen {
		check(s.MaxFramerate == streams[0].MaxFramerate, ErrInvalidStream,
			"stream %d: max framerate %d differs from %d", idx, s.MaxFramerate, streams[0].MaxFramerate)
	}
	check(s.MinBitrateBps >= 0, ErrInvalidStream, "stream %d: min bitrate %d", idx, s.MinBitrateBps)
	check(s.TargetBitrateBps >= s.MinBitrateBps, ErrInvalidStream,
		"stream %d: target bitrate %d below min %d", idx, s.TargetBitrateBps, s.MinBitrateBps)
	check(s.MaxBitrateBps >= s.TargetBitrateBps, ErrInvalidStream,
		"stream %d: max bitrate %d below target %d", idx, s.MaxBitrateBps, s.TargetBitrateBps)
	check(s.MaxQP >= 0, ErrInvalidStream, "stream %d: max qp %d", idx, s.MaxQP)
}

func (i *Initializer) finalizeVP8(vc *codec.VideoCodec, explicit bool, streams []encoder.VideoStream, nackEnabled bool) {
	if !explicit {
		vc.SetVP8(codec.DefaultVP8Settings())
	}
	vp8 := vc.VP8()
	check(vp8 != nil, ErrUnsupportedSettings, "no VP8 settings filled in")

	if n := streams[len(streams)-1].NumTemporalLayers; n != nil {
		vp8.NumberOfTemporalLayers = *n
	}
	checkRange(vp8.NumberOfTemporalLayers, 1, codec.MaxTemporalStreams, ErrInvalidLayering, "VP8 temporal layers")

	if nackEnabled && vp8.NumberOfTemporalLayers == 1 {
		i.logger.Info("No temporal layers and nack enabled -> resilience off")
		vp8.Resilience = codec.ResilienceOff
	}
}

func (i *Initializer) finalizeVP9(vc *codec.VideoCodec, config encoder.VideoEncoderConfig,
	streams []encoder.VideoStream, nackEnabled bool) {
	explicit := config.EncoderSpecificSettings != nil
	if !explicit {
		vc.SetVP9(codec.DefaultVP9Settings())
	}
	vp9 := vc.VP9()
	check(vp9 != nil, ErrUnsupportedSettings, "no VP9 settings filled in")

	if n := streams[len(streams)-1].NumTemporalLayers; n != nil {
		vp9.NumberOfTemporalLayers = *n
	}
	checkRange(vp9.NumberOfTemporalLayers, 1, codec.MaxTemporalStreams, ErrInvalidLayering, "VP9 temporal layers")

	if vc.Mode == codec.Screensharing && explicit {
		vp9.FlexibleMode = true
		// VP9 screensharing uses 1 temporal and 2 spatial layers.
		check(vp9.NumberOfTemporalLayers == 1, ErrInvalidLayering,
			"VP9 screenshare temporal layers %d, want 1", vp9.NumberOfTemporalLayers)
		check(vp9.NumberOfSpatialLayers == 2, ErrInvalidLayering,
			"VP9 screenshare spatial layers %d, want 2", vp9.NumberOfSpatialLayers)
	} else {
		check(len(config.SpatialLayers) == 0 || len(config.SpatialLayers) == vp9.NumberOfSpatialLayers,
			ErrInvalidLayering, "%d explicit spatial layers, codec has %d",
			len(config.SpatialLayers), vp9.NumberOfSpatialLayers)

		layers := config.SpatialLayers
		if len(layers) == 0 {
			layers = i.svcConfig(vc.Width, vc.Height, vp9.NumberOfSpatialLayers, vp9.NumberOfTemporalLayers)
		}
		check(len(layers) > 0, ErrInvalidLayering, "no spatial layers")
		checkRange(len(layers), 1, codec.MaxSpatialLayers, ErrInvalidLayering, "VP9 spatial layers")
		for idx, l := range layers {
			vc.SetSpatialLayer(idx, l)
		}

		vp9.NumberOfSpatialLayers = len(layers)
		vp9.NumberOfTemporalLayers = layers[len(layers)-1].NumberOfTemporalLayers
		checkRange(vp9.NumberOfTemporalLayers, 1, codec.MaxTemporalStreams, ErrInvalidLayering, "VP9 temporal layers")
	}

	if nackEnabled && vp9.NumberOfTemporalLayers == 1 && vp9.NumberOfSpatialLayers == 1 {
		i.logger.Info("No temporal or spatial layers and nack enabled -> resilience off")
		vp9.ResilienceOn = false
	}
}

func hasSpecifics(t codec.Type) bool {
	switch t {
	case codec.VP8, codec.VP9, codec.H264:
		return true
	}
	return false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
