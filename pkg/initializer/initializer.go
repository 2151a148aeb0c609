// Package initializer turns an application level encoder configuration into
// the codec specific configuration and bitrate allocator an encoder needs.
package initializer

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/pion/ion-vcodec/pkg/allocator"
	"github.com/pion/ion-vcodec/pkg/codec"
	"github.com/pion/ion-vcodec/pkg/encoder"
	"github.com/pion/ion-vcodec/pkg/logger"
	"github.com/pion/ion-vcodec/pkg/svc"
)

// Initializer sets up codecs. The zero value is not usable, use New.
type Initializer struct {
	logger    logr.Logger
	svcConfig svc.ConfigFunc
}

// Option configures an Initializer.
type Option func(*Initializer)

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(i *Initializer) {
		i.logger = l
	}
}

// WithSvcConfig replaces the VP9 spatial layer generator.
func WithSvcConfig(f svc.ConfigFunc) Option {
	return func(i *Initializer) {
		i.svcConfig = f
	}
}

// New returns an Initializer using svc.GetSvcConfig and the package logger.
func New(opts ...Option) *Initializer {
	i := &Initializer{
		logger:    logger.New("initializer"),
		svcConfig: svc.GetSvcConfig,
	}
	for _, o := range opts {
		o(i)
	}
	return i
}

// SetupCodec resolves the codec type of config, falling back to the payload
// name in settings, and returns the codec configuration for streams together
// with the bitrate allocator for it. The returned record is owned by the
// caller.
func (i *Initializer) SetupCodec(config encoder.VideoEncoderConfig, settings encoder.EncoderSettings,
	streams []encoder.VideoStream, nackEnabled bool) (codec.VideoCodec, allocator.Allocator, error) {
	vc, alloc, err := i.setupCodec(config, settings, streams, nackEnabled, 0)
	observeSetup(config.CodecType, settings, vc, err)
	return vc, alloc, err
}

func (i *Initializer) setupCodec(config encoder.VideoEncoderConfig, settings encoder.EncoderSettings,
	streams []encoder.VideoStream, nackEnabled bool, depth int) (codec.VideoCodec, allocator.Allocator, error) {
	codecType := config.CodecType
	if codecType == codec.Unknown {
		// TODO: drop the payload name fallback once every caller sets
		// VideoEncoderConfig.CodecType.
		codecType = codec.PayloadNameToCodecType(settings.PayloadName)
		i.logger.V(1).Info("codec type from payload", "name", settings.PayloadName,
			"payloadType", settings.PayloadType, "codec", codecType.String())
	}

	if codecType == codec.Multiplex {
		if depth > 0 {
			return codec.VideoCodec{}, nil, errNestedMultiplex
		}
		associated := config.Copy()
		associated.CodecType = codec.VP9
		vc, alloc, err := i.setupCodec(associated, encoder.EncoderSettings{}, streams, nackEnabled, depth+1)
		if err != nil {
			i.logger.Error(err, "Failed to create multiplex encoder configuration")
			return codec.VideoCodec{}, nil, fmt.Errorf("%w: %v", ErrMultiplexSetup, err)
		}
		vc.CodecType = codec.Multiplex
		return vc, alloc, nil
	}

	vc := i.VideoEncoderConfigToVideoCodec(config, streams, codecType, nackEnabled)
	return vc, CreateBitrateAllocator(vc), nil
}

// CreateBitrateAllocator returns the allocation strategy for c: simulcast
// for VP8, SVC for VP9 and a single stream allocator otherwise. The
// allocator keeps a copy of c.
func CreateBitrateAllocator(c codec.VideoCodec) allocator.Allocator {
	switch c.CodecType {
	case codec.VP8:
		return allocator.NewSimulcastAllocator(c)
	case codec.VP9:
		return allocator.NewSvcAllocator(c)
	default:
		return allocator.NewDefaultAllocator(c)
	}
}

// SetupCodec runs Initializer.SetupCodec on a default Initializer.
func SetupCodec(config encoder.VideoEncoderConfig, settings encoder.EncoderSettings,
	streams []encoder.VideoStream, nackEnabled bool) (codec.VideoCodec, allocator.Allocator, error) {
	return New().SetupCodec(config, settings, streams, nackEnabled)
}

// VideoEncoderConfigToVideoCodec runs the translation on a default Initializer.
func VideoEncoderConfigToVideoCodec(config encoder.VideoEncoderConfig, streams []encoder.VideoStream,
	codecType codec.Type, nackEnabled bool) codec.VideoCodec {
	return New().VideoEncoderConfigToVideoCodec(config, streams, codecType, nackEnabled)
}
