package initializer

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pion/ion-vcodec/pkg/codec"
	"github.com/pion/ion-vcodec/pkg/encoder"
)

var (
	registry = prometheus.NewRegistry()

	setupTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ion_vcodec",
		Name:      "setup_total",
		Help:      "Codec setups by resolved codec and result.",
	}, []string{"codec", "result"})

	maxBitrateKbps = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "ion_vcodec",
		Name:      "max_bitrate_kbps",
		Help:      "Aggregate max bitrate of configured codecs.",
		Buckets:   prometheus.ExponentialBuckets(codec.EncoderMinBitrateKbps, 2, 12),
	}, []string{"codec"})
)

func init() {
	registry.MustRegister(setupTotal, maxBitrateKbps)
}

// Registry returns the registry holding the setup metrics.
func Registry() *prometheus.Registry {
	return registry
}

func observeSetup(requested codec.Type, settings encoder.EncoderSettings, vc codec.VideoCodec, err error) {
	if err != nil {
		name := requested.String()
		if requested == codec.Unknown && settings.PayloadName != "" {
			name = codec.PayloadNameToCodecType(settings.PayloadName).String()
		}
		setupTotal.WithLabelValues(name, "error").Inc()
		return
	}
	setupTotal.WithLabelValues(vc.CodecType.String(), "ok").Inc()
	maxBitrateKbps.WithLabelValues(vc.CodecType.String()).Observe(float64(vc.MaxBitrate))
}
