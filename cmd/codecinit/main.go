// Package main loads an encoder configuration file and prints the codec
// configuration and bitrate allocation it produces.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pion/ion-vcodec/pkg/codec"
	"github.com/pion/ion-vcodec/pkg/conf"
	"github.com/pion/ion-vcodec/pkg/initializer"
	"github.com/pion/ion-vcodec/pkg/logger"
)

var (
	file    string
	bitrate uint
)

func showHelp() {
	fmt.Printf("Usage:%s {params}\n", os.Args[0])
	fmt.Println("      -c {config file}")
	fmt.Println("      -b {total bitrate in bps to allocate, default: codec max}")
	fmt.Println("      -h (show help info)")
}

func parse() (conf.Config, bool) {
	flag.StringVar(&file, "c", "config.toml", "config file")
	flag.UintVar(&bitrate, "b", 0, "total bitrate in bps")
	help := flag.Bool("h", false, "help info")
	flag.Parse()

	if *help {
		return conf.Config{}, false
	}
	c, err := conf.Load(file)
	if err != nil {
		fmt.Printf("%v\n", err)
		return c, false
	}
	fmt.Printf("config %s load ok!\n", file)
	return c, true
}

func printCodec(vc codec.VideoCodec) {
	logger.Infof("codec: %s", vc)
	for i, s := range vc.SimulcastStreams {
		logger.Infof("  stream[%d]: %+v", i, s)
	}
	for i, l := range vc.SpatialLayers {
		logger.Infof("  spatial[%d]: %+v", i, l)
	}
	switch vc.SpecificsType() {
	case codec.VP8:
		logger.Infof("  vp8: %+v", *vc.VP8())
	case codec.VP9:
		logger.Infof("  vp9: %+v", *vc.VP9())
	case codec.H264:
		logger.Infof("  h264: %+v", *vc.H264())
	}
}

func main() {
	c, ok := parse()
	if !ok {
		showHelp()
		os.Exit(-1)
	}
	logger.Init(c.Log.Level)

	vc, alloc, err := initializer.SetupCodec(c.EncoderConfig(), c.EncoderSettings(), c.VideoStreams(), c.Encoder.Nack)
	if err != nil {
		logger.Errorf("codec setup failed: %v", err)
		os.Exit(1)
	}
	printCodec(vc)

	total := uint32(bitrate)
	if total == 0 {
		total = uint32(vc.MaxBitrate) * 1000
	}
	logger.Infof("allocation at %dbps: %s", total, alloc.Allocate(total))
}
