// Command wmediumd simulates an 802.11 shared medium between virtual
// radios registered with the host kernel's mac80211_hwsim module.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	apexlog "github.com/apex/log"
	"github.com/spf13/pflag"

	"github.com/go-wmediumd/wmediumd"
)

// version is the wmediumd release this binary identifies as.
const version = "0.1.0"

func usage() {
	fmt.Fprintf(os.Stderr, "usage: wmediumd [-h] [-V] [-c FILE] [-o FILE] [-v] [-l LEVEL]\n\n")
	pflag.PrintDefaults()
}

func main() {
	configPath := pflag.StringP("config", "c", "", "path to the station/SNR configuration file")
	outputPath := pflag.StringP("output", "o", "", "write a starting-point configuration skeleton to FILE and exit")
	verbose := pflag.BoolP("verbose", "v", false, "dissect and log every delivered frame")
	level := pflag.StringP("level", "l", "info", "log level: debug, info, warn")
	showVersion := pflag.BoolP("version", "V", false, "print the version and exit")
	help := pflag.BoolP("help", "h", false, "show this help text and exit")
	pflag.Usage = usage
	pflag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}
	if *showVersion {
		fmt.Printf("wmediumd %s\n", version)
		os.Exit(0)
	}
	if *outputPath != "" {
		wmediumd.Must0(wmediumd.WriteSkeletonConfig(*outputPath))
		os.Exit(0)
	}
	if *configPath == "" {
		usage()
		os.Exit(2)
	}

	apexlog.SetLevel(parseLevel(*level))
	logger := wmediumd.NewApexLogger(apexlog.Log)

	cfg := wmediumd.Must1(wmediumd.LoadConfig(*configPath))

	transport, err := wmediumd.NewGenetlinkTransport(logger)
	if err != nil {
		logger.Warnf("wmediumd: %s", err.Error())
		os.Exit(1)
	}
	defer transport.Close()

	metrics := wmediumd.NewMetrics(nil)
	engine := wmediumd.NewEngine(transport, nil, nil, nil, logger)
	engine.Metrics = metrics
	engine.Stats = wmediumd.NewSendTimeStats()

	snr := wmediumd.Must1(cfg.Apply(engine))
	if snr != nil {
		engine.SNR = snr
	}
	engine.Verbose = *verbose

	logger.Infof("wmediumd: no error model configured, all frames succeed")

	wmediumd.Must0(transport.Register())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Infof("wmediumd: shutting down")
		cancel()
	}()

	if err := engine.Run(ctx); err != nil && err != context.Canceled {
		logger.Warnf("wmediumd: %s", err.Error())
		os.Exit(1)
	}
}

func parseLevel(s string) apexlog.Level {
	switch s {
	case "debug":
		return apexlog.DebugLevel
	case "warn":
		return apexlog.WarnLevel
	default:
		return apexlog.InfoLevel
	}
}
