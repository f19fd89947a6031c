package main

import (
	"flag"
	"fmt"
	"github.com/fernandosanchezjr/sungod/config"
	"github.com/fernandosanchezjr/sungod/logging"
	log "github.com/sirupsen/logrus"
	"os"
	"runtime/pprof"
	"runtime/trace"
)

var cpuProfile bool
var tracing bool

func init() {
	flag.BoolVar(&cpuProfile, "cpu-profile", cpuProfile, "enable cpu profiling")
	flag.BoolVar(&tracing, "trace", tracing, "enable tracing")
	flag.Usage = usage
}

func usage() {
	_, _ = fmt.Fprintf(flag.CommandLine.Output(), "usage: sungod [flags] <%s>\n", commandNames())
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	if err = applyFlags(cfg); err != nil {
		log.Fatal(err)
	}
	logging.SetupLogger(cfg.LogLevel, cfg.LogFile)
	if cpuProfile {
		f, err := os.Create("sungod.prof")
		if err != nil {
			panic(err)
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer pprof.StopCPUProfile()
	}
	if tracing {
		f, err := os.Create("sungod.trace")
		if err != nil {
			panic(err)
		}
		if err := trace.Start(f); err != nil {
			panic(err)
		}
		defer trace.Stop()
	}
	name := "dump"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}
	run, found := commands[name]
	if !found {
		usage()
		os.Exit(2)
	}
	if err = run(cfg, os.Stdout); err != nil {
		log.WithError(err).WithField("command", name).Error("Command failed")
		os.Exit(1)
	}
}
