package main

import (
	"context"
	"encoding/binary"
	"flag"
	"fmt"
	"github.com/fernandosanchezjr/sungod/analytics"
	"github.com/fernandosanchezjr/sungod/backend/charting"
	url2 "github.com/fernandosanchezjr/sungod/backend/url"
	"github.com/fernandosanchezjr/sungod/bench"
	"github.com/fernandosanchezjr/sungod/config"
	"github.com/fernandosanchezjr/sungod/generators"
	"github.com/fernandosanchezjr/sungod/utils"
	"github.com/fernandosanchezjr/sungod/xorwow"
	log "github.com/sirupsen/logrus"
	"io"
	"math/big"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

type command func(cfg *config.Config, out io.Writer) error

var commands = map[string]command{
	"dump":        dump,
	"stream":      stream,
	"fingerprint": fingerprint,
	"analyze":     analyze,
	"chart":       chart,
	"bench":       runBench,
	"serve":       serve,
}

var (
	seedFlag     string
	widthFlag    int
	formatFlag   string
	countFlag    int
	signedFlag   bool
	limitFlag    uint64
	samplesFlag  int
	outFlag      string
	addrFlag     string
	sourcesFlag  string
	watchFlag    bool
	tlsFlag      bool
	logLevelFlag string
	logFileFlag  bool
)

func init() {
	flag.StringVar(&seedFlag, "seed", "", "seed (decimal or 0x hex); random when unset")
	flag.IntVar(&widthFlag, "width", 32, "sample width in bits: 1, 8, 16, 32, 64 or 128")
	flag.StringVar(&formatFlag, "format", config.FormatHex, "dump format: hex, dec or raw")
	flag.IntVar(&countFlag, "count", 16, "number of values to dump")
	flag.BoolVar(&signedFlag, "signed", signedFlag, "print dec values as signed integers")
	flag.Uint64Var(&limitFlag, "limit", 0, "bytes to stream or fingerprint, 0 streams until interrupted")
	flag.IntVar(&samplesFlag, "samples", 0, "words to analyze or values to benchmark")
	flag.StringVar(&outFlag, "out", "histogram.html", "chart output file")
	flag.StringVar(&addrFlag, "addr", "", "service listen address")
	flag.StringVar(&sourcesFlag, "sources", "", "comma separated benchmark sources: "+strings.Join(bench.Names(), ", "))
	flag.BoolVar(&tlsFlag, "tls", tlsFlag, "serve over https with a self-signed certificate")
	flag.BoolVar(&watchFlag, "watch", watchFlag, "reseed the stream when the config file changes")
	flag.StringVar(&logLevelFlag, "log-level", "info", "log level")
	flag.BoolVar(&logFileFlag, "log-file", logFileFlag, "also log to <home-folder>/logs/log.out")
}

func commandNames() string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cfg *config.Config) (err error) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			var seed uint64
			if seed, err = url2.ParseUint64(seedFlag); err == nil {
				cfg.Seed = &seed
			}
		case "width":
			cfg.Width = widthFlag
		case "format":
			cfg.Format = formatFlag
		case "count":
			cfg.Count = countFlag
		case "samples":
			cfg.Bench.Samples = samplesFlag
			cfg.Server.Samples = samplesFlag
		case "addr":
			cfg.Server.Address = addrFlag
		case "sources":
			cfg.Bench.Sources = strings.Split(sourcesFlag, ",")
		case "tls":
			cfg.Server.TLS = tlsFlag
		case "watch":
			cfg.Watch.Enabled = watchFlag
		case "log-level":
			cfg.LogLevel = logLevelFlag
		case "log-file":
			cfg.LogFile = logFileFlag
		}
	})
	if err != nil {
		return fmt.Errorf("invalid seed: %w", err)
	}
	return cfg.Validate()
}

// formatValue renders one sample of width bits. Values wider than 64 bits use hi.
func formatValue(cfg *config.Config, hi, lo uint64) []byte {
	switch cfg.Format {
	case config.FormatRaw:
		if cfg.Width == 1 {
			return []byte{byte(lo)}
		}
		raw := make([]byte, 16)
		binary.LittleEndian.PutUint64(raw, lo)
		binary.LittleEndian.PutUint64(raw[8:], hi)
		return raw[:cfg.Width/8]
	case config.FormatDec:
		return []byte(formatDecimal(cfg.Width, signedFlag, hi, lo) + "\n")
	}
	switch cfg.Width {
	case 1:
		return []byte(strconv.FormatUint(lo, 2) + "\n")
	case 32:
		return []byte(utils.Word32(lo).String() + "\n")
	case 64:
		return []byte(utils.Word64(lo).String() + "\n")
	case 128:
		return []byte(xorwow.Uint128{Lo: lo, Hi: hi}.String() + "\n")
	}
	return []byte(fmt.Sprintf("%0*x\n", cfg.Width/4, lo))
}

func formatDecimal(width int, signed bool, hi, lo uint64) string {
	if !signed || width == 1 {
		if width == 128 {
			v := new(big.Int).Lsh(new(big.Int).SetUint64(hi), 64)
			return v.Or(v, new(big.Int).SetUint64(lo)).String()
		}
		return strconv.FormatUint(lo, 10)
	}
	switch width {
	case 8:
		return strconv.FormatInt(int64(int8(lo)), 10)
	case 16:
		return strconv.FormatInt(int64(int16(lo)), 10)
	case 32:
		return strconv.FormatInt(int64(int32(lo)), 10)
	case 64:
		return strconv.FormatInt(int64(lo), 10)
	}
	v := new(big.Int).Lsh(big.NewInt(int64(hi)), 64)
	return v.Or(v, new(big.Int).SetUint64(lo)).String()
}

func sample(g *xorwow.Generator, width int) (hi, lo uint64) {
	switch width {
	case 1:
		if xorwow.Sample[bool](g) {
			lo = 1
		}
	case 8:
		lo = uint64(xorwow.Sample[uint8](g))
	case 16:
		lo = uint64(xorwow.Sample[uint16](g))
	case 32:
		lo = uint64(xorwow.Sample[uint32](g))
	case 64:
		lo = xorwow.Sample[uint64](g)
	case 128:
		v := xorwow.Sample[xorwow.Uint128](g)
		hi, lo = v.Hi, v.Lo
	}
	return
}

func dump(cfg *config.Config, out io.Writer) error {
	g := cfg.Generator()
	for i := 0; i < cfg.Count; i++ {
		hi, lo := sample(g, cfg.Width)
		if _, err := out.Write(formatValue(cfg, hi, lo)); err != nil {
			return err
		}
	}
	return nil
}

func stream(cfg *config.Config, out io.Writer) error {
	ctx, cancel := utils.SignalContext(context.Background())
	defer cancel()
	s := generators.NewStream(cfg.Generator(), out, generators.DefaultChunkSize, limitFlag)
	s.Start()
	if cfg.Watch.Enabled {
		watcher, err := utils.NewFileWatcher(config.Path(), cfg.Watch.Debounce, func() {
			reloaded, err := config.LoadConfig()
			if err != nil {
				log.WithError(err).Error("Could not reload config")
				return
			}
			if reloaded.Seed != nil {
				s.Reseed(*reloaded.Seed)
			}
		})
		if err != nil {
			s.Stop()
			return err
		}
		defer watcher.Close()
	}
	startTime := time.Now()
	select {
	case <-ctx.Done():
	case <-s.Done():
	}
	s.Stop()
	log.WithFields(log.Fields{
		"written": utils.Bytes(s.Written()),
		"rate":    utils.NewByteRate(s.Written(), time.Since(startTime)),
	}).Info("Stream finished")
	return s.Err()
}

func fingerprint(cfg *config.Config, out io.Writer) error {
	n := limitFlag
	if n == 0 {
		n = 1 << 20
	}
	digest, err := utils.Fingerprint(cfg.Generator(), int64(n))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s  %s\n", digest, utils.Bytes(n))
	return err
}

func analyze(cfg *config.Config, out io.Writer) error {
	report := analytics.Analyze(cfg.Generator(), cfg.Server.Samples)
	_, err := fmt.Fprintf(out,
		"samples: %d\nchi-square: %.4f\np-value: %.6f\nmean: %.4f\nstddev: %.4f\nmax bit bias: %.6f\nuniform(0.01): %v\n",
		report.Samples, report.ChiSquare, report.PValue, report.Mean, report.StdDev, report.MaxBitBias(),
		report.Uniform(0.01))
	if err != nil {
		return err
	}
	if step, found := analytics.CycleCheck(cfg.Generator(), 10000); found {
		return fmt.Errorf("register repeated after %d steps", step)
	}
	return nil
}

func chart(cfg *config.Config, _ io.Writer) error {
	report := analytics.Analyze(cfg.Generator(), cfg.Server.Samples)
	f, err := os.Create(outFlag)
	if err != nil {
		return err
	}
	if err = charting.RenderChart(f, report, "Byte histogram", false); err != nil {
		_ = f.Close()
		return err
	}
	log.WithField("path", outFlag).Info("Chart written")
	return f.Close()
}

func runBench(cfg *config.Config, out io.Writer) error {
	var seed uint64
	if cfg.Seed != nil {
		seed = *cfg.Seed
	} else {
		seed = xorwow.New().Uint64()
	}
	results, err := bench.Run(cfg.Bench.Sources, seed, cfg.Bench.Samples)
	if err != nil {
		return err
	}
	for _, result := range results {
		if _, err = fmt.Fprintf(out, "%-14s %12d %14s %14s\n",
			result.Name, result.Samples, result.Elapsed, result.Rate); err != nil {
			return err
		}
	}
	return nil
}

func serve(cfg *config.Config, _ io.Writer) error {
	ctx, cancel := utils.SignalContext(context.Background())
	defer cancel()
	service := charting.NewService(cfg.Server)
	errChan := make(chan error, 1)
	go func() {
		errChan <- service.Start()
	}()
	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	return service.Stop(shutdownCtx)
}
