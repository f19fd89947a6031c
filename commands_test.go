package main

import (
	"bytes"
	"github.com/fernandosanchezjr/sungod/config"
	"github.com/fernandosanchezjr/sungod/utils"
	"github.com/fernandosanchezjr/sungod/xorwow"
	"path"
	"strings"
	"testing"
)

const testSeed uint64 = 0x0123456789ABCDEF

func seededConfig(seed uint64, width int, format string, count int) *config.Config {
	cfg := config.Default()
	cfg.Seed = &seed
	cfg.Width = width
	cfg.Format = format
	cfg.Count = count
	return cfg
}

func runCommand(t *testing.T, c command, cfg *config.Config) string {
	var out bytes.Buffer
	if err := c(cfg, &out); err != nil {
		t.Fatal(err)
	}
	return out.String()
}

func TestDump_Hex(t *testing.T) {
	if out := runCommand(t, dump, seededConfig(testSeed, 8, config.FormatHex, 1)); out != "03\n" {
		t.Fatalf("unexpected uint8 dump %q", out)
	}
	if out := runCommand(t, dump, seededConfig(testSeed, 64, config.FormatHex, 1)); out != "6d1032d2c8dc0603\n" {
		t.Fatalf("unexpected uint64 dump %q", out)
	}
	out := runCommand(t, dump, seededConfig(testSeed, 128, config.FormatHex, 1))
	if expected := xorwow.NewSeeded(testSeed).Uint128().String() + "\n"; out != expected {
		t.Fatalf("unexpected uint128 dump %q, expected %q", out, expected)
	}
	if out := runCommand(t, dump, seededConfig(testSeed, 1, config.FormatHex, 4)); len(strings.Fields(out)) != 4 {
		t.Fatalf("unexpected bool dump %q", out)
	}
}

func TestDump_Dec(t *testing.T) {
	if out := runCommand(t, dump, seededConfig(0, 32, config.FormatDec, 1)); out != "901560272\n" {
		t.Fatalf("unexpected dec dump %q", out)
	}
	signedFlag = true
	defer func() { signedFlag = false }()
	if out := runCommand(t, dump, seededConfig(testSeed, 32, config.FormatDec, 1)); out != "-925104637\n" {
		t.Fatalf("unexpected signed dump %q", out)
	}
	if out := runCommand(t, dump, seededConfig(testSeed, 64, config.FormatDec, 1)); out != "7858837230655899139\n" {
		t.Fatalf("unexpected signed uint64 dump %q", out)
	}
}

func TestDump_Raw(t *testing.T) {
	out := runCommand(t, dump, seededConfig(testSeed, 64, config.FormatRaw, 2))
	g := xorwow.NewSeeded(testSeed)
	if !bytes.Equal([]byte(out), g.Bytes(16)) {
		t.Fatalf("raw dump %x does not match byte stream", out)
	}
}

func TestFormatDecimal_128(t *testing.T) {
	if s := formatDecimal(128, false, 1, 0); s != "18446744073709551616" {
		t.Fatal(s)
	}
	if s := formatDecimal(128, true, 0xffffffffffffffff, 0xffffffffffffffff); s != "-1" {
		t.Fatal(s)
	}
}

func TestFingerprint(t *testing.T) {
	limitFlag = 4096
	defer func() { limitFlag = 0 }()
	out := runCommand(t, fingerprint, seededConfig(testSeed, 32, config.FormatHex, 0))
	expected := utils.Sum(xorwow.NewSeeded(testSeed).Bytes(4096)).String()
	if !strings.HasPrefix(out, expected) {
		t.Fatalf("fingerprint %q, expected %s", out, expected)
	}
}

func TestStream_Limit(t *testing.T) {
	limitFlag = 1000
	defer func() { limitFlag = 0 }()
	out := runCommand(t, stream, seededConfig(testSeed, 32, config.FormatHex, 0))
	if !bytes.Equal([]byte(out), xorwow.NewSeeded(testSeed).Bytes(1000)) {
		t.Fatal("stream output does not match byte stream")
	}
}

func TestAnalyze(t *testing.T) {
	cfg := seededConfig(testSeed, 32, config.FormatHex, 0)
	cfg.Server.Samples = 1 << 16
	out := runCommand(t, analyze, cfg)
	if !strings.Contains(out, "samples: 65536") || !strings.Contains(out, "uniform(0.01): true") {
		t.Fatalf("unexpected analysis %q", out)
	}
}

func TestChart(t *testing.T) {
	outFlag = path.Join(t.TempDir(), "histogram.html")
	defer func() { outFlag = "histogram.html" }()
	cfg := seededConfig(testSeed, 32, config.FormatHex, 0)
	cfg.Server.Samples = 1024
	runCommand(t, chart, cfg)
}

func TestRunBench(t *testing.T) {
	cfg := seededConfig(testSeed, 32, config.FormatHex, 0)
	cfg.Bench.Samples = 256
	cfg.Bench.Sources = []string{"xorwow", "mt19937-64"}
	if out := runCommand(t, runBench, cfg); len(strings.Split(strings.TrimSpace(out), "\n")) != 2 {
		t.Fatalf("unexpected bench output %q", out)
	}
}
