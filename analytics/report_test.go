package analytics

import (
	"github.com/fernandosanchezjr/sungod/xorwow"
	log "github.com/sirupsen/logrus"
	"math"
	"testing"
)

const testSamples = 1 << 20

type constantSource uint32

func (c constantSource) Next() uint32 {
	return uint32(c)
}

func TestAnalyze(t *testing.T) {
	r := Analyze(xorwow.NewSeeded(0x0123456789ABCDEF), testSamples)
	log.WithFields(log.Fields{
		"chiSquare": r.ChiSquare,
		"pValue":    r.PValue,
		"mean":      r.Mean,
		"bias":      r.MaxBitBias(),
	}).Println("Report")
	if math.Abs(r.ChiSquare-236.23486328125) > 1e-6 {
		t.Fatal("unexpected chi-square", r.ChiSquare)
	}
	if !r.Uniform(0.01) {
		t.Fatal("histogram failed chi-square", r.PValue)
	}
	if !r.WithinSigma(5) {
		t.Fatal("bucket outside 5 sigma")
	}
	if r.MaxBitBias() > 0.01 {
		t.Fatal("bit bias too large", r.MaxBitBias())
	}
	if math.Abs(r.Mean-127.5) > 1 {
		t.Fatal("unexpected mean", r.Mean)
	}
	var total uint64
	for _, count := range r.Histogram {
		total += count
	}
	if total != testSamples {
		t.Fatal("histogram total", total)
	}
}

func TestAnalyze_Degenerate(t *testing.T) {
	r := Analyze(constantSource(0x0f), 4096)
	if r.Uniform(0.01) || r.WithinSigma(5) {
		t.Fatal("constant source passed")
	}
	if r.MaxBitBias() != 0.5 {
		t.Fatal("unexpected bias", r.MaxBitBias())
	}
	if empty := Analyze(constantSource(0), 0); empty.Uniform(0.01) || empty.WithinSigma(5) {
		t.Fatal("empty report passed")
	}
}

func TestCycleCheck(t *testing.T) {
	if step, found := CycleCheck(xorwow.NewSeeded(0), 10000); found {
		t.Fatal("register repeated at step", step)
	}
}
