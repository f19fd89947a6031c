package analytics

import (
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"math"
)

const Buckets = 256

type WordSource interface {
	Next() uint32
}

type Report struct {
	Samples    int             `json:"samples"`
	Histogram  [Buckets]uint64 `json:"histogram"`
	ChiSquare  float64         `json:"chiSquare"`
	PValue     float64         `json:"pValue"`
	Mean       float64         `json:"mean"`
	StdDev     float64         `json:"stdDev"`
	BitBalance [32]float64     `json:"bitBalance"`
}

// Analyze draws samples words from src. The low byte of each word feeds the
// histogram and every bit feeds BitBalance.
func Analyze(src WordSource, samples int) *Report {
	r := &Report{Samples: samples}
	if samples <= 0 {
		return r
	}
	var ones [32]uint64
	var word uint32
	for i := 0; i < samples; i++ {
		word = src.Next()
		r.Histogram[word&0xff]++
		for b := 0; b < 32; b++ {
			ones[b] += uint64(word>>b) & 1
		}
	}
	for b := range ones {
		r.BitBalance[b] = float64(ones[b]) / float64(samples)
	}
	observed := make([]float64, Buckets)
	expected := make([]float64, Buckets)
	values := make([]float64, Buckets)
	for i, count := range r.Histogram {
		observed[i] = float64(count)
		expected[i] = float64(samples) / Buckets
		values[i] = float64(i)
	}
	r.ChiSquare = stat.ChiSquare(observed, expected)
	r.PValue = distuv.ChiSquared{K: Buckets - 1}.Survival(r.ChiSquare)
	r.Mean, r.StdDev = stat.MeanStdDev(values, observed)
	return r
}

// Uniform reports whether the histogram passes the chi-square test at alpha.
func (r *Report) Uniform(alpha float64) bool {
	return r.Samples > 0 && r.PValue > alpha
}

// WithinSigma reports whether every bucket lies within k binomial standard
// deviations of its expected count.
func (r *Report) WithinSigma(k float64) bool {
	if r.Samples <= 0 {
		return false
	}
	mean := float64(r.Samples) / Buckets
	sd := math.Sqrt(mean * (1 - 1.0/Buckets))
	for _, count := range r.Histogram {
		if math.Abs(float64(count)-mean) > k*sd {
			return false
		}
	}
	return true
}

// MaxBitBias is the largest distance of any bit's frequency from one half.
func (r *Report) MaxBitBias() float64 {
	var bias float64
	for _, b := range r.BitBalance {
		bias = math.Max(bias, math.Abs(b-0.5))
	}
	return bias
}
