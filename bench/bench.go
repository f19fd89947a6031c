package bench

import (
	"github.com/fernandosanchezjr/sungod/utils"
	log "github.com/sirupsen/logrus"
	"time"
)

type Result struct {
	Name    string
	Samples int
	Elapsed time.Duration
	Rate    utils.ByteRate
	Last    utils.Word64
}

// Run draws samples 64-bit values from each named source. An empty names list
// runs every known source.
func Run(names []string, seed uint64, samples int) ([]*Result, error) {
	if len(names) == 0 {
		names = Names()
	}
	results := make([]*Result, 0, len(names))
	for _, name := range names {
		src, err := NewSource(name, seed)
		if err != nil {
			return nil, err
		}
		result := Measure(name, src, samples)
		log.WithFields(log.Fields{
			"source":  result.Name,
			"samples": result.Samples,
			"elapsed": result.Elapsed,
			"rate":    result.Rate,
		}).Info("Benchmark")
		results = append(results, result)
	}
	return results, nil
}

func Measure(name string, src Source64, samples int) *Result {
	var last uint64
	startTime := time.Now()
	for i := 0; i < samples; i++ {
		last = src.Uint64()
	}
	elapsed := time.Since(startTime)
	return &Result{
		Name:    name,
		Samples: samples,
		Elapsed: elapsed,
		Rate:    utils.NewByteRate(uint64(samples)*8, elapsed),
		Last:    utils.Word64(last),
	}
}
