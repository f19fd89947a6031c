package utils

import (
	"github.com/dustin/go-humanize"
	"strconv"
	"time"
)

const MaxRawByteRate = 1000

type ByteRate float64

func NewByteRate(bytes uint64, elapsed time.Duration) ByteRate {
	if elapsed <= 0 {
		return 0
	}
	return ByteRate(float64(bytes) / elapsed.Seconds())
}

func (b ByteRate) String() string {
	if b < MaxRawByteRate {
		return strconv.FormatFloat(float64(b), 'f', 2, 64) + " B/s"
	} else {
		return humanize.SIWithDigits(float64(b), 2, "B/s")
	}
}

func Bytes(n uint64) string {
	return humanize.IBytes(n)
}
