package utils

import (
	log "github.com/sirupsen/logrus"
	"testing"
	"time"
)

func TestByteRate_String(t *testing.T) {
	if s := ByteRate(512).String(); s != "512.00 B/s" {
		t.Fatal("raw rate:", s)
	}
	if s := NewByteRate(3000000, time.Second).String(); s != "3 MB/s" {
		t.Fatal("SI rate:", s)
	}
	if r := NewByteRate(100, 0); r != 0 {
		t.Fatal("zero elapsed:", r)
	}
	log.WithField("bytes", Bytes(1<<20)).Println("Bytes")
}
