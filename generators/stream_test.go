package generators

import (
	"bytes"
	"errors"
	"github.com/fernandosanchezjr/sungod/xorwow"
	"io"
	"sync"
	"testing"
	"time"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

type lockedBuffer struct {
	mtx sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) Contains(p []byte) bool {
	b.mtx.Lock()
	defer b.mtx.Unlock()
	return bytes.Contains(b.buf.Bytes(), p)
}

func TestStream_Limit(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(xorwow.NewSeeded(1), &out, 100, 1000)
	s.Start()
	<-s.Done()
	s.Stop()
	if s.Written() != 1000 || out.Len() != 1000 {
		t.Fatal("unexpected length", s.Written(), out.Len())
	}
	if s.Err() != nil {
		t.Fatal(s.Err())
	}
	expected := make([]byte, 1000)
	g := xorwow.NewSeeded(1)
	for i := 0; i < len(expected); i += 100 {
		g.Fill(expected[i : i+100])
	}
	if !bytes.Equal(out.Bytes(), expected) {
		t.Fatal("stream does not match generator output")
	}
}

func TestStream_PartialChunk(t *testing.T) {
	var out bytes.Buffer
	s := NewStream(xorwow.NewSeeded(1), &out, 64, 10)
	s.Start()
	<-s.Done()
	s.Stop()
	if !bytes.Equal(out.Bytes(), xorwow.NewSeeded(1).Bytes(10)) {
		t.Fatal("partial chunk mismatch", out.Bytes())
	}
}

func TestStream_Stop(t *testing.T) {
	s := NewStream(xorwow.NewSeeded(1), io.Discard, 0, 0)
	s.Start()
	time.Sleep(10 * time.Millisecond)
	s.Stop()
	s.Stop()
	if s.Written() == 0 {
		t.Fatal("nothing written")
	}
	if s.Reseed(2) {
		t.Fatal("reseed accepted after stop")
	}
}

func TestStream_Reseed(t *testing.T) {
	out := &lockedBuffer{}
	s := NewStream(xorwow.NewSeeded(1), out, 4, 0)
	s.Start()
	defer s.Stop()
	if !s.Reseed(99) {
		t.Fatal("reseed rejected")
	}
	marker := xorwow.NewSeeded(99).Bytes(4)
	deadline := time.Now().Add(5 * time.Second)
	for !out.Contains(marker) {
		if time.Now().After(deadline) {
			t.Fatal("reseeded output not found")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestStream_WriteError(t *testing.T) {
	s := NewStream(xorwow.NewSeeded(1), failingWriter{}, 16, 0)
	s.Start()
	select {
	case <-s.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not stop on write error")
	}
	if s.Err() == nil {
		t.Fatal("write error not recorded")
	}
	s.Stop()
}
