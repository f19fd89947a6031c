package generators

import (
	"github.com/fernandosanchezjr/sungod/xorwow"
	log "github.com/sirupsen/logrus"
	"io"
	"sync"
	"sync/atomic"
)

const DefaultChunkSize = 64 * 1024

// Stream copies a generator's byte stream into a writer from its own
// goroutine. The generator is only touched by that goroutine; Reseed hands new
// seeds over a channel.
type Stream struct {
	gen      *xorwow.Generator
	out      io.Writer
	chunk    []byte
	limit    uint64
	written  uint64
	quit     chan struct{}
	done     chan struct{}
	reseed   chan uint64
	stopOnce sync.Once
	waiter   sync.WaitGroup
	err      error
}

// NewStream writes at most limit bytes, or until stopped when limit is 0.
func NewStream(gen *xorwow.Generator, out io.Writer, chunkSize int, limit uint64) *Stream {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Stream{
		gen:    gen,
		out:    out,
		chunk:  make([]byte, chunkSize),
		limit:  limit,
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
		reseed: make(chan uint64),
	}
}

func (s *Stream) Start() {
	s.waiter.Add(1)
	go s.streamLoop()
}

func (s *Stream) streamLoop() {
	defer s.waiter.Done()
	defer close(s.done)
	var p []byte
	for {
		select {
		case <-s.quit:
			return
		case seed := <-s.reseed:
			s.gen.Seed(int64(seed))
			log.WithField("seed", seed).Info("Stream reseeded")
		default:
			p = s.chunk
			written := atomic.LoadUint64(&s.written)
			if s.limit != 0 {
				if written >= s.limit {
					return
				}
				if remaining := s.limit - written; remaining < uint64(len(p)) {
					p = p[:remaining]
				}
			}
			s.gen.Fill(p)
			n, err := s.out.Write(p)
			atomic.AddUint64(&s.written, uint64(n))
			if err != nil {
				s.err = err
				log.WithError(err).Debug("Stream write failed")
				return
			}
		}
	}
}

// Reseed restarts the stream from seed. It returns false once the stream has
// finished.
func (s *Stream) Reseed(seed uint64) bool {
	select {
	case s.reseed <- seed:
		return true
	case <-s.done:
		return false
	}
}

// Done is closed when the stream stops for any reason.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

func (s *Stream) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
	})
	s.waiter.Wait()
}

func (s *Stream) Written() uint64 {
	return atomic.LoadUint64(&s.written)
}

// Err returns the write error that ended the stream. Only valid once Done is
// closed.
func (s *Stream) Err() error {
	return s.err
}
