package console

import (
	"context"
	"io"
)

// StreamPort adapts a blocking reader/writer pair (stdin/stdout on host,
// USB CDC on boards without a spare UART) to Port. A single goroutine
// performs the blocking reads; after Close it stops once its current Read
// returns.
type StreamPort struct {
	w    io.Writer
	rx   chan []byte
	done chan struct{}
	quit chan struct{} // closed when the reader goroutine has returned
	rest []byte
}

func NewStreamPort(r io.Reader, w io.Writer) *StreamPort {
	p := &StreamPort{
		w:    w,
		rx:   make(chan []byte, 4),
		done: make(chan struct{}),
		quit: make(chan struct{}),
	}
	go p.readLoop(r)
	return p
}

func (p *StreamPort) readLoop(r io.Reader) {
	defer close(p.quit)
	defer close(p.rx)
	for {
		buf := make([]byte, 64)
		n, err := r.Read(buf)
		if n > 0 {
			select {
			case p.rx <- buf[:n]:
			case <-p.done:
				return
			}
		}
		if err != nil {
			return
		}
		select {
		case <-p.done:
			return
		default:
		}
	}
}

// Close stops the reader goroutine. It is safe to call more than once.
func (p *StreamPort) Close() error {
	select {
	case <-p.done:
	default:
		close(p.done)
	}
	return nil
}

func (p *StreamPort) Write(b []byte) (int, error) { return p.w.Write(b) }

func (p *StreamPort) RecvSomeContext(ctx context.Context, b []byte) (int, error) {
	if len(p.rest) == 0 {
		select {
		case chunk, ok := <-p.rx:
			if !ok {
				<-ctx.Done()
				return 0, io.EOF
			}
			p.rest = chunk
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	n := copy(b, p.rest)
	p.rest = p.rest[n:]
	return n, nil
}
