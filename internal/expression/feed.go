package expression

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
)

// ConsumeFile reads samples from a file or named pipe until it is exhausted
// or ctx is done. Closing the file early unblocks a pending read.
func (d *Detector) ConsumeFile(ctx context.Context, path string) error {
	f, err := openFeed(ctx, path)
	if err != nil {
		return err
	}
	defer f.Close()

	stop := context.AfterFunc(ctx, func() { f.Close() })
	defer stop()

	if err := d.Consume(ctx, f); err != nil && ctx.Err() == nil {
		return fmt.Errorf("expression: read feed %s: %w", path, err)
	}
	d.logger.Debug("feed ended", "path", path)
	return ctx.Err()
}

type openResult struct {
	f   *os.File
	err error
}

// openFeed opens path without holding ctx hostage: opening a named pipe
// blocks until a writer shows up. An open abandoned on cancel closes the
// file once it completes.
func openFeed(ctx context.Context, path string) (*os.File, error) {
	done := make(chan openResult, 1)
	go func() {
		f, err := os.Open(path)
		done <- openResult{f: f, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("expression: open feed %s: %w", path, r.err)
		}
		return r.f, nil
	case <-ctx.Done():
		go func() {
			if r := <-done; r.f != nil {
				r.f.Close()
			}
		}()
		return nil, ctx.Err()
	}
}

// Server accepts TCP connections and consumes one feed per connection.
type Server struct {
	det      *Detector
	listener net.Listener
	wg       sync.WaitGroup

	mu    sync.Mutex
	conns map[net.Conn]struct{}
}

// Listen binds addr and returns a server ready to Serve.
func (d *Detector) Listen(addr string) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("expression: listen %s: %w", addr, err)
	}
	return &Server{det: d, listener: ln, conns: make(map[net.Conn]struct{})}, nil
}

// Addr returns the bound address.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve accepts connections until ctx is done, then closes every
// connection and waits for their readers to finish.
func (s *Server) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() { s.listener.Close() })
	defer stop()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.closeConns()
			s.wg.Wait()
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("expression: accept: %w", err)
		}

		s.track(conn, true)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.track(conn, false)
			defer conn.Close()

			s.det.logger.Debug("feed connected", "remote", conn.RemoteAddr())
			if err := s.det.Consume(ctx, conn); err != nil && ctx.Err() == nil {
				s.det.logger.Warn("feed connection failed", "remote", conn.RemoteAddr(), "err", err)
			}
		}()
	}
}

// Close stops accepting connections.
func (s *Server) Close() error {
	return s.listener.Close()
}

func (s *Server) track(c net.Conn, add bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if add {
		s.conns[c] = struct{}{}
	} else {
		delete(s.conns, c)
	}
}

func (s *Server) closeConns() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.conns {
		c.Close()
	}
}
