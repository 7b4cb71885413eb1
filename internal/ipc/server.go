package ipc

import (
	"bytes"
	"encoding/json"
	"log"
	"net"
	"os"
	"time"

	"github.com/adereth/ttwm/internal/wm"
)

// pollDeadline is how far in the future every non-blocking accept/read call
// sets its deadline: effectively zero, just enough that the syscall returns
// immediately with either data or a timeout error instead of blocking.
const pollDeadline = time.Millisecond

// Server is the non-blocking IPC listener (spec.md §4.7): Drain is called
// once per reducer loop iteration and never blocks longer than pollDeadline
// per connection, so it can sit directly in wm.WM.Run's idle phase instead
// of owning its own goroutine.
type Server struct {
	path     string
	listener *net.UnixListener
	wm       *wm.WM
	log      *log.Logger
	conns    []*conn
}

// conn buffers partial reads: pollDeadline is short enough that a request
// line routinely arrives split across several Drain ticks, and pending
// carries the unconsumed bytes from one tick to the next.
type conn struct {
	uc      *net.UnixConn
	pending []byte
}

// Listen creates the Unix socket at path, removing any stale socket left
// behind by a previous crashed process.
func Listen(path string, w *wm.WM, logger *log.Logger) (*Server, error) {
	_ = os.Remove(path)
	addr, err := net.ResolveUnixAddr("unix", path)
	if err != nil {
		return nil, err
	}
	ln, err := net.ListenUnix("unix", addr)
	if err != nil {
		return nil, err
	}
	return &Server{path: path, listener: ln, wm: w, log: logger}, nil
}

// Close shuts down the listener and every open connection, and removes the
// socket file.
func (s *Server) Close() {
	for _, c := range s.conns {
		c.uc.Close()
	}
	s.listener.Close()
	_ = os.Remove(s.path)
}

// Drain is the drainIPC callback wm.WM.Run expects: accept any pending
// connections, service exactly one line from each connection already
// holding a full line, and drop any connection that closed. It never
// blocks: every syscall carries a near-zero deadline.
func (s *Server) Drain() {
	s.acceptPending()

	live := s.conns[:0]
	for _, c := range s.conns {
		if s.serviceOnce(c) {
			live = append(live, c)
		}
	}
	s.conns = live
}

func (s *Server) acceptPending() {
	for {
		if err := s.listener.SetDeadline(time.Now().Add(pollDeadline)); err != nil {
			return
		}
		uc, err := s.listener.AcceptUnix()
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				return
			}
			s.log.Printf("ipc: accept failed: %v", err)
			return
		}
		s.conns = append(s.conns, &conn{uc: uc})
	}
}

// serviceOnce reads and handles at most one request from c, if one is
// already fully buffered. It returns false when c should be dropped.
func (s *Server) serviceOnce(c *conn) bool {
	if bytes.IndexByte(c.pending, '\n') < 0 {
		if err := c.uc.SetReadDeadline(time.Now().Add(pollDeadline)); err != nil {
			return false
		}
		buf := make([]byte, 4096)
		n, err := c.uc.Read(buf)
		if n > 0 {
			c.pending = append(c.pending, buf[:n]...)
		}
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				// No full line arrived this tick; keep what we have.
			} else {
				c.uc.Close()
				return false
			}
		}
	}

	idx := bytes.IndexByte(c.pending, '\n')
	if idx < 0 {
		return true
	}
	line := c.pending[:idx]
	c.pending = c.pending[idx+1:]

	var req Request
	resp := okResponse()
	if jsonErr := json.Unmarshal(line, &req); jsonErr != nil {
		resp = errorResponse("invalid_command")
	} else {
		resp = Dispatch(s.wm, req)
	}

	out, err := json.Marshal(resp)
	if err != nil {
		s.log.Printf("ipc: marshal response failed: %v", err)
		return true
	}
	out = append(out, '\n')
	if err := c.uc.SetWriteDeadline(time.Now().Add(pollDeadline)); err != nil {
		c.uc.Close()
		return false
	}
	if _, err := c.uc.Write(out); err != nil {
		c.uc.Close()
		return false
	}
	return true
}
