package backend

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"time"
)

// Notifier reports whether a selection-change notification arrived since the
// last poll, clearing it.
type Notifier interface {
	Pending() bool
}

// Pump relays a follow-mode backend query, restarting the subprocess against
// the freshly resolved selection whenever a change notification arrives.
// With a nil Notifier the pump simply streams until the subprocess ends.
type Pump struct {
	resolve  func() (string, error)
	changed  Notifier
	interval time.Duration
	out      io.Writer
	spawn    func(player string) (stream, error)
}

// stream is one running follow subprocess.
type stream interface {
	io.Reader
	Kill() error
}

// FollowPump builds a pump for the given subcommand. resolve yields the
// player for each (re)spawn; interval is the poll cadence while no output is
// ready.
func (g *Gateway) FollowPump(resolve func() (string, error), changed Notifier, interval time.Duration, sub string, extra ...string) *Pump {
	return &Pump{
		resolve:  resolve,
		changed:  changed,
		interval: interval,
		out:      os.Stdout,
		spawn: func(player string) (stream, error) {
			return g.spawnFollow(player, sub, extra)
		},
	}
}

func (g *Gateway) spawnFollow(player, sub string, extra []string) (stream, error) {
	args := append([]string{"--player=" + player, sub}, extra...)
	args = append(args, "--follow")

	cmd := exec.Command(g.bin, args...)
	cmd.Stderr = os.Stderr
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("piping backend output: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: executing %s: %v", ErrUnavailable, g.bin, err)
	}
	return &procStream{cmd: cmd, out: out}, nil
}

type procStream struct {
	cmd *exec.Cmd
	out io.ReadCloser
}

func (s *procStream) Read(p []byte) (int, error) {
	return s.out.Read(p)
}

func (s *procStream) Kill() error {
	// The process may already have exited; Wait still reaps it, and closing
	// the pipe unblocks the reader goroutine.
	_ = s.cmd.Process.Kill()
	return s.cmd.Wait()
}

// Run streams until the subprocess ends or fails. Each change notification
// kills the current subprocess and respawns against the re-resolved
// selection; there is no other way out of the loop.
func (p *Pump) Run() error {
	for {
		player, err := p.resolve()
		if err != nil {
			return err
		}
		s, err := p.spawn(player)
		if err != nil {
			return err
		}

		restart, err := p.streamUntilChange(s)
		if err != nil || !restart {
			return err
		}
	}
}

// streamUntilChange relays subprocess output until the stream ends or a
// change notification arrives. The notifier is polled on every wakeup, so a
// notification is acted upon within one interval even while no output flows.
func (p *Pump) streamUntilChange(s stream) (restart bool, err error) {
	chunks := make(chan []byte)
	readErr := make(chan error, 1)
	go func() {
		for {
			buf := make([]byte, 4096)
			n, err := s.Read(buf)
			if n > 0 {
				chunks <- buf[:n]
			}
			if err != nil {
				readErr <- err
				return
			}
		}
	}()

	tick := time.NewTicker(p.interval)
	defer tick.Stop()

	for {
		if p.changed != nil && p.changed.Pending() {
			s.Kill()
			// Drain what the reader already has until the pipe breaks.
			for {
				select {
				case c := <-chunks:
					p.out.Write(c)
				case <-readErr:
					return true, nil
				}
			}
		}

		select {
		case c := <-chunks:
			p.out.Write(c)
		case err := <-readErr:
			s.Kill() // reap the subprocess either way
			if errors.Is(err, io.EOF) || errors.Is(err, fs.ErrClosed) {
				return false, nil
			}
			return false, fmt.Errorf("reading backend output: %w", err)
		case <-tick.C:
		}
	}
}
