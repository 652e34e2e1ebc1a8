// Package notify carries the "selection changed" notification between
// running instances of this program. The notification is an async OS signal
// with no payload: receivers only learn that the selection moved and must
// re-read it from the store.
package notify

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// Changed is the signal peers exchange when the selection moves.
const Changed = unix.SIGUSR1

// PeerDiscovery finds the process ids of running instances of a program.
type PeerDiscovery interface {
	FindPeers(program string) ([]int, error)
}

// ProcScanner discovers peers by walking the proc filesystem and matching
// each process's comm name. Note comm is truncated to 15 bytes by the
// kernel, so program names longer than that will not match.
type ProcScanner struct {
	Root string // proc mount point, "/proc" when empty
}

func (s ProcScanner) FindPeers(program string) ([]int, error) {
	root := s.Root
	if root == "" {
		root = "/proc"
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}

	var pids []int
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		pid, err := strconv.Atoi(e.Name())
		if err != nil {
			continue
		}
		comm, err := os.ReadFile(filepath.Join(root, e.Name(), "comm"))
		if err != nil {
			continue // process exited mid-scan
		}
		if strings.TrimSpace(string(comm)) == program {
			pids = append(pids, pid)
		}
	}
	return pids, nil
}

// Broadcast signals every running instance of program (the sender included)
// that the selection changed. A process that cannot be signaled is skipped;
// only discovery failure is reported.
func Broadcast(d PeerDiscovery, program string) error {
	pids, err := d.FindPeers(program)
	if err != nil {
		return err
	}
	for _, pid := range pids {
		// Best-effort: the peer may have exited since the scan.
		_ = unix.Kill(pid, Changed)
	}
	return nil
}

// Listener receives change notifications for this process. Deliveries
// coalesce: any number of signals since the last poll reads as a single
// pending notification.
type Listener struct {
	ch chan os.Signal
}

// Listen registers for change notifications.
func Listen() *Listener {
	l := &Listener{ch: make(chan os.Signal, 1)}
	signal.Notify(l.ch, Changed)
	return l
}

// Pending reports whether a change notification arrived since the last call,
// clearing it. Never blocks.
func (l *Listener) Pending() bool {
	select {
	case <-l.ch:
		return true
	default:
		return false
	}
}

// Stop unregisters the listener.
func (l *Listener) Stop() {
	signal.Stop(l.ch)
}
