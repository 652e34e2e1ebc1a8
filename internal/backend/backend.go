// Package backend wraps the external player-control tool. Every invocation
// uses exec.Command with explicit argument slices, and command output is
// relayed verbatim to the caller's standard streams.
package backend

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnavailable means the backend binary could not be launched at all,
	// typically because it is not installed.
	ErrUnavailable = errors.New("backend unavailable")
	// ErrProtocol means the backend produced output this program cannot parse.
	ErrProtocol = errors.New("backend protocol error")
)

// Gateway invokes the backend binary.
type Gateway struct {
	bin string
}

// New returns a gateway for the given backend binary, e.g. "playerctl".
func New(bin string) *Gateway {
	return &Gateway{bin: bin}
}

// Available checks if the backend binary exists in PATH.
func (g *Gateway) Available() bool {
	_, err := exec.LookPath(g.bin)
	return err == nil
}

// ListPlayers queries the backend for the identifiers of all running
// players, in the order the backend reports them. The result is never
// cached; callers requery for every decision.
func (g *Gateway) ListPlayers() ([]string, error) {
	out, err := exec.Command(g.bin, "-l").Output()
	if err != nil {
		// A nonzero exit still carries a usable (possibly empty) listing.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("%w: executing %s: %v", ErrUnavailable, g.bin, err)
		}
	}
	return parsePlayers(out)
}

// parsePlayers splits the enumerate-players output into trimmed, non-empty
// lines.
func parsePlayers(out []byte) ([]string, error) {
	if !utf8.Valid(out) {
		return nil, fmt.Errorf("%w: player list is not valid text", ErrProtocol)
	}

	var players []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			players = append(players, line)
		}
	}
	return players, nil
}

// Run invokes the backend for one player and relays stdout/stderr verbatim.
// A nonzero backend exit is not an error for the caller: the backend reports
// its own failures on stderr. Only failing to launch the binary is reported.
func (g *Gateway) Run(player, sub string, extra ...string) error {
	args := append([]string{"--player=" + player, sub}, extra...)
	return g.relay(args)
}

// RunList relays the raw player listing, as the list command does.
func (g *Gateway) RunList() error {
	return g.relay([]string{"-l"})
}

func (g *Gateway) relay(args []string) error {
	cmd := exec.Command(g.bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil
		}
		return fmt.Errorf("%w: executing %s: %v", ErrUnavailable, g.bin, err)
	}
	return nil
}
