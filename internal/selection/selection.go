// Package selection computes the current-player selection over the live
// player list reported by the backend: startup validation/repair and the
// switch policies (by name, next, previous).
package selection

import (
	"errors"
	"slices"
)

// ErrNoPlayers is returned when an operation needs a player but the backend
// reports none running.
var ErrNoPlayers = errors.New("no players found")

// Policy selects how Switch picks the new player.
// A non-empty Name switches to that exact player; otherwise Switch rotates
// forward through the live list, or backward when Back is set.
type Policy struct {
	Name string
	Back bool
}

// Resolve validates the persisted selection against the live player list.
// A persisted value still present in live is returned unchanged. Anything
// else (absent, or naming a player that has since exited) falls back to the
// first live player; repaired reports whether the caller must persist the
// result. An empty live list is ErrNoPlayers.
func Resolve(persisted string, live []string) (id string, repaired bool, err error) {
	if persisted != "" && slices.Contains(live, persisted) {
		return persisted, false, nil
	}
	if len(live) == 0 {
		return "", false, ErrNoPlayers
	}
	return live[0], true, nil
}

// Switch computes the new selection under pol. Adjacency follows the order
// live was reported in, wrapping around at both ends. A named player absent
// from live leaves the selection unchanged; a selection that cannot be
// placed in live at all falls back to the first player. The caller persists
// and broadcasts the result whether or not it differs from persisted.
func Switch(persisted string, live []string, pol Policy) (string, error) {
	if len(live) == 0 {
		return "", ErrNoPlayers
	}

	next := persisted
	if pol.Name != "" {
		if slices.Contains(live, pol.Name) {
			next = pol.Name
		}
	} else if i := slices.Index(live, persisted); i >= 0 {
		if pol.Back {
			next = live[(i+len(live)-1)%len(live)]
		} else {
			next = live[(i+1)%len(live)]
		}
	}

	if next == "" || !slices.Contains(live, next) {
		next = live[0]
	}
	return next, nil
}
