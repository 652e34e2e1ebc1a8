package selection

import (
	"errors"
	"testing"
)

func TestResolveKeepsValidSelection(t *testing.T) {
	live := []string{"firefox", "vlc", "spotify"}
	for _, p := range live {
		id, repaired, err := Resolve(p, live)
		if err != nil {
			t.Fatalf("Resolve(%q) error: %v", p, err)
		}
		if id != p {
			t.Errorf("Resolve(%q) = %q, want unchanged", p, id)
		}
		if repaired {
			t.Errorf("Resolve(%q) reported repair for a valid selection", p)
		}
	}
}

func TestResolveRepairs(t *testing.T) {
	tests := []struct {
		name      string
		persisted string
	}{
		{"empty selection", ""},
		{"stale selection", "mpv"},
	}

	live := []string{"firefox", "vlc"}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, repaired, err := Resolve(tt.persisted, live)
			if err != nil {
				t.Fatalf("Resolve() error: %v", err)
			}
			if id != "firefox" {
				t.Errorf("Resolve() = %q, want first live player", id)
			}
			if !repaired {
				t.Error("Resolve() did not report repair")
			}
		})
	}
}

func TestResolveNoPlayers(t *testing.T) {
	_, _, err := Resolve("firefox", nil)
	if !errors.Is(err, ErrNoPlayers) {
		t.Errorf("Resolve with empty live list: err = %v, want ErrNoPlayers", err)
	}
}

func TestSwitchRotation(t *testing.T) {
	live := []string{"a", "b", "c"}

	tests := []struct {
		name    string
		current string
		pol     Policy
		want    string
	}{
		{"next from first", "a", Policy{}, "b"},
		{"next from middle", "b", Policy{}, "c"},
		{"next wraps", "c", Policy{}, "a"},
		{"back from last", "c", Policy{Back: true}, "b"},
		{"back from middle", "b", Policy{Back: true}, "a"},
		{"back wraps", "a", Policy{Back: true}, "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Switch(tt.current, live, tt.pol)
			if err != nil {
				t.Fatalf("Switch() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Switch(%q) = %q, want %q", tt.current, got, tt.want)
			}
		})
	}
}

func TestSwitchNamed(t *testing.T) {
	live := []string{"firefox", "vlc", "spotify"}

	// A named player present in the list wins regardless of the current one.
	for _, current := range []string{"", "firefox", "spotify"} {
		got, err := Switch(current, live, Policy{Name: "vlc"})
		if err != nil {
			t.Fatalf("Switch() error: %v", err)
		}
		if got != "vlc" {
			t.Errorf("Switch(%q, Named vlc) = %q, want vlc", current, got)
		}
	}

	// A named player absent from the list leaves the selection unchanged.
	got, err := Switch("spotify", live, Policy{Name: "mpv"})
	if err != nil {
		t.Fatalf("Switch() error: %v", err)
	}
	if got != "spotify" {
		t.Errorf("Switch(Named mpv) = %q, want unchanged spotify", got)
	}
}

func TestSwitchFallsBackToFirst(t *testing.T) {
	live := []string{"firefox", "vlc"}

	tests := []struct {
		name    string
		current string
		pol     Policy
	}{
		{"no selection, next", "", Policy{}},
		{"no selection, back", "", Policy{Back: true}},
		{"stale selection", "mpv", Policy{}},
		{"no selection, absent name", "", Policy{Name: "mpv"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Switch(tt.current, live, tt.pol)
			if err != nil {
				t.Fatalf("Switch() error: %v", err)
			}
			if got != "firefox" {
				t.Errorf("Switch() = %q, want first live player", got)
			}
		})
	}
}

func TestSwitchNoPlayers(t *testing.T) {
	_, err := Switch("firefox", nil, Policy{})
	if !errors.Is(err, ErrNoPlayers) {
		t.Errorf("Switch with empty live list: err = %v, want ErrNoPlayers", err)
	}
}

// Mirrors a fresh two-player session: resolve seeds the first player, then
// switching walks between them in both directions.
func TestResolveThenSwitchScenario(t *testing.T) {
	live := []string{"firefox", "vlc"}

	id, repaired, err := Resolve("", live)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if id != "firefox" || !repaired {
		t.Fatalf("Resolve() = %q (repaired=%v), want firefox with repair", id, repaired)
	}

	id, err = Switch(id, live, Policy{})
	if err != nil {
		t.Fatalf("Switch(next) error: %v", err)
	}
	if id != "vlc" {
		t.Fatalf("Switch(next) = %q, want vlc", id)
	}

	id, err = Switch(id, live, Policy{Back: true})
	if err != nil {
		t.Fatalf("Switch(back) error: %v", err)
	}
	if id != "firefox" {
		t.Fatalf("Switch(back) = %q, want firefox", id)
	}
}
