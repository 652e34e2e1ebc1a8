package backend

import (
	"errors"
	"reflect"
	"testing"
)

func TestParsePlayers(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want []string
	}{
		{"empty output", "", nil},
		{"single player", "firefox\n", []string{"firefox"}},
		{"multiple players", "firefox\nvlc\nspotify\n", []string{"firefox", "vlc", "spotify"}},
		{"no trailing newline", "firefox\nvlc", []string{"firefox", "vlc"}},
		{"blank lines dropped", "firefox\n\n\nvlc\n", []string{"firefox", "vlc"}},
		{"whitespace trimmed", "  firefox \n\tvlc\n", []string{"firefox", "vlc"}},
		{"only whitespace", " \n\t\n", nil},
		{"instance suffixes kept", "firefox.instance_1234\n", []string{"firefox.instance_1234"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePlayers([]byte(tt.out))
			if err != nil {
				t.Fatalf("parsePlayers() error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parsePlayers() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePlayersInvalidText(t *testing.T) {
	_, err := parsePlayers([]byte{0xff, 0xfe, 0xfd})
	if !errors.Is(err, ErrProtocol) {
		t.Errorf("parsePlayers(invalid utf8): err = %v, want ErrProtocol", err)
	}
}

func TestAvailable(t *testing.T) {
	if New("definitely-not-a-real-binary-4712").Available() {
		t.Error("Available() = true for a nonexistent binary")
	}
}

func TestListPlayersUnavailable(t *testing.T) {
	_, err := New("definitely-not-a-real-binary-4712").ListPlayers()
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("ListPlayers() err = %v, want ErrUnavailable", err)
	}
}
