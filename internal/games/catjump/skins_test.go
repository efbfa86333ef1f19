package catjump

import (
	"testing"

	"github.com/vovakirdan/catjump/internal/config"
	"github.com/vovakirdan/catjump/internal/core"
)

func TestSkinsCatalog(t *testing.T) {
	all := Skins()
	if len(all) != 28 {
		t.Fatalf("Skins() has %d entries, expected 28", len(all))
	}

	seen := make(map[string]bool)
	for _, s := range all {
		if seen[s.ID] {
			t.Errorf("duplicate skin id %q", s.ID)
		}
		seen[s.ID] = true
		if s.Name == "" || s.Color == core.ColorDefault {
			t.Errorf("skin %q lacks a name or colour", s.ID)
		}
	}

	all[0].ID = "changed"
	if Skins()[0].ID != DefaultSkinID {
		t.Error("Skins() must return a copy")
	}
}

func TestSkinLookup(t *testing.T) {
	tests := []struct {
		id   string
		want string
		ok   bool
	}{
		{"tiger", "tiger", true},
		{"  GALAXY ", "galaxy", true},
		{"chubby_orange", "chubby_orange", true},
		{"unicorn", DefaultSkinID, false},
		{"", DefaultSkinID, false},
	}

	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			_, ok := LookupSkin(tc.id)
			if ok != tc.ok {
				t.Errorf("LookupSkin(%q) ok = %v, expected %v", tc.id, ok, tc.ok)
			}
			if got := SkinOrDefault(tc.id).ID; got != tc.want {
				t.Errorf("SkinOrDefault(%q) = %q, expected %q", tc.id, got, tc.want)
			}
			if err := ValidateSkin(tc.id); (err == nil) != tc.ok {
				t.Errorf("ValidateSkin(%q) = %v", tc.id, err)
			}
		})
	}
}

func TestSetSkinAppliesToNewGames(t *testing.T) {
	t.Cleanup(func() { SetSkin(DefaultSkinID) })

	SetSkin("panther")
	if got := New(config.DifficultyNormal).SkinID(); got != "panther" {
		t.Errorf("new game skin = %q, expected panther", got)
	}

	SetSkin("nope")
	if got := New(config.DifficultyNormal).SkinID(); got != DefaultSkinID {
		t.Errorf("new game skin = %q, expected fallback %q", got, DefaultSkinID)
	}
}
