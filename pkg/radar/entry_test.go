package radar

import (
	"testing"

	"github.com/matzehuels/techradar/pkg/radar/sector"
)

func TestEntryShape(t *testing.T) {
	tests := []struct {
		moved int
		want  Shape
	}{
		{moved: 1, want: ShapeTriangleUp},
		{moved: 5, want: ShapeTriangleUp},
		{moved: 0, want: ShapeCircle},
		{moved: -1, want: ShapeTriangleDown},
	}
	for _, tt := range tests {
		e := Entry{Moved: tt.moved}
		if got := e.Shape(); got != tt.want {
			t.Errorf("Shape() with moved=%d = %v, want %v", tt.moved, got, tt.want)
		}
	}
}

func TestEntryBlipText(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		print bool
		want  string
	}{
		{name: "print shows id", entry: Entry{ID: "12", Label: "Go"}, print: true, want: "12"},
		{name: "active shows first letter", entry: Entry{ID: "1", Label: "Kotlin", Active: true}, want: "K"},
		{name: "skips leading digits", entry: Entry{Label: "3D Touch", Active: true}, want: "D"},
		{name: "skips non ascii letters", entry: Entry{Label: "Ütil", Active: true}, want: "t"},
		{name: "inactive shows nothing", entry: Entry{Label: "Kotlin"}, want: ""},
		{name: "no letters", entry: Entry{Label: "1234", Active: true}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.BlipText(tt.print); got != tt.want {
				t.Errorf("BlipText(%v) = %q, want %q", tt.print, got, tt.want)
			}
		})
	}
}

func TestEntryHref(t *testing.T) {
	e := Entry{Active: true, Link: "https://go.dev"}
	if got := e.Href(false); got != "https://go.dev" {
		t.Errorf("Href(false) = %q", got)
	}
	if got := e.Href(true); got != "" {
		t.Errorf("Href(true) = %q, want empty", got)
	}
	e.Active = false
	if got := e.Href(false); got != "" {
		t.Errorf("inactive Href(false) = %q, want empty", got)
	}
}

func TestEntryKey(t *testing.T) {
	e := Entry{Quadrant: 2, Ring: 3}
	if got := e.Key(); got != (sector.Key{Quadrant: 2, Ring: 3}) {
		t.Errorf("Key() = %+v", got)
	}
}

func TestConfigEntryColor(t *testing.T) {
	cfg := &Config{
		Rings:  []Ring{{Name: "Adopt", Color: "#5ba300"}, {Name: "Trial", Color: "#009eb0"}},
		Colors: Colors{Inactive: "#aaa"},
	}
	active := &Entry{Ring: 1, Active: true}
	inactive := &Entry{Ring: 1}

	if got := cfg.EntryColor(active); got != "#009eb0" {
		t.Errorf("active colour = %q, want ring colour", got)
	}
	if got := cfg.EntryColor(inactive); got != "#aaa" {
		t.Errorf("inactive colour = %q, want inactive colour", got)
	}

	cfg.Print = true
	if got := cfg.EntryColor(inactive); got != "#009eb0" {
		t.Errorf("print colour = %q, want ring colour", got)
	}

	cfg.Colors.Inactive = ""
	cfg.Print = false
	if got := cfg.EntryColor(inactive); got != DefaultInactive {
		t.Errorf("default inactive colour = %q, want %q", got, DefaultInactive)
	}
}
