package nav

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   Page
		wantOK bool
	}{
		{"home", Home, true},
		{"  Report-Illness ", ReportIllness, true},
		{"map", Map, true},
		{"reports", Reports, true},
		{"", Home, false},
		{"kitchen", Home, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("Parse(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestPagesCoversAllTen(t *testing.T) {
	pages := Pages()
	if len(pages) != 10 {
		t.Fatalf("Pages() returned %d pages, want 10", len(pages))
	}
	seen := map[Page]bool{}
	for _, p := range pages {
		if seen[p] {
			t.Fatalf("duplicate page %q", p)
		}
		seen[p] = true
		if p.Title() == "" {
			t.Fatalf("page %q has no title", p)
		}
	}

	// Mutating the returned slice must not affect later calls.
	pages[0] = Reports
	if Pages()[0] != Home {
		t.Fatalf("Pages() exposes internal order")
	}
}

func TestControllerNavigateFallsBackToHome(t *testing.T) {
	c := NewController(Dining)
	if c.Current() != Dining {
		t.Fatalf("Current = %q, want dining", c.Current())
	}
	c = c.Navigate(Page("nowhere"))
	if c.Current() != Home {
		t.Fatalf("Navigate(unknown) = %q, want home", c.Current())
	}
	if NewController(Page("bogus")).Current() != Home {
		t.Fatalf("NewController(unknown) should start at home")
	}
	var zero Controller
	if zero.Current() != Home {
		t.Fatalf("zero Controller should report home")
	}
}

func TestControllerCycleWraps(t *testing.T) {
	c := NewController(Reports)
	if got := c.Next().Current(); got != Home {
		t.Fatalf("Next from reports = %q, want home", got)
	}
	if got := NewController(Home).Prev().Current(); got != Reports {
		t.Fatalf("Prev from home = %q, want reports", got)
	}
	if got := NewController(Dining).Next().Current(); got != Safety {
		t.Fatalf("Next from dining = %q, want safety", got)
	}
}

func TestSearch(t *testing.T) {
	if got := Search("  "); len(got) != len(Pages()) {
		t.Fatalf("Search(blank) returned %d pages, want all", len(got))
	}

	got := Search("dining")
	if len(got) == 0 || got[0] != Dining {
		t.Fatalf("Search(dining) = %v, want dining first", got)
	}

	got = Search("illness")
	if len(got) == 0 || got[0] != ReportIllness {
		t.Fatalf("Search(illness) = %v, want report-illness first", got)
	}

	if got := Search("zzzz"); len(got) != 0 {
		t.Fatalf("Search(zzzz) = %v, want no matches", got)
	}
}
