// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package humanize

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/Jack999Lab/content-api/internal/catalog"
	"github.com/Jack999Lab/content-api/pkg/types"
)

// noTransitions strips the transition pool so substitution passes can be
// checked without random inserts.
func noTransitions() *catalog.Catalog {
	cat := catalog.Default()
	cat.Transitions = nil
	return cat
}

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestApplyBaseReplacements(t *testing.T) {
	h := New(noTransitions())
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "This topic is important for everyone.", "This topic plays a crucial role for everyone."},
		{"case insensitive", "Planning Is Important here.", "Planning plays a crucial role here."},
		{"multiple rules", "Many people study in order to learn.", "Numerous individuals study to learn."},
		{"no match untouched", "Nothing to rewrite here.", "Nothing to rewrite here."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.Apply(tt.in, types.ToneProfessional, testRand()); got != tt.want {
				t.Errorf("Apply(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestApplyToneTables(t *testing.T) {
	h := New(noTransitions())
	tests := []struct {
		name string
		tone types.Tone
		in   string
		want string
	}{
		{"casual", types.ToneCasual, "We utilize tools; therefore individuals benefit.", "We use tools; so people benefit."},
		{"academic", types.ToneAcademic, "It shows a big gain, but costs rise.", "It demonstrates a substantial gain, however costs rise."},
		{"creative", types.ToneCreative, "Some interesting and growing fields.", "Some fascinating and blossoming fields."},
		{"professional applies nothing", types.ToneProfessional, "We utilize tools.", "We utilize tools."},
		{"unknown falls back to professional", types.Tone("sarcastic"), "We utilize tools.", "We utilize tools."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := h.Apply(tt.in, tt.tone, testRand()); got != tt.want {
				t.Errorf("Apply(%q, %s) = %q, want %q", tt.in, tt.tone, got, tt.want)
			}
		})
	}
}

func TestApplyRespectsWordBoundaries(t *testing.T) {
	h := New(noTransitions())
	in := "We also sort absorbing cases."
	// Academic "so" -> "therefore" must not fire inside larger words.
	if got := h.Apply(in, types.ToneAcademic, testRand()); got != in {
		t.Errorf("Apply = %q, want %q", got, in)
	}
}

func TestTransitionsAreBoundedToMidDocument(t *testing.T) {
	cat := catalog.Default()
	cat.Transitions = []string{"Moreover,"}
	h := New(cat)

	text := "Alpha one. Beta two. Gamma three. Delta four. Epsilon five. Zeta six."
	inserted := 0
	for seed := int64(0); seed < 20; seed++ {
		got := h.Apply(text, types.ToneProfessional, rand.New(rand.NewSource(seed)))
		if !strings.HasPrefix(got, "Alpha one.") {
			t.Fatalf("seed %d: first sentence modified: %q", seed, got)
		}
		if !strings.HasSuffix(got, "Zeta six.") {
			t.Fatalf("seed %d: last sentence modified: %q", seed, got)
		}
		inserted += strings.Count(got, "Moreover,")
	}
	if inserted == 0 {
		t.Error("no transition inserted across 20 seeds")
	}
}

func TestTransitionsSkipHeadingsAndShortDocuments(t *testing.T) {
	cat := catalog.Default()
	cat.Transitions = []string{"Moreover,"}
	h := New(cat)

	short := "One sentence. Two sentences."
	if got := h.Apply(short, types.ToneProfessional, testRand()); got != short {
		t.Errorf("short document modified: %q", got)
	}

	doc := "## Benefits\nAlpha one. Beta two. Gamma three. Delta four. Epsilon five."
	for seed := int64(0); seed < 20; seed++ {
		got := h.Apply(doc, types.ToneProfessional, rand.New(rand.NewSource(seed)))
		if !strings.HasPrefix(got, "## Benefits\n") {
			t.Fatalf("seed %d: heading line modified: %q", seed, got)
		}
	}
}
