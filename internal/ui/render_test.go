package ui

import (
	"strings"
	"testing"

	"github.com/bodylens/bodylens/internal/search"
)

func TestRenderWithRegionsNoMatches(t *testing.T) {
	got := renderWithRegions("plain body", nil)
	if got != "plain body" {
		t.Errorf("renderWithRegions = %q", got)
	}
}

func TestRenderWithRegionsWrapsEachMatch(t *testing.T) {
	text := "the cat and the hat"
	spans := []search.Span{{Start: 0, End: 3}, {Start: 12, End: 15}}

	got := renderWithRegions(text, spans)
	if !strings.Contains(got, `["m0"]`) || !strings.Contains(got, `["m1"]`) {
		t.Errorf("missing region tags: %q", got)
	}
	if !strings.Contains(got, "cat and") {
		t.Errorf("inter-match text lost: %q", got)
	}
}

func TestRenderWithRegionsSkipsOutOfRangeSpans(t *testing.T) {
	text := "short"
	spans := []search.Span{{Start: 2, End: 99}}

	got := renderWithRegions(text, spans)
	if !strings.Contains(got, "short") {
		t.Errorf("text lost on bogus span: %q", got)
	}
	if strings.Contains(got, `["m0"]`) {
		t.Errorf("out-of-range span produced a region: %q", got)
	}
}

func TestRegionID(t *testing.T) {
	if regionID(7) != "m7" {
		t.Errorf("regionID(7) = %q", regionID(7))
	}
}
