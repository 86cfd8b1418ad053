package timezone

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var offsetPattern = regexp.MustCompile(`^[+-]\d{2}:\d{2}$`)

func fixedClock(value string) Clock {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return ClockFunc(func() time.Time { return t })
}

func TestResolveKnownLocations(t *testing.T) {
	r := NewResolver(DefaultAliases)

	cases := []struct {
		input string
		want  string
	}{
		{"São Paulo", "America/Sao_Paulo"},
		{"PARIS", "Europe/Paris"},
		{"  PARIS ", "Europe/Paris"},
		{"Tóquio", "Asia/Tokyo"},
		{"TÓQUIO", "Asia/Tokyo"},
		{"rio", "America/Sao_Paulo"},
		{"Buenos Aires", "America/Argentina/Buenos_Aires"},
		{"\tjohannesburg\n", "Africa/Johannesburg"},
		{"paulo", "America/Sao_Paulo"},
		{"jane", "America/Sao_Paulo"},
		{"downtown tokyo", "Asia/Tokyo"},
		{"manau", "America/Manaus"},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := r.Resolve(tc.input)
			if err != nil {
				t.Fatalf("resolve %q: %v", tc.input, err)
			}
			if got != tc.want {
				t.Fatalf("resolve %q: expected %s, got %s", tc.input, tc.want, got)
			}
		})
	}
}

func TestResolveEveryAlias(t *testing.T) {
	r := NewResolver(DefaultAliases)
	for _, a := range DefaultAliases {
		for _, input := range []string{a.Name, strings.ToUpper(a.Name), "  " + a.Name + "  "} {
			got, err := r.Resolve(input)
			if err != nil {
				t.Fatalf("resolve %q: %v", input, err)
			}
			if got != a.Zone {
				t.Fatalf("resolve %q: expected %s, got %s", input, a.Zone, got)
			}
		}
	}
}

func TestResolveMissing(t *testing.T) {
	r := NewResolver(DefaultAliases)

	cases := []struct {
		input string
		want  error
	}{
		{"", ErrEmptyLocation},
		{"   ", ErrEmptyLocation},
		{"\t\n", ErrEmptyLocation},
		{"LocalidadeInexistente123", ErrLocationNotFound},
		{"LocalidadeInexistente", ErrLocationNotFound},
		{"Nowhereland", ErrLocationNotFound},
	}

	for _, tc := range cases {
		zone, err := r.Resolve(tc.input)
		if !errors.Is(err, tc.want) {
			t.Fatalf("resolve %q: expected %v, got %v (%q)", tc.input, tc.want, err, zone)
		}
		if zone != "" {
			t.Fatalf("resolve %q: expected empty zone, got %q", tc.input, zone)
		}
	}
}

func TestResolveSkipsInvalidZones(t *testing.T) {
	r := NewResolver([]Alias{
		{Name: "atlantis", Zone: "Mars/Olympus_Mons"},
		{Name: "lemuria", Zone: ""},
		{Name: "atlantis city", Zone: "Europe/Paris"},
	})

	got, err := r.Resolve("Atlantis")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "Europe/Paris" {
		t.Fatalf("expected scan to continue past corrupt entry, got %s", got)
	}

	if _, err := r.Resolve("lemuria"); !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected not found for empty zone, got %v", err)
	}
	if _, err := r.Snapshot("Mars/Olympus_Mons"); !errors.Is(err, ErrInvalidZone) {
		t.Fatalf("expected invalid zone, got %v", err)
	}
}

func TestResolveFirstPartialMatchWins(t *testing.T) {
	r := NewResolver([]Alias{
		{Name: "springfield", Zone: "America/Chicago"},
		{Name: "springfield east", Zone: "America/New_York"},
	})

	got, err := r.Resolve("spring")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "America/Chicago" {
		t.Fatalf("expected first table entry to win, got %s", got)
	}

	got, err = r.Resolve("springfield east")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "America/New_York" {
		t.Fatalf("expected exact match to win, got %s", got)
	}
}

// Any substring whose matching aliases all agree on one zone resolves to it.
func TestResolveUnambiguousSubstrings(t *testing.T) {
	r := NewResolver(DefaultAliases)

	checked := 0
	for _, a := range DefaultAliases {
		runes := []rune(a.Name)
		for i := 0; i < len(runes); i++ {
			for j := i + 1; j <= len(runes); j++ {
				q := string(runes[i:j])
				if strings.TrimSpace(q) != q {
					continue
				}
				zones := map[string]struct{}{}
				for _, other := range DefaultAliases {
					if strings.Contains(other.Name, q) || strings.Contains(q, other.Name) {
						zones[other.Zone] = struct{}{}
					}
				}
				if len(zones) != 1 {
					continue
				}
				got, err := r.Resolve(q)
				if err != nil {
					t.Fatalf("resolve %q: %v", q, err)
				}
				if got != a.Zone {
					t.Fatalf("resolve %q: expected %s, got %s", q, a.Zone, got)
				}
				checked++
			}
		}
	}
	if checked == 0 {
		t.Fatalf("expected unambiguous substrings to be checked")
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	r := NewResolver(DefaultAliases)
	for _, input := range []string{"Paris", "rio", "Nowhereland", "berl"} {
		first, firstErr := r.Resolve(input)
		second, secondErr := r.Resolve(input)
		if first != second || firstErr != secondErr {
			t.Fatalf("resolve %q not stable: %q/%v then %q/%v", input, first, firstErr, second, secondErr)
		}
	}
}

func TestSnapshotAndOffset(t *testing.T) {
	cases := []struct {
		clock      string
		zone       string
		wantTime   string
		wantOffset string
	}{
		{"2024-01-15T12:00:00Z", "America/Sao_Paulo", "2024-01-15T09:00:00", "-03:00"},
		{"2024-01-15T12:00:00Z", "Europe/London", "2024-01-15T12:00:00", "+00:00"},
		{"2024-07-15T12:00:00Z", "Europe/London", "2024-07-15T13:00:00", "+01:00"},
		{"2024-01-15T12:00:00Z", "Asia/Tokyo", "2024-01-15T21:00:00", "+09:00"},
		{"2024-01-15T12:00:00Z", "Asia/Kolkata", "2024-01-15T17:30:00", "+05:30"},
		{"2024-01-15T23:30:45Z", "Australia/Sydney", "2024-01-16T10:30:45", "+11:00"},
	}

	for _, tc := range cases {
		t.Run(tc.zone+"@"+tc.clock, func(t *testing.T) {
			r := NewResolver(DefaultAliases, WithClock(fixedClock(tc.clock)))

			snap, err := r.Snapshot(tc.zone)
			if err != nil {
				t.Fatalf("snapshot: %v", err)
			}
			if snap.String() != tc.wantTime {
				t.Fatalf("expected %s, got %s", tc.wantTime, snap)
			}

			offset, err := r.UTCOffset(tc.zone)
			if err != nil {
				t.Fatalf("offset: %v", err)
			}
			if offset != tc.wantOffset {
				t.Fatalf("expected offset %s, got %s", tc.wantOffset, offset)
			}
		})
	}
}

func TestUTCOffsetFormatForEveryZone(t *testing.T) {
	clocks := []Clock{
		systemClock{},
		fixedClock("2024-01-01T00:00:00Z"),
		fixedClock("2024-06-30T12:00:00Z"),
	}
	for _, c := range clocks {
		r := NewResolver(DefaultAliases, WithClock(c))
		for _, a := range DefaultAliases {
			offset, err := r.UTCOffset(a.Zone)
			if err != nil {
				t.Fatalf("offset %s: %v", a.Zone, err)
			}
			if !offsetPattern.MatchString(offset) {
				t.Fatalf("offset %s: unexpected format %q", a.Zone, offset)
			}
		}
	}
}

func TestAvailableLocations(t *testing.T) {
	r := NewResolver(DefaultAliases)
	locations := r.AvailableLocations()
	if len(locations) != len(DefaultAliases) {
		t.Fatalf("expected %d locations, got %d", len(DefaultAliases), len(locations))
	}
	if locations[0] != "são paulo" {
		t.Fatalf("expected table order, got %q first", locations[0])
	}

	found := map[string]bool{}
	for _, l := range locations {
		found[l] = true
	}
	for _, want := range []string{"são paulo", "paris"} {
		if !found[want] {
			t.Fatalf("expected %q in available locations", want)
		}
	}

	locations[0] = "mutated"
	if diff := cmp.Diff("são paulo", r.AvailableLocations()[0]); diff != "" {
		t.Fatalf("table mutated through returned slice (-want +got):\n%s", diff)
	}
}

func TestIsValidLocation(t *testing.T) {
	r := NewResolver(DefaultAliases)
	if !r.IsValidLocation("Paris") {
		t.Fatalf("expected Paris to be valid")
	}
	if r.IsValidLocation("LocalidadeInexistente") {
		t.Fatalf("expected unknown location to be invalid")
	}
	if r.IsValidLocation("") {
		t.Fatalf("expected empty location to be invalid")
	}
}

func TestSnapshotJSON(t *testing.T) {
	snap := Snapshot{Year: 2024, Month: time.March, Day: 5, Hour: 7, Minute: 8, Second: 9}
	data, err := snap.MarshalJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"2024-03-05T07:08:09"` {
		t.Fatalf("unexpected encoding %s", data)
	}

	var decoded Snapshot
	if err := decoded.UnmarshalJSON(data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(snap, decoded); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}

	if err := decoded.UnmarshalJSON([]byte(`"yesterday"`)); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSnapshotUnmarshalEscapedString(t *testing.T) {
	var body struct {
		At *Snapshot `json:"at"`
	}
	if err := json.Unmarshal([]byte(`{"at":"2024\u002d03-05T07:08:09"}`), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := &Snapshot{Year: 2024, Month: time.March, Day: 5, Hour: 7, Minute: 8, Second: 9}
	if diff := cmp.Diff(want, body.At); diff != "" {
		t.Fatalf("unexpected snapshot (-want +got):\n%s", diff)
	}

	if err := json.Unmarshal([]byte(`{"at":null}`), &body); err != nil || body.At != nil {
		t.Fatalf("expected null to decode as nil, got %v (%v)", body.At, err)
	}
	var snap Snapshot
	if err := snap.UnmarshalJSON([]byte(`20240305`)); err == nil {
		t.Fatalf("expected error for non-string snapshot")
	}
}
