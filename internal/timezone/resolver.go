package timezone

import (
	"fmt"
	"strings"
	"time"
)

// Clock provides the current instant to the resolver.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Resolver maps free-text locations to IANA zones. It is immutable after
// NewResolver returns and safe for concurrent use.
type Resolver struct {
	aliases   []Alias
	exact     map[string]string
	locations map[string]*time.Location
	clock     Clock
}

type Option func(*Resolver)

// WithClock replaces the wall clock used by Snapshot and UTCOffset.
func WithClock(c Clock) Option {
	return func(r *Resolver) {
		if c != nil {
			r.clock = c
		}
	}
}

// NewResolver builds a resolver over aliases. Zones are loaded once here; an
// alias whose zone does not load stays in the table but never matches.
func NewResolver(aliases []Alias, opts ...Option) *Resolver {
	r := &Resolver{
		aliases:   make([]Alias, 0, len(aliases)),
		exact:     make(map[string]string, len(aliases)),
		locations: make(map[string]*time.Location),
		clock:     systemClock{},
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, a := range aliases {
		name := normalize(a.Name)
		if name == "" {
			continue
		}
		if _, dup := r.exact[name]; dup {
			continue
		}
		r.aliases = append(r.aliases, Alias{Name: name, Zone: a.Zone})
		r.exact[name] = a.Zone

		if _, seen := r.locations[a.Zone]; seen {
			continue
		}
		if loc, err := loadZone(a.Zone); err == nil {
			r.locations[a.Zone] = loc
		} else {
			r.locations[a.Zone] = nil
		}
	}
	return r
}

// Resolve returns the zone for raw. An exact alias match wins; otherwise the
// first alias, in table order, that contains the input or is contained by it.
func (r *Resolver) Resolve(raw string) (string, error) {
	query := normalize(raw)
	if query == "" {
		return "", ErrEmptyLocation
	}

	if zone, ok := r.exact[query]; ok && r.valid(zone) {
		return zone, nil
	}

	for _, a := range r.aliases {
		if !strings.Contains(a.Name, query) && !strings.Contains(query, a.Name) {
			continue
		}
		if r.valid(a.Zone) {
			return a.Zone, nil
		}
	}
	return "", ErrLocationNotFound
}

func (r *Resolver) IsValidLocation(raw string) bool {
	_, err := r.Resolve(raw)
	return err == nil
}

// AvailableLocations lists alias names in table order.
func (r *Resolver) AvailableLocations() []string {
	out := make([]string, 0, len(r.aliases))
	for _, a := range r.aliases {
		out = append(out, a.Name)
	}
	return out
}

// Snapshot returns the current wall-clock time in zone.
func (r *Resolver) Snapshot(zone string) (Snapshot, error) {
	now, err := r.now(zone)
	if err != nil {
		return Snapshot{}, err
	}
	return newSnapshot(now), nil
}

// UTCOffset returns the zone's current offset as ±HH:MM.
func (r *Resolver) UTCOffset(zone string) (string, error) {
	now, err := r.now(zone)
	if err != nil {
		return "", err
	}
	return formatOffset(now), nil
}

func (r *Resolver) now(zone string) (time.Time, error) {
	loc, err := r.location(zone)
	if err != nil {
		return time.Time{}, err
	}
	return r.clock.Now().In(loc), nil
}

func (r *Resolver) location(zone string) (*time.Location, error) {
	if loc, ok := r.locations[zone]; ok {
		if loc == nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidZone, zone)
		}
		return loc, nil
	}
	return loadZone(zone)
}

func (r *Resolver) valid(zone string) bool {
	return r.locations[zone] != nil
}

func loadZone(zone string) (*time.Location, error) {
	// LoadLocation maps "" to UTC; an empty table entry is corrupt.
	if strings.TrimSpace(zone) == "" {
		return nil, fmt.Errorf("%w: empty zone", ErrInvalidZone)
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidZone, zone, err)
	}
	return loc, nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// formatOffset renders zero as +00:00, never Z.
func formatOffset(t time.Time) string {
	return t.Format("-07:00")
}
