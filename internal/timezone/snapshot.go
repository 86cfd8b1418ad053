package timezone

import (
	"encoding/json"
	"fmt"
	"time"
)

// LocalDateTimeLayout is the wire format of Snapshot.
const LocalDateTimeLayout = "2006-01-02T15:04:05"

// Snapshot is a wall-clock reading without zone information.
type Snapshot struct {
	Year   int
	Month  time.Month
	Day    int
	Hour   int
	Minute int
	Second int
}

func newSnapshot(t time.Time) Snapshot {
	return Snapshot{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// ParseSnapshot parses a value produced by Snapshot.String.
func ParseSnapshot(s string) (Snapshot, error) {
	t, err := time.Parse(LocalDateTimeLayout, s)
	if err != nil {
		return Snapshot{}, err
	}
	return newSnapshot(t), nil
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", s.Year, int(s.Month), s.Day, s.Hour, s.Minute, s.Second)
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timezone: invalid snapshot %s: %w", data, err)
	}
	parsed, err := ParseSnapshot(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
