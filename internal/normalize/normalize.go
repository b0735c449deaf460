// Package normalize turns persisted or imported history JSON into typed
// records. Malformed records are dropped and reported instead of
// failing the whole load.
package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/misterclayt0n/liftlog/internal/models"
	"github.com/misterclayt0n/liftlog/internal/utils"
)

// Parsed is either a valid record or the reason it was discarded.
type Parsed[T any] struct {
	Record T
	Reason string
}

func (p Parsed[T]) Valid() bool {
	return p.Reason == ""
}

func discard[T any](format string, args ...any) Parsed[T] {
	return Parsed[T]{Reason: fmt.Sprintf(format, args...)}
}

type Discard struct {
	Key    string
	Index  int
	Reason string
}

func (d Discard) String() string {
	if d.Index < 0 {
		return fmt.Sprintf("%s: %s", d.Key, d.Reason)
	}
	return fmt.Sprintf("%s[%d]: %s", d.Key, d.Index, d.Reason)
}

type Result[T any] struct {
	Records   T
	Discarded []Discard
}

// number accepts 135, 135.5 and "135".
type number float64

func (n *number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = 0
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", s)
		}
		*n = number(f)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*n = number(f)
	return nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("missing date")
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04:05.000Z"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	if t, err := utils.ParseDayKey(s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", s)
}

// IsObject reports whether raw is a JSON object.
func IsObject(raw json.RawMessage) bool {
	b := bytes.TrimSpace(raw)
	return len(b) > 0 && b[0] == '{' && json.Valid(b)
}

func objectEntries(raw json.RawMessage) (map[string]json.RawMessage, error) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return map[string]json.RawMessage{}, nil
	}
	if !IsObject(raw) {
		return nil, fmt.Errorf("expected a JSON object")
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func recordList(raw json.RawMessage) ([]json.RawMessage, error) {
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("expected a list of sessions")
	}
	return list, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// collapseByDay sorts by date and keeps the last record of each day.
func collapseByDay[T any](records []T, date func(T) time.Time) []T {
	sort.SliceStable(records, func(i, j int) bool {
		return date(records[i]).Before(date(records[j]))
	})

	out := records[:0]
	lastDay := ""
	for _, r := range records {
		day := utils.DayKey(date(r))
		if len(out) > 0 && day == lastDay {
			out[len(out)-1] = r
			continue
		}
		out = append(out, r)
		lastDay = day
	}
	return out
}

// DayKeys normalizes a rest-day list: invalid keys are dropped,
// duplicates removed, order ascending.
func DayKeys(raw []string) ([]string, []Discard) {
	var discarded []Discard
	seen := make(map[string]bool)
	out := []string{}
	for i, k := range raw {
		t, err := utils.ParseDayKey(strings.TrimSpace(k))
		if err != nil {
			discarded = append(discarded, Discard{Key: "restDays", Index: i, Reason: "invalid day key"})
			continue
		}
		key := utils.DayKey(t)
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out, discarded
}

// Sets keeps only sets with positive weight and reps.
func Sets(sets []models.LoggedSet) []models.LoggedSet {
	out := make([]models.LoggedSet, 0, len(sets))
	for _, s := range sets {
		if s.Valid() {
			out = append(out, s)
		}
	}
	return out
}
