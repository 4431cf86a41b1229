package types

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"
)

// MonsterSnapshot is the stat block of a monster type at the end of a run
type MonsterSnapshot struct {
	HP      int `json:"hp"`
	ATK     int `json:"atk"`
	DEF     int `json:"def"`
	Crystal int `json:"crystal,omitempty"`
	EXP     int `json:"exp,omitempty"`
}

// MonsterSnapshotEntry pairs a monster id with its snapshot
type MonsterSnapshotEntry struct {
	ID       string
	Snapshot MonsterSnapshot
}

// MonsterSnapshots is a JSON object of monster id to snapshot that remembers
// the order in which ids appeared in the document.
type MonsterSnapshots struct {
	entries []MonsterSnapshotEntry
	index   map[string]int
}

// UnmarshalJSON decodes the object key by key so document order is kept.
// A repeated key keeps its first position and takes the last value.
func (m *MonsterSnapshots) UnmarshalJSON(data []byte) error {
	m.entries = nil
	m.index = make(map[string]int)
	return decodeOrderedObject(data, func(key string, value gjson.Result) error {
		snap, err := decodeSnapshot(value)
		if err != nil {
			return fmt.Errorf("monster snapshot %q: %w", key, err)
		}
		if i, ok := m.index[key]; ok {
			m.entries[i].Snapshot = snap
			return nil
		}
		m.index[key] = len(m.entries)
		m.entries = append(m.entries, MonsterSnapshotEntry{ID: key, Snapshot: snap})
		return nil
	})
}

func decodeSnapshot(value gjson.Result) (MonsterSnapshot, error) {
	if !value.IsObject() {
		return MonsterSnapshot{}, fmt.Errorf("expected JSON object, got %s", value.Type)
	}

	var snap MonsterSnapshot
	fields := []struct {
		name string
		dst  *int
	}{
		{"hp", &snap.HP},
		{"atk", &snap.ATK},
		{"def", &snap.DEF},
		{"crystal", &snap.Crystal},
		{"exp", &snap.EXP},
	}
	for _, f := range fields {
		n, err := intValue(value.Get(f.name))
		if err != nil {
			return MonsterSnapshot{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = n
	}
	return snap, nil
}

// Len returns the number of monster ids
func (m MonsterSnapshots) Len() int {
	return len(m.entries)
}

// Entries returns the snapshots in document order
func (m MonsterSnapshots) Entries() []MonsterSnapshotEntry {
	out := make([]MonsterSnapshotEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Get looks up a snapshot by monster id
func (m MonsterSnapshots) Get(id string) (MonsterSnapshot, bool) {
	i, ok := m.index[id]
	if !ok {
		return MonsterSnapshot{}, false
	}
	return m.entries[i].Snapshot, true
}

// CountEntry is one key of an OrderedCounts object
type CountEntry struct {
	Key   string
	Count int
}

// OrderedCounts is a JSON object of string to integer kept in document order
type OrderedCounts struct {
	entries []CountEntry
	index   map[string]int
}

// UnmarshalJSON decodes the object key by key so document order is kept
func (c *OrderedCounts) UnmarshalJSON(data []byte) error {
	c.entries = nil
	c.index = make(map[string]int)
	return decodeOrderedObject(data, func(key string, value gjson.Result) error {
		if value.Type != gjson.Number {
			return fmt.Errorf("count %q: expected number, got %s", key, value.Type)
		}
		n, err := intValue(value)
		if err != nil {
			return fmt.Errorf("count %q: %w", key, err)
		}
		if i, ok := c.index[key]; ok {
			c.entries[i].Count = n
			return nil
		}
		c.index[key] = len(c.entries)
		c.entries = append(c.entries, CountEntry{Key: key, Count: n})
		return nil
	})
}

// Len returns the number of keys
func (c OrderedCounts) Len() int {
	return len(c.entries)
}

// Entries returns the counts in document order
func (c OrderedCounts) Entries() []CountEntry {
	out := make([]CountEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// decodeOrderedObject walks a JSON object and calls visit for each member in
// document order. A JSON null is treated as an empty object.
func decodeOrderedObject(data []byte, visit func(key string, value gjson.Result) error) error {
	doc := gjson.ParseBytes(data)
	if !doc.Exists() || doc.Type == gjson.Null {
		return nil
	}
	if !doc.IsObject() {
		return fmt.Errorf("expected JSON object, got %s", doc.Type)
	}

	var err error
	doc.ForEach(func(key, value gjson.Result) bool {
		err = visit(key.String(), value)
		return err == nil
	})
	return err
}

// intValue reads an integral JSON number. Integral floats such as 12.0 are
// accepted; absent and null values read as zero.
func intValue(v gjson.Result) (int, error) {
	if !v.Exists() || v.Type == gjson.Null {
		return 0, nil
	}
	if v.Type != gjson.Number {
		return 0, fmt.Errorf("expected number, got %s", v.Type)
	}
	if f := v.Float(); f != math.Trunc(f) {
		return 0, fmt.Errorf("expected integer, got %s", v.Raw)
	}
	return int(v.Int()), nil
}
