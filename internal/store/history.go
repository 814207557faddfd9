// Package store persists the analysis history, the test-checklist state, and
// the submission links. Each is a single JSON document under a dedicated key
// of an injected key-value capability, read and rewritten whole.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/prepscope/prepscope/internal/model"
)

// historyKey is the slot holding the serialized entry collection.
const historyKey = "analysis-history"

// HistoryStore is the durable, versioned collection of analysis entries,
// newest first. Malformed records are dropped and counted on load, never
// surfaced as errors; only storage-level failures are.
type HistoryStore struct {
	kv model.KeyValue
}

// NewHistoryStore returns a history store over the given key-value capability.
func NewHistoryStore(kv model.KeyValue) *HistoryStore {
	return &HistoryStore{kv: kv}
}

// Load reads the full history. A missing slot yields an empty history. A slot
// whose content fails to parse as a JSON array is one corrupted unit: empty
// entries, corrupted count 1. Individual records failing the shape check are
// dropped and counted without affecting their siblings.
func (s *HistoryStore) Load() (model.History, error) {
	raw, ok, err := s.kv.Get(historyKey)
	if err != nil {
		return model.History{}, fmt.Errorf("load history: %w", err)
	}
	if !ok {
		return model.History{}, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return model.History{Corrupted: 1}, nil
	}

	var h model.History
	for _, item := range items {
		entry, ok := decodeEntry(item)
		if !ok {
			h.Corrupted++
			continue
		}
		h.Entries = append(h.Entries, entry)
	}
	return h, nil
}

// decodeEntry validates the top-level shape of one record and unmarshals it.
// The check mirrors the persisted contract: id, createdAt, and jdText are
// text; baseScore and finalScore are numbers; plan7Days, checklist, and
// questions are sequences. Nested element shapes are not validated.
func decodeEntry(raw json.RawMessage) (model.AnalysisEntry, bool) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(raw, &top); err != nil {
		return model.AnalysisEntry{}, false
	}

	for _, field := range []string{"id", "createdAt", "jdText"} {
		if !isJSONString(top[field]) {
			return model.AnalysisEntry{}, false
		}
	}
	for _, field := range []string{"baseScore", "finalScore"} {
		if !isJSONNumber(top[field]) {
			return model.AnalysisEntry{}, false
		}
	}
	for _, field := range []string{"plan7Days", "checklist", "questions"} {
		if !isJSONArray(top[field]) {
			return model.AnalysisEntry{}, false
		}
	}

	var entry model.AnalysisEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return model.AnalysisEntry{}, false
	}
	return entry, true
}

func isJSONString(raw json.RawMessage) bool {
	var s string
	return raw != nil && json.Unmarshal(raw, &s) == nil
}

func isJSONNumber(raw json.RawMessage) bool {
	var n float64
	return raw != nil && json.Unmarshal(raw, &n) == nil
}

func isJSONArray(raw json.RawMessage) bool {
	var a []json.RawMessage
	return raw != nil && json.Unmarshal(raw, &a) == nil
}

// Save prepends the entry, keeping the collection newest first.
func (s *HistoryStore) Save(entry model.AnalysisEntry) error {
	h, err := s.Load()
	if err != nil {
		return err
	}
	entries := append([]model.AnalysisEntry{entry}, h.Entries...)
	return s.write(entries)
}

// Update replaces the record with a matching id; all others are unchanged.
func (s *HistoryStore) Update(entry model.AnalysisEntry) error {
	h, err := s.Load()
	if err != nil {
		return err
	}
	for i := range h.Entries {
		if h.Entries[i].ID == entry.ID {
			h.Entries[i] = entry
		}
	}
	return s.write(h.Entries)
}

// GetByID returns the entry with the given id, or ok=false if absent.
func (s *HistoryStore) GetByID(id string) (model.AnalysisEntry, bool, error) {
	h, err := s.Load()
	if err != nil {
		return model.AnalysisEntry{}, false, err
	}
	for _, e := range h.Entries {
		if e.ID == id {
			return e, true, nil
		}
	}
	return model.AnalysisEntry{}, false, nil
}

// Delete removes the entry with the given id. Unknown ids are a no-op.
func (s *HistoryStore) Delete(id string) error {
	h, err := s.Load()
	if err != nil {
		return err
	}
	entries := h.Entries[:0]
	for _, e := range h.Entries {
		if e.ID != id {
			entries = append(entries, e)
		}
	}
	return s.write(entries)
}

func (s *HistoryStore) write(entries []model.AnalysisEntry) error {
	if entries == nil {
		entries = []model.AnalysisEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := s.kv.Set(historyKey, string(data)); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
