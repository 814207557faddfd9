package store

import (
	"encoding/json"
	"fmt"

	"github.com/prepscope/prepscope/internal/model"
)

// checklistKey is the slot holding the test-checklist state.
const checklistKey = "test-checklist"

// ChecklistStore persists the manual test-checklist state: a map from fixed
// test id to checked. The default (missing or unreadable slot) is the empty
// map — everything unchecked.
type ChecklistStore struct {
	kv model.KeyValue
}

func NewChecklistStore(kv model.KeyValue) *ChecklistStore {
	return &ChecklistStore{kv: kv}
}

// Checked returns the persisted state. Unparseable content falls back to the
// empty state rather than erroring; the checklist is always recoverable.
func (s *ChecklistStore) Checked() (map[string]bool, error) {
	raw, ok, err := s.kv.Get(checklistKey)
	if err != nil {
		return nil, fmt.Errorf("load checklist state: %w", err)
	}
	if !ok {
		return map[string]bool{}, nil
	}

	var state map[string]bool
	if err := json.Unmarshal([]byte(raw), &state); err != nil || state == nil {
		return map[string]bool{}, nil
	}
	return state, nil
}

// SetChecked replaces the whole state.
func (s *ChecklistStore) SetChecked(state map[string]bool) error {
	if state == nil {
		state = map[string]bool{}
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode checklist state: %w", err)
	}
	if err := s.kv.Set(checklistKey, string(data)); err != nil {
		return fmt.Errorf("save checklist state: %w", err)
	}
	return nil
}

// Reset clears the state back to everything unchecked.
func (s *ChecklistStore) Reset() error {
	if err := s.kv.Delete(checklistKey); err != nil {
		return fmt.Errorf("reset checklist state: %w", err)
	}
	return nil
}
