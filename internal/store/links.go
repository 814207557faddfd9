package store

import (
	"encoding/json"
	"fmt"

	"github.com/prepscope/prepscope/internal/model"
)

// linksKey is the slot holding the final submission links.
const linksKey = "final-submission"

// LinksStore persists the submission links as one JSON document. Partial or
// unreadable content loads as empty fields; validation happens in the gate,
// not here.
type LinksStore struct {
	kv model.KeyValue
}

func NewLinksStore(kv model.KeyValue) *LinksStore {
	return &LinksStore{kv: kv}
}

// Saved returns whatever links are stored, possibly with empty fields.
func (s *LinksStore) Saved() (model.SubmissionLinks, error) {
	raw, ok, err := s.kv.Get(linksKey)
	if err != nil {
		return model.SubmissionLinks{}, fmt.Errorf("load submission links: %w", err)
	}
	if !ok {
		return model.SubmissionLinks{}, nil
	}

	var links model.SubmissionLinks
	if err := json.Unmarshal([]byte(raw), &links); err != nil {
		return model.SubmissionLinks{}, nil
	}
	return links, nil
}

// Save stores the links whole.
func (s *LinksStore) Save(links model.SubmissionLinks) error {
	data, err := json.Marshal(links)
	if err != nil {
		return fmt.Errorf("encode submission links: %w", err)
	}
	if err := s.kv.Set(linksKey, string(data)); err != nil {
		return fmt.Errorf("save submission links: %w", err)
	}
	return nil
}
