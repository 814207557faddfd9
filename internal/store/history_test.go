package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prepscope/prepscope/internal/model"
)

func validEntry(id string) model.AnalysisEntry {
	return model.AnalysisEntry{
		ID:        id,
		CreatedAt: "2026-03-14T09:26:53Z",
		UpdatedAt: "2026-03-14T09:26:53Z",
		Company:   "Acme",
		Role:      "SDE",
		JDText:    "We need DSA and SQL",
		ExtractedSkills: model.ExtractedSkills{
			{Name: "Core CS", Skills: []string{"DSA"}},
		},
		Plan7Days: []model.DayPlan{{Day: "Day 1", Title: "Core CS Fundamentals", Tasks: []string{"Review OOP principles"}}},
		Checklist: []model.ChecklistRound{{Round: "Round 1", Title: "Aptitude & Basics", Items: []string{"Review quantitative aptitude basics"}}},
		Questions: []string{"Explain the difference between BFS and DFS with use cases."},
		BaseScore: 60,
		FinalScore: 58,
		SkillConfidenceMap: map[string]model.Confidence{"DSA": model.ConfidencePractice},
	}
}

func TestHistoryStore_LoadEmpty(t *testing.T) {
	s := NewHistoryStore(NewMemoryKV())

	h, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, h.Entries)
	assert.Zero(t, h.Corrupted)
}

func TestHistoryStore_SavePrependsNewestFirst(t *testing.T) {
	s := NewHistoryStore(NewMemoryKV())

	require.NoError(t, s.Save(validEntry("first")))
	require.NoError(t, s.Save(validEntry("second")))
	require.NoError(t, s.Save(validEntry("third")))

	h, err := s.Load()
	require.NoError(t, err)
	require.Len(t, h.Entries, 3)
	assert.Equal(t, "third", h.Entries[0].ID)
	assert.Equal(t, "second", h.Entries[1].ID)
	assert.Equal(t, "first", h.Entries[2].ID)
}

func TestHistoryStore_RoundTripPreservesEntry(t *testing.T) {
	s := NewHistoryStore(NewMemoryKV())
	want := validEntry("round-trip")

	require.NoError(t, s.Save(want))

	h, err := s.Load()
	require.NoError(t, err)
	require.Len(t, h.Entries, 1)
	assert.Equal(t, want, h.Entries[0])
}

func TestHistoryStore_TopLevelGarbageIsOneCorruptedUnit(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set("analysis-history", "not json at all"))
	s := NewHistoryStore(kv)

	h, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, h.Entries)
	assert.Equal(t, 1, h.Corrupted)
}

func TestHistoryStore_NonArrayDocumentIsOneCorruptedUnit(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set("analysis-history", `{"entries": []}`))
	s := NewHistoryStore(kv)

	h, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, h.Entries)
	assert.Equal(t, 1, h.Corrupted)
}

func TestHistoryStore_MalformedRecordDroppedSiblingsSurvive(t *testing.T) {
	kv := NewMemoryKV()
	s := NewHistoryStore(kv)

	require.NoError(t, s.Save(validEntry("good-old")))
	require.NoError(t, s.Save(validEntry("good-new")))

	// Splice a record with jdText missing between the two good ones.
	raw, ok, err := kv.Get("analysis-history")
	require.NoError(t, err)
	require.True(t, ok)
	broken := `{"id":"bad","createdAt":"2026-03-14T09:26:53Z","baseScore":50,"finalScore":50,"plan7Days":[],"checklist":[],"questions":[]}`
	spliced := raw[:len(raw)-1] + "," + broken + "]"
	require.NoError(t, kv.Set("analysis-history", spliced))

	h, err := s.Load()
	require.NoError(t, err)
	require.Len(t, h.Entries, 2)
	assert.Equal(t, "good-new", h.Entries[0].ID)
	assert.Equal(t, "good-old", h.Entries[1].ID)
	assert.Equal(t, 1, h.Corrupted)
}

func TestHistoryStore_WrongFieldTypesDropped(t *testing.T) {
	kv := NewMemoryKV()
	// baseScore as a string fails the shape check.
	record := `[{"id":"bad","createdAt":"2026-03-14T09:26:53Z","jdText":"jd","baseScore":"50","finalScore":50,"plan7Days":[],"checklist":[],"questions":[]}]`
	require.NoError(t, kv.Set("analysis-history", record))
	s := NewHistoryStore(kv)

	h, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, h.Entries)
	assert.Equal(t, 1, h.Corrupted)
}

func TestHistoryStore_Update(t *testing.T) {
	s := NewHistoryStore(NewMemoryKV())

	require.NoError(t, s.Save(validEntry("a")))
	require.NoError(t, s.Save(validEntry("b")))

	changed := validEntry("a")
	changed.FinalScore = 72
	require.NoError(t, s.Update(changed))

	got, ok, err := s.GetByID("a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 72, got.FinalScore)

	other, ok, err := s.GetByID("b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 58, other.FinalScore)
}

func TestHistoryStore_GetByIDAbsent(t *testing.T) {
	s := NewHistoryStore(NewMemoryKV())

	_, ok, err := s.GetByID("nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHistoryStore_Delete(t *testing.T) {
	s := NewHistoryStore(NewMemoryKV())

	require.NoError(t, s.Save(validEntry("a")))
	require.NoError(t, s.Save(validEntry("b")))

	require.NoError(t, s.Delete("a"))

	h, err := s.Load()
	require.NoError(t, err)
	require.Len(t, h.Entries, 1)
	assert.Equal(t, "b", h.Entries[0].ID)

	// Deleting an unknown id changes nothing.
	require.NoError(t, s.Delete("zzz"))
	h, err = s.Load()
	require.NoError(t, err)
	assert.Len(t, h.Entries, 1)
}
