package model

// SkillCategory is one named group of extracted skill display names.
// Skills keep the order in which their patterns matched.
type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

// ExtractedSkills is the ordered result of scanning a job description against
// the skill taxonomy. Category order follows the taxonomy table; a category is
// present only if at least one of its patterns matched. Encoded as a JSON array
// so the ordering survives persistence.
type ExtractedSkills []SkillCategory

// Has reports whether a category with the given name is present.
func (s ExtractedSkills) Has(category string) bool {
	for _, c := range s {
		if c.Name == category {
			return true
		}
	}
	return false
}

// Flatten returns all skill display names in extraction order.
func (s ExtractedSkills) Flatten() []string {
	var all []string
	for _, c := range s {
		all = append(all, c.Skills...)
	}
	return all
}

// HasSkill reports whether the given display name appears in any category.
func (s ExtractedSkills) HasSkill(name string) bool {
	for _, c := range s {
		for _, sk := range c.Skills {
			if sk == name {
				return true
			}
		}
	}
	return false
}
