package model

// CompanySize is the inferred size bucket for a company.
type CompanySize string

const (
	SizeStartup    CompanySize = "Startup"
	SizeMidSize    CompanySize = "Mid-size"
	SizeEnterprise CompanySize = "Enterprise"
)

// RoundMapping is one predicted interview round with its rationale.
type RoundMapping struct {
	Round string `json:"round"`
	Title string `json:"title"`
	Why   string `json:"why"`
}

// CompanyIntel is the heuristic company profile inferred from the company
// name and JD text. Present on an entry only when the company name is non-blank.
type CompanyIntel struct {
	Name        string         `json:"name"`
	Industry    string         `json:"industry"`
	Size        CompanySize    `json:"size"`
	SizeLabel   string         `json:"sizeLabel"`
	HiringFocus string         `json:"hiringFocus"`
	Rounds      []RoundMapping `json:"rounds"`
}
