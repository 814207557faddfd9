package model

// SubmissionLinks are the three artifact URLs required before the project
// counts as shipped. Each must be a syntactically valid absolute URL.
type SubmissionLinks struct {
	LovableLink  string `json:"lovableLink" validate:"required,url"`
	GithubLink   string `json:"githubLink" validate:"required,url"`
	DeployedLink string `json:"deployedLink" validate:"required,url"`
}
