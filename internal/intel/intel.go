// Package intel infers a heuristic company profile — size, industry, hiring
// focus, and a predicted interview-round sequence — from the company name and
// JD text. Everything is table-driven: no lookups leave the process.
package intel

import (
	"regexp"
	"strings"

	"github.com/prepscope/prepscope/internal/model"
)

// enterpriseCompanies triggers the Enterprise size bucket on substring match
// against the lowercased company name. Checked before midsizeCompanies.
var enterpriseCompanies = []string{
	"amazon", "google", "microsoft", "meta", "apple", "netflix", "infosys",
	"tcs", "wipro", "hcl", "cognizant", "accenture", "ibm", "oracle",
	"salesforce", "adobe", "uber", "flipkart", "paytm", "deloitte",
	"capgemini", "tech mahindra", "mindtree", "mphasis", "l&t infotech",
	"walmart", "goldman sachs", "jpmorgan", "morgan stanley", "samsung",
}

var midsizeCompanies = []string{
	"zomato", "swiggy", "razorpay", "cred", "meesho", "phonepe",
	"groww", "zerodha", "freshworks", "zoho", "postman", "browserstack",
	"hasura", "chargebee", "clevertap", "druva", "icertis",
}

// industryRules is an ordered keyword table; first match against
// company + " " + jdText (lowercased) wins.
var industryRules = []struct {
	expr  *regexp.Regexp
	label string
}{
	{regexp.MustCompile(`fintech|banking|payment|finance`), "Financial Technology"},
	{regexp.MustCompile(`health|medical|pharma`), "Healthcare & Life Sciences"},
	{regexp.MustCompile(`ecommerce|e-commerce|retail|shopping`), "E-Commerce & Retail"},
	{regexp.MustCompile(`edtech|education|learning`), "Education Technology"},
	{regexp.MustCompile(`gaming|game`), "Gaming & Entertainment"},
	{regexp.MustCompile(`logistics|supply chain|delivery`), "Logistics & Supply Chain"},
}

const defaultIndustry = "Technology Services"

// Infer builds the company profile. Returns nil when the company name trims
// to empty — the entry then simply carries no intel.
func Infer(company, jdText string, skills model.ExtractedSkills) *model.CompanyIntel {
	trimmed := strings.TrimSpace(company)
	if trimmed == "" {
		return nil
	}

	size := inferSize(company)
	return &model.CompanyIntel{
		Name:        trimmed,
		Industry:    inferIndustry(company, jdText),
		Size:        size,
		SizeLabel:   sizeLabel(size),
		HiringFocus: hiringFocus(size),
		Rounds:      generateRounds(size, skills),
	}
}

func inferSize(company string) model.CompanySize {
	lower := strings.ToLower(strings.TrimSpace(company))
	for _, c := range enterpriseCompanies {
		if strings.Contains(lower, c) {
			return model.SizeEnterprise
		}
	}
	for _, c := range midsizeCompanies {
		if strings.Contains(lower, c) {
			return model.SizeMidSize
		}
	}
	return model.SizeStartup
}

func sizeLabel(size model.CompanySize) string {
	switch size {
	case model.SizeEnterprise:
		return "Enterprise (2000+ employees)"
	case model.SizeMidSize:
		return "Mid-size (200–2000 employees)"
	default:
		return "Startup (<200 employees)"
	}
}

func inferIndustry(company, jdText string) string {
	text := strings.ToLower(company + " " + jdText)
	for _, r := range industryRules {
		if r.expr.MatchString(text) {
			return r.label
		}
	}
	return defaultIndustry
}

func hiringFocus(size model.CompanySize) string {
	switch size {
	case model.SizeEnterprise:
		return "Structured DSA rounds, core CS fundamentals, standardized aptitude tests, and behavioral interviews. Expect well-defined evaluation rubrics."
	case model.SizeMidSize:
		return "Mix of DSA and practical problem-solving. Strong emphasis on system design basics and technology stack familiarity."
	default:
		return "Practical problem-solving, stack depth, and culture fit. Expect hands-on coding tasks, project discussions, and real-world scenario questions."
	}
}
