package skills

// Master dictionary used for resume skill tagging. Matching follows
// declaration order, so the output set is stable across runs regardless of
// where terms appear in the text.
var Master = []string{
	"JavaScript",
	"TypeScript",
	"Python",
	"Java",
	"C#",
	"C++",
	"Go",
	"Ruby",
	"PHP",
	"Swift",
	"Kotlin",
	"SQL",
	"HTML",
	"CSS",
	"React",
	"Angular",
	"Vue",
	"Node.js",
	"Express",
	"Django",
	"Spring",
	"AWS",
	"Azure",
	"Google Cloud",
	"Docker",
	"Kubernetes",
	"Terraform",
	"Git",
	"CI/CD",
	"MongoDB",
	"PostgreSQL",
	"MySQL",
	"Redis",
	"GraphQL",
	"REST API",
	"Machine Learning",
	"Data Analysis",
	"Agile",
	"Scrum",
	"Project Management",
	"Product Management",
	"Leadership",
	"Communication",
	"Problem Solving",
	"Teamwork",
}

// Industry identifies one of the ATS keyword groups.
type Industry string

const (
	IndustrySoftware   Industry = "software"
	IndustryMarketing  Industry = "marketing"
	IndustryFinance    Industry = "finance"
	IndustryHealthcare Industry = "healthcare"
	IndustryGeneral    Industry = "general"
)

// IndustryOrder fixes tie-breaking for industry detection: on equal match
// counts the earlier-declared industry wins.
var IndustryOrder = []Industry{
	IndustrySoftware,
	IndustryMarketing,
	IndustryFinance,
	IndustryHealthcare,
}

// IndustryKeywords drives ATS industry detection and keyword scoring. It is
// deliberately kept separate from Master: skill tagging and industry
// classification evolved as different vocabularies and must not be merged.
var IndustryKeywords = map[Industry][]string{
	IndustrySoftware: {
		"software", "developer", "programming", "engineer", "code",
		"agile", "scrum", "api", "database", "cloud",
		"frontend", "backend", "devops", "testing", "architecture",
	},
	IndustryMarketing: {
		"marketing", "brand", "campaign", "seo", "social media",
		"content", "advertising", "analytics", "audience", "engagement",
		"conversion", "copywriting",
	},
	IndustryFinance: {
		"finance", "accounting", "audit", "budget", "investment",
		"banking", "tax", "portfolio", "compliance", "forecasting",
		"reconciliation", "reporting",
	},
	IndustryHealthcare: {
		"healthcare", "patient", "clinical", "medical", "nursing",
		"hospital", "pharmacy", "treatment", "diagnosis", "therapy",
		"care plan", "hipaa",
	},
	IndustryGeneral: {
		"experience", "skills", "education", "team", "management",
		"communication", "leadership", "project", "organization", "results",
	},
}
