package query

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/artem13815/resumeai/pkg/extract"
)

// Profile is the view of extracted fields the responder answers from.
type Profile struct {
	Name              string
	Email             string
	Phone             string
	Skills            []string
	YearsOfExperience int
}

// topSkills caps how many skills a skills answer embeds.
const topSkills = 5

// intent is one entry of the ordered classification table. The first intent
// whose match function fires wins; reordering entries changes behavior, so
// the table order mirrors the documented priority:
// name > email > phone > experience > skills.
type intent struct {
	name   string
	match  func(q string) bool
	answer func(p Profile) string
}

var skillQuestionRe = regexp.MustCompile(`what\s+(?:do|does|skills?)\b.*\b(?:have|has)\b`)

var intents = []intent{
	{
		name:  "name",
		match: func(q string) bool { return strings.Contains(q, "name") },
		answer: func(p Profile) string {
			if p.Name == extract.Unknown {
				return "I couldn't find the candidate's name in this resume."
			}
			return fmt.Sprintf("The candidate's name is %s.", highlight(p.Name))
		},
	},
	{
		name:  "email",
		match: func(q string) bool { return strings.Contains(q, "email") },
		answer: func(p Profile) string {
			if p.Email == extract.Unknown {
				return "I couldn't find an email address in this resume."
			}
			return fmt.Sprintf("The candidate's email is %s.", highlight(p.Email))
		},
	},
	{
		name: "phone",
		match: func(q string) bool {
			return strings.Contains(q, "phone") || strings.Contains(q, "number") || strings.Contains(q, "contact")
		},
		answer: func(p Profile) string {
			if p.Phone == extract.Unknown {
				return "I couldn't find a phone number in this resume."
			}
			return fmt.Sprintf("The candidate's phone number is %s.", highlight(p.Phone))
		},
	},
	{
		name:  "experience",
		match: func(q string) bool { return strings.Contains(q, "experience") },
		answer: func(p Profile) string {
			if p.YearsOfExperience <= 0 {
				return "I couldn't determine the candidate's years of experience from this resume."
			}
			return fmt.Sprintf("The candidate has %s of relevant experience.",
				highlight(fmt.Sprintf("%d years", p.YearsOfExperience)))
		},
	},
	{
		name: "skills",
		match: func(q string) bool {
			return strings.Contains(q, "skill") || skillQuestionRe.MatchString(q)
		},
		answer: func(p Profile) string {
			if len(p.Skills) == 0 {
				return "I couldn't find any recognizable skills in this resume."
			}
			top := p.Skills
			if len(top) > topSkills {
				top = top[:topSkills]
			}
			return fmt.Sprintf("The candidate's key skills include %s.", highlight(strings.Join(top, ", ")))
		},
	},
}

// Answer maps a free-text question to an extracted field and renders a
// templated HTML-safe sentence. Unrecognized questions get a defined
// fallback; this function always succeeds.
func Answer(q string, p Profile) string {
	lowered := strings.ToLower(strings.TrimSpace(q))
	for _, in := range intents {
		if in.match(lowered) {
			return in.answer(p)
		}
	}
	if p.Name != extract.Unknown {
		return fmt.Sprintf("I couldn't find a specific answer about %s. Try asking about their name, email, phone, experience or skills.",
			html.EscapeString(p.Name))
	}
	return "I couldn't find a specific answer to your question. Try asking about the candidate's name, email, phone, experience or skills."
}

func highlight(v string) string {
	return `<span class="query-highlight">` + html.EscapeString(v) + `</span>`
}
