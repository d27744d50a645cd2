package extract

import "regexp"

// Detection rules are ordered: the first matching rule wins and later rules
// are never consulted. Adding or reordering a rule must not require touching
// the extractor control flow.

// nameRule is a single name detector applied to one line of text.
type nameRule struct {
	// what the rule detects, for debugging
	name string
	re   *regexp.Regexp
	// group is the capture group holding the name; 0 means the whole match.
	group int
	// recase converts an all-caps match back to title case.
	recase bool
}

var nameLineRules = []nameRule{
	{
		name: "title_case",
		re:   regexp.MustCompile(`^[A-Z][a-z]+(?:[-'][A-Z][a-z]+)?(?: [A-Z][a-z]+(?:[-'][A-Z][a-z]+)?){1,2}$`),
	},
	{
		name:  "credentials_suffix",
		re:    regexp.MustCompile(`^([A-Z][a-z]+(?: [A-Z][a-z]+){1,2}),\s*(?:MBA|PhD|MD|CPA|CFA|PMP|PE|RN|Esq\.?|M\.?S\.?c?|B\.?S\.?c?|M\.?A|B\.?A|J\.?D)\b`),
		group: 1,
	},
	{
		name:   "all_caps",
		re:     regexp.MustCompile(`^[A-Z][A-Z'-]{1,}(?: [A-Z][A-Z'-]{1,}){1,3}$`),
		recase: true,
	},
}

// nameFallbackRules scan the flattened text once no line rule matched.
var nameFallbackRules = []nameRule{
	{
		name:  "introduction_phrase",
		re:    regexp.MustCompile(`(?:[Mm]y name is|[Nn]ame is|I am|I'm)\s+([A-Z][a-z]+(?: [A-Z][a-z]+){0,2})`),
		group: 1,
	},
	{
		name:  "header_separator",
		re:    regexp.MustCompile(`(?m)^([A-Z][a-z]+(?: [A-Z][a-z]+){1,2})\s*[|•–—-]`),
		group: 1,
	},
}

var emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// phoneRule matches one phone shape; reformat rebuilds bare digit runs into
// the canonical (XXX) XXX-XXXX form.
type phoneRule struct {
	name     string
	re       *regexp.Regexp
	reformat bool
}

var phoneRules = []phoneRule{
	{
		name: "grouped",
		re:   regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(\d{3}\)\s?\d{3}[-.\s]?\d{4}|(?:\+?\d{1,3}[-.\s])?\d{3}[-.\s]\d{3}[-.\s]\d{4}`),
	},
	{
		name: "country_code",
		re:   regexp.MustCompile(`\+\d{1,3}\s?\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`),
	},
	{
		name:     "bare_digits",
		re:       regexp.MustCompile(`\b(\d{10})\b`),
		reformat: true,
	},
}

// yearRangeRe matches "YYYY - YYYY" and "YYYY - Present/Current/Now" spans
// for years 2000-2029.
var yearRangeRe = regexp.MustCompile(`(?i)(20[0-2]\d)\s*(?:-|–|—|to|until)\s*(20[0-2]\d|present|current|now)`)
