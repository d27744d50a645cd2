package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "dictionary order regardless of text order",
			text: "SQL first, then Python, then JavaScript",
			want: []string{"JavaScript", "Python", "SQL"},
		},
		{
			name: "case insensitive",
			text: "expert in PYTHON and docker",
			want: []string{"Python", "Docker"},
		},
		{
			name: "duplicates collapse",
			text: "Python, Python and more Python",
			want: []string{"Python"},
		},
		{
			name: "symbol heavy terms",
			text: "C# and C++ services, Node.js tooling, CI/CD pipelines",
			want: []string{"C#", "C++", "Node.js", "CI/CD"},
		},
		{
			name: "no substring hits",
			text: "Django JavaScripting Googler",
			want: []string{"Django"},
		},
		{
			name: "multiword term",
			text: "applied machine learning at scale",
			want: []string{"Machine Learning"},
		},
		{
			name: "term at string boundaries",
			text: "Go",
			want: []string{"Go"},
		},
		{
			name: "empty text",
			text: "",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.text))
		})
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	text := "React, Go, SQL, Docker, Leadership"
	first := Match(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Match(text))
	}
}
