package files

import (
	"fmt"
	"regexp"
	"strings"
)

// Replacement is a regex pattern replacement applied to a
// submission name before it becomes a file name.
type Replacement struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Lower       bool   `yaml:"lower"`
}

func (r Replacement) String() string {
	return fmt.Sprintf("'%s' => '%s'", r.Pattern, r.Replacement)
}

// Replace will perform the replacement on name.
func (r Replacement) Replace(name string) (result string, err error) {
	result = name
	pat, err := regexp.Compile(r.Pattern)
	if err != nil {
		return result, err
	}
	if r.Lower {
		return pat.ReplaceAllStringFunc(result, func(s string) string {
			return strings.ToLower(pat.ReplaceAllString(s, r.Replacement))
		}), nil
	}
	return pat.ReplaceAllString(result, r.Replacement), nil
}

// DoReplacements returns the result of a series of replacements
// applied in order.
func DoReplacements(patterns []Replacement, name string) (result string, err error) {
	result = name
	for _, rep := range patterns {
		result, err = rep.Replace(result)
		if err != nil {
			return
		}
	}
	return
}
