package jobsearch

import (
	"regexp"
	"strconv"
	"strings"
)

var digitsRe = regexp.MustCompile(`\d+`)

// ExtractPrice returns the first integer in a free-text salary after
// thousand-separator commas are removed. A salary without digits yields 0.
func ExtractPrice(salary string) int {
	m := digitsRe.FindString(strings.ReplaceAll(salary, ",", ""))
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}
