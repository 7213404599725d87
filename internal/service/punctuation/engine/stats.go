package engine

import (
	"fmt"

	"github.com/heartmarshall/punctcheck/internal/domain"
)

// Tally counts sign occurrences per role. The zero value is ready to use.
type Tally [domain.NumRoles]int

// Add records one occurrence of role.
func (t *Tally) Add(role domain.Role) {
	if role.IsValid() {
		t[role]++
	}
}

// AddIssues records the role of every issue.
func (t *Tally) AddIssues(issues []domain.Issue) {
	for _, is := range issues {
		t.Add(is.Role)
	}
}

// Count returns the number of occurrences of role.
func (t *Tally) Count(role domain.Role) int {
	if !role.IsValid() {
		return 0
	}
	return t[role]
}

// Counts returns the nonzero counts keyed by role.
func (t *Tally) Counts() map[domain.Role]int {
	m := make(map[domain.Role]int)
	for i, n := range t {
		if n > 0 {
			m[domain.Role(i)] = n
		}
	}
	return m
}

// Statistics renders one line per role with a nonzero count, in role order.
func (t *Tally) Statistics() []string {
	lines := []string{}
	for i, n := range t {
		if n == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%sが%d個", labels[i], n))
	}
	return lines
}
