package domain

import "fmt"

// Role is the canonical classification of a recognized punctuation sign.
type Role uint8

const (
	RoleJPComma Role = iota
	RoleJPPeriod
	RoleENCommaFull
	RoleENCommaHalf
	RoleENPeriodFull
	RoleENPeriodHalf

	// NumRoles is the number of roles; tables indexed by Role use it as length.
	NumRoles = int(RoleENPeriodHalf) + 1
)

var roleNames = [NumRoles]string{
	RoleJPComma:      "jp-comma",
	RoleJPPeriod:     "jp-period",
	RoleENCommaFull:  "en-comma-full",
	RoleENCommaHalf:  "en-comma-half",
	RoleENPeriodFull: "en-period-full",
	RoleENPeriodHalf: "en-period-half",
}

// AllRoles returns every role in declaration order.
func AllRoles() []Role {
	roles := make([]Role, NumRoles)
	for i := range roles {
		roles[i] = Role(i)
	}
	return roles
}

func (r Role) IsValid() bool { return int(r) < NumRoles }

func (r Role) String() string {
	if !r.IsValid() {
		return fmt.Sprintf("role(%d)", uint8(r))
	}
	return roleNames[r]
}

// Family returns StyleJP for Japanese signs and StyleEN for Western ones.
func (r Role) Family() Style {
	switch r {
	case RoleJPComma, RoleJPPeriod:
		return StyleJP
	case RoleENCommaFull, RoleENCommaHalf, RoleENPeriodFull, RoleENPeriodHalf:
		return StyleEN
	}
	return StyleNone
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fmt.Errorf("invalid role %d", uint8(r))
	}
	return []byte(roleNames[r]), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	parsed, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseRole converts a canonical role name such as "jp-comma" into a Role.
func ParseRole(s string) (Role, error) {
	for i, name := range roleNames {
		if name == s {
			return Role(i), nil
		}
	}
	return 0, fmt.Errorf("unknown role %q", s)
}

// Issue is one occurrence of a recognized sign. Index counts code points
// from the start of the line.
type Issue struct {
	Line    int
	Index   int
	Role    Role
	Message string
}

// Change is one rewritten sign. Position counts code points from the start
// of the whole text, assuming single-character line separators.
type Change struct {
	Line      int
	Position  int
	Original  string
	Converted string
}

// CheckSummary describes how a request was resolved.
type CheckSummary struct {
	DetectedStyle Style
	// AppliedStyle is StyleNone when no rewrite target could be resolved.
	AppliedStyle Style
	TotalChanges int
}

// CheckResult is the full outcome of a punctuation check or conversion.
type CheckResult struct {
	Text       string
	Issues     []Issue
	Changes    []Change
	Statistics []string
	RoleCounts map[Role]int
	Summary    CheckSummary
	Diff       string
	Usage      *Usage
}
