package life

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Rule holds the neighbour counts that cause birth and survival, as bitmasks
// indexed by count (0..8).
type Rule struct {
	Birth   uint16
	Survive uint16
}

// Conway is the standard B3/S23 rule.
var Conway = Rule{Birth: 1 << 3, Survive: 1<<2 | 1<<3}

// Next reports whether a cell in the given state with n live neighbours is
// alive in the next generation.
func (r Rule) Next(alive bool, n int) bool {
	if alive {
		return r.Survive&(1<<n) != 0
	}
	return r.Birth&(1<<n) != 0
}

// String renders the rule in B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	writeCounts(&b, r.Birth)
	b.WriteString("/S")
	writeCounts(&b, r.Survive)
	return b.String()
}

func writeCounts(b *strings.Builder, mask uint16) {
	for n := 0; n <= 8; n++ {
		if mask&(1<<n) != 0 {
			b.WriteString(strconv.Itoa(n))
		}
	}
}

// ParseRule parses a rulestring in "B3/S23" form. The legacy "23/3"
// survival/birth form is accepted too.
func ParseRule(s string) (Rule, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return Rule{}, errors.Errorf("rule %q: want two parts separated by '/'", s)
	}

	var birthPart, survivePart string
	switch {
	case strings.HasPrefix(parts[0], "B") && strings.HasPrefix(parts[1], "S"):
		birthPart, survivePart = parts[0][1:], parts[1][1:]
	case strings.HasPrefix(parts[0], "S") && strings.HasPrefix(parts[1], "B"):
		survivePart, birthPart = parts[0][1:], parts[1][1:]
	default:
		survivePart, birthPart = parts[0], parts[1]
	}

	birth, err := parseCounts(birthPart)
	if err != nil {
		return Rule{}, errors.Wrapf(err, "rule %q: birth", s)
	}
	survive, err := parseCounts(survivePart)
	if err != nil {
		return Rule{}, errors.Wrapf(err, "rule %q: survival", s)
	}
	if birth&1 != 0 {
		return Rule{}, errors.Errorf("rule %q: B0 is not supported", s)
	}
	return Rule{Birth: birth, Survive: survive}, nil
}

func parseCounts(s string) (uint16, error) {
	var mask uint16
	for _, c := range s {
		if c < '0' || c > '8' {
			return 0, errors.Errorf("invalid neighbour count %q", c)
		}
		mask |= 1 << (c - '0')
	}
	return mask, nil
}
