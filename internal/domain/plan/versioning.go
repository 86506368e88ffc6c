package plan

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const versionPrefix = "v"

// ParseVersion extracts N from a "v<N>" label.
func ParseVersion(label string) (int, bool) {
	if !strings.HasPrefix(label, versionPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(label[len(versionPrefix):])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// FormatVersion renders N as "v<N>".
func FormatVersion(n int) string {
	return versionPrefix + strconv.Itoa(n)
}

// ResolveVersion labels the price tier of a plan among its siblings, the
// other plans sharing its (language, mode) identity.
//
// A price no sibling carries opens a new tier numbered one past the highest
// "v<N>" label. A price some sibling already carries reuses that tier: the
// highest numbered matching sibling's label, or the submitted label when it
// names any matching sibling. A submitted label that belongs to a sibling
// priced differently is ignored. Any other submitted label is taken as an
// administrative correction and kept as given.
func ResolveVersion(siblings []*Plan, price decimal.Decimal, submitted string) string {
	submitted = strings.TrimSpace(submitted)

	highest := 0
	var candidate *Plan
	candidateN := -1
	matchingLabels := make(map[string]bool)
	otherLabels := make(map[string]bool)

	for _, s := range siblings {
		if s == nil {
			continue
		}
		n, ok := ParseVersion(s.version)
		if ok && n > highest {
			highest = n
		}
		if !s.price.Equal(price) {
			otherLabels[s.version] = true
			continue
		}
		matchingLabels[s.version] = true
		if !ok {
			n = 0
		}
		if n > candidateN {
			candidate, candidateN = s, n
		}
	}

	if candidate == nil {
		return FormatVersion(highest + 1)
	}
	if submitted == "" {
		return candidate.version
	}
	if matchingLabels[submitted] {
		return submitted
	}
	if otherLabels[submitted] {
		return candidate.version
	}
	return submitted
}

// Siblings filters plans down to those sharing the given identity, leaving out excludeID.
func Siblings(plans []*Plan, languageID, modeID, excludeID string) []*Plan {
	out := make([]*Plan, 0, len(plans))
	for _, p := range plans {
		if p == nil || p.id == excludeID || !p.SameIdentity(languageID, modeID) {
			continue
		}
		out = append(out, p)
	}
	return out
}
