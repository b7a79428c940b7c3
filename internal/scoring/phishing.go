package scoring

import (
	"github.com/mikey/email-triage/internal/domainlist"
)

// blockedDomainPoints is added once when any blocked domain appears in the text
const blockedDomainPoints = 100

var phishingSignatures = []Pattern{
	pattern(`google.*update\.com`, 100),
	pattern(`48.*horas.*(acesse|clique)`, 90),
	pattern(`conta.*ser[aá].*suspensa`, 85),
}

// PhishingDetector scores well-known credential phishing signatures
type PhishingDetector struct {
	signatures []Pattern
	blocked    *domainlist.Checker
}

// NewPhishingDetector creates a detector. blocked may be nil.
func NewPhishingDetector(blocked *domainlist.Checker) *PhishingDetector {
	return &PhishingDetector{
		signatures: phishingSignatures,
		blocked:    blocked,
	}
}

// Score sums the points of every signature found in the lower-cased text, plus the
// blocked-domain bonus. The second value lists what matched.
func (d *PhishingDetector) Score(lower string) (float64, []string) {
	var (
		score   float64
		matched []string
	)

	for _, sig := range d.signatures {
		if sig.Expr.MatchString(lower) {
			score += sig.Weight
			matched = append(matched, sig.Expr.String())
		}
	}

	if d.blocked != nil {
		if domain, ok := d.blocked.FindIn(lower); ok {
			score += blockedDomainPoints
			matched = append(matched, domain)
		}
	}

	return score, matched
}
