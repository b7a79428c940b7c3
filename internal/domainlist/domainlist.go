package domainlist

import (
	"strings"

	"go.uber.org/zap"
)

// DefaultBlocked are lookalike domains seen in credential phishing campaigns
var DefaultBlocked = []string{
	"google-workspace-security-update.com",
	"gmail-security-alert.com",
	"microsoft-account-verify.com",
	"outlook-security-check.com",
	"apple-id-verification.com",
	"paypal-resolution-center.com",
}

// Checker matches domains against a fixed list
type Checker struct {
	domains []string
	logger  *zap.Logger
}

// NewChecker creates a checker, entries are trimmed and lower-cased
func NewChecker(domains []string, logger *zap.Logger) *Checker {
	normalized := make([]string, 0, len(domains))
	for _, domain := range domains {
		domain = strings.ToLower(strings.TrimSpace(domain))
		if domain != "" {
			normalized = append(normalized, domain)
		}
	}

	if len(normalized) > 0 && logger != nil {
		logger.Info("Initialized domain list", zap.Strings("domains", normalized))
	}

	return &Checker{
		domains: normalized,
		logger:  logger,
	}
}

// Contains reports whether the domain of addr (an address or a bare domain) is listed
func (c *Checker) Contains(addr string) bool {
	domain := strings.ToLower(strings.TrimSpace(addr))
	if i := strings.LastIndex(domain, "@"); i >= 0 {
		domain = domain[i+1:]
	}
	for _, listed := range c.domains {
		if listed == domain {
			return true
		}
	}
	return false
}

// FindIn returns the first listed domain mentioned anywhere in text
func (c *Checker) FindIn(text string) (string, bool) {
	if len(c.domains) == 0 {
		return "", false
	}

	lower := strings.ToLower(text)
	for _, listed := range c.domains {
		if strings.Contains(lower, listed) {
			if c.logger != nil {
				c.logger.Debug("Listed domain found in message", zap.String("domain", listed))
			}
			return listed, true
		}
	}
	return "", false
}

// Len returns the number of listed domains
func (c *Checker) Len() int {
	return len(c.domains)
}
