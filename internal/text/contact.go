package text

import (
	"regexp"
	"strings"

	"github.com/mikey/email-triage/internal/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)me chamo\s+([\p{L} ]+?)\s*[.\n,]`),
		regexp.MustCompile(`(?i)meu nome é\s+([\p{L} ]+?)\s*[.\n,]`),
		regexp.MustCompile(`(?i)atenciosamente,\s*([\p{L} ]+)`),
	}
	contactEmailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	contactPhonePattern = regexp.MustCompile(`\(?\d{2}\)?\s?\d{4,5}-?\d{4}`)
)

// ExtractContact finds the sender's name, e-mail and phone in free text
func ExtractContact(s string) core.Contact {
	var contact core.Contact

	for _, pattern := range namePatterns {
		m := pattern.FindStringSubmatch(s)
		if m == nil {
			continue
		}
		name := strings.Join(strings.Fields(m[1]), " ")
		if name != "" {
			contact.Name = cases.Title(language.BrazilianPortuguese).String(name)
			break
		}
	}

	if m := contactEmailPattern.FindString(s); m != "" {
		contact.Email = strings.ToLower(m)
	}
	if m := contactPhonePattern.FindString(s); m != "" {
		contact.Phone = m
	}

	return contact
}
