package parser

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"

	"github.com/wakahq/momo-sms-importer/pkg/common"
)

const excerptLen = 50

var dateTimeRegex = regexp.MustCompile(`at (\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2})`)

// firstMatch runs re against body and requires the full group count, including
// the whole-match group. A miss is a recoverable extraction failure, not a
// fault.
func firstMatch(re *regexp.Regexp, body string, groups int) ([]string, error) {
	matches := re.FindStringSubmatch(body)
	if len(matches) != groups {
		return nil, errors.Wrapf(common.ErrFieldExtraction,
			"pattern %s: expected %d groups, got %v", re.String(), groups, spew.Sdump(matches))
	}

	return matches, nil
}

// parseAmount strips thousands separators and parses the remaining digit run.
func parseAmount(span string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.ReplaceAll(span, ",", ""))
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(common.ErrNumericParse, "span %q", span)
	}

	return amount, nil
}

// extractDateTime returns the literal YYYY-MM-DD HH:MM:SS span after "at".
// The value is not validated against the calendar; the issuer owns it.
func extractDateTime(body string) (string, error) {
	matches := dateTimeRegex.FindStringSubmatch(body)
	if len(matches) != 2 {
		return "", errors.Wrap(common.ErrFieldExtraction, "no date-time span")
	}

	return matches[1], nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func excerpt(body string) string {
	if len(body) <= excerptLen {
		return body
	}

	return body[:excerptLen] + "..."
}
