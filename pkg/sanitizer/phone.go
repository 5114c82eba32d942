package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Regions tried when a number has no international prefix. The clinic's
// callers are overwhelmingly Indian; US covers the remainder seen so far.
var supportedRegions = []string{
	"IN",
	"US",
}

// NormalizePhone formats a phone number as E.164 when it parses. The booking
// contract only requires a non-empty string, so unparseable input is returned
// trimmed rather than rejected.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	for _, region := range supportedRegions {
		parsed, err := phonenumbers.Parse(phone, region)
		if err == nil && phonenumbers.IsPossibleNumber(parsed) {
			return phonenumbers.Format(parsed, phonenumbers.E164)
		}
	}
	return phone
}
