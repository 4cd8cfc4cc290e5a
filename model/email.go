package model

import (
	"fmt"
	"regexp"
)

// emailAddressMatcher for valid email addresses.
// See https://html.spec.whatwg.org/#valid-e-mail-address for the definition.
var emailAddressMatcher = regexp.MustCompile(
	`^` +
		// Local part of the address. Note that \x60 is a backtick (`) character.
		`(?P<local>[a-zA-Z0-9.!#$%&'*+/=?^_\x60{|}~-]+)` +
		`@` +
		`(?P<domain>[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)+)` +
		`$`,
)

type EmailAddress string

func (e EmailAddress) IsValid() bool {
	return emailAddressMatcher.MatchString(string(e))
}

func (e EmailAddress) String() string {
	return string(e)
}

var _ fmt.Stringer = EmailAddress("")
