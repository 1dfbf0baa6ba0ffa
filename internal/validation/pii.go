package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"
)

var (
	ssnRegex   = regexp.MustCompile(`^\d{3}-?\d{2}-?\d{4}$`)
	einRegex   = regexp.MustCompile(`^\d{2}-?\d{7}$`)
	digitRegex = regexp.MustCompile(`^\d+$`)
)

// SSN validates a US Social Security number, with or without dashes.
var SSN = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_ssn_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if !ssnRegex.MatchString(s) {
		return validation.NewError("validation_ssn", "must be a valid Social Security number")
	}
	return nil
})

// EIN validates a US Employer Identification number, with or without a dash.
var EIN = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_ein", "must be a string")
	}
	if s == "" {
		return nil
	}
	if !einRegex.MatchString(s) {
		return validation.NewError("validation_ein", "must be a valid Employer Identification number")
	}
	return nil
})

// RoutingNumber validates a 9-digit ABA routing number, including its
// checksum digit.
var RoutingNumber = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_routing_number", "must be a string")
	}
	if s == "" {
		return nil
	}
	if len(s) != 9 || !digitRegex.MatchString(s) {
		return validation.NewError("validation_routing_number", "must be a 9-digit routing number")
	}
	if !validABAChecksum(s) {
		return validation.NewError("validation_routing_number", "routing number checksum is invalid")
	}
	return nil
})

// BankAccountNumber validates a US bank account number: digits only, 4 to 17
// characters.
var BankAccountNumber = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_account_number", "must be a string")
	}
	if s == "" {
		return nil
	}
	if len(s) < 4 || len(s) > 17 || !digitRegex.MatchString(s) {
		return validation.NewError("validation_account_number", "must be a 4-17 digit account number")
	}
	return nil
})

// USPhone validates a 10-digit US phone number, ignoring common punctuation.
var USPhone = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_phone", "must be a string")
	}
	if s == "" {
		return nil
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if len(digits) != 10 {
		return validation.NewError("validation_phone", "must be a 10-digit US phone number")
	}
	return nil
})

// validABAChecksum verifies the ABA routing number checksum:
// 3(d1+d4+d7) + 7(d2+d5+d8) + (d3+d6+d9) must be divisible by 10.
func validABAChecksum(s string) bool {
	digit := func(i int) int { return int(s[i] - '0') }
	sum := 3*(digit(0)+digit(3)+digit(6)) +
		7*(digit(1)+digit(4)+digit(7)) +
		(digit(2) + digit(5) + digit(8))
	return sum%10 == 0
}
