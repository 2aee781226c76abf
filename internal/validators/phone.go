package validators

import "regexp"

// Optional leading +, 10 to 15 digits.
var phoneRe = regexp.MustCompile(`^\+?\d{10,15}$`)

func IsPhoneValid(phone string) bool {
	return phoneRe.MatchString(phone)
}
