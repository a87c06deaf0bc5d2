package tools

import "regexp"

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// CheckPassword devolve o nome do campo quando a senha não atende ao mínimo.
func CheckPassword(password string) string {
	if len(password) < 6 || len(password) > 100 {
		return "password"
	}
	return ""
}
