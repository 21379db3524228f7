package lcu

import (
	"encoding/base64"
)

// BuildToken returns the Authorization header value for the local client API.
func BuildToken(password string) string {
	return "Basic " + base64.RawStdEncoding.EncodeToString([]byte(authUser+":"+password))
}
