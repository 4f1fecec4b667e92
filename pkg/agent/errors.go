package agent

import "strings"

// authErrorMarkers are the substrings that flag an invocation failure as
// a credential problem rather than a transient one. Matching is
// case-insensitive.
var authErrorMarkers = []string{"auth", "token", "expired", "unauthorized"}

// IsAuthError reports whether err looks like an expired or rejected
// credential. Workers pause the conversation and ask the user to
// reconnect instead of retrying these.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range authErrorMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
