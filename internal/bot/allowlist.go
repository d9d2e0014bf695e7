package bot

import "strings"

// Allowlist is the fixed set of usernames permitted to invoke restricted
// commands. It is built once at startup and never mutated afterwards.
type Allowlist map[string]struct{}

// NewAllowlist builds an Allowlist from a list of usernames, ignoring blank
// entries.
func NewAllowlist(usernames []string) Allowlist {
	list := make(Allowlist, len(usernames))
	for _, username := range usernames {
		username = strings.TrimSpace(username)
		if username == "" {
			continue
		}
		list[username] = struct{}{}
	}
	return list
}

// Allows reports whether the given username may invoke restricted commands.
// An absent username is never authorized.
func (a Allowlist) Allows(username string) bool {
	if username == "" {
		return false
	}
	_, ok := a[username]
	return ok
}
