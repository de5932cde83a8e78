package util

import "regexp"

// fingerprintPattern matches an MD5-style SSH key fingerprint:
// 16 colon-separated lowercase hex byte pairs.
var fingerprintPattern = regexp.MustCompile(`^([0-9a-f]{2}:){15}[0-9a-f]{2}$`)

// IsFingerprint reports whether s looks like a key fingerprint rather
// than a numeric key ID.
func IsFingerprint(s string) bool {
	return fingerprintPattern.MatchString(s)
}
