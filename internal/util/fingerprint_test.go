package util

import "testing"

func TestIsFingerprint_Valid(t *testing.T) {
	valid := []string{
		"3b:16:bf:e4:8b:00:8b:b8:59:8c:a9:d3:f0:19:45:fa",
		"aa:bb:cc:dd:ee:ff:00:11:22:33:44:55:66:77:88:99",
	}
	for _, fp := range valid {
		if !IsFingerprint(fp) {
			t.Errorf("expected %q to be recognized as a fingerprint", fp)
		}
	}
}

func TestIsFingerprint_Invalid(t *testing.T) {
	invalid := []string{
		"",
		"512190",
		"3B:16:BF:E4:8B:00:8B:B8:59:8C:A9:D3:F0:19:45:FA", // uppercase
		"3b:16:bf:e4:8b:00:8b:b8:59:8c:a9:d3:f0:19:45",    // 15 groups
		"3b:16:bf:e4:8b:00:8b:b8:59:8c:a9:d3:f0:19:45:fa:aa", // 17 groups
		"3b:16:bf:e4:8b:00:8b:b8:59:8c:a9:d3:f0:19:45:f",
		"not-a-fingerprint",
	}
	for _, s := range invalid {
		if IsFingerprint(s) {
			t.Errorf("expected %q not to be recognized as a fingerprint", s)
		}
	}
}
