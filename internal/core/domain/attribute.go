package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Path attribution is convention matching over strings, not an authoritative
// structural link from a declaration to its group. Supported conventions:
//
//   - source layout: .../src/<group>/... — the segment after the "src"
//     marker is the group name (e.g. /project/src/jvmMain/kotlin/Foo.kt).
//   - build output: a path segment carrying a main/test role suffix,
//     matched case-insensitively (e.g. .../classes/atomicfu/jvm/main).
//
// Anything else is unattributable and must be surfaced, never guessed: a
// pass incorporates files from its whole group closure, so defaulting to
// the pass's own group would misroute declarations inherited from a shared
// ancestor group.
const (
	sourceRootMarker = "src"

	mainRoleSuffix = "Main"
	testRoleSuffix = "Test"
)

// AttributeSourceGroup determines which source group the file at originPath
// belongs to. It returns ErrUnattributablePath when no convention matches.
func AttributeSourceGroup(originPath string) (string, error) {
	normalized := strings.ReplaceAll(originPath, "\\", "/")
	segments := strings.Split(normalized, "/")

	// Source layout: group name immediately follows the "src" marker.
	for i := 0; i < len(segments)-1; i++ {
		if segments[i] == sourceRootMarker && segments[i+1] != "" {
			return segments[i+1], nil
		}
	}

	// Build output layout: the role-suffixed segment closest to the file.
	for i := len(segments) - 1; i >= 0; i-- {
		if seg := segments[i]; seg != "" && hasRoleSuffix(seg) {
			return seg, nil
		}
	}

	return "", zerr.With(zerr.Wrap(ErrUnattributablePath, "failed to attribute origin"), "path", originPath)
}

// ToTestRole maps a main-role group name to its test-role counterpart:
// "jvmMain" becomes "jvmTest", a name already in test role maps to itself,
// and any other name is treated as main-role and gets the test suffix
// appended. The operation is idempotent.
func ToTestRole(group string) string {
	if hasSuffixFold(group, testRoleSuffix) {
		return group
	}
	if hasSuffixFold(group, mainRoleSuffix) {
		base := group[:len(group)-len(mainRoleSuffix)]
		suffix := group[len(group)-len(mainRoleSuffix):]
		return base + matchSuffixCase(suffix, testRoleSuffix)
	}
	return group + testRoleSuffix
}

func hasRoleSuffix(segment string) bool {
	return hasSuffixFold(segment, mainRoleSuffix) || hasSuffixFold(segment, testRoleSuffix)
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}

// matchSuffixCase renders replacement in the same case shape as observed:
// all-lower, all-upper, or title case.
func matchSuffixCase(observed, replacement string) string {
	switch observed {
	case strings.ToLower(observed):
		return strings.ToLower(replacement)
	case strings.ToUpper(observed):
		return strings.ToUpper(replacement)
	default:
		return replacement
	}
}
