// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Placeholders written in place of local paths.
const (
	ProjectDirPlaceholder = "<PROJECT_DIR>"
	AbsPathPlaceholder    = "<ABS_PATH>"
)

var (
	// directory part of a Unix absolute path that starts a token
	unixDir = regexp.MustCompile(`(^|[\s("'=])(?:/[^/\s:"'()]+)+/`)
	// directory part of a Windows absolute path, either separator
	windowsDir = regexp.MustCompile(`[A-Za-z]:[\\/](?:[^\\/\s:"'()]+[\\/])+`)
)

// SanitizeTrace hides local filesystem layout in a stack trace before it is
// shown to the operator, who is asked to paste it into a bug report.
// Occurrences of projectDir become <PROJECT_DIR>; the directory part of any
// other absolute path becomes <ABS_PATH>, keeping file names and line
// numbers.
func SanitizeTrace(trace, projectDir string) string {
	if dir := strings.TrimRight(projectDir, `/\`); len(dir) > 1 {
		trace = strings.ReplaceAll(trace, dir, ProjectDirPlaceholder)
		if slashed := filepath.ToSlash(dir); slashed != dir {
			trace = strings.ReplaceAll(trace, slashed, ProjectDirPlaceholder)
		}
	}

	trace = windowsDir.ReplaceAllString(trace, AbsPathPlaceholder+`\`)
	trace = unixDir.ReplaceAllString(trace, "${1}"+AbsPathPlaceholder+"/")
	return trace
}
