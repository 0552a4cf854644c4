// Package version returns the version string for the currently
// running process.
package version

import "fmt"

// The value of these vars are set through linker options.
var gitTag = "Unknown"
var gitCommit = "Local build"
var buildDate = "Moments ago"

// GetVersion returns the version string of this build.
func GetVersion() string {
	return fmt.Sprintf("%s. Built at: %s", GetBuildData(), buildDate)
}

// GetBuildData returns the git tag and commit of the current build.
func GetBuildData() string {
	return fmt.Sprintf("token-status-list/%s/%s", gitTag, gitCommit)
}
