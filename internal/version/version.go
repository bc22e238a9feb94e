package version

import (
	"strings"

	"github.com/fatih/color"
)

// Build metadata for the grab CLI. Override at build time with
// -ldflags "-X grab/internal/version.Version=1.2.3".
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var numberColor = color.New(color.FgYellow, color.Bold)

// String renders "grab <version>" followed by commit and build date when
// they are known. The version number is colored unless color.NoColor is set.
func String() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		v = "dev"
	}
	var sb strings.Builder
	sb.WriteString("grab ")
	sb.WriteString(numberColor.Sprint(v))
	if c := strings.TrimSpace(GitCommit); c != "" {
		sb.WriteString(" (")
		sb.WriteString(c)
		sb.WriteString(")")
	}
	if d := strings.TrimSpace(BuildDate); d != "" {
		sb.WriteString(" built ")
		sb.WriteString(d)
	}
	return sb.String()
}
