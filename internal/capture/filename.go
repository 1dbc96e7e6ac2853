package capture

import (
	"fmt"
	"strings"
	"time"
)

// sanitizer strips path and time separators that upset filenames.
var sanitizer = strings.NewReplacer("/", "-", ":", "-")

// Filename builds the auto-generated screenshot name, e.g.
// "Screenshot Terminal 2026-08-30 at 3.04.05 PM.png". When the title is
// empty the title segment is omitted entirely, leaving no double space.
func Filename(title string, ts time.Time) string {
	clean := strings.TrimSpace(sanitizer.Replace(title))
	titlePart := ""
	if clean != "" {
		titlePart = clean + " "
	}
	return fmt.Sprintf("Screenshot %s%s at %s.png",
		titlePart, ts.Format("2006-01-02"), ts.Format("3.04.05 PM"))
}
