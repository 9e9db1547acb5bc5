// Package timezone supplies the zone list behind the timezone selector.
// Zone names come from the runtime's tz database; when that is unavailable
// a short fixed list keeps the selector usable.
package timezone

import (
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"time"
)

// Fallback zones, mirrored from the selector's degraded mode.
var fallback = []string{
	"UTC",
	"America/New_York",
	"America/Los_Angeles",
	"Europe/London",
	"Asia/Tokyo",
}

var zoneDirs = []string{
	"/usr/share/zoneinfo",
	"/usr/share/lib/zoneinfo",
	"/usr/lib/locale/TZ",
}

// Names returns the sorted IANA zone names known to the runtime, or the
// fallback list when no tz database can be found.
func Names() []string {
	for _, dir := range zoneDirs {
		if names := readZoneDir(dir); len(names) > 0 {
			sort.Strings(names)
			return names
		}
	}
	out := make([]string, len(fallback))
	copy(out, fallback)
	return out
}

func readZoneDir(dir string) []string {
	var names []string
	root := os.DirFS(dir)
	fs.WalkDir(root, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == "." {
			return nil
		}
		// Zone names start with an uppercase letter; everything else is
		// metadata (zone.tab, leapseconds) or a duplicate tree (posix, right).
		base := d.Name()
		if base[0] < 'A' || base[0] > 'Z' {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, err := time.LoadLocation(path); err == nil {
			names = append(names, path)
		}
		return nil
	})
	return names
}

// Label formats a zone for display: underscores become spaces and the
// current UTC offset is appended, e.g. "America/New York (UTC-05:00)".
func Label(name string, at time.Time) string {
	display := strings.ReplaceAll(name, "_", " ")
	loc, err := time.LoadLocation(name)
	if err != nil {
		return display
	}
	_, offset := at.In(loc).Zone()
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	return fmt.Sprintf("%s (UTC%s%02d:%02d)", display, sign, offset/3600, (offset%3600)/60)
}

// Default resolves the selector's initial value: the caller's hint when it
// names a loadable zone, otherwise UTC.
func Default(hint string) string {
	if hint != "" {
		if _, err := time.LoadLocation(hint); err == nil {
			return hint
		}
	}
	return "UTC"
}
