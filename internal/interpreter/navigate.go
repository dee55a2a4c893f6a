package interpreter

import (
	"strings"
	"time"
)

// Navigation trigger phrases. A leading "/" also counts.
var navigationTriggers = []string{
	"gå till",
	"go to",
	"navigera till",
	"navigera",
	"navigate to",
	"navigate",
	"öppna",
	"open",
}

// extractNavigation recognizes explicit "go to X" phrasing and maps the
// remainder onto a fixed route table, defaulting to the root route.
func extractNavigation(text string, _ time.Time) (Intent, bool) {
	trimmed := strings.TrimSpace(text)

	var rest string
	switch {
	case strings.HasPrefix(trimmed, "/"):
		rest = strings.TrimPrefix(trimmed, "/")
	default:
		matched := false
		for _, trigger := range navigationTriggers {
			if strings.HasPrefix(trimmed, trigger+" ") || trimmed == trigger {
				rest = strings.TrimSpace(strings.TrimPrefix(trimmed, trigger))
				matched = true
				break
			}
		}
		if !matched {
			return Intent{}, false
		}
	}

	rest = strings.ToLower(rest)
	route := "/"
	for _, r := range navigationRoutes {
		if strings.Contains(rest, r.word) {
			route = r.route
			break
		}
	}

	return Intent{Kind: KindNavigate, Navigate: &NavigateData{Route: route}}, true
}
