// Package prompt assembles the XML block that advertises skills to an agent.
package prompt

import (
	"html"
	"strings"
)

// LocationMemory is the location used for skills supplied as inline text
// rather than loaded from a directory.
const LocationMemory = "memory"

// Build renders the <available_skills> XML block for a single skill.
// Name and description are HTML-escaped; location is emitted verbatim.
// Each element is placed on its own line.
func Build(name, description, location string) string {
	if location == "" {
		location = LocationMemory
	}

	lines := []string{
		"<available_skills>",
		"<skill>",
		"<name>",
		html.EscapeString(strings.TrimSpace(name)),
		"</name>",
		"<description>",
		html.EscapeString(strings.TrimSpace(description)),
		"</description>",
		"<location>",
		location,
		"</location>",
		"</skill>",
		"</available_skills>",
	}

	return strings.Join(lines, "\n")
}
