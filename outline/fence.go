package outline

import (
	"regexp"
	"strings"
)

var (
	markdownFence = regexp.MustCompile("```markdown([^`]*)```")
	jsonFence     = regexp.MustCompile("```json([^`]*)```")
)

// ExtractMarkdown returns content of the ```markdown fenced block of the
// model answer. Without complete fence stray markers are removed.
func ExtractMarkdown(content string) string {
	return extractFenced(content, markdownFence, "```markdown")
}

// ExtractJSON is ExtractMarkdown for ```json blocks.
func ExtractJSON(content string) string {
	return extractFenced(content, jsonFence, "```json")
}

func extractFenced(content string, re *regexp.Regexp, opening string) string {
	if m := re.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	content = strings.Replace(content, opening, "", 1)
	return strings.Replace(content, "```", "", 1)
}
