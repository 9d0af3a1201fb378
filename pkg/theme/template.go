package theme

import (
	"regexp"
	"strings"
)

// placeholderPattern matches single-brace {key} tokens. The extractor's own
// {{key}} placeholders are a different namespace handled upstream; a token
// directly surrounded by further braces is not ours and is left untouched.
var placeholderPattern = regexp.MustCompile(`\{[a-z0-9_]+\}`)

// Render substitutes {key} placeholders in template text with values from
// data. Placeholders that could not be substituted are left verbatim and
// returned so callers can warn about likely typos: unknown keys, and tokens
// touching a single stray brace (a double-braced {{key}} belongs to the
// upstream tool and is passed through silently). Rendering is pure: same
// inputs, same output.
func Render(templateText string, data map[string]string) (string, []string) {
	var (
		sb         strings.Builder
		unresolved []string
		seen       = map[string]bool{}
		last       = 0
	)

	report := func(token string) {
		if !seen[token] {
			seen[token] = true
			unresolved = append(unresolved, token)
		}
	}

	for _, loc := range placeholderPattern.FindAllStringIndex(templateText, -1) {
		start, end := loc[0], loc[1]
		openBefore := start > 0 && templateText[start-1] == '{'
		closeAfter := end < len(templateText) && templateText[end] == '}'
		if openBefore && closeAfter {
			continue
		}
		token := templateText[start:end]
		if openBefore || closeAfter {
			// a lone extra brace is a template typo, not the upstream
			// {{key}} namespace; surface it instead of dropping silently
			report(token)
			continue
		}

		value, ok := data[templateText[start+1:end-1]]
		if !ok {
			report(token)
			continue
		}

		sb.WriteString(templateText[last:start])
		sb.WriteString(value)
		last = end
	}
	sb.WriteString(templateText[last:])

	return sb.String(), unresolved
}
