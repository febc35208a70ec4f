package scandown

import "strings"

// codeEscaper leaves single quotes alone, unlike html.EscapeString.
var codeEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeHTML(s string) string { return codeEscaper.Replace(s) }
