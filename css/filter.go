// Package css post-processes the documentation stylesheet for offline use.
package css

import "regexp"

// fontFamilyLine matches any stylesheet line carrying a font-family
// declaration. The site's stylesheet references webfonts that are not
// downloaded into the docset.
var fontFamilyLine = regexp.MustCompile(`(?m)^.*font-family:.*\n`)

// systemFontRule is appended so pages render with the platform's native
// font stack instead of the stripped webfonts.
const systemFontRule = `
body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, 'Open Sans', 'Helvetica Neue', sans-serif;
}
`

// StripFontFamilies removes every line containing a font-family
// declaration from the stylesheet and appends a body rule selecting the
// system font stack. The input is treated as plain text; no CSS parsing
// is attempted and the rest of the stylesheet passes through verbatim.
func StripFontFamilies(stylesheet string) string {
	return fontFamilyLine.ReplaceAllString(stylesheet, "") + systemFontRule
}
