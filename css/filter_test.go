package css_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Cronos87/pyside-docset-generator/css"
)

func TestStripFontFamilies(t *testing.T) {
	t.Parallel()

	t.Run("removes font-family lines and keeps the rest", func(t *testing.T) {
		t.Parallel()

		in := "body {\n" +
			"    font-family: 'Titillium Web', sans-serif;\n" +
			"    color: #333;\n" +
			"}\n" +
			"h1 { font-family: serif; }\n" +
			"p { margin: 0; }\n"

		got := css.StripFontFamilies(in)

		assert.NotContains(t, got, "Titillium")
		assert.NotContains(t, got, "serif; }")
		assert.Contains(t, got, "color: #333;")
		assert.Contains(t, got, "p { margin: 0; }")
	})

	t.Run("appends the system font rule", func(t *testing.T) {
		t.Parallel()

		got := css.StripFontFamilies("p { margin: 0; }\n")

		assert.Contains(t, got, "-apple-system")
		assert.Contains(t, got, "body {")
	})

	t.Run("empty stylesheet still gets the system font rule", func(t *testing.T) {
		t.Parallel()

		got := css.StripFontFamilies("")

		assert.Contains(t, got, "font-family: -apple-system")
	})
}
