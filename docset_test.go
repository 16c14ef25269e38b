package docset_test

import (
	"testing"

	docset "github.com/Cronos87/pyside-docset-generator"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := docset.Errorf(docset.ENOTFOUND, "module %q not found", "QtCore")

	assert.Equal(t, docset.ENOTFOUND, docset.ErrorCode(err))
	assert.Equal(t, "module \"QtCore\" not found", docset.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docset.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, docset.ErrorMessage(nil))
}
