package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", MaskSecret(""))
	assert.Equal(t, "***", MaskSecret("short"))
	assert.Equal(t, "***", MaskSecret("exactly14chars"))
	assert.Equal(t, "rows_live_...wxyz", MaskSecret("rows_live_abcdefghijklmnopqrstuvwxyz"))
}
