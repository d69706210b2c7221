package u

import (
	"testing"

	"github.com/alecthomas/assert"
)

func TestNewline(t *testing.T) {
	nl := Newline()
	if IsWindows() {
		assert.Equal(t, "\r\n", nl)
	} else {
		assert.Equal(t, "\n", nl)
	}
}
