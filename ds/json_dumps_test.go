package ds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpJSON(t *testing.T) {
	assert.Equal(t, "{\n  \"a\": 1\n}", DumpJSON(map[string]int{"a": 1}))
	assert.Contains(t, DumpJSON(math.Inf(1)), "DumpJSON error")
}
