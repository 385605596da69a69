package orderref

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceShape(t *testing.T) {
	ref := NewGenerator().NextReference()
	assert.True(t, strings.HasPrefix(ref, Prefix), "reference %q missing prefix", ref)
	assert.Len(t, ref, len(Prefix)+12)
	for _, r := range ref[len(Prefix):] {
		assert.Contains(t, "0123456789ABCDEF", string(r))
	}
}

func TestReferencesDoNotCollide(t *testing.T) {
	gen := NewGenerator()
	seen := make(map[string]struct{}, 100000)
	for i := 0; i < 100000; i++ {
		ref := gen.NextReference()
		if _, dup := seen[ref]; dup {
			t.Fatalf("duplicate reference %q after %d draws", ref, i)
		}
		seen[ref] = struct{}{}
	}
}
