package provision

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRequestDefaults(t *testing.T) {
	req := NewRequest()
	assert.Equal(t, "lktest", req.Name)
	assert.Empty(t, req.Platform)
	assert.Empty(t, req.Extras)
	assert.Empty(t, req.SpecFiles)
}

func TestSpecFragmentNames(t *testing.T) {
	assert.Equal(t, "python-3.10-spec", PythonSpec("3.10"))
	assert.Equal(t, "extra1-spec", NamedSpec("extra1"))
}

func TestExtrasString(t *testing.T) {
	req := NewRequest()
	assert.Equal(t, "", req.ExtrasString())

	// Encounter order is preserved, nothing is deduplicated.
	req.Extras = []string{"gpu", "test", "gpu"}
	assert.Equal(t, "gpu,test,gpu", req.ExtrasString())
}
