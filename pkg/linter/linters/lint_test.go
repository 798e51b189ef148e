package linters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fencelint/fencelint/pkg/config"
	"github.com/fencelint/fencelint/pkg/linter"
	_ "github.com/fencelint/fencelint/pkg/linter/linters"
)

func TestBuiltinsRegistered(t *testing.T) {
	t.Parallel()

	py, err := linter.DefaultRegistry.Lookup("python")
	require.NoError(t, err)
	assert.Equal(t, "flake8", py.Tool())

	cpp, err := linter.DefaultRegistry.Lookup("cpp")
	require.NoError(t, err)
	assert.Equal(t, "cppcheck", cpp.Tool())

	c, err := linter.DefaultRegistry.Lookup("c")
	require.NoError(t, err)
	assert.Equal(t, "cppcheck", c.Tool())
}

// With an empty PATH the tool binary cannot be found; the adapter must
// degrade to a single synthetic error diagnostic instead of failing.
func TestLint_MissingBinary(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	for _, lang := range []string{"python", "cpp"} {
		adapter, err := linter.DefaultRegistry.Lookup(lang)
		require.NoError(t, err)

		diags := adapter.Lint(context.Background(), []string{"x"}, "")
		require.Len(t, diags, 1, "language %s", lang)
		assert.Equal(t, 1, diags[0].Line)
		assert.Equal(t, config.SeverityError, diags[0].Severity)
		assert.Contains(t, diags[0].Message, adapter.Tool())
	}
}
