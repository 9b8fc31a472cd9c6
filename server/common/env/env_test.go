package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Setenv("ENVTEST_STRING", "value")
	require.Equal(t, "value", String("ENVTEST_STRING", "fallback"))
	require.Equal(t, "fallback", String("ENVTEST_STRING_MISSING", "fallback"))
}

func TestInt(t *testing.T) {
	t.Setenv("ENVTEST_INT", "42")
	require.Equal(t, 42, Int("ENVTEST_INT", 7))

	t.Setenv("ENVTEST_INT_BAD", "not-a-number")
	require.Equal(t, 7, Int("ENVTEST_INT_BAD", 7))

	t.Setenv("ENVTEST_INT_NEG", "-3")
	require.Equal(t, 7, Int("ENVTEST_INT_NEG", 7))
}

func TestBool(t *testing.T) {
	t.Setenv("ENVTEST_BOOL", "true")
	require.True(t, Bool("ENVTEST_BOOL", false))

	t.Setenv("ENVTEST_BOOL_BAD", "yep")
	require.True(t, Bool("ENVTEST_BOOL_BAD", true))
	require.False(t, Bool("ENVTEST_BOOL_MISSING", false))
}

func TestDuration(t *testing.T) {
	t.Setenv("ENVTEST_DUR", "750ms")
	require.Equal(t, 750*time.Millisecond, Duration("ENVTEST_DUR", time.Second))

	t.Setenv("ENVTEST_DUR_ZERO", "0s")
	require.Equal(t, time.Duration(0), Duration("ENVTEST_DUR_ZERO", time.Second))

	t.Setenv("ENVTEST_DUR_BAD", "soon")
	require.Equal(t, time.Second, Duration("ENVTEST_DUR_BAD", time.Second))
}

func TestCSV(t *testing.T) {
	t.Setenv("ENVTEST_CSV", " a, b ,a,,c ")
	require.Equal(t, []string{"a", "b", "c"}, CSV("ENVTEST_CSV", nil))

	fallback := []string{"x"}
	require.Equal(t, []string{"x"}, CSV("ENVTEST_CSV_MISSING", fallback))

	t.Setenv("ENVTEST_CSV_EMPTY", " , ,")
	require.Equal(t, []string{"x"}, CSV("ENVTEST_CSV_EMPTY", fallback))
}
