package output_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/contribulate/dagster/internal/ui/output"
)

func TestColorProfile(t *testing.T) {
	// NO_COLOR forces the Ascii profile
	t.Setenv("NO_COLOR", "1")
	p := output.ColorProfile()
	assert.Equal(t, termenv.Ascii, p, "NO_COLOR should force Ascii profile")

	// Without NO_COLOR, the profile depends on the environment; just verify
	// a valid one comes back
	t.Setenv("NO_COLOR", "")
	p = output.ColorProfile()
	assert.True(t, p >= termenv.TrueColor && p <= termenv.Ascii, "should return a valid profile")
}

func TestColorProfileANSI(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	p := output.ColorProfileANSI()
	assert.Equal(t, termenv.ANSI, p)

	t.Setenv("NO_COLOR", "1")
	p = output.ColorProfileANSI()
	assert.Equal(t, termenv.Ascii, p)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	out := output.New(&buf)
	assert.NotNil(t, out)

	_, _ = out.WriteString("test")
	assert.Equal(t, "test", buf.String())
}

func TestNew_Nil(t *testing.T) {
	// Should default to stderr, we just check it doesn't panic
	out := output.New(nil)
	assert.NotNil(t, out)
}
