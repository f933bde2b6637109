package InputParameters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/mobius/Mobius"
)

func TestInputParameters(t *testing.T) {
	// Defaults
	{
		ip := NewInputParametersMobius()
		assert.Equal(t, 1.0, ip.R)
		assert.Equal(t, 0.3, ip.W)
		assert.Equal(t, 200, ip.Resolution)
		assert.Equal(t, "mobius_strip_plot.png", ip.OutputFile)
		require.NoError(t, ip.Validate())
	}
	// Partial file overlays the defaults
	{
		fileInput := []byte(`
Title: Wide Strip
W: 0.75
Resolution: 401
`)
		ip := NewInputParametersMobius()
		require.NoError(t, ip.Parse(fileInput))
		assert.Equal(t, "Wide Strip", ip.Title)
		assert.Equal(t, 1.0, ip.R)
		assert.Equal(t, 0.75, ip.W)
		assert.Equal(t, 401, ip.Resolution)
		assert.Equal(t, Mobius.ShapeParameters{R: 1, W: 0.75, N: 401}, ip.Shape())
		ip.Print()
	}
	// Resolution alone from the file
	{
		ip := NewInputParametersMobius()
		require.NoError(t, ip.Parse([]byte("Resolution: 31\n")))
		assert.Equal(t, 31, ip.Resolution)
		assert.Equal(t, 31, ip.Shape().N)
	}
	// A bare N key decodes as a YAML boolean and is refused, not dropped
	{
		for _, doc := range []string{"N: 31\n", "R: 2\nN: 31\n", "y: 1\n"} {
			ip := NewInputParametersMobius()
			err := ip.Parse([]byte(doc))
			require.Error(t, err, "doc = %q", doc)
			assert.Contains(t, err.Error(), "Resolution")
			assert.Equal(t, 200, ip.Resolution)
			assert.Equal(t, 1.0, ip.R)
		}
	}
	// Invalid values surface as ErrInvalidParameter
	{
		ip := NewInputParametersMobius()
		require.NoError(t, ip.Parse([]byte("Resolution: 1\n")))
		err := ip.Validate()
		require.Error(t, err)
		assert.True(t, errors.Is(err, Mobius.ErrInvalidParameter))
	}
	{
		ip := NewInputParametersMobius()
		require.NoError(t, ip.Parse([]byte("ImageWidth: 0\n")))
		assert.Error(t, ip.Validate())
	}
	// Empty and malformed YAML
	{
		ip := NewInputParametersMobius()
		require.NoError(t, ip.Parse(nil))
		assert.Equal(t, 200, ip.Resolution)
		assert.Error(t, ip.Parse([]byte("R: [1, 2\n")))
	}
}
