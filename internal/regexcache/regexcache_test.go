package regexcache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCompilesOnce(t *testing.T) {
	c := New()

	re, err := c.Get(`\d{3}`)
	require.NoError(t, err)
	assert.True(t, re.MatchString("123"))

	again, err := c.Get(`\d{3}`)
	require.NoError(t, err)
	assert.Same(t, re, again)
	assert.Equal(t, 1, c.Len())
}

func TestGetRejectsBadPattern(t *testing.T) {
	c := New()

	_, err := c.Get(`(\d`)
	assert.Error(t, err)
	assert.Equal(t, 0, c.Len())
}

func TestAnchoredVariants(t *testing.T) {
	c := New()

	entire, err := c.Entire(`\d{2}|\d{4}`)
	require.NoError(t, err)
	assert.True(t, entire.MatchString("12"))
	assert.True(t, entire.MatchString("1234"))
	// Alternation must be grouped before anchoring.
	assert.False(t, entire.MatchString("123"))
	assert.False(t, entire.MatchString("12345"))

	prefix, err := c.Prefix(`0|1[12]`)
	require.NoError(t, err)
	assert.True(t, prefix.MatchString("0345"))
	assert.True(t, prefix.MatchString("1123"))
	assert.False(t, prefix.MatchString("2011"))

	// Entire and Prefix variants are cached independently of the raw pattern.
	_, err = c.Get(`0|1[12]`)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
}

func TestConcurrentAccess(t *testing.T) {
	c := New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				re, err := c.Get(`[1-9]\d{4,9}`)
				assert.NoError(t, err)
				assert.True(t, re.MatchString("12345"))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, c.Len())
}
