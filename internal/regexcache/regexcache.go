// Package regexcache compiles regular expressions once and shares them across
// goroutines. The engine evaluates metadata-supplied patterns on every parse
// and format call, so compilation cost is paid a single time per pattern.
package regexcache

import (
	"regexp"
	"sync"
)

type Cache struct {
	mu sync.RWMutex
	m  map[string]*regexp.Regexp
}

func New() *Cache {
	return &Cache{m: make(map[string]*regexp.Regexp)}
}

// Get returns the compiled form of pattern, compiling it on first use.
func (c *Cache) Get(pattern string) (*regexp.Regexp, error) {
	c.mu.RLock()
	re, ok := c.m[pattern]
	c.mu.RUnlock()
	if ok {
		return re, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	if prev, ok := c.m[pattern]; ok {
		re = prev
	} else {
		c.m[pattern] = re
	}
	c.mu.Unlock()
	return re, nil
}

// Entire returns a variant of pattern anchored to match a whole string.
func (c *Cache) Entire(pattern string) (*regexp.Regexp, error) {
	return c.Get("^(?:" + pattern + ")$")
}

// Prefix returns a variant of pattern anchored to match at the start of a
// string.
func (c *Cache) Prefix(pattern string) (*regexp.Regexp, error) {
	return c.Get("^(?:" + pattern + ")")
}

// Len reports how many distinct patterns have been compiled.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
