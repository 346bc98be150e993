package chart

import (
	"bytes"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ilexagri/website/internal/analysis"
)

// Cache keeps rendered charts keyed by product path. Product data is
// immutable for the life of the process, so entries never go stale.
type Cache struct {
	svgs *lru.Cache[string, []byte]
}

func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		size = 128
	}
	c, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &Cache{svgs: c}, nil
}

// SVG returns the chart for key, rendering it on first use.
func (c *Cache) SVG(key string, entries []analysis.ChartEntry) ([]byte, error) {
	if svg, ok := c.svgs.Get(key); ok {
		return svg, nil
	}
	var buf bytes.Buffer
	if err := Render(entries, &buf); err != nil {
		return nil, err
	}
	svg := buf.Bytes()
	c.svgs.Add(key, svg)
	return svg, nil
}

func (c *Cache) Len() int {
	return c.svgs.Len()
}
