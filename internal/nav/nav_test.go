package nav

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilexagri/website/internal/catalog"
)

var cats = []catalog.Category{
	{Name: "The Ilex Phosphite Range", Slug: "the-ilex-phosphite-range"},
	{Name: "Trace Element Range", Slug: "trace-element-range"},
}

func TestBuildMarksActiveSection(t *testing.T) {
	links := Build("/products/trace-element-range/boron-150", cats)

	require.Len(t, links, 3)
	assert.False(t, links[0].Active)
	assert.True(t, links[1].Active)
	require.Len(t, links[1].Children, 2)
	assert.False(t, links[1].Children[0].Active)
	assert.True(t, links[1].Children[1].Active)
	assert.Equal(t, "/products/trace-element-range", links[1].Children[1].Href)
	assert.False(t, links[2].Active)
}

func TestBuildHomeAndContact(t *testing.T) {
	home := Build("/", cats)
	assert.True(t, home[0].Active)
	assert.False(t, home[1].Active)

	contact := Build("/contact", cats)
	assert.False(t, contact[0].Active)
	assert.True(t, contact[2].Active)

	// prefix must end on a path boundary
	other := Build("/productsx", cats)
	assert.False(t, other[1].Active)
}

func TestBreadcrumbs(t *testing.T) {
	p := catalog.Product{Name: "Boron 150", Category: "Trace Element Range"}
	crumbs := Breadcrumbs(cats[1], &p)

	require.Len(t, crumbs, 4)
	assert.Equal(t, Crumb{Label: "Boron 150", Href: "/products/trace-element-range/boron-150"}, crumbs[3])
	assert.Len(t, Breadcrumbs(cats[1], nil), 3)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore("trace-element-range")
	assert.Equal(t, "trace-element-range", s.Current())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Set("biostimulant-range")
			_ = s.Current()
		}()
	}
	wg.Wait()
	assert.Equal(t, "biostimulant-range", s.Current())
}
