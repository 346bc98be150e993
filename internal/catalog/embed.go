package catalog

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed data
var embedded embed.FS

// Embedded loads the catalog compiled into the binary.
func Embedded() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Open loads the catalog from dir, or the embedded copy when dir is empty.
func Open(dir string) (*Catalog, error) {
	if dir == "" {
		return Embedded()
	}
	return Load(os.DirFS(dir))
}
