package levels

import (
	"embed"
	"io/fs"
	"path"
)

//go:embed builtin
var builtinFS embed.FS

// DefaultPack is the pack played when none is configured.
const DefaultPack = "classic"

func init() {
	dirs, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		p, err := LoadFS(builtinFS, path.Join("builtin", d.Name()), d.Name())
		if err != nil {
			panic(err)
		}
		Register(p)
	}
}
