package main

import (
	"embed"
	"io/fs"
)

// The viewer frontend ships inside the binary; the server minifies it
// on the way out.
//
//go:embed all:frontend
var frontendFiles embed.FS

// frontendAssets strips the embed prefix so the file server can serve
// the tree from /.
func frontendAssets() fs.FS {
	sub, err := fs.Sub(frontendFiles, "frontend")
	if err != nil {
		panic(err)
	}
	return sub
}
