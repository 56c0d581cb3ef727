// Package templates provides the embedded replay project templates and the
// read-only table that indexes them.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
)

// templateSuffix keeps the embedded C/C++ payload out of the Go toolchain's view.
const templateSuffix = ".tmpl"

//go:embed files
var templateFS embed.FS

// FS returns the embedded template tree rooted at the project root.
// File names carry the .tmpl suffix.
func FS() fs.FS {
	sub, err := fs.Sub(templateFS, "files")
	if err != nil {
		return templateFS
	}
	return sub
}

// sourcePath returns the embedded path for a project-relative file.
func sourcePath(dir, name string) string {
	return path.Join("files", dir, name+templateSuffix)
}

func mustReadTemplate(dir, name string) string {
	data, err := templateFS.ReadFile(sourcePath(dir, name))
	if err != nil {
		panic(fmt.Sprintf("templates: reading embedded %s: %v", path.Join(dir, name), err))
	}
	return string(data)
}
