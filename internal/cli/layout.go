package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zoro11031/mlapp-scaffold/internal/catalog"
)

// ShowLayout displays the folders and files a scaffold run produces
func ShowLayout(ctx *SetupContext) {
	ctx.UI.Header("Project Layout")

	ctx.UI.Info("Folders:")
	folders := catalog.Folders()
	for i, f := range folders {
		ctx.UI.TreeEntry(branch(i, len(folders)), f.Path+"/", f.Description)
	}

	ctx.UI.Print("")
	ctx.UI.Info("Files:")
	files := catalog.Files()
	sort.Slice(files, func(i, j int) bool {
		return strings.ToLower(files[i].Path) < strings.ToLower(files[j].Path)
	})
	for i, f := range files {
		ctx.UI.TreeEntry(branch(i, len(files)), f.Path, sizeNote(len(f.Content)))
	}

	ctx.UI.Print("")
	ctx.UI.Separator()
	ctx.UI.Infof("%d folders, %d files", len(folders), len(files))
}

func branch(i, n int) string {
	if i == n-1 {
		return "└──"
	}
	return "├──"
}

func sizeNote(n int) string {
	if n == 0 {
		return "empty"
	}
	if n == 1 {
		return "1 byte"
	}
	return fmt.Sprintf("%d bytes", n)
}
