// Command folderls inspects the folder pages of a Markdown site: the virtual index
// pages a build generates and the listing each folder page shows.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}
