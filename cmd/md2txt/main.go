// Command md2txt converts Markdown documents to plain text.
package main

import "os"

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}
