// biosedit edits SCEWIN BIOS setup dumps from the command line.
package main

import "github.com/thirteen37/biosedit/internal/cmd"

func main() {
	cmd.Execute()
}
