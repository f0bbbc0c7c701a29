package main

import "github.com/masmgr/pkgsnap-go/cmd"

func main() {
	cmd.Run()
}
