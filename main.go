/*
Copyright © 2026 ソニーレベル <C7kali3@gmail.com>

*/
package main

import "github.com/sony-level/tempdir/cmd"

func main() {
	cmd.Execute()
}
