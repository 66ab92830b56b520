// Command surgelint checks Surge source files for struct declarations that
// end in a zero-sized array without a pinned memory layout.
package main

import "os"

func main() {
	os.Exit(run())
}
