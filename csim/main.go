// Command csim replays memory traces on a simulated set-associative cache
// and reports hit, miss, and eviction counts.
package main

import "github.com/sarchlab/csim/csim/cmd"

func main() {
	cmd.Execute()
}
