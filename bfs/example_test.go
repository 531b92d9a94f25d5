package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/qmap/bfs"
)

// ExampleBFS finds the hop distances on a 4-cycle.
func ExampleBFS() {
	ring := adj{{1, 3}, {0, 2}, {1, 3}, {0, 2}}

	res, err := bfs.BFS(ring, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(2)
	fmt.Println("depth:", res.Depth)
	fmt.Println("path to 2:", path)
	// Output:
	// depth: [0 1 2 1]
	// path to 2: [0 1 2]
}
