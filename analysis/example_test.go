package analysis_test

import (
	"fmt"

	"github.com/katalvlaran/lvreduce/analysis"
	"github.com/katalvlaran/lvreduce/edgelist"
	"github.com/katalvlaran/lvreduce/friends"
)

// ExampleCheckPerfect reports the pentagon as an odd hole.
func ExampleCheckPerfect() {
	edges, _ := edgelist.Parse("1,2 ; 2,3 ; 3,4 ; 4,5 ; 5,1")
	v, _ := analysis.CheckPerfect(analysis.Input{Edges: edges})
	fmt.Println(v.Perfect)
	fmt.Println(v.Message)
	// Output:
	// false
	// odd hole found in G: cycle [4 3 2 1 5]
}

// ExampleReduceToFixpoint contracts the square down to a single edge.
func ExampleReduceToFixpoint() {
	edges, _ := edgelist.Parse("1,2 ; 2,3 ; 3,4 ; 4,1")
	red, _ := analysis.ReduceToFixpoint(analysis.Input{Edges: edges}, friends.DefaultCutoff)
	for _, s := range red.Steps {
		fmt.Printf("step %d: (%s,%s) -> %s\n", s.Step, s.U, s.V, s.Merged)
	}
	fmt.Println(edgelist.Format(red.Edges))
	// Output:
	// step 1: (1,3) -> 1_3
	// step 2: (2,4) -> 2_4
	// 1_3,2_4
}
