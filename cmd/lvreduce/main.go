// Command lvreduce colors, reduces and structurally checks simple graphs
// given as edge lists.
//
//	lvreduce color   --edges "1,2 ; 2,3 ; 3,1"
//	lvreduce reduce  --file graph.txt --steps 1
//	lvreduce perfect --file a.yaml --file b.txt --json
//	lvreduce chordal --edges "1,2 ; 2,3 ; 3,4 ; 4,1"
//	lvreduce watch   --file graph.txt --analysis perfect
package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	root := newRootCmd()
	root.PersistentFlags().AddGoFlagSet(fset)
	err := root.Execute()

	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
