package mleader_test

import (
	"fmt"

	"github.com/matzehuels/mleader/pkg/catalog"
	"github.com/matzehuels/mleader/pkg/geom"
	"github.com/matzehuels/mleader/pkg/mleader"
)

func ExampleLeaderRoot_Clone() {
	arrow := &catalog.BlockRecord{Handle: 0x1F, Name: "_ClosedFilled"}

	root := mleader.NewLeaderRoot(0)
	line := root.NewLine()
	line.AddPoint(geom.New(0, 0, 0))
	line.AddPoint(geom.New(2, 0, 0))
	line.SetArrowhead(arrow)

	clone := root.Clone()
	clone.Lines[0].AddPoint(geom.New(4, 1, 0))

	fmt.Println("source points:", root.Lines[0].PointCount())
	fmt.Println("clone points:", clone.Lines[0].PointCount())
	fmt.Println("shared arrowhead:", clone.Lines[0].Arrowhead == arrow)
	// Output:
	// source points: 2
	// clone points: 3
	// shared arrowhead: true
}

func ExampleOverrideFlags() {
	line := mleader.NewLeaderLine(0)
	line.SetPathType(mleader.PathSpline)
	line.SetLineWeight(catalog.LineWeight(35))

	fmt.Println(line.OverrideFlags)
	// Output: PathType|LineWeight
}
