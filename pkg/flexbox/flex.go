package flexbox

import (
	"fmt"
	"log"

	"github.com/go-drift/attached/pkg/property"
)

// Axis represents the layout direction.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// MainAxisAlignment controls how children are positioned along the main axis
// (horizontal for [Row], vertical for [Column]).
type MainAxisAlignment int

const (
	// MainAxisAlignmentStart places children at the start (left for Row, top for Column).
	MainAxisAlignmentStart MainAxisAlignment = iota
	// MainAxisAlignmentEnd places children at the end (right for Row, bottom for Column).
	MainAxisAlignmentEnd
	// MainAxisAlignmentCenter centers children along the main axis.
	MainAxisAlignmentCenter
	// MainAxisAlignmentSpaceBetween distributes free space evenly between children.
	// No space before the first or after the last child.
	MainAxisAlignmentSpaceBetween
	// MainAxisAlignmentSpaceAround distributes free space evenly, with half-sized
	// spaces at the start and end.
	MainAxisAlignmentSpaceAround
	// MainAxisAlignmentSpaceEvenly distributes free space evenly, including
	// equal space before the first and after the last child.
	MainAxisAlignmentSpaceEvenly
)

// String returns a human-readable representation of the main axis alignment.
func (a MainAxisAlignment) String() string {
	switch a {
	case MainAxisAlignmentStart:
		return "start"
	case MainAxisAlignmentEnd:
		return "end"
	case MainAxisAlignmentCenter:
		return "center"
	case MainAxisAlignmentSpaceBetween:
		return "space_between"
	case MainAxisAlignmentSpaceAround:
		return "space_around"
	case MainAxisAlignmentSpaceEvenly:
		return "space_evenly"
	default:
		return fmt.Sprintf("MainAxisAlignment(%d)", int(a))
	}
}

// MainAxisSize controls how much space the container takes along its main axis.
type MainAxisSize int

const (
	// MainAxisSizeMin sizes the container to fit its children (shrink-wrap).
	MainAxisSizeMin MainAxisSize = iota
	// MainAxisSizeMax expands to fill all available space along the main axis.
	// This is required for flexed children to receive space.
	MainAxisSizeMax
)

// String returns a human-readable representation of the main axis size.
func (s MainAxisSize) String() string {
	switch s {
	case MainAxisSizeMin:
		return "min"
	case MainAxisSizeMax:
		return "max"
	default:
		return fmt.Sprintf("MainAxisSize(%d)", int(s))
	}
}

// Flex is the stretch factor a container reads for each child. Zero (the
// default) means the child keeps its preferred size; positive factors share
// the remaining main-axis space proportionally. Negative candidates are
// coerced to zero.
var Flex = property.New(property.Config[Box, int]{
	Name:   "flex",
	Coerce: func(_ *Box, value int) int { return max(value, 0) },
})

// ChildOffset is where the container most recently placed a child, relative
// to the container's origin. Written during layout; read by whoever paints
// or hit-tests the children.
var ChildOffset = property.New(property.Config[Box, Offset]{
	Name: "childOffset",
})

// Row lays out children horizontally from left to right.
//
// By default (MainAxisSizeMin), Row shrinks to fit its children. Set
// MainAxisSizeMax to expand and fill available horizontal space - this is
// required when giving children a [Flex] factor.
//
// For vertical layout, use [Column].
type Row struct {
	Children  []*Box
	Alignment MainAxisAlignment
	AxisSize  MainAxisSize

	unboundedFlexWarned bool // one-shot flag to avoid log spam
}

// Layout measures and places the children, returning the row's size.
// Child positions are recorded in [ChildOffset].
func (r *Row) Layout(constraints Constraints) Size {
	return flexLayout(AxisHorizontal, r.Alignment, r.AxisSize, r.Children, constraints, &r.unboundedFlexWarned)
}

// Column lays out children vertically from top to bottom.
//
// By default (MainAxisSizeMin), Column shrinks to fit its children. Set
// MainAxisSizeMax to expand and fill available vertical space - this is
// required when giving children a [Flex] factor.
//
// For horizontal layout, use [Row].
type Column struct {
	Children  []*Box
	Alignment MainAxisAlignment
	AxisSize  MainAxisSize

	unboundedFlexWarned bool // one-shot flag to avoid log spam
}

// Layout measures and places the children, returning the column's size.
// Child positions are recorded in [ChildOffset].
func (c *Column) Layout(constraints Constraints) Size {
	return flexLayout(AxisVertical, c.Alignment, c.AxisSize, c.Children, constraints, &c.unboundedFlexWarned)
}

func flexLayout(direction Axis, alignment MainAxisAlignment, axisSize MainAxisSize, children []*Box, constraints Constraints, warned *bool) Size {
	maxSize := Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight}
	maxMain := mainAxis(direction, maxSize)

	mainSize := 0.0
	crossSize := 0.0
	totalFlex := 0
	flexChildren := make([]*Box, 0)
	flexFactors := make([]int, 0)

	for _, child := range children {
		if flex := Flex.Get(child); flex > 0 {
			flexChildren = append(flexChildren, child)
			flexFactors = append(flexFactors, flex)
			totalFlex += flex
			continue
		}
		child.Layout(Loose(maxSize))
		childSize := child.Size()
		mainSize += mainAxis(direction, childSize)
		crossSize = max(crossSize, crossAxis(direction, childSize))
	}

	if totalFlex > 0 && maxMain == Unbounded {
		if !*warned {
			log.Printf("WARNING: flexed children used with unbounded %s axis. "+
				"Flex factors cannot be honored in unbounded constraints; "+
				"flexed children collapse to zero main-axis size.", direction.String())
			*warned = true
		}
		totalFlex = 0
	}

	remaining := max(maxMain-mainSize, 0)
	if axisSize != MainAxisSizeMax {
		remaining = 0
	}

	for i, child := range flexChildren {
		allocated := 0.0
		if totalFlex > 0 {
			allocated = remaining * float64(flexFactors[i]) / float64(totalFlex)
		}
		// Flexed children get tight constraints in the main axis direction.
		child.Layout(flexConstraints(direction, constraints, allocated))
		childSize := child.Size()
		mainSize += mainAxis(direction, childSize)
		crossSize = max(crossSize, crossAxis(direction, childSize))
	}

	finalMain := mainSize
	if axisSize == MainAxisSizeMax && maxMain != Unbounded {
		finalMain = maxMain
	}

	size := constraints.Constrain(makeSize(direction, finalMain, crossSize))

	freeSpace := max(mainAxis(direction, size)-mainSize, 0)
	spacing, cursor := computeSpacing(alignment, freeSpace, len(children))

	for _, child := range children {
		ChildOffset.Set(child, makeOffset(direction, cursor, 0))
		cursor += mainAxis(direction, child.Size()) + spacing
	}

	return size
}

func mainAxis(direction Axis, size Size) float64 {
	if direction == AxisHorizontal {
		return size.Width
	}
	return size.Height
}

func crossAxis(direction Axis, size Size) float64 {
	if direction == AxisHorizontal {
		return size.Height
	}
	return size.Width
}

func makeSize(direction Axis, main, cross float64) Size {
	if direction == AxisHorizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

func makeOffset(direction Axis, main, cross float64) Offset {
	if direction == AxisHorizontal {
		return Offset{X: main, Y: cross}
	}
	return Offset{X: cross, Y: main}
}

func flexConstraints(direction Axis, constraints Constraints, mainSize float64) Constraints {
	if direction == AxisHorizontal {
		return Constraints{
			MinWidth:  mainSize,
			MaxWidth:  mainSize,
			MaxHeight: constraints.MaxHeight,
		}
	}
	return Constraints{
		MaxWidth:  constraints.MaxWidth,
		MinHeight: mainSize,
		MaxHeight: mainSize,
	}
}

func computeSpacing(alignment MainAxisAlignment, freeSpace float64, n int) (spacing, offset float64) {
	switch alignment {
	case MainAxisAlignmentEnd:
		offset = freeSpace
	case MainAxisAlignmentCenter:
		offset = freeSpace * 0.5
	case MainAxisAlignmentSpaceBetween:
		if n > 1 {
			spacing = freeSpace / float64(n-1)
		}
	case MainAxisAlignmentSpaceAround:
		if n > 0 {
			spacing = freeSpace / float64(n)
			offset = spacing * 0.5
		}
	case MainAxisAlignmentSpaceEvenly:
		if n > 0 {
			spacing = freeSpace / float64(n+1)
			offset = spacing
		}
	}
	return
}
