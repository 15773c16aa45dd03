package pointcloud

import "fmt"

// Label is the classification assigned to a point.
type Label uint8

const (
	// Unclassified is the label of a point that was never painted or has been erased.
	Unclassified Label = iota
	// Classified is the label of a painted point.
	Classified
)

func (l Label) String() string {
	switch l {
	case Unclassified:
		return "unclassified"
	case Classified:
		return "classified"
	default:
		return fmt.Sprintf("label(%d)", uint8(l))
	}
}

// CountLabels returns how many entries of labels carry each label value.
func CountLabels(labels []Label) map[Label]int {
	counts := make(map[Label]int)
	for _, l := range labels {
		counts[l]++
	}
	return counts
}
