package sifmock

import "fmt"

// GroupOrder controls the order in which grouping transformations (GroupBy,
// GroupByKey, ReduceByKey) emit their groups. Members within a group are
// always kept in encounter order.
type GroupOrder string

const (
	// GroupOrderReverseFirstSeen emits groups in reverse order of the first
	// appearance of their key, e.g. keys a, b, c, a yield groups c, b, a. A repeat
	// of an already-seen key does not move its group.
	GroupOrderReverseFirstSeen GroupOrder = "reverse-first-seen"
	// GroupOrderFirstSeen emits groups in order of the first appearance of their key
	GroupOrderFirstSeen GroupOrder = "first-seen"
)

// ParseGroupOrder validates a textual GroupOrder. The empty string selects the default.
func ParseGroupOrder(order string) (GroupOrder, error) {
	switch GroupOrder(order) {
	case "":
		return GroupOrderReverseFirstSeen, nil
	case GroupOrderReverseFirstSeen, GroupOrderFirstSeen:
		return GroupOrder(order), nil
	}
	return GroupOrderReverseFirstSeen, fmt.Errorf("Unknown group order %q", order)
}
