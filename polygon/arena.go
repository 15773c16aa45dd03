// Package polygon holds the editable polygons used for region selection. Polygons live in an
// arena and are referred to by generation-stamped ids; picks name a polygon and a node or edge of
// it, and are resolved by lookup.
package polygon

import (
	"fmt"
	"slices"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"go.viam.com/pclabel/logging"
	"go.viam.com/pclabel/spatialmath"
)

// DefaultNodeHeight is the height (Y) given to nodes inserted on an edge.
const DefaultNodeHeight = 2.5

// minNodesForDelete is how many nodes a polygon needs before one may be deleted.
const minNodesForDelete = 3

var (
	// ErrNotFound is returned for ids of removed polygons or slots never handed out.
	ErrNotFound = errors.New("polygon not found")
	// ErrTooFewNodes is returned when deleting a node would leave too small a polygon.
	ErrTooFewNodes = errors.New("polygon has too few nodes")
	// ErrBadEdge is returned for edges that do not join neighboring nodes.
	ErrBadEdge = errors.New("not an edge of the polygon")
	// ErrBadNode is returned for node indices out of range.
	ErrBadNode = errors.New("no such node")
	// ErrWrongTarget is returned when a pick targets the wrong kind of element.
	ErrWrongTarget = errors.New("wrong pick target")
)

// ID names a polygon. A removed polygon's slot is reused with the next generation, so stale ids
// stop resolving.
type ID struct {
	Slot       uint32
	Generation uint32
}

func (id ID) String() string {
	return fmt.Sprintf("polygon(%d#%d)", id.Slot, id.Generation)
}

// Target is the element of a polygon a pick hit: a Node or an Edge.
type Target interface {
	isTarget()
}

// Node is a vertex of a polygon.
type Node struct {
	Index int
}

// Edge joins node From to node To. The closing edge runs from the last node to node 0.
type Edge struct {
	From, To int
}

func (Node) isTarget() {}
func (Edge) isTarget() {}

// Pick is a resolved pick result.
type Pick struct {
	Polygon ID
	Target  Target
}

type slot struct {
	generation uint32
	live       bool
	vertices   []r3.Vector
}

// Arena owns every polygon. It is not safe for concurrent use.
type Arena struct {
	slots      []slot
	free       []uint32
	nodeHeight float64
	logger     logging.Logger
}

// NewArena returns an empty arena. Nodes inserted on edges are placed at nodeHeight.
func NewArena(nodeHeight float64, logger logging.Logger) *Arena {
	return &Arena{nodeHeight: nodeHeight, logger: logger}
}

// Add creates a polygon from vertices and returns its id.
func (a *Arena) Add(vertices ...r3.Vector) ID {
	vs := slices.Clone(vertices)
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.live = true
		s.vertices = vs
		return ID{Slot: idx, Generation: s.generation}
	}
	a.slots = append(a.slots, slot{live: true, vertices: vs})
	return ID{Slot: uint32(len(a.slots) - 1)}
}

// Remove deletes a polygon. Its id, and every pick naming it, stops resolving.
func (a *Arena) Remove(id ID) error {
	s, err := a.lookup(id)
	if err != nil {
		return err
	}
	s.live = false
	s.vertices = nil
	s.generation++
	a.free = append(a.free, id.Slot)
	return nil
}

// Len returns the number of live polygons.
func (a *Arena) Len() int {
	return len(a.slots) - len(a.free)
}

// IDs returns the ids of the live polygons in slot order.
func (a *Arena) IDs() []ID {
	ids := make([]ID, 0, a.Len())
	for i, s := range a.slots {
		if s.live {
			ids = append(ids, ID{Slot: uint32(i), Generation: s.generation})
		}
	}
	return ids
}

// Vertices returns a copy of a polygon's vertices.
func (a *Arena) Vertices(id ID) ([]r3.Vector, error) {
	s, err := a.lookup(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(s.vertices), nil
}

// Open returns the vertex loop of every live polygon, in slot order. Loops are closed implicitly
// from the last vertex back to the first.
func (a *Arena) Open() [][]r3.Vector {
	out := make([][]r3.Vector, 0, a.Len())
	for _, s := range a.slots {
		if s.live {
			out = append(out, slices.Clone(s.vertices))
		}
	}
	return out
}

// Edges returns the pickable edges of a polygon: each node to the next, then the closing edge.
// Zero-length edges are left out.
func (a *Arena) Edges(id ID) ([]Edge, error) {
	s, err := a.lookup(id)
	if err != nil {
		return nil, err
	}
	n := len(s.vertices)
	if n < 2 {
		return nil, nil
	}
	edges := make([]Edge, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if n == 2 && j == 0 {
			// two nodes have one edge
			break
		}
		if s.vertices[i].Sub(s.vertices[j]).Norm2() > 1e-12 {
			edges = append(edges, Edge{From: i, To: j})
		}
	}
	return edges, nil
}

// AppendVertex adds a vertex after the last one.
func (a *Arena) AppendVertex(id ID, p r3.Vector) error {
	s, err := a.lookup(id)
	if err != nil {
		return err
	}
	s.vertices = append(s.vertices, p)
	return nil
}

// MoveNode moves the picked node to p.
func (a *Arena) MoveNode(pick Pick, p r3.Vector) error {
	s, node, err := a.lookupNode(pick)
	if err != nil {
		return err
	}
	s.vertices[node.Index] = p
	return nil
}

// InsertOnEdge splits the picked edge with a new node at p, raised to the arena's node height.
// Picking the closing edge appends the node at the end. It returns the new node.
func (a *Arena) InsertOnEdge(pick Pick, p r3.Vector) (Node, error) {
	s, err := a.lookup(pick.Polygon)
	if err != nil {
		return Node{}, err
	}
	edge, ok := pick.Target.(Edge)
	if !ok {
		return Node{}, errors.Wrapf(ErrWrongTarget, "want an edge, got %T", pick.Target)
	}

	n := len(s.vertices)
	var at int
	switch {
	case n > 1 && edge.From == n-1 && edge.To == 0:
		at = n
	case edge.From >= 0 && edge.To == edge.From+1 && edge.To < n:
		at = edge.To
	default:
		return Node{}, errors.Wrapf(ErrBadEdge, "%v edge %d-%d with %d nodes", pick.Polygon, edge.From, edge.To, n)
	}

	p.Y = a.nodeHeight
	s.vertices = slices.Insert(s.vertices, at, p)
	a.logger.Debugw("inserted node", "polygon", pick.Polygon, "index", at, "nodes", len(s.vertices))
	return Node{Index: at}, nil
}

// DeleteNode removes the picked node. Polygons with fewer than three nodes keep theirs.
func (a *Arena) DeleteNode(pick Pick) error {
	s, node, err := a.lookupNode(pick)
	if err != nil {
		return err
	}
	if len(s.vertices) < minNodesForDelete {
		return errors.Wrapf(ErrTooFewNodes, "%v has %d nodes, need %d to delete one",
			pick.Polygon, len(s.vertices), minNodesForDelete)
	}
	s.vertices = slices.Delete(s.vertices, node.Index, node.Index+1)
	a.logger.Debugw("deleted node", "polygon", pick.Polygon, "index", node.Index, "nodes", len(s.vertices))
	return nil
}

// PickAt resolves a point on the horizontal plane to the nearest node or edge within tolerance,
// ignoring height. Nodes win over edges so that a click on a corner selects the node.
func (a *Arena) PickAt(p r3.Vector, tolerance float64) (Pick, bool) {
	p.Y = 0
	var best Pick
	bestDist := tolerance
	found := false
	for i, s := range a.slots {
		if !s.live {
			continue
		}
		id := ID{Slot: uint32(i), Generation: s.generation}
		for j, v := range s.vertices {
			v.Y = 0
			if d := v.Sub(p).Norm(); d <= bestDist {
				best, bestDist, found = Pick{Polygon: id, Target: Node{Index: j}}, d, true
			}
		}
	}
	if found {
		return best, true
	}

	for _, id := range a.IDs() {
		edges, _ := a.Edges(id)
		vertices := a.slots[id.Slot].vertices
		for _, e := range edges {
			from, to := vertices[e.From], vertices[e.To]
			from.Y, to.Y = 0, 0
			if d := spatialmath.DistToSegment(from, to, p); d <= bestDist {
				best, bestDist, found = Pick{Polygon: id, Target: e}, d, true
			}
		}
	}
	return best, found
}

func (a *Arena) lookup(id ID) (*slot, error) {
	if int(id.Slot) >= len(a.slots) {
		return nil, errors.Wrap(ErrNotFound, id.String())
	}
	s := &a.slots[id.Slot]
	if !s.live || s.generation != id.Generation {
		return nil, errors.Wrap(ErrNotFound, id.String())
	}
	return s, nil
}

func (a *Arena) lookupNode(pick Pick) (*slot, Node, error) {
	s, err := a.lookup(pick.Polygon)
	if err != nil {
		return nil, Node{}, err
	}
	node, ok := pick.Target.(Node)
	if !ok {
		return nil, Node{}, errors.Wrapf(ErrWrongTarget, "want a node, got %T", pick.Target)
	}
	if node.Index < 0 || node.Index >= len(s.vertices) {
		return nil, Node{}, errors.Wrapf(ErrBadNode, "%v node %d of %d", pick.Polygon, node.Index, len(s.vertices))
	}
	return s, node, nil
}
