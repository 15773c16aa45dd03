package history

import (
	"image/color"
	"testing"

	"go.viam.com/test"

	"go.viam.com/pclabel/pointcloud"
)

type fakeStore struct {
	labels  []pointcloud.Label
	applied int
}

func (fs *fakeStore) Labels() []pointcloud.Label {
	out := make([]pointcloud.Label, len(fs.labels))
	copy(out, fs.labels)
	return out
}

func (fs *fakeStore) ApplyLabels(labels []pointcloud.Label) int {
	fs.applied++
	fs.labels = labels
	return len(labels)
}

// state encodes n as the labels of a three point store.
func state(n int) []pointcloud.Label {
	return []pointcloud.Label{pointcloud.Label(n), pointcloud.Label(n), pointcloud.Label(n)}
}

func TestNewSavesInitialState(t *testing.T) {
	store := &fakeStore{labels: state(0)}
	s := New(0, store)
	test.That(t, s.Depth(), test.ShouldEqual, DefaultDepth)
	test.That(t, s.Len(), test.ShouldEqual, 1)
	test.That(t, s.Cursor(), test.ShouldEqual, 0)
	test.That(t, s.CanUndo(), test.ShouldBeFalse)
	test.That(t, s.CanRedo(), test.ShouldBeFalse)
	test.That(t, s.SavedAt().IsZero(), test.ShouldBeFalse)

	test.That(t, s.Undo(), test.ShouldBeFalse)
	test.That(t, s.Redo(), test.ShouldBeFalse)
	test.That(t, store.applied, test.ShouldEqual, 0)
}

func TestUndoRedoRoundTrip(t *testing.T) {
	store := &fakeStore{labels: state(0)}
	s := New(5, store)
	store.labels = state(1)
	s.Save()
	store.labels = state(2)
	s.Save()

	before := store.Labels()
	test.That(t, s.Undo(), test.ShouldBeTrue)
	test.That(t, store.labels, test.ShouldResemble, state(1))
	test.That(t, s.CanRedo(), test.ShouldBeTrue)
	test.That(t, s.Redo(), test.ShouldBeTrue)
	test.That(t, store.labels, test.ShouldResemble, before)
	test.That(t, s.Redo(), test.ShouldBeFalse)

	test.That(t, s.Undo(), test.ShouldBeTrue)
	test.That(t, s.Undo(), test.ShouldBeTrue)
	test.That(t, store.labels, test.ShouldResemble, state(0))
	test.That(t, s.Undo(), test.ShouldBeFalse)
	test.That(t, store.applied, test.ShouldEqual, 4)
}

func TestSnapshotsAreCopies(t *testing.T) {
	store := &fakeStore{labels: state(0)}
	s := New(5, store)
	store.labels = state(1)
	s.Save()

	test.That(t, s.Undo(), test.ShouldBeTrue)
	store.labels[0] = 7
	test.That(t, s.Redo(), test.ShouldBeTrue)
	test.That(t, s.Undo(), test.ShouldBeTrue)
	test.That(t, store.labels, test.ShouldResemble, state(0))
}

func TestEvictsOldestFirst(t *testing.T) {
	const depth = 4
	store := &fakeStore{labels: state(0)}
	s := New(depth, store)
	for n := 1; n <= depth; n++ {
		store.labels = state(n)
		s.Save()
	}
	test.That(t, s.Len(), test.ShouldEqual, depth)
	test.That(t, s.Cursor(), test.ShouldEqual, depth-1)

	undone := 0
	for s.Undo() {
		undone++
	}
	test.That(t, undone, test.ShouldEqual, depth-1)
	// state(0) was evicted
	test.That(t, store.labels, test.ShouldResemble, state(1))
}

func TestSaveAfterUndoDropsRedo(t *testing.T) {
	store := &fakeStore{labels: state(0)}
	s := New(10, store)
	store.labels = state(1)
	s.Save()
	store.labels = state(2)
	s.Save()

	test.That(t, s.Undo(), test.ShouldBeTrue)
	test.That(t, s.Cursor(), test.ShouldEqual, 1)
	store.labels = state(3)
	s.Save()

	test.That(t, s.Len(), test.ShouldEqual, 3)
	test.That(t, s.Cursor(), test.ShouldEqual, 2)
	test.That(t, s.CanRedo(), test.ShouldBeFalse)

	var seen [][]pointcloud.Label
	seen = append(seen, store.Labels())
	for s.Undo() {
		seen = append(seen, store.Labels())
	}
	test.That(t, seen, test.ShouldResemble, [][]pointcloud.Label{state(3), state(1), state(0)})
}

func TestResyncsLabeledCloud(t *testing.T) {
	green := color.NRGBA{G: 255, A: 255}
	cloud := pointcloud.NewLabeledCloud(pointcloud.Vectors{{}, {X: 1}, {X: 2}}, nil, green)
	s := New(0, cloud)

	cloud.SetLabel(1, pointcloud.Classified)
	cloud.SetColor(1, green)
	s.Save()
	cloud.Flush()

	test.That(t, s.Undo(), test.ShouldBeTrue)
	test.That(t, cloud.Label(1), test.ShouldEqual, pointcloud.Unclassified)
	test.That(t, cloud.Color(1), test.ShouldResemble, pointcloud.White)
	start, end, ok := cloud.Flush()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, []int{start, end}, test.ShouldResemble, []int{1, 1})

	test.That(t, s.Redo(), test.ShouldBeTrue)
	test.That(t, cloud.Color(1), test.ShouldResemble, green)
}
