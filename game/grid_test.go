package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEdgeGridGetSet(t *testing.T) {
	t.Run("setting and reading back a slot", func(t *testing.T) {
		g := NewEdgeGrid(3, 2, Vertical)

		require.NoError(t, g.Set(2, 1, OwnedBy(Blue)))
		got, err := g.Get(2, 1)

		require.NoError(t, err)
		require.Equal(t, OwnedBy(Blue), got, "Set should overwrite the slot")
	})

	t.Run("overwriting an owned slot", func(t *testing.T) {
		g := NewEdgeGrid(3, 2, Horizontal)
		require.NoError(t, g.Set(0, 0, OwnedBy(Red)))

		require.NoError(t, g.Set(0, 0, OwnedBy(Blue)), "Set does no rule checks")
		got, _ := g.Get(0, 0)
		require.Equal(t, OwnedBy(Blue), got)
	})

	t.Run("rejecting out of range coordinates", func(t *testing.T) {
		g := NewEdgeGrid(3, 2, Vertical)

		for _, c := range [][2]int{{3, 0}, {0, 2}, {-1, 0}, {0, -1}} {
			_, err := g.Get(c[0], c[1])
			require.ErrorIs(t, err, ErrOutOfRange, "Get(%d,%d) should fail", c[0], c[1])
			require.ErrorIs(t, g.Set(c[0], c[1], OwnedBy(Red)), ErrOutOfRange, "Set(%d,%d) should fail", c[0], c[1])
		}
	})
}

func TestEdgeGridClear(t *testing.T) {
	g := NewEdgeGrid(2, 2, Horizontal)
	for i := range g.Len() {
		id := g.IndexToID(i)
		require.NoError(t, g.Set(id.Col, id.Row, OwnedBy(Red)))
	}

	g.Clear()

	for _, state := range g.All() {
		require.Equal(t, Free, state, "Clear should reset every slot")
	}
}

func TestEdgeGridIndexBijection(t *testing.T) {
	g := NewEdgeGrid(4, 3, Vertical)
	seen := map[EdgeID]bool{}

	for i := range g.Len() {
		id := g.IndexToID(i)
		require.True(t, g.Contains(id.Col, id.Row), "index %d should map inside the grid", i)
		require.Equal(t, i, g.IDToIndex(id.Col, id.Row), "index -> id -> index should round trip")
		require.False(t, seen[id], "id %v should be produced once", id)
		seen[id] = true
	}
	require.Len(t, seen, 12)
}

func TestEdgeGridAll(t *testing.T) {
	t.Run("yielding row-major order", func(t *testing.T) {
		g := NewEdgeGrid(2, 2, Horizontal)
		require.NoError(t, g.Set(1, 0, OwnedBy(Red)))

		var ids []EdgeID
		var states []Ownership
		for id, state := range g.All() {
			ids = append(ids, id)
			states = append(states, state)
		}

		require.Equal(t, []EdgeID{H(0, 0), H(1, 0), H(0, 1), H(1, 1)}, ids)
		require.Equal(t, []Ownership{Free, OwnedBy(Red), Free, Free}, states)
	})

	t.Run("restarting on every call", func(t *testing.T) {
		g := NewEdgeGrid(3, 1, Vertical)
		count := func() int {
			n := 0
			for range g.All() {
				n++
			}
			return n
		}

		require.Equal(t, 3, count())
		require.Equal(t, 3, count(), "a second range should start from index 0")
	})

	t.Run("stopping early", func(t *testing.T) {
		g := NewEdgeGrid(3, 3, Vertical)
		n := 0
		for range g.All() {
			n++
			if n == 2 {
				break
			}
		}
		require.Equal(t, 2, n)
	})
}

func TestEdgeGridClone(t *testing.T) {
	g := NewEdgeGrid(2, 2, Vertical)
	clone := g.Clone()

	require.NoError(t, clone.Set(0, 0, OwnedBy(Blue)))

	got, _ := g.Get(0, 0)
	require.Equal(t, Free, got, "Clone should not share slots")
}
