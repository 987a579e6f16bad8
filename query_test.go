package ccworld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func queryWorld(t *testing.T) (*World, *Collider, *Collider, *Collider) {

	t.Helper()
	w := New(0, 0, true)
	t.Cleanup(w.Destroy)
	assert.NoError(t, w.AddCollisionClassTable(map[string]CollisionClass{
		"P": {}, "E": {}, "N": {},
	}))

	p := w.NewCircleCollider(Static, 100, 100, 10)
	assert.NoError(t, p.SetCollisionClass("P"))
	e := w.NewCircleCollider(Static, 150, 100, 10)
	assert.NoError(t, e.SetCollisionClass("E"))
	n := w.NewCircleCollider(Static, 200, 100, 10)
	assert.NoError(t, n.SetCollisionClass("N"))
	return w, p, e, n
}

func TestQueryCircleArea_FilterAllExcept(t *testing.T) {

	w, _, e, _ := queryWorld(t)

	got := w.QueryCircleArea(125, 100, 40, FilterAll("P"))
	assert.Equal(t, []*Collider{e}, got)
}

func TestQueryCircleArea_GeometricOverlap(t *testing.T) {

	w, p, e, n := queryWorld(t)

	got := w.QueryCircleArea(125, 100, 40, Filter{})
	assert.ElementsMatch(t, []*Collider{p, e}, got)
	assert.NotContains(t, got, n, "disk ending at x=165 stops 25 short of the collider edge at x=190")
}

func TestQueryCircleArea_NamedFilter(t *testing.T) {

	w, _, _, n := queryWorld(t)

	got := w.QueryCircleArea(200, 100, 5, FilterClasses("N"))
	assert.Equal(t, []*Collider{n}, got)

	assert.Empty(t, w.QueryCircleArea(200, 100, 5, FilterClasses("P")))
}

func TestQueryRectangleArea(t *testing.T) {

	w := New(0, 0, true)
	defer w.Destroy()
	assert.NoError(t, w.AddCollisionClass("Box", CollisionClass{}))

	inside := w.NewRectangleCollider(Static, 50, 50, 10, 10)
	assert.NoError(t, inside.SetCollisionClass("Box"))
	outside := w.NewRectangleCollider(Static, 500, 500, 10, 10)
	assert.NoError(t, outside.SetCollisionClass("Box"))
	circle := w.NewCircleCollider(Static, 70, 50, 8)
	assert.NoError(t, circle.SetCollisionClass("Box"))

	got := w.QueryRectangleArea(40, 40, 40, 20, Filter{})
	assert.ElementsMatch(t, []*Collider{inside, circle}, got)
}

func TestQueryPolygonArea(t *testing.T) {

	w := New(0, 0, true)
	defer w.Destroy()

	target := w.NewCircleCollider(Static, 10, 10, 4)
	far := w.NewCircleCollider(Static, 100, 100, 4)

	triangle := []float64{0, 0, 30, 0, 15, 30}
	got := w.QueryPolygonArea(triangle, Filter{})
	assert.Contains(t, got, target)
	assert.NotContains(t, got, far)
}

func TestQueryLine(t *testing.T) {

	w := New(0, 0, true)
	defer w.Destroy()
	assert.NoError(t, w.AddCollisionClass("Hit", CollisionClass{}))
	assert.NoError(t, w.AddCollisionClass("Skip", CollisionClass{}))

	hit := w.NewRectangleCollider(Static, 50, 0, 10, 10)
	assert.NoError(t, hit.SetCollisionClass("Hit"))
	skipped := w.NewRectangleCollider(Static, 80, 0, 10, 10)
	assert.NoError(t, skipped.SetCollisionClass("Skip"))
	above := w.NewRectangleCollider(Static, 50, 50, 10, 10)
	assert.NoError(t, above.SetCollisionClass("Hit"))

	got := w.QueryLine(0, 0, 100, 0, FilterAll("Skip"))
	assert.Equal(t, []*Collider{hit}, got)
}

func TestQueryDebugDrawingRecordsShapes(t *testing.T) {

	w := New(0, 0, true)
	defer w.Destroy()

	w.QueryCircleArea(0, 0, 5, Filter{})
	assert.Empty(t, w.debugQueries, "queries are not recorded until debug drawing is enabled")

	w.SetQueryDebugDrawing(true)
	w.QueryCircleArea(0, 0, 5, Filter{})
	w.QueryLine(0, 0, 10, 10, Filter{})
	assert.Len(t, w.debugQueries, 2)
}

func TestFilter_Passes(t *testing.T) {

	assert.True(t, Filter{}.passes("Anything"))
	assert.True(t, FilterAll("P").passes("E"))
	assert.False(t, FilterAll("P").passes("P"))
	assert.True(t, FilterClasses("A", "B").passes("B"))
	assert.False(t, FilterClasses("A", "B").passes("C"))
	assert.False(t, Filter{Names: []string{"A"}, Except: []string{"A"}}.passes("A"))
}
