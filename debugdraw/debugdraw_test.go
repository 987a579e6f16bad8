package debugdraw

import (
	"testing"

	"github.com/kestrel2d/ccworld/internal/engine"
)

// recorder counts primitive calls and tracks renderer state.
type recorder struct {
	r, g, b, a float64
	width      float64

	circles    int
	lines      int
	polygons   int
	rectangles int
}

func (r *recorder) Color() (float64, float64, float64, float64) { return r.r, r.g, r.b, r.a }

func (r *recorder) SetColor(cr, cg, cb, ca float64) { r.r, r.g, r.b, r.a = cr, cg, cb, ca }

func (r *recorder) LineWidth() float64 { return r.width }

func (r *recorder) SetLineWidth(w float64) { r.width = w }

func (r *recorder) Polygon(mode string, points []float64) { r.polygons++ }

func (r *recorder) Line(x1, y1, x2, y2 float64) { r.lines++ }

func (r *recorder) Circle(mode string, x, y, radius float64) { r.circles++ }

func (r *recorder) Rectangle(mode string, x, y, w, h float64) { r.rectangles++ }

func (r *recorder) Triangulate(points []float64) [][]float64 {

	if len(points) < 6 {
		return nil
	}
	return [][]float64{points[:6]}
}

func TestDrawWorld_RestoresRendererState(t *testing.T) {

	w := engine.NewWorld(0, 0, true)
	body := engine.NewBody(w, 0, 0, engine.Static)
	engine.NewCircleFixture(body, 5, 0, 0)
	engine.NewRectangleFixture(body, 4, 4)

	rec := &recorder{r: 0.1, g: 0.2, b: 0.3, a: 0.4, width: 3}
	DrawWorld(rec, w, nil, nil, 1)

	if rec.circles == 0 {
		t.Error("expected the circle fixture to be drawn")
	}
	if rec.polygons == 0 {
		t.Error("expected the rectangle fixture to be drawn as a polygon")
	}
	if rec.r != 0.1 || rec.g != 0.2 || rec.b != 0.3 || rec.a != 0.4 {
		t.Errorf("color not restored, got %v %v %v %v", rec.r, rec.g, rec.b, rec.a)
	}
	if rec.width != 3 {
		t.Errorf("line width not restored, got %v", rec.width)
	}
}

func TestDrawWorld_SkipsSensors(t *testing.T) {

	w := engine.NewWorld(0, 0, true)
	body := engine.NewBody(w, 0, 0, engine.Static)
	sensor := engine.NewCircleFixture(body, 5, 0, 0)
	sensor.SetSensor(true)

	rec := &recorder{}
	DrawWorld(rec, w, nil, nil, 1)

	if rec.circles != 0 {
		t.Errorf("sensor fixtures must not be drawn, got %d circles", rec.circles)
	}
}

func TestDrawWorld_QueryShapes(t *testing.T) {

	w := engine.NewWorld(0, 0, true)
	queries := []Query{
		{Kind: QueryCircle, Data: []float64{0, 0, 5}, Frames: 3},
		{Kind: QueryRectangle, Data: []float64{0, 0, 4, 4}, Frames: 3},
		{Kind: QueryLine, Data: []float64{0, 0, 10, 10}, Frames: 3},
		{Kind: QueryPolygon, Data: []float64{0, 0, 10, 0, 5, 10}, Frames: 3},
	}

	rec := &recorder{}
	DrawWorld(rec, w, nil, queries, 1)

	if rec.circles != 1 || rec.rectangles != 1 || rec.lines != 1 || rec.polygons != 1 {
		t.Errorf("unexpected draw counts: circles=%d rects=%d lines=%d polys=%d",
			rec.circles, rec.rectangles, rec.lines, rec.polygons)
	}
}

func TestAge_DropsExpiredQueries(t *testing.T) {

	queries := []Query{
		{Kind: QueryCircle, Frames: 1},
		{Kind: QueryCircle, Frames: 2},
	}
	queries = Age(queries)
	if len(queries) != 1 {
		t.Fatalf("expected one surviving query, got %d", len(queries))
	}
	if queries[0].Frames != 1 {
		t.Fatalf("expected surviving query to have one frame left, got %d", queries[0].Frames)
	}
}
