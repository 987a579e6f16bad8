package level

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kestrel2d/ccworld"
)

func TestLevel_Build(t *testing.T) {

	lvl := &Level{
		Name:    "test",
		Gravity: [2]float64{0, 10},
		Classes: []Class{
			{Name: "Ground", Spec: ccworld.CollisionClass{}},
			{Name: "Ball", Spec: ccworld.CollisionClass{}},
		},
		Entities: []Entity{
			{Name: "floor", Class: "Ground", Kind: ccworld.Static, Shape: ccworld.Rectangle{W: 100, H: 2}, X: 0, Y: 50},
			{Name: "ball", Class: "Ball", Kind: ccworld.Dynamic, Shape: ccworld.Circle{R: 2}, X: 0, Y: 0},
		},
	}

	w, colliders, err := lvl.Build()
	assert.NoError(t, err)
	defer w.Destroy()

	assert.Len(t, colliders, 2)
	assert.Equal(t, "Ground", colliders["floor"].CollisionClass())
	assert.Equal(t, "Ball", colliders["ball"].CollisionClass())
	assert.Equal(t, "ball", colliders["ball"].GetObject())
	assert.Equal(t, []string{"Default", "Ground", "Ball"}, w.ClassNames())
}

func TestLevel_BuildRejectsUnknownClass(t *testing.T) {

	lvl := &Level{
		Entities: []Entity{
			{Name: "orphan", Class: "Nope", Kind: ccworld.Dynamic, Shape: ccworld.Circle{R: 1}},
		},
	}
	_, _, err := lvl.Build()
	assert.Error(t, err)
}
