package ccworld

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const dt = 1.0 / 60

// step advances the world n frames.
func step(w *World, n int) {

	for i := 0; i < n; i++ {
		w.Update(dt)
	}
}

func TestWorld_IgnoredPairDoesNotRespond(t *testing.T) {

	w := New(0, 0, true)
	defer w.Destroy()
	assert.NoError(t, w.AddCollisionClass("Player", CollisionClass{Ignores: IgnoreNames("Enemy")}))
	assert.NoError(t, w.AddCollisionClass("Enemy", CollisionClass{}))

	player := w.NewRectangleCollider(Dynamic, 0, 0, 2, 2)
	assert.NoError(t, player.SetCollisionClass("Player"))
	enemy := w.NewRectangleCollider(Dynamic, 0.1, 0, 2, 2)
	assert.NoError(t, enemy.SetCollisionClass("Enemy"))

	step(w, 60)

	px, py := player.Position()
	ex, ey := enemy.Position()
	assert.InDelta(t, 0, px, 1e-6)
	assert.InDelta(t, 0, py, 1e-6)
	assert.InDelta(t, 0.1, ex, 1e-6)
	assert.InDelta(t, 0, ey, 1e-6)
}

func TestWorld_IgnoredPairStillReportsOverlapThroughSensors(t *testing.T) {

	w := New(0, 0, true)
	defer w.Destroy()
	assert.NoError(t, w.AddCollisionClass("Ghost", CollisionClass{Ignores: IgnoreNames("Wall")}))
	assert.NoError(t, w.AddCollisionClass("Wall", CollisionClass{}))

	ghost := w.NewRectangleCollider(Dynamic, 0, 0, 4, 4)
	assert.NoError(t, ghost.SetCollisionClass("Ghost"))
	wall := w.NewRectangleCollider(Static, 1, 0, 4, 4)
	assert.NoError(t, wall.SetCollisionClass("Wall"))

	entered := false
	for i := 0; i < 10 && !entered; i++ {
		w.Update(dt)
		entered = ghost.Enter("Wall")
	}
	assert.True(t, entered, "overlap of an ignoring pair must still be reported via the sensor path")
}

func TestWorld_EnterStayExitSequence(t *testing.T) {

	w := New(0, 10, true)
	defer w.Destroy()
	assert.NoError(t, w.AddCollisionClass("A", CollisionClass{}))
	assert.NoError(t, w.AddCollisionClass("B", CollisionClass{}))

	ground := w.NewRectangleCollider(Static, 0, 20, 40, 2)
	assert.NoError(t, ground.SetCollisionClass("A"))
	ball := w.NewCircleCollider(Dynamic, 0, 0, 2)
	assert.NoError(t, ball.SetCollisionClass("B"))

	enters := 0
	for i := 0; i < 240; i++ {
		w.Update(dt)
		if ball.Enter("A") {
			enters++
		}
	}
	assert.Equal(t, 1, enters, "enter must fire exactly once for one landing")
	assert.True(t, ball.Stay("A"), "ball should be resting on the ground")

	// Launch the ball off the ground and watch for exactly one exit.
	ball.Body().Raw().SetVelocity(0, -60)
	exits := 0
	for i := 0; i < 120; i++ {
		w.Update(dt)
		if ball.Exit("A") {
			exits++
		}
	}
	assert.Equal(t, 1, exits, "exit must fire exactly once when contact breaks")
	assert.False(t, ball.Stay("A"))
}

func TestWorld_ContactSnapshotSurvivesFrameAndPoolReuse(t *testing.T) {

	w := New(0, 10, true)
	defer w.Destroy()
	assert.NoError(t, w.AddCollisionClass("A", CollisionClass{}))
	assert.NoError(t, w.AddCollisionClass("B", CollisionClass{}))

	ground := w.NewRectangleCollider(Static, 0, 20, 40, 2)
	assert.NoError(t, ground.SetCollisionClass("A"))
	ball := w.NewCircleCollider(Dynamic, 0, 0, 2)
	assert.NoError(t, ball.SetCollisionClass("B"))

	var entered bool
	for i := 0; i < 240 && !entered; i++ {
		w.Update(dt)
		entered = ball.Enter("A")
	}
	assert.True(t, entered)

	data := ball.GetEnterCollisionData("A")
	assert.Same(t, ground, data.Collider)
	assert.NotNil(t, data.Contact)
	_, ny := data.Contact.Normal()
	assert.InDelta(t, 1, math.Abs(ny), 1e-3, "landing normal should be vertical")

	clone := data.Contact.Clone()
	w.Update(dt)
	// The pooled snapshot may now hold reused data but reading it must be
	// safe; the clone keeps the original values.
	data.Contact.Normal()
	_, cny := clone.Normal()
	assert.InDelta(t, 1, math.Abs(cny), 1e-3)
}

func TestWorld_QueuesClearedEachUpdate(t *testing.T) {

	w := New(0, 10, true)
	defer w.Destroy()
	assert.NoError(t, w.AddCollisionClass("A", CollisionClass{}))
	assert.NoError(t, w.AddCollisionClass("B", CollisionClass{}))

	ground := w.NewRectangleCollider(Static, 0, 20, 40, 2)
	assert.NoError(t, ground.SetCollisionClass("A"))
	ball := w.NewCircleCollider(Dynamic, 0, 0, 2)
	assert.NoError(t, ball.SetCollisionClass("B"))

	var entered bool
	for i := 0; i < 240 && !entered; i++ {
		w.Update(dt)
		entered = ball.Enter("A")
	}
	assert.True(t, entered)

	// The contact persists but no new enter happens, so after the next
	// update the frame queue is empty again.
	w.Update(dt)
	assert.False(t, ball.Enter("A"))
	assert.True(t, ball.Stay("A"), "stay set persists across updates")
}

func TestWorld_PreSolveDisablesResponse(t *testing.T) {

	w := New(0, 10, true)
	defer w.Destroy()
	assert.NoError(t, w.AddCollisionClass("Ground", CollisionClass{}))
	assert.NoError(t, w.AddCollisionClass("Drop", CollisionClass{}))

	ground := w.NewRectangleCollider(Static, 0, 20, 40, 2)
	assert.NoError(t, ground.SetCollisionClass("Ground"))
	ball := w.NewCircleCollider(Dynamic, 0, 0, 2)
	assert.NoError(t, ball.SetCollisionClass("Drop"))
	ball.SetPreSolve(func(self, other *Collider, contact *Contact) {
		contact.SetEnabled(false)
	})

	step(w, 300)

	_, y := ball.Position()
	assert.Greater(t, y, 25.0, "disabled contact response must let the ball fall through")
}

func TestWorld_RegistryStateMachine(t *testing.T) {

	w := New(0, 0, true)
	defer w.Destroy()

	// Right after New only the bootstrap Default class exists, so explicit
	// mode is still selectable.
	assert.NoError(t, w.SetExplicitCollisionEvents(true))
	assert.NoError(t, w.SetExplicitCollisionEvents(false))

	assert.NoError(t, w.AddCollisionClass("A", CollisionClass{}))
	assert.Error(t, w.SetExplicitCollisionEvents(true), "explicit mode is locked once a class is registered")

	err := w.AddCollisionClass("A", CollisionClass{})
	var dup *DuplicateClassError
	assert.ErrorAs(t, err, &dup)
	assert.Equal(t, "A", dup.Name)
}

func TestWorld_CategoryOverflowSurfacedAndRolledBack(t *testing.T) {

	w := New(0, 0, true)
	defer w.Destroy()

	// Each class ignores its predecessor, so every class but the newest
	// carries a unique incoming signature (the newest, ignored by nobody,
	// shares the empty signature with Default) and each registration adds
	// one category. The bootstrap Default class takes one, so the 16th
	// chained class overflows the 16-category ceiling.
	var overflowed error
	names := []string{"C0"}
	assert.NoError(t, w.AddCollisionClass("C0", CollisionClass{}))
	for i := 1; i < 20 && overflowed == nil; i++ {
		name := names[len(names)-1] + "x"
		overflowed = w.AddCollisionClass(name, CollisionClass{Ignores: IgnoreNames(names[len(names)-1])})
		if overflowed == nil {
			names = append(names, name)
		}
	}
	assert.Error(t, overflowed)

	// The failed registration was rolled back: the world is still usable.
	assert.NotContains(t, w.ClassNames(), names[len(names)-1]+"x")
	c := w.NewCircleCollider(Dynamic, 0, 0, 1)
	assert.NoError(t, c.SetCollisionClass(names[0]))
}

func TestWorld_UnknownClassAndColliderLifecycle(t *testing.T) {

	w := New(0, 0, true)
	defer w.Destroy()

	c := w.NewCircleCollider(Dynamic, 0, 0, 1)
	var unknown *UnknownClassError
	assert.ErrorAs(t, c.SetCollisionClass("Nope"), &unknown)
	assert.Equal(t, DefaultClassName, c.CollisionClass())

	// The first collider froze the registry.
	assert.Error(t, w.AddCollisionClass("Late", CollisionClass{}))

	// Polling a peer class that was never registered is falsy, not fatal.
	assert.False(t, c.Enter("Nope"))
	assert.False(t, c.Exit("Nope"))
	assert.False(t, c.Stay("Nope"))
	assert.Empty(t, c.GetStayCollisionData("Nope"))

	c.SetObject("payload")
	assert.Equal(t, "payload", c.GetObject())
	assert.NotEmpty(t, c.ID())

	c.Destroy()
	c.Destroy() // second destroy is a no-op
	assert.Nil(t, c.GetObject())
	assert.NotContains(t, w.colliders, c)
}

func TestWorld_ExplicitEventsOnlyDeclaredPairsFire(t *testing.T) {

	w := New(0, 10, true)
	defer w.Destroy()
	assert.NoError(t, w.SetExplicitCollisionEvents(true))
	assert.NoError(t, w.AddCollisionClass("Ground", CollisionClass{}))
	assert.NoError(t, w.AddCollisionClass("Listener", CollisionClass{Enter: []string{"Ground"}}))
	assert.NoError(t, w.AddCollisionClass("Deaf", CollisionClass{}))

	ground := w.NewRectangleCollider(Static, 0, 20, 80, 2)
	assert.NoError(t, ground.SetCollisionClass("Ground"))
	listener := w.NewCircleCollider(Dynamic, -10, 0, 2)
	assert.NoError(t, listener.SetCollisionClass("Listener"))
	deaf := w.NewCircleCollider(Dynamic, 10, 0, 2)
	assert.NoError(t, deaf.SetCollisionClass("Deaf"))

	listenerHeard, deafHeard := false, false
	for i := 0; i < 240; i++ {
		w.Update(dt)
		listenerHeard = listenerHeard || listener.Enter("Ground")
		deafHeard = deafHeard || deaf.Enter("Ground")
	}
	assert.True(t, listenerHeard, "declared pair must fire")
	assert.False(t, deafHeard, "undeclared pair must stay silent in explicit mode")
}

func TestWorld_AddShapeAndRemoveShape(t *testing.T) {

	w := New(0, 0, true)
	defer w.Destroy()

	c := w.NewCircleCollider(Dynamic, 0, 0, 1)
	assert.Equal(t, []string{"main"}, c.ShapeNames())

	var dup *DuplicateShapeError
	assert.ErrorAs(t, c.AddShape("main", Circle{R: 2}), &dup)

	assert.NoError(t, c.AddShape("halo", Circle{R: 4}))
	assert.Equal(t, []string{"main", "halo"}, c.ShapeNames())

	c.RemoveShape("halo")
	c.RemoveShape("halo") // removing a missing shape is a no-op
	assert.Equal(t, []string{"main"}, c.ShapeNames())
}

func TestWorld_AddJointRoundTrip(t *testing.T) {

	w := New(0, 0, true)
	defer w.Destroy()

	a := w.NewCircleCollider(Dynamic, 0, 0, 1)
	b := w.NewCircleCollider(Dynamic, 10, 0, 1)

	j, err := w.AddJoint(RevoluteJoint, a, b, 5, 0)
	assert.NoError(t, err)
	assert.NotNil(t, j)
	assert.Len(t, w.joints, 1)

	w.RemoveJoint(j)
	assert.Empty(t, w.joints)
}
