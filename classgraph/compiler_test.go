package classgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompile_IgnoreSymmetry(t *testing.T) {

	order := []string{"Player", "Enemy"}
	ignores := map[string]Ignores{
		"Player": IgnoreNames("Enemy"),
		"Enemy":  {},
	}

	assignments, err := Compile(order, ignores)
	assert.NoError(t, err)

	used := UsedCategories(assignments)
	playerAccept := AcceptMask(assignments["Player"].IgnoreMask, used)
	enemyAccept := AcceptMask(assignments["Enemy"].IgnoreMask, used)

	playerCat := uint(1) << (assignments["Player"].Category - 1)
	enemyCat := uint(1) << (assignments["Enemy"].Category - 1)

	// Chipmunk/Box2D-style AND of both directions: since Player's
	// accept-mask excludes Enemy's category, the pair never collides
	// regardless of what Enemy's own accept-mask says.
	shouldCollide := (playerCat&enemyAccept) != 0 && (enemyCat&playerAccept) != 0
	assert.False(t, shouldCollide)
}

func TestCompile_AllExceptEquivalence(t *testing.T) {

	order := []string{"A", "B", "C", "D"}
	ignores := map[string]Ignores{
		"A": IgnoreAll("B"),
		"B": {},
		"C": {},
		"D": {},
	}

	assignments, err := Compile(order, ignores)
	assert.NoError(t, err)

	// A ignores everything except B: equivalent to ignoring {C, D}.
	equivalent := map[string]Ignores{
		"A": IgnoreNames("C", "D"),
		"B": {},
		"C": {},
		"D": {},
	}
	equivAssignments, err := Compile(order, equivalent)
	assert.NoError(t, err)

	assert.Equal(t, assignments["A"].IgnoreMask, equivAssignments["A"].IgnoreMask)
}

func TestCompile_GroupsIdenticalIncoming(t *testing.T) {

	// 21 classes: 5 pairs sharing an identical ignores list, the Shared
	// class they ignore, and 10 solo classes. Nobody ignores the pair
	// members, so each pair has an identical (empty) incoming signature and
	// its members share a category; the 21 classes use at most 15 distinct
	// categories.
	order := make([]string, 0, 20)
	ignores := map[string]Ignores{}
	for i := 0; i < 5; i++ {
		a := namedClass(i, "a")
		b := namedClass(i, "b")
		order = append(order, a, b)
		ignores[a] = IgnoreNames("Shared")
		ignores[b] = IgnoreNames("Shared")
	}
	order = append(order, "Shared")
	ignores["Shared"] = Ignores{}
	for i := 10; i < 20; i++ {
		name := namedClass(i, "solo")
		order = append(order, name)
		ignores[name] = Ignores{}
	}
	assert.Len(t, order, 21)

	assignments, err := Compile(order, ignores)
	assert.NoError(t, err)

	for i := 0; i < 5; i++ {
		a := namedClass(i, "a")
		b := namedClass(i, "b")
		assert.Equal(t, assignments[a].Category, assignments[b].Category)
	}
}

func TestCompile_CategoryOverflow(t *testing.T) {

	order := make([]string, 0, 20)
	ignores := map[string]Ignores{}
	for i := 0; i < 20; i++ {
		name := namedClass(i, "c")
		order = append(order, name)
		// Every class ignores a distinct, unique set so every class gets
		// its own incoming signature - forcing 20 distinct categories.
		ignores[name] = IgnoreNames(namedClass((i+1)%20, "c"))
	}

	_, err := Compile(order, ignores)
	assert.Error(t, err)
	var overflow *CategoryOverflowError
	assert.ErrorAs(t, err, &overflow)
}

func namedClass(i int, prefix string) string {

	const letters = "0123456789ABCDEFGHIJ"
	return prefix + string(letters[i%len(letters)])
}
