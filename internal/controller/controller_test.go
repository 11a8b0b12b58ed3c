package controller

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/whohasphone/internal/people"
)

func newTestController(t *testing.T) (*Controller, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(people.NewState(), logger), &buf
}

func addPerson(c *Controller, p people.Person) {
	c.OpenDialog()
	c.SetName(p.Name)
	c.SetAge(p.Age)
	c.SetHasPhone(p.HasPhone)
	c.Submit()
}

func TestSubmitAppendsDraftAndResets(t *testing.T) {
	c, logs := newTestController(t)

	c.OpenDialog()
	require.True(t, c.DialogOpen())
	require.Equal(t, people.Default(), *c.Draft())

	c.SetName("Alice")
	c.SetAge(30)
	c.SetHasPhone(true)
	require.True(t, c.Submit())

	require.Equal(t, []people.Person{{Name: "Alice", Age: 30, HasPhone: true}}, c.People())
	require.Equal(t, people.Person{Name: "New Person", Age: 13, HasPhone: false}, *c.Draft())
	require.False(t, c.DialogOpen())
	require.Contains(t, logs.String(), "person added")
}

func TestSubmitDoesNotAliasDraft(t *testing.T) {
	c, _ := newTestController(t)

	addPerson(c, people.Person{Name: "Alice", Age: 30})
	c.OpenDialog()
	c.SetName("changed")
	require.Equal(t, "Alice", c.People()[0].Name)
}

func TestSubmitWhileClosedIsNoop(t *testing.T) {
	c, _ := newTestController(t)

	require.False(t, c.Submit())
	require.Empty(t, c.People())
}

func TestNAddsKeepOrder(t *testing.T) {
	c, _ := newTestController(t)

	names := []string{"a", "b", "c", "d", "e", "f"}
	for i, n := range names {
		addPerson(c, people.Person{Name: n, Age: i})
	}
	got := c.People()
	require.Len(t, got, len(names))
	for i, n := range names {
		require.Equal(t, n, got[i].Name)
	}
}

func TestCancelLeavesPeopleUntouched(t *testing.T) {
	c, _ := newTestController(t)
	addPerson(c, people.Person{Name: "Keep", Age: 1})

	c.OpenDialog()
	c.SetName("Discard")
	c.SetAge(77)
	c.ToggleHasPhone()
	c.Cancel()

	require.Equal(t, []people.Person{{Name: "Keep", Age: 1}}, c.People())
	require.Equal(t, people.Default(), *c.Draft())
	require.False(t, c.DialogOpen())
}

func TestDeleteRemovesLowestDuplicate(t *testing.T) {
	c, _ := newTestController(t)
	dup := people.Person{Name: "Twin", Age: 20}
	addPerson(c, people.Person{Name: "First", Age: 1})
	addPerson(c, dup)
	addPerson(c, people.Person{Name: "Middle", Age: 2})
	addPerson(c, dup)

	require.True(t, c.Delete(dup))
	require.Equal(t, []people.Person{
		{Name: "First", Age: 1},
		{Name: "Middle", Age: 2},
		dup,
	}, c.People())
}

func TestDeleteMissingLogsAndNoops(t *testing.T) {
	c, logs := newTestController(t)
	addPerson(c, people.Person{Name: "Only", Age: 5})

	require.False(t, c.Delete(people.Person{Name: "Ghost", Age: 5}))
	require.Len(t, c.People(), 1)
	require.Contains(t, logs.String(), "delete target not found")
}

func TestDeleteWorksWhileDialogOpen(t *testing.T) {
	c, _ := newTestController(t)
	addPerson(c, people.Person{Name: "A", Age: 5})

	c.OpenDialog()
	c.SetName("draft")
	require.True(t, c.Delete(people.Person{Name: "A", Age: 5}))
	require.Empty(t, c.People())
	require.True(t, c.DialogOpen())
	require.Equal(t, "draft", c.Draft().Name)
}

func TestDeleteAtOutOfRange(t *testing.T) {
	c, logs := newTestController(t)

	require.False(t, c.DeleteAt(0))
	require.Contains(t, logs.String(), "delete target not found")
}

func TestAgeSelector(t *testing.T) {
	c, _ := newTestController(t)
	c.OpenDialog()

	c.SetAge(150)
	require.Equal(t, 99, c.Draft().Age)
	c.SetAge(-3)
	require.Equal(t, 0, c.Draft().Age)

	c.StepAge(-1)
	require.Equal(t, 99, c.Draft().Age)
	c.StepAge(1)
	require.Equal(t, 0, c.Draft().Age)
	c.StepAge(10)
	require.Equal(t, 10, c.Draft().Age)
	c.StepAge(-25)
	require.Equal(t, 85, c.Draft().Age)
}

func TestNewWithNilState(t *testing.T) {
	c := New(nil, nil)
	require.NotNil(t, c.State())
	require.Empty(t, c.People())
}
