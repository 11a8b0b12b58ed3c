// Package controller turns user actions into mutations of the application
// state. It runs on the UI goroutine only and does no I/O.
package controller

import (
	"log/slog"

	"github.com/jask/whohasphone/internal/people"
)

// Controller drives the add-dialog workflow and deletions over a State it
// does not own.
type Controller struct {
	state *people.State
	log   *slog.Logger
}

func New(state *people.State, logger *slog.Logger) *Controller {
	if state == nil {
		state = people.NewState()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{state: state, log: logger}
}

// State returns the aggregate the controller mutates.
func (c *Controller) State() *people.State { return c.state }

func (c *Controller) DialogOpen() bool { return c.state.DialogOpen }

// People returns a copy of the committed records for rendering.
func (c *Controller) People() []people.Person { return c.state.Snapshot() }

// Draft exposes the edit buffer of the add dialog.
func (c *Controller) Draft() *people.Person { return &c.state.Draft }

// OpenDialog starts the add workflow. The draft is already at defaults
// because every close resets it.
func (c *Controller) OpenDialog() {
	c.state.DialogOpen = true
}

func (c *Controller) SetName(name string) { c.state.Draft.Name = name }

// SetAge stores n clamped to the selector range.
func (c *Controller) SetAge(n int) { c.state.Draft.Age = people.ClampAge(n) }

// StepAge moves the age selector by delta, wrapping around 0..99.
func (c *Controller) StepAge(delta int) {
	span := people.MaxAge - people.MinAge
	next := (people.ClampAge(c.state.Draft.Age)-people.MinAge+delta)%span + span
	c.state.Draft.Age = people.MinAge + next%span
}

func (c *Controller) SetHasPhone(v bool) { c.state.Draft.HasPhone = v }

func (c *Controller) ToggleHasPhone() { c.state.Draft.HasPhone = !c.state.Draft.HasPhone }

// Submit commits a copy of the draft and closes the dialog. It reports
// whether a record was added.
func (c *Controller) Submit() bool {
	if !c.state.DialogOpen {
		return false
	}
	added := c.state.Draft
	c.state.Add(added)
	c.state.Reset()
	c.log.Info("person added", "name", added.Label(), "age", added.Age, "has_phone", added.HasPhone, "count", len(c.state.People))
	return true
}

// Cancel closes the dialog without touching the committed records.
func (c *Controller) Cancel() {
	c.state.Reset()
}

// Delete removes the first record structurally equal to snapshot. A miss
// is logged and otherwise ignored.
func (c *Controller) Delete(snapshot people.Person) bool {
	idx, ok := c.state.IndexOf(snapshot)
	if !ok {
		c.log.Warn("delete target not found", "name", snapshot.Label(), "age", snapshot.Age, "has_phone", snapshot.HasPhone)
		return false
	}
	return c.DeleteAt(idx)
}

// DeleteAt removes the record at i; out of range is logged and ignored.
func (c *Controller) DeleteAt(i int) bool {
	removed, err := c.state.RemoveAt(i)
	if err != nil {
		c.log.Warn("delete target not found", "index", i, "error", err)
		return false
	}
	c.log.Info("person removed", "name", removed.Label(), "index", i, "count", len(c.state.People))
	return true
}
