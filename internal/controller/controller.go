// Package controller owns the in-memory task list and keeps the
// persistent slot in sync with it.
package controller

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"

	"taskpad/internal/kv"
	"taskpad/internal/task"
)

const (
	// Slot is the fixed key holding the serialized task list.
	Slot = "tasks"

	// FadeDuration is how long appear and disappear transitions run.
	FadeDuration = 500 * time.Millisecond
)

// fade tracks one task's presence transition. value stays in [0,1];
// an out fade reaching 0 removes the task from the list.
type fade struct {
	value float64
	out   bool
}

// Controller holds the authoritative task list, the edit pointer, and
// per-task fade state. All methods must be called from a single
// goroutine (the UI event loop); only persist I/O runs in the
// background.
type Controller struct {
	store  kv.Store
	logger *log.Logger

	tasks   task.List
	editing string
	fades   map[string]*fade
}

// New creates a controller over the given store. The logger is the
// diagnostic channel for storage and parse failures.
func New(store kv.Store, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.Default()
	}
	return &Controller{
		store:  store,
		logger: logger,
		fades:  make(map[string]*fade),
	}
}

// Load reads the persisted slot once at startup. An absent slot leaves
// the list empty. A malformed slot also leaves the list empty but the
// error is logged and returned so the caller can surface it; it is
// never fatal and never retried.
func (c *Controller) Load() error {
	c.tasks = nil
	c.editing = ""
	c.fades = make(map[string]*fade)

	data, err := c.store.Get(Slot)
	if errors.Is(err, kv.ErrNotFound) {
		return nil
	}
	if err != nil {
		c.logger.Error("load tasks", "err", err)
		return err
	}

	list, err := task.Decode(data)
	if err != nil {
		c.logger.Error("stored task list is malformed, starting empty", "err", err)
		return err
	}

	c.tasks = list
	return nil
}

// Tasks returns the current list. Callers must treat it as read-only.
func (c *Controller) Tasks() task.List {
	return c.tasks
}

// Editing returns the id of the task being edited, or "".
func (c *Controller) Editing() string {
	return c.editing
}

// Presence returns the task's animation value in [0,1]. Tasks with no
// active transition are fully present.
func (c *Controller) Presence(id string) float64 {
	if f, ok := c.fades[id]; ok {
		return f.value
	}
	return 1
}

// Animating reports whether any fade is still in flight.
func (c *Controller) Animating() bool {
	return len(c.fades) > 0
}

// Add appends a task with the given text and starts its fade-in.
// Blank text (empty or whitespace-only) is a no-op. Returns the new
// task's id and the persist handle.
func (c *Controller) Add(text string) (string, *Pending) {
	if task.IsBlank(text) {
		return "", nil
	}

	t := task.New(text)
	c.tasks = append(c.tasks, t)
	c.fades[t.ID] = &fade{value: 0}
	return t.ID, c.persist()
}

// Delete starts the fade-out for the task with the given id. The task
// stays in the list until the fade completes; removal and the persist
// it triggers happen in Advance. Unknown ids are a no-op.
func (c *Controller) Delete(id string) bool {
	if c.tasks.Get(id) == nil {
		return false
	}
	if f, ok := c.fades[id]; ok {
		// Mid fade-in: reverse from the current value.
		f.out = true
		return true
	}
	c.fades[id] = &fade{value: 1, out: true}
	return true
}

// Toggle flips the completed flag on the task with the given id and
// persists. Unknown ids are a no-op and return nil.
func (c *Controller) Toggle(id string) *Pending {
	if !c.tasks.Toggle(id) {
		return nil
	}
	return c.persist()
}

// SetText replaces the task's text unconditionally (empty allowed) and
// persists. Does not exit edit mode. Unknown ids are a no-op.
func (c *Controller) SetText(id, text string) *Pending {
	if !c.tasks.SetText(id, text) {
		return nil
	}
	return c.persist()
}

// BeginEdit points the edit pointer at the given task. Returns false
// for unknown ids. Never persists.
func (c *Controller) BeginEdit(id string) bool {
	if c.tasks.Get(id) == nil {
		return false
	}
	c.editing = id
	return true
}

// EndEdit clears the edit pointer. Never persists.
func (c *Controller) EndEdit() {
	c.editing = ""
}

// Advance moves every fade forward by dt. Fade-ins reaching 1 are
// done; fade-outs reaching 0 remove their task from the list,
// preserving the order of the rest, and trigger a single persist for
// all removals in this step. Returns the persist handle (nil if
// nothing was removed) and whether any fade is still active.
func (c *Controller) Advance(dt time.Duration) (*Pending, bool) {
	if len(c.fades) == 0 {
		return nil, false
	}

	step := float64(dt) / float64(FadeDuration)
	removed := false

	for id, f := range c.fades {
		if f.out {
			f.value -= step
			if f.value > 0 {
				continue
			}
			delete(c.fades, id)
			c.tasks.Remove(id)
			if c.editing == id {
				c.editing = ""
			}
			removed = true
			continue
		}
		f.value += step
		if f.value >= 1 {
			delete(c.fades, id)
		}
	}

	var p *Pending
	if removed {
		p = c.persist()
	}
	return p, len(c.fades) > 0
}

// Persist forces a snapshot write outside the automatic triggers,
// e.g. before shutdown.
func (c *Controller) Persist() *Pending {
	return c.persist()
}

// persist serializes the current list synchronously and writes it to
// the slot in the background. The snapshot is taken at call time, so
// overlapping writes are last-write-wins over full snapshots. Write
// failures are logged, never retried, never surfaced to the user.
func (c *Controller) persist() *Pending {
	p := &Pending{done: make(chan error, 1)}

	data, err := task.Encode(c.tasks)
	if err != nil {
		c.logger.Error("encode tasks", "err", err)
		p.done <- err
		return p
	}

	go func() {
		err := c.store.Put(Slot, data)
		if err != nil {
			c.logger.Error("persist tasks", "err", err)
		}
		p.done <- err
	}()
	return p
}

// Pending tracks one in-flight persist. Production code may drop the
// handle; tests await it.
type Pending struct {
	done chan error
	err  error
	read bool
}

// Wait blocks until the write finishes and returns its error. Safe to
// call more than once and on a nil handle.
func (p *Pending) Wait() error {
	if p == nil {
		return nil
	}
	if !p.read {
		p.err = <-p.done
		p.read = true
	}
	return p.err
}
