// target holds the render surfaces sprites draw into and the per-frame
// output queue handed to the renderer
package target

import (
	"sort"

	"github.com/silbinarywolf/dragonfire/internal/sprite"
)

var _ sprite.Surface = new(Target)

// Target is a named render surface. What is drawn into it stays there
// across frames until Reset is called.
type Target struct {
	name    string
	outputs [len(sprite.Kinds)]output
}

type output struct {
	primitives []sprite.Primitive
}

func (out *output) Append(p sprite.Primitive) {
	out.primitives = append(out.primitives, p)
}

func New(name string) *Target {
	return &Target{name: name}
}

func (t *Target) Name() string {
	return t.name
}

func (t *Target) Output(kind sprite.Kind) sprite.Output {
	if kind < 0 || int(kind) >= len(t.outputs) {
		return nil
	}
	return &t.outputs[kind]
}

// Primitives returns everything drawn into the target for a kind, in the
// order it was drawn
func (t *Target) Primitives(kind sprite.Kind) []sprite.Primitive {
	if kind < 0 || int(kind) >= len(t.outputs) {
		return nil
	}
	return t.outputs[kind].primitives
}

// Len is the number of draw calls across every kind
func (t *Target) Len() int {
	n := 0
	for i := range t.outputs {
		n += len(t.outputs[i].primitives)
	}
	return n
}

func (t *Target) Reset() {
	for i := range t.outputs {
		t.outputs[i].primitives = t.outputs[i].primitives[:0]
	}
}

var _ sprite.Surfaces = new(Targets)

// Targets looks up render targets by name, creating them on first use
type Targets struct {
	byName map[string]*Target
}

func NewTargets() *Targets {
	return &Targets{
		byName: make(map[string]*Target),
	}
}

func (targets *Targets) Surface(name string) sprite.Surface {
	return targets.Target(name)
}

func (targets *Targets) Target(name string) *Target {
	if t, ok := targets.byName[name]; ok {
		return t
	}
	t := New(name)
	targets.byName[name] = t
	return t
}

// Lookup returns the target called name if it has been created
func (targets *Targets) Lookup(name string) (*Target, bool) {
	t, ok := targets.byName[name]
	return t, ok
}

// Release drops a target once nothing draws into it anymore
func (targets *Targets) Release(name string) {
	delete(targets.byName, name)
}

func (targets *Targets) Len() int {
	return len(targets.byName)
}

// Outputs is the queue of everything to draw this frame. It is filled
// while rendering and cleared by the frame driver before the next frame.
type Outputs struct {
	Primitives []*sprite.Sprite
	// Debug is drawn over the top of everything else
	Debug *Target
}

func NewOutputs() *Outputs {
	return &Outputs{
		Debug: New("debug"),
	}
}

// Add queues sprites for drawing this frame
func (outputs *Outputs) Add(sprites ...*sprite.Sprite) {
	outputs.Primitives = append(outputs.Primitives, sprites...)
}

// Sorted returns the queued sprites ordered by z. Sprites with the same z
// keep the order they were queued in.
func (outputs *Outputs) Sorted() []*sprite.Sprite {
	sorted := make([]*sprite.Sprite, len(outputs.Primitives))
	copy(sorted, outputs.Primitives)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Z < sorted[j].Z
	})
	return sorted
}

func (outputs *Outputs) Reset() {
	for i := range outputs.Primitives {
		outputs.Primitives[i] = nil
	}
	outputs.Primitives = outputs.Primitives[:0]
	outputs.Debug.Reset()
}
