package control

import (
	"fmt"
	"sort"

	"github.com/opd-ai/go-spacewar/pkg/config"
	"github.com/opd-ai/go-spacewar/pkg/validation"
)

// Binding maps a key to an action on one helm.
type Binding struct {
	Helm   int
	Action Action
}

// Bindings is the shared keyboard layout. Several players may use one
// keyboard as long as no key is bound twice.
type Bindings struct {
	keys map[string]Binding
}

// NewBindings creates an empty layout.
func NewBindings() *Bindings {
	return &Bindings{keys: make(map[string]Binding)}
}

// Bind assigns key to action on helm.
func (b *Bindings) Bind(key string, helm int, action Action) error {
	name, ok := validation.CanonicalKey(key)
	if !ok {
		return fmt.Errorf("unknown key %q", key)
	}
	if prev, taken := b.keys[name]; taken {
		return fmt.Errorf("key %q already bound to %s on helm %d", name, prev.Action, prev.Helm)
	}
	b.keys[name] = Binding{Helm: helm, Action: action}
	return nil
}

// BindControls assigns every control in c to helm.
func (b *Bindings) BindControls(helm int, c config.ControlsConfig) error {
	for i, key := range c.Bindings() {
		if err := b.Bind(key, helm, Actions[i]); err != nil {
			return err
		}
	}
	return nil
}

// Lookup returns the binding for key, if any.
func (b *Bindings) Lookup(key string) (Binding, bool) {
	name, ok := validation.CanonicalKey(key)
	if !ok {
		return Binding{}, false
	}
	binding, ok := b.keys[name]
	return binding, ok
}

// Keys returns every bound key name, sorted.
func (b *Bindings) Keys() []string {
	keys := make([]string, 0, len(b.keys))
	for k := range b.keys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of bound keys.
func (b *Bindings) Len() int {
	return len(b.keys)
}
