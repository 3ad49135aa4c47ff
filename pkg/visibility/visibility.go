// Package visibility implements the conditional show/hide rules for dependent
// field groups. The engine is a pure state transition over a RuleSet: the UI
// layer applies the returned visible set to whatever it renders; nothing here
// touches a rendering target.
package visibility

import (
	"strings"

	"go.uber.org/zap"
)

// CheckedKey is the conditional key used by checkbox triggers. A checkbox
// trigger reveals its group while checked, regardless of the stored value
// string.
const CheckedKey = "checked"

// Trigger describes one field whose value controls dependent groups. Groups
// maps a trigger value (or CheckedKey for checkbox triggers) to the identifier
// of the group it reveals. Owner names the group the trigger itself lives in,
// empty for top-level triggers; nested triggers only act while their owner is
// visible.
type Trigger struct {
	ID       string
	Checkbox bool
	Groups   map[string]string
	Owner    string
}

// RuleSet is the ordered collection of triggers for one built form. Triggers
// must be added parents before children (the builder's walk order guarantees
// this) so visibility resolves in one pass.
type RuleSet struct {
	order    []string
	triggers map[string]Trigger
}

// NewRuleSet returns an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{triggers: make(map[string]Trigger)}
}

// Add registers a trigger. Re-adding an id replaces the earlier rule, which
// matches forms being rebuilt per document type.
func (rs *RuleSet) Add(t Trigger) {
	if t.ID == "" || len(t.Groups) == 0 {
		return
	}
	if _, exists := rs.triggers[t.ID]; !exists {
		rs.order = append(rs.order, t.ID)
	}
	rs.triggers[t.ID] = t
}

// Has reports whether a trigger is known.
func (rs *RuleSet) Has(id string) bool {
	if rs == nil {
		return false
	}
	_, ok := rs.triggers[id]
	return ok
}

// Triggers returns the trigger ids in registration order.
func (rs *RuleSet) Triggers() []string {
	return append([]string(nil), rs.order...)
}

// GroupIDs returns every group id any trigger owns.
func (rs *RuleSet) GroupIDs() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, id := range rs.order {
		for _, group := range rs.triggers[id].Groups {
			if _, dup := seen[group]; dup {
				continue
			}
			seen[group] = struct{}{}
			out = append(out, group)
		}
	}
	return out
}

// State is an immutable snapshot of trigger values. The zero value means no
// trigger has been set and every dependent group is hidden.
type State struct {
	values map[string]string
}

// Value returns the recorded value for a trigger id.
func (s State) Value(triggerID string) string {
	return s.values[triggerID]
}

func (s State) with(triggerID, value string) State {
	next := make(map[string]string, len(s.values)+1)
	for k, v := range s.values {
		next[k] = v
	}
	next[triggerID] = value
	return State{values: next}
}

// Engine evaluates a RuleSet against trigger states.
type Engine struct {
	rules  *RuleSet
	logger *zap.Logger
}

// Option configures the engine.
type Option func(*Engine)

// WithLogger attaches a logger; unresolved trigger ids are reported at debug
// level. The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine builds an engine over the supplied rules.
func NewEngine(rules *RuleSet, opts ...Option) *Engine {
	e := &Engine{rules: rules, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Apply records a trigger value change and returns the new state. Referencing
// a trigger absent from the rule set is a no-op: forms are rebuilt per
// document type and stale change notifications may still arrive.
func (e *Engine) Apply(state State, triggerID, value string) State {
	if !e.rules.Has(triggerID) {
		e.logger.Debug("visibility: ignoring unresolved trigger",
			zap.String("trigger", triggerID),
			zap.String("value", value))
		return state
	}
	return state.with(triggerID, value)
}

// Visible computes the set of visible group ids for a state. A group is
// visible when its trigger's current value selects it and the trigger itself
// is live (top level, or inside a visible group). At most one group per
// trigger is ever visible; values matching no key reveal nothing. The
// computation is derived wholly from the state, so repeated calls with equal
// states agree.
func (e *Engine) Visible(state State) map[string]bool {
	visible := make(map[string]bool)
	for _, id := range e.rules.order {
		trigger := e.rules.triggers[id]
		if trigger.Owner != "" && !visible[trigger.Owner] {
			continue
		}
		key := conditionalKey(trigger, state.Value(id))
		if group, ok := trigger.Groups[key]; ok {
			visible[group] = true
		}
	}
	return visible
}

// IsVisible reports whether a single group is visible in the state.
func (e *Engine) IsVisible(state State, groupID string) bool {
	return e.Visible(state)[groupID]
}

func conditionalKey(t Trigger, value string) string {
	if !t.Checkbox {
		return value
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "on", "checked", "1":
		return CheckedKey
	default:
		return ""
	}
}
