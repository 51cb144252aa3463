// Package policy implements the generic authorization engine. A resource
// binds a fixed set of predicates (show/create/update/destroy) plus a scope
// function; the engine evaluates the admin override before any predicate, so
// resource rules never special-case admin.
package policy

import (
	"github.com/pressroom/content-api/internal/core/domain"
)

// Action names an operation checked against a resource record.
type Action string

const (
	ActionShow    Action = "show"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDestroy Action = "destroy"
)

// Predicate decides whether actor may perform an action on record.
type Predicate[R any] func(actor domain.Principal, record R) bool

// Rules is the complete rule set for one resource. R is the record type, Q
// the collection query the scope function narrows.
type Rules[R any, Q any] struct {
	Show    Predicate[R]
	Create  Predicate[R]
	Update  Predicate[R]
	Destroy Predicate[R]
	Scope   func(actor domain.Principal, query Q) Q
}

// Engine evaluates a rule set. Engines are stateless and safe for concurrent
// use.
type Engine[R any, Q any] struct {
	rules Rules[R, Q]
}

// NewEngine builds an engine for rules. A rule set without a scope function
// is a programming error: every collection read must be scoped.
func NewEngine[R any, Q any](rules Rules[R, Q]) *Engine[R, Q] {
	if rules.Scope == nil {
		panic("policy: rule set must define a scope function")
	}
	return &Engine[R, Q]{rules: rules}
}

// Authorize returns nil when actor may perform action on record, and
// domain.ErrForbidden otherwise. Admin allows unconditionally; a missing
// predicate denies.
func (e *Engine[R, Q]) Authorize(actor domain.Principal, action Action, record R) error {
	if actor.IsAdmin() {
		return nil
	}

	var rule Predicate[R]
	switch action {
	case ActionShow:
		rule = e.rules.Show
	case ActionCreate:
		rule = e.rules.Create
	case ActionUpdate:
		rule = e.rules.Update
	case ActionDestroy:
		rule = e.rules.Destroy
	}

	if rule == nil || !rule(actor, record) {
		return domain.ErrForbidden
	}
	return nil
}

// Scope narrows a collection query to what actor may see. Admin sees the
// collection unfiltered.
func (e *Engine[R, Q]) Scope(actor domain.Principal, query Q) Q {
	if actor.IsAdmin() {
		return query
	}
	return e.rules.Scope(actor, query)
}
