// Package repository provides the option-based query description shared
// by the persistence stores.
package repository

import "fmt"

// Option applies a modification to a Query.
type Option func(Query) Query

// Query holds conditions, ordering, and a limit for store lookups.
type Query struct {
	conditions []Condition
	orders     []Order
	limit      int
}

// Build creates a Query from a set of options.
func Build(options ...Option) Query {
	q := Query{}
	for _, opt := range options {
		q = opt(q)
	}
	return q
}

// Conditions returns the query conditions.
func (q Query) Conditions() []Condition {
	result := make([]Condition, len(q.conditions))
	copy(result, q.conditions)
	return result
}

// Orders returns the query ordering specifications.
func (q Query) Orders() []Order {
	result := make([]Order, len(q.orders))
	copy(result, q.orders)
	return result
}

// LimitValue returns the limit (0 means no limit).
func (q Query) LimitValue() int {
	return q.limit
}

// Operator is the comparison a Condition applies.
type Operator int

// Operator values.
const (
	OpEqual Operator = iota
	OpIn
	OpBetween
	OpNotEmpty
)

// Condition represents a single query condition.
type Condition struct {
	field string
	op    Operator
	value any
	upper any
}

// Field returns the condition field name.
func (c Condition) Field() string { return c.field }

// Operator returns the comparison applied.
func (c Condition) Operator() Operator { return c.op }

// Value returns the condition value, or the lower bound for OpBetween.
func (c Condition) Value() any { return c.value }

// Upper returns the upper bound for OpBetween.
func (c Condition) Upper() any { return c.upper }

// String returns a readable representation.
func (c Condition) String() string {
	switch c.op {
	case OpIn:
		return fmt.Sprintf("%s IN %v", c.field, c.value)
	case OpBetween:
		return fmt.Sprintf("%s BETWEEN %v AND %v", c.field, c.value, c.upper)
	case OpNotEmpty:
		return fmt.Sprintf("%s NOT EMPTY", c.field)
	default:
		return fmt.Sprintf("%s = %v", c.field, c.value)
	}
}

// Order represents a sort specification.
type Order struct {
	field     string
	ascending bool
}

// Field returns the order field name.
func (o Order) Field() string { return o.field }

// Ascending returns true for ASC, false for DESC.
func (o Order) Ascending() bool { return o.ascending }

// WithCondition adds a field = value equality condition.
// Domain packages use this to define their own typed options.
func WithCondition(field string, value any) Option {
	return withCondition(Condition{field: field, op: OpEqual, value: value})
}

// WithConditionIn adds a field IN (values) condition.
func WithConditionIn(field string, values any) Option {
	return withCondition(Condition{field: field, op: OpIn, value: values})
}

// WithConditionBetween adds an inclusive lower <= field <= upper condition.
func WithConditionBetween(field string, lower, upper any) Option {
	return withCondition(Condition{field: field, op: OpBetween, value: lower, upper: upper})
}

// WithConditionNotEmpty keeps rows whose field is neither NULL nor "".
func WithConditionNotEmpty(field string) Option {
	return withCondition(Condition{field: field, op: OpNotEmpty})
}

func withCondition(c Condition) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, c)
		return q
	}
}

// WithLimit sets the maximum number of results.
func WithLimit(n int) Option {
	return func(q Query) Query {
		q.limit = n
		return q
	}
}

// WithOrderAsc adds ascending ordering on a field.
func WithOrderAsc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field, ascending: true})
		return q
	}
}

// WithOrderDesc adds descending ordering on a field.
func WithOrderDesc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field, ascending: false})
		return q
	}
}
