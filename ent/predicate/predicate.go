// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentConfig is the predicate function for agentconfig builders.
type AgentConfig func(*sql.Selector)

// AgentEvent is the predicate function for agentevent builders.
type AgentEvent func(*sql.Selector)

// ServiceConnection is the predicate function for serviceconnection builders.
type ServiceConnection func(*sql.Selector)
