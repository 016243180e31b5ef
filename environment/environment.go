// Package environment is the evaluator-facing surface over the shared
// name→Object store defined in object.Environment. Lodestone runs with
// exactly one of these per program: the driver creates it empty, the
// prelude and user program populate it, and every closure captures a
// reference to it (see object.Function.Env).
package environment

import "github.com/akashmaji946/lodestone/object"

// Environment is the evaluator's variable-binding store. It is the same
// type compound values use for their slot tables — Lodestone makes no
// structural distinction between "a function's local bindings" and "an
// object's attributes".
type Environment = object.Environment

// New returns a fresh, empty Environment.
func New() *Environment {
	return object.NewEnvironment()
}
