// Package ccversion lets an external Trace-implementation generator (or a
// build script) assert it targets a compatible version of this library's
// Trace contract before relying on cc.Tracer/cc.Visitor's shape. There is
// no such generator in this repository — deriving Trace implementations
// is an external collaborator per spec.md §1's non-goals for the core
// library — but the contract it would target still needs a stable
// version to check against.
package ccversion

import "github.com/Masterminds/semver/v3"

// TraceABI is the version of the Trace contract (cc.Tracer, cc.Visitor)
// this build exposes. It changes only when IsTypeTracked's or Trace's
// semantics change in a way that would break a generated implementation.
var TraceABI = semver.MustParse("1.0.0")

// CheckCompatible reports whether TraceABI satisfies constraint, a
// standard semver constraint string such as ">=1.0.0, <2.0.0".
func CheckCompatible(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, err
	}
	return c.Check(TraceABI), nil
}
