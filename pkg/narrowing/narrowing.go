// Package narrowing decides whether a value of unknown shape may be treated
// as a target shape, using the presence of a single named member as the
// discriminant.
//
// The check is deliberately naive: one member name stands in for the whole
// shape, so it is necessary but not sufficient. Two structurally different
// shapes that happen to share a member name are indistinguishable, and a
// value of the wrong shape that exposes the probed member is accepted as the
// target shape, silently. Callers needing a real guarantee must check every
// member of the target shape themselves; that is out of scope here.
package narrowing

import (
	"fmt"

	"github.com/vphpersson/type_narrowing/internal/member_lookup"
	typeNarrowingErrors "github.com/vphpersson/type_narrowing/pkg/errors"
	"github.com/vphpersson/type_narrowing/pkg/types/capability"

	motmedelErrors "github.com/Motmedel/utils_go/pkg/errors"
	"github.com/Motmedel/utils_go/pkg/utils"
)

// HasMember reports whether value exposes a member with the given name.
// Presence means the member can be reached on the value (a method, an
// exported struct field, or a map entry under that key), regardless of what
// it holds: a member set to false, 0, or nil still counts as present. A nil
// value, or one reached through a nil pointer, exposes nothing.
func HasMember(value any, memberName string) bool {
	_, _, ok := member_lookup.Lookup(value, memberName)
	return ok
}

// Is reports whether value may be treated as the target shape T, using the
// one named member as the discriminant. The member name should belong to T's
// declared member set; a true result is the caller's license to treat value
// as T for the remainder of the branch. The probe is exactly HasMember; T
// records intent at the call site and is not verified against.
func Is[T any](value any, memberName string) bool {
	return HasMember(value, memberName)
}

// As is the tagged-value variant of Is: it runs the same one-member probe
// and, on success, attempts the dynamic conversion of value to T. The ok
// result can be false even when Is is true, when value's dynamic type does
// not satisfy T.
func As[T any](value any, memberName string) (T, bool) {
	var zero T

	if !HasMember(value, memberName) {
		return zero, false
	}

	converted, err := utils.Convert[T](value)
	if err != nil {
		return zero, false
	}

	return converted, true
}

// Probe is HasMember with provenance: on success it also reports how the
// member is reached on the value.
func Probe(value any, memberName string) (capability.Capability, bool) {
	_, memberCapability, ok := member_lookup.Lookup(value, memberName)
	return memberCapability, ok
}

// Member returns the named member's value: a field value, a bound method
// value, or a map entry. It is the access half of the narrowing license,
// what a caller reaches for after a true probe.
func Member(value any, memberName string) (any, error) {
	// A typed nil is as memberless as an untyped one; both report ErrNilValue
	// rather than blaming the shape.
	if member_lookup.IsNilValue(value) {
		return nil, motmedelErrors.NewWithTrace(typeNarrowingErrors.ErrNilValue)
	}

	memberValue, _, ok := member_lookup.Lookup(value, memberName)
	if !ok {
		return nil, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: %s", typeNarrowingErrors.ErrNoSuchMember, memberName),
			value,
		)
	}

	if !memberValue.CanInterface() {
		return nil, motmedelErrors.NewWithTrace(
			fmt.Errorf("%w: %s", typeNarrowingErrors.ErrNoSuchMember, memberName),
			value,
		)
	}

	return memberValue.Interface(), nil
}

// Capabilities enumerates the members value exposes. Informational only; a
// value listing the probed member is what HasMember accepts, except that
// members reached through a nil embedded pointer are enumerated from the
// type but not reachable on the value.
func Capabilities(value any) []capability.Capability {
	return member_lookup.Members(value)
}
