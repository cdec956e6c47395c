package member_lookup

import (
	"go/ast"
	"reflect"
	"slices"

	"github.com/vphpersson/type_narrowing/pkg/types/capability"

	motmedelJsonTag "github.com/Motmedel/utils_go/pkg/json/types/tag"
	motmedelReflect "github.com/Motmedel/utils_go/pkg/reflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExportedSpelling returns the member name spelled as an exported Go
// identifier. Members visible through reflection are necessarily exported, so
// a query for "turnSteeringWheel" must be able to match "TurnSteeringWheel".
func ExportedSpelling(memberName string) string {
	// cases.Caser is stateful and must not be shared across goroutines.
	return cases.Title(language.Und, cases.NoLower).String(memberName)
}

func candidateNames(memberName string) []string {
	names := []string{memberName}
	if exported := ExportedSpelling(memberName); exported != memberName {
		names = append(names, exported)
	}
	return names
}

func methodByNames(reflectValue reflect.Value, names []string) (reflect.Value, string, bool) {
	for _, name := range names {
		if method := reflectValue.MethodByName(name); method.IsValid() {
			return method, name, true
		}
	}
	return reflect.Value{}, "", false
}

// IsNilValue reports whether value is nil or bottoms out in a nil pointer or
// interface. Such a value has no members at all, as opposed to a shape that
// lacks the probed one.
func IsNilValue(value any) bool {
	reflectValue := reflect.ValueOf(value)
	for {
		if !reflectValue.IsValid() {
			return true
		}

		kind := reflectValue.Kind()
		if kind != reflect.Pointer && kind != reflect.Interface {
			return false
		}
		if reflectValue.IsNil() {
			return true
		}
		reflectValue = reflectValue.Elem()
	}
}

// fieldByJsonTagName finds the field whose json tag names the member,
// walking embedded structs the same way collectFieldMembers does so that a
// member listed by Members is also found by Lookup. Tag names are matched
// verbatim, like map keys.
func fieldByJsonTagName(structValue reflect.Value, memberName string) (reflect.Value, bool) {
	structType := structValue.Type()

	var embeddedFieldIndexes []int
	for i := range structType.NumField() {
		field := structType.Field(i)

		if len(field.Name) == 0 || !ast.IsExported(field.Name) {
			continue
		}

		if field.Anonymous && motmedelReflect.RemoveIndirection(field.Type).Kind() == reflect.Struct {
			embeddedFieldIndexes = append(embeddedFieldIndexes, i)
			continue
		}

		jsonTag := motmedelJsonTag.New(field.Tag.Get("json"))
		if jsonTag == nil || jsonTag.Skip || jsonTag.Name == "" {
			continue
		}
		if jsonTag.Name == memberName {
			return structValue.Field(i), true
		}
	}

	for _, i := range embeddedFieldIndexes {
		embeddedValue := structValue.Field(i)
		for embeddedValue.Kind() == reflect.Pointer {
			if embeddedValue.IsNil() {
				embeddedValue = reflect.Value{}
				break
			}
			embeddedValue = embeddedValue.Elem()
		}
		if !embeddedValue.IsValid() || embeddedValue.Kind() != reflect.Struct {
			continue
		}

		if fieldValue, ok := fieldByJsonTagName(embeddedValue, memberName); ok {
			return fieldValue, true
		}
	}

	return reflect.Value{}, false
}

// Lookup finds the named member on value: a method (probed before removing
// indirection, since pointer-receiver methods belong to the pointer's method
// set only), an exported struct field, or a map entry for maps with
// string-kind keys. Map keys are matched verbatim; struct members also match
// the exported spelling of the name and the field's json tag name, so every
// member Members enumerates is reachable. A nil value or nil pointer chain
// has no members.
func Lookup(value any, memberName string) (reflect.Value, capability.Capability, bool) {
	reflectValue := reflect.ValueOf(value)
	names := candidateNames(memberName)

	for {
		if !reflectValue.IsValid() {
			return reflect.Value{}, capability.Capability{}, false
		}

		kind := reflectValue.Kind()
		if (kind == reflect.Pointer || kind == reflect.Interface) && reflectValue.IsNil() {
			return reflect.Value{}, capability.Capability{}, false
		}

		if method, name, ok := methodByNames(reflectValue, names); ok {
			return method, capability.Capability{Member: name, Kind: capability.KindMethod}, true
		}

		if kind != reflect.Pointer && kind != reflect.Interface {
			break
		}
		reflectValue = reflectValue.Elem()
	}

	switch reflectValue.Kind() {
	case reflect.Struct:
		for _, name := range names {
			// FieldByName sees unexported fields too; those are not part of a
			// value's observable member set.
			if !ast.IsExported(name) {
				continue
			}
			if field := reflectValue.FieldByName(name); field.IsValid() {
				return field, capability.Capability{Member: name, Kind: capability.KindField}, true
			}
		}

		if field, ok := fieldByJsonTagName(reflectValue, memberName); ok {
			return field, capability.Capability{Member: memberName, Kind: capability.KindField}, true
		}
	case reflect.Map:
		mapType := reflectValue.Type()
		if mapType.Key().Kind() != reflect.String {
			break
		}
		key := reflect.ValueOf(memberName).Convert(mapType.Key())
		if entry := reflectValue.MapIndex(key); entry.IsValid() {
			return entry, capability.Capability{Member: memberName, Kind: capability.KindMapKey}, true
		}
	default:
	}

	return reflect.Value{}, capability.Capability{}, false
}

func collectFieldMembers(
	structType reflect.Type,
	members *[]capability.Capability,
	seen map[string]struct{},
) {
	structType = motmedelReflect.RemoveIndirection(structType)
	if structType.Kind() != reflect.Struct {
		return
	}

	// Iterate over normal fields first, and embedded structs last. This ensures
	// that outer fields will take precedence over inner fields in the case of
	// overlapping fields, which is consistent with json.Marshal().
	var embeddedFields []reflect.StructField
	for i := range structType.NumField() {
		field := structType.Field(i)

		if len(field.Name) == 0 || !ast.IsExported(field.Name) {
			continue
		}

		if field.Anonymous && motmedelReflect.RemoveIndirection(field.Type).Kind() == reflect.Struct {
			embeddedFields = append(embeddedFields, field)
			continue
		}

		memberName := field.Name

		// Map-shaped renditions of the same value spell members by their JSON
		// names, so the enumeration follows the json tag when one is set.
		jsonTag := motmedelJsonTag.New(field.Tag.Get("json"))
		if jsonTag != nil {
			if jsonTag.Skip {
				continue
			}
			if name := jsonTag.Name; name != "" {
				memberName = name
			}
		}

		if _, exists := seen[memberName]; exists {
			continue
		}
		seen[memberName] = struct{}{}

		*members = append(*members, capability.Capability{Member: memberName, Kind: capability.KindField})
	}

	for _, field := range embeddedFields {
		collectFieldMembers(field.Type, members, seen)
	}
}

// Members enumerates the capabilities value exposes: methods first, then
// struct fields (outer fields shadowing embedded ones) or map keys in sorted
// order. A nil value exposes nothing.
func Members(value any) []capability.Capability {
	reflectValue := reflect.ValueOf(value)

	var members []capability.Capability
	seen := map[string]struct{}{}

	for {
		if !reflectValue.IsValid() {
			return members
		}

		kind := reflectValue.Kind()
		if (kind == reflect.Pointer || kind == reflect.Interface) && reflectValue.IsNil() {
			return members
		}

		reflectType := reflectValue.Type()
		for i := range reflectType.NumMethod() {
			method := reflectType.Method(i)
			if _, exists := seen[method.Name]; exists {
				continue
			}
			seen[method.Name] = struct{}{}
			members = append(members, capability.Capability{Member: method.Name, Kind: capability.KindMethod})
		}

		if kind != reflect.Pointer && kind != reflect.Interface {
			break
		}
		reflectValue = reflectValue.Elem()
	}

	switch reflectValue.Kind() {
	case reflect.Struct:
		collectFieldMembers(reflectValue.Type(), &members, seen)
	case reflect.Map:
		if reflectValue.Type().Key().Kind() != reflect.String {
			break
		}

		keys := make([]string, 0, reflectValue.Len())
		iterator := reflectValue.MapRange()
		for iterator.Next() {
			keys = append(keys, iterator.Key().String())
		}
		slices.Sort(keys)

		for _, key := range keys {
			if _, exists := seen[key]; exists {
				continue
			}
			seen[key] = struct{}{}
			members = append(members, capability.Capability{Member: key, Kind: capability.KindMapKey})
		}
	default:
	}

	return members
}
