package member_lookup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vphpersson/type_narrowing/pkg/types/capability"
)

type truck struct{}

func (*truck) DumpLoad() {}

type Engine struct {
	Power  int
	Plate  string
	hidden int
}

type trailer struct {
	Engine
	Plate   string
	MaxLoad int    `json:"maxLoad"`
	Skip    string `json:"-"`
}

func TestExportedSpelling(t *testing.T) {
	tests := []struct {
		memberName string
		want       string
	}{
		{memberName: "turnSteeringWheel", want: "TurnSteeringWheel"},
		{memberName: "move", want: "Move"},
		{memberName: "Move", want: "Move"},
		{memberName: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.memberName, func(t *testing.T) {
			if got := ExportedSpelling(tt.memberName); got != tt.want {
				t.Fatalf("ExportedSpelling(%q) = %q, want %q", tt.memberName, got, tt.want)
			}
		})
	}
}

func TestLookupPointerReceiverMethodSet(t *testing.T) {
	// A pointer-receiver method belongs to the pointer's method set only.
	_, _, ok := Lookup(truck{}, "dumpLoad")
	assert.False(t, ok)

	_, memberCapability, ok := Lookup(&truck{}, "dumpLoad")
	require.True(t, ok)
	assert.Equal(t, capability.KindMethod, memberCapability.Kind)
	assert.Equal(t, "DumpLoad", memberCapability.Member)
}

func TestLookupNilPointerChain(t *testing.T) {
	var nilTruck *truck
	_, _, ok := Lookup(nilTruck, "dumpLoad")
	assert.False(t, ok)

	pointerToNil := &nilTruck
	_, _, ok = Lookup(pointerToNil, "dumpLoad")
	assert.False(t, ok)
}

func TestIsNilValue(t *testing.T) {
	var nilTruck *truck

	assert.True(t, IsNilValue(nil))
	assert.True(t, IsNilValue(nilTruck))
	assert.True(t, IsNilValue(&nilTruck))

	assert.False(t, IsNilValue(truck{}))
	assert.False(t, IsNilValue(&truck{}))
	assert.False(t, IsNilValue(0))
	assert.False(t, IsNilValue(map[string]any(nil)))
}

func TestLookupThroughPointerToStruct(t *testing.T) {
	memberValue, memberCapability, ok := Lookup(&Engine{Power: 120}, "power")
	require.True(t, ok)
	assert.Equal(t, capability.KindField, memberCapability.Kind)
	assert.Equal(t, 120, int(memberValue.Int()))
}

func TestLookupUnexportedField(t *testing.T) {
	_, _, ok := Lookup(Engine{hidden: 1}, "hidden")
	assert.False(t, ok)
}

type Schedule struct {
	Delayed bool `json:"is_delayed"`
}

type line struct {
	*Schedule
	Name string `json:"line_name"`
}

func TestLookupJsonTagName(t *testing.T) {
	// A snake_case tag name has no exported spelling that names the field;
	// the tag itself must match, so that every member Members lists is also
	// found by Lookup.
	memberValue, memberCapability, ok := Lookup(Schedule{Delayed: true}, "is_delayed")
	require.True(t, ok)
	assert.Equal(t, capability.KindField, memberCapability.Kind)
	assert.Equal(t, "is_delayed", memberCapability.Member)
	assert.True(t, memberValue.Bool())

	_, _, ok = Lookup(Schedule{}, "isDelayed")
	assert.False(t, ok)
}

func TestLookupJsonTagNameEmbedded(t *testing.T) {
	_, memberCapability, ok := Lookup(
		line{Schedule: &Schedule{Delayed: true}, Name: "41"},
		"is_delayed",
	)
	require.True(t, ok)
	assert.Equal(t, "is_delayed", memberCapability.Member)

	// The embedded pointer is nil, so its tagged member cannot be reached.
	_, _, ok = Lookup(line{Name: "41"}, "is_delayed")
	assert.False(t, ok)

	_, _, ok = Lookup(line{}, "line_name")
	assert.True(t, ok)
}

func TestMembersEmbeddedShadowing(t *testing.T) {
	// The outer Plate shadows the embedded Engine's, matching json.Marshal;
	// the json tag supplies the member spelling and "-" drops the member.
	assert.Equal(
		t,
		[]capability.Capability{
			{Member: "Plate", Kind: capability.KindField},
			{Member: "maxLoad", Kind: capability.KindField},
			{Member: "Power", Kind: capability.KindField},
		},
		Members(trailer{}),
	)
}

func TestMembersMapKeysSorted(t *testing.T) {
	assert.Equal(
		t,
		[]capability.Capability{
			{Member: "alpha", Kind: capability.KindMapKey},
			{Member: "beta", Kind: capability.KindMapKey},
			{Member: "gamma", Kind: capability.KindMapKey},
		},
		Members(map[string]int{"gamma": 3, "alpha": 1, "beta": 2}),
	)
}
