package capability

type Kind int

const (
	KindMethod Kind = iota
	KindField
	KindMapKey
)

func (k Kind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindField:
		return "field"
	case KindMapKey:
		return "map key"
	}
	return "unknown"
}

// Capability names a member a value exposes and how the member is reached.
type Capability struct {
	Member string
	Kind   Kind
}
