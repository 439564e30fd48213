package ast

// DataLocation describes where a value of a reference type lives.
// Example: "S storage s" declares a local whose data location is Storage.
type DataLocation int

const (
	// DefaultLocation is used for value types, which carry no data location
	DefaultLocation DataLocation = iota
	Storage
	Memory
	Calldata
)

func (l DataLocation) String() string {
	switch l {
	case Storage:
		return "storage"
	case Memory:
		return "memory"
	case Calldata:
		return "calldata"
	default:
		return "default"
	}
}

// TypeDescription is the resolved type of a declaration, reduced to what the
// control-flow analysis needs: the type name and its data location.
type TypeDescription struct {
	Name     string
	Location DataLocation
}

// DataStoredIn reports whether values of this type live in the given location
func (t *TypeDescription) DataStoredIn(loc DataLocation) bool {
	return t != nil && t.Location == loc
}
