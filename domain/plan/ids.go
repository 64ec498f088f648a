package plan

// Planning entity identifiers. These carry whatever key text the input
// files use (typically "product_1", "machine_2", "week_29"); the loaders
// never parse or normalize them.
type (
	ProductID string
	MachineID string
	WeekID    string
)

// String conversions
func (id ProductID) String() string { return string(id) }
func (id MachineID) String() string { return string(id) }
func (id WeekID) String() string    { return string(id) }
