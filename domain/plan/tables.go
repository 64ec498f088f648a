package plan

import (
	"sort"
)

// DemandTable maps product → week → demanded quantity.
type DemandTable map[ProductID]map[WeekID]float64

// Set records a demand quantity. Later writes for the same product and
// week overwrite earlier ones, so file order decides duplicates.
func (t DemandTable) Set(product ProductID, week WeekID, qty float64) {
	inner, ok := t[product]
	if !ok {
		inner = make(map[WeekID]float64)
		t[product] = inner
	}
	inner[week] = qty
}

// Products returns the product identifiers in sorted order
func (t DemandTable) Products() []ProductID {
	return sortedKeys(t)
}

// Weeks returns the distinct weeks across all products in sorted order
func (t DemandTable) Weeks() []WeekID {
	seen := make(map[WeekID]bool)
	for _, inner := range t {
		for w := range inner {
			seen[w] = true
		}
	}
	return sortedKeys(seen)
}

// Quantities returns every demand quantity, ordered by product then week
func (t DemandTable) Quantities() []float64 {
	out := make([]float64, 0, len(t))
	for _, p := range t.Products() {
		inner := t[p]
		for _, w := range sortedKeys(inner) {
			out = append(out, inner[w])
		}
	}
	return out
}

// CapacityTable maps machine → product → weekly production capacity.
type CapacityTable map[MachineID]map[ProductID]float64

// Set records a weekly capacity. Later writes for the same machine and
// product overwrite earlier ones.
func (t CapacityTable) Set(machine MachineID, product ProductID, weekCap float64) {
	inner, ok := t[machine]
	if !ok {
		inner = make(map[ProductID]float64)
		t[machine] = inner
	}
	inner[product] = weekCap
}

// Machines returns the machine identifiers in sorted order
func (t CapacityTable) Machines() []MachineID {
	return sortedKeys(t)
}

// Capacities returns every capacity value, ordered by machine then product
func (t CapacityTable) Capacities() []float64 {
	out := make([]float64, 0, len(t))
	for _, m := range t.Machines() {
		inner := t[m]
		for _, p := range sortedKeys(inner) {
			out = append(out, inner[p])
		}
	}
	return out
}

// TransitionKey identifies a changeover between two products on a machine.
type TransitionKey struct {
	From ProductID
	To   ProductID
}

// TransitionTable maps machine → (from, to) product pair → changeover days.
type TransitionTable map[MachineID]map[TransitionKey]float64

// Record stores a changeover time, keeping the first value seen for a
// machine and product pair. Later duplicates are ignored.
func (t TransitionTable) Record(machine MachineID, key TransitionKey, days float64) {
	inner, ok := t[machine]
	if !ok {
		inner = make(map[TransitionKey]float64)
		t[machine] = inner
	}
	if _, exists := inner[key]; !exists {
		inner[key] = days
	}
}

// Machines returns the machine identifiers in sorted order
func (t TransitionTable) Machines() []MachineID {
	return sortedKeys(t)
}

// Times returns every changeover time, ordered by machine then pair
func (t TransitionTable) Times() []float64 {
	out := make([]float64, 0, len(t))
	for _, m := range t.Machines() {
		inner := t[m]
		keys := make([]TransitionKey, 0, len(inner))
		for k := range inner {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].From != keys[j].From {
				return keys[i].From < keys[j].From
			}
			return keys[i].To < keys[j].To
		})
		for _, k := range keys {
			out = append(out, inner[k])
		}
	}
	return out
}

// MachineSet holds set membership of machines.
type MachineSet map[MachineID]bool

// Add inserts a machine into the set
func (s MachineSet) Add(machine MachineID) {
	s[machine] = true
}

// Contains reports set membership
func (s MachineSet) Contains(machine MachineID) bool {
	return s[machine]
}

// Machines returns the members in sorted order
func (s MachineSet) Machines() []MachineID {
	return sortedKeys(s)
}

// DowntimeTable maps week → set of machines scheduled down that week.
type DowntimeTable map[WeekID]MachineSet

// Add marks a machine as down for a week. Duplicate rows collapse into
// a single membership.
func (t DowntimeTable) Add(week WeekID, machine MachineID) {
	set, ok := t[week]
	if !ok {
		set = make(MachineSet)
		t[week] = set
	}
	set.Add(machine)
}

// Weeks returns the week identifiers in sorted order
func (t DowntimeTable) Weeks() []WeekID {
	return sortedKeys(t)
}

func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
