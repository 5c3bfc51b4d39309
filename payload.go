package assist

import "fmt"

// Payload is a store carried by the aircraft. Expendable payloads (munitions,
// drop tanks) are released mid mission at the segment which lists them.
type Payload struct {
	Name       string
	Weight     float64 // lbm per item
	Quantity   int     // number of identical items, defaults to 1
	CDr        float64 // incremental drag coefficient per item
	Expendable bool
}

// NewPayload returns a payload of a single item.
func NewPayload(name string, weight float64, expendable bool) Payload {
	return Payload{Name: name, Weight: weight, Quantity: 1, Expendable: expendable}
}

// TotalWeight returns the weight of all items of this payload.
func (p Payload) TotalWeight() float64 {
	return p.Weight * float64(p.count())
}

// TotalDrag returns the incremental drag coefficient of all items.
func (p Payload) TotalDrag() float64 {
	return p.CDr * float64(p.count())
}

func (p Payload) count() int {
	if p.Quantity < 1 {
		return 1
	}
	return p.Quantity
}

func (p Payload) String() string {
	return fmt.Sprintf("Payload %s (%dx %.0f lbm)", p.Name, p.count(), p.Weight)
}
