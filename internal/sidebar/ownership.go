package sidebar

// Ownership says who holds the authoritative desktop open value. It is
// resolved once when the controller is built.
type Ownership interface {
	isOpen() bool
	ownership()
}

// Owned means the controller keeps the value itself and persists it.
type Owned struct {
	open bool
}

// Delegated means a caller owns the value. The controller reports requested
// changes through OnChange and learns the new value via SetControlledOpen.
type Delegated struct {
	open     bool
	onChange func(bool)
}

func (o *Owned) isOpen() bool     { return o.open }
func (d *Delegated) isOpen() bool { return d.open }

func (*Owned) ownership()     {}
func (*Delegated) ownership() {}

func resolveOwnership(defaultOpen bool, controlled *bool, onChange func(bool)) Ownership {
	if controlled != nil {
		return &Delegated{open: *controlled, onChange: onChange}
	}
	return &Owned{open: defaultOpen}
}
