package entity

// Mode is the swap state of the page
type Mode int

const (
	ModeNormal Mode = iota
	ModeSwapPending
)

func (m Mode) String() string {
	if m == ModeSwapPending {
		return "swap-pending"
	}
	return "normal"
}

// ViewState is a snapshot of everything the page needs to render
type ViewState struct {
	Roster      Roster
	Settings    Settings
	Mode        Mode
	SelectedID  int // only meaningful in ModeSwapPending
	Editing     bool
	PendingName string

	// NextID is the id the next added presenter receives
	NextID int
}

// SwapMode reports whether a swap is waiting for its second selection
func (v ViewState) SwapMode() bool {
	return v.Mode == ModeSwapPending
}
