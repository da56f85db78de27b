package widget

// Action is a user intent reduced against State.
type Action interface {
	Kind() string
}

const (
	KindAdd        = "add"
	KindRemove     = "remove"
	KindOpenModal  = "open_modal"
	KindCloseModal = "close_modal"
	KindPay        = "pay"
)

// Add appends a line for the menu entry at MenuIndex.
type Add struct {
	MenuIndex int
}

type Remove struct {
	LineID string
}

type OpenModal struct{}

type CloseModal struct{}

// Pay finalizes the order. Name is used as typed, empty included.
type Pay struct {
	Name string
}

func (Add) Kind() string        { return KindAdd }
func (Remove) Kind() string     { return KindRemove }
func (OpenModal) Kind() string  { return KindOpenModal }
func (CloseModal) Kind() string { return KindCloseModal }
func (Pay) Kind() string        { return KindPay }
