package widget

import (
	"fmt"

	"github.com/CiaoGab/Restaurant-Order-App/internal/domain"
)

// PanelPolicy decides whether removing a line may hide the order panel.
type PanelPolicy string

const (
	// PanelPolicyLegacy keeps the panel visible after removals, even when the
	// last line is gone. Only Pay hides it.
	PanelPolicyLegacy PanelPolicy = "legacy"
	// PanelPolicyHideWhenEmpty hides the panel once no lines remain.
	PanelPolicyHideWhenEmpty PanelPolicy = "hide-when-empty"
)

func ParsePanelPolicy(s string) (PanelPolicy, error) {
	switch PanelPolicy(s) {
	case "", PanelPolicyLegacy:
		return PanelPolicyLegacy, nil
	case PanelPolicyHideWhenEmpty:
		return PanelPolicyHideWhenEmpty, nil
	default:
		return "", fmt.Errorf("unknown panel policy %q", s)
	}
}

// State is everything the order page shows for one page session.
type State struct {
	Menu   domain.Menu
	Policy PanelPolicy

	Lines          []domain.OrderLine
	PanelVisible   bool
	ModalOpen      bool
	SuccessVisible bool
	CustomerName   string
}

func New(menu domain.Menu, policy PanelPolicy) State {
	return State{
		Menu:   menu,
		Policy: policy,
	}
}

func (s State) SuccessText() string {
	if !s.SuccessVisible {
		return ""
	}
	return SuccessText(s.CustomerName)
}

func SuccessText(name string) string {
	return fmt.Sprintf("Thanks, %s! Your order is on its way!", name)
}
