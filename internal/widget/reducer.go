package widget

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/CiaoGab/Restaurant-Order-App/internal/domain"
	apperrors "github.com/CiaoGab/Restaurant-Order-App/internal/errors"
)

// newLineID names each added order line.
var newLineID = uuid.NewString

// Reduce returns the state that follows applying action to s. The input
// state is never modified, so callers may keep it on error.
func Reduce(s State, action Action) (State, error) {
	switch a := action.(type) {
	case Add:
		return reduceAdd(s, a)
	case Remove:
		return reduceRemove(s, a)
	case OpenModal:
		s.ModalOpen = true
		return s, nil
	case CloseModal:
		s.ModalOpen = false
		return s, nil
	case Pay:
		s.ModalOpen = false
		s.PanelVisible = false
		s.Lines = nil
		s.SuccessVisible = true
		s.CustomerName = a.Name
		return s, nil
	case nil:
		return s, apperrors.NewValidationError("action is required")
	default:
		return s, apperrors.NewValidationError(fmt.Sprintf("unsupported action %q", action.Kind()))
	}
}

func reduceAdd(s State, a Add) (State, error) {
	item, ok := s.Menu.Item(a.MenuIndex)
	if !ok {
		return s, apperrors.NewNotFoundError(apperrors.ResourceMenuItem, fmt.Sprintf("menu item %d not found", a.MenuIndex))
	}

	lines := make([]domain.OrderLine, 0, len(s.Lines)+1)
	lines = append(lines, s.Lines...)
	s.Lines = append(lines, domain.NewOrderLine(newLineID(), item))
	s.PanelVisible = true
	return s, nil
}

func reduceRemove(s State, a Remove) (State, error) {
	idx := -1
	for i, line := range s.Lines {
		if line.ID == a.LineID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, apperrors.NewNotFoundError(apperrors.ResourceOrderLine, fmt.Sprintf("order line %q not found", a.LineID))
	}

	lines := make([]domain.OrderLine, 0, len(s.Lines)-1)
	lines = append(lines, s.Lines[:idx]...)
	s.Lines = append(lines, s.Lines[idx+1:]...)

	if s.Policy == PanelPolicyHideWhenEmpty && len(s.Lines) == 0 {
		s.PanelVisible = false
	}
	return s, nil
}
