package render

import (
	"github.com/CiaoGab/Restaurant-Order-App/internal/domain"
	"github.com/CiaoGab/Restaurant-Order-App/internal/widget"
)

const DefaultCurrencySymbol = "$"

// View is the presentation of a widget.State. It carries display-ready
// strings only.
type View struct {
	Cards           []CardView
	PanelVisible    bool
	Lines           []LineView
	ModalVisible    bool
	BackdropVisible bool
	SuccessVisible  bool
	SuccessText     string
}

type CardView struct {
	MenuIndex   int
	Name        string
	Ingredients string
	Price       string
	ImgURL      string
}

type LineView struct {
	ID    string
	Name  string
	Price string
}

// Build maps state to a View. Cards come out in reverse menu order because
// each card is placed in front of the ones before it.
func Build(s widget.State, currencySymbol string) View {
	if currencySymbol == "" {
		currencySymbol = DefaultCurrencySymbol
	}

	cards := make([]CardView, 0, len(s.Menu))
	for i := len(s.Menu) - 1; i >= 0; i-- {
		item := s.Menu[i]
		cards = append(cards, CardView{
			MenuIndex:   i,
			Name:        item.Name,
			Ingredients: item.Ingredients,
			Price:       domain.FormatPrice(currencySymbol, item.Price),
			ImgURL:      item.ImgURL,
		})
	}

	lines := make([]LineView, 0, len(s.Lines))
	for _, line := range s.Lines {
		lines = append(lines, LineView{
			ID:    line.ID,
			Name:  line.Name,
			Price: domain.FormatPrice(currencySymbol, line.Price),
		})
	}

	return View{
		Cards:           cards,
		PanelVisible:    s.PanelVisible,
		Lines:           lines,
		ModalVisible:    s.ModalOpen,
		BackdropVisible: s.ModalOpen,
		SuccessVisible:  s.SuccessVisible,
		SuccessText:     s.SuccessText(),
	}
}
