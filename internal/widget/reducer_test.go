package widget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CiaoGab/Restaurant-Order-App/internal/domain"
	apperrors "github.com/CiaoGab/Restaurant-Order-App/internal/errors"
)

func testMenu() domain.Menu {
	return domain.Menu{
		{Name: "Salad", Ingredients: "lettuce, tomato, cucumber", Price: decimal.NewFromInt(8), ImgURL: "images/salad.png"},
		{Name: "Soup", Ingredients: "broth, noodles", Price: decimal.NewFromInt(5), ImgURL: "images/soup.png"},
	}
}

func mustReduce(t *testing.T, s State, action Action) State {
	t.Helper()
	next, err := Reduce(s, action)
	require.NoError(t, err)
	return next
}

// fixedLineIDs makes the next adds use ids in order.
func fixedLineIDs(t *testing.T, ids ...string) {
	t.Helper()
	prev := newLineID
	next := 0
	newLineID = func() string {
		require.Less(t, next, len(ids), "more lines added than ids given")
		id := ids[next]
		next++
		return id
	}
	t.Cleanup(func() { newLineID = prev })
}

func TestReduce_AddShowsPanelAndAppendsLine(t *testing.T) {
	fixedLineIDs(t, "l1")
	s := New(testMenu(), PanelPolicyLegacy)

	s = mustReduce(t, s, Add{MenuIndex: 0})

	assert.True(t, s.PanelVisible)
	require.Len(t, s.Lines, 1)
	assert.Equal(t, "l1", s.Lines[0].ID)
	assert.Equal(t, "Salad", s.Lines[0].Name)
	assert.True(t, decimal.NewFromInt(8).Equal(s.Lines[0].Price))
}

func TestReduce_AddPreservesInsertionOrder(t *testing.T) {
	s := New(testMenu(), PanelPolicyLegacy)

	s = mustReduce(t, s, Add{MenuIndex: 0})
	s = mustReduce(t, s, Add{MenuIndex: 1})

	require.Len(t, s.Lines, 2)
	assert.Equal(t, "Salad", s.Lines[0].Name)
	assert.Equal(t, "Soup", s.Lines[1].Name)
}

func TestReduce_AddSameItemTwiceCreatesIndependentLines(t *testing.T) {
	s := New(testMenu(), PanelPolicyLegacy)

	s = mustReduce(t, s, Add{MenuIndex: 1})
	s = mustReduce(t, s, Add{MenuIndex: 1})

	require.Len(t, s.Lines, 2)
	assert.Equal(t, "Soup", s.Lines[0].Name)
	assert.Equal(t, "Soup", s.Lines[1].Name)
	assert.NotEmpty(t, s.Lines[0].ID)
	assert.NotEqual(t, s.Lines[0].ID, s.Lines[1].ID)
}

func TestReduce_AddUnknownMenuIndex(t *testing.T) {
	s := New(testMenu(), PanelPolicyLegacy)

	next, err := Reduce(s, Add{MenuIndex: 7})

	require.Error(t, err)
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.False(t, next.PanelVisible)
	assert.Empty(t, next.Lines)
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	fixedLineIDs(t, "l1", "l2", "l3")
	s := New(testMenu(), PanelPolicyLegacy)
	s = mustReduce(t, s, Add{MenuIndex: 0})
	s = mustReduce(t, s, Add{MenuIndex: 1})

	_ = mustReduce(t, s, Remove{LineID: "l1"})
	_ = mustReduce(t, s, Add{MenuIndex: 0})

	require.Len(t, s.Lines, 2)
	assert.Equal(t, "l1", s.Lines[0].ID)
	assert.Equal(t, "l2", s.Lines[1].ID)
}

func TestReduce_RemoveExactLine(t *testing.T) {
	fixedLineIDs(t, "l1", "l2", "l3")
	s := New(testMenu(), PanelPolicyLegacy)
	s = mustReduce(t, s, Add{MenuIndex: 0})
	s = mustReduce(t, s, Add{MenuIndex: 0})
	s = mustReduce(t, s, Add{MenuIndex: 1})

	s = mustReduce(t, s, Remove{LineID: "l2"})

	require.Len(t, s.Lines, 2)
	assert.Equal(t, "l1", s.Lines[0].ID)
	assert.Equal(t, "l3", s.Lines[1].ID)
}

func TestReduce_RemoveLastLine_LegacyKeepsPanelVisible(t *testing.T) {
	fixedLineIDs(t, "l1")
	s := New(testMenu(), PanelPolicyLegacy)
	s = mustReduce(t, s, Add{MenuIndex: 0})

	s = mustReduce(t, s, Remove{LineID: "l1"})

	assert.Empty(t, s.Lines)
	assert.True(t, s.PanelVisible)
}

func TestReduce_RemoveLastLine_HideWhenEmpty(t *testing.T) {
	fixedLineIDs(t, "l1", "l2")
	s := New(testMenu(), PanelPolicyHideWhenEmpty)
	s = mustReduce(t, s, Add{MenuIndex: 0})
	s = mustReduce(t, s, Add{MenuIndex: 1})

	s = mustReduce(t, s, Remove{LineID: "l1"})
	assert.True(t, s.PanelVisible)

	s = mustReduce(t, s, Remove{LineID: "l2"})
	assert.False(t, s.PanelVisible)
}

func TestReduce_RemoveUnknownLine(t *testing.T) {
	s := New(testMenu(), PanelPolicyLegacy)

	_, err := Reduce(s, Remove{LineID: "missing"})

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestReduce_OpenModalWithEmptyOrder(t *testing.T) {
	s := New(testMenu(), PanelPolicyLegacy)

	s = mustReduce(t, s, OpenModal{})

	assert.True(t, s.ModalOpen)
	assert.False(t, s.PanelVisible)
}

func TestReduce_CloseModalKeepsLines(t *testing.T) {
	s := New(testMenu(), PanelPolicyLegacy)
	s = mustReduce(t, s, Add{MenuIndex: 0})
	s = mustReduce(t, s, OpenModal{})

	s = mustReduce(t, s, CloseModal{})

	assert.False(t, s.ModalOpen)
	assert.True(t, s.PanelVisible)
	require.Len(t, s.Lines, 1)
}

func TestReduce_Pay(t *testing.T) {
	tests := []struct {
		name     string
		customer string
		want     string
	}{
		{name: "named customer", customer: "Ana", want: "Thanks, Ana! Your order is on its way!"},
		{name: "empty name", customer: "", want: "Thanks, ! Your order is on its way!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testMenu(), PanelPolicyLegacy)
			s = mustReduce(t, s, Add{MenuIndex: 0})
			s = mustReduce(t, s, OpenModal{})

			s = mustReduce(t, s, Pay{Name: tt.customer})

			assert.False(t, s.ModalOpen)
			assert.False(t, s.PanelVisible)
			assert.Empty(t, s.Lines)
			assert.True(t, s.SuccessVisible)
			assert.Equal(t, tt.want, s.SuccessText())
		})
	}
}

func TestReduce_AddAfterPayStartsNewOrder(t *testing.T) {
	s := New(testMenu(), PanelPolicyLegacy)
	s = mustReduce(t, s, Add{MenuIndex: 0})
	s = mustReduce(t, s, Pay{Name: "Ana"})

	s = mustReduce(t, s, Add{MenuIndex: 1})

	assert.True(t, s.PanelVisible)
	require.Len(t, s.Lines, 1)
	assert.Equal(t, "Soup", s.Lines[0].Name)
	assert.True(t, s.SuccessVisible)
}

func TestReduce_NilAction(t *testing.T) {
	_, err := Reduce(New(testMenu(), PanelPolicyLegacy), nil)

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestReduce_EndToEndScenario(t *testing.T) {
	fixedLineIDs(t, "salad", "soup")
	s := New(testMenu(), PanelPolicyLegacy)

	s = mustReduce(t, s, Add{MenuIndex: 0})
	assert.True(t, s.PanelVisible)
	require.Len(t, s.Lines, 1)

	s = mustReduce(t, s, Add{MenuIndex: 1})
	require.Len(t, s.Lines, 2)

	s = mustReduce(t, s, Remove{LineID: "salad"})
	require.Len(t, s.Lines, 1)
	assert.Equal(t, "Soup", s.Lines[0].Name)
	assert.True(t, s.PanelVisible)

	s = mustReduce(t, s, OpenModal{})
	assert.True(t, s.ModalOpen)

	s = mustReduce(t, s, Pay{Name: "Ana"})
	assert.False(t, s.ModalOpen)
	assert.Empty(t, s.Lines)
	assert.Equal(t, "Thanks, Ana! Your order is on its way!", s.SuccessText())
}

func TestParsePanelPolicy(t *testing.T) {
	p, err := ParsePanelPolicy("")
	require.NoError(t, err)
	assert.Equal(t, PanelPolicyLegacy, p)

	p, err = ParsePanelPolicy("hide-when-empty")
	require.NoError(t, err)
	assert.Equal(t, PanelPolicyHideWhenEmpty, p)

	_, err = ParsePanelPolicy("sometimes")
	assert.Error(t, err)
}

func TestSuccessText_HiddenUntilPaid(t *testing.T) {
	s := New(testMenu(), PanelPolicyLegacy)
	s.CustomerName = "Ana"

	assert.Equal(t, "", s.SuccessText())
}
