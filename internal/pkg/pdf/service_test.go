package pdf

import (
	"testing"
	"time"

	"github.com/logicbyfred/gallery-store/internal/config"
	"github.com/logicbyfred/gallery-store/internal/domain/cart"
	"github.com/logicbyfred/gallery-store/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState() cart.State {
	products := catalog.DefaultProducts()
	tee, capProduct := &products[1], &products[3]

	e := cart.NewEngine()
	e.AddItem(tee, "M", "Red")
	e.AddItem(tee, "M", "Red")
	e.AddItem(capProduct, "One Size", "Black")
	return e.State()
}

func TestSheetData(t *testing.T) {
	s := NewService(&config.Config{App: config.AppConfig{Name: "Logic by fred"}})

	data := s.sheetData(testState(), time.Date(2024, 11, 3, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "November 3, 2024", data.Date)
	assert.Equal(t, 3, data.TotalItems)
	assert.Equal(t, "105.00", data.TotalPrice)
	require.Len(t, data.Lines, 2)
	assert.Equal(t, "Logic Gate Tee", data.Lines[0].Name)
	assert.Equal(t, "80.00", data.Lines[0].Subtotal)
	assert.Equal(t, "fred", data.Lines[1].Artist)
}

func TestGenerateHTML(t *testing.T) {
	s := NewService(&config.Config{App: config.AppConfig{Name: "Logic by fred"}})

	html, err := s.generateHTML(s.sheetData(testState(), time.Now()))
	require.NoError(t, err)
	assert.Contains(t, html, "Logic Gate Tee")
	assert.Contains(t, html, "Monochrome Study Cap")
	assert.Contains(t, html, "$105.00")
}

func TestGenerateSelectionSheet_Empty(t *testing.T) {
	s := NewService(&config.Config{})

	_, err := s.GenerateSelectionSheet(cart.State{})
	assert.ErrorIs(t, err, ErrEmptySelection)
}
