// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/logicbyfred/gallery-store/internal/config"
	"github.com/logicbyfred/gallery-store/internal/domain/cart"
)

// ErrEmptySelection is returned when there is nothing to print
var ErrEmptySelection = errors.New("cart is empty")

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateSelectionSheet renders the cart as a printable sheet
func (s *Service) GenerateSelectionSheet(state cart.State) (*bytes.Buffer, error) {
	if len(state.Lines) == 0 {
		return nil, ErrEmptySelection
	}

	htmlContent, err := s.generateHTML(s.sheetData(state, time.Now()))
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(true)

	page := wkhtmltopdf.NewPageReader(strings.NewReader(htmlContent))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func (s *Service) sheetData(state cart.State, now time.Time) SheetData {
	data := SheetData{
		Title:      s.config.App.Name,
		Website:    s.config.App.BaseURL,
		Date:       now.Format("January 2, 2006"),
		TotalItems: state.TotalItems,
		TotalPrice: state.TotalPrice.StringFixed(2),
	}
	for _, line := range state.Lines {
		data.Lines = append(data.Lines, SheetLine{
			Name:      line.Product.Name,
			Artist:    line.Product.DisplayArtist(),
			Size:      line.Size,
			Color:     line.Color,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price.StringFixed(2),
			Subtotal:  line.Subtotal().StringFixed(2),
		})
	}
	return data
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data SheetData) (string, error) {
	tmpl := template.Must(template.New("selection").Parse(selectionTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// SheetData represents the data passed to the selection template
type SheetData struct {
	Title      string      `json:"title"`
	Website    string      `json:"website"`
	Date       string      `json:"date"`
	Lines      []SheetLine `json:"lines"`
	TotalItems int         `json:"total_items"`
	TotalPrice string      `json:"total_price"`
}

// SheetLine is one printed cart line
type SheetLine struct {
	Name      string `json:"name"`
	Artist    string `json:"artist"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Subtotal  string `json:"subtotal"`
}

const selectionTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}} - Selection</title>
    <style>
        body {
            font-family: Helvetica, Arial, sans-serif;
            margin: 0;
            padding: 40px;
            color: #111;
        }
        h1 {
            font-weight: 300;
            letter-spacing: 0.2em;
            text-transform: uppercase;
            margin-bottom: 4px;
        }
        .meta {
            color: #666;
            font-size: 12px;
            margin-bottom: 32px;
        }
        table {
            width: 100%;
            border-collapse: collapse;
        }
        th, td {
            text-align: left;
            padding: 10px 6px;
            border-bottom: 1px solid #ddd;
            font-size: 13px;
        }
        th {
            font-weight: 500;
            text-transform: uppercase;
            font-size: 11px;
            letter-spacing: 0.1em;
        }
        .num {
            text-align: right;
        }
        .artist {
            color: #888;
            font-size: 11px;
        }
        .totals td {
            border-bottom: none;
            font-weight: 600;
        }
    </style>
</head>
<body>
    <h1>{{.Title}}</h1>
    <div class="meta">Selection sheet &middot; {{.Date}}{{if .Website}} &middot; {{.Website}}{{end}}</div>
    <table>
        <thead>
            <tr>
                <th>Piece</th>
                <th>Size</th>
                <th>Colorway</th>
                <th class="num">Qty</th>
                <th class="num">Price</th>
                <th class="num">Subtotal</th>
            </tr>
        </thead>
        <tbody>
            {{range .Lines}}
            <tr>
                <td>{{.Name}}<div class="artist">{{.Artist}}</div></td>
                <td>{{.Size}}</td>
                <td>{{.Color}}</td>
                <td class="num">{{.Quantity}}</td>
                <td class="num">${{.UnitPrice}}</td>
                <td class="num">${{.Subtotal}}</td>
            </tr>
            {{end}}
            <tr class="totals">
                <td colspan="3">Total</td>
                <td class="num">{{.TotalItems}}</td>
                <td></td>
                <td class="num">${{.TotalPrice}}</td>
            </tr>
        </tbody>
    </table>
</body>
</html>
`
