// Package bill renders a completed order as the printed bill.
//
// Rendering is presentation only: every number on the bill comes from
// the order model, the renderer never computes a price a second way.
package bill

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"github.com/shopspring/decimal"

	"pizza-palace/internal/order"
	"pizza-palace/internal/pricing"
)

// billData holds all data needed for the bill template.
type billData struct {
	Number        string
	Date          string
	OrderType     string
	Items         []itemData
	Subtotal      decimal.Decimal
	ShowPackaging bool
	Packaging     decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	Closing       string
}

// itemData represents a single line-item block on the bill.
type itemData struct {
	Index       int
	Name        string
	Size        string
	Quantity    int
	BasePrice   decimal.Decimal // sized price times quantity, before extras
	Toppings    []toppingData
	ExtraCheese bool
	CheeseUnit  decimal.Decimal
	CheeseTotal decimal.Decimal
	Total       decimal.Decimal
}

// toppingData represents one topping line within an item block.
type toppingData struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Total     decimal.Decimal
}

const billTemplate = `
==================================================
             PIZZA PALACE BILL
==================================================
Order #: {{.Number}}
Date: {{.Date}}
Order Type: {{.OrderType}}
==================================================
{{range .Items}}
Item {{.Index}}:
  {{.Name}} ({{.Size}}) x {{.Quantity}}
  Base Price: {{money .BasePrice}}
{{- if .Toppings}}
  Toppings:
{{- range .Toppings}}
    - {{.Name}}: {{money .UnitPrice}} x {{.Quantity}} = {{money .Total}}
{{- end}}
{{- end}}
{{- if .ExtraCheese}}
  Extra Cheese: {{money .CheeseUnit}} x {{.Quantity}} = {{money .CheeseTotal}}
{{- end}}
  Item Total: {{money .Total}}
{{end}}
--------------------------------------------------
Subtotal: {{money .Subtotal}}
{{- if .ShowPackaging}}
Packaging Charges: {{money .Packaging}}
{{- end}}
GST (18%): {{money .Tax}}
==================================================
TOTAL AMOUNT: {{money .Total}}
==================================================

Thank you for choosing Pizza Palace!
Enjoy your delicious pizza!

{{.Closing}}
`

var tmpl = template.Must(template.New("bill").Funcs(template.FuncMap{
	"money": func(d decimal.Decimal) string {
		return "Rs." + d.StringFixed(2)
	},
}).Parse(billTemplate))

// Render produces the printable bill for a completed order. All
// currency values carry exactly two decimal places.
func Render(o *order.Order) (string, error) {
	var buf bytes.Buffer

	err := tmpl.Execute(&buf, buildBillData(o))
	if err != nil {
		return "", fmt.Errorf("failed to render bill: %w", err)
	}

	return buf.String(), nil
}

// buildBillData constructs the template data from the order.
func buildBillData(o *order.Order) *billData {
	data := &billData{
		Number:        o.Number(),
		Date:          o.PlacedAt().Format(time.UnixDate),
		OrderType:     o.Type().String(),
		Subtotal:      o.Subtotal(),
		ShowPackaging: o.Type() == order.TakeAway,
		Packaging:     o.PackagingCharges(),
		Tax:           o.Tax(),
		Total:         o.Total(),
		Closing:       closingMessage(o.Type()),
	}

	for i, item := range o.Items() {
		quantity := decimal.NewFromInt(int64(item.Quantity()))

		block := itemData{
			Index:       i + 1,
			Name:        item.Pizza().Name,
			Size:        item.Size().String(),
			Quantity:    item.Quantity(),
			BasePrice:   item.SizedPrice().Mul(quantity),
			ExtraCheese: item.ExtraCheese(),
			Total:       item.Total(),
		}

		for _, t := range item.Toppings() {
			block.Toppings = append(block.Toppings, toppingData{
				Name:      t.Name,
				UnitPrice: t.Price,
				Quantity:  item.Quantity(),
				Total:     t.Price.Mul(quantity),
			})
		}

		if block.ExtraCheese {
			block.CheeseUnit = pricing.ExtraCheesePrice
			block.CheeseTotal = pricing.ExtraCheesePrice.Mul(quantity)
		}

		data.Items = append(data.Items, block)
	}

	return data
}

func closingMessage(t order.Type) string {
	if t == order.TakeAway {
		return "Your order will be ready for pickup in 20-25 minutes."
	}

	return "Your order will be served to your table shortly."
}
