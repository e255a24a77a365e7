package services

import (
	"bytes"
	"fmt"

	"github.com/digilinkbd/BestWareHub-sub002/models"
	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
)

// GenerateOrderInvoicePDF renders the invoice for one order in memory.
// Amounts are BDT.
func GenerateOrderInvoicePDF(order *models.Order, items []models.OrderItem, customerName, customerEmail string) (*bytes.Buffer, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	darkGray := color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray := color.Color{Red: 121, Green: 119, Blue: 109}

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("INVOICE", props.Text{Size: 24, Style: consts.Bold, Color: darkGray})
		})
	})

	m.Row(10, func() {
		m.Col(12, func() {
			m.Text("BESTWAREHUB", props.Text{Size: 16, Style: consts.Bold, Color: darkGray})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("support@bestwarehub.com", props.Text{Size: 9, Color: mediumGray})
		})
	})

	m.Row(8, func() {})

	m.Row(5, func() {
		m.Col(6, func() {
			m.Text("BILL TO", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text("INVOICE DETAILS", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customerName, props.Text{Size: 10, Style: consts.Bold, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Invoice #%s", order.OrderNumber), props.Text{Size: 10, Color: darkGray, Align: consts.Right})
		})
	})
	m.Row(5, func() {
		m.Col(6, func() {
			m.Text(customerEmail, props.Text{Size: 9, Color: mediumGray})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", order.CreatedAt.Format("Jan 02, 2006")), props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
		})
	})
	m.Row(5, func() {
		m.Col(12, func() {
			m.Text(order.ShippingAddress, props.Text{Size: 9, Color: mediumGray})
		})
	})

	m.Row(8, func() {})

	// Items table
	m.Row(6, func() {
		m.Col(6, func() {
			m.Text("Description", props.Text{Size: 8, Style: consts.Bold, Color: darkGray})
		})
		m.Col(2, func() {
			m.Text("Qty", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Price", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text("Subtotal", props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})
	m.Line(1)

	for _, item := range items {
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(item.ProductName, props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("BDT %.2f", item.UnitPrice), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("BDT %.2f", item.Subtotal), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}
	m.Line(1)

	m.Row(6, func() {
		m.Col(10, func() {
			m.Text("Subtotal", props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("BDT %.2f", order.Subtotal), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
		})
	})
	m.Row(6, func() {
		m.Col(10, func() {
			m.Text("Shipping", props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("BDT %.2f", order.ShippingCost), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
		})
	})
	if order.Discount > 0 {
		m.Row(6, func() {
			m.Col(10, func() {
				m.Text("Discount", props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("-BDT %.2f", order.Discount), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}
	m.Row(8, func() {
		m.Col(10, func() {
			m.Text("Total", props.Text{Size: 11, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(fmt.Sprintf("BDT %.2f", order.TotalAmount), props.Text{Size: 11, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice pdf: %w", err)
	}
	return &buf, nil
}
