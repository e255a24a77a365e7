package services

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/digilinkbd/BestWareHub-sub002/models"
)

// ResendClient handles transactional email via the Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Fatal("RESEND_API_KEY environment variable not set")
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "orders@bestwarehub.com"
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}
}

// SendOrderInvoiceEmail sends the order confirmation with the invoice PDF attached.
func (r *ResendClient) SendOrderInvoiceEmail(order *models.Order, items []models.OrderItem, customerName, customerEmail string, pdfContent []byte) error {
	var itemsRows strings.Builder
	for _, item := range items {
		itemsRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">BDT %.2f</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622;">BDT %.2f</td>
      </tr>
    `, item.ProductName, item.Quantity, item.UnitPrice, item.Subtotal))
	}

	discountRow := ""
	if order.Discount > 0 {
		discountRow = fmt.Sprintf(`
    <tr>
      <td colspan="3" style="padding: 6px 0; font-size: 14px; color: #79776d;">Discount</td>
      <td style="padding: 6px 0; font-size: 14px; text-align: right; color: #262622;">-BDT %.2f</td>
    </tr>
    `, order.Discount)
	}

	htmlBody := fmt.Sprintf(`<!doctype html>
<html>
  <body style="margin: 0; padding: 0; background: #f4f3ef; font-family: -apple-system, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif;">
    <div style="max-width: 600px; margin: 0 auto; padding: 32px 24px;">
      <div style="background: #ffffff; border-radius: 12px; padding: 32px;">
        <h1 style="margin: 0 0 4px; font-size: 22px; color: #262622;">Thanks for your order, %s!</h1>
        <p style="margin: 0 0 24px; font-size: 14px; color: #79776d;">
          Order <strong>%s</strong> is confirmed. Your invoice is attached as a PDF.
        </p>
        <table style="width: 100%%; border-collapse: collapse;">
          <thead>
            <tr style="border-bottom: 1px solid #e5e3da;">
              <th style="padding: 8px 0; font-size: 12px; text-align: left; color: #79776d;">Item</th>
              <th style="padding: 8px 0; font-size: 12px; text-align: right; color: #79776d;">Qty</th>
              <th style="padding: 8px 0; font-size: 12px; text-align: right; color: #79776d;">Price</th>
              <th style="padding: 8px 0; font-size: 12px; text-align: right; color: #79776d;">Subtotal</th>
            </tr>
          </thead>
          <tbody>%s</tbody>
          <tfoot>
            <tr style="border-top: 1px solid #e5e3da;">
              <td colspan="3" style="padding: 6px 0; font-size: 14px; color: #79776d;">Subtotal</td>
              <td style="padding: 6px 0; font-size: 14px; text-align: right; color: #262622;">BDT %.2f</td>
            </tr>
            <tr>
              <td colspan="3" style="padding: 6px 0; font-size: 14px; color: #79776d;">Shipping</td>
              <td style="padding: 6px 0; font-size: 14px; text-align: right; color: #262622;">BDT %.2f</td>
            </tr>
            %s
            <tr>
              <td colspan="3" style="padding: 10px 0; font-size: 16px; font-weight: 700; color: #262622;">Total</td>
              <td style="padding: 10px 0; font-size: 16px; text-align: right; font-weight: 700; color: #262622;">BDT %.2f</td>
            </tr>
          </tfoot>
        </table>
        <p style="margin: 24px 0 0; font-size: 13px; color: #79776d;">
          Delivery address: %s
        </p>
      </div>
      <p style="margin: 16px 0 0; font-size: 12px; text-align: center; color: #a8a699;">
        BestWareHub &middot; Dhaka, Bangladesh
      </p>
    </div>
  </body>
</html>`, customerName, order.OrderNumber, itemsRows.String(),
		order.Subtotal, order.ShippingCost, discountRow, order.TotalAmount, order.ShippingAddress)

	pdfBase64 := base64.StdEncoding.EncodeToString(pdfContent)

	payload := map[string]interface{}{
		"from":    r.from,
		"to":      customerEmail,
		"subject": fmt.Sprintf("Your BestWareHub order %s", order.OrderNumber),
		"html":    htmlBody,
		"attachments": []map[string]interface{}{
			{
				"filename": fmt.Sprintf("invoice-%s.pdf", order.OrderNumber),
				"content":  pdfBase64,
			},
		},
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] order invoice email sent to %s for %s", customerEmail, order.OrderNumber)
	return nil
}
