// Package export persists generated batches as flat CSV files, one file per
// company batch, per invoice period, and per payment batch. Nested company
// fields are flattened with dotted column names so the output loads
// directly into dataframe tooling.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"erpgen/internal/calendar"
	"erpgen/pkg/models"
)

const dateFormat = "2006-01-02"

// CSVSink writes dataset CSVs into a single output directory.
type CSVSink struct {
	dir string
}

// NewCSVSink creates the output directory if needed and returns a sink
// writing into it.
func NewCSVSink(dir string) (*CSVSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: create output dir: %w", err)
	}
	return &CSVSink{dir: dir}, nil
}

type companyRow struct {
	CustomerID         string `csv:"customer_id"`
	Name               string `csv:"name"`
	Status             string `csv:"status"`
	ARAccount          string `csv:"ar_account"`
	ContactPrintAs     string `csv:"display_contact.print_as"`
	ContactFirstName   string `csv:"display_contact.first_name"`
	ContactLastName    string `csv:"display_contact.last_name"`
	ContactCompanyName string `csv:"display_contact.company_name"`
	ContactEmail1      string `csv:"display_contact.email1"`
	ContactPhone1      string `csv:"display_contact.phone1"`
	ContactPhone2      string `csv:"display_contact.phone2"`
	Address1           string `csv:"display_contact.mail_address.address1"`
	Address2           string `csv:"display_contact.mail_address.address2"`
	City               string `csv:"display_contact.mail_address.city"`
	State              string `csv:"display_contact.mail_address.state"`
	Zip                string `csv:"display_contact.mail_address.zip"`
	Country            string `csv:"display_contact.mail_address.country"`
}

// WriteCompanies writes the full company set to company-data.csv.
func (s *CSVSink) WriteCompanies(companies []models.Company) error {
	rows := make([]companyRow, len(companies))
	for i, c := range companies {
		rows[i] = companyRow{
			CustomerID:         c.CustomerID,
			Name:               c.Name,
			Status:             c.Status,
			ARAccount:          c.ARAccount,
			ContactPrintAs:     c.DisplayContact.PrintAs,
			ContactFirstName:   c.DisplayContact.FirstName,
			ContactLastName:    c.DisplayContact.LastName,
			ContactCompanyName: c.DisplayContact.CompanyName,
			ContactEmail1:      c.DisplayContact.Email1,
			ContactPhone1:      c.DisplayContact.Phone1,
			ContactPhone2:      c.DisplayContact.Phone2,
			Address1:           c.DisplayContact.MailAddress.Address1,
			Address2:           c.DisplayContact.MailAddress.Address2,
			City:               c.DisplayContact.MailAddress.City,
			State:              c.DisplayContact.MailAddress.State,
			Zip:                c.DisplayContact.MailAddress.Zip,
			Country:            c.DisplayContact.MailAddress.Country,
		}
	}
	return s.writeFile("company-data.csv", &rows)
}

type invoiceRow struct {
	InvoiceID         string `csv:"invoice_id"`
	CustomerID        string `csv:"customer_id"`
	DateCreated       string `csv:"date_created"`
	DatePosted        string `csv:"date_posted"`
	DateDue           string `csv:"date_due"`
	BaseCurr          string `csv:"base_curr"`
	CurrencyCode      string `csv:"currency_code"`
	BillToContactName string `csv:"bill_to_contact_name"`
	ShipToContactName string `csv:"ship_to_contact_name"`
	TermName          string `csv:"term_name"`
	InvoiceLine       int    `csv:"invoice_line"`
	AccountLabel      string `csv:"account_label"`
	Amount            string `csv:"amount"`
	Total             string `csv:"total"`
}

// WriteInvoices writes one period's invoices to a file named by the
// period's year and month, one row per line item.
func (s *CSVSink) WriteInvoices(period calendar.Period, invoices []models.Invoice) error {
	var rows []invoiceRow
	for _, inv := range invoices {
		total := inv.Total().StringFixed(2)
		for _, item := range inv.InvoiceItems {
			rows = append(rows, invoiceRow{
				InvoiceID:         inv.InvoiceID,
				CustomerID:        inv.CustomerID,
				DateCreated:       inv.DateCreated.Format(dateFormat),
				DatePosted:        inv.DatePosted.Format(dateFormat),
				DateDue:           inv.DateDue.Format(dateFormat),
				BaseCurr:          inv.BaseCurr,
				CurrencyCode:      inv.CurrencyCode,
				BillToContactName: inv.BillToContactName,
				ShipToContactName: inv.ShipToContactName,
				TermName:          inv.TermName,
				InvoiceLine:       item.InvoiceLine,
				AccountLabel:      item.AccountLabel,
				Amount:            item.Amount.StringFixed(2),
				Total:             total,
			})
		}
	}
	name := fmt.Sprintf("invoice-data-%s.csv", period.Start.Format("2006-01"))
	return s.writeFile(name, &rows)
}

type paymentRow struct {
	PaymentID      string `csv:"payment_id"`
	CustomerID     string `csv:"customer_id"`
	PaymentAmount  string `csv:"payment_amount"`
	TotalRemaining string `csv:"total_remaining"`
	PaymentMethod  string `csv:"payment_method"`
	BaseCurr       string `csv:"base_curr"`
	CurrencyCode   string `csv:"currency_code"`
	ReferenceID    string `csv:"reference_id"`
	DateCreated    string `csv:"date_created"`
	DateReceived   string `csv:"date_received"`
	DatePosted     string `csv:"date_posted"`
	InvoiceID      string `csv:"invoice_id"`
	ItemAmount     string `csv:"item_amount"`
}

// WritePayments writes one payment batch to a file named by its batch id,
// one row per payment application.
func (s *CSVSink) WritePayments(batchID int, payments []models.Payment) error {
	var rows []paymentRow
	for _, pay := range payments {
		remaining := pay.TotalRemaining().StringFixed(2)
		for _, item := range pay.PaymentItems {
			rows = append(rows, paymentRow{
				PaymentID:      pay.PaymentID,
				CustomerID:     pay.CustomerID,
				PaymentAmount:  pay.PaymentAmount.StringFixed(2),
				TotalRemaining: remaining,
				PaymentMethod:  pay.PaymentMethod,
				BaseCurr:       pay.BaseCurr,
				CurrencyCode:   pay.CurrencyCode,
				ReferenceID:    pay.ReferenceID,
				DateCreated:    pay.DateCreated.Format(dateFormat),
				DateReceived:   pay.DateReceived.Format(dateFormat),
				DatePosted:     pay.DatePosted.Format(dateFormat),
				InvoiceID:      item.InvoiceID,
				ItemAmount:     item.Amount.StringFixed(2),
			})
		}
	}
	return s.writeFile(fmt.Sprintf("payment-data-%d.csv", batchID), &rows)
}

func (s *CSVSink) writeFile(name string, rows interface{}) error {
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create %s: %w", name, err)
	}

	if err := gocsv.Marshal(rows, f); err != nil {
		f.Close()
		return fmt.Errorf("export: write %s: %w", name, err)
	}
	return f.Close()
}

// Discard is a Sink that drops everything. Used by dry runs.
type Discard struct{}

func (Discard) WriteCompanies([]models.Company) error                 { return nil }
func (Discard) WriteInvoices(calendar.Period, []models.Invoice) error { return nil }
func (Discard) WritePayments(int, []models.Payment) error             { return nil }
