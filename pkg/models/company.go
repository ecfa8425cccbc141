package models

// MailAddress is a single mailing address attached to a contact.
type MailAddress struct {
	Address1 string
	Address2 string
	City     string
	State    string
	Zip      string
	Country  string
}

// Contact holds the displayable contact information for a company. It exists
// only as a component of Company and has no lifecycle of its own.
type Contact struct {
	PrintAs     string // Printable full name, id-suffixed for uniqueness
	FirstName   string
	LastName    string // Id-suffixed, the name generator does not guarantee uniqueness
	CompanyName string // "{company name}-{id}"
	Email1      string
	Phone1      string
	Phone2      string
	MailAddress MailAddress
}

// Company is a customer record in the generated dataset. Companies are
// created once, in bulk, and never altered afterwards.
type Company struct {
	CustomerID     string // "C" + sequential integer, globally unique
	Name           string
	DisplayContact Contact
	Status         string // Always "active" for generated data
	ARAccount      string // Default receivables account
}
