package generator

import (
	"fmt"
	"strings"

	"erpgen/internal/fake"
	"erpgen/pkg/models"
)

// CompanyRef is the slice of a Company that invoice generation needs: the
// explicit named type at the Company→Invoice boundary.
type CompanyRef struct {
	CustomerID  string
	ContactName string
}

// NewContact creates a Contact with fake information and a mailing address
// associated with the supplied company name.
//
// Generated names are not guaranteed to be unique, so the contact id is
// appended to the structured key fields (last name, company name) while the
// display name keeps possible duplicates. Uniqueness checking is skipped on
// purpose, it costs more than the dataset is worth.
func NewContact(p fake.Provider, contactID int, companyName string) models.Contact {
	fullName := p.Name()
	names := strings.Fields(fullName)
	firstName := names[0]
	lastName := names[0]
	if len(names) > 1 {
		lastName = names[1]
	}

	return models.Contact{
		PrintAs:     fmt.Sprintf("%s %d", fullName, contactID),
		FirstName:   firstName,
		LastName:    fmt.Sprintf("%s %d", lastName, contactID),
		CompanyName: fmt.Sprintf("%s-%d", companyName, contactID),
		Email1:      p.SafeEmail(),
		Phone1:      p.PhoneNumber(),
		Phone2:      p.PhoneNumber(),
		MailAddress: models.MailAddress{
			Address1: p.StreetAddress(),
			Address2: fmt.Sprintf("Attn: %d", contactID),
			City:     p.City(),
			State:    p.State(),
			Country:  p.CountryCode(),
			Zip:      p.Postcode(),
		},
	}
}

// NewCompany creates a company with the given id number, a default AR
// account, and a primary display contact.
func NewCompany(p fake.Provider, companyID int) models.Company {
	companyName := p.CompanyName()

	return models.Company{
		CustomerID:     fmt.Sprintf("C%d", companyID),
		Name:           companyName,
		DisplayContact: NewContact(p, companyID, companyName),
		Status:         "active",
		ARAccount:      "4000",
	}
}

// CompanyBatch creates batchSize companies with sequential ids following
// startID. Ids are 1-indexed: the first company of startID 0 is C1.
func CompanyBatch(p fake.Provider, startID, batchSize int) []models.Company {
	companies := make([]models.Company, batchSize)
	for i := range companies {
		companies[i] = NewCompany(p, startID+i+1)
	}
	return companies
}

// Ref returns the invoice-facing reference for a generated company.
func Ref(c models.Company) CompanyRef {
	return CompanyRef{
		CustomerID:  c.CustomerID,
		ContactName: c.DisplayContact.PrintAs,
	}
}
