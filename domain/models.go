package domain

type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PurchasePrice float64 `json:"purchasePrice"`
	SellingPrice  float64 `json:"sellingPrice"`
	Stock         int     `json:"stock"`
	CreatedAt     string  `json:"createdAt"`
}

// SaleItem is a frozen snapshot of the product at sale time. Later product
// edits never alter it.
type SaleItem struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	UnitCost    float64 `json:"unitCost"`
}

type Sale struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	Items       []SaleItem `json:"items"`
	TotalAmount float64    `json:"totalAmount"`
	TotalCost   float64    `json:"totalCost"`
	CreatedAt   string     `json:"createdAt"`
}

type ExpenseType string

const (
	ExpenseSalary      ExpenseType = "Salary"
	ExpenseAdvertising ExpenseType = "Advertising"
	ExpenseDelivery    ExpenseType = "Delivery"
	ExpenseOther       ExpenseType = "Other"
)

func ExpenseTypes() []ExpenseType {
	return []ExpenseType{ExpenseSalary, ExpenseAdvertising, ExpenseDelivery, ExpenseOther}
}

func (t ExpenseType) Valid() bool {
	switch t {
	case ExpenseSalary, ExpenseAdvertising, ExpenseDelivery, ExpenseOther:
		return true
	default:
		return false
	}
}

type Expense struct {
	ID          string      `json:"id"`
	Type        ExpenseType `json:"type"`
	Description string      `json:"description"`
	Amount      float64     `json:"amount"`
	Date        string      `json:"date"`
}

type Customer struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	District  string `json:"district"`
	City      string `json:"city"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// CompanyProfile is a singleton. Reads through the ledger always return a
// usable profile, falling back to DefaultCompanyProfile when nothing was
// stored yet.
type CompanyProfile struct {
	CompanyName string `json:"companyName"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Logo        string `json:"logo,omitempty"`
}

func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{
		CompanyName: "Dokanbook",
		Address:     "123 Business Rd, Dhaka",
		Phone:       "01xxxxxxxxx",
		Email:       "contact@example.com",
	}
}

type InvoiceItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Total       float64 `json:"total"`
}

type Invoice struct {
	ID                     string         `json:"id"`
	InvoiceNumber          string         `json:"invoiceNumber"`
	CustomerID             string         `json:"customerId"`
	CustomerSnapshot       Customer       `json:"customerSnapshot"`
	CompanyProfileSnapshot CompanyProfile `json:"companyProfileSnapshot"`
	Date                   string         `json:"date"`
	DueDate                string         `json:"dueDate,omitempty"`
	Items                  []InvoiceItem  `json:"items"`
	Subtotal               float64        `json:"subtotal"`
	DiscountAmount         float64        `json:"discountAmount"`
	TaxAmount              float64        `json:"taxAmount"`
	GrandTotal             float64        `json:"grandTotal"`
	Notes                  string         `json:"notes,omitempty"`
	QRCodeData             string         `json:"qrCodeData,omitempty"`
	CreatedAt              string         `json:"createdAt"`
}

// QRPayload is the JSON summary embedded in Invoice.QRCodeData. InvoiceID
// carries the human-facing invoice number, not the record id.
type QRPayload struct {
	InvoiceID    string  `json:"invoiceId"`
	CustomerName string  `json:"customerName"`
	Amount       float64 `json:"amount"`
	Date         string  `json:"date"`
}
