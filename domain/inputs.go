package domain

type ProductInput struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PurchasePrice float64 `json:"purchasePrice"`
	SellingPrice  float64 `json:"sellingPrice"`
	Stock         int     `json:"stock"`
}

type SaleLineInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type SaleInput struct {
	Date  string          `json:"date"`
	Items []SaleLineInput `json:"items"`
}

type ExpenseInput struct {
	Type        ExpenseType `json:"type"`
	Description string      `json:"description"`
	Amount      float64     `json:"amount"`
	Date        string      `json:"date"`
}

type CustomerInput struct {
	Name     string `json:"name"`
	District string `json:"district"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
}

type InvoiceItemInput struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

type InvoiceInput struct {
	CustomerID     string             `json:"customerId"`
	Date           string             `json:"date"`
	DueDate        string             `json:"dueDate,omitempty"`
	Items          []InvoiceItemInput `json:"items"`
	DiscountAmount float64            `json:"discountAmount"`
	TaxAmount      float64            `json:"taxAmount"`
	Notes          string             `json:"notes,omitempty"`
}
