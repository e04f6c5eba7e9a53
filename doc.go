// Package dokanbook is the back-office core of a small-business manager:
// product inventory, sale recording with stock reconciliation, expense
// tracking, customers, sequentially numbered invoices with QR payloads, a
// company profile singleton, financial reporting and a self-expiring
// notification channel.
//
// There is no network API and no CLI; the embedding application talks to the
// ledger directly. Open wires the configured key-value backend (PostgreSQL,
// Redis or in-memory), the notification bus and the ledger service:
//
//	app, err := dokanbook.Open(ctx, config.Load())
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer app.Close()
//
//	product, err := app.Ledger.AddProduct(ctx, domain.ProductInput{
//		Name: "Rice 5kg", PurchasePrice: 520, SellingPrice: 610, Stock: 40,
//	})
package dokanbook
