// Package export renders record lists as .xlsx workbooks.
package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"erpapi/internal/model"
)

// ContentType is the MIME type of the produced workbooks.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	accountsSheet  = "Accounts"
	inventorySheet = "Inventory"
	dateLayout     = "2006-01-02 15:04"
)

var accountHeaders = []string{
	"Company", "Contact Person", "Contact Number", "Email", "Address", "Area",
	"Client Type", "Agent", "TSM", "Manager", "Status", "Created",
}

var productHeaders = []string{
	"SKU", "Name", "Category", "Unit", "Quantity", "Reorder Level", "Price", "Location", "Low Stock",
}

// Accounts writes one row per account.
func Accounts(w io.Writer, accounts []model.Account) error {
	rows := make([][]any, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []any{
			a.CompanyName, a.ContactPerson, a.ContactNumber, a.EmailAddress, a.Address, a.Area,
			a.TypeClient, a.ReferenceID, a.TSM, a.Manager, a.Status, a.CreatedAt.Format(dateLayout),
		})
	}
	return writeSheet(w, accountsSheet, accountHeaders, rows)
}

// Products writes the inventory sheet.
func Products(w io.Writer, products []model.Product) error {
	rows := make([][]any, 0, len(products))
	for _, p := range products {
		low := ""
		if p.Quantity <= p.ReorderLevel {
			low = "YES"
		}
		rows = append(rows, []any{
			p.SKU, p.Name, p.Category, p.Unit, p.Quantity, p.ReorderLevel, p.Price, p.Location, low,
		})
	}
	return writeSheet(w, inventorySheet, productHeaders, rows)
}

func writeSheet(w io.Writer, sheet string, headers []string, rows [][]any) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}
	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = excelize.Cell{StyleID: bold, Value: h}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	if err := sw.Flush(); err != nil {
		return err
	}
	return f.Write(w)
}
