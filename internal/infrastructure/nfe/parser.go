package nfe

import (
	"fmt"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/jcastro/estoque-api/internal/application/inventory"
)

var _ inventory.InvoiceParser = (*Parser)(nil)

// Parser extrae las líneas de una NF-e (factura electrónica de proveedor)
// para registrarlas como entradas de stock. Acepta tanto el documento
// procesado (nfeProc) como la NFe sin envolver.
type Parser struct{}

// NewParser construye el parser de NF-e.
func NewParser() *Parser {
	return &Parser{}
}

// Parse lee el XML y devuelve proveedor, fecha de emisión y líneas.
// Falla si el documento no es XML válido, no contiene una NFe o no trae líneas.
func (p *Parser) Parse(doc []byte) (*inventory.ParsedInvoice, error) {
	tree := etree.NewDocument()
	if err := tree.ReadFromBytes(doc); err != nil {
		return nil, fmt.Errorf("leer XML: %w", err)
	}

	inf := tree.FindElement("//infNFe")
	if inf == nil {
		return nil, fmt.Errorf("el documento no contiene una NFe (falta infNFe)")
	}

	invoice := &inventory.ParsedInvoice{}
	if e := inf.FindElement("emit/xNome"); e != nil {
		invoice.Supplier = strings.TrimSpace(e.Text())
	}
	if e := inf.FindElement("ide/dhEmi"); e != nil {
		if t, err := time.Parse(time.RFC3339, strings.TrimSpace(e.Text())); err == nil {
			invoice.IssuedAt = t.UTC()
		}
	}

	for _, det := range inf.FindElements("det") {
		prod := det.FindElement("prod")
		if prod == nil {
			continue
		}
		item, err := parseItem(prod)
		if err != nil {
			return nil, err
		}
		item.IssuedAt = invoice.IssuedAt
		invoice.Items = append(invoice.Items, item)
	}
	if len(invoice.Items) == 0 {
		return nil, fmt.Errorf("la NFe no contiene líneas de producto")
	}
	return invoice, nil
}

func parseItem(prod *etree.Element) (inventory.InvoiceItem, error) {
	var item inventory.InvoiceItem
	if e := prod.FindElement("cProd"); e != nil {
		item.ProductCode = strings.TrimSpace(e.Text())
	}
	if item.ProductCode == "" {
		return item, fmt.Errorf("línea sin código de producto (cProd)")
	}
	if e := prod.FindElement("xProd"); e != nil {
		item.Description = strings.TrimSpace(e.Text())
	}
	e := prod.FindElement("qCom")
	if e == nil {
		return item, fmt.Errorf("producto %s: línea sin cantidad (qCom)", item.ProductCode)
	}
	qty, err := decimal.NewFromString(strings.TrimSpace(e.Text()))
	if err != nil {
		return item, fmt.Errorf("producto %s: cantidad inválida: %w", item.ProductCode, err)
	}
	if !qty.GreaterThan(decimal.Zero) {
		return item, fmt.Errorf("producto %s: cantidad no positiva", item.ProductCode)
	}
	item.Quantity = qty
	return item, nil
}
