package nfe_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/estoque-api/internal/infrastructure/nfe"
)

const sampleNFe = `<?xml version="1.0" encoding="UTF-8"?>
<nfeProc xmlns="http://www.portalfiscal.inf.br/nfe" versao="4.00">
  <NFe>
    <infNFe Id="NFe35250312345678000190550010000000011000000017" versao="4.00">
      <ide>
        <nNF>1</nNF>
        <dhEmi>2025-03-10T14:30:00-03:00</dhEmi>
      </ide>
      <emit>
        <CNPJ>12345678000190</CNPJ>
        <xNome>Distribuidora Sul LTDA</xNome>
      </emit>
      <det nItem="1">
        <prod>
          <cProd>42</cProd>
          <xProd>ACAI 10L</xProd>
          <uCom>UN</uCom>
          <qCom>20.0000</qCom>
        </prod>
      </det>
      <det nItem="2">
        <prod>
          <cProd>43</cProd>
          <xProd>POLPA MORANGO</xProd>
          <uCom>KG</uCom>
          <qCom>7.5000</qCom>
        </prod>
      </det>
    </infNFe>
  </NFe>
</nfeProc>`

func TestParse_NFeCompleta(t *testing.T) {
	p := nfe.NewParser()

	invoice, err := p.Parse([]byte(sampleNFe))
	require.NoError(t, err)

	assert.Equal(t, "Distribuidora Sul LTDA", invoice.Supplier)
	assert.Equal(t, 2025, invoice.IssuedAt.Year())
	assert.Equal(t, 17, invoice.IssuedAt.Hour(), "dhEmi -03:00 normalizado a UTC")

	require.Len(t, invoice.Items, 2)
	assert.Equal(t, "42", invoice.Items[0].ProductCode)
	assert.Equal(t, "ACAI 10L", invoice.Items[0].Description)
	assert.True(t, invoice.Items[0].Quantity.Equal(decimal.NewFromInt(20)))
	assert.True(t, invoice.Items[1].Quantity.Equal(decimal.RequireFromString("7.5")))
}

func TestParse_SinEnvolturaNfeProc(t *testing.T) {
	bare := `<NFe><infNFe><emit><xNome>X</xNome></emit><det><prod><cProd>1</cProd><qCom>2</qCom></prod></det></infNFe></NFe>`
	p := nfe.NewParser()

	invoice, err := p.Parse([]byte(bare))
	require.NoError(t, err)
	require.Len(t, invoice.Items, 1)
}

func TestParse_DocumentosInvalidos(t *testing.T) {
	p := nfe.NewParser()

	_, err := p.Parse([]byte("esto no es xml <"))
	assert.Error(t, err)

	_, err = p.Parse([]byte("<otra><cosa/></otra>"))
	assert.Error(t, err, "XML válido pero sin infNFe")

	_, err = p.Parse([]byte("<NFe><infNFe><det><prod><cProd>1</cProd></prod></det></infNFe></NFe>"))
	assert.Error(t, err, "línea sin cantidad")

	_, err = p.Parse([]byte("<NFe><infNFe><emit><xNome>X</xNome></emit></infNFe></NFe>"))
	assert.Error(t, err, "NFe sin líneas")
}
