package pdf_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/nexus-pos/internal/domain/cart"
	"github.com/jhoicas/nexus-pos/internal/domain/entity"
	"github.com/jhoicas/nexus-pos/internal/infrastructure/pdf"
)

func TestReceiptWriter_GeneraElArchivo(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "receipts")
	w := pdf.NewReceiptWriter(dir)

	c := cart.New()
	c.Add(entity.Product{SKU: "A", Name: "Coca-Cola 330ml", SellingPrice: decimal.NewFromFloat(9.99)})
	c.Add(entity.Product{SKU: "A", Name: "Coca-Cola 330ml", SellingPrice: decimal.NewFromFloat(9.99)})
	totals := cart.ComputeTotals(c)

	path, err := w.WriteReceipt("Mi Tienda", 42, c.Items(), totals)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "venta-42.pdf"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Greater(t, len(data), 500, "un PDF real, no un archivo vacío")
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestReceiptWriter_CreaElDirectorio(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "receipts")
	w := pdf.NewReceiptWriter(dir)

	c := cart.New()
	c.Add(entity.Product{SKU: "X", Name: "Pan", SellingPrice: decimal.NewFromInt(10)})

	_, err := w.WriteReceipt("Tienda", 1, c.Items(), cart.ComputeTotals(c))

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
