// seed genera un script SQL para poblar el catálogo de productos a partir de
// un CSV exportado de un POS legado (codificado en ISO-8859-1).
//
// Formato esperado del CSV (con cabecera): name;sku;quantity;price
//
// Uso: go run ./cmd/seed [ruta/productos.csv]
// Por defecto busca productos.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_products.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func main() {
	csvPath := "productos.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los POS legados exportan en ISO-8859-1; decodificamos a UTF-8 al vuelo.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 4

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}
	if len(records) > 0 && strings.EqualFold(records[0][0], "name") {
		records = records[1:] // saltar cabecera
	}

	type product struct {
		name, sku, quantity string
		price               decimal.Decimal
	}
	var products []product
	for _, rec := range records {
		name := strings.TrimSpace(rec[0])
		sku := strings.TrimSpace(rec[1])
		if name == "" || sku == "" {
			continue
		}
		price, err := decimal.NewFromString(strings.TrimSpace(rec[3]))
		if err != nil || price.IsNegative() {
			fmt.Fprintf(os.Stderr, "Precio inválido para %s, fila omitida\n", sku)
			continue
		}
		products = append(products, product{
			name:     name,
			sku:      sku,
			quantity: strings.TrimSpace(rec[2]),
			price:    price,
		})
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_products.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo inicial de productos\n")
	out.WriteString("-- Generado desde " + filepath.Base(csvPath) + "\n\n")
	for _, p := range products {
		fmt.Fprintf(out,
			"INSERT INTO products (id, name, sku, quantity, price)\nVALUES ('%s', '%s', '%s', %s, %s)\nON CONFLICT (sku) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price;\n",
			uuid.New().String(), escapeSQL(p.name), escapeSQL(p.sku), p.quantity, p.price.StringFixed(2),
		)
	}

	fmt.Printf("Generado %s: %d productos\n", outPath, len(products))
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
