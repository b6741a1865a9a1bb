package service

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gopidist/pharma-pos-api/internal/domain/entity"
	"github.com/gopidist/pharma-pos-api/internal/domain/repository"
	"github.com/gopidist/pharma-pos-api/pkg/apperror"
	"github.com/gopidist/pharma-pos-api/pkg/match"
	"github.com/gopidist/pharma-pos-api/pkg/sheet"
)

// Field names a product attribute that a spreadsheet column can map to.
type Field string

const (
	FieldName         Field = "name"
	FieldBatch        Field = "batch"
	FieldExpiry       Field = "expiry"
	FieldHSN          Field = "hsn"
	FieldGST          Field = "gst"
	FieldMRP          Field = "mrp"
	FieldPurchaseRate Field = "purchase_rate"
	FieldSaleRate     Field = "sale_rate"
	FieldStock        Field = "stock"
	FieldManufacturer Field = "manufacturer"
)

// fieldKeywords lists the header spellings seen in distributor price lists.
// Order matters: the first keyword that resolves wins within each tier.
var fieldKeywords = map[Field][]string{
	FieldName:         {"Product Name", "Item Name", "Description", "Particulars", "Name"},
	FieldBatch:        {"Batch", "Lot", "Batch No"},
	FieldExpiry:       {"Expiry", "Exp Date", "Exp"},
	FieldHSN:          {"HSN", "HSN Code"},
	FieldGST:          {"GST", "Tax", "IGST", "Tax Rate"},
	FieldMRP:          {"MRP", "Maximum Retail Price"},
	FieldPurchaseRate: {"Purchase Rate", "PTS", "Cost", "Rate"},
	FieldSaleRate:     {"Sale Rate", "Selling Price", "PTR", "Rate"},
	FieldStock:        {"Stock", "Qty", "Quantity", "Balance", "Closing Stock"},
	FieldManufacturer: {"Mfg", "Company", "Manufacturer", "Brand"},
}

// fieldOrder fixes the resolution order within each tier so that ties for
// the same header resolve deterministically.
var fieldOrder = []Field{
	FieldName, FieldBatch, FieldExpiry, FieldHSN, FieldGST, FieldMRP,
	FieldPurchaseRate, FieldSaleRate, FieldStock, FieldManufacturer,
}

// levenshteinTolerance bounds the edit distance the fuzzy tier accepts.
const levenshteinTolerance = 3

// excelEpochOffset is the serial number of 1970-01-01 in Excel's 1900 date
// system.
const excelEpochOffset = 25569

// ImportService ingests product spreadsheets with arbitrary column layouts
type ImportService struct {
	productRepo repository.ProductRepository
}

// NewImportService creates a new import service
func NewImportService(productRepo repository.ProductRepository) *ImportService {
	return &ImportService{productRepo: productRepo}
}

type matchTier int

const (
	tierExact matchTier = iota
	tierSubstring
	tierFuzzy
)

// MapColumns resolves each product field to a spreadsheet header, trying
// normalized exact match first, then substring containment in either
// direction, then edit distance under the tolerance (closest header wins).
// Each tier runs for every field before the next tier starts, and each
// header is claimed at most once, so a fuzzy guess can never take a column
// away from a field whose keyword matches it outright. Fields with no
// acceptable header are absent from the result.
func MapColumns(headers []string) map[Field]string {
	mapped := make(map[Field]string)
	claimed := make(map[string]bool)
	for _, tier := range []matchTier{tierExact, tierSubstring, tierFuzzy} {
		for _, field := range fieldOrder {
			if _, done := mapped[field]; done {
				continue
			}
			if h, ok := findColumn(headers, fieldKeywords[field], claimed, tier); ok {
				mapped[field] = h
				claimed[h] = true
			}
		}
	}
	return mapped
}

func findColumn(headers []string, keywords []string, claimed map[string]bool, tier matchTier) (string, bool) {
	switch tier {
	case tierExact:
		for _, h := range headers {
			if claimed[h] {
				continue
			}
			nh := match.Normalize(h)
			for _, k := range keywords {
				if nh == match.Normalize(k) {
					return h, true
				}
			}
		}

	case tierSubstring:
		// Containment in either direction
		for _, h := range headers {
			if claimed[h] {
				continue
			}
			nh := match.Normalize(h)
			if nh == "" {
				continue
			}
			for _, k := range keywords {
				nk := match.Normalize(k)
				if strings.Contains(nh, nk) || strings.Contains(nk, nh) {
					return h, true
				}
			}
		}

	case tierFuzzy:
		// Closest header under the tolerance wins
		best := ""
		minDist := levenshteinTolerance
		for _, h := range headers {
			if claimed[h] {
				continue
			}
			nh := match.Normalize(h)
			for _, k := range keywords {
				if d := match.Levenshtein(nh, match.Normalize(k)); d < minDist {
					minDist = d
					best = h
				}
			}
		}
		return best, best != ""
	}
	return "", false
}

// ImportProducts decodes a spreadsheet, maps its columns once, converts
// every row best effort and bulk-inserts the result. Malformed cells fall
// back to defaults rather than failing the import; only an undecodable
// workbook is a hard error. Returns the number of products imported.
func (s *ImportService) ImportProducts(ctx context.Context, r io.Reader) (int, error) {
	headers, rows, err := sheet.Decode(r)
	if err != nil {
		return 0, apperror.NewBadRequestError("Could not read the uploaded spreadsheet")
	}
	if len(rows) == 0 {
		return 0, nil
	}

	columns := MapColumns(headers)
	products := make([]entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, convertRow(row, columns))
	}

	if err := s.productRepo.BulkInsert(ctx, products); err != nil {
		return 0, err
	}
	return len(products), nil
}

// convertRow builds a product from one spreadsheet row, substituting
// defaults for anything missing or unparseable.
func convertRow(row sheet.Row, columns map[Field]string) entity.Product {
	cell := func(f Field) string {
		col, ok := columns[f]
		if !ok {
			return ""
		}
		return strings.TrimSpace(row[col])
	}

	name := cell(FieldName)
	if name == "" {
		name = "Unknown Item"
	}

	batch := strings.ToUpper(cell(FieldBatch))
	if batch == "" {
		batch = "NA"
	}

	manufacturer := cell(FieldManufacturer)
	if manufacturer == "" {
		manufacturer = "Generic"
	}

	purchaseRate := parseNumber(cell(FieldPurchaseRate))
	saleRate := purchaseRate
	if _, ok := columns[FieldSaleRate]; ok {
		saleRate = parseNumber(cell(FieldSaleRate))
	}

	return entity.Product{
		Name:         name,
		Batch:        batch,
		Expiry:       parseExpiry(cell(FieldExpiry)),
		HSN:          cell(FieldHSN),
		GSTRate:      parseNumber(cell(FieldGST)),
		MRP:          parseNumber(cell(FieldMRP)),
		PurchaseRate: purchaseRate,
		SaleRate:     saleRate,
		Stock:        int(parseNumber(cell(FieldStock)).IntPart()),
		Manufacturer: manufacturer,
	}
}

// parseNumber extracts a decimal from a cell that may carry currency signs,
// commas or unit suffixes. Dots that are not the decimal point, like the
// one in "Rs.", are dropped along with everything else non-numeric.
// Anything unparseable is zero.
func parseNumber(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := strings.Trim(b.String(), ".")
	if i := strings.LastIndex(cleaned, "."); i >= 0 {
		cleaned = strings.ReplaceAll(cleaned[:i], ".", "") + cleaned[i:]
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseExpiry handles both Excel serial dates and common string formats.
// Unparseable or missing values default to today.
func parseExpiry(s string) time.Time {
	if s == "" {
		return today()
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		days := int(serial) - excelEpochOffset
		return time.Unix(0, 0).UTC().AddDate(0, 0, days)
	}

	layouts := []string{
		"2006-01-02",
		"02-01-2006",
		"02/01/2006",
		"01/2006",
		"Jan-06",
		"Jan 2006",
		"2006-01-02T15:04:05Z07:00",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return today()
}

func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
