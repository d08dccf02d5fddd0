package invoice

// LineItem is one purchased-product row. All values are kept as free-text
// strings so locale punctuation survives until scoring-time normalization.
type LineItem struct {
	ProductSKU   string
	Quantity     string
	ProductName  string
	UnitPrice    string
	ProductTotal string
}

// Document is one invoice, either ground truth or prediction. Missing fields
// are empty strings, never absent, so every metric function stays total.
type Document struct {
	RetailerName  string
	StoreName     string
	StoreAddress  string
	BillID        string
	BillIDBarcode string
	BuyDate       string
	BuyTime       string
	LineItems     []LineItem
	RawText       string
}

// Scalar header field names, in report order.
const (
	FieldRetailerName  = "retailer_name"
	FieldStoreName     = "store_name"
	FieldStoreAddress  = "store_address"
	FieldBillID        = "bill_id"
	FieldBillIDBarcode = "bill_id_barcode"
	FieldBuyDate       = "buy_date"
	FieldBuyTime       = "buy_time"
)

// Line-item sub-field names, in report order.
const (
	ItemFieldSKU      = "product_SKU"
	ItemFieldQuantity = "quantity"
	ItemFieldName     = "product_name"
	ItemFieldPrice    = "unit_price"
	ItemFieldTotal    = "product_total"
)

// FieldNames lists the scalar header fields in report order.
func FieldNames() []string {
	return []string{
		FieldRetailerName,
		FieldStoreName,
		FieldStoreAddress,
		FieldBillID,
		FieldBillIDBarcode,
		FieldBuyDate,
		FieldBuyTime,
	}
}

// ItemFieldNames lists the line-item sub-fields in report order.
func ItemFieldNames() []string {
	return []string{
		ItemFieldSKU,
		ItemFieldQuantity,
		ItemFieldName,
		ItemFieldPrice,
		ItemFieldTotal,
	}
}

// Field returns the value of the named scalar header field, or "" for an
// unknown name.
func (d *Document) Field(name string) string {
	switch name {
	case FieldRetailerName:
		return d.RetailerName
	case FieldStoreName:
		return d.StoreName
	case FieldStoreAddress:
		return d.StoreAddress
	case FieldBillID:
		return d.BillID
	case FieldBillIDBarcode:
		return d.BillIDBarcode
	case FieldBuyDate:
		return d.BuyDate
	case FieldBuyTime:
		return d.BuyTime
	}
	return ""
}

// Field returns the value of the named sub-field, or "" for an unknown name.
func (li *LineItem) Field(name string) string {
	switch name {
	case ItemFieldSKU:
		return li.ProductSKU
	case ItemFieldQuantity:
		return li.Quantity
	case ItemFieldName:
		return li.ProductName
	case ItemFieldPrice:
		return li.UnitPrice
	case ItemFieldTotal:
		return li.ProductTotal
	}
	return ""
}
