package invoice

import (
	"encoding/json"
	"strconv"
)

// Extraction output is loosely structured: models emit synonym keys and nulls.
// Each logical field resolves through an ordered candidate list; the first
// present, non-empty value wins.
var fieldKeys = map[string][]string{
	FieldRetailerName:  {"retailer_name"},
	FieldStoreName:     {"store_name"},
	FieldStoreAddress:  {"store_address"},
	FieldBillID:        {"bill_id"},
	FieldBillIDBarcode: {"bill_id_barcode"},
	FieldBuyDate:       {"buy_date"},
	FieldBuyTime:       {"buy_time"},
}

var itemKeys = map[string][]string{
	ItemFieldSKU:      {"product_SKU", "sku"},
	ItemFieldQuantity: {"quantity", "qty"},
	ItemFieldName:     {"product_name", "description", "name"},
	ItemFieldPrice:    {"unit_price", "price"},
	ItemFieldTotal:    {"product_total", "line_total", "total"},
}

var lineItemKeys = []string{"line_items", "line_item"}

// Parse canonicalizes raw extraction JSON into a Document. It never fails:
// malformed JSON or a non-object top level yields an all-empty document,
// which scoring then reports as a near-total mismatch. RawText always holds
// the input verbatim for whole-document text metrics.
func Parse(raw string) Document {
	doc := Document{RawText: raw}

	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return doc
	}

	doc.RetailerName = resolve(data, fieldKeys[FieldRetailerName])
	doc.StoreName = resolve(data, fieldKeys[FieldStoreName])
	doc.StoreAddress = resolve(data, fieldKeys[FieldStoreAddress])
	doc.BillID = resolve(data, fieldKeys[FieldBillID])
	doc.BillIDBarcode = resolve(data, fieldKeys[FieldBillIDBarcode])
	doc.BuyDate = resolve(data, fieldKeys[FieldBuyDate])
	doc.BuyTime = resolve(data, fieldKeys[FieldBuyTime])
	doc.LineItems = parseLineItems(data)

	return doc
}

func parseLineItems(data map[string]any) []LineItem {
	var rawItems []any
	for _, key := range lineItemKeys {
		if v, ok := data[key].([]any); ok && len(v) > 0 {
			rawItems = v
			break
		}
	}

	var items []LineItem
	for _, entry := range rawItems {
		obj, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		items = append(items, LineItem{
			ProductSKU:   resolve(obj, itemKeys[ItemFieldSKU]),
			Quantity:     resolve(obj, itemKeys[ItemFieldQuantity]),
			ProductName:  resolve(obj, itemKeys[ItemFieldName]),
			UnitPrice:    resolve(obj, itemKeys[ItemFieldPrice]),
			ProductTotal: resolve(obj, itemKeys[ItemFieldTotal]),
		})
	}
	return items
}

func resolve(data map[string]any, candidates []string) string {
	for _, key := range candidates {
		if s := coerce(data[key]); s != "" {
			return s
		}
	}
	return ""
}

// coerce turns a decoded JSON value into its string form. Null and absent
// values become "".
func coerce(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}
