package models

import (
	"sort"
	"strings"
)

// Row is a normalized spreadsheet row. Recognized columns have typed
// fields; any other column is kept in Extra under its normalized key.
type Row struct {
	ProductName  Value
	ItemNumber   Value
	Description  Value
	BrandName    Value
	BrandLogoURL Value
	PromoText    Value
	MSRP         Value
	MAP          Value
	DealerPrice  Value
	ElitePrice   Value
	ImageURL     Value
	ProductURL   Value
	FlashSale    Value
	FlashStart   Value
	FlashEnd     Value
	FlashBadge   Value

	// Extra maps unrecognized normalized keys to their raw values.
	Extra map[string]Value
}

// NormalizeKey trims and lowercases a header cell into a row key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func (r *Row) field(key string) *Value {
	switch key {
	case ColProductName:
		return &r.ProductName
	case ColItemNumber:
		return &r.ItemNumber
	case ColDescription:
		return &r.Description
	case ColBrandName:
		return &r.BrandName
	case ColBrandLogoURL:
		return &r.BrandLogoURL
	case ColPromoText:
		return &r.PromoText
	case ColMSRP:
		return &r.MSRP
	case ColMAP:
		return &r.MAP
	case ColDealerPrice:
		return &r.DealerPrice
	case ColElitePrice:
		return &r.ElitePrice
	case ColImageURL:
		return &r.ImageURL
	case ColProductURL:
		return &r.ProductURL
	case ColFlashSale:
		return &r.FlashSale
	case ColFlashStart:
		return &r.FlashStart
	case ColFlashEnd:
		return &r.FlashEnd
	case ColFlashBadge:
		return &r.FlashBadge
	}
	return nil
}

// Set stores v under key. The key is normalized first.
func (r *Row) Set(key string, v Value) {
	key = NormalizeKey(key)
	if key == "" {
		return
	}
	if f := r.field(key); f != nil {
		*f = v
		return
	}
	if r.Extra == nil {
		r.Extra = make(map[string]Value)
	}
	r.Extra[key] = v
}

// Get returns the value stored under key, or an empty value.
func (r *Row) Get(key string) Value {
	key = NormalizeKey(key)
	if f := r.field(key); f != nil {
		return *f
	}
	return r.Extra[key]
}

// Has reports whether key holds a non-empty value.
func (r *Row) Has(key string) bool {
	return !r.Get(key).IsEmpty()
}

// Keys returns every key holding a non-empty value, sorted.
func (r *Row) Keys() []string {
	var keys []string
	for _, k := range recognizedKeys {
		if !r.field(k).IsEmpty() {
			keys = append(keys, k)
		}
	}
	for k, v := range r.Extra {
		if !v.IsEmpty() {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

var recognizedKeys = []string{
	ColProductName, ColItemNumber, ColDescription, ColBrandName, ColBrandLogoURL,
	ColPromoText, ColMSRP, ColMAP, ColDealerPrice, ColElitePrice, ColImageURL,
	ColProductURL, ColFlashSale, ColFlashStart, ColFlashEnd, ColFlashBadge,
}
