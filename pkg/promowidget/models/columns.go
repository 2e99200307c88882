package models

// Canonical (lowercase) keys of the columns that drive rendering.
const (
	ColProductName  = "product name"
	ColItemNumber   = "item number"
	ColDescription  = "product description"
	ColBrandName    = "brand name"
	ColBrandLogoURL = "brand logo url"
	ColPromoText    = "special promo text"
	ColMSRP         = "msrp"
	ColMAP          = "map"
	ColDealerPrice  = "dealer price"
	ColElitePrice   = "elite dealer price"
	ColImageURL     = "image url"
	ColProductURL   = "product url"
	ColFlashSale    = "flash sale"
	ColFlashStart   = "flash start date"
	ColFlashEnd     = "flash end date"
	ColFlashBadge   = "flash badge text"
)

// ExpectedColumns is the default header set a sheet is matched against.
var ExpectedColumns = []string{
	"Product name",
	"Item number",
	"Product description",
	"Brand Name",
	"Brand Logo URL",
	"Special Promo Text",
	"MSRP",
	"MAP",
	"Dealer Price",
	"Elite Dealer Price",
	"Image URL",
	"Product URL",
}

// FlashColumns are the optional flash-sale columns.
var FlashColumns = []string{
	"Flash Sale",
	"Flash Start Date",
	"Flash End Date",
	"Flash Badge Text",
}
