package entity

// TradeRecord is one row of the pre-processed SIPRI trade register:
// a single weapons transfer from a supplier country to Ukraine.
type TradeRecord struct {
	Supplier          string  `json:"supplier"`
	DeliveryYearStart int     `json:"delivery_year_start"`
	DeliveryYearEnd   int     `json:"delivery_year_end"`
	WeaponDesignation string  `json:"weapon_designation"`
	WeaponCategory    string  `json:"weapon_category"`
	Company           string  `json:"company"`
	CountryOfOrigin   string  `json:"country_of_origin"`
	TIVDelivered      float64 `json:"sipri_tiv_delivered"`
	DeliveryNumber    int64   `json:"delivery_number"`
	SupplierCapital   string  `json:"supplier_capital"`
	CapitalLat        float64 `json:"capital_lat"`
	CapitalLon        float64 `json:"capital_lon"`
}

// ImporterRank is one row of the importer-rank table: Ukraine's global
// arms-import ranking and share for a fixed period label.
type ImporterRank struct {
	Period string  `json:"period"`
	Rank   int     `json:"rank"`
	Share  float64 `json:"share_of_global_arms_imports"`
}

// RecordRow is the fixed column projection of a TradeRecord handed to
// table rendering and exports.
type RecordRow struct {
	Supplier          string  `json:"supplier"`
	DeliveryYearStart int     `json:"delivery_year_start"`
	DeliveryYearEnd   int     `json:"delivery_year_end"`
	WeaponDesignation string  `json:"weapon_designation"`
	WeaponCategory    string  `json:"weapon_category"`
	Company           string  `json:"company"`
	CountryOfOrigin   string  `json:"country_of_origin"`
	TIVDelivered      float64 `json:"sipri_tiv_delivered"`
}

// Project returns the table projection of r.
func (r TradeRecord) Project() RecordRow {
	return RecordRow{
		Supplier:          r.Supplier,
		DeliveryYearStart: r.DeliveryYearStart,
		DeliveryYearEnd:   r.DeliveryYearEnd,
		WeaponDesignation: r.WeaponDesignation,
		WeaponCategory:    r.WeaponCategory,
		Company:           r.Company,
		CountryOfOrigin:   r.CountryOfOrigin,
		TIVDelivered:      r.TIVDelivered,
	}
}

// RecordColumns is the header order used by tables and CSV exports.
var RecordColumns = []string{
	"Supplier",
	"Delivery year start",
	"Delivery year end",
	"Weapon designation",
	"Weapon category",
	"Company",
	"Country of origin",
	"SIPRI TIV",
}
