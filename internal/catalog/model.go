package catalog

// The five fixed routine categories, in declared order.
const (
	CategoryCleanser    = "cleanser"
	CategoryToner       = "toner"
	CategorySerum       = "serum"
	CategoryMoisturizer = "moisturizer"
	CategorySunscreen   = "sunscreen"
)

// Categories lists every routine category in declared order.
var Categories = []string{
	CategoryCleanser,
	CategoryToner,
	CategorySerum,
	CategoryMoisturizer,
	CategorySunscreen,
}

// IsCategory reports whether name is one of the five routine categories.
func IsCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Product is a catalog entry. Suitability and functionality flags are stored as
// 0/1 integer columns; Ranking is computed per query and never persisted.
type Product struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Brand        string `json:"brand,omitempty"`
	Type         string `json:"type"`
	Safety       int    `json:"safety"`
	Oily         int    `json:"oily"`
	Dry          int    `json:"dry"`
	Sensitive    int    `json:"sensitive"`
	AcneFighting int    `json:"acneFighting"`
	AntiAging    int    `json:"antiAging"`
	Brightening  int    `json:"brightening"`
	UV           int    `json:"uv"`
	Comedogenic  int    `json:"comedogenic"`
	Ranking      int    `json:"ranking"`
}

// flagColumn returns the value of the named 0/1 flag column.
func (p Product) flagColumn(name string) int {
	switch name {
	case "oily":
		return p.Oily
	case "dry":
		return p.Dry
	case "sensitive":
		return p.Sensitive
	case "acne_fighting":
		return p.AcneFighting
	case "anti_aging":
		return p.AntiAging
	case "brightening":
		return p.Brightening
	case "uv":
		return p.UV
	case "comedogenic":
		return p.Comedogenic
	default:
		return 0
	}
}
