package types

type MarketPrice struct {
	Crop   string `json:"crop"`
	Price  string `json:"price"`
	Unit   string `json:"unit"`
	Change string `json:"change"`
	Market string `json:"market,omitempty"`
}

type MarketReport struct {
	Prices      []MarketPrice `json:"prices"`
	LastUpdated string        `json:"lastUpdated"`
	Source      string        `json:"source"`
	State       string        `json:"state,omitempty"`
}

type CropAdvisory struct {
	Recommendations []string `json:"recommendations"`
	Season          string   `json:"season"`
}
