package types

type Product struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Currency string `json:"currency"`
	Image    string `json:"image"`
	Link     string `json:"link"`
	Rating   string `json:"rating"`
	Seller   string `json:"seller"`
	InStock  bool   `json:"inStock"`
}

// Treatment as emitted by the model, plus the product list attached during
// enrichment. SearchTerm stays in English regardless of the response language
// so product lookup keeps working.
type Treatment struct {
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	SearchTerm    string    `json:"searchTerm"`
	Priority      string    `json:"priority"`
	Effectiveness string    `json:"effectiveness"`
	Products      []Product `json:"products"`
}

type DiagnosisResult struct {
	Disease                   string      `json:"disease"`
	Description               string      `json:"description"`
	Confidence                int         `json:"confidence"`
	Accuracy                  int         `json:"accuracy"`
	Severity                  string      `json:"severity"`
	ImageFindings             []string    `json:"imageFindings"`
	FarmerObservationAnalysis string      `json:"farmerObservationAnalysis"`
	ContributingFactors       []string    `json:"contributingFactors"`
	Causes                    []string    `json:"causes"`
	Treatments                []Treatment `json:"treatments"`
	Prevention                []string    `json:"prevention"`
	Urgency                   string      `json:"urgency"`
	ExpectedOutcome           string      `json:"expectedOutcome"`
	RiskIfUntreated           string      `json:"riskIfUntreated"`
}

type CropGuess struct {
	Name       string `json:"name"`
	Confidence int    `json:"confidence"`
}

type CropIdentification struct {
	Crops        []CropGuess `json:"crops"`
	AnalysisNote string      `json:"analysisNote"`
}

// SelectedCrop is the crop the farmer picked from the identification step.
type SelectedCrop struct {
	Name       string `json:"name"`
	Confidence int    `json:"confidence,omitempty"`
}
