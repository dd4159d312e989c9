package types

// SuggestRequest carries the raw suggestion form fields. Every field arrives
// as text; the suggestion service owns coercion and validation, so no
// binding rules are enforced here. An incomplete submission still yields a
// well-formed null response rather than a 400.
type SuggestRequest struct {
	IngredientsList string `json:"ingredientsList" form:"ingredientsList"`
	EquipmentList   string `json:"equipmentList" form:"equipmentList"`
	NumAdults       string `json:"numAdults" form:"numAdults"`
	NumChildren     string `json:"numChildren" form:"numChildren"`
	MealName        string `json:"mealName" form:"mealName"`
}

// SuggestResponse is the page contract: generatedOutput is null whenever no
// suggestion was produced, regardless of cause.
type SuggestResponse struct {
	GeneratedOutput *string `json:"generatedOutput"`
}

// CatalogResponse groups common item labels by kind for the form's
// checkbox toggles.
type CatalogResponse struct {
	Ingredients []string `json:"ingredients"`
	Equipment   []string `json:"equipment"`
}

// HealthResponse reports service and catalog-store status.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
