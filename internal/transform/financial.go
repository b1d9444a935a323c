package transform

import (
	"github.com/guttosm/idxboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// financialField binds a stored statement field to its place in FinancialSummary.
type financialField struct {
	key     string   // canonical PascalCase name in the store
	aliases []string // known misspellings
	dst     func(*models.FinancialSummary) *float64
}

// financialFields is the store-to-entity rename table. Each key is also
// matched in lowerCamel and snake_case.
var financialFields = []financialField{
	{key: "Revenue", dst: func(s *models.FinancialSummary) *float64 { return &s.Revenue }},
	{key: "GrossProfit", dst: func(s *models.FinancialSummary) *float64 { return &s.GrossProfit }},
	{key: "OperatingProfit", dst: func(s *models.FinancialSummary) *float64 { return &s.OperatingProfit }},
	{key: "NetProfit", dst: func(s *models.FinancialSummary) *float64 { return &s.NetProfit }},
	{key: "Cash", dst: func(s *models.FinancialSummary) *float64 { return &s.Cash }},
	{key: "TotalAssets", dst: func(s *models.FinancialSummary) *float64 { return &s.TotalAssets }},
	{key: "TotalLiabilities", dst: func(s *models.FinancialSummary) *float64 { return &s.TotalLiabilities }},
	{key: "ShortTermBorrowing", dst: func(s *models.FinancialSummary) *float64 { return &s.ShortTermBorrowing }},
	{key: "LongTermBorrowing", dst: func(s *models.FinancialSummary) *float64 { return &s.LongTermBorrowing }},
	{key: "TotalEquity", dst: func(s *models.FinancialSummary) *float64 { return &s.TotalEquity }},
	{key: "CashFromOperating", aliases: []string{"CashFromOperatin"}, dst: func(s *models.FinancialSummary) *float64 { return &s.CashFromOperating }},
	{key: "CashFromInvesting", dst: func(s *models.FinancialSummary) *float64 { return &s.CashFromInvesting }},
	{key: "CashFromFinancing", dst: func(s *models.FinancialSummary) *float64 { return &s.CashFromFinancing }},
}

// Summary shapes a stored financial statement. Absent numeric fields are 0 and
// an absent currency is IDR.
func Summary(doc bson.M) models.FinancialSummary {
	s := models.FinancialSummary{
		Emitten:  String(doc, "", "emitten", "Emitten"),
		Year:     Int(doc, "year", "Year"),
		Period:   String(doc, "", "period", "Period"),
		Currency: String(doc, models.DefaultCurrency, "Currency", "currency"),
	}
	for _, f := range financialFields {
		keys := append(variants(f.key), f.aliases...)
		*f.dst(&s) = Float(doc, keys...)
	}
	return s
}
