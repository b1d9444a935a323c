package models

// DefaultCurrency is reported when a financial document carries no currency.
const DefaultCurrency = "IDR"

// FinancialSummary is one issuer's statement for one reporting period.
// Every numeric field is present and 0 when the source document lacks it.
//
// swagger:model FinancialSummary
type FinancialSummary struct {
	Emitten            string  `json:"emitten" example:"AALI"`
	Year               int     `json:"year" example:"2024"`
	Period             string  `json:"period" example:"FY"`
	Revenue            float64 `json:"revenue"`
	GrossProfit        float64 `json:"grossProfit"`
	OperatingProfit    float64 `json:"operatingProfit"`
	NetProfit          float64 `json:"netProfit"`
	Cash               float64 `json:"cash"`
	TotalAssets        float64 `json:"totalAssets"`
	TotalLiabilities   float64 `json:"totalLiabilities"`
	ShortTermBorrowing float64 `json:"shortTermBorrowing"`
	LongTermBorrowing  float64 `json:"longTermBorrowing"`
	TotalEquity        float64 `json:"totalEquity"`
	CashFromOperating  float64 `json:"cashFromOperating"`
	CashFromInvesting  float64 `json:"cashFromInvesting"`
	CashFromFinancing  float64 `json:"cashFromFinancing"`
	Currency           string  `json:"currency" example:"IDR"`
}
