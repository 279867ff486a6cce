package pipeline

import (
	"strings"

	"github.com/finwise-app/finwise/internal/domain"
)

// categoryRule pairs one taxonomy label with the keywords that select it.
type categoryRule struct {
	category domain.Category
	keywords []string
}

// categoryRules is the ordered keyword table shared by every bank profile.
// Rules are tested top to bottom and the first whose keyword set matches
// wins, so earlier categories take precedence when a description contains
// keywords from several.
var categoryRules = []categoryRule{
	{domain.CategoryInvestment, []string{"UPSTOX", "INDIAN CLEARING", "ZERODHA", "GROWW", "MUTUAL FUND", "STOCK", "TRADING", "INVESTMENT", "DEMAT", "CLEARING"}},
	{domain.CategoryCreditCard, []string{"CRED", "CREDIT CARD", "CC PAYMENT", "CARD PAYMENT"}},
	{domain.CategoryFoodDining, []string{"SWIGGY", "ZOMATO", "FOOD", "RESTAURANT", "CAFE", "PIZZA", "DOMINOS", "KFC", "MCDONALD", "BURGER"}},
	{domain.CategoryTransportation, []string{"UBER", "OLA", "METRO", "PETROL", "FUEL", "TRANSPORT", "CAB", "RAPIDO", "BPCL", "HP", "IOCL", "MUMBAI METRO"}},
	{domain.CategoryShopping, []string{"AMAZON", "FLIPKART", "SHOPPING", "MYNTRA", "AJIO", "MEESHO", "PAYTM MALL"}},
	{domain.CategoryEntertainment, []string{"NETFLIX", "SPOTIFY", "MOVIE", "BOOKMYSHOW", "PRIME", "HOTSTAR", "YOUTUBE", "DISNEY"}},
	{domain.CategoryUtilities, []string{"ELECTRICITY", "MOBILE", "RECHARGE", "BILL", "AIRTEL", "JIO", "VODAFONE", "BSNL"}},
	{domain.CategoryCashWithdrawal, []string{"ATM", "CASH", "WDL", "WITHDRAWAL"}},
	{domain.CategoryMoneyTransfer, []string{"TRANSFER", "NEFT", "IMPS", "UPI/DR", "UPI/CR"}},
	{domain.CategoryIncome, []string{"SALARY", "CREDIT INTEREST", "DIVIDEND", "NEFT INWARD", "RTGS"}},
	{domain.CategoryBankCharges, []string{"AMC", "CHARGES", "FEE", "PENALTY"}},
}

// Categorize classifies a raw transaction description into the taxonomy.
// Matching is case-insensitive keyword containment; a missing description
// is Other. Always runs on the raw narration, never on the cleaned display
// string.
func Categorize(description string) domain.Category {
	desc := strings.ToUpper(strings.TrimSpace(description))
	if desc == "" {
		return domain.CategoryOther
	}

	// Salary narrations are classified ahead of the table: "CREDIT" contains
	// the CRED keyword and NEFT is a transfer keyword, and both would claim
	// a "SALARY NEFT CREDIT" line before Income gets tested.
	if strings.Contains(desc, "SALARY") {
		return domain.CategoryIncome
	}

	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.category
			}
		}
	}
	return domain.CategoryOther
}

// NormalizeCategory maps a caller-supplied category label onto the taxonomy,
// case-insensitively. Returns false when the label is not a taxonomy entry.
func NormalizeCategory(label string) (domain.Category, bool) {
	trimmed := strings.TrimSpace(label)
	for _, c := range domain.Categories() {
		if strings.EqualFold(trimmed, string(c)) {
			return c, true
		}
	}
	return "", false
}
