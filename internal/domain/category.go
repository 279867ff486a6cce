package domain

// Category is one label from the fixed transaction taxonomy.
type Category string

const (
	CategoryInvestment     Category = "Investment"
	CategoryCreditCard     Category = "Credit Card"
	CategoryFoodDining     Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryUtilities      Category = "Utilities"
	CategoryCashWithdrawal Category = "Cash Withdrawal"
	CategoryMoneyTransfer  Category = "Money Transfer"
	CategoryIncome         Category = "Income"
	CategoryBankCharges    Category = "Bank Charges"
	CategoryOther          Category = "Other"
)

// Categories lists every taxonomy label in match-priority order, ending
// with the catch-all.
func Categories() []Category {
	return []Category{
		CategoryInvestment,
		CategoryCreditCard,
		CategoryFoodDining,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryCashWithdrawal,
		CategoryMoneyTransfer,
		CategoryIncome,
		CategoryBankCharges,
		CategoryOther,
	}
}
