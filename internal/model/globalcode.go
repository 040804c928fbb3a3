package model

// GlobalCategoryCode is one entry of the fixed legacy category table.
// The table is compiled in, immutable, and exists to support transactions
// created before user-defined categories existed.
type GlobalCategoryCode struct {
	Name  string
	Label string
	Type  CategoryType
	Color string
}

// GlobalCategoryCodes returns the fixed legacy code table. Callers pass it
// explicitly into the catalog; it is never consulted as ambient state.
func GlobalCategoryCodes() []GlobalCategoryCode {
	return []GlobalCategoryCode{
		{Name: "FOOD", Label: "Alimentação", Type: CategoryTypeExpense, Color: "#FF6961"},
		{Name: "TRANSPORT", Label: "Transporte", Type: CategoryTypeExpense, Color: "#59ADF6"},
		{Name: "HEALTH", Label: "Saúde", Type: CategoryTypeExpense, Color: "#42D6A4"},
		{Name: "EDUCATION", Label: "Educação", Type: CategoryTypeExpense, Color: "#9D94FF"},
		{Name: "LEISURE", Label: "Lazer", Type: CategoryTypeExpense, Color: "#FFB480"},
		{Name: "SHOPPING", Label: "Compras", Type: CategoryTypeExpense, Color: "#F8C8DC"},
		{Name: "BILLS", Label: "Contas", Type: CategoryTypeExpense, Color: "#C780E8"},
		{Name: "SALARY", Label: "Salário", Type: CategoryTypeIncome, Color: "#08CAD1"},
		{Name: "INVESTMENT", Label: "Investimentos", Type: CategoryTypeIncome, Color: "#FFDF6B"},
		{Name: "OTHER", Label: "Outros", Type: CategoryTypeExpense, Color: "#9E9E9E"},
	}
}
