package entity

// PaymentMethods is the single company-wide record of accepted payment methods.
type PaymentMethods struct {
	Multicaixa   bool `json:"multicaixa"`
	BankTransfer bool `json:"bankTransfer"`
	Cash         bool `json:"cash"`
}

type PaymentMethodsPatch struct {
	Multicaixa   *bool `json:"multicaixa"`
	BankTransfer *bool `json:"bankTransfer"`
	Cash         *bool `json:"cash"`
}

func (p PaymentMethodsPatch) Apply(m *PaymentMethods) {
	if p.Multicaixa != nil {
		m.Multicaixa = *p.Multicaixa
	}

	if p.BankTransfer != nil {
		m.BankTransfer = *p.BankTransfer
	}

	if p.Cash != nil {
		m.Cash = *p.Cash
	}
}
