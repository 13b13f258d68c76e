package domain

// ReturnRecord guarda uma linha de returns.csv sem tipagem; nenhum cálculo a utiliza
type ReturnRecord struct {
	Values map[string]string `json:"values"`
}
