package feed

import "github.com/Veraticus/txnview/internal/model"

// DeriveDisplay picks the transactions to show. The per-employee list wins
// when both are present; nil means nothing has loaded yet.
func DeriveDisplay(paginated, byEmployee []model.Transaction) []model.Transaction {
	if byEmployee != nil {
		return byEmployee
	}
	if paginated != nil {
		return paginated
	}
	return nil
}
