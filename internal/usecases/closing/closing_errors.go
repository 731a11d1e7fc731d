package closing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-finance-api/internal/domain"
	errorcodes "github.com/vfg2006/store-finance-api/pkg/apiErrors"
)

func errMissingData(details string) *domain.OperationError {
	return domain.NewOperationError(domain.ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, details)
}

func errInvalidStatus(status domain.CashClosingStatus) *domain.OperationError {
	return domain.NewOperationError(domain.ErrInvalidStatus, errorcodes.ErrInvalidStatus,
		"Status de fechamento inválido: "+string(status))
}

func errForbiddenStore(storeID string) *domain.OperationError {
	return domain.NewEntityError(domain.ErrForbiddenStore, errorcodes.ErrForbiddenStore, storeID,
		"Usuário não pode alterar fechamentos desta loja")
}

func errNotFound(id, details string) *domain.OperationError {
	return domain.NewEntityError(domain.ErrNotFound, errorcodes.ErrResourceNotFound, id, details)
}

// errDatabase registra o erro original e devolve um erro sem detalhes do banco
func errDatabase(err error, details string) *domain.OperationError {
	logrus.WithError(err).Error(details)
	return domain.NewOperationError(domain.ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, details)
}
