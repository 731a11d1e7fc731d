package dashboard

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-finance-api/internal/domain"
	errorcodes "github.com/vfg2006/store-finance-api/pkg/apiErrors"
)

func errMissingData(details string) *domain.OperationError {
	return domain.NewOperationError(domain.ErrMissingRequiredData, errorcodes.ErrMissingRequiredData, details)
}

func errInvalidFormat(details string) *domain.OperationError {
	return domain.NewOperationError(domain.ErrInvalidFormat, errorcodes.ErrInvalidFormat, details)
}

func errForbiddenStore(storeID string) *domain.OperationError {
	return domain.NewEntityError(domain.ErrForbiddenStore, errorcodes.ErrForbiddenStore, storeID,
		"Usuário não tem acesso a esta loja")
}

func errNotFound(id, details string) *domain.OperationError {
	return domain.NewEntityError(domain.ErrNotFound, errorcodes.ErrResourceNotFound, id, details)
}

// errFetch indica que uma das leituras paralelas falhou e nada foi agregado
func errFetch(err error, details string) *domain.OperationError {
	logrus.WithError(err).Error(details)
	return domain.NewOperationError(domain.ErrFetchFailed, errorcodes.ErrFetchFailed, details)
}
