package auditing

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

func errInvalidStatus(status domain.AuditStatus) *domain.OperationError {
	return domain.NewOperationError(domain.ErrInvalidStatus, errorcodes.ErrInvalidStatus,
		"Status de auditoria inválido: "+string(status))
}

func errForbiddenStore(storeID string) *domain.OperationError {
	return domain.NewEntityError(domain.ErrForbiddenStore, errorcodes.ErrForbiddenStore, storeID,
		"Usuário sem acesso às ocorrências desta loja")
}

func errNotFound(id, details string) *domain.OperationError {
	return domain.NewEntityError(domain.ErrNotFound, errorcodes.ErrResourceNotFound, id, details)
}

func errDatabase(err error, details string) *domain.OperationError {
	logrus.WithError(err).Error(details)
	return domain.NewOperationError(domain.ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, details)
}

func errInternal(err error, details string) *domain.OperationError {
	logrus.WithError(err).Error(details)
	return &domain.OperationError{Err: err, Code: errorcodes.ErrInternalServer, Details: details}
}
