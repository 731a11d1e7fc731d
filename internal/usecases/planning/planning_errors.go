package planning

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-finance-api/internal/domain"
	errorcodes "github.com/vfg2006/store-finance-api/pkg/apiErrors"
)

func errInvalidFormat(details string) *domain.OperationError {
	return domain.NewOperationError(domain.ErrInvalidFormat, errorcodes.ErrInvalidFormat, details)
}

func errDatabase(err error, details string) *domain.OperationError {
	logrus.WithError(err).Error(details)
	return domain.NewOperationError(domain.ErrDatabaseOperation, errorcodes.ErrDatabaseOperation, details)
}
