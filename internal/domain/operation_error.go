package domain

import (
	"database/sql"
	"errors"
	"fmt"
)

// Erros base das operações de escrita e leitura
var (
	ErrNotFound            = errors.New("registro não encontrado")
	ErrInvalidRequest      = errors.New("requisição inválida")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrInvalidFormat       = errors.New("formato de dados inválido")
	ErrInvalidStatus       = errors.New("status inválido")
	ErrForbiddenStore      = errors.New("usuário sem acesso à loja")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
	ErrFetchFailed         = errors.New("erro ao carregar dados do painel")
)

// OperationError é um erro com contexto adicional para as operações da API
type OperationError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	EntityID string // ID do registro envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *OperationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *OperationError) Unwrap() error {
	return e.Err
}

// NewOperationError cria um novo erro de operação
func NewOperationError(baseErr error, code string, details string) *OperationError {
	return &OperationError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewEntityError cria um novo erro de operação vinculado a um registro
func NewEntityError(baseErr error, code string, entityID string, details string) *OperationError {
	return &OperationError{
		Err:      baseErr,
		Code:     code,
		EntityID: entityID,
		Details:  details,
	}
}

// IsValidationError verifica se o erro foi causado por dados enviados pelo cliente
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrMissingRequiredData) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrInvalidStatus)
}

// IsNotFound indica se o erro representa um registro inexistente
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, sql.ErrNoRows)
}
