package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Erros de domínio (sem dependências externas).
var (
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o email já está registrado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
)

// ValidationError indica campos obrigatórios ausentes ou inválidos.
// Sempre recuperável: o caller corrige a entrada e tenta de novo.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "campos inválidos ou ausentes: " + strings.Join(e.Fields, ", ")
}

// NewValidationError cria um ValidationError com os campos indicados.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// InsufficientStockError indica saldo insuficiente para um movimento de saída.
type InsufficientStockError struct {
	Available int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente: disponível %d, solicitado %d", e.Available, e.Requested)
}

// NotFoundError indica referência a uma entidade inexistente (provavelmente obsoleta no caller).
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s não encontrado: %s", e.Entity, e.ID)
}

// InvalidStateError indica uma transição de estado não permitida.
type InvalidStateError struct {
	Current   string
	Attempted string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("transição de estado inválida: %q -> %q", e.Current, e.Attempted)
}

// PersistenceError envolve falhas do colaborador de persistência.
// Retry seguro apenas quando o caller puder confirmar que não houve escrita parcial.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistência (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
