package domain

import "errors"

// StatusTokenExpired código no estándar (498) con el que la capa HTTP responde
// cuando un access token está vencido, distinto del 401 de un token inválido.
const StatusTokenExpired = 498

// Error es el conjunto cerrado de fallos de aplicación: cada variante lleva el
// código HTTP y el mensaje visible para el cliente. El traductor central de la
// capa HTTP es el único punto que lo convierte en respuesta.
type Error struct {
	Status  int
	Message string
	Err     error // causa interna, solo para logs
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidation fallo de validación de entrada (422).
func NewValidation(msg string) *Error {
	return &Error{Status: 422, Message: msg}
}

// NewBadRequest entrada sintácticamente incorrecta (400).
func NewBadRequest(msg string) *Error {
	return &Error{Status: 400, Message: msg}
}

// NewNotFound recurso inexistente (404).
func NewNotFound(msg string) *Error {
	return &Error{Status: 404, Message: msg}
}

// NewUnauthorized sin credenciales o credenciales inválidas (401).
func NewUnauthorized(msg string) *Error {
	return &Error{Status: 401, Message: msg}
}

// NewTokenExpired access token vencido (498).
func NewTokenExpired(msg string) *Error {
	return &Error{Status: StatusTokenExpired, Message: msg}
}

// NewForbidden autenticado pero sin permisos (403).
func NewForbidden(msg string) *Error {
	return &Error{Status: 403, Message: msg}
}

// NewConflict conflicto con el estado actual, p. ej. email duplicado (409).
func NewConflict(msg string) *Error {
	return &Error{Status: 409, Message: msg}
}

// NewUpstream propaga tal cual el mensaje y el código HTTP reportados por la
// API externa de identidad.
func NewUpstream(status int, msg string) *Error {
	return &Error{Status: status, Message: msg}
}

// ErrDuplicate lo señalan los repositorios ante una violación de constraint
// único; los casos de uso lo traducen a NewConflict.
var ErrDuplicate = errors.New("recurso duplicado")

// ErrInUse lo señalan los repositorios cuando un borrado viola una llave
// foránea (el registro tiene dependientes); se traduce a NewConflict.
var ErrInUse = errors.New("recurso en uso")
