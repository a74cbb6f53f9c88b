// Package identity implementaciones por defecto de los puertos de identidad
// y tiempo de la capa de aplicación.
package identity

import (
	"time"

	"github.com/google/uuid"
)

// UUIDGenerator genera IDs aleatorios UUID v4.
type UUIDGenerator struct{}

// NewID retorna un UUID v4 en formato string.
func (UUIDGenerator) NewID() string {
	return uuid.New().String()
}

// SystemClock reloj del sistema.
type SystemClock struct{}

// Now retorna la hora actual.
func (SystemClock) Now() time.Time {
	return time.Now()
}
