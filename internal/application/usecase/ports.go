package usecase

import "time"

// IDGenerator fuente de identidad para productos y cotizaciones. Se inyecta:
// el núcleo de cálculo no genera identidad por sí mismo.
type IDGenerator interface {
	NewID() string
}

// Clock fuente de tiempo inyectada (timestamps de snapshots y consecutivos).
type Clock interface {
	Now() time.Time
}
