package health

// Controllers agrupa todos los controllers de health.
type Controllers struct {
	Health *HealthController
}

// NewControllers crea el agregador de controllers health.
func NewControllers() *Controllers {
	return &Controllers{
		Health: NewHealthController(),
	}
}
