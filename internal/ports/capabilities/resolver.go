package capabilities

import "context"

// Capabilities que el plan de un usuario puede habilitar.
const (
	CapPetsDating    = "pets:dating"
	CapPetsUnlimited = "pets:unlimited"
	CapBioGenerate   = "bio:generate"
)

type CapabilityCheck struct {
	UserID     string
	Capability string
}

type CapabilitiesResolver interface {
	HasFeature(ctx context.Context, in CapabilityCheck) (bool, error)
}
