package types

// ComponentMetadata defines the essential identifying information for components within the system.
// It includes identifiers and descriptive information to help manage and differentiate components dynamically.
type ComponentMetadata struct {
	ID   string // Unique identifier for the component.
	Type string // Type of the component, used to distinguish between different classes of components.
	Name string // Human-readable name for the component.
}

// Option defines a configuration option function applicable to any component T. This generic approach
// allows for flexible configuration mechanisms across different types of components.
type Option[T any] func(T)

// Channel models the medium between the transmitting and receiving side of a
// link. It receives the transmitted signal and returns what arrives at the
// receiver. The default channel is the identity function; alternatives exist
// so callers can interpose their own behavior between encode and decode.
type Channel func(Signal) Signal

// IdentityChannel returns the transmitted signal unchanged. It is the
// lossless medium every pipeline uses unless another channel is connected.
func IdentityChannel(s Signal) Signal { return s }
