package types

// Probe observes pipeline runs through registered callbacks. It is the
// attachment surface for anything that wants to watch a link without being
// part of it: plotting front ends, timing harnesses, test assertions.
// Callbacks run synchronously on the invoking goroutine in registration
// order.
type Probe interface {
	// ConnectLogger attaches one or more loggers to the probe so callback
	// activity can be traced alongside pipeline logs.
	ConnectLogger(...Logger)

	// NotifyLoggers sends a structured message to every attached logger.
	NotifyLoggers(level LogLevel, msg string, keysAndValues ...interface{})

	// GetComponentMetadata retrieves the probe's identifying metadata.
	GetComponentMetadata() ComponentMetadata

	// SetComponentMetadata overrides the probe's name and id.
	SetComponentMetadata(name string, id string)

	// RegisterOnEncode adds callbacks fired after a successful encode step
	// with the input and the transmitted signal.
	RegisterOnEncode(...func(c ComponentMetadata, d SchemeDescriptor, input Signal, transmitted Signal))

	// RegisterOnDecode adds callbacks fired after a successful decode step
	// with the channel signal and the recovered signal.
	RegisterOnDecode(...func(c ComponentMetadata, d SchemeDescriptor, received Signal, recovered Signal))

	// RegisterOnStateChange adds callbacks fired on every state transition.
	RegisterOnStateChange(...func(c ComponentMetadata, from TransmissionState, to TransmissionState))

	// RegisterOnVerify adds callbacks fired once per run with the final
	// result, whether verification passed or failed.
	RegisterOnVerify(...func(c ComponentMetadata, result TransmissionResult))

	// RegisterOnError adds callbacks fired when a stage returns an error.
	RegisterOnError(...func(c ComponentMetadata, err error))

	// InvokeOnEncode triggers the encode callbacks.
	InvokeOnEncode(c ComponentMetadata, d SchemeDescriptor, input Signal, transmitted Signal)

	// InvokeOnDecode triggers the decode callbacks.
	InvokeOnDecode(c ComponentMetadata, d SchemeDescriptor, received Signal, recovered Signal)

	// InvokeOnStateChange triggers the state transition callbacks.
	InvokeOnStateChange(c ComponentMetadata, from TransmissionState, to TransmissionState)

	// InvokeOnVerify triggers the verification callbacks.
	InvokeOnVerify(c ComponentMetadata, result TransmissionResult)

	// InvokeOnError triggers the error callbacks.
	InvokeOnError(c ComponentMetadata, err error)
}
