package probe

import (
	"sync"

	"github.com/cigdemahmet27/commlink/pkg/internal/types"
)

func snapshotCallbacks[T any](mu *sync.Mutex, callbacks []T) []T {
	mu.Lock()
	out := append([]T(nil), callbacks...)
	mu.Unlock()
	return out
}

// RegisterOnEncode registers callbacks for the encode stage.
func (p *Probe) RegisterOnEncode(callback ...func(c types.ComponentMetadata, d types.SchemeDescriptor, input types.Signal, transmitted types.Signal)) {
	if len(callback) == 0 {
		return
	}

	p.callbackLock.Lock()
	p.OnEncode = append(p.OnEncode, callback...)
	p.callbackLock.Unlock()
}

// InvokeOnEncode invokes registered encode callbacks.
func (p *Probe) InvokeOnEncode(c types.ComponentMetadata, d types.SchemeDescriptor, input types.Signal, transmitted types.Signal) {
	for _, cb := range snapshotCallbacks(&p.callbackLock, p.OnEncode) {
		if cb == nil {
			continue
		}
		cb(c, d, input, transmitted)
	}
}

// RegisterOnDecode registers callbacks for the decode stage.
func (p *Probe) RegisterOnDecode(callback ...func(c types.ComponentMetadata, d types.SchemeDescriptor, received types.Signal, recovered types.Signal)) {
	if len(callback) == 0 {
		return
	}

	p.callbackLock.Lock()
	p.OnDecode = append(p.OnDecode, callback...)
	p.callbackLock.Unlock()
}

// InvokeOnDecode invokes registered decode callbacks.
func (p *Probe) InvokeOnDecode(c types.ComponentMetadata, d types.SchemeDescriptor, received types.Signal, recovered types.Signal) {
	for _, cb := range snapshotCallbacks(&p.callbackLock, p.OnDecode) {
		if cb == nil {
			continue
		}
		cb(c, d, received, recovered)
	}
}

// RegisterOnStateChange registers callbacks for state transitions.
func (p *Probe) RegisterOnStateChange(callback ...func(c types.ComponentMetadata, from types.TransmissionState, to types.TransmissionState)) {
	if len(callback) == 0 {
		return
	}

	p.callbackLock.Lock()
	p.OnStateChange = append(p.OnStateChange, callback...)
	p.callbackLock.Unlock()
}

// InvokeOnStateChange invokes registered state transition callbacks.
func (p *Probe) InvokeOnStateChange(c types.ComponentMetadata, from types.TransmissionState, to types.TransmissionState) {
	for _, cb := range snapshotCallbacks(&p.callbackLock, p.OnStateChange) {
		if cb == nil {
			continue
		}
		cb(c, from, to)
	}
}

// RegisterOnVerify registers callbacks for the end of a run.
func (p *Probe) RegisterOnVerify(callback ...func(c types.ComponentMetadata, result types.TransmissionResult)) {
	if len(callback) == 0 {
		return
	}

	p.callbackLock.Lock()
	p.OnVerify = append(p.OnVerify, callback...)
	p.callbackLock.Unlock()
}

// InvokeOnVerify invokes registered verification callbacks.
func (p *Probe) InvokeOnVerify(c types.ComponentMetadata, result types.TransmissionResult) {
	for _, cb := range snapshotCallbacks(&p.callbackLock, p.OnVerify) {
		if cb == nil {
			continue
		}
		cb(c, result)
	}
}

// RegisterOnError registers callbacks for stage errors.
func (p *Probe) RegisterOnError(callback ...func(c types.ComponentMetadata, err error)) {
	if len(callback) == 0 {
		return
	}

	p.callbackLock.Lock()
	p.OnError = append(p.OnError, callback...)
	p.callbackLock.Unlock()
}

// InvokeOnError invokes registered error callbacks.
func (p *Probe) InvokeOnError(c types.ComponentMetadata, err error) {
	for _, cb := range snapshotCallbacks(&p.callbackLock, p.OnError) {
		if cb == nil {
			continue
		}
		cb(c, err)
	}
}

// GetComponentMetadata returns the probe metadata.
func (p *Probe) GetComponentMetadata() types.ComponentMetadata {
	p.metadataLock.Lock()
	metadata := p.componentMetadata
	p.metadataLock.Unlock()
	return metadata
}

// SetComponentMetadata updates probe metadata values.
func (p *Probe) SetComponentMetadata(name string, id string) {
	p.metadataLock.Lock()
	p.componentMetadata = types.ComponentMetadata{Name: name, ID: id, Type: p.componentMetadata.Type}
	p.metadataLock.Unlock()
}
