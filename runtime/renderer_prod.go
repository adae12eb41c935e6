//go:build (js || wasm) && !dev
// +build js wasm
// +build !dev

package runtime

// In production builds lifecycle panics are recovered and logged so one
// broken component does not take the page down.

func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	runHook("OnInit", key, true, initializer.OnInit)
}

func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	runHook("OnParametersSet", key, true, receiver.OnParametersSet)
}

func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	runHook("OnDestroy", key, true, cleaner.OnDestroy)
}
