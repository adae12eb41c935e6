//go:build (js || wasm) && dev
// +build js wasm
// +build dev

package runtime

// In dev builds lifecycle panics are logged with the component key and then
// propagate, so a broken component stops the app where it failed.

func (r *RendererImpl) callOnInit(initializer Initializer, key string) {
	runHook("OnInit", key, false, initializer.OnInit)
}

func (r *RendererImpl) callOnParametersSet(receiver ParameterReceiver, key string) {
	runHook("OnParametersSet", key, false, receiver.OnParametersSet)
}

func (r *RendererImpl) callOnDestroy(cleaner Cleaner, key string) {
	runHook("OnDestroy", key, false, cleaner.OnDestroy)
}
