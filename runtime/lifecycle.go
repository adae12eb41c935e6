package runtime

import "github.com/vcrobe/signspeech/console"

// runHook invokes one lifecycle hook of the component mounted under key.
// With recoverPanics set a panic is logged and swallowed. Otherwise it is
// logged with the hook and key, then re-raised so it fails fast.
func runHook(hook, key string, recoverPanics bool, fn func()) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		if recoverPanics {
			console.Error("ERROR:", hook, "panic in component", key, rec)
			return
		}
		console.Error("PANIC:", hook, "in component", key, rec)
		panic(rec)
	}()
	fn()
}
