// Package inject provides field-injection helpers on top of a registry.
//
// Each helper resolves its service from the registry it was given, or from
// registry.Default when that is nil. A missing service is treated as a
// programming error: the helpers panic with a *LocateError instead of
// returning an error, on the premise that required services are registered
// during startup.
//
//	type Handler struct {
//	    db    inject.Inject[*Database]
//	    cache *inject.Lazy[Cache]
//	}
//
//	h := &Handler{
//	    db:    inject.New[*Database](nil),
//	    cache: inject.NewLazy[Cache](nil),
//	}
//
// Weak and Unowned keep a non-owning reference to a shared instance and
// notice when the registry no longer holds it.
package inject
