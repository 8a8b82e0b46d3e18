// Package compute provides the host-facing entry point surface of the library.
//
// An Engine owns an arena of float32 buffers and exposes the numeric
// operations as named entry points, mirroring the way a host runtime drives a
// sandboxed module: allocate a buffer, write a series into it, invoke an
// entry point with handles and an element count, read the result back, and
// release what is no longer needed.
//
//	eng := compute.New(nil)
//	in, _ := eng.Alloc(len(values))
//	out, _ := eng.Alloc(len(values))
//	defer eng.Release(in)
//	defer eng.Release(out)
//
//	eng.Write(in, values)
//	if err := eng.Call("acf", in, out, len(values)); err != nil {
//	    return err
//	}
//	acf, _ := eng.Read(out)
//
// Typed methods (LinearDetrend, ACF, PACF, BoxCox, ARMAFitAuto, ARMAFitFixed)
// are available alongside the string-dispatched Call for hosts that resolve
// entry points by symbol name.
//
// Buffers hold 32-bit floats, the cross-boundary exchange format, while
// computation runs in float64 internally; the engine widens on the way in
// and narrows on the way out.
//
// The arma_fit_fixed symbol takes a byte length rather than an element
// count, preserved from the original export table; ARMAFitFixed takes an
// element count directly.
//
// # Concurrency
//
// Operations are synchronous and run to completion; the engine holds no
// state between calls other than arena contents. One engine instance must
// not be called concurrently. Independent instances are fully isolated and
// may run in parallel, one per worker.
package compute
