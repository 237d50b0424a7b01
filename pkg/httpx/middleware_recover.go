package httpx

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/aussiebroadwan/pitchdeck/pkg/slogx"
)

// Recover turns a panicking handler into a 500 envelope. With exposeStack
// set, the panic value and stack are included in the response.
func Recover(exposeStack bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				stack := debug.Stack()
				slogx.FromContext(r.Context()).Error("panic recovered",
					"panic", fmt.Sprint(rec),
					"stack", string(stack),
				)
				WriteInternalError(w, fmt.Errorf("panic: %v\n%s", rec, stack), exposeStack)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
