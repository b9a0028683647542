package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/patrickmn/go-cache"
)

type cachedResponse struct {
	status  int
	headers http.Header
	body    []byte
}

type bodyCacheWriter struct {
	http.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (w *bodyCacheWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCacheWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Cache кэширует успешные ответы GET-запросов в памяти. Ключом служит полный
// RequestURI, так что разные наборы query-параметров кэшируются раздельно.
// Мутации расписания переживают кэш не дольше duration.
func Cache(store *cache.Cache, duration time.Duration) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				return
			}

			key := r.RequestURI
			if resp, found := store.Get(key); found {
				cached := resp.(cachedResponse)
				for k, v := range cached.headers {
					w.Header()[k] = v
				}
				w.WriteHeader(cached.status)
				w.Write(cached.body)
				return
			}

			bcw := &bodyCacheWriter{
				ResponseWriter: w,
				body:           bytes.NewBuffer(nil),
				status:         http.StatusOK,
			}
			next.ServeHTTP(bcw, r)

			// Кэшируем только успешные ответы
			if bcw.status >= 200 && bcw.status < 300 {
				store.Set(key, cachedResponse{
					status:  bcw.status,
					headers: bcw.Header().Clone(),
					body:    bcw.body.Bytes(),
				}, duration)
			}
		})
	}
}
