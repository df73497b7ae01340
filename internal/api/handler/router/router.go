package router

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

var (
	WithRoutes = func(routes ...Route) ConfigRouter {
		return func(router *Router) {
			router.AddRoutes(routes...)
		}
	}
)

type Route struct {
	Path        string
	Method      string
	Handler     http.Handler
	Middlewares []func(http.Handler) http.Handler // Middlewares específicos da rota, aplicados na ordem declarada
}

type Router struct {
	router     *httprouter.Router
	registered []string
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) *Router {
	router := &Router{
		router: httprouter.New(),
	}

	// 404 e 405 seguem o mesmo envelope de erro das demais rotas
	router.router.HandleMethodNotAllowed = true

	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// NotFound define o handler usado quando nenhuma rota corresponde
func (r *Router) NotFound(handler http.Handler) {
	r.router.NotFound = handler
}

// MethodNotAllowed define o handler usado quando o método não é aceito pela rota
func (r *Router) MethodNotAllowed(handler http.Handler) {
	r.router.MethodNotAllowed = handler
}

// AddRoutes adiciona rotas ao router com seus middlewares específicos
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		var handler http.Handler = route.Handler

		for i := len(route.Middlewares) - 1; i >= 0; i-- {
			handler = route.Middlewares[i](handler)
		}

		r.router.Handler(route.Method, route.Path, handler)
		r.registered = append(r.registered, route.Method+" "+route.Path)
	}
}

// Routes lista as rotas registradas no formato "MÉTODO /caminho"
func (r *Router) Routes() []string {
	out := make([]string, len(r.registered))
	copy(out, r.registered)
	return out
}
