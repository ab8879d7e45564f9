package router

import (
	"net/http"
	"sort"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/orders-backoffice-api/pkg/apiErrors"
)

// WithRoutes registra um grupo de rotas no router
func WithRoutes(routes ...Route) ConfigRouter {
	return func(router *Router) {
		router.AddRoutes(routes...)
	}
}

type Route struct {
	Path    string
	Method  string
	Handler http.Handler
}

// Router encapsula o httprouter respondendo 404/405 no formato de erro da API
type Router struct {
	router *httprouter.Router
	routes []string
}

type ConfigRouter func(router *Router)

func New(configs ...ConfigRouter) *Router {
	hr := httprouter.New()
	hr.NotFound = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", map[string]string{"path": r.URL.Path})
	})
	hr.MethodNotAllowed = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não suportado", map[string]string{
			"method": r.Method,
			"allow":  w.Header().Get("Allow"),
		})
	})

	router := &Router{router: hr}
	for _, config := range configs {
		config(router)
	}

	return router
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}

// AddRoutes registra as rotas; conflitos de caminho fazem o httprouter entrar em pânico na inicialização
func (r *Router) AddRoutes(routes ...Route) {
	for _, route := range routes {
		r.router.Handler(route.Method, route.Path, route.Handler)
		r.routes = append(r.routes, route.Method+" "+route.Path)
	}
}

// Routes lista as rotas registradas no formato "MÉTODO caminho", em ordem alfabética
func (r *Router) Routes() []string {
	routes := append([]string(nil), r.routes...)
	sort.Strings(routes)
	return routes
}
