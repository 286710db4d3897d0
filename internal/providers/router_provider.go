package providers

import (
	"net/http"
	"portfolio/internal/structures"

	"github.com/gorilla/mux"
)

type RouterProviderInterface interface {
	Get(url string, handler http.Handler)
	Post(url string, handler http.Handler)
	Put(url string, handler http.Handler)
	Patch(url string, handler http.Handler)
	Delete(url string, handler http.Handler)
	GetRoutes() []structures.Route
	Router() *mux.Router
}

type RouterProvider struct {
	routes []structures.Route
}

func (rp *RouterProvider) add(method, url string, handler http.Handler) {
	rp.routes = append(rp.routes, structures.Route{
		Method:  method,
		Url:     url,
		Handler: handler,
	})
}

func (rp *RouterProvider) Get(url string, handler http.Handler) {
	rp.add(http.MethodGet, url, handler)
}

func (rp *RouterProvider) Post(url string, handler http.Handler) {
	rp.add(http.MethodPost, url, handler)
}

func (rp *RouterProvider) Put(url string, handler http.Handler) {
	rp.add(http.MethodPut, url, handler)
}

func (rp *RouterProvider) Patch(url string, handler http.Handler) {
	rp.add(http.MethodPatch, url, handler)
}

func (rp *RouterProvider) Delete(url string, handler http.Handler) {
	rp.add(http.MethodDelete, url, handler)
}

func (rp *RouterProvider) GetRoutes() []structures.Route {
	return rp.routes
}

// Router builds a gorilla/mux router from the registered routes. A path that
// exists with another method answers 405.
func (rp *RouterProvider) Router() *mux.Router {
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})
	for _, route := range rp.routes {
		r.Handle(route.Url, route.Handler).Methods(route.Method)
	}
	return r
}

func NewRouterProvider() RouterProviderInterface {
	return &RouterProvider{}
}
