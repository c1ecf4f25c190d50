package router

import (
	"net/http"

	"github.com/ferdiebergado/goexpress"
)

type goexpressRouter struct {
	handler *goexpress.Router
}

var _ Router = (*goexpressRouter)(nil)

func NewGoexpressRouter() Router {
	return &goexpressRouter{
		handler: goexpress.New(),
	}
}

func (r *goexpressRouter) Get(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Get(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Post(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Post(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Put(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Put(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Patch(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Patch(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Delete(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Delete(pattern, handler, middlewares...)
}

func (r *goexpressRouter) Options(pattern string, handler http.HandlerFunc, middlewares ...Middleware) {
	r.handler.Options(pattern, handler, middlewares...)
}

func (r *goexpressRouter) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *goexpressRouter) Use(middleware Middleware) {
	r.handler.Use(middleware)
}

func (r *goexpressRouter) Group(prefix string, fn func(r Router), middlewares ...Middleware) {
	gr := goexpress.New()
	gr.SetPrefix(prefix)
	gr.SetMux(r.handler.Mux())

	mws := make([]Middleware, 0, len(r.handler.Middlewares())+len(middlewares))
	mws = append(mws, r.handler.Middlewares()...)
	mws = append(mws, middlewares...)
	gr.SetMiddlewares(mws)

	fn(&goexpressRouter{handler: gr})
}
