package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/usuarios/register", h.register)
		r.Post("/api/usuarios/login", h.login)

		r.Get("/api/posts", h.listPosts)
		r.Get("/api/posts/explore", h.listPosts)

		r.Get("/images/{name}", h.serveImage)
	})

	// routes behind JWT authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/posts/feed", h.feed)
		r.Get("/api/posts/usuario/{id}", h.userPosts)
		r.Get("/api/posts/{id}", h.getPost)

		r.Post("/api/posts", h.createPost)
		r.Post("/api/posts/upload", h.upload)

		r.Delete("/api/posts/{id}", h.deletePost)
	})

	router.MethodNotAllowed(hideUnsupportedMethod)

	return router
}
