// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Madelineqt

package http

import (
	"encoding/json"
	"net/http"

	"github.com/Madelineqt/clontagram-servidor/internal/logger"
	"github.com/Madelineqt/clontagram-servidor/internal/utils"
	"github.com/Madelineqt/clontagram-servidor/models"
	"github.com/go-chi/chi/v5"
)

// listPosts serves both the public listing and the explore page: every post,
// newest first.
func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.ListPosts(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

// feed serves one page of the authenticated user's feed. The optional `fecha`
// query parameter is the pagination boundary; without it the page starts at
// the current time.
func (h *Handler) feed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	posts, err := h.services.PostService.GetFeed(ctx, userID, r.URL.Query().Get("fecha"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) userPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.PostService.GetPostsForUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	post, err := h.services.PostService.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}

// createPost persists a new post authored by the authenticated user. The
// author is always taken from the verified token, never from the body.
func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Error().Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSONBody)
		return
	}
	post.UserID = userID

	createdPost, err := h.services.PostService.CreatePost(ctx, post)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, createdPost, http.StatusCreated)
}

// deletePost removes a post on behalf of the authenticated user. Ownership is
// enforced by the service; a delete by anyone but the author is rejected.
func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, ErrNoUserInContext)
		return
	}

	deletedPost, err := h.services.PostService.DeletePost(ctx, userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, deletedPost, http.StatusOK)
}
