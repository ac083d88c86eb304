// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

import (
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/jitata-seed/internal/platform/constants"
	"github.com/taibuivan/jitata-seed/internal/platform/middleware"
	requestutil "github.com/taibuivan/jitata-seed/internal/platform/request"
	"github.com/taibuivan/jitata-seed/internal/platform/respond"
	"github.com/taibuivan/jitata-seed/internal/store"
	"github.com/taibuivan/jitata-seed/pkg/convert"
)

type Handler struct {
	service     *Service
	collections []string
}

func NewHandler(service *Service, collections []string) *Handler {
	return &Handler{service: service, collections: collections}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/{collection}", handler.listDocuments)
	router.With(middleware.RequireWrite()).Post("/{collection}", handler.insertDocument)
}

func (handler *Handler) listDocuments(writer http.ResponseWriter, request *http.Request) {
	collection, err := handler.collection(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	query := request.URL.Query()
	page := store.Page{
		Limit:  max(convert.ToIntD(query.Get("limit"), 0), 0),
		Offset: max(convert.ToIntD(query.Get("offset"), 0), 0),
	}

	docs, err := handler.service.List(request.Context(), collection, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, docs)
}

func (handler *Handler) insertDocument(writer http.ResponseWriter, request *http.Request) {
	collection, err := handler.collection(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	object, err := requestutil.DecodeObject(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := handler.service.Insert(request.Context(), collection, object)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// return=minimal is the only representation served.
	writer.Header().Set("Preference-Applied", constants.PreferReturnMinimal)
	writer.Header().Set("Location", constants.RESTPrefix+"/"+collection+"?id=eq."+id)
	respond.Created(writer)
}

func (handler *Handler) collection(request *http.Request) (string, error) {
	name := requestutil.Param(request, "collection")
	if !slices.Contains(handler.collections, name) {
		return "", store.ErrUnknownCollection
	}
	return name, nil
}
