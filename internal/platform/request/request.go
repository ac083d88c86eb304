// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and the body
decoding pattern, ensuring consistent error handling.
*/
package requestutil

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/jitata-seed/internal/platform/apperr"
	"github.com/taibuivan/jitata-seed/internal/platform/constants"
	"github.com/taibuivan/jitata-seed/internal/platform/ctxutil"
	"github.com/taibuivan/jitata-seed/internal/platform/sec"
	"github.com/taibuivan/jitata-seed/internal/platform/validate"
)

/*
DecodeObject reads the request body as a single JSON object.

Returns:
  - map[string]json.RawMessage: top-level members of the object
  - error: validate.ErrInvalidJSON if the body is not one JSON object
*/
func DecodeObject(request *http.Request) (map[string]json.RawMessage, error) {
	body := io.LimitReader(request.Body, constants.MaxBodyBytes)

	var object map[string]json.RawMessage
	if err := json.NewDecoder(body).Decode(&object); err != nil || object == nil {
		return nil, validate.ErrInvalidJSON
	}
	return object, nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
RequiredClaims ensures the request carries verified token claims.

Returns:
  - *sec.Claims: The verified claims
  - error: apperr.Unauthorized if the request is anonymous
*/
func RequiredClaims(request *http.Request) (*sec.Claims, error) {
	claims := ctxutil.GetClaims(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}
