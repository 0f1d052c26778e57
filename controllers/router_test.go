package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/barinistanbul/storefront/auth"
	"github.com/barinistanbul/storefront/blobstore"
	"github.com/barinistanbul/storefront/cart"
	"github.com/barinistanbul/storefront/catalog"
	"github.com/barinistanbul/storefront/config"
	"github.com/barinistanbul/storefront/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	router *gin.Engine
	store  *catalog.Store
	images *blobstore.MemoryStore
	carts  *cart.Registry
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := catalog.New(catalog.Options{})
	guard, err := auth.NewPasswordGuard(config.AuthConfig{AdminPassword: "barin2026", JWTSecret: "test", AccessTTLMinutes: 10})
	require.NoError(t, err)
	token, ok := guard.Login("barin2026")
	require.True(t, ok)

	images := blobstore.NewMemoryStore("https://cdn.example.com")
	carts := cart.NewRegistry(0)

	router := NewRouter(Deps{
		Catalog:        store,
		Carts:          carts,
		Checkout:       cart.NewCheckout(store, false),
		Guard:          guard,
		Images:         images,
		ImageValidator: utils.NewImageValidator(1),
		ImageOptimizer: utils.ImageOptimizer{MaxDimension: 64},
		AllowedOrigins: []string{"https://barinistanbul.com"},
	})
	return &testServer{router: router, store: store, images: images, carts: carts, token: token}
}

func (s *testServer) do(t *testing.T, method, path string, body any, admin bool) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if admin {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}
