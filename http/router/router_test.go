package router_test

import (
	"bytes"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/middleware"
	"github.com/xy-planning-network/signpost/http/router"
	"github.com/xy-planning-network/signpost/logger"
)

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, nil))

	return w
}

func TestHandleRoutes(t *testing.T) {
	// Arrange
	home := new(HomeController)
	r := router.New(signpost.Testing, nil)

	// Act
	r.HandleRoutes([]router.Route{
		{Path: "/", Method: http.MethodGet, Action: router.Bind(home, (*HomeController).Index)},
		{Path: "/home/details/{id:[0-9]+}", Method: http.MethodGet, Action: router.BindWith(home, (*HomeController).Details)},
		{Path: "/home/edit/{id}", Method: http.MethodGet, Action: router.BindWith(home, (*HomeController).Edit)},
		{Path: "/search", Method: http.MethodGet, Action: router.BindWith(home, (*HomeController).Search)},
		{
			Path:   "/products/{slug}",
			Method: http.MethodGet,
			Name:   "product-by-slug",
			Action: router.BindWith(ProductsController{Catalog: "hats"}, ProductsController.Show),
		},
		{
			Path:    "/about",
			Method:  http.MethodGet,
			Handler: func(w http.ResponseWriter, r *http.Request) { io.WriteString(w, "about") },
		},
	})

	// Assert
	tcs := []struct {
		name   string
		method string
		target string
		code   int
		body   string
	}{
		{"Bind", http.MethodGet, "/", http.StatusOK, "index"},
		{"BindWith-Struct", http.MethodGet, "/home/details/5", http.StatusOK, "details 5"},
		{"BindWith-Pointer", http.MethodGet, "/home/edit/7?mode=full", http.StatusOK, "edit 7 full"},
		{"BindWith-Map", http.MethodGet, "/search?q=hats", http.StatusOK, "search hats"},
		{"BindWith-Value-Receiver", http.MethodGet, "/products/red-hat", http.StatusOK, "hats red-hat"},
		{"Handler", http.MethodGet, "/about", http.StatusOK, "about"},
		{"Not-Validated", http.MethodGet, "/home/details/0", http.StatusBadRequest, http.StatusText(http.StatusBadRequest) + "\n"},
		{"Not-Decoded", http.MethodGet, "/home/edit/seven", http.StatusBadRequest, http.StatusText(http.StatusBadRequest) + "\n"},
		{"Not-Matched", http.MethodGet, "/home/details/abc", http.StatusNotFound, "404 page not found\n"},
		{"Wrong-Method", http.MethodPost, "/", http.StatusMethodNotAllowed, ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			w := serve(r, tc.method, tc.target)

			// Assert
			require.Equal(t, tc.code, w.Code)
			require.Equal(t, tc.body, w.Body.String())
		})
	}
}

func TestHandleRoutesPanics(t *testing.T) {
	home := new(HomeController)
	tcs := []struct {
		name   string
		routes []router.Route
	}{
		{"No-Handler", []router.Route{{Path: "/", Method: http.MethodGet}}},
		{
			"Handler-And-Action",
			[]router.Route{{
				Path:    "/",
				Method:  http.MethodGet,
				Handler: func(w http.ResponseWriter, r *http.Request) {},
				Action:  router.Bind(home, (*HomeController).Index),
			}},
		},
		{"Bad-Params", []router.Route{{Path: "/raw", Method: http.MethodGet, Action: router.BindWith(home, (*HomeController).Raw)}}},
		{"Bad-Path", []router.Route{{Path: "/{id", Method: http.MethodGet, Action: router.Bind(home, (*HomeController).Index)}}},
		{
			"Duplicate-Name",
			[]router.Route{
				{Path: "/", Method: http.MethodGet, Name: "home", Action: router.Bind(home, (*HomeController).Index)},
				{Path: "/home", Method: http.MethodGet, Name: "home", Action: router.Bind(home, (*HomeController).Index)},
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := router.New(signpost.Testing, nil)

			// Act + Assert
			require.Panics(t, func() { r.HandleRoutes(tc.routes) })
		})
	}
}

func TestHandleRoutesDuplicateNameNotRegistered(t *testing.T) {
	// Arrange
	r := router.New(signpost.Testing, nil)
	ok := func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }
	r.Handle(router.Route{Path: "/", Method: http.MethodGet, Name: "home", Handler: ok})

	// Act
	require.Panics(t, func() {
		r.Handle(router.Route{Path: "/home", Method: http.MethodGet, Name: "home", Handler: ok})
	})

	// Assert
	require.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/home").Code)

	href, err := r.RouteURL("home", "", "", "", nil)
	require.Nil(t, err)
	require.Equal(t, "/", href)
}

func TestBinding(t *testing.T) {
	// Arrange + Act
	b := router.BindWith(ProductsController{}, ProductsController.Show)

	// Assert
	require.Equal(t, "Products", b.Controller)
	require.Equal(t, "Show", b.Action)
}

func TestMiddlewares(t *testing.T) {
	// Arrange
	var order []string
	mark := func(name string) middleware.Adapter {
		return func(h http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				h.ServeHTTP(w, r)
			})
		}
	}

	r := router.New(signpost.Testing, mark("log"))
	r.OnEveryRequest(mark("every"))
	r.HandleRoutes(
		[]router.Route{{
			Path:        "/",
			Method:      http.MethodGet,
			Handler:     func(w http.ResponseWriter, r *http.Request) { order = append(order, "handler") },
			Middlewares: []middleware.Adapter{mark("route")},
		}},
		mark("group"),
	)
	r.HandleNotFound(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "not found")
		w.WriteHeader(http.StatusNotFound)
	})

	// Act
	serve(r, http.MethodGet, "/")

	// Assert
	require.Equal(t, []string{"every", "group", "route", "handler"}, order)

	// Arrange
	order = nil

	// Act
	w := serve(r, http.MethodGet, "/missing")

	// Assert
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, []string{"log", "not found"}, order)
}

func TestCatchAll(t *testing.T) {
	// Arrange
	r := router.New(signpost.Testing, nil)
	r.CatchAll(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	// Act
	w := serve(r, http.MethodGet, "/anywhere/at/all")

	// Assert
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestSubrouter(t *testing.T) {
	// Arrange
	r := router.New(signpost.Testing, nil)
	admin := r.Subrouter("/admin")
	shop := r.SubrouterHost("shop.example.com")

	// Act
	admin.Handle(router.Route{Path: "/reports", Method: http.MethodGet, Action: router.Bind(new(ReportsController), (*ReportsController).Index)})
	shop.Handle(router.Route{Path: "/cart", Method: http.MethodGet, Action: router.Bind(new(CartController), (*CartController).Index)})

	// Assert
	require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/admin/reports").Code)
	require.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/reports").Code)
	require.Equal(t, http.StatusOK, serve(r, http.MethodGet, "http://shop.example.com/cart").Code)
	require.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "http://example.com/cart").Code)
}

func TestLogging(t *testing.T) {
	// Arrange
	color.NoColor = true
	b := new(bytes.Buffer)
	l := logger.New(logger.WithLogger(log.New(b, "", 0)), logger.WithLevel(logger.LogLevelDebug))
	r := router.New(signpost.Testing, nil, router.WithLogger(l))

	// Act
	r.Handle(router.Route{
		Path:   "/home/details/{id}",
		Method: http.MethodGet,
		Name:   "details",
		Action: router.BindWith(new(HomeController), (*HomeController).Details),
	})

	// Assert
	require.Contains(t, b.String(), "[DEBUG]")
	require.Contains(t, b.String(), `"route":{"action":"Details","controller":"Home","name":"details","path":"/home/details/{id}"}`)

	// Arrange
	b.Reset()

	// Act
	w := serve(r, http.MethodGet, "/home/details/nope")

	// Assert
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, b.String(), "[WARN]")
	require.Contains(t, b.String(), `"url":"/home/details/nope"`)

	// Arrange
	b.Reset()
	r.OnEveryRequest(middleware.LogRequest(l))
	r.Handle(router.Route{
		Path:   "/home/index",
		Method: http.MethodGet,
		Action: router.Bind(new(HomeController), (*HomeController).Index),
	})

	// Act
	w = serve(r, http.MethodGet, "/home/index")

	// Assert
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, b.String(), `'GET /home/index' log_context: {"route":{"action":"Index","controller":"Home","path":"/home/index"}}`)
}
