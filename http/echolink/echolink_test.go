package echolink_test

import (
	"fmt"
	html "html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/action"
	"github.com/xy-planning-network/signpost/http/echolink"
	"github.com/xy-planning-network/signpost/http/link"
)

type HomeController struct{}

type DetailsParams struct {
	ID int `schema:"id"`
}

func (*HomeController) Index(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "index")
}

func (*HomeController) Details(w http.ResponseWriter, r *http.Request, p DetailsParams) {
	fmt.Fprintf(w, "details %d", p.ID)
}

func (*HomeController) Raw(w http.ResponseWriter, r *http.Request, p int) {}

type FilesController struct{}

type FileParams struct {
	Path string `schema:"*"`
}

func (*FilesController) Get(w http.ResponseWriter, r *http.Request, p *FileParams) {
	fmt.Fprintf(w, "file %s", p.Path)
}

type CartController struct{}

func (*CartController) Index(w http.ResponseWriter, r *http.Request) {}

func newEcho() *echo.Echo {
	home := new(HomeController)
	e := echo.New()
	echolink.Add(e, http.MethodGet, "/", home, (*HomeController).Index)
	echolink.AddWith(e, http.MethodGet, "/home/details/:id", home, (*HomeController).Details)
	echolink.AddWith(e, http.MethodGet, "/files/*", new(FilesController), (*FilesController).Get)
	e.GET("/products/:slug", func(c echo.Context) error { return nil }).Name = "product-by-slug"
	e.GET("/about", func(c echo.Context) error { return nil }).Name = "about"
	echolink.Add(e.Host("shop.example.com"), http.MethodGet, "/cart", new(CartController), (*CartController).Index)

	return e
}

func TestAdd(t *testing.T) {
	// Arrange
	e := newEcho()

	tcs := []struct {
		name     string
		target   string
		code     int
		expected string
	}{
		{"Add", "/", http.StatusOK, "index"},
		{"AddWith", "/home/details/5", http.StatusOK, "details 5"},
		{"AddWith-Pointer", "/files/docs/readme.md", http.StatusOK, "file docs/readme.md"},
		{"Bad-Params", "/home/details/five", http.StatusBadRequest, ""},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, tc.target, nil)

			// Act
			e.ServeHTTP(w, r)

			// Assert
			require.Equal(t, tc.code, w.Code)
			if tc.expected != "" {
				require.Equal(t, tc.expected, w.Body.String())
			}
		})
	}
}

func TestAddNames(t *testing.T) {
	// Arrange
	e := echo.New()

	// Act
	route := echolink.AddWith(e, http.MethodGet, "/home/details/:id", new(HomeController), (*HomeController).Details)

	// Assert
	require.Equal(t, "Home.Details", route.Name)
	require.Panics(t, func() {
		echolink.AddWith(e, http.MethodGet, "/raw", new(HomeController), (*HomeController).Raw)
	})
}

func TestActionLink(t *testing.T) {
	tcs := []struct {
		name       string
		action     string
		controller string
		protocol   string
		host       string
		fragment   string
		vals       action.Values
		expected   html.HTML
	}{
		{"Index", "Index", "Home", "", "", "", nil, `<a href="/">Link</a>`},
		{"Param", "details", "home", "", "", "", action.Values{"id": 5}, `<a href="/home/details/5">Link</a>`},
		{"Query", "Details", "Home", "", "", "", action.Values{"id": 5, "tab": "specs"}, `<a href="/home/details/5?tab=specs">Link</a>`},
		{"Any", "Get", "Files", "", "", "", action.Values{"*": "docs/readme.md"}, `<a href="/files/docs/readme.md">Link</a>`},
		{"Any-Empty", "Get", "Files", "", "", "", nil, `<a href="/files/">Link</a>`},
		{"Absolute", "Index", "Home", "https", "example.com", "top", nil, `<a href="https://example.com/#top">Link</a>`},
		{"Host", "Index", "Cart", "", "", "", nil, `<a href="http://shop.example.com/cart">Link</a>`},
	}

	r := echolink.New(newEcho())
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := r.ActionLink("Link", tc.action, tc.controller, tc.protocol, tc.host, tc.fragment, tc.vals, nil)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}
}

func TestActionLinkErrors(t *testing.T) {
	tcs := []struct {
		name     string
		action   string
		vals     action.Values
		expected error
	}{
		{"Unknown", "Missing", nil, signpost.ErrNotExist},
		{"Missing-Param", "Details", nil, signpost.ErrMissingData},
		{"Slash-In-Param", "Details", action.Values{"id": "5/6"}, signpost.ErrNotValid},
	}

	r := echolink.New(newEcho())
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			_, err := r.ActionLink("Link", tc.action, "Home", "", "", "", tc.vals, nil)

			// Assert
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestRouteLink(t *testing.T) {
	// Arrange
	r := echolink.New(newEcho(), echolink.WithRootURL(&url.URL{Scheme: "https", Host: "example.com"}))

	// Act
	actual, err := r.RouteLink("Red Hat", "product-by-slug", "", "", "", action.Values{"slug": "red-hat"}, map[string]any{"rel": "nofollow"})

	// Assert
	require.Nil(t, err)
	require.Equal(t, html.HTML(`<a href="/products/red-hat" rel="nofollow">Red Hat</a>`), actual)

	// Act
	abs, err := r.RouteURL("about", "", "www.example.com", "", nil)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "https://www.example.com/about", abs)

	// Act
	_, err = r.RouteLink("Link", "missing", "", "", "", nil, nil)

	// Assert
	require.ErrorIs(t, err, signpost.ErrNotExist)

	// Act
	_, err = r.RouteLink("Link", "Home.Details", "", "", "", action.Values{"id": 5, action.ActionKey: "Index"}, nil)

	// Assert
	require.ErrorIs(t, err, signpost.ErrNotValid)
}

func TestHelper(t *testing.T) {
	// Arrange
	h := link.New(echolink.New(newEcho()))
	details := action.With((*HomeController).Details, DetailsParams{ID: 5})

	// Act
	byAction, err := h.ActionLink("Details", details)

	// Assert
	require.Nil(t, err)
	require.Equal(t, html.HTML(`<a href="/home/details/5">Details</a>`), byAction)

	// Act
	byName, err := h.RouteLink("Details", "Home.Details", details)

	// Assert
	require.Nil(t, err)
	require.Equal(t, byAction, byName)
}
