/*
Package main provides a toy example use of signpost's http stack.

Run it with:

	go run ./http/example

then visit http://localhost:3000.
Set MAINTENANCE_MODE=true to see every request answered by the maintenance page.
*/
package main

import (
	"embed"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/xy-planning-network/signpost"
	"github.com/xy-planning-network/signpost/http/action"
	"github.com/xy-planning-network/signpost/http/router"
	"github.com/xy-planning-network/signpost/logger"
	"github.com/xy-planning-network/signpost/ranger"
)

//go:embed tmpl/*.tmpl
var files embed.FS

// these refer to templates that should be available for rendering
const (
	base     = "tmpl/base.tmpl"
	index    = "tmpl/index.tmpl"
	products = "tmpl/products.tmpl"
)

type nav struct {
	Home     action.Call
	Products action.Call
}

func newNav() nav {
	return nav{
		Home:     action.To((*HomeController).Index),
		Products: action.To((*ProductsController).List),
	}
}

type indexPage struct {
	Nav           nav
	Featured      action.Call
	FeaturedAttrs map[string]string
}

type product struct {
	Title string
	Show  action.Call
}

type productsPage struct {
	Nav      nav
	Products []product
}

// HomeController serves the landing pages.
type HomeController struct {
	*ranger.Ranger
}

type DetailsParams struct {
	ID int `schema:"id" validate:"min=1"`
}

func (c *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	data := indexPage{
		Nav:           newNav(),
		Featured:      action.With((*HomeController).Details, DetailsParams{ID: 7}),
		FeaturedAttrs: map[string]string{"class": "featured"},
	}
	c.Html(w, r, data, base, index)
}

func (c *HomeController) Details(w http.ResponseWriter, r *http.Request, p DetailsParams) {
	fmt.Fprintf(w, "item #%d", p.ID)
}

// ProductsController serves the product catalog.
type ProductsController struct {
	*ranger.Ranger
	slugs []string
}

type ShowParams struct {
	Slug string `schema:"slug"`
}

func (c *ProductsController) List(w http.ResponseWriter, r *http.Request) {
	data := productsPage{Nav: newNav()}
	for _, slug := range c.slugs {
		data.Products = append(data.Products, product{
			Title: slug,
			Show:  action.With((*ProductsController).Show, ShowParams{Slug: slug}),
		})
	}
	c.Html(w, r, data, base, products)
}

func (c *ProductsController) Show(w http.ResponseWriter, r *http.Request, p ShowParams) {
	fmt.Fprintf(w, "product %s", p.Slug)
}

func main() {
	rng, err := ranger.New(
		ranger.WithFS(files),
		ranger.WithMaintenanceMode(signpost.EnvVarOrBool("MAINTENANCE_MODE", false)),
	)
	if err != nil {
		logger.New().Fatal(err.Error(), nil)
		os.Exit(1)
	}

	home := &HomeController{Ranger: rng}
	catalog := &ProductsController{Ranger: rng, slugs: []string{"felt-hat", "wool-scarf"}}

	rng.OnEveryRequest(handlers.CompressHandler)
	rng.HandleRoutes([]router.Route{
		{Path: "/", Method: http.MethodGet, Action: router.Bind(home, (*HomeController).Index)},
		{Path: "/home/details/{id:[0-9]+}", Method: http.MethodGet, Action: router.BindWith(home, (*HomeController).Details)},
		{Path: "/products", Method: http.MethodGet, Action: router.Bind(catalog, (*ProductsController).List)},
		{
			Path:   "/products/{slug}",
			Method: http.MethodGet,
			Name:   "product-by-slug",
			Action: router.BindWith(catalog, (*ProductsController).Show),
		},
	})

	// Links are resolved against routes, so templates are checked only once routes exist.
	checks := map[string]any{
		index:    indexPage{},
		products: productsPage{},
	}
	for tmpl, data := range checks {
		if err := rng.Check(data, base, tmpl); err != nil {
			rng.EmitLogger().Fatal(err.Error(), nil)
			os.Exit(1)
		}
	}

	if err := rng.Guide(); err != nil {
		rng.EmitLogger().Error(err.Error(), nil)
	}
}
