package router_test

import (
	"fmt"
	"net/http"
)

type HomeController struct{}

type DetailsParams struct {
	ID int `schema:"id" validate:"min=1"`
}

type EditParams struct {
	ID   int    `schema:"id"`
	Mode string `schema:"mode"`
}

func (*HomeController) Index(w http.ResponseWriter, r *http.Request) {
	fmt.Fprint(w, "index")
}

func (*HomeController) Details(w http.ResponseWriter, r *http.Request, p DetailsParams) {
	fmt.Fprintf(w, "details %d", p.ID)
}

func (*HomeController) Edit(w http.ResponseWriter, r *http.Request, p *EditParams) {
	fmt.Fprintf(w, "edit %d %s", p.ID, p.Mode)
}

func (*HomeController) Search(w http.ResponseWriter, r *http.Request, p map[string]string) {
	fmt.Fprintf(w, "search %s", p["q"])
}

func (*HomeController) Raw(w http.ResponseWriter, r *http.Request, p int) {}

type ProductsController struct {
	Catalog string
}

type ShowParams struct {
	Slug string `schema:"slug"`
}

func (c ProductsController) Show(w http.ResponseWriter, r *http.Request, p ShowParams) {
	fmt.Fprintf(w, "%s %s", c.Catalog, p.Slug)
}

type CartController struct{}

func (*CartController) Index(w http.ResponseWriter, r *http.Request) {}

type ReportsController struct{}

func (*ReportsController) Index(w http.ResponseWriter, r *http.Request) {}
