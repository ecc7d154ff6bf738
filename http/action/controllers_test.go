package action_test

import "net/http"

type HomeController struct{}

type DetailsParams struct {
	ID int `schema:"id"`
}

type SearchParams struct {
	Query    string `schema:"q"`
	Page     int    `schema:"page,omitempty"`
	Internal string `schema:"-"`
	Sort     *string
	hidden   string
}

type Paging struct {
	Page    int
	PerPage int `schema:"per_page"`
}

type ListParams struct {
	Paging
	Category string
}

type ShadowParams struct {
	Paging
	Page int
}

type Sorting struct {
	Page  string
	Order string
}

type ConflictParams struct {
	Paging
	Sorting
}

type cursor struct {
	After string `schema:"after"`
}

type FeedParams struct {
	cursor
	Limit int `schema:"limit"`
}

func (*HomeController) Index(w http.ResponseWriter, r *http.Request) {}

func (*HomeController) Details(w http.ResponseWriter, r *http.Request, p DetailsParams) {}

func (*HomeController) Edit(w http.ResponseWriter, r *http.Request, p *DetailsParams) {}

func (*HomeController) Search(w http.ResponseWriter, r *http.Request, p SearchParams) {}

func (*HomeController) List(w http.ResponseWriter, r *http.Request, p ListParams) {}

func (*HomeController) Shadow(w http.ResponseWriter, r *http.Request, p ShadowParams) {}

func (*HomeController) Conflict(w http.ResponseWriter, r *http.Request, p ConflictParams) {}

func (*HomeController) Feed(w http.ResponseWriter, r *http.Request, p FeedParams) {}

func (*HomeController) Filter(w http.ResponseWriter, r *http.Request, f map[string]string) {}

func (*HomeController) Raw(w http.ResponseWriter, r *http.Request, id int) {}

type ReportsController struct{}

func (ReportsController) Summary(w http.ResponseWriter, r *http.Request) {}

type AdminArea struct{}

func (AdminArea) ControllerName() string { return "Admin" }

func (AdminArea) Dashboard(w http.ResponseWriter, r *http.Request) {}

type LegacyController struct{}

func (*LegacyController) ActionNames() map[string]string {
	return map[string]string{"Show": "View"}
}

func (*LegacyController) Show(w http.ResponseWriter, r *http.Request) {}

func (*LegacyController) Print(w http.ResponseWriter, r *http.Request) {}

type Controller struct{}

func (*Controller) Ping(w http.ResponseWriter, r *http.Request) {}

type PagedController[T any] struct{}

func (*PagedController[T]) Page(w http.ResponseWriter, r *http.Request) {}

// Index shares its name and shape with (*HomeController).Index without being a method.
func Index(c *HomeController, w http.ResponseWriter, r *http.Request) {}
