package render

import (
	"fmt"
	"net/url"
	"path"
	"strconv"
)

// Routes builds the URLs a page links to.
type Routes interface {
	Home(more bool) string
	Project(index int, more bool) string
	Archive() string
	Asset(name string) string

	ProjectsFragment(more bool) string
	ModalFragment(index int) string
	CloseFragment() string
}

// ServerRoutes are the live server URLs. Lang, when set, is carried on
// every page link.
type ServerRoutes struct {
	Lang string
}

func (r ServerRoutes) withQuery(p string, q url.Values) string {
	if r.Lang != "" {
		q.Set("lang", r.Lang)
	}
	if len(q) == 0 {
		return p
	}
	return p + "?" + q.Encode()
}

func (r ServerRoutes) Home(more bool) string {
	q := url.Values{}
	if more {
		q.Set("more", "1")
	}
	return r.withQuery("/", q)
}

func (r ServerRoutes) Project(index int, more bool) string {
	q := url.Values{}
	if more {
		q.Set("more", "1")
	}
	q.Set("project", strconv.Itoa(index))
	return r.withQuery("/", q)
}

func (r ServerRoutes) Archive() string {
	return r.withQuery("/archive", url.Values{})
}

func (r ServerRoutes) Asset(name string) string {
	return path.Join("/static", name)
}

func (r ServerRoutes) ProjectsFragment(more bool) string {
	q := url.Values{}
	if more {
		q.Set("more", "1")
	}
	return r.withQuery("/projects", q)
}

func (r ServerRoutes) ModalFragment(index int) string {
	return r.withQuery(fmt.Sprintf("/projects/%d", index), url.Values{})
}

func (r ServerRoutes) CloseFragment() string {
	return "/projects/close"
}

// StaticRoutes are the URLs of an exported site, one directory per page.
type StaticRoutes struct{}

func (StaticRoutes) Home(more bool) string {
	if more {
		return "/more/"
	}
	return "/"
}

func (StaticRoutes) Project(index int, _ bool) string {
	return fmt.Sprintf("/projects/%d/", index)
}

func (StaticRoutes) Archive() string {
	return "/archive/"
}

func (StaticRoutes) Asset(name string) string {
	return path.Join("/static", name)
}

func (s StaticRoutes) ProjectsFragment(more bool) string {
	return s.Home(more)
}

func (s StaticRoutes) ModalFragment(index int) string {
	return s.Project(index, false)
}

func (s StaticRoutes) CloseFragment() string {
	return s.Home(false)
}
