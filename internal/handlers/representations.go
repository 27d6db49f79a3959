package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/pagination"
)

// APIPrefix is where the JSON API is mounted.
const APIPrefix = "/api/v1"

// externalBase is scheme://host of the request as the client sees it.
func externalBase(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}

// externalURL makes path absolute against the request.
func externalURL(r *http.Request, path string) string {
	return externalBase(r) + path
}

// mailLink makes path absolute against the configured base URL. Links that
// leave the site never depend on the request's Host header.
func mailLink(baseURL, path string) string {
	return strings.TrimRight(baseURL, "/") + path
}

// absoluteRequestURL is the request URL with scheme and host filled in.
func absoluteRequestURL(r *http.Request) *url.URL {
	u := *r.URL
	base, _ := url.Parse(externalBase(r))
	u.Scheme = base.Scheme
	u.Host = base.Host
	return &u
}

// apiLinks returns the absolute prev/next links of an API listing.
func apiLinks[T any](r *http.Request, res pagination.Result[T]) (prev, next *string) {
	return res.Links(absoluteRequestURL(r))
}

func potURL(r *http.Request, id int64) string {
	return externalURL(r, fmt.Sprintf("%s/pots/%d", APIPrefix, id))
}

func teaURL(r *http.Request, id int64) string {
	return externalURL(r, fmt.Sprintf("%s/teas/%d", APIPrefix, id))
}

func brewerURL(r *http.Request, id int64) string {
	return externalURL(r, fmt.Sprintf("%s/brewers/%d/", APIPrefix, id))
}

func roleURL(r *http.Request, id int64) string {
	return externalURL(r, fmt.Sprintf("%s/roles/%d/", APIPrefix, id))
}

func potResponse(r *http.Request, p models.Pot) models.PotResponse {
	resp := models.PotResponse{
		ID:             p.ID,
		URL:            potURL(r, p.ID),
		BrewedAt:       p.BrewedAt.UTC().Format(models.DateFormat),
		Drinkable:      p.Drinkable(),
		Tea:            teaURL(r, p.TeaID),
		TeaName:        p.TeaName,
		Brewer:         brewerURL(r, p.BrewerID),
		BrewerUsername: p.BrewerUsername,
	}
	if p.DrankAt != nil {
		drank := p.DrankAt.UTC().Format(models.DateFormat)
		resp.DrankAt = &drank
	}
	return resp
}

func teaResponse(r *http.Request, t models.Tea) models.TeaResponse {
	return models.TeaResponse{
		ID:             t.ID,
		URL:            teaURL(r, t.ID),
		Name:           t.Name,
		Category:       t.Category,
		Location:       t.Location,
		ImageURL:       t.ImageURL,
		Description:    t.Description,
		BrewingMethods: t.BrewingMethods,
		TastingNotes:   t.TastingNotes,
		Pots:           teaURL(r, t.ID) + "/pots/",
	}
}

func brewerResponse(r *http.Request, b models.Brewer) models.BrewerResponse {
	return models.BrewerResponse{
		ID:          b.ID,
		URL:         brewerURL(r, b.ID),
		Email:       b.Email,
		Username:    b.Username,
		Role:        b.RoleName,
		Confirmed:   b.Confirmed,
		Name:        b.Name,
		Location:    b.Location,
		AboutMe:     b.AboutMe,
		MemberSince: b.MemberSince.UTC().Format(models.DateFormat),
		LastSeen:    b.LastSeen.UTC().Format(models.DateFormat),
		Avatar:      b.Gravatar(100, r.TLS != nil),
		Pots:        brewerURL(r, b.ID) + "pots/",
	}
}

func roleResponse(r *http.Request, role models.Role) models.RoleResponse {
	return models.RoleResponse{
		ID:          role.ID,
		URL:         roleURL(r, role.ID),
		Name:        role.Name,
		Default:     role.Default,
		Permissions: role.Permissions,
		Brewers:     roleURL(r, role.ID) + "brewers/",
	}
}

// pageLinks returns the relative prev/next links of an HTML listing, ""
// when absent.
func pageLinks[T any](r *http.Request, res pagination.Result[T]) (prev, next string) {
	p, n := res.Links(&url.URL{Path: r.URL.Path, RawQuery: r.URL.RawQuery})
	if p != nil {
		prev = *p
	}
	if n != nil {
		next = *n
	}
	return prev, next
}
