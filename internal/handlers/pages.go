package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/teaflask/internal/models"
	"github.com/sbilibin2017/teaflask/internal/pagination"
	"github.com/sbilibin2017/teaflask/internal/principal"
	"github.com/sbilibin2017/teaflask/internal/services"
	"github.com/sbilibin2017/teaflask/internal/session"
	"github.com/sbilibin2017/teaflask/internal/web"
)

//go:generate mockgen -source=pages.go -destination=pages_mock.go -package=handlers

// PotKeeper defines what the pot pages need from the service.
type PotKeeper interface {
	List(ctx context.Context, f models.PotFilter, p pagination.Params) (pagination.Result[models.Pot], error)
	Current(ctx context.Context) (*models.Pot, error)
	Recent(ctx context.Context, n int) ([]models.Pot, error)
	Brew(ctx context.Context, b *models.Brewer, in models.PotInput) (*models.Pot, error)
	Drink(ctx context.Context, id int64) (*models.Pot, bool, error)
}

// TeaKeeper defines what the tea pages need from the service.
type TeaKeeper interface {
	Get(ctx context.Context, id int64) (*models.Tea, error)
	Popular(ctx context.Context) ([]models.Tea, error)
	Create(ctx context.Context, in models.TeaInput) (*models.Tea, error)
	Update(ctx context.Context, id int64, in models.TeaInput) (*models.Tea, error)
}

// ProfileKeeper defines what the profile pages need from the service.
type ProfileKeeper interface {
	Get(ctx context.Context, id int64) (*models.Brewer, error)
	GetByUsername(ctx context.Context, username string) (*models.Brewer, error)
	UpdateProfile(ctx context.Context, b *models.Brewer, in models.ProfileInput) error
	AdminUpdate(ctx context.Context, id int64, in models.AdminProfileInput) (*models.Brewer, error)
}

// RoleCatalog lists every role for the administrator's profile form.
type RoleCatalog interface {
	All(ctx context.Context) ([]models.Role, error)
}

// recentPots is how many pots the brew page shows.
const recentPots = 5

// NewIndexPageHandler renders the current pot and the pot history.
func NewIndexPageHandler(pots PotKeeper, view View, perPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current, err := pots.Current(r.Context())
		if err != nil {
			pageError(view, w, r, err)
			return
		}

		res, err := pots.List(r.Context(), models.PotFilter{}, pagination.FromRequest(r, perPage))
		if err != nil {
			pageError(view, w, r, err)
			return
		}

		prev, next := pageLinks(r, res)
		view.Render(w, r, http.StatusOK, "index", web.Page{
			Data: map[string]any{
				"current": current,
				"pots":    res.Items,
				"prev":    prev,
				"next":    next,
			},
		})
	}
}

// NewBrewPageHandler shows the brew form and brews a pot on submission.
func NewBrewPageHandler(pots PotKeeper, teas TeaKeeper, view View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		in := models.PotInput{}
		status := http.StatusOK
		var page web.Page

		if r.Method == http.MethodPost {
			in.Tea = formInt(r, "tea")
			pot, err := pots.Brew(ctx, principal.FromContext(ctx).Brewer(), in)
			if err == nil {
				session.FromContext(ctx).AddFlash(session.FlashInfo, fmt.Sprintf("A pot of %s has been brewed.", pot.TeaName))
				redirect(w, r, "/")
				return
			}
			fields, ok := formErrors(err)
			if !ok {
				pageError(view, w, r, err)
				return
			}
			page.Errors = fields
			status = http.StatusBadRequest
		}

		popular, err := teas.Popular(ctx)
		if err != nil {
			pageError(view, w, r, err)
			return
		}
		recent, err := pots.Recent(ctx, recentPots)
		if err != nil {
			pageError(view, w, r, err)
			return
		}

		page.Title = "Brew"
		page.Form = in
		page.Data = map[string]any{"teas": popular, "pots": recent}
		view.Render(w, r, status, "brew", page)
	}
}

// NewTeaFormPageHandler adds a tea, or edits the tea named by the id URL
// parameter when there is one.
func NewTeaFormPageHandler(teas TeaKeeper, view View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		page := web.Page{Title: "New tea", Data: map[string]any{"action": "/tea/new"}}

		var id int64
		if chi.URLParam(r, "id") != "" {
			var ok bool
			if id, ok = idParam(r, "id"); !ok {
				view.Error(w, r, http.StatusNotFound)
				return
			}
			tea, err := teas.Get(ctx, id)
			if err != nil {
				pageError(view, w, r, err)
				return
			}
			page.Title = "Edit " + tea.Name
			page.Data["action"] = fmt.Sprintf("/tea/edit/%d", id)
			page.Form = models.TeaInputFrom(tea)
		}

		if r.Method != http.MethodPost {
			if page.Form == nil {
				page.Form = models.TeaInput{}
			}
			view.Render(w, r, http.StatusOK, "tea_form", page)
			return
		}

		in := models.TeaInput{
			Name:           r.PostFormValue("name"),
			Category:       r.PostFormValue("category"),
			Location:       r.PostFormValue("location"),
			ImageURL:       r.PostFormValue("image_url"),
			Description:    r.PostFormValue("description"),
			BrewingMethods: r.PostFormValue("brewing_methods"),
			TastingNotes:   r.PostFormValue("tasting_notes"),
		}

		var (
			tea *models.Tea
			err error
			msg string
		)
		if id == 0 {
			tea, err = teas.Create(ctx, in)
			msg = "%s has been added as a tea."
		} else {
			tea, err = teas.Update(ctx, id, in)
			msg = "%s has been edited."
		}
		if err != nil {
			fields, ok := formErrors(err)
			if !ok {
				pageError(view, w, r, err)
				return
			}
			page.Form = in
			page.Errors = fields
			view.Render(w, r, http.StatusBadRequest, "tea_form", page)
			return
		}

		session.FromContext(ctx).AddFlash(session.FlashInfo, fmt.Sprintf(msg, tea.Name))
		redirect(w, r, fmt.Sprintf("/tea/%d", tea.ID))
	}
}

// NewDrinkPageHandler drinks the pot named by the pot_id URL parameter, or
// the current pot without one.
func NewDrinkPageHandler(pots PotKeeper, view View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s := session.FromContext(ctx)

		var id int64
		if raw := chi.URLParam(r, "pot_id"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed < 1 {
				view.Error(w, r, http.StatusNotFound)
				return
			}
			id = parsed
		}

		pot, changed, err := pots.Drink(ctx, id)
		switch {
		case errors.Is(err, services.ErrNoDrinkablePot):
			s.AddFlash(session.FlashWarning, "There is no pot to drink.")
		case err != nil:
			pageError(view, w, r, err)
			return
		case !changed:
			s.AddFlash(session.FlashWarning, "This pot has already been drank")
		default:
			s.AddFlash(session.FlashInfo, fmt.Sprintf("The pot of %s brewed by %s has been drank", pot.TeaName, pot.BrewerDisplayName()))
		}
		redirect(w, r, "/")
	}
}

// NewTeaPageHandler renders a tea and the pots brewed with it.
func NewTeaPageHandler(teas TeaKeeper, pots PotKeeper, view View, perPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := idParam(r, "id")
		if !ok {
			view.Error(w, r, http.StatusNotFound)
			return
		}

		tea, err := teas.Get(r.Context(), id)
		if err != nil {
			pageError(view, w, r, err)
			return
		}

		res, err := pots.List(r.Context(), models.PotFilter{TeaID: id}, pagination.FromRequest(r, perPage))
		if err != nil {
			pageError(view, w, r, err)
			return
		}

		prev, next := pageLinks(r, res)
		view.Render(w, r, http.StatusOK, "tea", web.Page{
			Title: tea.Name,
			Data: map[string]any{
				"tea":  tea,
				"pots": res.Items,
				"prev": prev,
				"next": next,
			},
		})
	}
}

// NewUserPageHandler renders a brewer's profile and their pots.
func NewUserPageHandler(brewers ProfileKeeper, pots PotKeeper, view View, perPage int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := brewers.GetByUsername(r.Context(), chi.URLParam(r, "username"))
		if err != nil {
			pageError(view, w, r, err)
			return
		}

		res, err := pots.List(r.Context(), models.PotFilter{BrewerID: b.ID}, pagination.FromRequest(r, perPage))
		if err != nil {
			pageError(view, w, r, err)
			return
		}

		prev, next := pageLinks(r, res)
		view.Render(w, r, http.StatusOK, "user", web.Page{
			Title: b.Username,
			Data: map[string]any{
				"brewer": b,
				"pots":   res.Items,
				"prev":   prev,
				"next":   next,
			},
		})
	}
}

// NewEditProfilePageHandler lets the logged in brewer edit their profile.
func NewEditProfilePageHandler(brewers ProfileKeeper, view View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		b := principal.FromContext(ctx).Brewer()
		if b == nil {
			redirect(w, r, "/auth/login")
			return
		}

		if r.Method != http.MethodPost {
			view.Render(w, r, http.StatusOK, "edit_profile", web.Page{
				Title: "Edit your profile",
				Form:  models.ProfileInput{Name: b.Name, Location: b.Location, AboutMe: b.AboutMe},
			})
			return
		}

		in := models.ProfileInput{
			Name:     r.PostFormValue("name"),
			Location: r.PostFormValue("location"),
			AboutMe:  r.PostFormValue("about_me"),
		}
		if err := brewers.UpdateProfile(ctx, b, in); err != nil {
			fields, ok := formErrors(err)
			if !ok {
				pageError(view, w, r, err)
				return
			}
			view.Render(w, r, http.StatusBadRequest, "edit_profile", web.Page{
				Title:  "Edit your profile",
				Form:   in,
				Errors: fields,
			})
			return
		}

		session.FromContext(ctx).AddFlash(session.FlashInfo, "Your profile has been updated.")
		redirect(w, r, "/user/"+b.Username)
	}
}

// NewAdminEditProfilePageHandler lets an administrator edit any profile.
func NewAdminEditProfilePageHandler(brewers ProfileKeeper, roles RoleCatalog, view View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id, ok := idParam(r, "id")
		if !ok {
			view.Error(w, r, http.StatusNotFound)
			return
		}

		b, err := brewers.Get(ctx, id)
		if err != nil {
			pageError(view, w, r, err)
			return
		}
		all, err := roles.All(ctx)
		if err != nil {
			pageError(view, w, r, err)
			return
		}

		page := web.Page{
			Title: "Edit a profile",
			Data:  map[string]any{"id": id, "roles": all},
		}

		if r.Method != http.MethodPost {
			page.Form = models.AdminProfileInput{
				Email:     b.Email,
				Username:  b.Username,
				Confirmed: b.Confirmed,
				RoleID:    b.RoleID,
				Name:      b.Name,
				Location:  b.Location,
				AboutMe:   b.AboutMe,
			}
			view.Render(w, r, http.StatusOK, "edit_profile_admin", page)
			return
		}

		in := models.AdminProfileInput{
			Email:     r.PostFormValue("email"),
			Username:  r.PostFormValue("username"),
			Confirmed: formBool(r, "confirmed"),
			RoleID:    formInt(r, "role"),
			Name:      r.PostFormValue("name"),
			Location:  r.PostFormValue("location"),
			AboutMe:   r.PostFormValue("about_me"),
		}
		updated, err := brewers.AdminUpdate(ctx, id, in)
		if err != nil {
			fields, ok := formErrors(err)
			if !ok {
				pageError(view, w, r, err)
				return
			}
			page.Form = in
			page.Errors = fields
			view.Render(w, r, http.StatusBadRequest, "edit_profile_admin", page)
			return
		}

		session.FromContext(ctx).AddFlash(session.FlashInfo, "The profile has been updated.")
		redirect(w, r, "/user/"+updated.Username)
	}
}
