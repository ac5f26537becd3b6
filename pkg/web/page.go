package web

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mathaaaaaaaaaar/localli-landing/pkg/countdown"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/form"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/models"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/prefs"
	"github.com/mathaaaaaaaaaar/localli-landing/pkg/services"
)

//go:embed static
var staticFiles embed.FS

const (
	demoDelay  = 1500 * time.Millisecond
	msgFailure = "Something went wrong. Try again."
)

// Page serves the landing page and its form posts
type Page struct {
	submitter         form.Submitter
	businessSubmitter form.Submitter
	launch            time.Time
	now               func() time.Time
	log               *zap.Logger
}

// NewPage creates the landing page handlers. With demoBusiness set the
// business signup form only simulates a submission.
func NewPage(svc services.SubmissionService, launch time.Time, demoBusiness bool, log *zap.Logger) *Page {
	submitter := serviceSubmitter{svc: svc}

	var business form.Submitter = submitter
	if demoBusiness {
		business = form.DemoSubmitter{Delay: demoDelay}
	}

	return &Page{
		submitter:         submitter,
		businessSubmitter: business,
		launch:            launch,
		now:               time.Now,
		log:               log,
	}
}

// RegisterRoutes mounts the page on router
func (p *Page) RegisterRoutes(router gin.IRoutes) {
	router.GET("/", p.Index)
	router.POST("/early-access", p.SubmitEarlyAccess)
	router.POST("/business", p.SubmitBusiness)
	router.POST("/newsletter", p.SubmitNewsletter)
	router.POST("/theme", p.ToggleTheme)

	assets, _ := fs.Sub(staticFiles, "static")
	router.StaticFS("/static", http.FS(assets))
}

// Index renders the landing page. First-time visitors get the early
// access prompt once.
func (p *Page) Index(c *gin.Context) {
	v := p.newView(c)

	store := prefs.NewCookieStore(c)
	if !prefs.ModalSeen(store) {
		v.ShowModal = true
		prefs.MarkModalSeen(store)
	}

	p.render(c, http.StatusOK, v)
}

// SubmitEarlyAccess handles the early access form
func (p *Page) SubmitEarlyAccess(c *gin.Context) {
	v := p.newView(c)
	status := submitForm(c, form.NewEarlyAccessForm(p.submitter), &v.EarlyAccess, p.log)
	p.render(c, status, v)
}

// SubmitBusiness handles the business signup form
func (p *Page) SubmitBusiness(c *gin.Context) {
	v := p.newView(c)
	status := submitForm(c, form.NewLeadForm(p.businessSubmitter), &v.Business, p.log)
	p.render(c, status, v)
}

// SubmitNewsletter handles the footer signup, which joins the early
// access list with an email only
func (p *Page) SubmitNewsletter(c *gin.Context) {
	v := p.newView(c)
	status := submitForm(c, form.NewEarlyAccessForm(p.submitter), &v.Newsletter, p.log)
	p.render(c, status, v)
}

// ToggleTheme flips the stored theme and sends the visitor back
func (p *Page) ToggleTheme(c *gin.Context) {
	prefs.ToggleTheme(prefs.NewCookieStore(c), prefs.PrefersDark(c.Request))
	c.Redirect(http.StatusSeeOther, "/")
}

func (p *Page) newView(c *gin.Context) view {
	now := p.now()
	return view{
		Theme:    prefs.Theme(prefs.NewCookieStore(c), prefs.PrefersDark(c.Request)),
		TimeLeft: countdown.Remaining(p.launch, now),
		Launched: countdown.Launched(p.launch, now),
		Launch:   p.launch,
	}
}

func (p *Page) render(c *gin.Context, status int, v view) {
	var buf bytes.Buffer
	if err := landingPage(v).Render(&buf); err != nil {
		p.log.Error("Error rendering page", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// submitForm binds the posted fields, runs them through the form and
// fills fv with what should be shown. It returns the response status.
func submitForm[T any](c *gin.Context, f *form.Form[T], fv *formView[T], log *zap.Logger) int {
	if err := c.ShouldBind(&fv.Data); err != nil {
		fv.Message = msgFailure
		return http.StatusBadRequest
	}

	err := f.Submit(c.Request.Context(), fv.Data)

	var verr *form.ValidationError
	switch {
	case err == nil:
		fv.Done = true
		return http.StatusOK
	case errors.As(err, &verr):
		fv.Errors = verr.Fields
		return http.StatusUnprocessableEntity
	default:
		log.Warn("Form submission failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
		fv.Message = msgFailure
		return http.StatusBadGateway
	}
}

// serviceSubmitter hands form payloads straight to the submission service
type serviceSubmitter struct {
	svc services.SubmissionService
}

func (s serviceSubmitter) Submit(ctx context.Context, path string, payload any) error {
	switch v := payload.(type) {
	case form.LeadForm:
		return s.svc.SubmitLead(ctx, models.Lead{
			BusinessName:    v.BusinessName,
			Email:           v.Email,
			Phone:           optional(v.Phone),
			ServiceCategory: v.ServiceCategory,
			Source:          optional(v.Source),
		})
	case form.EarlyAccessForm:
		return s.svc.SubmitEarlyUser(ctx, models.EarlyUser{
			FirstName: optional(v.FirstName),
			LastName:  optional(v.LastName),
			Email:     v.Email,
		})
	default:
		return fmt.Errorf("unsupported payload %T for %s", payload, path)
	}
}

func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// view is everything the page template needs
type view struct {
	Theme     string
	ShowModal bool
	TimeLeft  countdown.TimeLeft
	Launched  bool
	Launch    time.Time

	EarlyAccess formView[form.EarlyAccessForm]
	Business    formView[form.LeadForm]
	Newsletter  formView[form.EarlyAccessForm]
}

type formView[T any] struct {
	Data    T
	Errors  map[string]string
	Message string
	Done    bool
}
