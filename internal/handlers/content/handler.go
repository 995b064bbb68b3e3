package content

import (
	"net/http"

	"drive4less/infras/otel"
	"drive4less/internal/domains/content/service"
	"drive4less/shared/constant"
	"drive4less/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Content
	otel    otel.Otel
}

func New(service service.Content, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/content", func(routerGroup chi.Router) {
		routerGroup.Get("/home", handler.GetHome)
		routerGroup.Get("/about", handler.GetAbout)
		routerGroup.Get("/services", handler.GetServices)
		routerGroup.Get("/contact", handler.GetContact)
	})
}

// GetHome retrieves the home page content.
// @Summary Get home page content
// @Tags Content
// @Produce json
// @Success 200 {object} model.HomeContent "Home page content"
// @Failure 500 {object} response.Error
// @Router /v1/content/home [get]
func (handler *Handler) GetHome(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHome")
	defer scope.End()

	res, err := handler.service.Home(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get home content")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAbout retrieves the about page content.
// @Summary Get about page content
// @Tags Content
// @Produce json
// @Success 200 {object} model.AboutContent "About page content"
// @Failure 500 {object} response.Error
// @Router /v1/content/about [get]
func (handler *Handler) GetAbout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAbout")
	defer scope.End()

	res, err := handler.service.About(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get about content")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetServices retrieves the services page content.
// @Summary Get services page content
// @Tags Content
// @Produce json
// @Success 200 {object} model.ServicesContent "Services page content"
// @Failure 500 {object} response.Error
// @Router /v1/content/services [get]
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	res, err := handler.service.Services(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get services content")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetContact retrieves the contact page content.
// @Summary Get contact page content
// @Tags Content
// @Produce json
// @Success 200 {object} model.ContactContent "Contact page content"
// @Failure 500 {object} response.Error
// @Router /v1/content/contact [get]
func (handler *Handler) GetContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetContact")
	defer scope.End()

	res, err := handler.service.Contact(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get contact content")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
