package datetime

import (
	"net/http"

	"friendlydate/infras/otel"
	"friendlydate/internal/domains/datetime/model/dto"
	"friendlydate/internal/domains/datetime/service"
	"friendlydate/shared/constant"
	"friendlydate/shared/validator"
	"friendlydate/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Datetime
	otel    otel.Otel
}

func New(service service.Datetime, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/datetime", func(routerGroup chi.Router) {
		routerGroup.Get("/friendly", handler.GetFriendly)
		routerGroup.Post("/friendly", handler.PostFriendlyBatch)
		routerGroup.Get("/compact", handler.GetCompact)
		routerGroup.Get("/formats", handler.GetFormats)
	})
}

// GetFriendly renders one instant with one friendly format code.
// @Summary Render a friendly date label
// @Tags Datetime
// @Produce json
// @Param ts query string false "RFC 3339, local date-time or unix seconds; defaults to now"
// @Param format query string true "A1 A2 A3 A4 B1 B2 B3 B4 C1"
// @Param locale query string false "ko or any other tag for English; defaults from Accept-Language"
// @Param tz query string false "device, utc or local"
// @Param gmt_offset query int false "Minutes east of UTC, used with tz=local"
// @Param published query boolean false "Published (true) or average (false) label"
// @Success 200 {object} dto.FriendlyResponse
// @Failure 400 {object} response.Error
// @Router /v1/datetime/friendly [get]
func (handler *Handler) GetFriendly(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFriendly")
	defer scope.End()

	req := dto.FriendlyRequest{}
	if err := req.FromRequest(r); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read query parameters")

		response.WithError(w, r, err)

		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, r, err)

		return
	}

	res, err := handler.service.Friendly(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to format friendly label")

		response.WithError(w, r, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// PostFriendlyBatch renders one instant with several friendly format codes.
// @Summary Render several friendly date labels
// @Tags Datetime
// @Accept json
// @Produce json
// @Param request body dto.BatchFriendlyRequest true "Batch request"
// @Success 200 {object} dto.BatchFriendlyResponse
// @Failure 400 {object} response.Error
// @Router /v1/datetime/friendly [post]
func (handler *Handler) PostFriendlyBatch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PostFriendlyBatch")
	defer scope.End()

	req := dto.BatchFriendlyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, r, err)

		return
	}

	req.NegotiateLocale(r.Header.Get(constant.RequestHeaderAcceptLanguage))

	res, err := handler.service.FriendlyBatch(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to format friendly labels")

		response.WithError(w, r, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCompact renders a compact numeric date.
// @Summary Render a compact numeric date
// @Tags Datetime
// @Produce json
// @Param ts query string false "RFC 3339, local date-time or unix seconds; defaults to now"
// @Param layout query string true "ymd, ymdh or ym"
// @Param sep query string false "Separator, at most 3 characters"
// @Success 200 {object} dto.CompactResponse
// @Failure 400 {object} response.Error
// @Router /v1/datetime/compact [get]
func (handler *Handler) GetCompact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompact")
	defer scope.End()

	req := dto.CompactRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, r, err)

		return
	}

	res, err := handler.service.Compact(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to format compact date")

		response.WithError(w, r, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetFormats lists the supported friendly format codes.
// @Summary List friendly format codes
// @Tags Datetime
// @Produce json
// @Success 200 {object} dto.FormatsResponse
// @Router /v1/datetime/formats [get]
func (handler *Handler) GetFormats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFormats")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, handler.service.Formats(ctx))
}
