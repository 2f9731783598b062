package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"friendlydate/config"
	"friendlydate/infras/otel"
	"friendlydate/internal/domains/datetime/model/dto"
	"friendlydate/shared/constant"
	"friendlydate/shared/datefmt"
	"friendlydate/shared/failure"
	"friendlydate/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Datetime interface {
	Friendly(ctx context.Context, req dto.FriendlyRequest) (dto.FriendlyResponse, error)
	FriendlyBatch(ctx context.Context, req dto.BatchFriendlyRequest) (dto.BatchFriendlyResponse, error)
	Compact(ctx context.Context, req dto.CompactRequest) (dto.CompactResponse, error)
	Formats(ctx context.Context) dto.FormatsResponse
}

type serviceImpl struct {
	cfg  *config.Config
	otel otel.Otel
	now  func() time.Time
}

func New(cfg *config.Config, otel otel.Otel) Datetime {
	return &serviceImpl{
		cfg:  cfg,
		otel: otel,
		now:  timezone.Now,
	}
}

func (s *serviceImpl) Friendly(ctx context.Context, req dto.FriendlyRequest) (res dto.FriendlyResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Friendly")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	instant, err := s.instant(req.Timestamp)
	if err != nil {
		return res, err
	}

	opts := req.ToOptions(s.cfg.App.DefaultLocale)

	scope.SetAttributes(map[string]any{
		"datetime.ts":     instant,
		"datetime.format": req.Format,
	})

	text := datefmt.FormatFriendlyWith(instant, req.Format, opts)
	if text == "" {
		log.Error().Str("format", req.Format).Time("ts", instant).Msg("formatter returned an empty label")

		return res, failure.InvalidFormatCode
	}

	res = dto.FriendlyResponse{
		Timestamp: dto.FormatInstant(instant),
		Format:    req.Format,
		Locale:    s.locale(req.Options),
		Text:      text,
	}

	return res, nil
}

func (s *serviceImpl) FriendlyBatch(ctx context.Context, req dto.BatchFriendlyRequest) (res dto.BatchFriendlyResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FriendlyBatch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if maxSize := s.cfg.App.MaxBatchSize; maxSize > 0 && len(req.Formats) > maxSize {
		return res, failure.BadRequestFromString(fmt.Sprintf("at most %d formats are allowed per request", maxSize))
	}

	instant, err := s.instant(req.Timestamp)
	if err != nil {
		return res, err
	}

	scope.SetAttribute("datetime.formats", req.Formats)

	formatter := datefmt.NewFormatterWith(req.ToOptions(s.cfg.App.DefaultLocale))

	res.Timestamp = dto.FormatInstant(instant)
	res.Locale = s.locale(req.Options)
	res.Items = make([]dto.FriendlyItem, 0, len(req.Formats))

	for _, format := range req.Formats {
		code, ok := datefmt.ParseFormatCode(format)
		if !ok {
			return dto.BatchFriendlyResponse{}, failure.InvalidFormatCode
		}

		res.Items = append(res.Items, dto.FriendlyItem{
			Format: format,
			Text:   formatter.Format(instant, code),
		})
	}

	return res, nil
}

func (s *serviceImpl) Compact(ctx context.Context, req dto.CompactRequest) (res dto.CompactResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Compact")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	instant, err := s.instant(req.Timestamp)
	if err != nil {
		return res, err
	}

	var text string

	switch req.Layout {
	case constant.CompactLayoutYMD:
		text = datefmt.ToCompactYMD(instant, req.Separator)
	case constant.CompactLayoutYMDH:
		text = datefmt.ToCompactYMDH(instant, req.Separator)
	case constant.CompactLayoutYM:
		text = datefmt.ToCompactYM(instant, req.Separator)
	default:
		return res, failure.BadRequestFromString("layout must be one of ymd ymdh ym")
	}

	res = dto.CompactResponse{
		Timestamp: dto.FormatInstant(instant),
		Layout:    req.Layout,
		Text:      text,
	}

	return res, nil
}

func (s *serviceImpl) Formats(ctx context.Context) (res dto.FormatsResponse) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Formats")
	defer scope.End()

	res.FromCodes(datefmt.FormatCodes())

	return res
}

// instant reads ts in the device timezone; an empty ts means now.
func (s *serviceImpl) instant(ts string) (time.Time, error) {
	if ts == "" {
		return s.now(), nil
	}

	instant, err := timezone.ParseInstant(ts)
	if err != nil {
		log.Error().Err(err).Str("ts", ts).Msg("failed to parse timestamp")

		return time.Time{}, failure.InvalidTimestamp
	}

	return instant, nil
}

func (s *serviceImpl) locale(opts dto.Options) string {
	locale := opts.Locale
	if locale == "" {
		locale = s.cfg.App.DefaultLocale
	}

	return datefmt.ParseLocale(locale).String()
}
